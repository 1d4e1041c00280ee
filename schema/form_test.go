package schema_test

import (
	"testing"

	"github.com/peakform/peakform/schema"
	"github.com/stretchr/testify/assert"
)

func TestFormThresholdsClassify(t *testing.T) {
	thresholds := schema.DefaultFormThresholds()

	tests := []struct {
		name string
		tsb  float64
		want schema.FormState
	}{
		{"deep rest", 35.0, schema.FormRested},
		{"just above rested bound", 20.1, schema.FormRested},
		{"rested bound is fresh", 20.0, schema.FormFresh}, // 5 < tsb <= 20
		{"fresh midpoint", 12.0, schema.FormFresh},
		{"fresh bound is neutral", 5.0, schema.FormNeutral}, // -10 <= tsb <= 5
		{"zero balance", 0.0, schema.FormNeutral},
		{"neutral lower bound", -10.0, schema.FormNeutral},
		{"just below neutral", -10.1, schema.FormTired}, // -30 <= tsb < -10
		{"tired midpoint", -20.0, schema.FormTired},
		{"tired lower bound", -30.0, schema.FormTired},
		{"below tired bound", -30.1, schema.FormVeryTired},
		{"deep fatigue", -60.0, schema.FormVeryTired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, thresholds.Classify(tt.tsb))
		})
	}
}

func TestFormThresholdsClassifyCustom(t *testing.T) {
	// Shifted policy: an athlete who races well slightly fatigued.
	thresholds := schema.FormThresholds{Rested: 15, Fresh: 0, NeutralLow: -15, TiredLow: -35}

	assert.Equal(t, schema.FormRested, thresholds.Classify(16))
	assert.Equal(t, schema.FormFresh, thresholds.Classify(1))
	assert.Equal(t, schema.FormNeutral, thresholds.Classify(-15))
	assert.Equal(t, schema.FormTired, thresholds.Classify(-20))
	assert.Equal(t, schema.FormVeryTired, thresholds.Classify(-40))
}

func TestDefaultTimeConstants(t *testing.T) {
	constants := schema.DefaultTimeConstants()
	assert.Equal(t, 7.0, constants.ATLDays)
	assert.Equal(t, 42.0, constants.CTLDays)
	assert.Less(t, constants.ATLDays, constants.CTLDays, "acute window must be shorter than chronic")
}

func TestDefaultTrendPolicy(t *testing.T) {
	policy := schema.DefaultTrendPolicy()
	assert.Equal(t, 8.0, policy.MaxWeeklyRamp)
	assert.Equal(t, -10.0, policy.TSBFloor)
	assert.Equal(t, 7, policy.StreakDays)
}
