package core

import (
	"fmt"
	"strconv"
	"time"

	"github.com/peakform/peakform/core/pmc"
	"github.com/peakform/peakform/internal/contract"
	"github.com/peakform/peakform/internal/outwriter"
	"github.com/peakform/peakform/schema"
)

// classifyWattsFloor is the parsing pivot for --classify: values at or
// above it are read as watts, values below as fractions of FTP. Nothing
// sane rides at 10x FTP, and a 9W target is equally implausible.
const classifyWattsFloor = 10.0

// GetZonesResults resolves the configured zone model against the FTP and
// classifies the target power when one was given.
func GetZonesResults(cfg *contract.Config) (schema.ZonesOutput, time.Duration, error) {
	start := time.Now()

	ranges, err := pmc.ZoneRangesWatts(cfg.ZoneModel, cfg.FTP)
	if err != nil {
		return schema.ZonesOutput{}, 0, err
	}

	output := schema.ZonesOutput{
		Model:  string(cfg.ZoneModel.Name),
		FTP:    cfg.FTP,
		Ranges: ranges,
	}

	if cfg.ClassifyTarget != "" {
		classified, err := classifyPower(cfg.ZoneModel, cfg.FTP, cfg.ClassifyTarget)
		if err != nil {
			return schema.ZonesOutput{}, 0, err
		}
		output.Classified = classified
	}

	return output, time.Since(start), nil
}

// ExecuteZones prints the zone table for the configured model and FTP.
// It serves as the main entry point for the 'zones' command.
func ExecuteZones(cfg *contract.Config) error {
	output, duration, err := GetZonesResults(cfg)
	if err != nil {
		return err
	}
	return outwriter.PrintZonesResults(output, cfg, duration)
}

// classifyPower resolves a raw classification target into the zone that
// owns it.
func classifyPower(model schema.ZoneModel, ftp float64, target string) (*schema.ClassifiedPower, error) {
	value, err := strconv.ParseFloat(target, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid classify target %q. must be a power fraction or watts", target)
	}

	fraction := value
	watts := value * ftp
	if value >= classifyWattsFloor {
		fraction = value / ftp
		watts = value
	}

	zone, err := pmc.Classify(model, fraction)
	if err != nil {
		return nil, err
	}

	return &schema.ClassifiedPower{
		Input:    target,
		Fraction: fraction,
		Watts:    watts,
		Zone:     zone,
	}, nil
}
