// Package core has core logic for activity roll-up, series builds and
// command execution.
package core

import (
	"context"

	"github.com/peakform/peakform/internal/contract"
)

// ExecutorFunc defines the function signature for executing commands that
// build a load series.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) error
