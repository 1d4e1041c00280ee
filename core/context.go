package core

import "context"

// Context keys for run options
type contextKey string

const suppressOutputKey contextKey = "suppressOutput"

// WithSuppressOutput disables headers and progress prints for callers that
// capture results instead of streaming them to a terminal, such as the MCP
// server.
func WithSuppressOutput(ctx context.Context) context.Context {
	return context.WithValue(ctx, suppressOutputKey, true)
}

// shouldSuppressOutput returns whether run output should be suppressed
func shouldSuppressOutput(ctx context.Context) bool {
	val := ctx.Value(suppressOutputKey)
	if val == nil {
		return false // default: print headers
	}
	suppress, ok := val.(bool)
	return ok && suppress
}
