// Package tools defines the Tool type, the registry the agent dispatches
// through, and the five built-in tools.
package tools

import "context"

// Tool represents a callable function the LLM can invoke.
//
// Execute returns the observation text for the transcript. Upstream API
// failures are reported inside that text; an error return is reserved for
// argument mismatches (*ArgumentError) and genuinely unexpected failures.
type Tool struct {
	Name        string
	Description string
	Usage       string // example invocation shown in the system prompt
	Execute     func(ctx context.Context, args map[string]any) (string, error)
}
