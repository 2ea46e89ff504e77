// Package llm defines the completion-client boundary: an ordered transcript
// of role-tagged messages goes in, a single assistant reply comes out.
package llm

import "context"

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one entry in a run's transcript.
type Message struct {
	Role    Role
	Content string
}

// Options are per-call sampling parameters.
type Options struct {
	Temperature     float64
	MaxOutputTokens int
}

// Client sends a transcript to an LLM and returns the reply text.
// Implementations do not retry: any transport error, timeout or malformed
// response comes back as a single error the caller treats as fatal for the
// current run.
type Client interface {
	Complete(ctx context.Context, transcript []Message, opts Options) (string, error)
}
