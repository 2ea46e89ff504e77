package agent

// DirectiveKind classifies one parsed model reply.
type DirectiveKind int

const (
	// DirectiveUnrecognized means the reply carried neither marker.
	DirectiveUnrecognized DirectiveKind = iota
	// DirectiveToolCall means the reply requested a tool invocation.
	DirectiveToolCall
	// DirectiveFinalAnswer means the reply ended the run with an answer.
	DirectiveFinalAnswer
)

// Directive is the classified result of parsing one model reply. Exactly one
// interpretation holds: Tool/Args are set only for DirectiveToolCall, Answer
// only for DirectiveFinalAnswer.
type Directive struct {
	Kind   DirectiveKind
	Tool   string
	Args   map[string]any
	Answer string
}
