package agent

import (
	"encoding/json"
	"regexp"
	"strings"
)

// Reply markers. All three are matched case-insensitively.
var (
	finalAnswerRe = regexp.MustCompile(`(?i)FINAL ANSWER:\s*([^\n]+)`)
	toolRe        = regexp.MustCompile(`(?i)TOOL:\s*(\w+)`)
	// First brace block after ARGS:, non-greedy, newlines allowed inside.
	// Stops at the first closing brace.
	argsRe = regexp.MustCompile(`(?is)ARGS:\s*(\{.+?\})`)
)

// ParseReply classifies one model reply into exactly one Directive.
//
// The final-answer check runs first and short-circuits: a reply carrying
// both markers is a final answer. The answer capture stops at the first
// line break. A tool call with unparseable ARGS JSON degrades to empty
// arguments instead of failing the directive.
func ParseReply(reply string) Directive {
	if m := finalAnswerRe.FindStringSubmatch(reply); m != nil {
		return Directive{
			Kind:   DirectiveFinalAnswer,
			Answer: strings.TrimSpace(m[1]),
		}
	}

	if m := toolRe.FindStringSubmatch(reply); m != nil {
		args := map[string]any{}
		if am := argsRe.FindStringSubmatch(reply); am != nil {
			if err := json.Unmarshal([]byte(am[1]), &args); err != nil {
				args = map[string]any{}
			}
		}
		return Directive{
			Kind: DirectiveToolCall,
			Tool: m[1],
			Args: args,
		}
	}

	return Directive{Kind: DirectiveUnrecognized}
}
