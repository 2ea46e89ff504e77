// Package agent implements the ReAct loop: the model alternates between
// reasoning text, single tool invocations and injected observations until it
// produces a final answer or exhausts its iteration budget.
package agent

import (
	"context"
	"fmt"

	"github.com/reagent/reagent/internal/llm"
	"github.com/reagent/reagent/internal/tools"
	"github.com/rs/zerolog/log"
)

const (
	observationPrefix = "OBSERVATION: "
	nudgeMessage      = "Please either use a tool (TOOL: ... ARGS: ...) or provide a FINAL ANSWER."
)

// Agent drives bounded ReAct runs. It holds no per-run state: the transcript
// and iteration counter live inside Run, so one Agent can serve concurrent
// runs.
type Agent struct {
	client        llm.Client
	registry      *tools.Registry
	maxIterations int
	opts          llm.Options
	systemPrompt  string
}

func New(client llm.Client, registry *tools.Registry, maxIterations int, opts llm.Options) *Agent {
	if maxIterations <= 0 {
		maxIterations = 10
	}
	return &Agent{
		client:        client,
		registry:      registry,
		maxIterations: maxIterations,
		opts:          opts,
		systemPrompt:  buildSystemPrompt(registry),
	}
}

// Run answers one query. It always returns answer text: a genuine final
// answer, a communication-error message, or the budget-exhausted message.
//
// Per iteration there is exactly one completion call and at most one tool
// dispatch. Only a completion failure ends the run early; every tool outcome
// is appended as an observation, and an unparseable reply earns a corrective
// nudge instead. Appends keep causal order: assistant reply first, then the
// observation or nudge.
func (a *Agent) Run(ctx context.Context, query string) string {
	transcript := []llm.Message{
		{Role: llm.RoleSystem, Content: a.systemPrompt},
		{Role: llm.RoleUser, Content: query},
	}

	for iter := 1; iter <= a.maxIterations; iter++ {
		reply, err := a.client.Complete(ctx, transcript, a.opts)
		if err != nil {
			log.Error().Err(err).Int("iteration", iter).Msg("completion failed, ending run")
			return fmt.Sprintf("Error communicating with LLM: %v", err)
		}

		directive := ParseReply(reply)
		switch directive.Kind {
		case DirectiveFinalAnswer:
			log.Info().Int("iteration", iter).Msg("final answer reached")
			return directive.Answer

		case DirectiveToolCall:
			log.Info().
				Int("iteration", iter).
				Str("tool", directive.Tool).
				Interface("args", directive.Args).
				Msg("tool call")
			observation := a.registry.Dispatch(ctx, directive.Tool, directive.Args)
			transcript = append(transcript,
				llm.Message{Role: llm.RoleAssistant, Content: reply},
				llm.Message{Role: llm.RoleUser, Content: observationPrefix + observation},
			)

		default:
			log.Debug().Int("iteration", iter).Msg("unrecognized reply, nudging model")
			transcript = append(transcript,
				llm.Message{Role: llm.RoleAssistant, Content: reply},
				llm.Message{Role: llm.RoleUser, Content: nudgeMessage},
			)
		}
	}

	log.Warn().Int("max_iterations", a.maxIterations).Msg("iteration budget exhausted")
	return fmt.Sprintf("I apologize, but I couldn't complete the task within %d steps. Please try rephrasing your question or breaking it into smaller parts.", a.maxIterations)
}
