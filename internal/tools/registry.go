package tools

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
)

// Registry maps tool names to tools. It is built once at startup and read
// only afterwards, so it is safe to share across concurrent runs.
type Registry struct {
	tools map[string]Tool
	names []string // sorted
}

func NewRegistry(tools ...Tool) *Registry {
	r := &Registry{tools: make(map[string]Tool, len(tools))}
	for _, t := range tools {
		if _, dup := r.tools[t.Name]; dup {
			panic(fmt.Sprintf("tools: duplicate tool name %q", t.Name))
		}
		r.tools[t.Name] = t
		r.names = append(r.names, t.Name)
	}
	sort.Strings(r.names)
	return r
}

// Names returns all registered tool names in sorted order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.names...)
}

// List returns the registered tools in name order.
func (r *Registry) List() []Tool {
	out := make([]Tool, 0, len(r.names))
	for _, name := range r.names {
		out = append(out, r.tools[name])
	}
	return out
}

// Dispatch invokes the named tool and returns the observation text.
//
// Dispatch is a total function: every failure mode, including an unknown
// name, bad arguments, a tool error or a panic inside the tool, comes back
// as observation text for the model's next turn. It never panics and never
// returns an error.
func (r *Registry) Dispatch(ctx context.Context, name string, args map[string]any) string {
	t, ok := r.tools[name]
	if !ok {
		return fmt.Sprintf("ERROR: Unknown tool '%s'. Available tools: %s", name, strings.Join(r.names, ", "))
	}

	obs, err := safeExecute(ctx, t, args)
	if err != nil {
		var argErr *ArgumentError
		if errors.As(err, &argErr) {
			log.Warn().Str("tool", name).Str("reason", argErr.Reason).Msg("tool argument mismatch")
			return fmt.Sprintf("ERROR: Invalid arguments for tool '%s': %s", name, argErr.Reason)
		}
		log.Warn().Err(err).Str("tool", name).Msg("tool execution error")
		return fmt.Sprintf("ERROR: Tool execution failed: %v", err)
	}
	return obs
}

func safeExecute(ctx context.Context, t Tool, args map[string]any) (obs string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("panic in tool '%s': %v", t.Name, rec)
		}
	}()
	return t.Execute(ctx, args)
}
