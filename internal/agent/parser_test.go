package agent_test

import (
	"reflect"
	"testing"

	"github.com/reagent/reagent/internal/agent"
)

func TestParseReplyFinalAnswer(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  string
	}{
		{"plain", "FINAL ANSWER: 42", "42"},
		{"lowercase marker", "final answer: forty two", "forty two"},
		{"mixed case", "Final Answer: ok", "ok"},
		{"after reasoning", "The calculation is done.\nFINAL ANSWER: 10% of 50 is 5.", "10% of 50 is 5."},
		{"surrounding whitespace trimmed", "FINAL ANSWER:    padded   ", "padded"},
		{"truncated at first line break", "FINAL ANSWER: first line\nsecond line", "first line"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := agent.ParseReply(tt.reply)
			if d.Kind != agent.DirectiveFinalAnswer {
				t.Fatalf("Kind = %v, want DirectiveFinalAnswer", d.Kind)
			}
			if d.Answer != tt.want {
				t.Errorf("Answer = %q, want %q", d.Answer, tt.want)
			}
		})
	}
}

func TestParseReplyFinalAnswerPrecedence(t *testing.T) {
	reply := "FINAL ANSWER: done\nTOOL: calculator\nARGS: {\"expression\": \"1+1\"}"
	d := agent.ParseReply(reply)
	if d.Kind != agent.DirectiveFinalAnswer {
		t.Fatalf("Kind = %v, want DirectiveFinalAnswer when both markers present", d.Kind)
	}
	if d.Answer != "done" {
		t.Errorf("Answer = %q, want %q", d.Answer, "done")
	}

	// Order in the reply must not matter
	reply = "TOOL: calculator\nARGS: {\"expression\": \"1+1\"}\nFINAL ANSWER: done"
	if d := agent.ParseReply(reply); d.Kind != agent.DirectiveFinalAnswer {
		t.Fatalf("Kind = %v, want DirectiveFinalAnswer when marker comes last", d.Kind)
	}
}

func TestParseReplyToolCall(t *testing.T) {
	reply := "I should compute this.\nTOOL: calculator\nARGS: {\"expression\": \"2+2\"}"
	d := agent.ParseReply(reply)
	if d.Kind != agent.DirectiveToolCall {
		t.Fatalf("Kind = %v, want DirectiveToolCall", d.Kind)
	}
	if d.Tool != "calculator" {
		t.Errorf("Tool = %q, want calculator", d.Tool)
	}
	want := map[string]any{"expression": "2+2"}
	if !reflect.DeepEqual(d.Args, want) {
		t.Errorf("Args = %v, want %v", d.Args, want)
	}
}

func TestParseReplyToolCallCaseInsensitive(t *testing.T) {
	reply := "tool: get_weather\nargs: {\"location\": \"Boise\"}"
	d := agent.ParseReply(reply)
	if d.Kind != agent.DirectiveToolCall {
		t.Fatalf("Kind = %v, want DirectiveToolCall", d.Kind)
	}
	if d.Tool != "get_weather" {
		t.Errorf("Tool = %q, want get_weather", d.Tool)
	}
	if d.Args["location"] != "Boise" {
		t.Errorf("Args = %v", d.Args)
	}
}

func TestParseReplyToolCallMultilineArgs(t *testing.T) {
	reply := "TOOL: get_currency_exchange\nARGS: {\n  \"from_currency\": \"USD\",\n  \"to_currency\": \"EUR\",\n  \"amount\": 200\n}"
	d := agent.ParseReply(reply)
	if d.Kind != agent.DirectiveToolCall {
		t.Fatalf("Kind = %v, want DirectiveToolCall", d.Kind)
	}
	if d.Args["amount"] != float64(200) {
		t.Errorf("amount = %v, want 200", d.Args["amount"])
	}
}

func TestParseReplyMalformedArgsFallsBackToEmpty(t *testing.T) {
	tests := []string{
		"TOOL: calculator\nARGS: {not json}",
		"TOOL: calculator\nARGS: {\"expression\": }",
		"TOOL: calculator", // no ARGS at all
	}
	for _, reply := range tests {
		d := agent.ParseReply(reply)
		if d.Kind != agent.DirectiveToolCall {
			t.Fatalf("ParseReply(%q).Kind = %v, want DirectiveToolCall", reply, d.Kind)
		}
		if len(d.Args) != 0 {
			t.Errorf("ParseReply(%q).Args = %v, want empty", reply, d.Args)
		}
	}
}

func TestParseReplyUnrecognized(t *testing.T) {
	tests := []string{
		"Let me think about this some more.",
		"",
		"TOOLING around with no real directive",
		"The answer is probably 4.",
	}
	for _, reply := range tests {
		if d := agent.ParseReply(reply); d.Kind != agent.DirectiveUnrecognized {
			t.Errorf("ParseReply(%q).Kind = %v, want DirectiveUnrecognized", reply, d.Kind)
		}
	}
}

func TestParseReplyIdempotent(t *testing.T) {
	reply := "TOOL: search_arxiv\nARGS: {\"query\": \"transformers\", \"max_results\": 3}"
	first := agent.ParseReply(reply)
	for i := 0; i < 5; i++ {
		if got := agent.ParseReply(reply); !reflect.DeepEqual(got, first) {
			t.Fatalf("parse %d = %+v, want %+v", i, got, first)
		}
	}
}
