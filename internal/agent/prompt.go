package agent

import (
	"fmt"
	"strings"

	"github.com/reagent/reagent/internal/tools"
)

// buildSystemPrompt renders the protocol instructions plus the tool catalog.
// Built once per agent; the registry never changes afterwards.
func buildSystemPrompt(reg *tools.Registry) string {
	var sb strings.Builder

	sb.WriteString(`You are a helpful assistant that uses a ReAct (Reason + Act + Observe) approach to answer questions.

Available Tools:

`)
	for i, t := range reg.List() {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, t.Name)
		fmt.Fprintf(&sb, "   - %s\n", t.Description)
		fmt.Fprintf(&sb, "   - Example: %s\n\n", t.Usage)
	}

	sb.WriteString(`Instructions:
1. REASON about the user's question and what information you need
2. If you need to use a tool, respond with:
   TOOL: tool_name
   ARGS: {"arg1": "value1", "arg2": value2}

3. After using a tool, you will receive an OBSERVATION
4. Continue reasoning and using tools as needed
5. When you have enough information, provide the FINAL ANSWER:
   FINAL ANSWER: [your complete answer here]

Important:
- Use tools ONE AT A TIME
- Think step by step
- Show your reasoning before each action
- Be precise with tool arguments (use correct types: strings in quotes, numbers without quotes)
- When doing calculations with percentages, use the calculator tool
- Always provide a FINAL ANSWER when you're done

Example flow:
User: What is 15% of 200?
Assistant: I need to calculate 15% of 200. I'll use the calculator.
TOOL: calculator
ARGS: {"expression": "200 * 0.15"}
[You receive an observation]
FINAL ANSWER: 15% of 200 is 30.
`)

	return sb.String()
}
