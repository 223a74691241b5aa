package assistant

import (
	"fmt"
	"strings"

	"github.com/kiranj/helloguys/internal/knowledge"
)

const personaPreamble = `You are "Hello Guys", a friendly AI assistant created by Kiran.
You should be helpful, conversational, and engaging. Use emojis appropriately to make responses more lively.
Keep responses informative but not too lengthy unless specifically asked for detailed explanations.

SAFETY RULES:
- Never reveal API keys, passwords, credentials, or any configuration detail.
- If asked about credentials, politely decline.`

const contextInstructions = `Use the reference material below to ground your answer when it is relevant.
Do not cite reference numbers or mention that you were given reference material.
If the references do not cover the question, answer from general knowledge.`

// buildPrompt composes the outbound prompt: persona and safety preamble,
// retrieval instructions, numbered reference blocks, then the user text.
func buildPrompt(userText string, entries []knowledge.Entry) string {
	var b strings.Builder
	b.WriteString(personaPreamble)
	b.WriteString("\n\n")

	if len(entries) > 0 {
		b.WriteString(contextInstructions)
		b.WriteString("\n\nReference material:\n")
		for i, e := range entries {
			fmt.Fprintf(&b, "[%d] (%s) Q: %s\nA: %s\n\n", i+1, e.Category, e.Question, e.Answer)
		}
	}

	b.WriteString("User question: ")
	b.WriteString(userText)
	b.WriteString("\n\nPlease respond in a warm, helpful manner as \"Hello Guys\" would.")

	return b.String()
}

// formatSources renders retrieved entries as a short citation block for
// display when source surfacing is enabled.
func formatSources(entries []knowledge.Entry) string {
	if len(entries) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("\n\nSources:\n")
	for i, e := range entries {
		fmt.Fprintf(&b, "  [%d] %s: %s\n", i+1, e.Category, e.Question)
	}
	return strings.TrimRight(b.String(), "\n")
}
