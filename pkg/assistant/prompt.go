package assistant

import (
	"fmt"

	"paperspace-be/internal/entity"
	"paperspace-be/pkg/llm"
)

const systemPromptTemplate = `You are an intelligent research assistant helping users analyze and understand academic papers.
You have access to the following research papers in the user's workspace:

%s

Your capabilities:
- Summarize research papers clearly and concisely
- Compare and contrast multiple papers
- Answer questions about research findings
- Extract key insights and methodologies
- Help users understand complex concepts

Always base your responses on the provided papers when relevant. If asked about something not in the papers, clearly state that.`

// HistoryWindow keeps the most recent limit messages of a chronologically
// ordered slice and maps them to provider messages.
func HistoryWindow(messages []*entity.Message, limit int) []llm.Message {
	if limit > 0 && len(messages) > limit {
		messages = messages[len(messages)-limit:]
	}

	window := make([]llm.Message, len(messages))
	for i, m := range messages {
		window[i] = llm.Message{
			Role:    m.Role,
			Content: m.Content,
		}
	}
	return window
}

// BuildMessages assembles a full completion request: system prompt with
// the paper context, the conversation history, then the new user message
// appended exactly once.
func BuildMessages(paperContext string, history []llm.Message, userMessage string) []llm.Message {
	messages := make([]llm.Message, 0, len(history)+2)
	messages = append(messages, llm.Message{
		Role:    "system",
		Content: fmt.Sprintf(systemPromptTemplate, paperContext),
	})
	messages = append(messages, history...)
	messages = append(messages, llm.Message{
		Role:    "user",
		Content: userMessage,
	})
	return messages
}
