package assistant

import (
	"fmt"
	"strings"
	"testing"

	"paperspace-be/internal/entity"
	"paperspace-be/pkg/llm"
)

func TestHistoryWindow(t *testing.T) {
	var history []*entity.Message
	for i := 0; i < 15; i++ {
		role := "user"
		if i%2 == 1 {
			role = "assistant"
		}
		history = append(history, &entity.Message{
			Role:    role,
			Content: fmt.Sprintf("message %d", i),
		})
	}

	window := HistoryWindow(history, 10)

	if len(window) != 10 {
		t.Fatalf("window size = %d, want 10", len(window))
	}
	// Oldest messages drop off, order stays chronological.
	if window[0].Content != "message 5" {
		t.Errorf("first = %q, want %q", window[0].Content, "message 5")
	}
	if window[9].Content != "message 14" {
		t.Errorf("last = %q, want %q", window[9].Content, "message 14")
	}
}

func TestHistoryWindowShorterThanLimit(t *testing.T) {
	history := []*entity.Message{
		{Role: "user", Content: "hi"},
		{Role: "assistant", Content: "hello"},
	}

	window := HistoryWindow(history, 10)

	if len(window) != 2 {
		t.Fatalf("window size = %d, want 2", len(window))
	}
	if window[1].Role != "assistant" || window[1].Content != "hello" {
		t.Errorf("unexpected mapping: %+v", window[1])
	}
}

func TestBuildMessages(t *testing.T) {
	history := []llm.Message{
		{Role: "user", Content: "What does paper 1 claim?"},
		{Role: "assistant", Content: "It introduces the transformer."},
	}

	messages := BuildMessages("some paper context", history, "Summarize it")

	if len(messages) != 4 {
		t.Fatalf("message count = %d, want 4", len(messages))
	}
	if messages[0].Role != "system" {
		t.Errorf("first role = %q, want system", messages[0].Role)
	}
	if !strings.Contains(messages[0].Content, "some paper context") {
		t.Errorf("system prompt missing paper context: %q", messages[0].Content)
	}
	if messages[1].Content != history[0].Content || messages[2].Content != history[1].Content {
		t.Errorf("history not preserved in order: %+v", messages[1:3])
	}
	if messages[3].Role != "user" || messages[3].Content != "Summarize it" {
		t.Errorf("final message = %+v, want the new user message", messages[3])
	}

	// The new user message appears exactly once.
	occurrences := 0
	for _, m := range messages {
		if m.Content == "Summarize it" {
			occurrences++
		}
	}
	if occurrences != 1 {
		t.Errorf("user message appended %d times, want 1", occurrences)
	}
}
