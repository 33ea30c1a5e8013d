package recommend

import (
	"context"
	"errors"
	"testing"

	"bookstore-be/pkg/llm"

	"github.com/stretchr/testify/assert"
)

type stubLLM struct {
	response string
	err      error
}

func (s *stubLLM) Chat(_ context.Context, _ []llm.Message, _ ...llm.Option) (string, error) {
	return s.response, s.err
}

func (s *stubLLM) Generate(_ context.Context, _ string, _ ...llm.Option) (string, error) {
	return s.response, s.err
}

func TestContextBlock(t *testing.T) {
	items := []Item{
		{Title: "Dune", Author: "Frank Herbert", Description: "Desert planet epic."},
		{Title: "Mystery Book"},
	}

	got := ContextBlock(items)

	want := "Title: Dune\nAuthor: Frank Herbert\nDescription: Desert planet epic.\n" +
		"\n" +
		"Title: Mystery Book\nAuthor: Unknown Author\nDescription: No description available.\n"
	assert.Equal(t, want, got)
}

func TestContextBlockEmpty(t *testing.T) {
	assert.Equal(t, "", ContextBlock(nil))
}

func TestFallbackList(t *testing.T) {
	items := []Item{
		{Title: "Dune", Author: "Frank Herbert"},
		{Title: "Anonymous Work"},
	}

	got := FallbackList("You might also enjoy:", items)

	want := "<p>You might also enjoy:</p><ul>" +
		"<li><strong>Dune</strong> by Frank Herbert</li>" +
		"<li><strong>Anonymous Work</strong> by Unknown Author</li>" +
		"</ul>"
	assert.Equal(t, want, got)
}

func TestGenerateUsesModelOutput(t *testing.T) {
	gen := NewGenerator(&stubLLM{response: "<p>Great picks ahead.</p>"})

	narrative, generated := gen.Generate(context.Background(), "prompt", []Item{{Title: "Dune"}}, "lead:")

	assert.True(t, generated)
	assert.Equal(t, "<p>Great picks ahead.</p>", narrative)
}

func TestGenerateFallsBack(t *testing.T) {
	items := []Item{{Title: "Dune", Author: "Frank Herbert"}}
	want := "<p>lead:</p><ul><li><strong>Dune</strong> by Frank Herbert</li></ul>"

	tests := []struct {
		name     string
		provider llm.LLMProvider
	}{
		{name: "provider error", provider: &stubLLM{err: errors.New("model offline")}},
		{name: "blank response", provider: &stubLLM{response: "   \n"}},
		{name: "nil provider", provider: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := NewGenerator(tt.provider)
			narrative, generated := gen.Generate(context.Background(), "prompt", items, "lead:")

			assert.False(t, generated, "fallback output must not be marked cacheable")
			assert.Equal(t, want, narrative)
		})
	}
}
