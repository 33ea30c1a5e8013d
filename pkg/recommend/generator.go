package recommend

import (
	"context"
	"fmt"
	"strings"

	"bookstore-be/pkg/llm"
)

// Item is the slice of a catalog row the narrative needs.
type Item struct {
	Title       string
	Author      string
	Description string
}

// ContextBlock renders retrieved items into the context section of a
// prompt, one Title/Author/Description block per item.
func ContextBlock(items []Item) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		author := item.Author
		if author == "" {
			author = "Unknown Author"
		}
		description := item.Description
		if description == "" {
			description = "No description available."
		}
		lines = append(lines, fmt.Sprintf("Title: %s\nAuthor: %s\nDescription: %s\n", item.Title, author, description))
	}
	return strings.Join(lines, "\n")
}

// FallbackList builds the deterministic HTML list served when generation
// fails. It is never empty for a non-empty item slice.
func FallbackList(lead string, items []Item) string {
	var sb strings.Builder
	sb.WriteString("<p>")
	sb.WriteString(lead)
	sb.WriteString("</p><ul>")
	for _, item := range items {
		author := item.Author
		if author == "" {
			author = "Unknown Author"
		}
		sb.WriteString("<li><strong>")
		sb.WriteString(item.Title)
		sb.WriteString("</strong> by ")
		sb.WriteString(author)
		sb.WriteString("</li>")
	}
	sb.WriteString("</ul>")
	return sb.String()
}

// Generator phrases retrieved items as an HTML recommendation via a
// single LLM call, collapsing every failure into the deterministic
// fallback.
type Generator struct {
	provider llm.LLMProvider
}

func NewGenerator(provider llm.LLMProvider) *Generator {
	return &Generator{provider: provider}
}

// Generate returns the narrative and whether it came from the model.
// A false second result means the fallback was used and the output must
// not be cached.
func (g *Generator) Generate(ctx context.Context, prompt string, items []Item, fallbackLead string) (string, bool) {
	if g.provider != nil {
		narrative, err := g.provider.Generate(ctx, prompt, llm.WithTemperature(0.7))
		if err == nil && strings.TrimSpace(narrative) != "" {
			return narrative, true
		}
	}
	return FallbackList(fallbackLead, items), false
}
