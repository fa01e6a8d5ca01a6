// Package gemini implements keyword expansion using Google Gemini.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/maxsviluppo/prezzario"
	"google.golang.org/genai"
)

// DefaultModel is used when no model is passed to NewExpander.
const DefaultModel = "gemini-2.5-flash"

// Ensure Expander implements prezzario.KeywordExpander at compile time.
var _ prezzario.KeywordExpander = (*Expander)(nil)

// Expander implements prezzario.KeywordExpander using Google Gemini. It
// turns a natural language construction query into a short list of
// technical keywords suitable for substring matching against price list
// entries.
type Expander struct {
	client *genai.Client
	model  string
}

// NewExpander creates a new Expander. An empty model selects
// DefaultModel.
func NewExpander(client *genai.Client, model string) *Expander {
	if model == "" {
		model = DefaultModel
	}
	return &Expander{client: client, model: model}
}

// Expand asks the model for technical keywords and synonyms matching the
// query and returns them lowercased and trimmed.
func (e *Expander) Expand(ctx context.Context, query string) ([]string, error) {
	if strings.TrimSpace(query) == "" {
		return nil, prezzario.Errorf(prezzario.EINVALID, "query required")
	}

	prompt := BuildUserPrompt(query)
	config := BuildConfig()

	result, err := e.client.Models.GenerateContent(ctx, e.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, prezzario.Errorf(prezzario.EINTERNAL, "gemini returned nil result")
	}

	keywords := ParseKeywords(result.Text())
	if len(keywords) == 0 {
		return nil, prezzario.Errorf(prezzario.EINTERNAL, "gemini returned no keywords")
	}
	return keywords, nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.2)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "Sei un esperto di capitolati e prezzari dell'edilizia italiana. Rispondi solo con parole chiave separate da virgole, senza altro testo.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildUserPrompt builds the user prompt asking for keyword expansion.
func BuildUserPrompt(query string) string {
	var sb strings.Builder
	sb.WriteString("Espandi la seguente richiesta in 5-10 parole chiave tecniche e sinonimi ")
	sb.WriteString("usati nei prezzari regionali delle opere edili. ")
	sb.WriteString("Rispondi con le sole parole chiave separate da virgole.\n\n")
	fmt.Fprintf(&sb, "Richiesta: %s", query)
	return sb.String()
}

// ParseKeywords splits a comma-separated model response into clean,
// lowercase keywords, dropping empty fragments.
func ParseKeywords(text string) []string {
	parts := strings.Split(text, ",")
	keywords := make([]string, 0, len(parts))
	for _, p := range parts {
		kw := strings.ToLower(strings.TrimSpace(p))
		if kw == "" {
			continue
		}
		keywords = append(keywords, kw)
	}
	return keywords
}
