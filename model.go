package llmcatalog

import (
	"encoding/json"
	"slices"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Model is one catalog record.
//
// Records handed out by a Dataset are deep copies; changing them does not
// affect the Dataset.
type Model struct {
	Name                string       `yaml:"name"`
	ID                  string       `yaml:"id"`
	Created             time.Time    `yaml:"created"`
	CanonicalSlug       string       `yaml:"canonical_slug"`
	Pricing             Pricing      `yaml:"pricing"`
	Architecture        Architecture `yaml:"architecture"`
	NameTokens          []string     `yaml:"name_tokens,omitempty"`
	TopProvider         TopProvider  `yaml:"top_provider"`
	SupportedParameters []string     `yaml:"supported_parameters,omitempty"`
}

// clone returns a copy that shares no slices with m.
func (m Model) clone() Model {
	m.NameTokens = slices.Clone(m.NameTokens)
	m.Architecture.InputModalities = slices.Clone(m.Architecture.InputModalities)
	m.Architecture.OutputModalities = slices.Clone(m.Architecture.OutputModalities)
	m.SupportedParameters = slices.Clone(m.SupportedParameters)
	return m
}

// cloneModels deep-copies records.
func cloneModels(records []Model) []Model {
	if records == nil {
		return nil
	}
	out := make([]Model, len(records))
	for i, m := range records {
		out[i] = m.clone()
	}
	return out
}

// Architecture lists what a model consumes and produces.
type Architecture struct {
	InputModalities  []Modality `json:"input_modalities" yaml:"input_modalities"`
	OutputModalities []Modality `json:"output_modalities" yaml:"output_modalities"`
}

// TopProvider describes the limits of the primary serving provider.
type TopProvider struct {
	ContextLength       int  `json:"context_length" yaml:"context_length"`
	MaxCompletionTokens int  `json:"max_completion_tokens" yaml:"max_completion_tokens"`
	IsModerated         bool `json:"is_moderated" yaml:"is_moderated"`
}

// Unlimited reports whether completions have no token cap.
func (t TopProvider) Unlimited() bool { return t.MaxCompletionTokens == 0 }

// modelJSON is the wire form; created travels as Unix seconds.
type modelJSON struct {
	Name                string       `json:"name"`
	ID                  string       `json:"id"`
	Created             int64        `json:"created"`
	CanonicalSlug       string       `json:"canonical_slug"`
	Pricing             Pricing      `json:"pricing"`
	Architecture        Architecture `json:"architecture"`
	NameTokens          []string     `json:"name_tokens,omitempty"`
	TopProvider         TopProvider  `json:"top_provider"`
	SupportedParameters []string     `json:"supported_parameters"`
}

// MarshalJSON encodes the record in the upstream wire format.
func (m Model) MarshalJSON() ([]byte, error) {
	return json.Marshal(modelJSON{
		Name:                m.Name,
		ID:                  m.ID,
		Created:             m.Created.Unix(),
		CanonicalSlug:       m.CanonicalSlug,
		Pricing:             m.Pricing,
		Architecture:        m.Architecture,
		NameTokens:          m.NameTokens,
		TopProvider:         m.TopProvider,
		SupportedParameters: m.SupportedParameters,
	})
}

// UnmarshalJSON decodes the upstream wire format.
func (m *Model) UnmarshalJSON(data []byte) error {
	var w modelJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*m = Model{
		Name:                w.Name,
		ID:                  w.ID,
		Created:             time.Unix(w.Created, 0).UTC(),
		CanonicalSlug:       w.CanonicalSlug,
		Pricing:             w.Pricing,
		Architecture:        w.Architecture,
		NameTokens:          w.NameTokens,
		TopProvider:         w.TopProvider,
		SupportedParameters: w.SupportedParameters,
	}
	return nil
}

// openRouterPrefix is skipped when extracting the provider from an ID.
const openRouterPrefix = "openrouter"

// Provider returns the provider segment of the ID ("openai" for "openai/gpt-4o").
// A leading "openrouter/" segment is ignored. IDs without a provider segment yield "".
func (m Model) Provider() string {
	id := m.ID
	if rest, ok := strings.CutPrefix(id, openRouterPrefix+"/"); ok {
		id = rest
	}
	provider, _, ok := strings.Cut(id, "/")
	if !ok {
		return ""
	}
	return provider
}

// ProviderName returns a display name for the provider.
func (m Model) ProviderName() string {
	p := m.Provider()
	if p == "" {
		return ""
	}
	return normalizeProvider(p)
}

// Alias returns the last path segment of the ID.
func (m Model) Alias() string {
	if i := strings.LastIndex(m.ID, "/"); i >= 0 {
		return m.ID[i+1:]
	}
	return m.ID
}

// SupportsParameter reports whether the model accepts the named request parameter.
func (m Model) SupportsParameter(name string) bool {
	return slices.Contains(m.SupportedParameters, name)
}

func normalizeProvider(idPrefix string) string {
	lower := strings.ToLower(idPrefix)
	switch lower {
	case "alibaba", "qwen":
		return "Qwen"
	case "01-ai", "01.ai":
		return "01.AI"
	case "mistralai", "mistral":
		return "Mistral"
	case "meta-llama", "llama":
		return "Meta"
	case "google":
		return "Google"
	case "anthropic":
		return "Anthropic"
	case "openai":
		return "OpenAI"
	case "microsoft":
		return "Microsoft"
	case "perplexity":
		return "Perplexity"
	case "cohere":
		return "Cohere"
	case "nousresearch":
		return "Nous Research"
	case "deepseek":
		return "DeepSeek"
	case "x-ai":
		return "xAI"
	default:
		caser := cases.Title(language.English)
		return caser.String(lower)
	}
}
