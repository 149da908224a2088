package llmcatalog

import (
	"time"

	"github.com/shopspring/decimal"
)

// record builds a priced model. prompt and completion are decimal strings.
func record(id, name, prompt, completion string) Model {
	return Model{
		ID:            id,
		Name:          name,
		CanonicalSlug: id,
		Created:       time.Unix(1700000000, 0).UTC(),
		Pricing: Pricing{
			Prompt:     decimal.RequireFromString(prompt),
			Completion: decimal.RequireFromString(completion),
		},
		Architecture: Architecture{
			InputModalities:  []Modality{ModalityText},
			OutputModalities: []Modality{ModalityText},
		},
		TopProvider: TopProvider{ContextLength: 8192},
	}
}

func names(models []Model) []string {
	out := make([]string, len(models))
	for i, m := range models {
		out[i] = m.Name
	}
	return out
}

const samplePayload = `{"data": [
  {"id": "google/gemini-2.5-flash-image", "name": "Google: Gemini 2.5 Flash Image (Nano Banana)",
   "created": 1756218977, "canonical_slug": "google/gemini-2.5-flash-image-20250826",
   "pricing": {"prompt": "0.0000003", "completion": "0.0000025", "image": "0.001238",
               "request": "0", "web_search": "0", "internal_reasoning": "0",
               "input_cache_read": "0", "input_cache_write": "0"},
   "architecture": {"input_modalities": ["image", "text"], "output_modalities": ["image", "text"]},
   "top_provider": {"context_length": 32768, "max_completion_tokens": 8192, "is_moderated": false},
   "supported_parameters": ["max_tokens", "temperature"],
   "name_tokens": ["bogus"]},
  {"id": "openai/gpt-4o", "name": "OpenAI: GPT-4o",
   "created": 1715367049, "canonical_slug": "openai/gpt-4o",
   "pricing": {"prompt": "0.0000025", "completion": "0.00001"},
   "architecture": {"input_modalities": ["text", "image", "file"], "output_modalities": ["text"]},
   "top_provider": {"context_length": 128000, "max_completion_tokens": 16384, "is_moderated": true},
   "supported_parameters": ["tools", "response_format"]},
  {"id": "openrouter/auto", "name": "Auto Router",
   "created": 1699401600, "canonical_slug": "openrouter/auto",
   "pricing": {"prompt": "0", "completion": "0"},
   "architecture": {"input_modalities": ["text"], "output_modalities": ["text"]},
   "top_provider": {"context_length": 2000000, "max_completion_tokens": 0, "is_moderated": false},
   "supported_parameters": []}
]}`
