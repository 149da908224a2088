package llmcatalog

import "github.com/shopspring/decimal"

// Pricing holds per-unit USD prices as exact decimals.
// Token prices are per single token; request and web search prices are per invocation.
type Pricing struct {
	Prompt            decimal.Decimal `json:"prompt" yaml:"prompt"`
	Completion        decimal.Decimal `json:"completion" yaml:"completion"`
	Image             decimal.Decimal `json:"image" yaml:"image"`
	Request           decimal.Decimal `json:"request" yaml:"request"`
	WebSearch         decimal.Decimal `json:"web_search" yaml:"web_search"`
	InternalReasoning decimal.Decimal `json:"internal_reasoning" yaml:"internal_reasoning"`
	InputCacheRead    decimal.Decimal `json:"input_cache_read" yaml:"input_cache_read"`
	InputCacheWrite   decimal.Decimal `json:"input_cache_write" yaml:"input_cache_write"`
}

func (p Pricing) fields() [8]decimal.Decimal {
	return [8]decimal.Decimal{
		p.Prompt, p.Completion, p.Image, p.Request,
		p.WebSearch, p.InternalReasoning, p.InputCacheRead, p.InputCacheWrite,
	}
}

// IsEmpty returns true if every price is exactly zero.
// Records with empty pricing are dropped during normalization.
func (p Pricing) IsEmpty() bool {
	for _, d := range p.fields() {
		if !d.IsZero() {
			return false
		}
	}
	return true
}

// IsFree returns true if both token prices are zero.
func (p Pricing) IsFree() bool {
	return p.Prompt.IsZero() && p.Completion.IsZero()
}

// HasCachePricing returns true if the model bills prompt cache reads or writes.
func (p Pricing) HasCachePricing() bool {
	return !p.InputCacheRead.IsZero() || !p.InputCacheWrite.IsZero()
}
