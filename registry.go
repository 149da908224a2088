package llmcatalog

import (
	"slices"
	"strings"
)

// Dataset is an immutable, normalized snapshot of the catalog.
type Dataset struct {
	models []Model
	byID   map[string]int
	bySlug map[string]int
	// aliasIndex maps lowercase aliases to record positions.
	aliasIndex map[string]int
}

// Normalize builds a Dataset from raw records:
//
//  1. records with empty pricing are dropped;
//  2. the rest are ordered by name (case-sensitive, ascending);
//  3. name tokens are recomputed from the name and input modalities are put
//     in canonical order.
//
// raw is not modified.
func Normalize(raw []Model) *Dataset {
	models := make([]Model, 0, len(raw))
	for _, m := range raw {
		if m.Pricing.IsEmpty() {
			continue
		}
		models = append(models, m.clone())
	}

	slices.SortStableFunc(models, func(a, b Model) int {
		return strings.Compare(a.Name, b.Name)
	})

	for i := range models {
		m := &models[i]
		m.NameTokens = Tokenize(m.Name)
		slices.Sort(m.Architecture.InputModalities)
	}

	return newDataset(models)
}

// NewDataset wraps records that are already normalized, such as records read
// back from a Cache.
func NewDataset(records []Model) *Dataset {
	return newDataset(cloneModels(records))
}

func newDataset(models []Model) *Dataset {
	d := &Dataset{
		models:     models,
		byID:       make(map[string]int, len(models)),
		bySlug:     make(map[string]int, len(models)),
		aliasIndex: make(map[string]int, len(models)),
	}

	ambiguous := make(map[string]bool)
	for i, m := range models {
		if m.ID != "" {
			if _, ok := d.byID[m.ID]; !ok {
				d.byID[m.ID] = i
			}
		}
		if m.CanonicalSlug != "" {
			if _, ok := d.bySlug[m.CanonicalSlug]; !ok {
				d.bySlug[m.CanonicalSlug] = i
			}
		}

		alias := strings.ToLower(m.Alias())
		if alias == "" || ambiguous[alias] {
			continue
		}
		// Only unique suffixes are usable as aliases.
		if j, ok := d.aliasIndex[alias]; ok && models[j].ID != m.ID {
			delete(d.aliasIndex, alias)
			ambiguous[alias] = true
			continue
		}
		d.aliasIndex[alias] = i
	}
	return d
}

// Len returns the number of records.
func (d *Dataset) Len() int { return len(d.models) }

// Models returns deep copies of the records in canonical order.
func (d *Dataset) Models() []Model { return cloneModels(d.models) }

// Get retrieves a record by its ID, canonical slug or alias.
func (d *Dataset) Get(ref string) (Model, bool) {
	// 1. Try exact ID
	if i, ok := d.byID[ref]; ok {
		return d.models[i].clone(), true
	}

	// 2. Try canonical slug
	if i, ok := d.bySlug[ref]; ok {
		return d.models[i].clone(), true
	}

	// 3. Try alias (normalized to lowercase for case-insensitive lookup)
	if i, ok := d.aliasIndex[strings.ToLower(ref)]; ok {
		return d.models[i].clone(), true
	}

	return Model{}, false
}

// InputModalities returns the input modalities present in the dataset, in canonical order.
func (d *Dataset) InputModalities() []Modality {
	var s ModalitySet
	for _, m := range d.models {
		s |= SetOf(m.Architecture.InputModalities...)
	}
	return s.Modalities()
}

// OutputModalities returns the output modalities present in the dataset, in canonical order.
func (d *Dataset) OutputModalities() []Modality {
	var s ModalitySet
	for _, m := range d.models {
		s |= SetOf(m.Architecture.OutputModalities...)
	}
	return s.Modalities()
}

// Providers returns the distinct providers in the dataset, sorted.
func (d *Dataset) Providers() []string {
	seen := make(map[string]bool)
	var out []string
	for _, m := range d.models {
		p := m.Provider()
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	slices.Sort(out)
	return out
}

// Query returns the records visible under v.
func (d *Dataset) Query(v ViewState) []Model {
	return Query(d.models, v.Filter, v.Input, v.Output, v.Sort, v.Direction)
}

// Selected returns the record selected in v, if it is part of the dataset.
func (d *Dataset) Selected(v ViewState) (Model, bool) {
	if v.Selected == "" {
		return Model{}, false
	}
	return d.Get(v.Selected)
}

// Query keeps the records whose name tokens match every token of filter and
// whose input and output modalities include the required sets, then sorts them.
// records is not modified and the results share no slices with it.
func Query(records []Model, filter string, input, output ModalitySet, field SortField, dir SortDirection) []Model {
	queryTokens := Tokenize(filter)

	var results []Model
	for _, m := range records {
		// Filter by name
		if !matchesAll(queryTokens, m.NameTokens) {
			continue
		}
		// Filter by modalities
		if !HasAll(m.Architecture.InputModalities, input) ||
			!HasAll(m.Architecture.OutputModalities, output) {
			continue
		}
		results = append(results, m.clone())
	}

	SortModels(results, field, dir)
	return results
}
