package llmcatalog

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// SortField selects the key records are ordered by.
type SortField uint8

const (
	SortByName SortField = iota
	SortByCreated
	SortByPromptPrice
	SortByCompletionPrice
)

var sortFieldNames = map[SortField]string{
	SortByName:            "name",
	SortByCreated:         "created",
	SortByPromptPrice:     "prompt",
	SortByCompletionPrice: "completion",
}

func (f SortField) String() string {
	if s, ok := sortFieldNames[f]; ok {
		return s
	}
	return fmt.Sprintf("SortField(%d)", uint8(f))
}

// ParseSortField parses "name", "created", "prompt" or "completion".
func ParseSortField(s string) (SortField, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for f, n := range sortFieldNames {
		if n == name {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown sort field %q", s)
}

// SortDirection is the order of a sort.
type SortDirection uint8

const (
	Ascending SortDirection = iota
	Descending
)

func (d SortDirection) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// Reverse returns the opposite direction.
func (d SortDirection) Reverse() SortDirection {
	if d == Descending {
		return Ascending
	}
	return Descending
}

// comparator orders two records on one field. It owns a lowercasing Caser,
// so it must not be shared between goroutines.
type comparator struct {
	field SortField
	dir   SortDirection
	lower cases.Caser
}

func newComparator(field SortField, dir SortDirection) *comparator {
	return &comparator{field: field, dir: dir, lower: cases.Lower(language.Und)}
}

func (c *comparator) base(a, b *Model) int {
	switch c.field {
	case SortByCreated:
		return a.Created.Compare(b.Created)
	case SortByPromptPrice:
		return a.Pricing.Prompt.Cmp(b.Pricing.Prompt)
	case SortByCompletionPrice:
		return a.Pricing.Completion.Cmp(b.Pricing.Completion)
	default:
		return strings.Compare(c.lower.String(a.Name), c.lower.String(b.Name))
	}
}

func (c *comparator) compare(a, b *Model) int {
	r := c.base(a, b)
	if c.dir == Descending {
		return -r
	}
	return r
}

// Compare orders a and b on field. Descending flips the sign of the result;
// ties stay ties in both directions.
func Compare(a, b Model, field SortField, dir SortDirection) int {
	return newComparator(field, dir).compare(&a, &b)
}

// SortModels sorts records in place. The sort is stable: records that compare
// equal keep their relative order.
func SortModels(records []Model, field SortField, dir SortDirection) {
	c := newComparator(field, dir)
	slices.SortStableFunc(records, func(a, b Model) int {
		return c.compare(&a, &b)
	})
}
