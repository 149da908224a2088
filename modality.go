package llmcatalog

import (
	"fmt"
	"strings"
)

// Modality is a kind of data a model can consume or produce.
// The declaration order is the canonical ordering used for sorting.
type Modality uint8

const (
	ModalityText Modality = iota
	ModalityImage
	ModalityFile
	ModalityAudio
	ModalityEmbeddings
	ModalityVideo

	modalityCount = iota
)

var modalityNames = [modalityCount]string{
	ModalityText:       "text",
	ModalityImage:      "image",
	ModalityFile:       "file",
	ModalityAudio:      "audio",
	ModalityEmbeddings: "embeddings",
	ModalityVideo:      "video",
}

// AllModalities returns every modality in canonical order.
func AllModalities() []Modality {
	out := make([]Modality, modalityCount)
	for i := range out {
		out[i] = Modality(i)
	}
	return out
}

// ParseModality parses the wire name of a modality (case-insensitive).
func ParseModality(s string) (Modality, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range modalityNames {
		if n == name {
			return Modality(i), nil
		}
	}
	return 0, fmt.Errorf("unknown modality %q", s)
}

func (m Modality) String() string {
	if m.valid() {
		return modalityNames[m]
	}
	return fmt.Sprintf("Modality(%d)", uint8(m))
}

func (m Modality) valid() bool { return int(m) < modalityCount }

// MarshalText encodes the modality as its wire name.
func (m Modality) MarshalText() ([]byte, error) {
	if !m.valid() {
		return nil, fmt.Errorf("invalid modality %d", uint8(m))
	}
	return []byte(modalityNames[m]), nil
}

// UnmarshalText decodes a wire name.
func (m *Modality) UnmarshalText(text []byte) error {
	v, err := ParseModality(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// ModalitySet is a set of modalities stored as a bitmask.
type ModalitySet uint8

// SetOf builds a set from the given modalities. Duplicates are irrelevant.
func SetOf(ms ...Modality) ModalitySet {
	var s ModalitySet
	for _, m := range ms {
		s = s.Add(m)
	}
	return s
}

// Add returns a copy of the set including m.
func (s ModalitySet) Add(m Modality) ModalitySet {
	if !m.valid() {
		return s
	}
	return s | 1<<m
}

// Remove returns a copy of the set without m.
func (s ModalitySet) Remove(m Modality) ModalitySet { return s &^ (1 << m) }

// Toggle returns a copy of the set with m flipped.
func (s ModalitySet) Toggle(m Modality) ModalitySet {
	if s.Has(m) {
		return s.Remove(m)
	}
	return s.Add(m)
}

// Has checks if the set contains m.
func (s ModalitySet) Has(m Modality) bool { return m.valid() && s&(1<<m) != 0 }

// Contains checks if every member of other is in s.
func (s ModalitySet) Contains(other ModalitySet) bool { return s&other == other }

// IsEmpty reports whether the set has no members.
func (s ModalitySet) IsEmpty() bool { return s == 0 }

// Len returns the number of members.
func (s ModalitySet) Len() int {
	n := 0
	for v := s; v != 0; v &= v - 1 {
		n++
	}
	return n
}

// Modalities lists the members in canonical order.
func (s ModalitySet) Modalities() []Modality {
	var out []Modality
	for i := 0; i < modalityCount; i++ {
		if s.Has(Modality(i)) {
			out = append(out, Modality(i))
		}
	}
	return out
}

func (s ModalitySet) String() string {
	ms := s.Modalities()
	names := make([]string, len(ms))
	for i, m := range ms {
		names[i] = m.String()
	}
	return "{" + strings.Join(names, ",") + "}"
}

// HasAll reports whether have includes every modality in required.
// An empty required set always matches, even when have is empty.
func HasAll(have []Modality, required ModalitySet) bool {
	if required.IsEmpty() {
		return true
	}
	return SetOf(have...).Contains(required)
}
