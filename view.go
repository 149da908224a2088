package llmcatalog

// ViewState is the complete set of user choices a listing is computed from.
// It is a value: every transition returns a new ViewState and leaves the
// receiver unchanged.
type ViewState struct {
	Filter    string
	Input     ModalitySet
	Output    ModalitySet
	Sort      SortField
	Direction SortDirection
	// Selected is the ID of the record shown in detail, if any.
	Selected string
}

// DefaultViewState shows everything, most expensive prompt price first.
func DefaultViewState() ViewState {
	return ViewState{Sort: SortByPromptPrice, Direction: Descending}
}

// WithFilter sets the free-text filter.
func (v ViewState) WithFilter(text string) ViewState {
	v.Filter = text
	return v
}

// RequireInput adds input modalities to the filter.
func (v ViewState) RequireInput(ms ...Modality) ViewState {
	v.Input |= SetOf(ms...)
	return v
}

// RequireOutput adds output modalities to the filter.
func (v ViewState) RequireOutput(ms ...Modality) ViewState {
	v.Output |= SetOf(ms...)
	return v
}

// ToggleInput flips one required input modality.
func (v ViewState) ToggleInput(m Modality) ViewState {
	v.Input = v.Input.Toggle(m)
	return v
}

// ToggleOutput flips one required output modality.
func (v ViewState) ToggleOutput(m Modality) ViewState {
	v.Output = v.Output.Toggle(m)
	return v
}

// SortBy changes the sort field and keeps the direction.
func (v ViewState) SortBy(field SortField) ViewState {
	v.Sort = field
	return v
}

// WithDirection sets the sort direction.
func (v ViewState) WithDirection(dir SortDirection) ViewState {
	v.Direction = dir
	return v
}

// ToggleDirection flips the sort direction.
func (v ViewState) ToggleDirection() ViewState {
	v.Direction = v.Direction.Reverse()
	return v
}

// Select marks a record for detail display.
func (v ViewState) Select(id string) ViewState {
	v.Selected = id
	return v
}

// ClearSelection drops the selected record.
func (v ViewState) ClearSelection() ViewState {
	v.Selected = ""
	return v
}
