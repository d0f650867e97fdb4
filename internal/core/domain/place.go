package domain

import "fmt"

// Place is a named display slot that serves exactly one banner per request.
// Width and Height are advisory pixel dimensions and may be zero when the
// slot is size-agnostic.
type Place struct {
	ID     int64
	Name   string
	Slug   string
	Width  int32
	Height int32
}

// SizeString renders the slot dimensions for display, using "X" for an
// unspecified side. It returns "" when neither dimension is set.
func (p *Place) SizeString() string {
	switch {
	case p.Width > 0 && p.Height > 0:
		return fmt.Sprintf("%dx%d", p.Width, p.Height)
	case p.Width > 0:
		return fmt.Sprintf("%dxX", p.Width)
	case p.Height > 0:
		return fmt.Sprintf("Xx%d", p.Height)
	default:
		return ""
	}
}
