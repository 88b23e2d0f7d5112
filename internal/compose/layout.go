package compose

import "fmt"

// LayoutID selects one of the fixed page layouts. The set is closed;
// Assemble rejects anything else.
type LayoutID string

const (
	LayoutStandard    LayoutID = "standard"
	LayoutStandardOld LayoutID = "standard_old"
	LayoutSingleImage LayoutID = "standard_single_image"
	LayoutStandard2   LayoutID = "standard_2"
	LayoutStandard3   LayoutID = "standard_3"
	LayoutBottomHeavy LayoutID = "bottomHeavy"
	LayoutTwoColumn   LayoutID = "twoColumn"
	LayoutGallery     LayoutID = "gallery"
)

// Layouts lists every valid id in presentation order.
var Layouts = []LayoutID{
	LayoutStandard, LayoutStandardOld, LayoutSingleImage, LayoutStandard2,
	LayoutStandard3, LayoutBottomHeavy, LayoutTwoColumn, LayoutGallery,
}

// Legacy reports whether the layout belongs to the old-branding family
// (solid blue header, larger logo, no accent border).
func (id LayoutID) Legacy() bool {
	switch id {
	case LayoutStandardOld, LayoutSingleImage, LayoutStandard2, LayoutStandard3:
		return true
	}
	return false
}

func (id LayoutID) Valid() bool {
	for _, l := range Layouts {
		if l == id {
			return true
		}
	}
	return false
}

// ErrUnknownLayout is returned by Assemble for ids outside the fixed set.
var ErrUnknownLayout = fmt.Errorf("unknown layout id")

// Options are the per-render section toggles.
type Options struct {
	ShowEconomy     bool `json:"show_economy"`
	ShowContact     bool `json:"show_contact"`
	ShowDescription bool `json:"show_description"`
	ShowRole        bool `json:"show_role"`
	ShowRelevance   bool `json:"show_relevance"`
	ShowChallenges  bool `json:"show_challenges"`
}

// DefaultOptions mirrors the form defaults: economy, contact and description
// on, the narrative extras off.
func DefaultOptions() Options {
	return Options{ShowEconomy: true, ShowContact: true, ShowDescription: true}
}
