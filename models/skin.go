package models

import (
	"net/url"

	"github.com/raushankrgupta/skin-finder/config"
)

// SkinData is one display-ready skin variant. Immutable once built,
// except for Title which the resolvers reassign by final position.
type SkinData struct {
	ImageURL   string `json:"image_url"`
	Title      string `json:"title"`
	DetailLink string `json:"detail_link"`
}

// VariantState holds the resolved variants of one generation cycle and the
// cursor of the currently displayed one. Replaced wholesale per cycle.
type VariantState struct {
	Items        []SkinData `json:"items"`
	CurrentIndex int        `json:"current_index"`
}

// SkinFor builds the record for an identifier. Both locators are derived
// here from the same identifier so they never drift apart.
func SkinFor(name string) SkinData {
	escaped := url.PathEscape(name)
	return SkinData{
		ImageURL:   config.SkinImageBase + "/" + escaped,
		DetailLink: config.ProfileBase + "/" + escaped,
	}
}
