package models

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/raushankrgupta/skin-finder/config"
)

func TestSkinForLockstepLocators(t *testing.T) {
	config.SkinImageBase = "https://skins.example.com/skin"
	config.ProfileBase = "https://profiles.example.com/profile"

	skin := SkinFor("Steve_")
	assert.Equal(t, "https://skins.example.com/skin/Steve_", skin.ImageURL)
	assert.Equal(t, "https://profiles.example.com/profile/Steve_", skin.DetailLink)
	assert.Empty(t, skin.Title)
}

func TestSkinForEscapesIdentifier(t *testing.T) {
	config.SkinImageBase = "https://skins.example.com/skin"
	config.ProfileBase = "https://profiles.example.com/profile"

	skin := SkinFor("we ird/name")
	assert.Equal(t, "https://skins.example.com/skin/we%20ird%2Fname", skin.ImageURL)
	assert.Equal(t, "https://profiles.example.com/profile/we%20ird%2Fname", skin.DetailLink)
}
