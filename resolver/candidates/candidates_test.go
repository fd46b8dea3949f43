package candidates

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSteveSequence(t *testing.T) {
	expected := []string{
		"Steve", "Steve_", "TheSteve", "ItzSteve", "RealSteve",
		"Steve123", "StevePVP", "SteveGirl", "SteveBoy",
	}
	assert.Equal(t, expected, Generate("Steve"))
}

func TestGenerateIsDeterministic(t *testing.T) {
	first := Generate("Herobrine")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Generate("Herobrine"))
	}
}

func TestGenerateStripsInternalWhitespace(t *testing.T) {
	got := Generate("  Ender  Dragon ")
	assert.Equal(t, "EnderDragon", got[0])
	assert.Equal(t, "EnderDragon_", got[1])
	assert.Equal(t, "TheEnderDragon", got[2])
}

func TestBaseName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Steve", "Steve"},
		{" Steve ", "Steve"},
		{"Ender Dragon", "EnderDragon"},
		{"a\tb\nc", "abc"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BaseName(tt.in), "input %q", tt.in)
	}
}

func TestGenerateLength(t *testing.T) {
	assert.Len(t, Generate("x"), 9)
}
