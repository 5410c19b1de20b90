package tracklist

import (
	"strings"
	"testing"
)

func TestBuildPromptDeterministic(t *testing.T) {
	a := BuildPrompt("The Beatles", "Abbey Road")
	b := BuildPrompt("The Beatles", "Abbey Road")
	if a != b {
		t.Error("Expected identical inputs to produce byte-identical prompts")
	}
}

func TestBuildPromptContents(t *testing.T) {
	prompt := BuildPrompt("Radiohead", "OK Computer")

	wants := []string{
		"Radiohead",
		"OK Computer",
		"standard edition",
		"deluxe",
		"remastered",
		"live",
		"bonus",
		"correct order",
		"one per line",
		NotFoundSentinel,
	}
	for _, want := range wants {
		if !strings.Contains(prompt, want) {
			t.Errorf("Prompt missing %q", want)
		}
	}
}

func TestBuildPromptEmbedsInputsVerbatim(t *testing.T) {
	tests := []struct {
		name   string
		artist string
		album  string
	}{
		{"plain", "Nirvana", "Nevermind"},
		{"punctuation", "Sigur Rós", "( )"},
		{"quotes", `The "Artist"`, `An "Album"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prompt := BuildPrompt(tt.artist, tt.album)
			if !strings.Contains(prompt, tt.artist) {
				t.Errorf("Prompt missing artist %q", tt.artist)
			}
			if !strings.Contains(prompt, tt.album) {
				t.Errorf("Prompt missing album %q", tt.album)
			}
		})
	}
}
