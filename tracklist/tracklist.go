// Package tracklist turns free-form text-generation output into an ordered
// album tracklist. It owns the prompt sent to the provider and the rules for
// normalizing whatever comes back.
package tracklist

import "context"

// Track is a single entry in an album's tracklist. Position is the number the
// provider printed on the line, or the line's 1-based rank when it printed
// none. Positions are kept verbatim and are not guaranteed contiguous.
type Track struct {
	Position int    `json:"position"`
	Name     string `json:"name"`
}

// LookupRequest identifies the album to look up. Both fields must be
// non-empty after trimming.
type LookupRequest struct {
	Artist string `json:"artist"`
	Album  string `json:"album"`
}

// Outcome classifies the result of a lookup.
type Outcome int

const (
	// OutcomeFound means at least one track was parsed.
	OutcomeFound Outcome = iota
	// OutcomeNotFound means the provider replied with the not-found sentinel.
	OutcomeNotFound
	// OutcomeNoTracks means the provider replied with something that was
	// neither the sentinel nor any parseable track line.
	OutcomeNoTracks
	// OutcomeProviderError means the provider call itself failed.
	OutcomeProviderError
	// OutcomeTimeout means the provider did not answer before the deadline.
	OutcomeTimeout
)

func (o Outcome) String() string {
	switch o {
	case OutcomeFound:
		return "found"
	case OutcomeNotFound:
		return "not_found"
	case OutcomeNoTracks:
		return "no_tracks"
	case OutcomeProviderError:
		return "provider_error"
	case OutcomeTimeout:
		return "timeout"
	default:
		return "unknown"
	}
}

// Result is the terminal state of one lookup. Tracks is populated only for
// OutcomeFound; Message carries the provider error detail when there is one.
type Result struct {
	Outcome Outcome
	Tracks  []Track
	Message string
}

// TextGenerator is the minimal capability a text-generation provider must
// expose. Generate blocks until the provider answers or ctx is done.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeneratorFunc adapts a plain function to the TextGenerator interface.
type GeneratorFunc func(ctx context.Context, prompt string) (string, error)

func (f GeneratorFunc) Generate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}
