package tracklist

import (
	"context"
	"errors"
	"strings"
)

var (
	// ErrEmptyArtist is returned when the request artist is empty after trimming.
	ErrEmptyArtist = errors.New("artist must not be empty")
	// ErrEmptyAlbum is returned when the request album is empty after trimming.
	ErrEmptyAlbum = errors.New("album must not be empty")
)

// Lookup runs one full album lookup: validate the request, build the prompt,
// call the generator, normalize the reply. Validation failures come back as
// an error and never reach the provider; everything after that is expressed
// in the Result. A generator failure caused by ctx hitting its deadline maps
// to OutcomeTimeout, any other failure to OutcomeProviderError.
func Lookup(ctx context.Context, req LookupRequest, gen TextGenerator) (Result, error) {
	artist := strings.TrimSpace(req.Artist)
	album := strings.TrimSpace(req.Album)
	if artist == "" {
		return Result{}, ErrEmptyArtist
	}
	if album == "" {
		return Result{}, ErrEmptyAlbum
	}

	raw, err := gen.Generate(ctx, BuildPrompt(artist, album))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return Result{Outcome: OutcomeTimeout, Message: "provider did not respond in time"}, nil
		}
		return Result{Outcome: OutcomeProviderError, Message: err.Error()}, nil
	}

	return Normalize(raw), nil
}
