package tracklist

import "fmt"

// NotFoundSentinel is the exact sentence the prompt instructs the provider to
// reply with when it does not confidently know the album. Normalize keys its
// not-found detection off this phrase, so the two must stay in sync.
const NotFoundSentinel = "I don't have information about this album."

// BuildPrompt produces the instruction string for one album lookup. It is a
// pure function: identical inputs always yield a byte-identical prompt.
func BuildPrompt(artist, album string) string {
	return fmt.Sprintf(`List the tracklist for the album "%s" by %s.
Only include the officially released standard edition of the album. Do not include tracks from deluxe, remastered, live, or bonus editions.
List the tracks in their correct order.
Respond with ONLY the track names, one per line, each prefixed with its track number starting from 1 (for example "1. Track Name").
Do not include any commentary, release years, or any other text.
If you do not confidently know this album's tracklist, reply with exactly: %s`, album, artist, NotFoundSentinel)
}
