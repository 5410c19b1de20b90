package tracklist

import (
	"regexp"
	"strconv"
	"strings"
)

// trackLineRegex matches a line that carries its own track number, e.g.
// "7. Here Comes the Sun". The remainder may be empty so that lines which are
// purely a numbering artifact ("3. ") can be detected and dropped.
var trackLineRegex = regexp.MustCompile(`^(\d+)\.\s*(.*)$`)

// notFoundMarkers are matched as plain substrings, not anchored, so the
// provider may wrap the sentinel in extra punctuation or surrounding words.
// A genuine track name containing one of these phrases will misclassify; that
// tradeoff is accepted.
var notFoundMarkers = []string{
	"don't have information",
	"don't know",
}

// Normalize classifies raw provider output and parses it into an ordered
// tracklist. It is a pure function of its input.
//
// Lines that carry a leading "N." keep N as their position verbatim, even
// when it disagrees with the line's rank. Unnumbered lines fall back to their
// own 1-based rank among the retained lines; the sequence is never renumbered
// to repair gaps the provider emitted.
func Normalize(raw string) Result {
	for _, marker := range notFoundMarkers {
		if strings.Contains(raw, marker) {
			return Result{Outcome: OutcomeNotFound}
		}
	}

	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}

	var tracks []Track
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)

		track := Track{Position: i + 1, Name: trimmed}
		if m := trackLineRegex.FindStringSubmatch(trimmed); m != nil {
			if pos, err := strconv.Atoi(m[1]); err == nil {
				track = Track{Position: pos, Name: strings.TrimSpace(m[2])}
			}
		}

		if track.Name == "" {
			continue
		}
		tracks = append(tracks, track)
	}

	if len(tracks) == 0 {
		return Result{Outcome: OutcomeNoTracks}
	}
	return Result{Outcome: OutcomeFound, Tracks: tracks}
}
