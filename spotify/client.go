package spotify

import (
	"context"
	"fmt"
	"os"

	sentry "github.com/getsentry/sentry-go"
	log "github.com/sirupsen/logrus"
	spotifyclient "github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"golang.org/x/oauth2/clientcredentials"
)

var Spotify *spotifyclient.Client

// AlbumInfo is display-only metadata shown next to a found tracklist. It is
// never used to check or reorder the tracks the provider returned.
type AlbumInfo struct {
	Name        string `json:"name"`
	Artist      string `json:"artist"`
	ReleaseYear string `json:"release_year,omitempty"`
	CoverURL    string `json:"cover_url,omitempty"`
	URL         string `json:"url,omitempty"`
}

func NewSpotifyClient() error {
	ctx := context.Background()
	config := &clientcredentials.Config{
		ClientID:     os.Getenv("SPOTIFY_CLIENT_ID"),
		ClientSecret: os.Getenv("SPOTIFY_CLIENT_SECRET"),
		TokenURL:     spotifyauth.TokenURL,
	}
	token, err := config.Token(ctx)
	if err != nil {
		sentry.CaptureException(err)
		return err
	}

	httpClient := spotifyauth.New().Client(ctx, token)
	client := spotifyclient.New(httpClient)
	Spotify = client
	return nil
}

// SearchAlbum looks up cover art and release metadata for an album. Returns
// (nil, nil) when Spotify has no match; callers render the tracklist without
// the header in that case.
func SearchAlbum(ctx context.Context, artist, album string) (*AlbumInfo, error) {
	span := sentry.StartSpan(ctx, "spotify.search_album")
	span.Description = "Search album on Spotify API"
	span.SetTag("artist", artist)
	span.SetTag("album", album)
	defer span.Finish()

	results, err := Spotify.Search(ctx, buildAlbumQuery(artist, album), spotifyclient.SearchTypeAlbum)
	if err != nil {
		log.Errorf("Failed to search Spotify for album '%s': %v", album, err)
		sentry.CaptureException(err)
		span.Status = sentry.SpanStatusInternalError
		return nil, err
	}

	if results.Albums == nil || len(results.Albums.Albums) == 0 {
		log.Debugf("No Spotify match for '%s' by %s", album, artist)
		span.Status = sentry.SpanStatusOK
		return nil, nil
	}

	info := albumInfo(results.Albums.Albums[0])

	log.Debugf("Spotify matched album '%s' (%s)", info.Name, info.ReleaseYear)
	span.Status = sentry.SpanStatusOK
	return info, nil
}

func buildAlbumQuery(artist, album string) string {
	return fmt.Sprintf("album:%s artist:%s", album, artist)
}

func albumInfo(match spotifyclient.SimpleAlbum) *AlbumInfo {
	info := &AlbumInfo{Name: match.Name}
	if len(match.Artists) > 0 {
		info.Artist = match.Artists[0].Name
	}
	if len(match.ReleaseDate) >= 4 {
		info.ReleaseYear = match.ReleaseDate[:4]
	}
	if len(match.Images) > 0 {
		info.CoverURL = match.Images[0].URL
	}
	info.URL = match.ExternalURLs["spotify"]
	return info
}
