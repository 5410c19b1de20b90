package spotify

import (
	"testing"

	spotifyclient "github.com/zmb3/spotify/v2"
)

func TestBuildAlbumQuery(t *testing.T) {
	got := buildAlbumQuery("The Beatles", "Abbey Road")
	want := "album:Abbey Road artist:The Beatles"
	if got != want {
		t.Errorf("buildAlbumQuery() = %q; want %q", got, want)
	}
}

func TestAlbumInfo(t *testing.T) {
	tests := []struct {
		name  string
		match spotifyclient.SimpleAlbum
		want  AlbumInfo
	}{
		{
			name: "full",
			match: spotifyclient.SimpleAlbum{
				Name:        "Abbey Road",
				Artists:     []spotifyclient.SimpleArtist{{Name: "The Beatles"}},
				ReleaseDate: "1969-09-26",
				Images:      []spotifyclient.Image{{URL: "https://img.example/cover.jpg"}},
				ExternalURLs: map[string]string{
					"spotify": "https://open.spotify.com/album/abc",
				},
			},
			want: AlbumInfo{
				Name:        "Abbey Road",
				Artist:      "The Beatles",
				ReleaseYear: "1969",
				CoverURL:    "https://img.example/cover.jpg",
				URL:         "https://open.spotify.com/album/abc",
			},
		},
		{
			name: "sparse",
			match: spotifyclient.SimpleAlbum{
				Name:        "Demo",
				ReleaseDate: "1999",
			},
			want: AlbumInfo{Name: "Demo", ReleaseYear: "1999"},
		},
		{
			name:  "short_release_date",
			match: spotifyclient.SimpleAlbum{Name: "X", ReleaseDate: "99"},
			want:  AlbumInfo{Name: "X"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := albumInfo(tt.match)
			if *got != tt.want {
				t.Errorf("albumInfo() = %+v; want %+v", *got, tt.want)
			}
		})
	}
}
