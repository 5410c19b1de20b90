// Package handlers wires the HTTP API to the tracklist core: request
// validation, the single-in-flight lookup guard, provider timeout, optional
// Spotify enrichment, and history recording.
package handlers

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"linernotes/config"
	"linernotes/database"
	"linernotes/spotify"
	"linernotes/tracklist"
)

type Manager struct {
	generator tracklist.TextGenerator
	db        *database.Database

	// busy serializes lookups: one in flight per instance, a second request
	// gets 409 instead of queueing behind the provider call.
	busy sync.Mutex
}

func NewManager(generator tracklist.TextGenerator, db *database.Database) *Manager {
	return &Manager{generator: generator, db: db}
}

type lookupRequest struct {
	Artist string `json:"artist"`
	Album  string `json:"album"`
}

type lookupResponse struct {
	Status string             `json:"status"`
	Tracks []tracklist.Track  `json:"tracks,omitempty"`
	Album  *spotify.AlbumInfo `json:"album,omitempty"`
	Error  string             `json:"error,omitempty"`
}

// HandleLookup runs one album lookup end to end.
func (m *Manager) HandleLookup(c *gin.Context) {
	var req lookupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	req.Artist = strings.TrimSpace(req.Artist)
	req.Album = strings.TrimSpace(req.Album)
	if req.Artist == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "artist is required"})
		return
	}
	if req.Album == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "album is required"})
		return
	}

	if !m.busy.TryLock() {
		c.JSON(http.StatusConflict, gin.H{"error": "a lookup is already in progress"})
		return
	}
	defer m.busy.Unlock()

	timeout := time.Duration(config.Config.Options.LookupTimeoutSeconds) * time.Second
	ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
	defer cancel()

	log.Infof("Looking up '%s' by %s", req.Album, req.Artist)
	result, err := tracklist.Lookup(ctx, tracklist.LookupRequest(req), m.generator)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	m.recordLookup(req, result)

	switch result.Outcome {
	case tracklist.OutcomeFound:
		resp := lookupResponse{Status: result.Outcome.String(), Tracks: result.Tracks}
		resp.Album = m.enrichAlbum(c.Request.Context(), req)
		c.JSON(http.StatusOK, resp)
	case tracklist.OutcomeNotFound, tracklist.OutcomeNoTracks:
		c.JSON(http.StatusOK, lookupResponse{Status: result.Outcome.String()})
	case tracklist.OutcomeTimeout:
		c.JSON(http.StatusGatewayTimeout, lookupResponse{Status: result.Outcome.String(), Error: result.Message})
	default:
		log.Errorf("Provider error for '%s' by %s: %s", req.Album, req.Artist, result.Message)
		c.JSON(http.StatusBadGateway, lookupResponse{Status: result.Outcome.String(), Error: result.Message})
	}
}

// recordLookup is write-behind history; failures are logged, never surfaced.
func (m *Manager) recordLookup(req lookupRequest, result tracklist.Result) {
	if m.db == nil {
		return
	}
	if err := m.db.RecordLookup(req.Artist, req.Album, result.Outcome.String(), len(result.Tracks)); err != nil {
		log.Errorf("Failed to record lookup history: %v", err)
	}
}

// enrichAlbum fetches display metadata for a found album. Best effort: any
// failure just means the page renders without cover art.
func (m *Manager) enrichAlbum(ctx context.Context, req lookupRequest) *spotify.AlbumInfo {
	if !config.Config.Spotify.Enabled {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	info, err := spotify.SearchAlbum(ctx, req.Artist, req.Album)
	if err != nil {
		return nil
	}
	return info
}

// HandleHistory returns the most recent lookups.
func (m *Manager) HandleHistory(c *gin.Context) {
	if m.db == nil {
		c.JSON(http.StatusOK, gin.H{"lookups": []database.LookupRecord{}})
		return
	}

	records, err := m.db.GetRecent(config.Config.Options.HistoryLimit)
	if err != nil {
		log.Errorf("Failed to fetch lookup history: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch history"})
		return
	}
	if records == nil {
		records = []database.LookupRecord{}
	}

	c.JSON(http.StatusOK, gin.H{"lookups": records})
}
