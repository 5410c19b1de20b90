// Package pages serves the single-page lookup form. Assets are embedded,
// minified, and gzipped once at startup.
package pages

import (
	"bytes"
	"compress/gzip"
	"embed"
	"io/fs"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/js"
)

//go:embed static/*
var staticFS embed.FS

type asset struct {
	content     []byte // minified content
	gzipped     []byte // gzipped minified content
	contentType string
}

// assets is populated once by Init and read-only afterwards.
var assets = map[string]*asset{}

// Init processes all embedded static files: minify where a minifier matches,
// gzip everything.
func Init() error {
	m := minify.New()
	m.AddFunc("text/css", css.Minify)
	m.AddFunc("text/javascript", js.Minify)
	m.AddFunc("application/javascript", js.Minify)

	err := fs.WalkDir(staticFS, "static", func(filePath string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}

		data, err := staticFS.ReadFile(filePath)
		if err != nil {
			return err
		}

		contentType := mime.TypeByExtension(filepath.Ext(filePath))
		if contentType == "" {
			contentType = "application/octet-stream"
		}

		servePath := strings.TrimPrefix(filePath, "static/")

		minified := data
		mediaType := strings.Split(contentType, ";")[0]
		if _, _, fn := m.Match(mediaType); fn != nil {
			var buf bytes.Buffer
			if err := m.Minify(mediaType, &buf, bytes.NewReader(data)); err != nil {
				log.Warnf("Failed to minify %s: %v (using original)", servePath, err)
			} else {
				minified = buf.Bytes()
				log.Debugf("Minified %s: %d -> %d bytes", servePath, len(data), len(minified))
			}
		}

		var gzBuf bytes.Buffer
		gz, _ := gzip.NewWriterLevel(&gzBuf, gzip.BestCompression)
		gz.Write(minified)
		gz.Close()

		assets[servePath] = &asset{
			content:     minified,
			gzipped:     gzBuf.Bytes(),
			contentType: contentType,
		}

		return nil
	})
	if err != nil {
		return err
	}

	log.Infof("Initialized %d embedded assets", len(assets))
	return nil
}

// ServeIndex serves the lookup form.
func ServeIndex(c *gin.Context) {
	serveAsset(c, "index.html")
}

// ServeStatic serves assets under /static/.
func ServeStatic(c *gin.Context) {
	name := strings.TrimPrefix(c.Param("filepath"), "/")
	serveAsset(c, name)
}

func serveAsset(c *gin.Context, name string) {
	a, ok := assets[name]
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}

	c.Header("Content-Type", a.contentType)
	c.Header("Vary", "Accept-Encoding")

	if strings.Contains(c.GetHeader("Accept-Encoding"), "gzip") && len(a.gzipped) > 0 {
		c.Header("Content-Encoding", "gzip")
		c.Data(http.StatusOK, a.contentType, a.gzipped)
		return
	}

	c.Data(http.StatusOK, a.contentType, a.content)
}
