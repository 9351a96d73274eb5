// Package server serves the rendered page and its assets with gin.
package server

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	g "maragu.dev/gomponents"

	"github.com/pagimos/portfolio/assets"
	"github.com/pagimos/portfolio/internal/page"
	"github.com/pagimos/portfolio/internal/site"
)

type Options struct {
	Site *site.Site

	// Assets holds static/ and images/ directories. Nil means the
	// embedded assets.
	Assets fs.FS

	Logger *slog.Logger

	// Salt keys the client address hash in request logs. Empty means a
	// random salt is generated.
	Salt []byte

	// TrustedProxies may set the client address through X-Forwarded-For.
	// Empty means no proxy is trusted and the peer address is used.
	TrustedProxies []string
}

// New builds the gin engine. The caller sets gin's mode beforehand.
func New(opts Options) (*gin.Engine, error) {
	if opts.Site == nil {
		return nil, errors.New("server: nil site")
	}
	if opts.Assets == nil {
		opts.Assets = assets.FS()
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if len(opts.Salt) == 0 {
		salt, err := NewSalt()
		if err != nil {
			return nil, err
		}
		opts.Salt = salt
	}

	staticFS, err := fs.Sub(opts.Assets, "static")
	if err != nil {
		return nil, err
	}
	imagesFS, err := fs.Sub(opts.Assets, "images")
	if err != nil {
		return nil, err
	}

	r := gin.New()
	if err := r.SetTrustedProxies(opts.TrustedProxies); err != nil {
		return nil, fmt.Errorf("server: trusted proxies: %w", err)
	}
	r.Use(gin.Recovery(), RequestLogger(opts.Logger, opts.Salt), SecurityHeaders())

	r.StaticFS("/static", noDirFS{http.FS(staticFS)})
	r.StaticFS("/images", noDirFS{http.FS(imagesFS)})

	s := opts.Site
	r.GET("/", func(c *gin.Context) {
		c.Render(http.StatusOK, nodeRender{page.App(s)})
	})

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return r, nil
}

// Serve runs h on ln until ctx is done, then shuts down gracefully.
func Serve(ctx context.Context, ln net.Listener, h http.Handler, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		errc <- srv.Serve(ln)
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

var htmlContentType = []string{"text/html; charset=utf-8"}

// nodeRender lets gin write a gomponents node.
type nodeRender struct {
	node g.Node
}

func (r nodeRender) Render(w http.ResponseWriter) error {
	r.WriteContentType(w)
	return r.node.Render(w)
}

func (r nodeRender) WriteContentType(w http.ResponseWriter) {
	header := w.Header()
	if val := header["Content-Type"]; len(val) == 0 {
		header["Content-Type"] = htmlContentType
	}
}

// noDirFS hides directories so the asset routes never list their contents.
type noDirFS struct {
	http.FileSystem
}

func (n noDirFS) Open(name string) (http.File, error) {
	f, err := n.FileSystem.Open(name)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if info.IsDir() {
		f.Close()
		return nil, fs.ErrNotExist
	}
	return f, nil
}
