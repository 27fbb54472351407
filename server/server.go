// Package server provides a local HTTP server for browsing the tags of a
// directory. Every request reads fresh from kid3-cli.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"path/filepath"

	"github.com/sonnes/kid3/core"
	"github.com/sonnes/kid3/kid3"
	htmlrender "github.com/sonnes/kid3/render/html"
)

// Tagger reads directory listings and tags. *kid3.Client satisfies it.
type Tagger interface {
	ListDir(ctx context.Context, dir string) ([]string, error)
	GetTags(ctx context.Context, path string, opts kid3.GetOptions) (core.Frames, error)
}

// Server serves a directory's tags over HTTP for local browsing.
type Server struct {
	// Tagger provides access to tag data.
	Tagger Tagger
	// Dir is the directory being browsed.
	Dir string
	// Port is the TCP port to listen on.
	Port int
}

// Handler routes "/" to the directory listing and "/file/{name}" to the tags
// of one file in Dir.
func (s *Server) Handler() http.Handler {
	renderer := htmlrender.New()
	renderer.FileHref = func(name string) string {
		return "/file/" + url.PathEscape(name)
	}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, req *http.Request) {
		files, err := s.Tagger.ListDir(req.Context(), s.Dir)
		if err != nil {
			slog.Error("list dir", "dir", s.Dir, "error", err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := renderer.RenderListing(w, s.Dir, files); err != nil {
			slog.Error("render listing", "error", err)
		}
	})

	mux.HandleFunc("GET /file/{name}", func(w http.ResponseWriter, req *http.Request) {
		name := req.PathValue("name")
		if name != filepath.Base(name) || name == ".." {
			http.NotFound(w, req)
			return
		}
		path := filepath.Join(s.Dir, name)
		frames, err := s.Tagger.GetTags(req.Context(), path, kid3.GetOptions{})
		if err != nil {
			slog.Error("get tags", "file", path, "error", err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := renderer.RenderTags(w, []core.TagReport{{Path: name, Frames: frames}}); err != nil {
			slog.Error("render tags", "file", path, "error", err)
		}
	})

	return mux
}

// ListenAndServe serves Handler on Port until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", s.Port),
		Handler: s.Handler(),
	}

	go func() {
		<-ctx.Done()
		srv.Shutdown(context.Background())
	}()

	slog.Info("serving", "addr", "http://localhost"+srv.Addr, "dir", s.Dir)
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	return nil
}
