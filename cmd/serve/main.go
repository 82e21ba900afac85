// Command serve hosts the browser build: index.html, wasm_exec.js, the game
// binary and the Assets directory.
package main

import (
	"context"
	"errors"
	"flag"
	"mime"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	game_log "github.com/ingyamilmolinar/wanted/internal/log"
)

func main() {
	dir := flag.String("dir", "web", "directory to serve")
	addr := flag.String("addr", "", "listen address (default :$PORT or :8080)")
	logLevel := flag.String("log-level", "INFO", "DEBUG, INFO, WARN, ERROR or NONE")
	flag.Parse()

	logger := game_log.New(os.Stderr, game_log.LevelFromString(*logLevel)).With("serve")

	_ = mime.AddExtensionType(".wasm", "application/wasm")
	_ = mime.AddExtensionType(".js", "application/javascript")
	_ = mime.AddExtensionType(".svg", "image/svg+xml")

	if st, err := os.Stat(*dir); err != nil || !st.IsDir() {
		logger.Errorf("%s is not a directory", *dir)
		os.Exit(1)
	}

	listen := *addr
	if listen == "" {
		listen = ":" + strings.TrimSpace(os.Getenv("PORT"))
		if listen == ":" {
			listen = ":8080"
		}
	}

	server := &http.Server{
		Addr:              listen,
		Handler:           newRouter(*dir),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdown); err != nil {
			logger.Warnf("shutdown: %v", err)
		}
	}()

	logger.Infof("serving %s on http://localhost%s", *dir, listen)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
}

func newRouter(dir string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(15 * time.Second))
	r.Use(middleware.NoCache)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/*", http.FileServer(http.Dir(dir)))
	return r
}
