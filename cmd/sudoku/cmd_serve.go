package main

import (
	"errors"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	httpadapter "svw.info/sudokugen/internal/adapters/http"
	"svw.info/sudokugen/internal/generator"
	"svw.info/sudokugen/internal/hint"
	"svw.info/sudokugen/internal/infrastructure/storage"
	"svw.info/sudokugen/internal/solver"
	"svw.info/sudokugen/internal/usecase"
	"svw.info/sudokugen/internal/validator"
)

var (
	serveAddr     string
	servePersist  string
	serveLogLevel string
)

var commandServe = &cobra.Command{
	Use:   "serve",
	Short: "Serve the JSON API",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		lvl := slog.LevelInfo
		switch strings.ToLower(serveLogLevel) {
		case "debug":
			lvl = slog.LevelDebug
		case "warn":
			lvl = slog.LevelWarn
		case "error":
			lvl = slog.LevelError
		}
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
		if err := os.MkdirAll(servePersist, 0o755); err != nil {
			return err
		}

		s := solver.NewBacktrackingSolver()
		uc := usecase.NewService(
			s,
			generator.NewRandomGenerator(s),
			validator.New(),
			hint.NewSingles(),
			storage.NewFS(servePersist),
		)
		h := httpadapter.New(uc)

		srv := &http.Server{
			Addr:              serveAddr,
			Handler:           requestLogger(logger, h.Routes()),
			ReadHeaderTimeout: 5 * time.Second,
		}
		logger.Info("listening", "addr", serveAddr, "persist", servePersist)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

func init() {
	commandServe.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
	commandServe.Flags().StringVar(&servePersist, "persist-path", "./data", "save directory")
	commandServe.Flags().StringVar(&serveLogLevel, "log-level", "info", "debug|info|warn|error")
	mainCommand.AddCommand(commandServe)
}

// statusWriter captures HTTP status and bytes written.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// requestLogger logs method, path, status, bytes, and duration.
func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		logger.Info("http",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"bytes", sw.bytes,
			"dur", time.Since(start).Round(time.Millisecond),
		)
	})
}
