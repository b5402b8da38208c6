package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/gogpu/painterly"
)

const (
	defaultAddr     = ":8080"
	defaultMaxBody  = 32 << 20 // request body cap in bytes
	defaultMaxSize  = 1600     // longest side of served paintings
	shutdownTimeout = 10 * time.Second
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr    string
	config  string
	maxBody int64
	maxSize int
}

// newServeCmd creates the serve command, an HTTP front end to the painter.
func newServeCmd() *cobra.Command {
	opts := serveOpts{addr: defaultAddr, maxBody: defaultMaxBody, maxSize: defaultMaxSize}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve paintings over HTTP",
		Long: `Serve starts an HTTP server. POST an image to /render and the response is its painting as PNG.
Style is selected with the query parameters complementary, flat, stroke_size, density and seed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			base := defaultConfig()
			if opts.config != "" {
				if err := loadConfig(opts.config, &base); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("max-size") || base.MaxSize == 0 {
				base.MaxSize = opts.maxSize
			}
			if err := base.validate(); err != nil {
				return err
			}
			return runServe(cmd.Context(), opts, base)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "TOML file with the default style")
	cmd.Flags().Int64Var(&opts.maxBody, "max-body", opts.maxBody, "maximum request body in bytes")
	cmd.Flags().IntVar(&opts.maxSize, "max-size", opts.maxSize, "downscale inputs so the longest side is at most this many pixels")

	return cmd
}

func runServe(ctx context.Context, opts serveOpts, base renderConfig) error {
	logger := loggerFromContext(ctx)
	srv := &http.Server{
		Addr:              opts.addr,
		Handler:           newRouter(logger, base, opts.maxBody),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(_ net.Listener) context.Context { return ctx },
	}

	errc := make(chan error, 1)
	go func() {
		logger.Infof("Listening on %s", opts.addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// newRouter builds the HTTP handler. Every request paints with base unless
// its query overrides a style parameter.
func newRouter(logger *log.Logger, base renderConfig, maxBody int64) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(logger))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprintln(w, "ok")
	})
	r.Post("/render", renderHandler(logger, base, maxBody))

	return r
}

func renderHandler(logger *log.Logger, base renderConfig, maxBody int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cfg := base
		if err := applyQuery(r.URL.Query(), &cfg); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := cfg.validate(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		body := http.MaxBytesReader(w, r.Body, maxBody)
		src, format, err := decodeRaster(body, cfg.MaxSize)
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
				return
			}
			http.Error(w, err.Error(), http.StatusUnsupportedMediaType)
			return
		}
		if src.Width() == 0 || src.Height() == 0 {
			http.Error(w, painterly.ErrInvalidDimensions.Error(), http.StatusUnsupportedMediaType)
			return
		}

		c, err := paint(withLogger(r.Context(), logger), src, cfg)
		if err != nil {
			if r.Context().Err() != nil {
				return
			}
			logger.Error("paint failed", "err", err, "request_id", middleware.GetReqID(r.Context()))
			http.Error(w, "paint failed", http.StatusInternalServerError)
			return
		}
		defer c.Close()

		var buf bytes.Buffer
		if err := c.EncodePNG(&buf); err != nil {
			http.Error(w, "encode failed", http.StatusInternalServerError)
			return
		}
		logger.Debug("painted", "format", format, "width", src.Width(), "height", src.Height(),
			"strokes", c.Drawn(), "request_id", middleware.GetReqID(r.Context()))

		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Content-Length", fmt.Sprint(buf.Len()))
		if _, err := w.Write(buf.Bytes()); err != nil {
			logger.Debug("write response", "err", err, "request_id", middleware.GetReqID(r.Context()))
		}
	}
}

// requestLogger logs each request at debug level once it completes.
func requestLogger(logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			logger.Debug("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"elapsed", time.Since(start).Round(time.Millisecond),
				"request_id", middleware.GetReqID(r.Context()))
		})
	}
}
