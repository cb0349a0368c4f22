package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/blackrose-blackhat/cryptobuddy/backend/internal/cedar"
	"github.com/blackrose-blackhat/cryptobuddy/backend/internal/config"
	"github.com/blackrose-blackhat/cryptobuddy/backend/internal/dataset"
	"github.com/blackrose-blackhat/cryptobuddy/backend/internal/history"
	"github.com/blackrose-blackhat/cryptobuddy/backend/internal/logging"
	"github.com/blackrose-blackhat/cryptobuddy/backend/internal/responder"
	"github.com/blackrose-blackhat/cryptobuddy/backend/internal/session"
)

func newRootCmd(cfg *config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:           "cryptobuddy",
		Short:         "Rule-based crypto advisor chatbot",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChat(cmd, cfg)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&cfg.Policy.Path, "policy", cfg.Policy.Path, "Cedar response policy file (empty uses the built-in policy)")
	flags.BoolVar(&cfg.Policy.WatchChanges, "watch-policy", cfg.Policy.WatchChanges, "reload the policy file when it changes")
	flags.StringVar(&cfg.History.LogPath, "history-log", cfg.History.LogPath, "append conversation turns to this JSON-lines file")
	flags.StringVar(&cfg.Logging.Level, "log-level", cfg.Logging.Level, "log level: debug, info, warn, error")
	flags.StringVar(&cfg.Logging.Format, "log-format", cfg.Logging.Format, "log format: console or json")
	flags.BoolVar(&cfg.Metrics.Enabled, "metrics", cfg.Metrics.Enabled, "serve Prometheus metrics")
	flags.StringVar(&cfg.Metrics.Addr, "metrics-addr", cfg.Metrics.Addr, "metrics listen address")

	root.AddCommand(
		&cobra.Command{
			Use:   "chat",
			Short: "Start an interactive session (default)",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runChat(cmd, cfg)
			},
		},
		&cobra.Command{
			Use:   "describe <name-or-symbol>",
			Short: "Print the detail card for one asset",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runDescribe(cmd, args[0])
			},
		},
		&cobra.Command{
			Use:   "demo",
			Short: "Answer a fixed list of sample queries and exit",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runDemo(cmd, cfg)
			},
		},
	)

	return root
}

func runChat(cmd *cobra.Command, cfg *config.Config) error {
	app, err := bootstrap(cfg)
	if err != nil {
		return err
	}
	defer app.Close()

	return app.session.Run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
}

func runDemo(cmd *cobra.Command, cfg *config.Config) error {
	app, err := bootstrap(cfg)
	if err != nil {
		return err
	}
	defer app.Close()

	app.session.RunDemo(cmd.OutOrStdout())
	return nil
}

func runDescribe(cmd *cobra.Command, nameOrSymbol string) error {
	ds, err := dataset.Seed()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), responder.New(ds).Describe(nameOrSymbol))
	return err
}

// app holds the process-wide resources behind one session.
type app struct {
	logger  *zap.Logger
	engine  *cedar.Engine
	sink    *history.Sink
	server  *http.Server
	session *session.Session
}

func bootstrap(cfg *config.Config) (*app, error) {
	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return nil, err
	}
	a := &app{logger: logger}

	ds, err := dataset.Seed()
	if err != nil {
		return nil, err
	}

	a.engine = loadPolicy(cfg.Policy, logger)

	opts := []session.Option{
		session.WithName(cfg.Bot.Name, cfg.Bot.Version),
		session.WithLogger(logger),
		session.WithPolicy(a.engine),
	}

	if cfg.History.LogPath != "" {
		sink, err := history.NewFileSink(cfg.History.LogPath, logger)
		if err != nil {
			logger.Warn("history log disabled", zap.String("path", cfg.History.LogPath), zap.Error(err))
		} else {
			a.sink = sink
			opts = append(opts, session.WithHistorySink(sink))
		}
	}

	if cfg.Metrics.Enabled {
		a.server = serveMetrics(cfg.Metrics.Addr, logger)
	}

	a.session = session.New(ds, opts...)
	logger.Info("session started",
		zap.String("session_id", a.session.ID),
		zap.Int("assets", ds.Len()),
		zap.String("policy_version", a.engine.PolicyVersion()))

	return a, nil
}

// loadPolicy prefers the configured file and falls back to the
// built-in policy when it cannot be loaded.
func loadPolicy(cfg config.PolicyConfig, logger *zap.Logger) *cedar.Engine {
	if cfg.Path == "" {
		return cedar.NewDefaultEngine(logger)
	}

	engine, err := cedar.NewEngine(cfg.Path, logger)
	if err != nil {
		logger.Warn("failed to load policy file, using built-in policy",
			zap.String("path", cfg.Path), zap.Error(err))
		return cedar.NewDefaultEngine(logger)
	}

	if cfg.WatchChanges {
		if err := engine.StartHotReload(); err != nil {
			logger.Warn("policy hot-reload disabled", zap.Error(err))
		}
	}
	return engine
}

func serveMetrics(addr string, logger *zap.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok","service":"cryptobuddy"}`))
	})

	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.String("addr", addr), zap.Error(err))
		}
	}()
	logger.Info("serving metrics", zap.String("addr", addr))
	return srv
}

// Close releases everything bootstrap opened.
func (a *app) Close() {
	if a.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		a.server.Shutdown(ctx)
		cancel()
	}
	if a.engine != nil {
		a.engine.StopHotReload()
	}
	if a.sink != nil {
		if err := a.sink.Close(); err != nil {
			a.logger.Warn("failed to close history log", zap.Error(err))
		}
	}
	a.logger.Sync()
}
