package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/CakeVR/dialogic"
	"github.com/CakeVR/dialogic/internal/cli"
	"github.com/CakeVR/dialogic/internal/config"
	httpAdapter "github.com/CakeVR/dialogic/pkg/adapters/http"
	"github.com/CakeVR/dialogic/pkg/adapters/memory"
	redisAdapter "github.com/CakeVR/dialogic/pkg/adapters/redis"
	"github.com/CakeVR/dialogic/pkg/observability"
	"github.com/CakeVR/dialogic/pkg/persistence/middleware"
	"github.com/CakeVR/dialogic/pkg/ports"
	"github.com/CakeVR/dialogic/pkg/session"
	"github.com/prometheus/client_golang/prometheus"
	goredis "github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the portrait preview HTTP server",
	Long:  `Starts the preview API over HTTP: directive parsing, profile previews, and Prometheus metrics. Configuration comes from DIALOGIC_* environment variables.`,
	Run: func(cmd *cobra.Command, args []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		profilePaths, _ := cmd.Flags().GetStringSlice("profile")

		cfg, err := config.LoadServe()
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			os.Exit(1)
		}

		logger := cli.NewLogger(verbose)
		metrics := observability.NewMetrics(prometheus.DefaultRegisterer)
		engine, err := cli.NewEngine(logger, profilePaths, dialogic.WithLifecycleHooks(metrics.Hooks()))
		if err != nil {
			fmt.Printf("Error initializing engine: %v\n", err)
			os.Exit(1)
		}

		var store ports.StateStore
		sessionOpts := []session.Option{session.WithLogger(logger)}
		if cfg.RedisAddr != "" {
			client := goredis.NewClient(&goredis.Options{
				Addr:     cfg.RedisAddr,
				Password: cfg.RedisPassword,
				DB:       cfg.RedisDB,
			})
			store = redisAdapter.NewFromClient(client, redisAdapter.WithTTL(cfg.SessionTTL))
			sessionOpts = append(sessionOpts, session.WithLocker(redisAdapter.NewLocker(client, "dialogic:lock:")))
			logger.Info("Using Redis session store", "addr", cfg.RedisAddr)
		} else {
			store = memory.NewStore()
		}

		var middlewares []middleware.Middleware
		if cfg.HistoryLimit > 0 {
			middlewares = append(middlewares, middleware.NewHistoryLimitMiddleware(cfg.HistoryLimit))
		}
		key, err := cfg.StateKeyBytes()
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			os.Exit(1)
		}
		if key != nil {
			middlewares = append(middlewares, middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{ActiveKey: key}))
			logger.Info("Session state encryption enabled")
		}
		store = middleware.Chain(store, middlewares...)

		sessions := session.NewManager(store, sessionOpts...)

		srv := &http.Server{
			Addr:    cfg.Addr,
			Handler: httpAdapter.NewHandler(engine, httpAdapter.WithSessionManager(sessions)),
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			fmt.Printf("Starting Dialogic preview server on %s\n", srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			fmt.Printf("\nShutdown started... Signal: %v\n", sig)

			ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				_ = srv.Close()
				fmt.Printf("Could not stop server gracefully: %v\n", err)
				os.Exit(1)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
