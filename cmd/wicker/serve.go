package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aretw0/wicker"
	fileAdapter "github.com/aretw0/wicker/internal/adapters/file"
	httpAdapter "github.com/aretw0/wicker/internal/adapters/http"
	redisAdapter "github.com/aretw0/wicker/internal/adapters/redis"
	"github.com/aretw0/wicker/internal/logging"
	"github.com/aretw0/wicker/internal/presentation/tui"
	"github.com/aretw0/wicker/pkg/ports"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the render HTTP server",
	Long:  `Starts Wicker in server mode, exposing POST /render plus template listing, health and metrics endpoints.`,
	Run: func(cmd *cobra.Command, args []string) {
		dir, _ := cmd.Flags().GetString("dir")
		port, _ := cmd.Flags().GetString("port")
		redisAddr, _ := cmd.Flags().GetString("redis")
		cacheTTL, _ := cmd.Flags().GetDuration("cache-ttl")

		if term.IsTerminal(int(os.Stdout.Fd())) {
			tui.PrintBanner(wicker.Version)
		}

		var loader ports.SourceLoader = fileAdapter.New(dir)
		if redisAddr != "" {
			cache := redisAdapter.New(redisAddr, "", 0, loader, redisAdapter.WithTTL(cacheTTL))
			defer cache.Close()
			loader = cache
		}

		reg := prometheus.NewRegistry()
		metrics := httpAdapter.NewMetrics(reg)

		engine, err := wicker.New(dir,
			wicker.WithLoader(loader),
			wicker.WithLogger(logging.New(slog.LevelInfo)),
			wicker.WithRenderHooks(metrics.Hooks()),
		)
		if err != nil {
			fmt.Printf("Error initializing wicker: %v\n", err)
			os.Exit(1)
		}

		srv := &http.Server{
			Addr:    ":" + port,
			Handler: httpAdapter.NewHandler(engine, reg),
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			fmt.Printf("Starting Wicker Server on %s\n", srv.Addr)
			fmt.Printf("Serving templates from: %s\n", dir)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		// Blocking main and waiting for shutdown.
		select {
		case err := <-serverErrors:
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			fmt.Printf("\nStart shutdown... Signal: %v\n", sig)

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				fmt.Printf("Graceful shutdown did not complete in %v: %v\n", 5*time.Second, err)
				if err := srv.Close(); err != nil {
					fmt.Printf("Error killing server: %v\n", err)
				}
			}
			fmt.Println("Wicker Server stopped gracefully")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
	serveCmd.Flags().String("redis", "", "Redis address for source caching (disabled when empty)")
	serveCmd.Flags().Duration("cache-ttl", 5*time.Minute, "TTL for cached template sources")
}
