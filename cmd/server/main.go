package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	"github.com/cartridge/replay/internal/config"
	"github.com/cartridge/replay/internal/events"
	replayhttp "github.com/cartridge/replay/internal/http"
	"github.com/cartridge/replay/internal/metrics"
	"github.com/cartridge/replay/internal/service"
	"github.com/cartridge/replay/internal/storage"
	replayv1 "github.com/cartridge/replay/pkg/proto/replay/v1"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "replay",
	Short: "Cartridge RL Replay Service",
	Long: `Replay service that stores experience transitions and serves
training batches to learners.

Buffers are created per environment and support uniform, prioritized
and episodic storage, with optional n-step return computation at
sample time.`,
	Run: runServer,
}

func init() {
	cfg = config.Default()

	rootCmd.Flags().StringVar(&cfg.GRPCAddr, "grpc-addr", cfg.GRPCAddr, "gRPC listen address")
	rootCmd.Flags().StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address for health and stats")

	rootCmd.Flags().StringVar(&cfg.NATSURL, "nats-url", cfg.NATSURL, "NATS server URL (empty disables event publishing)")
	rootCmd.Flags().StringVar(&cfg.NATSSubject, "nats-subject", cfg.NATSSubject, "NATS subject for buffer events")

	rootCmd.Flags().DurationVar(&cfg.ShutdownTimeout, "shutdown-timeout", cfg.ShutdownTimeout, "Graceful shutdown timeout")

	rootCmd.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")

	// Bind flags to viper for environment variable support
	viper.BindPFlags(rootCmd.Flags())
	viper.SetEnvPrefix("REPLAY")
	viper.AutomaticEnv()
}

func runServer(cmd *cobra.Command, args []string) {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		logger = logger.Level(level)
	}

	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("Invalid configuration")
	}

	backend := storage.NewMemoryBackend()
	defer func() {
		if err := backend.Close(); err != nil {
			logger.Error().Err(err).Msg("Error closing backend")
		}
	}()

	var publisher events.Publisher = events.NoopPublisher{}
	if cfg.NATSURL != "" {
		natsPublisher, err := events.NewNATSPublisher(cfg.NATSURL, cfg.NATSSubject, logger)
		if err != nil {
			logger.Fatal().Err(err).Str("url", cfg.NATSURL).Msg("Failed to connect to NATS")
		}
		defer natsPublisher.Close()
		publisher = natsPublisher
	}

	collector := metrics.NewCollector(logger)
	replayService := service.NewReplayService(backend, publisher, collector, logger)

	server := grpc.NewServer(
		grpc.UnaryInterceptor(loggingInterceptor(logger)),
	)
	replayv1.RegisterReplayServer(server, replayService)

	// Enable reflection for development
	reflection.Register(server)

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		logger.Fatal().Err(err).Str("addr", cfg.GRPCAddr).Msg("Failed to listen")
	}

	go func() {
		logger.Info().Str("addr", lis.Addr().String()).Msg("Replay gRPC service listening")
		if err := server.Serve(lis); err != nil {
			logger.Fatal().Err(err).Msg("Failed to serve gRPC")
		}
	}()

	httpServer := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: replayhttp.NewServer(backend, &logger).Routes(),
	}
	go func() {
		logger.Info().Str("addr", cfg.HTTPAddr).Msg("Replay HTTP endpoints listening")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Failed to serve HTTP")
		}
	}()

	// Wait for interrupt signal
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	logger.Info().Msg("Shutting down gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("HTTP shutdown error")
	}

	stopped := make(chan struct{})
	go func() {
		server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-ctx.Done():
		logger.Warn().Msg("Shutdown timeout exceeded, forcing stop")
		server.Stop()
	case <-stopped:
		logger.Info().Msg("Server stopped gracefully")
	}
}

// loggingInterceptor logs gRPC requests
func loggingInterceptor(logger zerolog.Logger) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		evt := logger.Debug()
		if err != nil {
			evt = logger.Warn().Err(err)
		}
		evt.
			Str("method", info.FullMethod).
			Dur("duration", time.Since(start)).
			Msg("gRPC request")

		return resp, err
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
