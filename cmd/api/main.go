package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/assethub-tools/nft-migrator/internal/adapter"
	"github.com/assethub-tools/nft-migrator/internal/api/middleware"
	"github.com/assethub-tools/nft-migrator/internal/api/server"
	"github.com/assethub-tools/nft-migrator/internal/collections"
	"github.com/assethub-tools/nft-migrator/internal/config"
	"github.com/assethub-tools/nft-migrator/internal/logger"
	"github.com/assethub-tools/nft-migrator/internal/mapper"
	"github.com/assethub-tools/nft-migrator/internal/metadata"
	"github.com/assethub-tools/nft-migrator/internal/migration"
	"github.com/assethub-tools/nft-migrator/internal/providers/jetstream"
	"github.com/assethub-tools/nft-migrator/internal/providers/substrate"
	"github.com/assethub-tools/nft-migrator/internal/reconciler"
	"github.com/assethub-tools/nft-migrator/internal/store"
	"github.com/assethub-tools/nft-migrator/internal/uri"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:     cfg.Debug,
		SentryDSN: cfg.SentryDSN,
		Tags: map[string]string{
			"service": "api-server",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting NFT migrator API")

	// Connect to database
	db, err := store.OpenDB(store.DBConfig{
		DSN:             cfg.Database.DSN(),
		ReadDSN:         cfg.Database.ReadDSN(),
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
	})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err))
	}
	if err := store.Migrate(db); err != nil {
		logger.FatalCtx(ctx, "Failed to migrate database schema", zap.Error(err))
	}
	dataStore := store.NewPGStore(db)
	logger.InfoCtx(ctx, "Connected to database")

	// Initialize adapters
	jsonAdapter := adapter.NewJSON()
	httpClient := adapter.NewHTTPClient(30 * time.Second)

	// Content gateways and metadata fetching
	resolver := uri.NewResolver(&uri.Config{
		Gateway:         cfg.Gateways.IPFSGateway,
		MetadataGateway: cfg.Gateways.MetadataGateway,
		ImagesGateway:   cfg.Gateways.ImagesGateway,
	})
	fetcher := metadata.NewFetcher(httpClient, resolver)

	// Connect to the chain node
	chainCfg := &substrate.Config{
		URL:        cfg.Chain.RPCURL,
		SS58Prefix: cfg.Chain.SS58Prefix,
	}
	chain, err := substrate.NewClient(chainCfg)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to chain node", zap.Error(err), zap.String("url", cfg.Chain.RPCURL))
	}
	logger.InfoCtx(ctx, "Connected to chain node", zap.String("url", cfg.Chain.RPCURL))

	// The signer is optional; without it the service runs read-only
	var submitter substrate.Submitter
	if cfg.Signer.Seed != "" {
		submitter, err = substrate.NewSubmitter(chainCfg, cfg.Signer.Seed)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to initialize signer", zap.Error(err))
		}
		logger.InfoCtx(ctx, "Signer ready", zap.String("address", submitter.Address()))
	} else {
		logger.WarnCtx(ctx, "No signer seed configured, submitting endpoints disabled")
	}

	// Connect to NATS JetStream
	publisher, err := jetstream.NewPublisher(jetstream.Config{
		URL:            cfg.NATS.URL,
		StreamName:     cfg.NATS.StreamName,
		MaxReconnects:  cfg.NATS.MaxReconnects,
		ReconnectWait:  cfg.NATS.ReconnectWait,
		ConnectionName: cfg.NATS.ConnectionName,
	}, adapter.NewNatsJetStream(), jsonAdapter)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to NATS", zap.Error(err), zap.String("url", cfg.NATS.URL))
	}
	defer publisher.Close()
	logger.InfoCtx(ctx, "Connected to NATS", zap.String("url", cfg.NATS.URL))

	// Assemble the core services
	reader := collections.NewReader(chain, fetcher)
	collectionMapper := mapper.NewMapper(chain, fetcher)
	rec := reconciler.NewReconciler(chain, reader, fetcher)
	orchestrator := migration.NewOrchestrator(rec, reader, submitter, dataStore, publisher, jsonAdapter)

	serverConfig := server.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		Auth: middleware.AuthConfig{
			JWTPublicKey: cfg.Auth.JWTPublicKey,
			APIKeys:      cfg.Auth.APIKeys,
		},
	}

	srv := server.New(serverConfig, reader, collectionMapper, rec, orchestrator, dataStore)

	// Start server in a goroutine
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.FatalCtx(shutdownCtx, "Server forced to shutdown", zap.Error(err))
	}

	logger.Info("API server stopped")
}
