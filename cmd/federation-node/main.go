package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-proto/pkg/blockinsight7000/v1"
	grpcMiddleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpcRecovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	grpcCtxTags "github.com/grpc-ecosystem/go-grpc-middleware/tags"
	grpcPrometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/goodnatureofminers/elias-federation/internal/archive"
	"github.com/goodnatureofminers/elias-federation/internal/config"
	"github.com/goodnatureofminers/elias-federation/internal/dispatcher"
	"github.com/goodnatureofminers/elias-federation/internal/distributor"
	"github.com/goodnatureofminers/elias-federation/internal/ledger"
	"github.com/goodnatureofminers/elias-federation/internal/metrics"
	"github.com/goodnatureofminers/elias-federation/internal/model"
	"github.com/goodnatureofminers/elias-federation/internal/repository/clickhouse"
	"github.com/goodnatureofminers/elias-federation/internal/transport"
)

type options struct {
	NodeID      string `long:"node-id" env:"FEDERATION_NODE_ID" description:"federation node id" required:"true"`
	GRPCAddr    string `long:"grpc-addr" env:"FEDERATION_GRPC_ADDR" description:"peer gRPC listen address" default:":7000"`
	HTTPAddr    string `long:"http-addr" env:"FEDERATION_HTTP_ADDR" description:"admin and health HTTP address" default:":7001"`
	MetricsAddr string `long:"metrics-addr" env:"FEDERATION_METRICS_ADDR" description:"prometheus metrics address" default:":7002"`
	DataDir     string `long:"data-dir" env:"FEDERATION_DATA_DIR" description:"directory holding the ledger file" default:"data"`
	LogJSON     bool   `long:"log-json" env:"FEDERATION_LOG_JSON" description:"structured JSON logs"`
	RulesConfig string `long:"rules-config" env:"FEDERATION_RULES_CONFIG" description:"YAML file with watched files, peers and rules dir"`

	MiningEnabled  bool          `long:"mining" env:"FEDERATION_MINING" description:"mine blocks on this node"`
	Difficulty     int           `long:"difficulty" env:"FEDERATION_DIFFICULTY" description:"leading zero hex digits required of a block hash" default:"4"`
	MaxAttempts    uint64        `long:"max-attempts" env:"FEDERATION_MAX_ATTEMPTS" description:"nonce attempts per mining cycle" default:"100000"`
	MiningInterval time.Duration `long:"mining-interval" env:"FEDERATION_MINING_INTERVAL" description:"time between mining cycles" default:"30s"`
	MaxPending     int           `long:"max-pending" env:"FEDERATION_MAX_PENDING" description:"pending transactions kept before the oldest are dropped" default:"10000"`

	SyncInterval time.Duration `long:"sync-interval" env:"FEDERATION_SYNC_INTERVAL" description:"time between rule file checks" default:"30s"`
	AckTimeout   time.Duration `long:"ack-timeout" env:"FEDERATION_ACK_TIMEOUT" description:"how long a peer has to acknowledge a rule update" default:"5s"`

	Retention     time.Duration `long:"retention" env:"FEDERATION_RETENTION" description:"how long finished requests are kept" default:"1h"`
	SweepInterval time.Duration `long:"sweep-interval" env:"FEDERATION_SWEEP_INTERVAL" description:"time between finished request sweeps" default:"30m"`
	Workers       int           `long:"workers" env:"FEDERATION_WORKERS" description:"consumer workers taking dispatched requests" default:"4"`
	SubmitRate    float64       `long:"submit-rate" env:"FEDERATION_SUBMIT_RATE" description:"admin submissions per second" default:"50"`
	SubmitBurst   int           `long:"submit-burst" env:"FEDERATION_SUBMIT_BURST" description:"admin submission burst" default:"100"`

	ClickhouseDSN        string        `long:"clickhouse-dsn" env:"FEDERATION_CLICKHOUSE_DSN" description:"ClickHouse DSN for the block archive, archiving is off when empty"`
	ArchiveBatchSize     int           `long:"archive-batch-size" env:"FEDERATION_ARCHIVE_BATCH_SIZE" description:"blocks per archive write" default:"64"`
	ArchiveFlushInterval time.Duration `long:"archive-flush-interval" env:"FEDERATION_ARCHIVE_FLUSH_INTERVAL" description:"max time a block waits for archiving" default:"5s"`
	ArchiveRate          int           `long:"archive-rate" env:"FEDERATION_ARCHIVE_RATE" description:"archive writes per second" default:"10"`
	ArchiveStateRetry    time.Duration `long:"archive-state-retry" env:"FEDERATION_ARCHIVE_STATE_RETRY" description:"wait between attempts to reach the archive at start" default:"5s"`
}

// chainRef lets the archiver be created before the ledger it backfills from.
type chainRef struct {
	*ledger.Ledger
}

func main() {
	cfg := options{}
	if _, err := flags.Parse(&cfg); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := newLogger(cfg.LogJSON)
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()
	grpcZap.ReplaceGrpcLoggerV2(logger)

	if err := run(ctx, cfg, logger.With(zap.String("node", cfg.NodeID))); err != nil {
		logger.Fatal("federation node failed", zap.Error(err))
	}
}

func newLogger(json bool) (*zap.Logger, error) {
	if json {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func run(ctx context.Context, cfg options, logger *zap.Logger) error {
	rules, err := config.Load(cfg.RulesConfig)
	if err != nil {
		return err
	}

	peers := make([]transport.Peer, 0, len(rules.Peers))
	for _, p := range rules.Peers {
		peers = append(peers, transport.Peer{NodeID: p.NodeID, Address: p.Address})
	}
	peerClient := transport.NewPeerClient(cfg.NodeID, peers, metrics.NewPeerClient(), logger)
	defer func() {
		if err := peerClient.Close(); err != nil {
			logger.Warn("close peer connections", zap.Error(err))
		}
	}()

	ledgerOpts := []ledger.Option{ledger.WithBroadcaster(peerClient)}
	var archiver *archive.Archiver
	ref := &chainRef{}
	if cfg.ClickhouseDSN != "" {
		repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
		if err != nil {
			return fmt.Errorf("init archive repository: %w", err)
		}
		defer func() {
			_ = repo.Close()
		}()
		archiver = archive.New(archive.Config{
			BatchSize:     cfg.ArchiveBatchSize,
			FlushInterval: cfg.ArchiveFlushInterval,
			FlushRate:     cfg.ArchiveRate,
			StateRetry:    cfg.ArchiveStateRetry,
		}, repo, ref, logger)
		ledgerOpts = append(ledgerOpts, ledger.WithBlockSink(archiver))
	}

	chain, err := ledger.New(ledger.Config{
		NodeID:         cfg.NodeID,
		MiningEnabled:  cfg.MiningEnabled,
		Difficulty:     cfg.Difficulty,
		MaxAttempts:    cfg.MaxAttempts,
		MiningInterval: cfg.MiningInterval,
		MaxPending:     cfg.MaxPending,
	}, ledger.NewFileStore(cfg.DataDir, cfg.MiningEnabled), metrics.NewLedger(cfg.NodeID), logger, ledgerOpts...)
	if err != nil {
		return fmt.Errorf("init ledger: %w", err)
	}
	ref.Ledger = chain

	queue, err := dispatcher.New(dispatcher.Config{
		NodeID:        cfg.NodeID,
		SweepInterval: cfg.SweepInterval,
		Retention:     cfg.Retention,
	}, metrics.NewDispatcher(cfg.NodeID), chain, logger)
	if err != nil {
		return fmt.Errorf("init dispatcher: %w", err)
	}
	consumers := dispatcher.NewConsumerPool(queue, dispatcher.AuditHandler{NodeID: cfg.NodeID, Audit: chain}, cfg.Workers, logger)

	files := make([]model.WatchedFile, 0, len(rules.WatchedFiles))
	for _, f := range rules.WatchedFiles {
		files = append(files, model.WatchedFile{Path: f.Path, RuleType: f.RuleType})
	}
	dist, err := distributor.New(distributor.Config{
		NodeID:       cfg.NodeID,
		AckTimeout:   cfg.AckTimeout,
		SyncInterval: cfg.SyncInterval,
	}, files, peerClient, metrics.NewDistributor(cfg.NodeID), chain, logger)
	if err != nil {
		return fmt.Errorf("init distributor: %w", err)
	}
	for _, p := range rules.Peers {
		if _, err := dist.RegisterClient(p.NodeID, p.RuleTypes); err != nil {
			return fmt.Errorf("register peer %s: %w", p.NodeID, err)
		}
	}
	receiver := distributor.NewReceiver(cfg.NodeID, rules.RulesDir, logger)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return queue.Run(ctx) })
	g.Go(func() error { return consumers.Run(ctx) })
	g.Go(func() error { return dist.Run(ctx) })
	g.Go(func() error { return chain.Run(ctx) })
	if archiver != nil {
		g.Go(func() error { return archiver.Run(ctx) })
	}

	grpcServer := newGRPCServer(logger)
	transport.RegisterPeerServiceServer(grpcServer, transport.NewPeerHandler(receiver, chain, logger))
	blockinsight7000v1.RegisterExplorerServiceServer(grpcServer, transport.NewHealthHandler(cfg.NodeID, chain))
	grpcPrometheus.Register(grpcServer)

	socket, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.GRPCAddr, err)
	}
	g.Go(func() error {
		logger.Info("starting gRPC server", zap.String("addr", cfg.GRPCAddr))
		if err := grpcServer.Serve(socket); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down gRPC server")
		grpcServer.GracefulStop()
		return nil
	})

	mux := http.NewServeMux()
	gw := gwruntime.NewServeMux()
	dialOpts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}
	if err := blockinsight7000v1.RegisterExplorerServiceHandlerFromEndpoint(ctx, gw, cfg.GRPCAddr, dialOpts); err != nil {
		return fmt.Errorf("register health gateway: %w", err)
	}
	mux.Handle("/", gw)
	transport.NewAdminHandler(queue, dist, chain, peerClient, cfg.SubmitRate, cfg.SubmitBurst, logger).Register(mux)
	serveHTTP(ctx, g, logger, cfg.HTTPAddr, cors.Default().Handler(mux))

	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", promhttp.Handler())
	serveHTTP(ctx, g, logger, cfg.MetricsAddr, metricsMux)

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	logger.Info("federation node stopped")
	return nil
}

func newGRPCServer(logger *zap.Logger) *grpc.Server {
	chain := []grpc.UnaryServerInterceptor{
		grpcRecovery.UnaryServerInterceptor(),
		grpcCtxTags.UnaryServerInterceptor(),
		grpcPrometheus.UnaryServerInterceptor,
		grpcZap.UnaryServerInterceptor(logger),
	}
	grpcPrometheus.EnableHandlingTimeHistogram()
	return grpc.NewServer(
		grpc.UnaryInterceptor(grpcMiddleware.ChainUnaryServer(chain...)),
	)
}

func serveHTTP(ctx context.Context, g *errgroup.Group, logger *zap.Logger, addr string, handler http.Handler) {
	s := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down http server", zap.String("addr", addr))
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
		defer cancel()
		return s.Shutdown(shutdownCtx)
	})
	g.Go(func() error {
		logger.Info("starting http server", zap.String("addr", addr))
		if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
}
