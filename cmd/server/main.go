package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	todov1 "github.com/dmehra2102/todoboard/api/todo/v1"
	"github.com/dmehra2102/todoboard/internal/app"
	"github.com/dmehra2102/todoboard/internal/infrastructure/cache"
	"github.com/dmehra2102/todoboard/internal/infrastructure/config"
	infrapostgres "github.com/dmehra2102/todoboard/internal/infrastructure/postgres"
	"github.com/dmehra2102/todoboard/internal/infrastructure/queue"
	"github.com/dmehra2102/todoboard/internal/interceptors"
	"github.com/dmehra2102/todoboard/pkg/auth"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/keepalive"
	"google.golang.org/grpc/reflection"
	reflectionv1 "google.golang.org/grpc/reflection/grpc_reflection_v1"
	reflectionv1alpha "google.golang.org/grpc/reflection/grpc_reflection_v1alpha"
)

const (
	serviceName    = "todoboard"
	serviceVersion = "1.0.0"
)

func main() {
	// Load Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger := initLogger(cfg)
	defer logger.Sync()

	logger.Info("Starting todoboard",
		zap.String("version", serviceVersion),
		zap.String("environment", cfg.Environment),
	)

	obs := cfg.GetObservabilityConfig()

	// Initialize OpenTelemetry
	if obs.EnableTracing {
		shutdown, err := initTracer(obs.OTLPEndpoint)
		if err != nil {
			logger.Fatal("Failed to initialize tracer", zap.Error(err))
		}
		defer shutdown(context.Background())
	}

	// Initialize database
	db, err := initDatabase(cfg.GetDatabaseConfig())
	if err != nil {
		logger.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer db.Close()

	// Run migrations
	if err := runMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	repo := infrapostgres.NewPostgresRepository(db)

	qcfg := cfg.GetQueueConfig()
	tasks := queue.New(logger.Named("queue"), queue.Config{
		Workers:     qcfg.Workers,
		Size:        qcfg.Size,
		TaskTimeout: qcfg.TaskTimeout,
	})

	todoService := app.NewTodoService(repo, tasks, auth.NewAuthorizer(), logger.Named("app"), cfg.DefaultPageSize)

	var svc app.Service = todoService
	if cc := cfg.GetCacheConfig(); cc.Enabled {
		cached := app.NewCachedTodoService(todoService, cache.Config{MaxSize: cc.MaxSize, TTL: cc.TTL}, logger.Named("cache"))
		todoService.OnOrderPersisted(cached.Invalidate)
		svc = cached
	}

	grpcServer := initGRPCServer(cfg, logger)

	// Service Registry
	todov1.RegisterTodoServiceServer(grpcServer, app.NewTodoServiceServer(svc, logger))

	// Register health service
	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(todov1.ServiceName, healthpb.HealthCheckResponse_SERVING)

	if cfg.EnableReflection {
		registerReflection(grpcServer)
	}

	// Start server
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Port))
	if err != nil {
		logger.Fatal("Failed to listen", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return tasks.Run(gctx)
	})

	g.Go(func() error {
		logger.Info("Server starting", zap.Int("port", cfg.Port))
		if err := grpcServer.Serve(lis); err != nil {
			return fmt.Errorf("grpc server: %w", err)
		}
		return nil
	})

	var metricsServer *http.Server
	if obs.EnableMetrics {
		metricsServer = newMetricsServer(cfg.MetricsPort, obs.PrometheusNamespace)
		g.Go(func() error {
			logger.Info("Metrics server starting", zap.Int("port", cfg.MetricsPort))
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("metrics server: %w", err)
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down gracefully...")
		healthServer.Shutdown()

		// Graceful shutdown with timeout
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		done := make(chan struct{})
		go func() {
			grpcServer.GracefulStop()
			close(done)
		}()

		select {
		case <-done:
			logger.Info("Server stopped gracefully")
		case <-shutdownCtx.Done():
			logger.Warn("Shutdown timeout exceeded, forcing stop")
			grpcServer.Stop()
		}

		// No request can enqueue any more; let the workers drain.
		tasks.Close()

		if metricsServer != nil {
			return metricsServer.Shutdown(shutdownCtx)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server exited with error", zap.Error(err))
	}
}

func initLogger(cfg *config.Config) *zap.Logger {
	var zcfg zap.Config
	if cfg.IsProduction() {
		zcfg = zap.NewProductionConfig()
	} else {
		zcfg = zap.NewDevelopmentConfig()
	}

	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err == nil {
		zcfg.Level = zap.NewAtomicLevelAt(level)
	}
	zcfg.Encoding = cfg.LogFormat

	logger, err := zcfg.Build()
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}

	return logger
}

func initTracer(endpoint string) (func(context.Context) error, error) {
	exporter, err := otlptracegrpc.New(context.Background(),
		otlptracegrpc.WithEndpoint(endpoint),
		otlptracegrpc.WithInsecure(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create otlp exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(serviceName),
			semconv.ServiceVersionKey.String(serviceVersion),
		)),
	)

	otel.SetTracerProvider(tp)

	return tp.Shutdown, nil
}

func initDatabase(cfg config.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Configure connection pool
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

func runMigrations(databaseURL, migrationsPath string) error {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return fmt.Errorf("failed to open database for migrations: %w", err)
	}
	defer db.Close()

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		fmt.Sprintf("file://%s", migrationsPath),
		"postgres",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

func newMetricsServer(port int, namespace string) *http.Server {
	buildInfo := promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "build_info",
			Help:      "Build information of the running server",
		},
		[]string{"version"},
	)
	buildInfo.WithLabelValues(serviceVersion).Set(1)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	return &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

// describedServices hides services whose descriptors are not in the protobuf
// registry. TodoService speaks the JSON codec and has no file descriptor, so a
// reflection client could list it but never resolve it.
type describedServices struct {
	server reflection.ServiceInfoProvider
	hidden map[string]bool
}

func (d describedServices) GetServiceInfo() map[string]grpc.ServiceInfo {
	out := make(map[string]grpc.ServiceInfo)
	for name, info := range d.server.GetServiceInfo() {
		if !d.hidden[name] {
			out[name] = info
		}
	}
	return out
}

func registerReflection(s *grpc.Server) {
	opts := reflection.ServerOptions{
		Services: describedServices{
			server: s,
			hidden: map[string]bool{todov1.ServiceName: true},
		},
	}
	reflectionv1.RegisterServerReflectionServer(s, reflection.NewServerV1(opts))
	reflectionv1alpha.RegisterServerReflectionServer(s, reflection.NewServer(opts))
}

func initGRPCServer(cfg *config.Config, logger *zap.Logger) *grpc.Server {
	opts := []grpc.ServerOption{
		grpc.KeepaliveParams(keepalive.ServerParameters{
			MaxConnectionIdle:     15 * time.Minute,
			MaxConnectionAge:      30 * time.Minute,
			MaxConnectionAgeGrace: 5 * time.Minute,
			Time:                  5 * time.Minute,
			Timeout:               1 * time.Minute,
		}),
		grpc.KeepaliveEnforcementPolicy(keepalive.EnforcementPolicy{
			MinTime:             1 * time.Minute,
			PermitWithoutStream: true,
		}),

		grpc.MaxRecvMsgSize(4 * 1024 * 1024),
		grpc.MaxSendMsgSize(4 * 1024 * 1024),

		grpc.ChainUnaryInterceptor(
			interceptors.RecoveryInterceptor(logger),
			interceptors.LoggingInterceptor(logger),
			interceptors.MetricsInterceptor(),
			interceptors.AuthInterceptor(cfg.JWTSecret),
			interceptors.TimeoutInterceptor(cfg.GetServerConfig().RequestTimeout),
		),
	}

	if cfg.EnableTracing {
		opts = append(opts, grpc.StatsHandler(otelgrpc.NewServerHandler()))
	}

	// TLS configuration for production
	if cfg.TLSEnabled {
		creds, err := credentials.NewServerTLSFromFile(cfg.TLSCertFile, cfg.TLSKeyFile)
		if err != nil {
			logger.Fatal("Failed to load TLS credentials", zap.Error(err))
		}
		opts = append(opts, grpc.Creds(creds))
	}

	return grpc.NewServer(opts...)
}
