package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	httpSwagger "github.com/swaggo/http-swagger"
	"github.com/tinnkaaa/booking-system/api"
	"github.com/tinnkaaa/booking-system/config"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/protobuf/encoding/protojson"
)

const healthInterval = 10 * time.Second

type Option func(*options)

type options struct {
	check func(context.Context) error
}

// WithHealthCheck makes /healthz report NOT_SERVING while check fails.
func WithHealthCheck(check func(context.Context) error) Option {
	return func(o *options) {
		o.check = check
	}
}

type Servers struct {
	grpcServer *grpc.Server
	health     *health.Server
	httpServer *http.Server
	gatewayCon *grpc.ClientConn
	check      func(context.Context) error
	log        *zap.Logger
}

// Run starts the gRPC health server and the HTTP server (admin, healthz,
// swagger) and blocks until ctx is canceled or a server fails.
func Run(ctx context.Context, cfg *config.Config, admin http.Handler, log *zap.Logger, opts ...Option) error {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	s, err := newServers(cfg, admin, log, o)
	if err != nil {
		return err
	}
	defer s.gatewayCon.Close()

	errCh := make(chan error, 2)

	lis, err := net.Listen("tcp", cfg.GRPC.Address)
	if err != nil {
		return fmt.Errorf("listen gRPC %s: %w", cfg.GRPC.Address, err)
	}
	go func() { errCh <- s.grpcServer.Serve(lis) }()

	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	if s.check != nil {
		go s.watchHealth(ctx)
	}

	log.Info("servers started", zap.String("http", cfg.HTTP.Address), zap.String("grpc", cfg.GRPC.Address))

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		log.Info("shutting down servers")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.health.Shutdown()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		s.grpcServer.GracefulStop()
		return nil
	}
}

func newServers(cfg *config.Config, admin http.Handler, log *zap.Logger, o options) (*Servers, error) {
	grpcSrv := grpc.NewServer()
	healthSrv := health.NewServer()
	healthpb.RegisterHealthServer(grpcSrv, healthSrv)
	reflection.Register(grpcSrv)

	conn, err := grpc.NewClient(cfg.GRPC.Address, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("dial gRPC %s: %w", cfg.GRPC.Address, err)
	}

	gateway := runtime.NewServeMux(
		runtime.WithHealthzEndpoint(healthpb.NewHealthClient(conn)),
		runtime.WithMarshalerOption(runtime.MIMEWildcard, &runtime.JSONPb{
			MarshalOptions: protojson.MarshalOptions{UseProtoNames: true, EmitUnpopulated: true},
		}),
	)

	handler := http.NewServeMux()
	handler.Handle("/healthz", gateway)
	handler.Handle("/docs/", httpSwagger.Handler(httpSwagger.URL(api.OpenAPIPath)))
	handler.Handle("/", admin)

	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Address,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return &Servers{
		grpcServer: grpcSrv,
		health:     healthSrv,
		httpServer: httpSrv,
		gatewayCon: conn,
		check:      o.check,
		log:        log,
	}, nil
}

func (s *Servers) watchHealth(ctx context.Context) {
	ticker := time.NewTicker(healthInterval)
	defer ticker.Stop()

	serving := true
	for {
		checkCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		err := s.check(checkCtx)
		cancel()

		switch {
		case err != nil && serving:
			s.log.Warn("health check failed", zap.Error(err))
			s.health.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
			serving = false
		case err == nil && !serving:
			s.log.Info("health check recovered")
			s.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
			serving = true
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
