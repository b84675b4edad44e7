package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"reviewhub/config"
	"reviewhub/internal/delivery"
	apimiddleware "reviewhub/internal/delivery/api/middleware"
	"reviewhub/internal/delivery/api/response"
	"reviewhub/internal/delivery/api/router"
	"reviewhub/internal/delivery/api/validator"
	"reviewhub/internal/delivery/middleware"
	"reviewhub/internal/domain/lifecycle"
	"reviewhub/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
	"gorm.io/gorm"
)

const readyCheckTimeout = 2 * time.Second

// apiServer is the public REST delivery.
type apiServer struct {
	cfg    *config.Config
	logger *slog.Logger
	db     *gorm.DB
	server *echo.Echo
}

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc              fx.Lifecycle
	Cfg             *config.Config
	Logger          *slog.Logger
	DB              *gorm.DB
	ErrorMiddleware *apimiddleware.ErrorMiddleware
	RouterParams    router.RouterParams
}

// NewServer builds the echo server and registers its routes.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.Server.ReadTimeout = params.Cfg.HTTP.Timeouts.ReadTimeout
	echoServer.Server.ReadHeaderTimeout = params.Cfg.HTTP.Timeouts.ReadHeaderTimeout
	echoServer.Server.WriteTimeout = params.Cfg.HTTP.Timeouts.WriteTimeout
	echoServer.Server.IdleTimeout = params.Cfg.HTTP.Timeouts.IdleTimeout

	// Recover first, then request ID so the logger sees it
	echoServer.Use(echomiddleware.Recover())
	echoServer.Use(middleware.NewRequestIDMiddleware(params.Logger).Process)
	echoServer.Use(middleware.NewLoggerMiddleware(params.Logger, params.Cfg).Handle)
	echoServer.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders:  []string{echo.HeaderAuthorization, echo.HeaderContentType, "X-Request-Id"},
		ExposeHeaders: []string{"X-Request-Id"},
	}))
	echoServer.Use(echomiddleware.BodyLimit(params.Cfg.HTTP.MaxRequestBodySize))

	echoServer.HTTPErrorHandler = params.ErrorMiddleware.HandleHTTPError
	echoServer.Validator = validator.New()

	srv := &apiServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		db:     params.DB,
		server: echoServer,
	}

	echoServer.GET("/ready", srv.ready)
	router.NewRouter(params.RouterParams).RegisterRoutes(echoServer)

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

func (s *apiServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting API HTTP server", slog.String("host_port", hostPort))
	h2Server := &http2.Server{
		IdleTimeout: s.cfg.HTTP.Timeouts.IdleTimeout,
	}
	if err := s.server.StartH2CServer(hostPort, h2Server); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

// ready reports 503 while the database is unreachable.
func (s *apiServer) ready(c echo.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return errors.WithStack(err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), readyCheckTimeout)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		s.logger.Warn("Readiness check failed", slog.Any("error", err))

		return response.Error(c, http.StatusServiceUnavailable, "NOT_READY", "Database unavailable", nil)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "ready"})
}

func (s *apiServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down API HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
