package http

import (
	"context"
	"log/slog"
	"net"
	"strconv"

	"taskboard/config"
	"taskboard/internal/delivery"
	"taskboard/internal/delivery/http/middleware"
	"taskboard/internal/delivery/http/router"
	"taskboard/internal/delivery/http/validator"
	"taskboard/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	slogecho "github.com/samber/slog-echo"
	"go.uber.org/fx"
)

type HTTPParams struct {
	fx.In
	fx.Lifecycle

	Config          *config.Config
	Logger          *slog.Logger
	ErrorMiddleware *middleware.ErrorMiddleware
	RouterParams    router.RouterParams
}

type httpServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

func NewServer(params HTTPParams) (delivery.Delivery, error) {
	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.HTTPErrorHandler = params.ErrorMiddleware.HandleHTTPError
	echoServer.Validator = validator.New()
	echoServer.Use(slogecho.New(params.Logger))
	echoServer.Use(echomiddleware.Recover())
	if len(params.Config.HTTP.AllowOrigins) > 0 {
		echoServer.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
			AllowOrigins: params.Config.HTTP.AllowOrigins,
		}))
	} else {
		echoServer.Use(echomiddleware.CORS())
	}
	if params.Config.HTTP.MaxRequestBodySize != "" {
		echoServer.Use(echomiddleware.BodyLimit(params.Config.HTTP.MaxRequestBodySize))
	}

	timeouts := params.Config.HTTP.Timeouts
	echoServer.Server.ReadTimeout = timeouts.ReadTimeout
	echoServer.Server.ReadHeaderTimeout = timeouts.ReadHeaderTimeout
	echoServer.Server.WriteTimeout = timeouts.WriteTimeout
	echoServer.Server.IdleTimeout = timeouts.IdleTimeout

	router := router.NewRouter(params.RouterParams)
	router.RegisterRoutes(echoServer)

	delivery := &httpServer{
		cfg:    params.Config,
		logger: params.Logger,
		server: echoServer,
	}

	params.Append(fx.Hook{
		OnStop: delivery.stop,
	})

	return delivery, nil
}

func (s *httpServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting HTTP server", slog.String("hostPort", hostPort))
	if err := s.server.Start(hostPort); err != nil {
		return errors.Wrap(err, "failed to serve http")
	}

	return nil
}

func (s *httpServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
