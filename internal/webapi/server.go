// Package webapi exposes the catalog and inquiry HTTP surface.
package webapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/ogxlabs/ogxsupply/config"
	"github.com/ogxlabs/ogxsupply/internal/domain"
)

// Store is the persistence surface the handlers depend on, implemented by
// docstore.Store.
type Store interface {
	Connected() bool
	CreateDocument(ctx context.Context, kind string, doc interface{}) (string, error)
	GetDocuments(ctx context.Context, kind string, filter bson.M, limit int64) ([]bson.M, error)
	CountDocuments(ctx context.Context, kind string, filter bson.M) (int64, error)
	CollectionNames(ctx context.Context, max int) ([]string, error)
}

// Server wires routes, middleware and the request validator onto an echo
// instance. The store handle is injected; handlers hold no global state.
type Server struct {
	cfg   *config.AppConfig
	store Store
	echo  *echo.Echo
}

func NewServer(cfg *config.AppConfig, store Store) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = &inputValidator{}

	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{echo.GET, echo.POST, echo.PUT, echo.DELETE, echo.OPTIONS},
		AllowHeaders:     []string{"*"},
		AllowCredentials: false,
	}))
	e.Use(requestLogger())

	s := &Server{cfg: cfg, store: store, echo: e}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.echo.GET("/", s.root)
	s.echo.GET("/test", s.diagnostic)

	s.echo.POST("/api/products", s.createProduct)
	s.echo.GET("/api/products", s.listProducts)
	s.echo.POST("/api/products/seed", s.seedProducts)

	s.echo.POST("/api/inquiries", s.createInquiry)
}

// Start blocks serving HTTP until Shutdown is called.
func (s *Server) Start(addr string) error {
	return s.echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// inputValidator delegates to the schema layer's validator.
type inputValidator struct{}

func (v *inputValidator) Validate(i interface{}) error {
	return domain.Validate(i)
}

func requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			zap.L().Info("http request",
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency))
			return nil
		},
	})
}

// fail writes the uniform error shape used by every endpoint.
func fail(c echo.Context, code int, detail string) error {
	return c.JSON(code, echo.Map{"detail": detail})
}

// bindDetail extracts echo's bind failure message, which names the offending
// field on type mismatches.
func bindDetail(err error) string {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if msg, ok := he.Message.(string); ok {
			return msg
		}
	}
	return err.Error()
}

func (s *Server) root(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"message": "OGX Industrial Supply Backend is running"})
}
