// Package server exposes the resolved content as a JSON read API for
// the client-rendered site.
package server

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/davideasaf/neuralnotes/pkg/content"
	"github.com/davideasaf/neuralnotes/pkg/siteconfig"
)

// Config holds the server configuration.
type Config struct {
	Addr string

	// StaticDir, when non-empty, is served at the root for the client
	// application.
	StaticDir string

	Logger *slog.Logger
}

// Server wires the content resolver and configuration provider behind
// HTTP routes.
type Server struct {
	config   Config
	echo     *echo.Echo
	resolver *content.Resolver
	sitecfg  *siteconfig.Provider
}

// New creates the server and registers its routes.
func New(config Config, resolver *content.Resolver, sitecfg *siteconfig.Provider) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

	s := &Server{
		config:   config,
		echo:     e,
		resolver: resolver,
		sitecfg:  sitecfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	e := s.echo

	api := e.Group("/api")
	api.GET("/config", s.handleConfig)
	api.GET("/media/video", s.handleVideoValidation)
	api.GET("/:kind", s.handleList)
	api.GET("/:kind/:slug", s.handleItem)

	if s.config.StaticDir != "" {
		e.Static("/", s.config.StaticDir)
	}
}

// Start runs the server until it is shut down.
func (s *Server) Start() error {
	if s.config.Logger != nil {
		s.config.Logger.Info("serving content API", "addr", s.config.Addr)
	}
	if err := s.echo.Start(s.config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Handler exposes the routing tree, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}
