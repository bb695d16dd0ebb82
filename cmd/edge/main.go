package main

import (
	"context"
	"net/http/httputil"
	"net/url"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/betracked/sessionkit/pkg/config"
	"github.com/betracked/sessionkit/pkg/cookie"
	"github.com/betracked/sessionkit/pkg/cookiesync"
	"github.com/betracked/sessionkit/pkg/httpserver"
	"github.com/betracked/sessionkit/pkg/logger"
	"github.com/betracked/sessionkit/pkg/routeguard"
)

type appConfig struct {
	AppEnv      string `env:"APP_ENV" envDefault:"development"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"betracked-edge"`

	// UpstreamURL is the dashboard origin all non-auth traffic proxies to.
	UpstreamURL string `env:"UPSTREAM_URL" envDefault:"http://localhost:3000"`

	Server httpserver.Config
	Cookie cookiesync.Config
	Guard  routeguard.Config
}

func main() {
	var cfg appConfig
	config.MustLoad(&cfg)

	log := logger.New(logger.WithEnvironment(cfg.AppEnv, cfg.ServiceName))
	logger.SetAsDefault(log)

	cfg.Guard = cfg.Guard.WithDefaults()

	upstream, err := url.Parse(cfg.UpstreamURL)
	if err != nil {
		log.Error("invalid upstream URL", logger.Error(err))
		os.Exit(1)
	}
	proxy := httputil.NewSingleHostReverseProxy(upstream)

	cookies := cookie.New(cookie.WithSecure(cfg.Cookie.Secure))
	tokenSync := cookiesync.NewHandler(cookies, cfg.Cookie, log)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Get("/healthz", httpserver.HealthCheckHandler(context.Background(), log))
	r.Mount("/api/auth", tokenSync.Router())
	r.Handle("/*", routeguard.Middleware(cfg.Guard)(proxy))

	srv := httpserver.NewFromConfig(cfg.Server, httpserver.WithLogger(log))
	if err := srv.Run(context.Background(), r); err != nil {
		log.Error("server stopped", logger.Error(err))
		os.Exit(1)
	}
}
