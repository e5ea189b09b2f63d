package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/goliatone/go-errors"
	jobhub "github.com/goliatone/go-jobhub"
	"github.com/goliatone/go-jobhub/config"
	"github.com/goliatone/go-jobhub/database"
	"github.com/goliatone/go-jobhub/marketplace"
	"github.com/goliatone/go-logger/glog"
	"github.com/goliatone/go-router"
	"github.com/golang-jwt/jwt/v5"
)

func main() {
	lgr := glog.NewLogger(
		glog.WithLoggerTypePretty(),
		glog.WithLevel(glog.Debug),
		glog.WithName("jobhub"),
		glog.WithAddSource(false),
		glog.WithRichErrorHandler(errors.ToSlogAttributes),
	)

	if err := run(lgr); err != nil {
		lgr.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(lgr *glog.BaseLogger) error {
	ctx := context.Background()

	cfg, err := config.Load(".", "./config")
	if err != nil {
		return err
	}

	db, err := database.Open(cfg.DSN)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := database.Bootstrap(ctx, db); err != nil {
		return err
	}

	repo := jobhub.NewRepositoryManager(db)

	tokenService := jobhub.NewTokenService(
		[]byte(cfg.GetSigningKey()),
		cfg.GetTokenExpiration(),
		cfg.GetIssuer(),
		jwt.ClaimStrings(cfg.GetAudience()),
		lgr.GetLogger("tokens"),
	)

	auther := jobhub.NewAuthenticator(repo.Users(), repo.ActiveTokens(), cfg).
		WithLogger(lgr.GetLogger("auth")).
		WithTokenService(tokenService)

	httpAuth, err := jobhub.NewHTTPAuthenticator(auther, tokenService, repo.ActiveTokens(), cfg)
	if err != nil {
		return err
	}
	httpAuth.WithLogger(lgr.GetLogger("auth:http"))

	images, err := marketplace.NewImageStore(cfg.UploadDir)
	if err != nil {
		return err
	}

	srv := router.NewFiberAdapter(func(a *fiber.App) *fiber.App {
		return router.DefaultFiberOptions(fiber.New(fiber.Config{
			UnescapePath:  true,
			StrictRouting: false,
		}))
	})
	srv.Router().WithLogger(lgr.GetLogger("router"))

	jobhub.RegisterAuthRoutes(srv.Router(),
		jobhub.WithAuthControllerLogger(lgr.GetLogger("auth:ctrl")),
		jobhub.WithAuthControllerAuther(auther),
		jobhub.WithAuthControllerConfig(cfg),
	)

	marketplace.RegisterRoutes(srv.Router(), marketplace.Deps{
		Logger: lgr.GetLogger("marketplace"),
		Config: cfg,
		Auther: httpAuth,
		Store:  marketplace.NewStore(db),
		Users:  repo.Users(),
		Images: images,
	})

	lgr.Info("listening", "addr", cfg.ServerAddr)
	srv.Serve(cfg.ServerAddr)

	sig := waitExitSignal()
	lgr.Info("shutting down", "signal", sig.String())

	return nil
}

func waitExitSignal() os.Signal {
	ch := make(chan os.Signal, 3)
	signal.Notify(ch,
		syscall.SIGINT,
		syscall.SIGQUIT,
		syscall.SIGTERM,
	)
	return <-ch
}
