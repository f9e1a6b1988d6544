package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/shopfront/admin-console/internal/config"
	"github.com/shopfront/admin-console/server"
	"github.com/shopfront/admin-console/session"
)

func main() {
	_ = godotenv.Load()

	for {
		if err := run(); err != nil {
			log.Fatal().Err(err).Msg("error running server")
			time.Sleep(1 * time.Second)
		} else {
			break
		}
	}
	log.Info().Msg("server stopped")
}

func run() (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("recovered from panic")
			debug.PrintStack()
			returnError = errors.New("panic recovered")
		}
	}()

	c := config.New()
	setupLogging(c)
	displayAppname(c.GetAppName())

	validator := session.NewValidator()
	registry := server.NewRegistry(
		storeFactory(c),
		validator,
		c.GetBackendBaseURL(),
		&http.Client{Timeout: c.GetBackendTimeout()},
		c.GetSessionCookieName(),
		c.GetSessionTTL(),
		log.Logger,
	)

	httpServer := &http.Server{Addr: c.GetPort(), Handler: server.New(c, registry, log.Logger)}
	go listenAndServe(httpServer)
	waitForStopSignal()
	returnError = shutdown(httpServer)
	return returnError
}

// storeFactory selects Redis-backed session slots when REDIS_ADDR is set,
// in-memory slots otherwise.
func storeFactory(c config.Config) session.StoreFactory {
	addr := c.GetRedisAddr()
	if addr == "" {
		return func(string) session.Store { return session.NewInMemoryStore() }
	}

	rdb := redis.NewClient(&redis.Options{Addr: addr})
	ttl := c.GetSessionTTL()
	log.Info().Str("addr", addr).Msg("using redis session store")
	return func(sessionID string) session.Store {
		return session.NewRedisStore(rdb, sessionID, ttl)
	}
}

func setupLogging(c config.Config) {
	if c.GetEnv() == "DEV" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		return
	}
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

func listenAndServe(httpServer *http.Server) error {
	log.Info().Str("addr", httpServer.Addr).Msg("server listening")
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server.ListenAndServe %w", err)
	}
	return nil
}

func waitForStopSignal() {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
}

func shutdown(httpServer *http.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server.Shutdown: %w", err)
	}
	return nil
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
