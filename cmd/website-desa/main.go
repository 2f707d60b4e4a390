package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"github.com/andika-123140096/website-desa/internal/api"
	"github.com/andika-123140096/website-desa/internal/pkg/constants"
	"github.com/andika-123140096/website-desa/internal/pkg/logger"
	"github.com/andika-123140096/website-desa/internal/pkg/store"
	"github.com/andika-123140096/website-desa/internal/pkg/store/xpgx"
	"github.com/andika-123140096/website-desa/internal/pkg/tokenstore"
)

func main() {
	initConfig()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := logger.Init(viper.GetBool(constants.ViperLogDev)); err != nil {
		log.Fatalf("init logger: %s", err)
	}
	defer logger.Sync()

	loc, err := time.LoadLocation(viper.GetString(constants.ViperTimezone))
	if err != nil {
		logger.Fatal(ctx, "load timezone: ", err)
	}

	pool, err := xpgx.New(ctx, viper.GetString(constants.ViperPostgresDSN))
	if err != nil {
		logger.Fatal(ctx, "connect postgres: ", err)
	}
	defer pool.Close()

	// The database may still be coming up when we are.
	ping := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 5), ctx)
	if err := backoff.Retry(func() error { return pool.Ping(ctx) }, ping); err != nil {
		logger.Fatal(ctx, "ping postgres: ", err)
	}

	tokens, err := tokenstore.Open(viper.GetString(constants.ViperBadgerDir))
	if err != nil {
		logger.Fatal(ctx, "open token store: ", err)
	}
	defer tokens.Close()

	apiSvc, err := api.NewAPIService(store.NewStore(pool, loc), tokens)
	if err != nil {
		logger.Fatal(ctx, "init api: ", err)
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return apiSvc.Serve(viper.GetString(constants.ViperHTTPAddr))
	})
	eg.Go(func() error {
		<-egCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return apiSvc.Shutdown(shutdownCtx)
	})

	if err := eg.Wait(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal(ctx, err)
	}
}

func initConfig() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	viper.SetDefault(constants.ViperHTTPAddr, ":8080")
	viper.SetDefault(constants.ViperBadgerDir, "data/tokens")
	viper.SetDefault(constants.ViperTimezone, "Asia/Jakarta")

	viper.SetEnvPrefix("WEBSITE_DESA")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Fatalf("read config: %s", err)
		}
	}
}
