package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
	_ "time/tzdata" // receipt time zone on minimal images

	"github.com/samandr77/microservices/voucher/internal/api"
	"github.com/samandr77/microservices/voucher/internal/clients/backend"
	"github.com/samandr77/microservices/voucher/internal/clients/mailer"
	"github.com/samandr77/microservices/voucher/internal/repository"
	"github.com/samandr77/microservices/voucher/internal/service"
	"github.com/samandr77/microservices/voucher/pkg/broker"
	"github.com/samandr77/microservices/voucher/pkg/config"
	"github.com/samandr77/microservices/voucher/pkg/job"
	"github.com/samandr77/microservices/voucher/pkg/logger"
	"github.com/samandr77/microservices/voucher/pkg/metrics"
	"github.com/samandr77/microservices/voucher/pkg/postgres"
)

const (
	ReadTimeout     = 5 * time.Second
	WriteTimeout    = 45 * time.Second // settlement waits on the backend
	ShutdownTimeout = 30 * time.Second
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New(".env")
	panicOnErr("load config", err)

	l, err := logger.New(cfg.Logger.Level, cfg.Logger.Format)
	panicOnErr("create logger", err)

	loc, err := time.LoadLocation(cfg.Receipt.TimeZone)
	panicOnErr("load receipt time zone", err)

	metrics.Init()

	backendClient := backend.NewClient(cfg.Backend, metrics.ObserveBackend)

	var repo service.Repository

	if cfg.Postgres.DSN != "" {
		pool, err := postgres.Connect(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConn)
		panicOnErr("connect to postgres", err)
		defer pool.Close()

		err = postgres.UpMigrations(cfg.Postgres.DSN)
		panicOnErr("up migrations", err)

		repo = repository.New(pool)
	} else {
		slog.WarnContext(ctx, "POSTGRES_DSN is empty, receipt journal disabled")
	}

	var producer service.Producer

	if len(cfg.Kafka.Brokers) != 0 {
		p := broker.NewProducer(l, cfg.Kafka.Brokers, cfg.Kafka.VoucherSettledTopic)
		defer p.Close()

		producer = p
	}

	var mail service.Mailer

	if cfg.Mailer.Enabled {
		mail = mailer.New(cfg.Mailer)
	}

	s := service.New(backendClient, repo, producer, mail).WithLocation(loc)

	jobs := job.NewRunner().
		TryRegister(cfg.Backend.ServiceToken != "", "refresh fuel prices", cfg.Backend.PriceRefreshInterval,
			s.Prices().Refresh)
	jobs.Start(ctx)

	handler := api.NewHandler(s, loc)
	mw := api.NewMiddleware(s)

	router := api.NewRouter(handler, mw)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      router,
		ReadTimeout:  ReadTimeout,
		WriteTimeout: WriteTimeout,
	}

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Panicf("listen and serve: %s", err)
		}
	}()

	slog.InfoContext(ctx, "service started", "port", cfg.HTTP.Port)

	wg.Add(1)

	go func() {
		defer wg.Done()

		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
		sig := <-ch

		slog.InfoContext(ctx, "got OS signal", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer shutdownCancel()

		err := server.Shutdown(shutdownCtx)
		if err != nil {
			slog.ErrorContext(ctx, "server shutdown", "error", err)
		}

		cancel()
	}()

	wg.Wait()
	jobs.Wait()
}

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}
