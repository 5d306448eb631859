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

	"github.com/samber/lo"

	"github.com/samandr77/microservices/invoice/internal/api"
	"github.com/samandr77/microservices/invoice/internal/clients/assets"
	"github.com/samandr77/microservices/invoice/internal/clients/mailer"
	"github.com/samandr77/microservices/invoice/internal/entity"
	"github.com/samandr77/microservices/invoice/internal/repository"
	"github.com/samandr77/microservices/invoice/internal/service"
	"github.com/samandr77/microservices/invoice/pkg/broker"
	"github.com/samandr77/microservices/invoice/pkg/config"
	"github.com/samandr77/microservices/invoice/pkg/job"
	"github.com/samandr77/microservices/invoice/pkg/logger"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New(".env")
	panicOnErr("load config", err)

	l, err := logger.New(cfg.Logger.Level, cfg.Logger.Format)
	panicOnErr("create logger", err)

	repo := repository.New()
	assetsClient := assets.NewClient(cfg.Assets.RetryAttempts, cfg.Assets.Timeout)

	var mail service.Mailer
	if cfg.Mailer.Host != "" {
		mail = mailer.New(cfg.Mailer)
	} else {
		slog.WarnContext(ctx, "MAILER_HOST is empty, e-mail export is disabled")
	}

	var producer service.Producer = broker.NopProducer{}
	if len(cfg.Kafka.Brokers) > 0 {
		p := broker.NewProducer(l, cfg.Kafka.Brokers, cfg.Kafka.InvoiceExportedTopic)
		defer p.Close()

		producer = p
	}

	s := service.New(repo, assetsClient, mail, producer, service.Config{
		LogoURL:   cfg.Assets.LogoURL,
		FooterURL: cfg.Assets.FooterURL,
		DraftTTL:  cfg.Drafts.TTL,
		Seller:    sellerFromConfig(cfg.Seller),
	})

	jobs := job.NewService().
		TryRegisterJob(cfg.Drafts.TTL > 0, "expire drafts", cfg.Drafts.SweepInterval, s.ExpireDrafts)
	jobs.Start(ctx)

	handler := api.NewHandler(s)
	mw := api.NewMiddleware(cfg.HTTP.AllowedOrigins)

	router := api.NewRouter(handler, mw)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      router,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
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

		waitSignal(ctx)

		err := server.Shutdown(ctx)
		if err != nil {
			slog.ErrorContext(ctx, "server shutdown", "error", err)
		}

		cancel()
		jobs.Stop()
	}()

	wg.Wait()
}

func waitSignal(ctx context.Context) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	sig := <-ch

	slog.InfoContext(ctx, "got OS signal", "signal", sig.String())
}

// sellerFromConfig applies the non-empty SELLER_* overrides to the built-in presets.
func sellerFromConfig(c config.Seller) entity.Seller {
	s := entity.DefaultSeller()
	or := func(override, preset string) string {
		return lo.Ternary(override != "", override, preset)
	}

	s.Bank.CompanyName = or(c.BankCompanyName, s.Bank.CompanyName)
	s.Bank.AccountNo = or(c.BankAccountNo, s.Bank.AccountNo)
	s.Bank.BranchName = or(c.BankBranchName, s.Bank.BranchName)
	s.Bank.IFSCCode = or(c.BankIFSCCode, s.Bank.IFSCCode)
	s.Terms.Payment = or(c.TermsPayment, s.Terms.Payment)
	s.Terms.Insurance = or(c.TermsInsurance, s.Terms.Insurance)
	s.Terms.Freight = or(c.TermsFreight, s.Terms.Freight)
	s.Company.GSTNo = or(c.GSTNo, s.Company.GSTNo)
	s.Company.StateCode = or(c.StateCode, s.Company.StateCode)
	s.Company.CIN = or(c.CIN, s.Company.CIN)

	return s
}

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}
