package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/riandyrn/otelchi"
	"github.com/stripe/stripe-go/v82"

	"cinebook/internal/assistant"
	"cinebook/internal/domain"
	"cinebook/internal/mailer"
	"cinebook/internal/payment"
	"cinebook/internal/repository"
	appvalidator "cinebook/internal/validator"
	"cinebook/internal/vcs"
)

var (
	version = vcs.Version()
)

type Application struct {
	config    config
	logger    *slog.Logger
	validator *validator.Validate
	mailer    mailer.Mailer

	catalogRepo domain.CatalogRepository
	bookingRepo domain.BookingRepository
	paymentRepo domain.PaymentRepository

	paymentProvider domain.PaymentProvider
	assistant       assistant.Assistant
}

type config struct {
	port int
	env  string
	groq struct {
		apiKey string
		apiURL string
		model  string
	}
	smtp struct {
		host     string
		port     int
		username string
		password string
		sender   string
	}
	stripe struct {
		secretKey  string
		successUrl string
		cancelUrl  string
	}
	otelCollectorUrl string
}

func Run() error {
	var cfg config

	flag.IntVar(&cfg.port, "port", 4000, "server port")
	flag.StringVar(&cfg.env, "env", "dev", "Environment (dev|staging|prod)")

	flag.StringVar(&cfg.groq.apiKey, "groq-key", os.Getenv("GROQ_API_KEY"), "Groq API key (empty enables the local mock assistant)")
	flag.StringVar(&cfg.groq.apiURL, "groq-url", envOrDefault("GROQ_API_URL", assistant.DefaultGroqURL), "Groq chat completions URL")
	flag.StringVar(&cfg.groq.model, "groq-model", envOrDefault("GROQ_MODEL", assistant.DefaultGroqModel), "Groq model")

	flag.StringVar(&cfg.smtp.host, "smtp-host", "sandbox.smtp.mailtrap.io", "SMTP host")
	flag.IntVar(&cfg.smtp.port, "smtp-port", 2525, "SMTP port")
	flag.StringVar(&cfg.smtp.username, "smtp-username", "", "SMTP username (empty keeps the mock mailer)")
	flag.StringVar(&cfg.smtp.password, "smtp-password", "", "SMTP password")
	flag.StringVar(&cfg.smtp.sender, "smtp-sender", "CineBook <no-reply@cinebook.example.com>", "SMTP sender")

	flag.StringVar(&cfg.stripe.secretKey, "stripe-key", "", "Stripe secret key (empty keeps the demo payment provider)")
	flag.StringVar(&cfg.stripe.successUrl, "stripe-success-url", "https://example.com/success.html", "Stripe payment success page")
	flag.StringVar(&cfg.stripe.cancelUrl, "stripe-cancel-url", "https://example.com/failure.html", "Stripe payment failure page")

	flag.StringVar(&cfg.otelCollectorUrl, "otel-collector-url", "", "OpenTelemetry collector URL (empty disables telemetry)")

	displayVersion := flag.Bool("version", false, "Display version and exit")

	flag.Parse()

	if *displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		os.Exit(0)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	catalogRepo := repository.NewMemoryCatalogRepository()
	bookingRepo := repository.NewMemoryBookingRepository()
	paymentRepo := repository.NewMemoryPaymentRepository()

	var paymentProvider domain.PaymentProvider = payment.NewDemoProvider()
	if cfg.stripe.secretKey != "" {
		stripe.Key = cfg.stripe.secretKey
		paymentProvider = payment.NewStripeProvider(cfg.stripe.successUrl, cfg.stripe.cancelUrl)
	}

	var chatAssistant assistant.Assistant = assistant.NewMockAssistant(catalogRepo)
	if cfg.groq.apiKey != "" {
		chatAssistant = assistant.NewGroqClient(cfg.groq.apiKey, cfg.groq.apiURL, cfg.groq.model, nil)
	}

	var appMailer mailer.Mailer = mailer.NewMockMailer()
	if cfg.smtp.username != "" {
		appMailer = mailer.NewSMTPMailer(cfg.smtp.host, cfg.smtp.port, cfg.smtp.username, cfg.smtp.password, cfg.smtp.sender)
	}

	app := &Application{
		config:          cfg,
		logger:          logger,
		validator:       appvalidator.NewValidator(),
		mailer:          appMailer,
		catalogRepo:     catalogRepo,
		bookingRepo:     bookingRepo,
		paymentRepo:     paymentRepo,
		paymentProvider: paymentProvider,
		assistant:       chatAssistant,
	}

	shutdownTelemetry, err := app.InitTelemetry()
	if err != nil {
		return err
	}
	defer shutdownTelemetry(context.Background())

	return app.run()
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}

func (app *Application) run() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", app.config.port),
		Handler:      app.routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(app.logger.Handler(), slog.LevelDebug),
	}

	shutdownError := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		app.logger.Info("shutting down server", "signal", s.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		err := srv.Shutdown(ctx)
		if err != nil {
			shutdownError <- err
		}

		shutdownError <- nil
	}()

	app.logger.Info("starting server", "addr", srv.Addr, "env", app.config.env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdownError
	if err != nil {
		return err
	}

	app.logger.Info("stopped server", "addr", srv.Addr)

	return nil
}

func (app *Application) routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)

	r.Use(middleware.Logger)
	r.Use(middleware.RequestID)
	r.Use(otelchi.Middleware("cinebook-api", otelchi.WithChiRoutes(r)))
	r.Use(app.recoverPanic)
	r.Use(app.requestLogger)

	r.Get("/health", app.GetHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/movies", app.GetMovies)
		r.Get("/shows/{movieId}", app.GetShowsByMovie)

		r.Post("/book", app.CreateBookingHandler)

		r.Route("/pay", func(r chi.Router) {
			r.Post("/create", app.CreatePaymentHandler)
			r.Get("/status", app.PaymentStatusHandler)
			r.Post("/confirm", app.ConfirmPaymentHandler)
		})

		r.Post("/groq", app.AssistantHandler)
	})

	return r
}
