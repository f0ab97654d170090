package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/saluddigital/portal/internal/config"
	"github.com/saluddigital/portal/internal/domain/calendar"
	"github.com/saluddigital/portal/internal/domain/forms"
	"github.com/saluddigital/portal/internal/domain/identity"
	"github.com/saluddigital/portal/internal/domain/metrics"
	"github.com/saluddigital/portal/internal/domain/reports"
	"github.com/saluddigital/portal/internal/platform/auth"
	"github.com/saluddigital/portal/internal/platform/db"
	"github.com/saluddigital/portal/internal/platform/middleware"
)

var version = "dev"

func main() {
	root := &cobra.Command{
		Use:   "portal-server",
		Short: "Patient portal API server",
	}
	root.AddCommand(serveCmd(), migrateCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}
}

func migrateCmd() *cobra.Command {
	migrate := &cobra.Command{
		Use:   "migrate",
		Short: "Manage database migrations",
	}

	migrate.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, pool, logger, err := setup(cmd.Context())
			if err != nil {
				return err
			}
			defer pool.Close()

			n, err := db.NewMigrator(pool, cfg.MigrationsDir).Up(cmd.Context())
			if err != nil {
				return err
			}
			logger.Info().Int("applied", n).Msg("migrations complete")
			return nil
		},
	})

	migrate.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, pool, _, err := setup(cmd.Context())
			if err != nil {
				return err
			}
			defer pool.Close()

			statuses, err := db.NewMigrator(pool, cfg.MigrationsDir).Status(cmd.Context())
			if err != nil {
				return err
			}
			for _, s := range statuses {
				state := "pending"
				if s.Applied {
					state = "applied " + s.AppliedAt.Format(time.RFC3339)
				}
				fmt.Printf("%04d  %-40s %s\n", s.Version, s.Name, state)
			}
			return nil
		},
	})

	return migrate
}

func setup(ctx context.Context) (*config.Config, *pgxpool.Pool, zerolog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, zerolog.Nop(), fmt.Errorf("load config: %w", err)
	}
	logger := newLogger(cfg)

	pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		return nil, nil, logger, fmt.Errorf("connect database: %w", err)
	}
	return cfg, pool, logger, nil
}

func newLogger(cfg *config.Config) zerolog.Logger {
	if cfg.IsDevelopment() {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stderr).With().Timestamp().Str("service", "portal").Logger()
}

func serve() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, pool, logger, err := setup(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization, "X-Request-ID"},
	}))

	e.GET("/health", db.HealthHandler(pool, version))

	api := e.Group("/api/v1")
	if cfg.IsDevelopment() && cfg.JWTSecret == "" {
		logger.Warn().Msg("JWT_SECRET not set, using development auth")
		api.Use(auth.DevAuthMiddleware())
	} else {
		api.Use(auth.JWTMiddleware(auth.JWTConfig{
			Issuer:     cfg.AuthIssuer,
			Audience:   cfg.AuthAudience,
			SigningKey: []byte(cfg.JWTSecret),
		}))
	}

	identitySvc := identity.NewService(identity.NewUserRepoPG(pool), identity.NewProfileRepoPG(pool))
	identity.NewHandler(identitySvc).RegisterRoutes(api)

	formsSvc := forms.NewService(forms.NewFormRepoPG(pool), forms.NewSubmissionRepoPG(pool))
	forms.NewHandler(formsSvc, identitySvc).RegisterRoutes(api)

	classifier := metrics.NewClassifier(cfg.FormGeneralID, cfg.FormNutritionID, cfg.FormSleepID)
	metricsSvc := metrics.NewService(metrics.NewSubmissionRepoPG(pool), classifier)
	metrics.NewHandler(metricsSvc, identitySvc).RegisterRoutes(api)

	calendarSvc := calendar.NewService(calendar.NewDailyLogRepoPG(pool), calendar.NewAppointmentRepoPG(pool))
	calendar.NewHandler(calendarSvc, identitySvc).RegisterRoutes(api)

	reportsSvc := reports.NewService(reports.NewReportRepoPG(pool))
	reports.NewHandler(reportsSvc, identitySvc).RegisterRoutes(api)

	addr := ":" + cfg.Port
	go func() {
		logger.Info().Str("addr", addr).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Error().Err(err).Msg("server stopped")
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
