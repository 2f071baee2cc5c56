// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/canonical/provisioning-dashboard/internal/authorization"
	"github.com/canonical/provisioning-dashboard/internal/config"
	"github.com/canonical/provisioning-dashboard/internal/db"
	startupkits "github.com/canonical/provisioning-dashboard/internal/kits"
	"github.com/canonical/provisioning-dashboard/internal/logging"
	"github.com/canonical/provisioning-dashboard/internal/monitoring"
	"github.com/canonical/provisioning-dashboard/internal/monitoring/prometheus"
	"github.com/canonical/provisioning-dashboard/internal/provisioning"
	"github.com/canonical/provisioning-dashboard/internal/storage"
	"github.com/canonical/provisioning-dashboard/internal/tracing"
	"github.com/canonical/provisioning-dashboard/pkg/applications"
	"github.com/canonical/provisioning-dashboard/pkg/authentication"
	"github.com/canonical/provisioning-dashboard/pkg/kits"
	"github.com/canonical/provisioning-dashboard/pkg/projects"
	"github.com/canonical/provisioning-dashboard/pkg/users"
	"github.com/canonical/provisioning-dashboard/pkg/web"
)

const serviceName = "provisioning-dashboard"

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	Run: func(cmd *cobra.Command, args []string) {
		main()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

// tokenManager both signs tokens at login and verifies them on requests.
type tokenManager interface {
	authentication.TokenIssuerInterface
	authentication.TokenVerifierInterface
}

func newTokenManager(specs *config.EnvSpec, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (tokenManager, error) {
	if !specs.AuthenticationEnabled {
		logger.Warn("Authentication is disabled, bearer tokens are taken as user emails")
		return authentication.NewNoopVerifier(), nil
	}

	logger.Info("Authentication is enabled")
	return authentication.NewJWTManager(specs.JWTSecretKey, specs.TokenIssuer, specs.TokenLifetime, tracer, monitor, logger)
}

func serve() error {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		panic(fmt.Errorf("issues with environment sourcing: %s", err))
	}

	logger := logging.NewLogger(specs.LogLevel)
	logger.Debugf("env vars: %v", specs)
	defer logger.Sync()

	var monitor monitoring.MonitorInterface = monitoring.NewNoopMonitor(serviceName, logger)
	if specs.MonitoringEnabled {
		monitor = prometheus.NewMonitor(serviceName, logger)
	}
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	dbClient, err := db.NewDBClient(dbConfig(specs), tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create database client: %v", err)
	}
	defer dbClient.Close()
	s := storage.NewStorage(dbClient, tracer, monitor, logger)

	if specs.SeedDefaultData {
		if _, err := seedDefaultData(context.Background(), s, dbClient, specs, tracer, logger); err != nil {
			return err
		}
	}

	tokens, err := newTokenManager(specs, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to set up authentication: %w", err)
	}

	authorizer := authorization.NewAuthorizer(s, tracer, monitor, logger)

	runner, err := provisioning.NewExecRunner(specs.ProvisionCommand, specs.ProvisionTimeout, tracer, logger)
	if err != nil {
		return err
	}

	provisioner, err := provisioning.NewProvisioner(
		provisioning.NewBuilder(s, tracer, monitor, logger),
		s,
		runner,
		specs.WorkspaceDir,
		specs.OutputMarker,
		tracer,
		monitor,
		logger,
	)
	if err != nil {
		return err
	}

	packager := startupkits.NewPackager(tracer, monitor, logger)

	apis := web.APIs{
		Users: users.NewAPI(
			users.NewService(s, tokens, tracer, monitor, logger),
			tracer, monitor, logger,
		),
		Projects: projects.NewAPI(
			projects.NewService(s, dbClient, authorizer, provisioner, tracer, monitor, logger),
			tracer, monitor, logger,
		),
		Applications: applications.NewAPI(
			applications.NewService(s, dbClient, authorizer, tracer, monitor, logger),
			tracer, monitor, logger,
		),
		Kits: kits.NewAPI(
			kits.NewService(s, dbClient, authorizer, provisioner, packager, tracer, monitor, logger),
			tracer, monitor, logger,
		),
	}

	router := web.NewRouter(
		apis,
		authentication.NewMiddleware(tokens, s, tracer, monitor, logger).Authenticate(),
		dbClient,
		dbClient,
		specs.CORSAllowedOrigins,
		tracer,
		monitor,
		logger,
	)
	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr: fmt.Sprintf("0.0.0.0:%v", specs.Port),
		// provisioning runs synchronously inside the request
		WriteTimeout: specs.ProvisionTimeout + time.Minute,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(ctx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}

func dbConfig(specs *config.EnvSpec) db.Config {
	return db.Config{
		DSN:             specs.DSN,
		MaxConns:        specs.DBMaxConns,
		MinConns:        specs.DBMinConns,
		MaxConnLifetime: specs.DBMaxConnLifetime,
		MaxConnIdleTime: specs.DBMaxConnIdleTime,
		TracingEnabled:  specs.TracingEnabled,
	}
}

func main() {
	if err := serve(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}
