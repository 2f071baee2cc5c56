// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	MonitoringEnabled bool `envconfig:"monitoring_enabled" default:"true"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port int `envconfig:"port" default:"8443"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`

	AuthenticationEnabled bool          `envconfig:"authentication_enabled" default:"true"`
	JWTSecretKey          string        `envconfig:"jwt_secret_key"`
	TokenIssuer           string        `envconfig:"token_issuer" default:"provisioning-dashboard"`
	TokenLifetime         time.Duration `envconfig:"token_lifetime" default:"720h"`

	CORSAllowedOrigins []string `envconfig:"cors_allowed_origins" default:"*"`

	WorkspaceDir     string        `envconfig:"workspace_dir" default:"workspace"`
	ProvisionCommand string        `envconfig:"provision_command" default:"nvflare provision"`
	ProvisionTimeout time.Duration `envconfig:"provision_timeout" default:"5m"`
	OutputMarker     string        `envconfig:"output_marker" default:"prod_00"`

	SeedDefaultData      bool   `envconfig:"seed_default_data" default:"false"`
	DefaultAdminEmail    string `envconfig:"default_admin_email" default:"admin@example.com"`
	DefaultAdminPassword string `envconfig:"default_admin_password" default:"admin123"`
}
