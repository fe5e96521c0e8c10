package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	Docs   DocsConfig   `mapstructure:"docs"   validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port                   int    `mapstructure:"port"                     validate:"required,gt=0,lt=65536"`
	LogLevel               string `mapstructure:"log_level"                validate:"required,oneof=debug info warn error"`
	ShutdownTimeoutSeconds int    `mapstructure:"shutdown_timeout_seconds" validate:"required,gte=1,lte=300"`
}

// DocsConfig controls the welcome page, the interactive docs page and the
// OpenAPI document.
type DocsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Title   string `mapstructure:"title"   validate:"required"`
}
