package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Port string `mapstructure:"PORT"`
	Env  string `mapstructure:"ENV"`

	DatabaseURL string `mapstructure:"DATABASE_URL"`
	DBMaxConns  int32  `mapstructure:"DB_MAX_CONNS"`
	DBMinConns  int32  `mapstructure:"DB_MIN_CONNS"`

	CORSOrigins []string `mapstructure:"CORS_ORIGINS"`

	JWTSecret    string `mapstructure:"JWT_SECRET"`
	AuthIssuer   string `mapstructure:"AUTH_ISSUER"`
	AuthAudience string `mapstructure:"AUTH_AUDIENCE"`

	// The three questionnaire ids the health-data series are derived from.
	FormGeneralID   string `mapstructure:"FORM_GENERAL_ID"`
	FormNutritionID string `mapstructure:"FORM_NUTRITION_ID"`
	FormSleepID     string `mapstructure:"FORM_SLEEP_ID"`

	MigrationsDir string `mapstructure:"MIGRATIONS_DIR"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_MIN_CONNS", 2)
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")
	v.SetDefault("FORM_GENERAL_ID", "24f92e42-cf91-49ba-a78c-892b59365115")
	v.SetDefault("FORM_NUTRITION_ID", "a23bc623-ac74-4f56-b73a-18f65bb3e45a")
	v.SetDefault("FORM_SLEEP_ID", "a6cb6ae4-0955-4b70-8010-65d28da49df2")
	v.SetDefault("MIGRATIONS_DIR", "migrations")

	// Bind env vars explicitly so Unmarshal picks them up
	for _, key := range []string{
		"PORT", "ENV", "DATABASE_URL", "DB_MAX_CONNS", "DB_MIN_CONNS",
		"CORS_ORIGINS", "JWT_SECRET", "AUTH_ISSUER", "AUTH_AUDIENCE",
		"FORM_GENERAL_ID", "FORM_NUTRITION_ID", "FORM_SLEEP_ID",
		"MIGRATIONS_DIR",
	} {
		v.BindEnv(key)
	}

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.CORSOrigins == nil {
		if origins := v.GetString("CORS_ORIGINS"); origins != "" {
			for _, o := range strings.Split(origins, ",") {
				if trimmed := strings.TrimSpace(o); trimmed != "" {
					cfg.CORSOrigins = append(cfg.CORSOrigins, trimmed)
				}
			}
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Validate checks that the configuration is safe to run. Outside development
// a JWT secret is mandatory; refusing to start beats running an open API.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT must not be empty")
	}
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if !c.IsDevelopment() && c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required when ENV=%q", c.Env)
	}
	if c.FormGeneralID == "" || c.FormNutritionID == "" || c.FormSleepID == "" {
		return fmt.Errorf("FORM_GENERAL_ID, FORM_NUTRITION_ID and FORM_SLEEP_ID must not be empty")
	}
	return nil
}
