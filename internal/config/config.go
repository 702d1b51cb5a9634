package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
)

type Config struct {
	Token          string   `env:"TOKEN"`
	GuildID        string   `env:"GUILD_ID"`
	GMRoleID       string   `env:"GM_ROLE_ID"`
	DatabaseURL    string   `env:"DATABASE_URL" envDefault:"postgres://localhost:5432/mesabot?sslmode=disable"`
	MigrationsPath string   `env:"MIGRATIONS_PATH" envDefault:"migrations"`
	LocalesDir     string   `env:"LOCALES_DIR" envDefault:"locales"`
	DefaultLocale  string   `env:"DEFAULT_LOCALE" envDefault:"pt"`
	Locales        []string `env:"SUPPORTED_LOCALES" envDefault:"pt,en" envSeparator:","`
	WatchLocales   bool     `env:"LOCALES_WATCH" envDefault:"true"`
	HTTPAddr       string   `env:"HTTP_ADDR" envDefault:":8080"`
	AuditSchedule  string   `env:"AUDIT_SCHEDULE" envDefault:"@every 6h"`
	LogLevel       string   `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat      string   `env:"LOG_FORMAT" envDefault:"text"`
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	// .env is optional when the environment already provides the variables.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SlogLevel converts LogLevel; validate guarantees it parses.
func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	_ = level.UnmarshalText([]byte(c.LogLevel))
	return level
}

// validate checks the loaded values and normalizes Locales.
func (c *Config) validate() error {
	if strings.TrimSpace(c.Token) == "" {
		return fmt.Errorf("config: TOKEN é obrigatório e não pode estar vazio")
	}

	for _, r := range c.GMRoleID {
		if r < '0' || r > '9' {
			return fmt.Errorf("config: GM_ROLE_ID deve ser um ID de cargo do Discord (apenas dígitos)")
		}
	}

	parsed, err := url.Parse(c.DatabaseURL)
	if err != nil {
		return fmt.Errorf("config: DATABASE_URL inválida (%q): %w", c.DatabaseURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: DATABASE_URL inválida (%q): faltando scheme ou host", c.DatabaseURL)
	}

	locales := make([]string, 0, len(c.Locales))
	for _, loc := range c.Locales {
		if loc = strings.ToLower(strings.TrimSpace(loc)); loc != "" {
			locales = append(locales, loc)
		}
	}
	if len(locales) == 0 {
		return fmt.Errorf("config: SUPPORTED_LOCALES não pode estar vazio")
	}
	c.Locales = locales

	def := strings.ToLower(strings.TrimSpace(c.DefaultLocale))
	supported := false
	for _, loc := range c.Locales {
		if strings.HasPrefix(def, loc) {
			supported = true
			break
		}
	}
	if !supported {
		return fmt.Errorf("config: DEFAULT_LOCALE %q ausente de SUPPORTED_LOCALES %v", c.DefaultLocale, c.Locales)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return fmt.Errorf("config: LOG_LEVEL inválido (%q)", c.LogLevel)
	}

	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("config: LOG_FORMAT inválido (%q), valores permitidos: text, json", c.LogFormat)
	}

	if _, err := cron.ParseStandard(c.AuditSchedule); err != nil {
		return fmt.Errorf("config: AUDIT_SCHEDULE inválido (%q): %w", c.AuditSchedule, err)
	}

	return nil
}
