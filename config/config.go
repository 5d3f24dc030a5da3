// Package config loads application settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v9"

	"cloudedge/services"
)

// Config holds all runtime settings. Every field has a sensible default so
// the app starts with no environment at all.
type Config struct {
	CompanyName       string `env:"COMPANY_NAME" envDefault:"CloudEdge Technologies"`
	ContactEmail      string `env:"CONTACT_EMAIL" envDefault:"sales@cloudedge.ae"`
	ContactPhone      string `env:"CONTACT_PHONE" envDefault:"+971 4 555 0100"`
	Website           string `env:"WEBSITE" envDefault:"www.cloudedge.ae"`
	Address           string `env:"ADDRESS" envDefault:"Office 1204, Marina Plaza, Dubai Marina, Dubai, UAE"`
	QuoteValidityDays int    `env:"QUOTE_VALIDITY_DAYS" envDefault:"7"`
}

// Load reads configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if cfg.QuoteValidityDays <= 0 {
		return Config{}, fmt.Errorf("QUOTE_VALIDITY_DAYS must be positive, got %d", cfg.QuoteValidityDays)
	}
	return cfg, nil
}

// Issuer returns the quote issuer details derived from this configuration.
func (c Config) Issuer() services.Issuer {
	return services.Issuer{
		Name:         c.CompanyName,
		Email:        c.ContactEmail,
		Phone:        c.ContactPhone,
		Website:      c.Website,
		Address:      c.Address,
		ValidityDays: c.QuoteValidityDays,
	}
}
