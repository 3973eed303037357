package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/wichananm65/product-catalogue/internal/product"
)

const (
	SourceHTTP     = "http"
	SourcePostgres = "postgres"
)

// Keys double as environment variable names (upper-cased by viper).
const (
	KeyAddr          = "catalogue_addr"
	KeyProductsURL   = "products_url"
	KeySource        = "catalogue_source"
	KeyDatabaseURL   = "database_url"
	KeyJWTSecret     = "jwt_secret"
	KeyClockTimeZone = "clock_timezone"
)

// Config holds environment-driven configuration.
type Config struct {
	Addr        string
	ProductsURL string
	Source      string
	DatabaseURL string
	JWTSecret   string
	TimeZone    string
}

// NewViper returns a viper instance with defaults and environment lookup.
// A .env file in the working directory is loaded first when present.
func NewViper() *viper.Viper {
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault(KeyAddr, ":8080")
	v.SetDefault(KeyProductsURL, product.DefaultProductsURL)
	v.SetDefault(KeySource, SourceHTTP)
	v.SetDefault(KeyDatabaseURL, "")
	v.SetDefault(KeyJWTSecret, "")
	v.SetDefault(KeyClockTimeZone, "Asia/Karachi")
	v.AutomaticEnv()
	return v
}

// Load reads configuration from v.
func Load(v *viper.Viper) Config {
	return Config{
		Addr:        v.GetString(KeyAddr),
		ProductsURL: v.GetString(KeyProductsURL),
		Source:      strings.ToLower(strings.TrimSpace(v.GetString(KeySource))),
		DatabaseURL: v.GetString(KeyDatabaseURL),
		JWTSecret:   v.GetString(KeyJWTSecret),
		TimeZone:    v.GetString(KeyClockTimeZone),
	}
}
