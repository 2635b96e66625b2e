// file: internal/config/config.go
// version: 2.0.0
// guid: 7b8c9d0e-1f2a-3b4c-5d6e-7f8a9b0c1d2e

package config

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	// GoogleBooksAPIKey is optional; Google Books allows keyless calls at a lower quota.
	GoogleBooksAPIKey  string
	GoogleBooksBaseURL string
	OpenLibraryBaseURL string
	RequestTimeout     time.Duration

	Host string
	Port string

	LogLevel  string
	LogFormat string
}

var AppConfig Config

// SetDefaults registers default values with viper.
func SetDefaults() {
	viper.SetDefault("google_books_base_url", "https://www.googleapis.com/books/v1")
	viper.SetDefault("openlibrary_base_url", "https://openlibrary.org")
	viper.SetDefault("request_timeout", "10s")
	viper.SetDefault("host", "localhost")
	viper.SetDefault("port", "8080")
	viper.SetDefault("log_level", "info")
	viper.SetDefault("log_format", "console")
}

// InitConfig initializes the application configuration
func InitConfig() {
	SetDefaults()

	// GOOGLE_BOOKS_API_KEY, OPENLIBRARY_BASE_URL, ... map onto the snake_case keys.
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	timeout := viper.GetDuration("request_timeout")
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	AppConfig = Config{
		GoogleBooksAPIKey:  strings.TrimSpace(viper.GetString("google_books_api_key")),
		GoogleBooksBaseURL: viper.GetString("google_books_base_url"),
		OpenLibraryBaseURL: viper.GetString("openlibrary_base_url"),
		RequestTimeout:     timeout,
		Host:               viper.GetString("host"),
		Port:               viper.GetString("port"),
		LogLevel:           viper.GetString("log_level"),
		LogFormat:          viper.GetString("log_format"),
	}
}

// LoadDotEnv loads KEY=VALUE pairs from the given files (default ".env") into
// the process environment without overriding variables that are already set.
// Missing files are not an error.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}
