// file: cmd/root.go
// version: 2.0.0
// guid: 6a7b8c9d-0e1f-2a3b-4c5d-6e7f8a9b0c1d

package cmd

import (
	"fmt"
	"os"

	"github.com/jdfalk/book-lookup/internal/config"
	"github.com/jdfalk/book-lookup/internal/logger"
	"github.com/jdfalk/book-lookup/internal/metadata"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string
var logLevel string
var logFormat string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "book-lookup",
	Short: "Search and look up books across Google Books and Open Library",
	Long: `Book Lookup queries Google Books for book metadata and falls back to
Open Library when Google Books is unavailable. Results are normalized into a
single book record.

Run "book-lookup serve" to expose the lookup over HTTP, or use the search and
get commands directly from the terminal.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.book-lookup.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: trace, debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "console", "log format: console or json")

	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(getCmd)
}

func initConfig() {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not load .env: %v\n", err)
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".book-lookup")
	}

	readErr := viper.ReadInConfig()

	config.InitConfig()

	logger.Setup(logger.Config{
		Level:  config.AppConfig.LogLevel,
		Format: logger.ParseFormat(config.AppConfig.LogFormat),
	})

	log := logger.Component("config")
	if readErr == nil {
		log.Debug().Str("file", viper.ConfigFileUsed()).Msg("using config file")
	} else if cfgFile != "" {
		log.Warn().Err(readErr).Str("file", cfgFile).Msg("could not read config file")
	}
}

// newLookup wires the Google Books and Open Library clients from cfg.
func newLookup(cfg config.Config) *metadata.Lookup {
	return metadata.NewLookup(
		metadata.NewGoogleBooksClient(cfg.GoogleBooksBaseURL, cfg.GoogleBooksAPIKey, cfg.RequestTimeout),
		metadata.NewOpenLibraryClient(cfg.OpenLibraryBaseURL, cfg.RequestTimeout),
	)
}
