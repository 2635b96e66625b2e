// file: cmd/serve.go
// version: 1.0.0
// guid: 0f4e8a2d-6b1c-4d73-9e25-7a3c5b8d1f60

package cmd

import (
	"time"

	"github.com/jdfalk/book-lookup/internal/config"
	"github.com/jdfalk/book-lookup/internal/server"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the book lookup HTTP gateway",
	Long: `Start the HTTP gateway exposing GET /api/books/search and
GET /api/books/:id, plus /api/health and /metrics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		srv := server.NewServer(newLookup(config.AppConfig))
		return srv.Start(serverConfigFromFlags(cmd, config.AppConfig))
	},
}

func init() {
	serveCmd.Flags().String("port", "", "port to run the web server on (default from config, 8080)")
	serveCmd.Flags().String("host", "", "host to bind the web server to (default from config, localhost)")
	serveCmd.Flags().String("read-timeout", "15s", "read timeout (e.g. 15s, 1m)")
	serveCmd.Flags().String("write-timeout", "15s", "write timeout (e.g. 15s, 1m)")
	serveCmd.Flags().String("idle-timeout", "60s", "idle timeout (e.g. 60s, 2m)")

	viper.BindPFlag("port", serveCmd.Flags().Lookup("port"))
	viper.BindPFlag("host", serveCmd.Flags().Lookup("host"))
}

// serverConfigFromFlags layers config values and command line flags over the defaults.
func serverConfigFromFlags(cmd *cobra.Command, appCfg config.Config) server.ServerConfig {
	cfg := server.GetDefaultServerConfig()

	if appCfg.Port != "" {
		cfg.Port = appCfg.Port
	}
	if appCfg.Host != "" {
		cfg.Host = appCfg.Host
	}

	// Override with command line flags if provided
	if port := cmd.Flag("port").Value.String(); port != "" {
		cfg.Port = port
	}
	if host := cmd.Flag("host").Value.String(); host != "" {
		cfg.Host = host
	}
	if rt := cmd.Flag("read-timeout").Value.String(); rt != "" {
		if d, err := time.ParseDuration(rt); err == nil {
			cfg.ReadTimeout = d
		}
	}
	if wt := cmd.Flag("write-timeout").Value.String(); wt != "" {
		if d, err := time.ParseDuration(wt); err == nil {
			cfg.WriteTimeout = d
		}
	}
	if it := cmd.Flag("idle-timeout").Value.String(); it != "" {
		if d, err := time.ParseDuration(it); err == nil {
			cfg.IdleTimeout = d
		}
	}

	return cfg
}
