package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/placemate/placemate/internal/logging"
	"github.com/placemate/placemate/internal/server"
)

func newServerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the placemate server",
		RunE: func(cmd *cobra.Command, args []string) error {
			options, err := parseServerOptions(cmd)
			if err != nil {
				return err
			}

			if logFile := os.Getenv("PLACEMATE_LOG_FILE"); logFile != "" {
				logging.UseFileLogger(logFile)
			}

			srv, err := server.New(options)
			if err != nil {
				return fmt.Errorf("creating server: %w", err)
			}
			return runServer(cmd.Context(), srv)
		},
	}

	cmd.Flags().StringP("config-file", "f", "", "Server configuration file")
	cmd.Flags().String("addr-http", ":8080", "HTTP listen address")
	cmd.Flags().String("addr-metrics", ":9090", "Metrics listen address")
	cmd.Flags().String("db-file", "$HOME/.placemate/sqlite3.db", "Path to SQLite 3 database")
	cmd.Flags().String("db-connection-string", "", "Postgres connection string, overrides db-file")
	cmd.Flags().String("base-url", "", "External URL used in confirmation email links")
	cmd.Flags().Duration("session-duration", time.Hour*12, "Organization session duration")
	cmd.Flags().String("email-from-address", "", "From address for outgoing email")
	cmd.Flags().String("email-from-name", "", "From name for outgoing email")
	cmd.Flags().String("sendgrid-api-key", "", "Sendgrid API key (secret)")
	cmd.Flags().Bool("email-test-mode", false, "Capture outgoing email instead of sending it")

	return cmd
}

func parseServerOptions(cmd *cobra.Command) (server.Options, error) {
	var options server.Options

	v := viper.New()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return options, err
	}

	v.SetConfigName("config")
	v.AddConfigPath("/etc/placemate")
	v.AddConfigPath("$HOME/.placemate")
	v.AddConfigPath(".")

	if f := cmd.Flags().Lookup("config-file"); f != nil && f.Value.String() != "" {
		v.SetConfigFile(f.Value.String())
	}

	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.SetEnvPrefix("PLACEMATE")
	v.AutomaticEnv()

	var errConfigFileNotFound viper.ConfigFileNotFoundError
	if err := v.ReadInConfig(); err != nil {
		if !errors.As(err, &errConfigFileNotFound) {
			return options, err
		}
	}

	dbFile, err := canonicalPath(v.GetString("db-file"))
	if err != nil {
		return options, err
	}

	options = server.Options{
		DBFile:             dbFile,
		DBConnectionString: v.GetString("db-connection-string"),
		BaseURL:            v.GetString("base-url"),
		SessionDuration:    v.GetDuration("session-duration"),
		EmailFromAddress:   v.GetString("email-from-address"),
		EmailFromName:      v.GetString("email-from-name"),
		SendgridApiKey:     v.GetString("sendgrid-api-key"),
		EmailTestMode:      v.GetBool("email-test-mode"),
		Addr: server.ListenerOptions{
			HTTP:    v.GetString("addr-http"),
			Metrics: v.GetString("addr-metrics"),
		},
	}
	return options, nil
}

// canonicalPath expands environment variables and ~ in path, then makes it
// absolute.
func canonicalPath(path string) (string, error) {
	path = os.ExpandEnv(path)
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, path[2:])
	}
	return filepath.Abs(path)
}

// shim for testing
var runServer = func(ctx context.Context, srv *server.Server) error {
	return srv.Run(ctx)
}
