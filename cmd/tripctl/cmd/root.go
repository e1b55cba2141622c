// Package cmd holds the tripctl cobra commands.
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pkordes/tripwise/backend/internal/apiclient"
	"github.com/pkordes/tripwise/backend/internal/logging"
)

const (
	keyServer  = "server"
	keyTimeout = "timeout"
	keyDebug   = "debug"
)

var (
	client *apiclient.Client
	errOut io.Writer = os.Stderr

	failure = color.New(color.FgRed, color.Bold)
)

var rootCmd = &cobra.Command{
	Use:   "tripctl",
	Short: "TripWise command line client",
	Long: `tripctl calls a running TripWise server.

Settings come from flags or TRIPCTL_* environment variables
(TRIPCTL_SERVER, TRIPCTL_TIMEOUT, TRIPCTL_DEBUG).`,
	PersistentPreRunE: setupClient,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		failure.Fprintf(errOut, "error: %v\n", err)
		os.Exit(1)
	}
}

func setupClient(_ *cobra.Command, _ []string) error {
	level := "warn"
	if viper.GetBool(keyDebug) {
		level = "debug"
	}
	log := logging.New(errOut, "text", level)

	server := viper.GetString(keyServer)
	if server == "" {
		return fmt.Errorf("server URL is required (--server or TRIPCTL_SERVER)")
	}
	timeout := viper.GetDuration(keyTimeout)
	if timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", timeout)
	}

	client = apiclient.New(server, &http.Client{Timeout: timeout}, log)
	return nil
}

func init() {
	viper.SetEnvPrefix("tripctl")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	flags := rootCmd.PersistentFlags()
	flags.String(keyServer, "http://localhost:8080", "TripWise server URL")
	flags.Duration(keyTimeout, 10*time.Second, "request timeout")
	flags.Bool(keyDebug, false, "log requests to stderr")

	for _, k := range []string{keyServer, keyTimeout, keyDebug} {
		if err := viper.BindPFlag(k, flags.Lookup(k)); err != nil {
			slog.Error("bind flag", "flag", k, "error", err)
		}
	}

	rootCmd.AddCommand(destinationsCmd)
	rootCmd.AddCommand(tripsCmd)
	tripsCmd.AddCommand(tripsCreateCmd)
}
