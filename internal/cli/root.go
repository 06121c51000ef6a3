// Package cli implements clubctl, a terminal client for the application form.
package cli

import (
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"clubform/internal/integration/gateway"
)

const defaultServer = "http://localhost:5000"

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

type rootOptions struct {
	server  string
	timeout time.Duration
}

func (o *rootOptions) client() *gateway.HTTPClient {
	return gateway.NewClient(o.server, &http.Client{Timeout: o.timeout})
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "clubctl",
		Short:        "Apply for club membership from the terminal",
		SilenceUsage: true,
	}

	server := os.Getenv("CLUBCTL_SERVER")
	if server == "" {
		server = defaultServer
	}
	cmd.PersistentFlags().StringVar(&opts.server, "server", server, "API server base URL (env CLUBCTL_SERVER)")
	cmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 10*time.Second, "HTTP timeout")

	cmd.AddCommand(catalogCmd(opts))
	cmd.AddCommand(applyCmd(opts))
	return cmd
}
