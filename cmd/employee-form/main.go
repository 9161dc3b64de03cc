// Command employee-form is the form client for the employee API. It serves the HTML form and offers
// terminal commands to add and list employees.
package main

import (
	"os"
	"time"

	"github.com/geocoder89/employeehub/internal/client"
	"github.com/geocoder89/employeehub/internal/config"
	"github.com/geocoder89/employeehub/internal/observability"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	apiURL  string
	timeout time.Duration
	env     string
}

func (o *rootOptions) client() *client.Client {
	return client.New(o.apiURL, o.timeout, client.WithLogger(observability.NewLogger(o.env)))
}

func newRootCmd(cfg config.ClientConfig) *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "employee-form",
		Short:         "Add and list employees through the employee API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&opts.apiURL, "api", cfg.APIBaseURL, "Employee API base URL (or set EMPLOYEE_API_URL)")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", cfg.Timeout, "Request timeout")
	root.PersistentFlags().StringVar(&opts.env, "env", "prod", "Log level profile (dev logs debug)")

	root.AddCommand(newServeCmd(opts, cfg.WebPort))
	root.AddCommand(newAddCmd(opts))
	root.AddCommand(newListCmd(opts))

	return root
}

func main() {
	root := newRootCmd(config.LoadClient())
	if err := root.Execute(); err != nil {
		root.PrintErrln("Error:", err)
		os.Exit(1)
	}
}
