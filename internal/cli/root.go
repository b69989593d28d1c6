// Package cli implements the shopadmin command line client. Every
// command talks to the same platform REST API as the web dashboard and
// runs the same list pipeline, so a filtered page in the terminal shows
// exactly what the corresponding dashboard page shows.
package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/me/shopadmin/internal/api"
	"github.com/me/shopadmin/internal/logging"
	"github.com/me/shopadmin/internal/token"
)

var (
	flagAPI       string
	flagDebug     bool
	flagLogLevel  string
	flagLogFormat string

	logger *slog.Logger
	client *api.Client
)

// defaultAPI returns the default platform API URL, checking the
// SHOPADMIN_API env var first.
func defaultAPI() string {
	if s := os.Getenv("SHOPADMIN_API"); s != "" {
		return s
	}
	return "http://localhost:5000"
}

// adminToken returns the stored bearer token as a TokenSource.
func adminToken() api.TokenSource {
	return api.StaticToken(token.Load())
}

// NewRootCmd creates the root cobra command for the shopadmin CLI.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "shopadmin",
		Short: "shopadmin — admin CLI for the shop platform",
		Long:  "shopadmin manages products, orders, subscriptions, and the rest of the shop platform from the terminal.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flagDebug {
				flagLogLevel = "debug"
			}
			logger = logging.NewLogger(logging.ParseLevel(flagLogLevel), flagLogFormat)
			client = api.NewClient(flagAPI, logger)
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flagAPI, "api", defaultAPI(), "Platform API URL (or SHOPADMIN_API env)")
	root.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&flagLogFormat, "log-format", "text", "Log format (text, json)")

	root.AddCommand(
		newLoginCmd(),
		newLogoutCmd(),
		newProductsCmd(),
		newCategoriesCmd(),
		newOrdersCmd(),
		newTransactionsCmd(),
		newShippingCmd(),
		newDiscountsCmd(),
		newPlansCmd(),
		newMembersCmd(),
		newToysCmd(),
		newCoursesCmd(),
	)

	return root
}
