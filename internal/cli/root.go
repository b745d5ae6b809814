package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"gym-portal/internal/wizard"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	APIURL string
	Format string // "json" | "text"

	// HTTPClient overrides the client used to reach the API. Tests set it.
	HTTPClient *http.Client
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for gymctl.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "gymctl",
		Short: "gymctl - gym membership portal client",
		Long:  "A terminal client for the gym portal: sign up through the membership wizard, list members and check BMI.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			opts.APIURL = v.GetString("api")
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().String("api", wizard.DefaultBaseURL, "portal API base URL (env GYM_API_URL)")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	_ = v.BindPFlag("api", cmd.PersistentFlags().Lookup("api"))
	_ = v.BindEnv("api", "GYM_API_URL")

	// Add subcommands
	cmd.AddCommand(NewSignupCommand(opts))
	cmd.AddCommand(NewUsersCommand(opts))
	cmd.AddCommand(NewBMICommand(opts))

	return cmd
}

func (o *RootOptions) apiClient() *wizard.APIClient {
	httpClient := o.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return wizard.NewAPIClient(o.APIURL, httpClient)
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

func writeJSON(w io.Writer, data any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
