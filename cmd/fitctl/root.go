package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/c00p75/fitness-league-sub000/pkg/client"
)

var (
	apiURL   string
	apiToken string
	timeout  time.Duration

	api *client.Client
)

var rootCmd = &cobra.Command{
	Use:   "fitctl",
	Short: "Command line client for the fitness API",
	Long: `fitctl calls the fitness API procedures from a terminal.

CONFIGURATION:

  --url    or FITNESS_API_URL   base URL of the server (default http://localhost:8080)
  --token  or FITNESS_TOKEN     bearer token for protected procedures

EXAMPLES:

  fitctl whoami
  fitctl goals list
  fitctl goals create strength 100 kg --target 2026-12-31
  fitctl goals progress <goal-id> 42.5
  fitctl exercises search --query squat --category strength
  fitctl onboarding status`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if apiURL == "" {
			return errors.New("--url must not be empty")
		}
		api = client.New(apiURL,
			client.WithToken(apiToken),
			client.WithHTTPClient(&http.Client{Timeout: timeout}),
		)
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the identity behind the current token",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := api.Auth().CurrentUser(cmd.Context())
		if err != nil {
			return describe(err)
		}
		verified := color.YellowString("unverified")
		if user.EmailVerified {
			verified = color.GreenString("verified")
		}
		fmt.Printf("%s  %s (%s)\n", color.New(color.Bold).Sprint(user.UID), user.Email, verified)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "url", envOr("FITNESS_API_URL", "http://localhost:8080"), "API base URL")
	rootCmd.PersistentFlags().StringVar(&apiToken, "token", os.Getenv("FITNESS_TOKEN"), "bearer token")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 15*time.Second, "request timeout")

	rootCmd.AddCommand(whoamiCmd, goalsCmd, exercisesCmd, onboardingCmd)
	rootCmd.SetContext(context.Background())
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// describe turns a procedure error into a one-line message with its code.
func describe(err error) error {
	var rpcErr *client.Error
	if !errors.As(err, &rpcErr) {
		return err
	}
	msg := fmt.Sprintf("%s: %s", rpcErr.Code, rpcErr.Message)
	for _, v := range rpcErr.Violations {
		msg += fmt.Sprintf("\n  %s %s", color.YellowString(v.Field), v.Message)
	}
	if rpcErr.Code == client.CodeUnauthorized {
		msg += "\n  set --token or FITNESS_TOKEN"
	}
	return errors.New(msg)
}
