package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var onboardingCmd = &cobra.Command{
	Use:   "onboarding",
	Short: "Inspect onboarding state",
}

var onboardingStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether onboarding is complete",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		status, err := api.Onboarding().Status(cmd.Context())
		if err != nil {
			return describe(err)
		}
		if !status.Completed || status.Onboarding == nil {
			color.Yellow("Onboarding not completed.")
			return nil
		}
		rec := status.Onboarding
		color.Green("Onboarding completed %s", rec.CompletedAt.Format(time.DateOnly))
		fmt.Printf("  experience  %s\n", rec.ExperienceLevel)
		fmt.Printf("  goals       %s\n", strings.Join(rec.FitnessGoals, ", "))
		fmt.Printf("  time        %d min/session\n", rec.AvailableTime)
		return nil
	},
}

func init() {
	onboardingCmd.AddCommand(onboardingStatusCmd)
}
