package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/c00p75/fitness-league-sub000/pkg/client"

)

var (
	goalTarget string
	goalStart  string
)

var goalsCmd = &cobra.Command{
	Use:   "goals",
	Short: "Manage fitness goals",
}

var goalsListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List your goals, newest first",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		goals, err := api.Goals().List(cmd.Context())
		if err != nil {
			return describe(err)
		}
		if len(goals) == 0 {
			fmt.Println("No goals yet.")
			return nil
		}
		for _, g := range goals {
			printGoal(g)
		}
		return nil
	},
}

var goalsCreateCmd = &cobra.Command{
	Use:   "create <type> <target> <unit>",
	Short: "Create a goal",
	Long: `Create a goal of one of the types:
  weight_loss, muscle_gain, endurance, flexibility, strength, general_fitness

Dates use YYYY-MM-DD. --start defaults to now on the server.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		target, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("target must be a number: %w", err)
		}
		targetDate, err := time.Parse(time.DateOnly, goalTarget)
		if err != nil {
			return fmt.Errorf("--target: %w", err)
		}
		in := client.CreateGoalInput{
			Type:        args[0],
			TargetValue: target,
			Unit:        args[2],
			TargetDate:  targetDate.UTC(),
		}
		if goalStart != "" {
			start, err := time.Parse(time.DateOnly, goalStart)
			if err != nil {
				return fmt.Errorf("--start: %w", err)
			}
			in.StartDate = &start
		}

		goal, err := api.Goals().Create(cmd.Context(), in)
		if err != nil {
			return describe(err)
		}
		color.Green("Created goal %s", goal.ID)
		printGoal(*goal)
		return nil
	},
}

var goalsProgressCmd = &cobra.Command{
	Use:   "progress <goal-id> <value>",
	Short: "Record the current value of a goal",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("value must be a number: %w", err)
		}
		goal, err := api.Goals().UpdateProgress(cmd.Context(), args[0], value)
		if err != nil {
			return describe(err)
		}
		printGoal(*goal)
		return nil
	},
}

func init() {
	goalsCreateCmd.Flags().StringVar(&goalTarget, "target", "", "target date (YYYY-MM-DD)")
	goalsCreateCmd.Flags().StringVar(&goalStart, "start", "", "start date (YYYY-MM-DD)")
	_ = goalsCreateCmd.MarkFlagRequired("target")

	goalsCmd.AddCommand(goalsListCmd, goalsCreateCmd, goalsProgressCmd)
}

func printGoal(g client.Goal) {
	faint := color.New(color.Faint)
	status := color.GreenString("active")
	if !g.IsActive {
		status = faint.Sprint("inactive")
	}
	percent := 0.0
	if g.TargetValue > 0 {
		percent = g.CurrentValue / g.TargetValue * 100
	}
	fmt.Printf("%s  %-16s %7.1f/%-7.1f %-8s %5.1f%%  due %s  %s\n",
		faint.Sprint(g.ID),
		g.Type,
		g.CurrentValue,
		g.TargetValue,
		g.Unit,
		percent,
		g.TargetDate.Format(time.DateOnly),
		status)
}
