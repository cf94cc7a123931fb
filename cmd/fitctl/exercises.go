package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/c00p75/fitness-league-sub000/pkg/client"

)

var (
	searchQuery      string
	searchCategory   string
	searchDifficulty string
	searchEquipment  string
	searchLimit      int
)

var exercisesCmd = &cobra.Command{
	Use:   "exercises",
	Short: "Browse the exercise catalog",
}

var exercisesSearchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search exercises by name, category, difficulty or equipment",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		in := client.SearchExercisesInput{
			Query:      optional(searchQuery),
			Category:   optional(searchCategory),
			Difficulty: optional(searchDifficulty),
			Equipment:  optional(searchEquipment),
		}
		if searchLimit > 0 {
			in.Limit = &searchLimit
		}

		exercises, err := api.Exercises().Search(cmd.Context(), in)
		if err != nil {
			return describe(err)
		}
		if len(exercises) == 0 {
			fmt.Println("No exercises matched.")
			return nil
		}
		bold := color.New(color.Bold)
		faint := color.New(color.Faint)
		for _, ex := range exercises {
			fmt.Printf("%-28s %-12s %-13s %s\n",
				bold.Sprint(ex.Name),
				ex.Category,
				ex.Difficulty,
				faint.Sprint(strings.Join(ex.Equipment, ", ")))
		}
		return nil
	},
}

func init() {
	flags := exercisesSearchCmd.Flags()
	flags.StringVarP(&searchQuery, "query", "q", "", "text to match in name or description")
	flags.StringVar(&searchCategory, "category", "", "strength, cardio, flexibility or core")
	flags.StringVar(&searchDifficulty, "difficulty", "", "beginner, intermediate or advanced")
	flags.StringVar(&searchEquipment, "equipment", "", "required equipment")
	flags.IntVarP(&searchLimit, "limit", "n", 0, "maximum results (1-50)")

	exercisesCmd.AddCommand(exercisesSearchCmd)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
