package cmd

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ironlog/ironlog/internal/models"
	"github.com/ironlog/ironlog/internal/storage"
)

var (
	filterWorkout string
	filterDay     string
)

// historyCmd shows overall session history grouped by workout and day.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Display session history, optionally filtered by workout and/or day",
	RunE: func(cmd *cobra.Command, args []string) error {
		st := storage.NewStorage()

		sessions, err := st.GetAllSessions()
		if err != nil {
			return fmt.Errorf("failed to retrieve sessions: %w", err)
		}

		// Case insensitive filtering by workout name.
		if filterWorkout != "" {
			var filtered []*models.PersistedSession
			for _, s := range sessions {
				if strings.EqualFold(s.WorkoutName, filterWorkout) {
					filtered = append(filtered, s)
				}
			}
			sessions = filtered
		}

		if filterDay != "" {
			parsedDay, err := time.Parse("2006-01-02", filterDay)
			if err != nil {
				parsedDay, err = time.Parse("02/01/06", filterDay)
			}
			if err != nil {
				return fmt.Errorf("failed to parse day: %w", err)
			}

			var filtered []*models.PersistedSession
			for _, s := range sessions {
				if s.StartTime.Format("2006-01-02") == parsedDay.Format("2006-01-02") {
					filtered = append(filtered, s)
				}
			}
			sessions = filtered
		}

		// Group sessions by workout name and then by day.
		grouped := make(map[string]map[string][]*models.PersistedSession)
		for _, s := range sessions {
			name := s.WorkoutName
			if name == "" {
				name = "Unknown"
			}
			if _, ok := grouped[name]; !ok {
				grouped[name] = make(map[string][]*models.PersistedSession)
			}
			day := s.StartTime.Format("2006-01-02")
			grouped[name][day] = append(grouped[name][day], s)
		}

		var workoutKeys []string
		for w := range grouped {
			workoutKeys = append(workoutKeys, w)
		}
		sort.Strings(workoutKeys)
		for _, w := range workoutKeys {
			fmt.Printf("Workout: %s\n", w)
			var days []string
			for d := range grouped[w] {
				days = append(days, d)
			}
			sort.Strings(days)
			for _, d := range days {
				fmt.Printf("  Date: %s\n", d)
				sList := grouped[w][d]
				sort.Slice(sList, func(i, j int) bool {
					return sList[i].StartTime.Before(sList[j].StartTime)
				})
				for _, s := range sList {
					duration := "In progress"
					if s.EndTime != nil {
						duration = s.EndTime.Sub(s.StartTime).Round(time.Second).String()
					}
					outcome := "partial"
					if s.Completed {
						outcome = "completed"
					}
					fmt.Printf("    Session %s | Start: %s | Duration: %s | %s\n",
						s.ID,
						s.StartTime.Format("15:04"),
						duration,
						outcome,
					)
				}
			}
			fmt.Println()
		}

		return nil
	},
}

func init() {
	historyCmd.Flags().StringVarP(&filterWorkout, "workout", "w", "", "Filter by workout name")
	historyCmd.Flags().StringVarP(&filterDay, "day", "d", "", "Filter by day (2006-01-02 or DD/MM/YY)")
	rootCmd.AddCommand(historyCmd)
}
