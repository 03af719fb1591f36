package cmd

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ironlog/ironlog/internal/models"
	"github.com/ironlog/ironlog/internal/storage"
	"github.com/ironlog/ironlog/internal/utils"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show totals, day streak, and sets per muscle for the current week",
	RunE: func(cmd *cobra.Command, args []string) error {
		st := storage.NewStorage()

		basicSessions, err := st.GetAllSessions()
		if err != nil {
			return fmt.Errorf("failed to retrieve sessions: %w", err)
		}

		// Load full session details (with sets) for each session.
		var sessions []*models.PersistedSession
		for _, s := range basicSessions {
			fullSession, err := st.GetSessionByID(s.ID)
			if err != nil {
				continue // skip sessions that fail to load
			}
			sessions = append(sessions, fullSession)
		}

		var totalVolume float64
		var totalSessions int
		var totalDuration time.Duration
		muscleSetsThisWeek := make(map[string]int)
		now := time.Now()
		currentYear, currentWeek := now.ISOWeek()

		for _, s := range sessions {
			totalSessions++
			if s.EndTime != nil {
				totalDuration += s.EndTime.Sub(s.StartTime)
			}

			year, week := s.StartTime.ISOWeek()
			for _, set := range s.Sets {
				if set.Weight > 0 && set.Reps > 0 {
					totalVolume += set.Weight * float64(set.Reps)
				}
				if year == currentYear && week == currentWeek {
					muscle := set.PrimaryMuscle
					if muscle == "" {
						muscle = "other"
					}
					muscleSetsThisWeek[muscle]++
				}
			}
		}

		dayStreak := computeDayStreak(sessions)

		printBoxedHeader("STATS")

		printMetric("Total volume", fmt.Sprintf("%.1f kg", totalVolume))
		printMetric("Total sessions", totalSessions)
		printMetric("Total time at gym", totalDuration.Round(time.Minute))
		printMetric("Day streak", fmt.Sprintf("%d days", dayStreak))
		fmt.Println()

		header := color.New(color.FgGreen, color.Bold).Sprintf("Sets per muscle (current week):")
		fmt.Println(header)
		var muscles []string
		for m := range muscleSetsThisWeek {
			muscles = append(muscles, m)
		}
		sort.Strings(muscles)
		for _, m := range muscles {
			fmt.Printf("  • %s: %d sets\n", color.New(color.FgMagenta, color.Bold).Sprint(m), muscleSetsThisWeek[m])
		}
		fmt.Println()

		// Today's advisory checkpoint, if any.
		if dc, err := utils.LoadDailyProgress(utils.DayKey(now)); err == nil && dc != nil && len(dc.ExerciseIDs) > 0 {
			fmt.Printf("%s %d exercises completed today\n",
				color.New(color.FgCyan, color.Bold).Sprint("Today:"), len(dc.ExerciseIDs))
		}

		return nil
	},
}

// printBoxedHeader prints the title in a Unicode box with a fixed width.
func printBoxedHeader(title string) {
	width := 40
	cyanBold := color.New(color.FgCyan, color.Bold).SprintFunc()
	border := strings.Repeat("═", width)
	fmt.Println(cyanBold("╔" + border + "╗"))
	fmt.Println(cyanBold("║" + centerPad(title, width) + "║"))
	fmt.Println(cyanBold("╚" + border + "╝"))
}

func centerPad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	padding := (width - len(s)) / 2
	return strings.Repeat(" ", padding) + s + strings.Repeat(" ", width-len(s)-padding)
}

// printMetric prints a label and value using bold yellow for the label.
func printMetric(label string, value interface{}) {
	yellowBold := color.New(color.FgYellow, color.Bold).SprintFunc()
	fmt.Printf("  %s: %v\n", yellowBold(label), value)
}

// computeDayStreak counts consecutive training days ending with today (or
// yesterday, so an evening lifter keeps the streak alive until midnight).
func computeDayStreak(sessions []*models.PersistedSession) int {
	daySet := make(map[string]bool)
	for _, s := range sessions {
		daySet[utils.DayKey(s.StartTime.Local())] = true
	}

	day := time.Now()
	if !daySet[utils.DayKey(day)] {
		day = day.AddDate(0, 0, -1)
	}

	streak := 0
	for daySet[utils.DayKey(day)] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
