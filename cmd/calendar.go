package cmd

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ironlog/ironlog/internal/models"
	"github.com/ironlog/ironlog/internal/storage"
)

// details is a flag to enable verbose session details.
var details bool

// calendarCmd prints a month grid. Training days are colored per workout and
// a legend maps the colors back to workout names.
var calendarCmd = &cobra.Command{
	Use:   "calendar [month] [year]",
	Short: "Display a calendar of training days with a legend mapping colors to workouts",
	Args:  cobra.RangeArgs(0, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Determine month and year (default to current month/year).
		now := time.Now()
		month := now.Month()
		year := now.Year()
		if len(args) >= 1 {
			m, err := strconv.Atoi(args[0])
			if err != nil || m < 1 || m > 12 {
				return fmt.Errorf("invalid month: %s", args[0])
			}
			month = time.Month(m)
		}
		if len(args) == 2 {
			y, err := strconv.Atoi(args[1])
			if err != nil || y < 1 {
				return fmt.Errorf("invalid year: %s", args[1])
			}
			year = y
		}

		firstOfMonth := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
		lastOfMonth := firstOfMonth.AddDate(0, 1, -1)

		st := storage.NewStorage()
		sessions, err := st.GetSessionsBetween(firstOfMonth, lastOfMonth.Add(24*time.Hour-time.Second))
		if err != nil {
			return fmt.Errorf("failed to get sessions: %w", err)
		}

		// Group sessions by day and collect the workout names seen.
		sessionsByDay := make(map[int][]*models.PersistedSession)
		workoutSet := make(map[string]bool)
		for _, s := range sessions {
			day := s.StartTime.In(time.Local).Day()
			sessionsByDay[day] = append(sessionsByDay[day], s)
			workoutSet[workoutLabel(s)] = true
		}

		colorPalette := []color.Attribute{
			color.FgRed, color.FgGreen, color.FgYellow,
			color.FgBlue, color.FgMagenta, color.FgCyan,
		}
		workoutColors := make(map[string]func(a ...interface{}) string)
		i := 0
		for w := range workoutSet {
			workoutColors[w] = color.New(colorPalette[i%len(colorPalette)]).SprintFunc()
			i++
		}

		header := fmt.Sprintf("%s %d", month.String(), year)
		fmt.Println(centerPad(header, 20))
		fmt.Println("Su Mo Tu We Th Fr Sa")

		// Weekday of the first day (0 = Sunday).
		weekday := int(firstOfMonth.Weekday())
		for i := 0; i < weekday; i++ {
			fmt.Print("   ")
		}

		for day := 1; day <= lastOfMonth.Day(); day++ {
			dayStr := fmt.Sprintf("%2d", day)
			if sessList, hasSession := sessionsByDay[day]; hasSession {
				w := workoutLabel(sessList[0])
				if colFunc, ok := workoutColors[w]; ok {
					dayStr = colFunc(dayStr + "*")
				} else {
					dayStr = color.New(color.FgWhite).Sprint(dayStr + "*")
				}
			}
			fmt.Printf("%s ", dayStr)
			weekday++
			if weekday%7 == 0 {
				fmt.Println()
			}
		}
		fmt.Print("\n\n")

		fmt.Println("Legend:")
		for w, colFunc := range workoutColors {
			fmt.Printf("  %s: %s\n", colFunc("██"), w)
		}

		if details {
			fmt.Println("\nSession Details:")
			var days []int
			for d := range sessionsByDay {
				days = append(days, d)
			}
			sort.Ints(days)
			for _, day := range days {
				dayDate := time.Date(year, month, day, 0, 0, 0, 0, time.Local)
				fmt.Printf("\n%s:\n", dayDate.Format("Mon, 02 Jan 2006"))
				for _, sess := range sessionsByDay[day] {
					fmt.Printf("  Session %s (%s) at %s", sess.ID, workoutLabel(sess), sess.StartTime.Format("15:04"))
					if sess.EndTime != nil {
						fmt.Printf(" - %s", sess.EndTime.Format("15:04"))
					}
					fmt.Println()
				}
			}
		}

		return nil
	},
}

func workoutLabel(s *models.PersistedSession) string {
	if strings.TrimSpace(s.WorkoutName) == "" {
		return "Default"
	}
	return s.WorkoutName
}

func init() {
	rootCmd.AddCommand(calendarCmd)
	calendarCmd.Flags().BoolVarP(&details, "details", "d", false, "Print additional session details")
}
