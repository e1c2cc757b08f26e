package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tartampluch/go-assist/internal/assist"
	"github.com/tartampluch/go-assist/internal/config"
)

// DaysCmd returns the days command.
func DaysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "days <YYYY-MM-DD>",
		Short: "Count the days between a date and today",
		Long: `Count how many whole days separate the given calendar date from today.
The result is negative for dates in the future and zero for today.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			days, err := assist.DaysFromDate(assist.RealClock{}, args[0])
			if err != nil {
				return err
			}

			t := NewTranslator(config.LoadSettings().Language)
			fmt.Println(t.MsgWith(config.TKeyDaysResult, map[string]any{"Days": days}))
			return nil
		},
	}
}
