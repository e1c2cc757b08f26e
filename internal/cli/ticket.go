package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tartampluch/go-assist/internal/assist"
	"github.com/tartampluch/go-assist/internal/config"
)

// TicketCmd returns the ticket command.
func TicketCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ticket <min> <max> <quantity>",
		Short: "Draw a sorted set of unique lottery numbers",
		Long: `Draw <quantity> distinct numbers uniformly at random from the inclusive
range [<min>, <max>] and print them in ascending order. Out-of-range
parameters (min below 1, max above 1000, quantity larger than the range)
produce an empty draw rather than an error.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			bounds := make([]int, len(args))
			for i, arg := range args {
				n, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("argument %q is not a number", arg)
				}
				bounds[i] = n
			}

			ticket := assist.DrawTicket(assist.SystemNumberSource(), bounds[0], bounds[1], bounds[2])

			t := NewTranslator(config.LoadSettings().Language)
			if len(ticket) == 0 {
				fmt.Println(color.YellowString(t.Msg(config.TKeyLotteryEmpty)))
				return nil
			}

			parts := make([]string, len(ticket))
			for i, n := range ticket {
				parts[i] = strconv.Itoa(n)
			}
			fmt.Println(t.MsgWith(config.TKeyLotteryNumbers, map[string]any{
				"Numbers": color.GreenString(strings.Join(parts, " ")),
			}))
			return nil
		},
	}
}
