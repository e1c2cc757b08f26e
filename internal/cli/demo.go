package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tartampluch/go-assist/internal/assist"
	"github.com/tartampluch/go-assist/internal/config"
)

// DemoCmd returns the demo command, which exercises every utility with
// literal sample data. It is a showcase, not part of the tool's contract.
func DemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:    "demo",
		Short:  "Run every utility once with built-in sample data",
		Hidden: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			t := NewTranslator(config.LoadSettings().Language)
			clock := assist.RealClock{}

			// Task 1: days from a fixed past date.
			if days, err := assist.DaysFromDate(clock, "2021-10-09"); err != nil {
				fmt.Println(err)
			} else {
				fmt.Println(t.MsgWith(config.TKeyDaysResult, map[string]any{"Days": days}))
			}

			// Task 2: a classic 6-of-49 ticket.
			ticket := assist.DrawTicket(assist.SystemNumberSource(), 1, 49, 6)
			fmt.Println(t.MsgWith(config.TKeyLotteryNumbers, map[string]any{"Numbers": fmt.Sprint(ticket)}))

			// Task 3: normalize a batch of messy phone numbers.
			rawNumbers := []string{
				"067\t123 4567",
				"(095) 234-5678\n",
				"+380 44 123 4567",
				"380501234567",
				"    +38(050)123-32-34",
				"     0503451234",
				"(050)8889900",
				"38050-111-22-22",
				"38050 111 22 11   ",
			}
			fmt.Println(t.Msg(config.TKeyPhonesHeader))
			for _, raw := range rawNumbers {
				fmt.Println(assist.NormalizePhone(raw))
			}

			// Task 4: upcoming birthdays from a literal record list.
			users := []assist.User{
				{Name: "John Doe", Birthday: "1985.01.23"},
				{Name: "Jane Smith", Birthday: "1990.01.27"},
				{Name: "Bob Johnson", Birthday: "1992.02.14"},
				{Name: "Broken Record", Birthday: "not-a-date"},
			}
			greetings := assist.UpcomingBirthdays(clock, users)
			if len(greetings) == 0 {
				fmt.Println(t.Msg(config.TKeyNoUpcoming))
				return nil
			}
			fmt.Println(color.CyanString(t.Msg(config.TKeyUpcomingHeader)))
			for _, g := range greetings {
				fmt.Printf("%s  %s\n", color.GreenString(g.CongratulationDate), g.Name)
			}
			return nil
		},
	}
}
