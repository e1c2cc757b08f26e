package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tartampluch/go-assist/internal/assist"
	"github.com/tartampluch/go-assist/internal/config"
)

// BirthdaysCmd returns the birthdays command.
func BirthdaysCmd() *cobra.Command {
	var src sourceFlags
	var icsPath string

	cmd := &cobra.Command{
		Use:   "birthdays",
		Short: "List users to congratulate within the next week",
		Long: `Scan user records for birthdays falling within the next 7 days (today
inclusive) and print one congratulation entry per match. Birthdays landing
on a weekend are congratulated on the following Monday.

Records come from --file (JSON), --vcf (local vCard) or --url (remote
vCard collection; the password for --user is read from the OS keyring).
With --ics the matches are additionally exported as an iCalendar file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := src.load(cmd.Context(), assist.NewHTTPFetcher())
			if err != nil {
				return err
			}

			clock := assist.RealClock{}
			greetings := assist.UpcomingBirthdays(clock, users)
			t := NewTranslator(config.LoadSettings().Language)

			if len(greetings) == 0 {
				fmt.Println(t.Msg(config.TKeyNoUpcoming))
			} else {
				fmt.Println(color.CyanString(t.Msg(config.TKeyUpcomingHeader)))
				for _, g := range greetings {
					fmt.Printf("%s  %s\n", color.GreenString(g.CongratulationDate), g.Name)
				}
			}

			if icsPath != "" {
				builder := &assist.CalendarBuilder{
					Clock: clock,
					FormatSummary: func(name string) string {
						return t.MsgWith(config.TKeyEvtSummary, map[string]any{"Name": name})
					},
				}
				ics, err := builder.Build(greetings)
				if err != nil {
					return err
				}
				if err := os.WriteFile(icsPath, ics, config.FilePermUserRW); err != nil {
					return err
				}
			}
			return nil
		},
	}

	src.register(cmd)
	cmd.Flags().StringVar(&icsPath, config.FlagICS, "", config.FlagDescICS)

	return cmd
}
