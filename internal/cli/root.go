// Package cli wires the assistant utilities into cobra subcommands.
package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/tartampluch/go-assist/internal/config"
)

// versionString reports the build version with platform details.
func versionString() string {
	return fmt.Sprintf("%s (%s/%s)", config.Version, runtime.GOOS, runtime.GOARCH)
}

// RootCmd builds the root command with all subcommands attached.
func RootCmd() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:     "go-assist",
		Short:   "Personal assistant utilities: dates, lottery tickets, phones, birthdays",
		Version: versionString(),
		Long: `go-assist bundles four small assistant utilities:
- days:      how many days separate a date from today
- ticket:    a sorted set of unique lottery numbers
- phone:     normalization of free-form phone numbers
- birthdays: who should be congratulated within the next week

Birthday records can come from a JSON file, a local vCard file or a
remote vCard collection, and the resulting greetings can be exported
as an iCalendar feed or served over local HTTP.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(debug)
			logStartupInfo()
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, config.FlagDebug, false, config.FlagDescDebug)

	cmd.AddCommand(DaysCmd())
	cmd.AddCommand(TicketCmd())
	cmd.AddCommand(PhoneCmd())
	cmd.AddCommand(BirthdaysCmd())
	cmd.AddCommand(CredentialsCmd())
	cmd.AddCommand(ServeCmd())
	cmd.AddCommand(DemoCmd())

	return cmd
}
