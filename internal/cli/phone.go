package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tartampluch/go-assist/internal/assist"
	"github.com/tartampluch/go-assist/internal/config"
)

// PhoneCmd returns the phone command.
func PhoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "phone <number>...",
		Short: "Normalize phone numbers to the canonical +380 form",
		Long: `Strip formatting characters from each phone number and print it in the
canonical "+<digits>" form. Numbers without an explicit country code are
assumed to be Ukrainian local numbers. This is a formatter, not a
validator: any input yields a best-effort result.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t := NewTranslator(config.LoadSettings().Language)
			fmt.Println(t.Msg(config.TKeyPhonesHeader))
			for _, raw := range args {
				fmt.Println(assist.NormalizePhone(raw))
			}
			return nil
		},
	}
}
