package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/zalando/go-keyring"

	"github.com/tartampluch/go-assist/internal/config"
)

// CredentialsCmd returns the credentials command group.
// Passwords for remote vCard sources live in the OS keyring, never in
// configuration files or flags.
func CredentialsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "credentials",
		Short: "Manage stored passwords for remote vCard sources",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set <user>",
		Short: "Store the password for a username (read from stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), "Password: ")
			reader := bufio.NewReader(cmd.InOrStdin())
			pass, err := reader.ReadString('\n')
			if err != nil {
				return err
			}
			pass = strings.TrimRight(pass, "\r\n")

			if err := keyring.Set(config.KeyringService, args[0], pass); err != nil {
				return fmt.Errorf("%s: %w", config.ErrKeyringSet, err)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <user>",
		Short: "Remove the stored password for a username",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := keyring.Delete(config.KeyringService, args[0]); err != nil {
				return fmt.Errorf("%s: %w", config.ErrKeyringDel, err)
			}
			return nil
		},
	})

	return cmd
}
