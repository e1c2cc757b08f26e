package cli

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/zalando/go-keyring"

	"github.com/tartampluch/go-assist/internal/assist"
	"github.com/tartampluch/go-assist/internal/config"
)

// sourceFlags groups the flags selecting where user records come from.
// Exactly one of file, vcf or url is expected.
type sourceFlags struct {
	file string
	vcf  string
	url  string
	user string
}

func (s *sourceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&s.file, config.FlagFile, "", config.FlagDescFile)
	cmd.Flags().StringVar(&s.vcf, config.FlagVCF, "", config.FlagDescVCF)
	cmd.Flags().StringVar(&s.url, config.FlagURL, "", config.FlagDescURL)
	cmd.Flags().StringVar(&s.user, config.FlagUser, "", config.FlagDescUser)
}

// load resolves the configured source into user records.
// Remote sources authenticate with the password stored in the OS keyring
// under the configured username; a missing keyring entry falls back to an
// unauthenticated request.
func (s *sourceFlags) load(ctx context.Context, fetcher assist.CardFetcher) ([]assist.User, error) {
	switch {
	case s.file != "":
		f, err := os.Open(s.file)
		if err != nil {
			return nil, err
		}
		defer func() { _ = f.Close() }()
		return assist.ParseUsers(f)

	case s.vcf != "":
		f, err := os.Open(s.vcf)
		if err != nil {
			return nil, err
		}
		defer func() { _ = f.Close() }()
		return assist.UsersFromVCards(f)

	case s.url != "":
		if fetcher == nil {
			return nil, errors.New(config.ErrFetcherMissing)
		}
		pass := ""
		if s.user != "" {
			if p, err := keyring.Get(config.KeyringService, s.user); err == nil {
				pass = p
			} else {
				slog.Debug(config.ErrKeyringGet,
					config.LogKeyComponent, config.CompCLI,
					config.LogKeyUser, s.user,
					config.LogKeyError, err,
				)
			}
		}
		body, err := fetcher.Fetch(ctx, s.url, s.user, pass)
		if err != nil {
			return nil, err
		}
		defer func() { _ = body.Close() }()
		return assist.UsersFromVCards(body)

	default:
		return nil, errors.New(config.ErrSourceMissing)
	}
}
