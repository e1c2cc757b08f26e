package cli

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/tartampluch/go-assist/internal/assist"
	"github.com/tartampluch/go-assist/internal/config"
	"github.com/tartampluch/go-assist/internal/server"
)

// ServeCmd returns the serve command.
func ServeCmd() *cobra.Command {
	var src sourceFlags
	var port string
	var intervalMin int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the upcoming-birthday feed over local HTTP",
		Long: `Run a localhost HTTP server exposing the congratulation feed at
` + config.RouteCalendar + ` (iCalendar) and ` + config.RouteGreetings + ` (JSON).
The user source is re-read on a fixed interval so the feed follows the
calendar as days pass. Port, interval and language can also be set via a
.env file (` + config.EnvServerPort + `, ` + config.EnvSyncMinutes + `, ` + config.EnvLanguage + `).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := config.LoadSettings()
			if port == "" {
				port = settings.ServerPort
			}
			if intervalMin <= 0 {
				intervalMin = settings.SyncMinutes
			}

			t := NewTranslator(settings.Language)
			clock := assist.RealClock{}
			builder := &assist.CalendarBuilder{
				Clock: clock,
				FormatSummary: func(name string) string {
					return t.MsgWith(config.TKeyEvtSummary, map[string]any{"Name": name})
				},
			}

			srv := server.NewFeedServer(port)
			fetcher := assist.NewHTTPFetcher()

			sync := func(ctx context.Context) {
				start := time.Now()
				slog.Info(config.MsgSyncStarted, config.LogKeyComponent, config.CompWorker)

				users, err := src.load(ctx, fetcher)
				if err != nil {
					slog.Error(config.ErrAppFailed,
						config.LogKeyComponent, config.CompWorker,
						config.LogKeyError, err,
					)
					return
				}

				greetings := assist.UpcomingBirthdays(clock, users)

				ics, err := builder.Build(greetings)
				if err != nil {
					slog.Error(config.ErrICalEncode,
						config.LogKeyComponent, config.CompWorker,
						config.LogKeyError, err,
					)
					return
				}

				// Greetings marshal cleanly; the type holds only strings.
				payload, err := json.Marshal(greetings)
				if err != nil {
					slog.Error(config.ErrAppFailed,
						config.LogKeyComponent, config.CompWorker,
						config.LogKeyError, err,
					)
					return
				}

				srv.Update(ics, payload)
				slog.Info(config.MsgSyncSuccess,
					config.LogKeyComponent, config.CompWorker,
					slog.Group(config.LogKeyStats,
						slog.Int(config.LogKeyTotal, len(users)),
						slog.Int(config.LogKeyUpcoming, len(greetings)),
					),
					config.LogKeyDuration, time.Since(start).Milliseconds(),
				)
			}

			ctx := cmd.Context()
			sync(ctx)

			go func() {
				slog.Info(config.MsgWorkerStart,
					config.LogKeyComponent, config.CompWorker,
					config.LogKeyInterval, intervalMin,
				)
				ticker := time.NewTicker(time.Duration(intervalMin) * time.Minute)
				defer ticker.Stop()
				for {
					select {
					case <-ctx.Done():
						slog.Info(config.MsgWorkerStop, config.LogKeyComponent, config.CompWorker)
						return
					case <-ticker.C:
						sync(ctx)
					}
				}
			}()

			return srv.Start(ctx)
		},
	}

	src.register(cmd)
	cmd.Flags().StringVar(&port, config.FlagPort, "", config.FlagDescPort)
	cmd.Flags().IntVar(&intervalMin, config.FlagInterval, 0, config.FlagDescInterval)

	return cmd
}
