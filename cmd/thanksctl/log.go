package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/Wikia/thanksmetoo/internal/adapter/limiter"
	"github.com/Wikia/thanksmetoo/internal/adapter/notify"
	"github.com/Wikia/thanksmetoo/internal/adapter/postgres"
	"github.com/Wikia/thanksmetoo/internal/adapter/postgres/logentry"
	"github.com/Wikia/thanksmetoo/internal/adapter/postgres/revision"
	"github.com/Wikia/thanksmetoo/internal/adapter/postgres/thankslog"
	"github.com/Wikia/thanksmetoo/internal/adapter/postgres/user"
	"github.com/Wikia/thanksmetoo/internal/service/thanks"
	"github.com/Wikia/thanksmetoo/internal/site"
)

type logOptions struct {
	input  thanks.ListLogInput
	asJSON bool
}

func newLogCommand(opts *rootOptions) *cobra.Command {
	lo := &logOptions{}

	cmd := &cobra.Command{
		Use:   "log <user>",
		Short: "List thanks given or received by a user",
		Long: `List recorded thanks, newest first.

Examples:
  thanksctl log Alice
  thanksctl log Alice --direction received --limit 20 --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lo.input.User = args[0]
			ctx := cmd.Context()

			pool, err := postgres.NewPool(ctx, opts.cfg.Database)
			if err != nil {
				return err
			}
			defer pool.Close()

			links, err := site.NewLinker(opts.cfg.Site)
			if err != nil {
				return fmt.Errorf("site linker: %w", err)
			}
			rl := limiter.New(opts.cfg.Thanks.RateLimitPerMinute, time.Minute)
			defer rl.Stop()

			svc := thanks.NewService(opts.logger, opts.cfg.Thanks,
				user.New(pool),
				rl,
				revision.New(pool),
				logentry.New(pool),
				thankslog.New(pool),
				notify.NewLogSender(opts.logger),
				links,
				postgres.NewTxManager(pool),
			)

			items, err := svc.ListLog(ctx, lo.input)
			if err != nil {
				return err
			}
			return writeLog(cmd.OutOrStdout(), items, lo.asJSON)
		},
	}

	cmd.Flags().StringVar(&lo.input.Direction, "direction", thanks.DirectionGiven, "given or received")
	cmd.Flags().IntVar(&lo.input.Limit, "limit", 0, "maximum rows (default 50, max 500)")
	cmd.Flags().IntVar(&lo.input.Offset, "offset", 0, "rows to skip")
	cmd.Flags().BoolVar(&lo.asJSON, "json", false, "print one JSON object per line")

	return cmd
}

type logLine struct {
	Timestamp time.Time `json:"timestamp"`
	Actor     string    `json:"actor"`
	Recipient string    `json:"recipient"`
	ThanksKey string    `json:"thanks_key"`
	Source    string    `json:"source,omitempty"`
}

func writeLog(w io.Writer, items []thanks.LogItem, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		for _, it := range items {
			if err := enc.Encode(logLine{
				Timestamp: it.RecordedAt.UTC(),
				Actor:     it.ActorName,
				Recipient: it.RecipientName,
				ThanksKey: it.ThanksKey,
				Source:    it.Source,
			}); err != nil {
				return err
			}
		}
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TIME\tACTOR\tRECIPIENT\tKEY\tSOURCE")
	for _, it := range items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			it.RecordedAt.UTC().Format(time.RFC3339), it.ActorName, it.RecipientName, it.ThanksKey, it.Source)
	}
	return tw.Flush()
}
