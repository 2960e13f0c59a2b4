package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/storeops-gateway/internal/client/adapters/maintenance"
	"github.com/jsamuelsen11/storeops-gateway/internal/client/adapters/qa"
	"github.com/jsamuelsen11/storeops-gateway/internal/client/adapters/report"
	"github.com/jsamuelsen11/storeops-gateway/internal/client/adapters/serviceclient"
	"github.com/jsamuelsen11/storeops-gateway/internal/client/probe"
	"github.com/jsamuelsen11/storeops-gateway/internal/client/session"
	"github.com/jsamuelsen11/storeops-gateway/internal/domain"
)

func newStatusCmd(c *cli) *cobra.Command {
	var offline bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the session and which domains the gateway serves for it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			src, release, err := c.readSession()
			if err != nil {
				return err
			}
			defer release()

			out := cmd.OutOrStdout()
			printSession(out, src, time.Now())
			fmt.Fprintf(out, "gateway:  %s\n", c.cfg.Gateway.URL)

			if offline {
				return nil
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), c.cfg.Gateway.Timeout)
			defer cancel()
			printProbes(out, probe.Run(ctx, 4, c.checks(src)))
			return nil
		},
	}
	cmd.Flags().BoolVar(&offline, "offline", false, "skip probing the gateway")
	return cmd
}

func printSession(w io.Writer, src session.Source, now time.Time) {
	token, err := src.BearerToken()
	if err != nil {
		fmt.Fprintf(w, "session:  %s\n", errMessage(err))
	} else {
		info, _ := session.Inspect(token)
		fmt.Fprintf(w, "subject:  %s%s\n", orUnknown(info.Subject), expirySuffix(info, now))
	}

	if id, err := src.StoreID(); err != nil {
		fmt.Fprintf(w, "store:    %s\n", errMessage(err))
	} else {
		fmt.Fprintf(w, "store:    %s\n", id)
	}
}

// checks builds one cheap read per domain.
func (c *cli) checks(src session.Source) []probe.Check {
	gw := c.gateway()
	m := maintenance.New(gw, src)
	q := qa.New(gw, src)
	r := report.New(gw, src)
	sc := serviceclient.New(gw, src)

	return []probe.Check{
		{Name: maintenance.Domain, Run: func(ctx context.Context) error {
			_, err := m.List(ctx, maintenance.Params{Limit: 1})
			return err
		}},
		{Name: qa.Domain, Run: func(ctx context.Context) error {
			_, err := q.ListAudits(ctx, qa.Params{})
			return err
		}},
		{Name: report.Domain, Run: func(ctx context.Context) error {
			_, err := r.Daily(ctx, report.Params{})
			return err
		}},
		{Name: serviceclient.Domain, Run: func(ctx context.Context) error {
			_, err := sc.List(ctx, serviceclient.Params{})
			return err
		}},
	}
}

func printProbes(w io.Writer, outcomes []probe.Outcome) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "\nDOMAIN\tSTATUS\tTIME")
	for _, o := range outcomes {
		status := "ok"
		if !o.OK() {
			status = fmt.Sprintf("%s: %s", o.Err.Code, o.Err.Message)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", o.Name, status, o.Took.Round(time.Millisecond))
	}
	_ = tw.Flush()
}

func errMessage(err error) string {
	if e, ok := domain.AsError(err); ok {
		return e.Message
	}
	return err.Error()
}
