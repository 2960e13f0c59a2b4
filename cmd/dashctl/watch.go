package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/storeops-gateway/internal/client/adapters/maintenance"
	"github.com/jsamuelsen11/storeops-gateway/internal/client/adapters/qa"
	"github.com/jsamuelsen11/storeops-gateway/internal/client/adapters/report"
	"github.com/jsamuelsen11/storeops-gateway/internal/client/adapters/serviceclient"
	"github.com/jsamuelsen11/storeops-gateway/internal/client/binding"
	"github.com/jsamuelsen11/storeops-gateway/internal/client/config"
	"github.com/jsamuelsen11/storeops-gateway/internal/client/syncstore"
	"github.com/jsamuelsen11/storeops-gateway/internal/client/tui"
)

// Watchable domains, as typed on the command line.
const (
	watchMaintenance    = "maintenance"
	watchQA             = "qa"
	watchReport         = "report"
	watchServiceClients = "service-clients"
)

func newWatchCmd(c *cli) *cobra.Command {
	var (
		limit int
		date  string
	)

	cmd := &cobra.Command{
		Use:       "watch <maintenance|qa|report|service-clients>",
		Short:     "Open a live view of one domain",
		Long:      "Open a live view of one domain. Keys: r refresh, n/p next/previous page (day for report), q quit.",
		ValidArgs: []string{watchMaintenance, watchQA, watchReport, watchServiceClients},
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, release, err := c.readSession()
			if err != nil {
				return err
			}
			defer release()

			ctx := cmd.Context()
			gw := c.gateway()

			switch args[0] {
			case watchMaintenance:
				a := maintenance.New(gw, src)
				return watch(ctx, c, config.DomainMaintenance, "Maintenance tickets", a.List,
					maintenance.Params{Page: 1, Limit: limit}, tui.RenderTickets, pageMaintenance)
			case watchQA:
				a := qa.New(gw, src)
				return watch(ctx, c, config.DomainQA, "QA audits", a.ListAudits,
					qa.Params{Page: 1}, tui.RenderAudits, pageQA)
			case watchReport:
				day, err := parseDay(date)
				if err != nil {
					return err
				}
				a := report.New(gw, src)
				return watch(ctx, c, config.DomainReport, "Daily sales", a.Daily,
					report.Params{Date: day}, tui.RenderDaily, pageReport)
			default:
				a := serviceclient.New(gw, src)
				return watch(ctx, c, config.DomainServiceClients, "Service clients", a.List,
					serviceclient.Params{Page: 1}, tui.RenderClients, pageServiceClients)
			}
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "tickets per page (maintenance)")
	cmd.Flags().StringVar(&date, "date", "", "business date YYYY-MM-DD (report, default today)")
	return cmd
}

// watch binds a synchronization store for one domain to the TUI and runs
// it until the user quits.
func watch[P, T any](
	ctx context.Context,
	c *cli,
	domainName, title string,
	fetch func(context.Context, P) (T, error),
	params P,
	render func(T) string,
	pager func(P, int) (P, bool),
) error {
	ds, _ := c.cfg.Sync.Domain(domainName)
	store := syncstore.New[P, T](fetch, syncstore.Options{
		Name:            domainName,
		StaleAfter:      ds.StaleAfter,
		RefreshInterval: ds.RefreshInterval,
		RetryDelay:      c.cfg.Sync.RetryDelay,
		MaxRetries:      c.cfg.Sync.MaxRetries,
		Logger:          c.logger,
	})
	defer store.Reset()

	m := tui.New(ctx, tui.Config[P, T]{
		Title:   title,
		Store:   store,
		Binding: binding.New(store),
		Params:  params,
		Render:  render,
		Page:    pager,
	})
	return tui.Run(ctx, m)
}

func nextPage(page, delta int) (int, bool) {
	n := max(page, 1) + delta
	return n, n >= 1
}

func pageMaintenance(p maintenance.Params, delta int) (maintenance.Params, bool) {
	n, ok := nextPage(p.Page, delta)
	p.Page = n
	return p, ok
}

func pageQA(p qa.Params, delta int) (qa.Params, bool) {
	n, ok := nextPage(p.Page, delta)
	p.Page = n
	return p, ok
}

func pageServiceClients(p serviceclient.Params, delta int) (serviceclient.Params, bool) {
	n, ok := nextPage(p.Page, delta)
	p.Page = n
	return p, ok
}

// pageReport steps one business day per page, never past today.
func pageReport(p report.Params, delta int) (report.Params, bool) {
	next := p.Date.AddDate(0, 0, delta)
	if next.After(time.Now()) {
		return p, false
	}
	p.Date = next
	return p, true
}

func parseDay(s string) (time.Time, error) {
	if s == "" {
		return time.Now(), nil
	}
	d, err := time.ParseInLocation(time.DateOnly, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date %q: want YYYY-MM-DD", s)
	}
	return d, nil
}
