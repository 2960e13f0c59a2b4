package tui

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/jsamuelsen11/storeops-gateway/internal/client/adapters/report"
	"github.com/jsamuelsen11/storeops-gateway/internal/domain/maintenance"
	"github.com/jsamuelsen11/storeops-gateway/internal/domain/qa"
	"github.com/jsamuelsen11/storeops-gateway/internal/domain/serviceclient"
)

// table lays rows out in aligned columns under a header row.
func table(header []string, rows [][]string) string {
	var b strings.Builder
	tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for _, r := range rows {
		fmt.Fprintln(tw, strings.Join(r, "\t"))
	}
	_ = tw.Flush()
	return b.String()
}

func stamp(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// RenderTickets renders a page of maintenance tickets.
func RenderTickets(p maintenance.Page) string {
	if len(p.Results) == 0 {
		return dimStyle.Render("no tickets")
	}
	rows := make([][]string, 0, len(p.Results))
	for _, t := range p.Results {
		rows = append(rows, []string{t.ID, t.Status, t.Priority, t.Title, orDash(t.AssignedTo), stamp(t.UpdatedAt)})
	}
	return table([]string{"ID", "STATUS", "PRIORITY", "TITLE", "ASSIGNEE", "UPDATED"}, rows) +
		dimStyle.Render(fmt.Sprintf("\n%d tickets in total", p.Count))
}

// RenderAudits renders a page of QA audits.
func RenderAudits(p qa.Page) string {
	if len(p.Results) == 0 {
		return dimStyle.Render("no audits")
	}
	rows := make([][]string, 0, len(p.Results))
	for _, a := range p.Results {
		rows = append(rows, []string{
			a.ID, a.StoreName, a.AuditorName,
			fmt.Sprintf("%.1f/%.0f", a.Score, a.MaxScore),
			a.Status, stamp(a.AuditedAt),
		})
	}
	return table([]string{"ID", "STORE", "AUDITOR", "SCORE", "STATUS", "AUDITED"}, rows) +
		dimStyle.Render(fmt.Sprintf("\n%d audits in total", p.Count))
}

// RenderDaily renders a daily sales report. Sample data is labelled as such.
func RenderDaily(r report.Result) string {
	d := r.Daily
	var b strings.Builder
	if r.Sample {
		b.WriteString(sampleStyle.Render("SAMPLE DATA: the report service is not configured for this environment"))
		b.WriteString("\n\n")
	}
	fmt.Fprintf(&b, "%s  %s\n", d.StoreID, d.BusinessDate)
	fmt.Fprintf(&b, "gross %.2f %s   net %.2f   discounts %.2f\n", d.GrossSales, d.Currency, d.NetSales, d.Discounts)
	fmt.Fprintf(&b, "%d transactions, average ticket %.2f\n\n", d.TransactionCount, d.AverageTicket)

	rows := make([][]string, 0, len(d.Hourly))
	for _, h := range d.Hourly {
		rows = append(rows, []string{fmt.Sprintf("%02d:00", h.Hour), fmt.Sprintf("%.2f", h.Sales), fmt.Sprint(h.Transactions)})
	}
	b.WriteString(table([]string{"HOUR", "SALES", "TXNS"}, rows))
	return b.String()
}

// RenderClients renders a page of service clients. Tokens are never part of it.
func RenderClients(p serviceclient.Page) string {
	if len(p.Results) == 0 {
		return dimStyle.Render("no service clients")
	}
	rows := make([][]string, 0, len(p.Results))
	for _, c := range p.Results {
		state := "active"
		if c.Revoked {
			state = "revoked"
		}
		lastUsed := "never"
		if c.LastUsedAt != nil {
			lastUsed = stamp(*c.LastUsedAt)
		}
		rows = append(rows, []string{c.ID, c.Name, strings.Join(c.Scopes, ","), state, lastUsed})
	}
	return table([]string{"ID", "NAME", "SCOPES", "STATE", "LAST USED"}, rows)
}
