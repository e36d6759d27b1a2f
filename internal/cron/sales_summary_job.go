package cron

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ecostylo/ecostylo-backend/internal/reports"
	"github.com/ecostylo/ecostylo-backend/pkg/logger"
	"go.uber.org/multierr"
)

const summaryTopProducts = 5

type salesReporter interface {
	SalesBetween(ctx context.Context, from, to time.Time) (*reports.SalesTotals, error)
	TopProducts(ctx context.Context, from, to time.Time, limit int) ([]reports.ProductSales, error)
}

type summarySender interface {
	Send(ctx context.Context, message string) error
}

// SalesSummaryJobParams configure the daily sales summary job.
type SalesSummaryJobParams struct {
	Logger  *logger.Logger
	Reports salesReporter
	Sender  summarySender
}

// NewSalesSummaryJob builds the job that posts the previous day's sales
// figures to the merchant.
func NewSalesSummaryJob(params SalesSummaryJobParams) (Job, error) {
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	if params.Reports == nil {
		return nil, fmt.Errorf("reports repository required")
	}
	if params.Sender == nil {
		return nil, fmt.Errorf("notification sender required")
	}
	return &salesSummaryJob{
		logg:    params.Logger,
		reports: params.Reports,
		sender:  params.Sender,
		now:     time.Now,
	}, nil
}

type salesSummaryJob struct {
	logg    *logger.Logger
	reports salesReporter
	sender  summarySender
	now     func() time.Time
}

func (j *salesSummaryJob) Name() string { return "sales-summary" }

func (j *salesSummaryJob) Run(ctx context.Context) error {
	now := j.now()
	// the previous full calendar day
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	from := dayStart.AddDate(0, 0, -1)
	to := dayStart

	var errs error
	totals, err := j.reports.SalesBetween(ctx, from, to)
	if err != nil {
		errs = multierr.Append(errs, fmt.Errorf("sales totals: %w", err))
	}
	top, err := j.reports.TopProducts(ctx, from, to, summaryTopProducts)
	if err != nil {
		errs = multierr.Append(errs, fmt.Errorf("top products: %w", err))
	}
	if errs != nil {
		return errs
	}

	message := formatSalesSummary(from, totals, top)
	if err := j.sender.Send(ctx, message); err != nil {
		return fmt.Errorf("send summary: %w", err)
	}

	logCtx := j.logg.WithFields(ctx, map[string]any{
		"day":         from.Format("2006-01-02"),
		"order_count": totals.OrderCount,
		"revenue":     totals.Revenue.StringFixed(2),
	})
	j.logg.Info(logCtx, "sales summary dispatched")
	return nil
}

func formatSalesSummary(day time.Time, totals *reports.SalesTotals, top []reports.ProductSales) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Sales summary for %s\n", day.Format("2006-01-02"))
	fmt.Fprintf(&b, "Orders: %d\n", totals.OrderCount)
	fmt.Fprintf(&b, "Revenue: %s\n", totals.Revenue.StringFixed(2))
	if len(top) > 0 {
		b.WriteString("Top products:\n")
		for i, row := range top {
			fmt.Fprintf(&b, "%d. %s x %d (%s)\n", i+1, row.Name, row.Quantity, row.Revenue.StringFixed(2))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
