package cron

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/ecostylo/ecostylo-backend/internal/reports"
	"github.com/ecostylo/ecostylo-backend/pkg/logger"
	"github.com/shopspring/decimal"
)

type fakeSalesReporter struct {
	totals    reports.SalesTotals
	top       []reports.ProductSales
	totalsErr error
	topErr    error
	lastFrom  time.Time
	lastTo    time.Time
}

func (f *fakeSalesReporter) SalesBetween(ctx context.Context, from, to time.Time) (*reports.SalesTotals, error) {
	f.lastFrom = from
	f.lastTo = to
	if f.totalsErr != nil {
		return nil, f.totalsErr
	}
	totals := f.totals
	return &totals, nil
}

func (f *fakeSalesReporter) TopProducts(ctx context.Context, from, to time.Time, limit int) ([]reports.ProductSales, error) {
	if f.topErr != nil {
		return nil, f.topErr
	}
	return f.top, nil
}

type fakeSummarySender struct {
	messages []string
	err      error
}

func (f *fakeSummarySender) Send(ctx context.Context, message string) error {
	if f.err != nil {
		return f.err
	}
	f.messages = append(f.messages, message)
	return nil
}

func newSalesSummaryJob(t *testing.T, reporter *fakeSalesReporter, sender *fakeSummarySender) *salesSummaryJob {
	t.Helper()
	jobIface, err := NewSalesSummaryJob(SalesSummaryJobParams{
		Logger:  logger.New(logger.Options{ServiceName: "test"}),
		Reports: reporter,
		Sender:  sender,
	})
	if err != nil {
		t.Fatalf("NewSalesSummaryJob: %v", err)
	}
	job, ok := jobIface.(*salesSummaryJob)
	if !ok {
		t.Fatalf("expected salesSummaryJob, got %T", jobIface)
	}
	return job
}

func TestSalesSummaryJobSendsPreviousDay(t *testing.T) {
	reporter := &fakeSalesReporter{
		totals: reports.SalesTotals{Revenue: decimal.RequireFromString("30.00"), OrderCount: 2},
		top: []reports.ProductSales{
			{Name: "Organic Cotton Shirt", Quantity: 3, Revenue: decimal.RequireFromString("76.50")},
		},
	}
	sender := &fakeSummarySender{}
	job := newSalesSummaryJob(t, reporter, sender)
	job.now = func() time.Time {
		return time.Date(2025, 8, 31, 6, 0, 0, 0, time.UTC)
	}

	if err := job.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	wantFrom := time.Date(2025, 8, 30, 0, 0, 0, 0, time.UTC)
	wantTo := time.Date(2025, 8, 31, 0, 0, 0, 0, time.UTC)
	if !reporter.lastFrom.Equal(wantFrom) || !reporter.lastTo.Equal(wantTo) {
		t.Fatalf("unexpected window [%s, %s)", reporter.lastFrom, reporter.lastTo)
	}

	if len(sender.messages) != 1 {
		t.Fatalf("expected one message, got %d", len(sender.messages))
	}
	msg := sender.messages[0]
	for _, want := range []string{
		"Sales summary for 2025-08-30",
		"Orders: 2",
		"Revenue: 30.00",
		"1. Organic Cotton Shirt x 3 (76.50)",
	} {
		if !strings.Contains(msg, want) {
			t.Fatalf("message missing %q:\n%s", want, msg)
		}
	}
}

func TestSalesSummaryJobAggregatesQueryErrors(t *testing.T) {
	reporter := &fakeSalesReporter{
		totalsErr: errors.New("totals down"),
		topErr:    errors.New("top down"),
	}
	sender := &fakeSummarySender{}
	job := newSalesSummaryJob(t, reporter, sender)

	err := job.Run(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "totals down") || !strings.Contains(err.Error(), "top down") {
		t.Fatalf("expected both query errors, got %v", err)
	}
	if len(sender.messages) != 0 {
		t.Fatal("no message should be sent when queries fail")
	}
}

func TestSalesSummaryJobPropagatesSendFailure(t *testing.T) {
	reporter := &fakeSalesReporter{totals: reports.SalesTotals{Revenue: decimal.Zero}}
	sender := &fakeSummarySender{err: errors.New("bridge offline")}
	job := newSalesSummaryJob(t, reporter, sender)

	if err := job.Run(context.Background()); err == nil {
		t.Fatal("expected send failure to propagate")
	}
}
