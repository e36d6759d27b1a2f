package reports

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

type stubReportStore struct {
	salesCalls  int
	topCalls    int
	salesFrom   []time.Time
	salesTo     []time.Time
	topFrom     time.Time
	topTo       time.Time
	totals      SalesTotals
	topProducts []ProductSales
}

func (s *stubReportStore) SalesBetween(ctx context.Context, from, to time.Time) (*SalesTotals, error) {
	s.salesCalls++
	s.salesFrom = append(s.salesFrom, from)
	s.salesTo = append(s.salesTo, to)
	totals := s.totals
	return &totals, nil
}

func (s *stubReportStore) TopProducts(ctx context.Context, from, to time.Time, limit int) ([]ProductSales, error) {
	s.topCalls++
	s.topFrom = from
	s.topTo = to
	return s.topProducts, nil
}

type stubCache struct {
	entries map[string]string
	sets    int
}

func newStubCache() *stubCache {
	return &stubCache{entries: map[string]string{}}
}

func (c *stubCache) Get(ctx context.Context, key string) (string, error) {
	value, ok := c.entries[key]
	if !ok {
		return "", redis.Nil
	}
	return value, nil
}

func (c *stubCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	c.sets++
	switch v := value.(type) {
	case []byte:
		c.entries[key] = string(v)
	case string:
		c.entries[key] = v
	}
	return nil
}

func (c *stubCache) CacheKey(parts ...string) string {
	key := "ecostylo:cache"
	for _, part := range parts {
		key += ":" + part
	}
	return key
}

func fixedNow() time.Time {
	loc := time.FixedZone("CST", -6*3600)
	return time.Date(2025, 8, 30, 15, 30, 0, 0, loc)
}

func TestSalesReportWindows(t *testing.T) {
	store := &stubReportStore{
		totals: SalesTotals{Revenue: decimal.RequireFromString("30.00"), OrderCount: 2},
	}
	svc, err := NewService(ServiceParams{Repo: store, Now: fixedNow})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	report, err := svc.SalesReport(context.Background())
	if err != nil {
		t.Fatalf("SalesReport: %v", err)
	}

	if !report.Daily.Revenue.Equal(decimal.RequireFromString("30.00")) || report.Daily.OrderCount != 2 {
		t.Fatalf("unexpected daily totals %+v", report.Daily)
	}
	if store.salesCalls != 2 {
		t.Fatalf("expected daily and weekly queries, got %d", store.salesCalls)
	}

	now := fixedNow()
	dayStart := time.Date(2025, 8, 30, 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)
	if !store.salesFrom[0].Equal(dayStart) || !store.salesTo[0].Equal(dayEnd) {
		t.Fatalf("unexpected daily window [%s, %s)", store.salesFrom[0], store.salesTo[0])
	}

	weekStart := dayEnd.AddDate(0, 0, -7)
	if !store.salesFrom[1].Equal(weekStart) || !store.salesTo[1].Equal(dayEnd) {
		t.Fatalf("unexpected weekly window [%s, %s)", store.salesFrom[1], store.salesTo[1])
	}
	if !store.topFrom.Equal(weekStart) || !store.topTo.Equal(dayEnd) {
		t.Fatalf("expected top products to share the weekly window")
	}
}

func TestSalesReportUsesCache(t *testing.T) {
	store := &stubReportStore{
		totals: SalesTotals{Revenue: decimal.RequireFromString("96.00"), OrderCount: 1},
		topProducts: []ProductSales{
			{Name: "Organic Cotton Shirt", Quantity: 2, Revenue: decimal.RequireFromString("51.00")},
		},
	}
	cache := newStubCache()
	svc, err := NewService(ServiceParams{Repo: store, Cache: cache, CacheTTL: time.Minute, Now: fixedNow})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	ctx := context.Background()

	first, err := svc.SalesReport(ctx)
	if err != nil {
		t.Fatalf("first report: %v", err)
	}
	if cache.sets != 1 {
		t.Fatalf("expected one cache write, got %d", cache.sets)
	}

	second, err := svc.SalesReport(ctx)
	if err != nil {
		t.Fatalf("second report: %v", err)
	}
	if store.salesCalls != 2 || store.topCalls != 1 {
		t.Fatal("expected the second report to come from cache")
	}
	if !second.Daily.Revenue.Equal(first.Daily.Revenue) {
		t.Fatalf("cached report diverged: %s vs %s", second.Daily.Revenue, first.Daily.Revenue)
	}
	if len(second.TopProducts) != 1 || second.TopProducts[0].Name != "Organic Cotton Shirt" {
		t.Fatalf("cached top products diverged: %+v", second.TopProducts)
	}
}

func TestSalesReportSkipsCacheWithoutTTL(t *testing.T) {
	store := &stubReportStore{totals: SalesTotals{Revenue: decimal.Zero}}
	cache := newStubCache()
	svc, err := NewService(ServiceParams{Repo: store, Cache: cache, Now: fixedNow})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	if _, err := svc.SalesReport(context.Background()); err != nil {
		t.Fatalf("SalesReport: %v", err)
	}
	if cache.sets != 0 {
		t.Fatal("expected no cache writes when TTL is unset")
	}
}
