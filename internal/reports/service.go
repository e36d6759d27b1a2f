package reports

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	pkgerrors "github.com/ecostylo/ecostylo-backend/pkg/errors"
	"github.com/ecostylo/ecostylo-backend/pkg/logger"
	"github.com/redis/go-redis/v9"
)

const topProductsLimit = 10

// SalesReportDTO is the staff-facing snapshot of recent sales.
type SalesReportDTO struct {
	Daily       SalesTotals    `json:"daily"`
	Weekly      SalesTotals    `json:"weekly"`
	TopProducts []ProductSales `json:"top_products"`
	GeneratedAt time.Time      `json:"generated_at"`
}

// Service produces sales reports.
type Service interface {
	SalesReport(ctx context.Context) (*SalesReportDTO, error)
}

type reportStore interface {
	SalesBetween(ctx context.Context, from, to time.Time) (*SalesTotals, error)
	TopProducts(ctx context.Context, from, to time.Time, limit int) ([]ProductSales, error)
}

type reportCache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	CacheKey(parts ...string) string
}

type service struct {
	repo     reportStore
	cache    reportCache
	cacheTTL time.Duration
	logg     *logger.Logger
	now      func() time.Time
}

// ServiceParams bundles the reporting dependencies. Cache is optional; with
// no cache every request hits the database.
type ServiceParams struct {
	Repo     reportStore
	Cache    reportCache
	CacheTTL time.Duration
	Logger   *logger.Logger
	Now      func() time.Time
}

// NewService constructs the reporting service.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("reports repository required")
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}
	return &service{
		repo:     params.Repo,
		cache:    params.Cache,
		cacheTTL: params.CacheTTL,
		logg:     params.Logger,
		now:      now,
	}, nil
}

func (s *service) SalesReport(ctx context.Context) (*SalesReportDTO, error) {
	if cached := s.fromCache(ctx); cached != nil {
		return cached, nil
	}

	now := s.now()
	dayFrom, dayTo := dayWindow(now)
	weekFrom, weekTo := weekWindow(now)

	daily, err := s.repo.SalesBetween(ctx, dayFrom, dayTo)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "daily sales")
	}
	weekly, err := s.repo.SalesBetween(ctx, weekFrom, weekTo)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "weekly sales")
	}
	top, err := s.repo.TopProducts(ctx, weekFrom, weekTo, topProductsLimit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "top products")
	}

	report := &SalesReportDTO{
		Daily:       *daily,
		Weekly:      *weekly,
		TopProducts: top,
		GeneratedAt: now.UTC(),
	}
	s.toCache(ctx, report)
	return report, nil
}

func (s *service) fromCache(ctx context.Context) *SalesReportDTO {
	if s.cache == nil || s.cacheTTL <= 0 {
		return nil
	}
	raw, err := s.cache.Get(ctx, s.cache.CacheKey("reports", "sales"))
	if err != nil {
		if !errors.Is(err, redis.Nil) && s.logg != nil {
			s.logg.Warn(ctx, "sales report cache read failed")
		}
		return nil
	}
	var report SalesReportDTO
	if err := json.Unmarshal([]byte(raw), &report); err != nil {
		return nil
	}
	return &report
}

func (s *service) toCache(ctx context.Context, report *SalesReportDTO) {
	if s.cache == nil || s.cacheTTL <= 0 {
		return
	}
	payload, err := json.Marshal(report)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, s.cache.CacheKey("reports", "sales"), payload, s.cacheTTL); err != nil && s.logg != nil {
		s.logg.Warn(ctx, "sales report cache write failed")
	}
}

// dayWindow bounds the server-local calendar day containing now.
func dayWindow(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return start, start.AddDate(0, 0, 1)
}

// weekWindow bounds the trailing seven calendar days, today included.
func weekWindow(now time.Time) (time.Time, time.Time) {
	_, dayEnd := dayWindow(now)
	return dayEnd.AddDate(0, 0, -7), dayEnd
}
