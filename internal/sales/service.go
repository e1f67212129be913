package sales

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"sales_tracker/internal/metrics"
)

// TopSellerCount is how many products the top-selling ranking keeps.
const TopSellerCount = 5

// SalesSummary is the derived summary over the whole ledger: one total per
// product plus the top-selling ranking.
type SalesSummary struct {
	PerProduct []ProductTotal
	Top5       []ProductTotal
}

// Service provides high-level ledger operations on a Storage backend.
type Service struct {
	storage Storage
	logger  *zap.Logger
}

// NewService creates a new Service.
func NewService(storage Storage, logger *zap.Logger) *Service {
	if logger == nil {
		logger, _ = zap.NewProduction()
	}

	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// AddSale validates the submitted fields and appends the record to the
// ledger. A validation failure names the first offending field and leaves
// the ledger untouched; there is no partial write.
func (s *Service) AddSale(fields map[string]any) (*SaleRecord, error) {
	if err := Validate(fields); err != nil {
		var vErr *ValidationError
		if errors.As(err, &vErr) {
			s.logger.Warn("sale submission rejected", zap.String("field", vErr.Field))
			metrics.SubmissionsRejected.WithLabelValues(vErr.Field).Inc()
		}
		return nil, err
	}

	record := RecordFromFields(fields)
	if err := s.storage.Append(record); err != nil {
		s.logger.Error("failed to append sale",
			zap.String("product", record.ProductName),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to save sale: %w", err)
	}

	metrics.SalesAppended.Inc()
	s.logger.Info("sale recorded",
		zap.String("product", record.ProductName),
		zap.String("amount", record.SalesAmount),
		zap.String("date", record.SaleDate),
		zap.String("customer", record.Customer),
	)
	return &record, nil
}

// ListSales returns the full ordered ledger snapshot.
func (s *Service) ListSales() ([]SaleRecord, error) {
	records, err := s.storage.Load()
	if err != nil {
		if !errors.Is(err, ErrNoData) {
			s.logger.Error("failed to load ledger", zap.Error(err))
		}
		return nil, err
	}
	return records, nil
}

// Summary computes the per-product totals and the top-5 ranking over a
// loaded snapshot. ErrNoData passes through when the ledger is empty or
// missing; callers decide how to surface it.
func (s *Service) Summary() (*SalesSummary, error) {
	records, err := s.ListSales()
	if err != nil {
		return nil, err
	}

	totals := TotalsByProduct(records)
	summary := &SalesSummary{
		PerProduct: totals,
		Top5:       TopN(totals, TopSellerCount),
	}

	s.logger.Info("sales summary computed",
		zap.Int("records", len(records)),
		zap.Int("products", len(totals)),
	)
	return summary, nil
}

// Export returns the raw persisted ledger file contents.
func (s *Service) Export() ([]byte, error) {
	data, err := s.storage.Export()
	if err != nil {
		if !errors.Is(err, ErrNoData) {
			s.logger.Error("failed to export ledger", zap.Error(err))
		}
		return nil, err
	}
	return data, nil
}
