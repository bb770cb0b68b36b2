package product

import (
	"context"
	"fmt"
	"sync"
	"time"

	"abc-product/core/export"
	"abc-product/feature/product/extract"
	"abc-product/feature/product/models"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Catalog is a reconciled product map with the time it was built.
type Catalog struct {
	Products models.ProductsByKey
	Summary  Summary
	Built    time.Time
	TTL      time.Duration
}

// IsExpired returns true if this catalog should be rebuilt.
func (c *Catalog) IsExpired() bool {
	if c.TTL == 0 {
		return true // No caching
	}
	return time.Since(c.Built) > c.TTL
}

// Service loads products from the configured export source.
type Service struct {
	source export.Source
	cfg    export.Config
	logger *zap.Logger

	mu      sync.RWMutex
	catalog *Catalog
	sf      singleflight.Group
}

// NewService creates a new product service.
func NewService(source export.Source, cfg export.Config, logger *zap.Logger) *Service {
	return &Service{
		source: source,
		cfg:    cfg,
		logger: logger,
	}
}

// Load parses and reconciles both export files.
func (s *Service) Load(ctx context.Context) (models.ProductsByKey, error) {
	start := time.Now()
	opts := extract.Options{
		Logger:           s.logger,
		StrictDuplicates: s.cfg.StrictDuplicates,
	}

	products, err := FromSource(ctx, s.source, s.cfg.BaseFile, s.cfg.PostedFile, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to load export: %w", err)
	}

	s.logger.Info("Export reconciled",
		zap.String("base", s.source.Describe(s.cfg.BaseFile)),
		zap.String("posted", s.source.Describe(s.cfg.PostedFile)),
		zap.Int("products", len(products)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return products, nil
}

// Catalog returns the cached catalog, rebuilding it when missing or expired.
// Concurrent callers share a single rebuild.
func (s *Service) Catalog(ctx context.Context) (*Catalog, error) {
	s.mu.RLock()
	cat := s.catalog
	s.mu.RUnlock()

	if cat != nil && !cat.IsExpired() {
		return cat, nil
	}

	result, err, _ := s.sf.Do("catalog", func() (interface{}, error) {
		s.mu.RLock()
		cat := s.catalog
		s.mu.RUnlock()
		if cat != nil && !cat.IsExpired() {
			return cat, nil
		}

		products, err := s.Load(ctx)
		if err != nil {
			return nil, err
		}

		cat = &Catalog{
			Products: products,
			Summary:  Summarize(products),
			Built:    time.Now(),
			TTL:      time.Duration(s.cfg.CacheTTLSeconds) * time.Second,
		}

		s.mu.Lock()
		s.catalog = cat
		s.mu.Unlock()
		return cat, nil
	})
	if err != nil {
		return nil, err
	}

	return result.(*Catalog), nil
}

// Get looks up a single product by key.
func (s *Service) Get(ctx context.Context, key string) (models.Product, bool, error) {
	cat, err := s.Catalog(ctx)
	if err != nil {
		return models.Product{}, false, err
	}
	p, ok := cat.Products[key]
	return p, ok, nil
}

// Invalidate drops the cached catalog.
func (s *Service) Invalidate() {
	s.mu.Lock()
	s.catalog = nil
	s.mu.Unlock()
}
