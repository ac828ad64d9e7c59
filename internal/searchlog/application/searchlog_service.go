package application

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/davicafu/bizreg/internal/searchlog/domain"
)

// SearchLogService owns the search-log use cases. Independent of the
// registration pipeline.
type SearchLogService struct {
	store domain.SearchLogStore
	log   *zap.Logger
}

func NewSearchLogService(store domain.SearchLogStore, log *zap.Logger) *SearchLogService {
	return &SearchLogService{
		store: store,
		log:   log,
	}
}

// Append records one query and returns the timestamp it was stored with.
func (s *SearchLogService) Append(ctx context.Context, query string) (string, error) {
	if strings.TrimSpace(query) == "" {
		return "", domain.ErrEmptyQuery
	}

	ts, err := s.store.Append(ctx, query)
	if err != nil {
		s.log.Error("Failed to append search log", zap.Error(err))
		return "", err
	}

	s.log.Info("Search log written", zap.String("query", query))
	return ts, nil
}

// Recent returns the most recent distinct queries, newest first.
func (s *SearchLogService) Recent(ctx context.Context) ([]domain.SearchEntry, error) {
	return s.store.Recent(ctx, domain.DefaultRecentLimit)
}
