package application

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/davicafu/bizreg/internal/searchlog/domain"
	"github.com/davicafu/bizreg/internal/searchlog/infra/outbound/filesystem"
)

func newService(t *testing.T) *SearchLogService {
	t.Helper()
	store := filesystem.NewCSVSearchLogStore(filepath.Join(t.TempDir(), "search-logs.csv"))
	return NewSearchLogService(store, zap.NewNop())
}

func TestAppend_ReturnsTimestamp(t *testing.T) {
	service := newService(t)

	ts, err := service.Append(context.Background(), "golang kafka")
	assert.NoError(t, err)
	assert.NotEmpty(t, ts)
}

func TestAppend_EmptyQueryRejected(t *testing.T) {
	service := newService(t)

	_, err := service.Append(context.Background(), "   ")
	assert.ErrorIs(t, err, domain.ErrEmptyQuery)
}

func TestRecent_CapsAtDefaultLimit(t *testing.T) {
	service := newService(t)
	ctx := context.Background()

	for _, q := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"} {
		_, err := service.Append(ctx, q)
		assert.NoError(t, err)
	}

	entries, err := service.Recent(ctx)
	assert.NoError(t, err)
	assert.Len(t, entries, domain.DefaultRecentLimit)
	assert.Equal(t, "l", entries[0].Query)
}

type failingStore struct{}

func (failingStore) Append(ctx context.Context, query string) (string, error) {
	return "", errors.New("disk full")
}

func (failingStore) Recent(ctx context.Context, limit int) ([]domain.SearchEntry, error) {
	return nil, errors.New("disk full")
}

func TestAppend_StorageErrorPropagates(t *testing.T) {
	service := NewSearchLogService(failingStore{}, zap.NewNop())

	_, err := service.Append(context.Background(), "anything")
	assert.Error(t, err)
}
