package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/davicafu/bizreg/internal/searchlog/domain"
)

const header = "timestamp,search_query"

// sanitizer replaces the field separator and record terminators, so one
// append is always exactly one well-formed record.
var sanitizer = strings.NewReplacer(",", ";", "\r", " ", "\n", " ")

// CSVSearchLogStore is an append-only CSV file with a fixed two-field
// header. Appends are serialized by a mutex: single-writer discipline.
type CSVSearchLogStore struct {
	filePath string
	mu       sync.Mutex
}

// Verificación estática
var _ domain.SearchLogStore = (*CSVSearchLogStore)(nil)

func NewCSVSearchLogStore(filePath string) *CSVSearchLogStore {
	return &CSVSearchLogStore{filePath: filePath}
}

// Append writes one record and returns its timestamp.
func (s *CSVSearchLogStore) Append(ctx context.Context, query string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureFile(); err != nil {
		return "", err
	}

	f, err := os.OpenFile(s.filePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return "", fmt.Errorf("open search log: %w", err)
	}
	defer f.Close()

	timestamp := time.Now().UTC().Format(time.RFC3339)
	record := fmt.Sprintf("%s,%s\n", timestamp, sanitizer.Replace(query))

	if _, err := f.WriteString(record); err != nil {
		return "", fmt.Errorf("append search log: %w", err)
	}
	return timestamp, nil
}

// Recent scans the file from newest to oldest, skipping the header and any
// malformed line, deduplicating case-insensitively so the most recent
// occurrence of a repeated query wins.
func (s *CSVSearchLogStore) Recent(ctx context.Context, limit int) ([]domain.SearchEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := make([]domain.SearchEntry, 0, limit)

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return entries, nil
		}
		return nil, fmt.Errorf("read search log: %w", err)
	}

	var lines []string
	for _, l := range strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n") {
		if strings.TrimSpace(l) != "" {
			lines = append(lines, l)
		}
	}
	// Only the header, or nothing at all.
	if len(lines) <= 1 {
		return entries, nil
	}

	seen := make(map[string]struct{})
	for i := len(lines) - 1; i > 0 && len(entries) < limit; i-- {
		line := strings.TrimSpace(lines[i])

		idx := strings.Index(line, ",")
		if idx < 0 {
			continue // malformed record
		}

		timestamp := line[:idx]
		query := line[idx+1:]
		key := strings.ToLower(strings.TrimSpace(query))

		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		entries = append(entries, domain.SearchEntry{
			Timestamp: timestamp,
			Query:     query,
		})
	}
	return entries, nil
}

// ensureFile creates the parent directory and the header record on first use.
func (s *CSVSearchLogStore) ensureFile() error {
	if _, err := os.Stat(s.filePath); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat search log: %w", err)
	}

	if dir := filepath.Dir(s.filePath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create search log dir: %w", err)
		}
	}
	if err := os.WriteFile(s.filePath, []byte(header+"\n"), 0644); err != nil {
		return fmt.Errorf("initialize search log: %w", err)
	}
	return nil
}
