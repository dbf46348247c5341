// internal/ingest/service.go
package ingest

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/cozinhapro/backoffice/internal/domain"
	"github.com/cozinhapro/backoffice/internal/repository"
	"github.com/cozinhapro/backoffice/internal/storage"
	"github.com/rs/zerolog/log"
)

// ErrBadObjectKey is returned when an object key does not follow the
// <prefix><restaurant_id>/<file>.csv layout.
var ErrBadObjectKey = errors.New("object key does not match the import layout")

// Service pulls inventory CSV drops from the object bucket and upserts
// them into the store. Expected columns:
//
//	name,unit,category,current_quantity,min_quantity,cost_per_unit,expiry_date,supplier
//
// Only name is mandatory; empty optional columns become NULLs.
type Service struct {
	storage storage.ObjectStorage
	repo    repository.InventoryRepository
	prefix  string
}

func NewService(objectStorage storage.ObjectStorage, repo repository.InventoryRepository, prefix string) *Service {
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return &Service{
		storage: objectStorage,
		repo:    repo,
		prefix:  prefix,
	}
}

// Result summarizes one processed import file.
type Result struct {
	Key          string `json:"key"`
	RestaurantID int64  `json:"restaurant_id"`
	Rows         int    `json:"rows"`
	Upserted     int    `json:"upserted"`
	Skipped      int    `json:"skipped"`
}

// ProcessObject ingests a single CSV object by key.
func (s *Service) ProcessObject(ctx context.Context, key string) (*Result, error) {
	restaurantID, err := s.restaurantIDFromKey(key)
	if err != nil {
		return nil, err
	}

	object, err := s.storage.GetObject(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch import object: %w", err)
	}
	defer object.Close()

	items, skipped, err := parseInventoryCSV(object)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", key, err)
	}

	upserted, err := s.repo.UpsertItems(ctx, restaurantID, items)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Key:          key,
		RestaurantID: restaurantID,
		Rows:         len(items) + skipped,
		Upserted:     upserted,
		Skipped:      skipped,
	}
	log.Info().
		Str("key", key).
		Int64("restaurant_id", restaurantID).
		Int("upserted", upserted).
		Int("skipped", skipped).
		Msg("inventory import processed")
	return result, nil
}

// ProcessPending ingests every CSV currently under a restaurant's import
// prefix.
func (s *Service) ProcessPending(ctx context.Context, restaurantID int64) ([]*Result, error) {
	prefix := fmt.Sprintf("%s%d/", s.prefix, restaurantID)
	objects, err := s.storage.ListObjects(ctx, prefix)
	if err != nil {
		return nil, fmt.Errorf("failed to list import objects: %w", err)
	}

	results := make([]*Result, 0, len(objects))
	for _, object := range objects {
		if !strings.HasSuffix(strings.ToLower(object.Key), ".csv") {
			continue
		}
		result, err := s.ProcessObject(ctx, object.Key)
		if err != nil {
			return results, err
		}
		results = append(results, result)
	}
	return results, nil
}

func (s *Service) restaurantIDFromKey(key string) (int64, error) {
	if !strings.HasPrefix(key, s.prefix) {
		return 0, fmt.Errorf("%w: %s", ErrBadObjectKey, key)
	}
	rest := strings.TrimPrefix(key, s.prefix)
	parts := strings.SplitN(rest, "/", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: %s", ErrBadObjectKey, key)
	}
	id, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s", ErrBadObjectKey, key)
	}
	return id, nil
}

func parseInventoryCSV(r io.Reader) ([]domain.InventoryItem, int, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read header: %w", err)
	}
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := columns["name"]; !ok {
		return nil, 0, errors.New("missing required column: name")
	}

	field := func(record []string, column string) string {
		idx, ok := columns[column]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	var items []domain.InventoryItem
	skipped := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("failed to read row: %w", err)
		}

		name := field(record, "name")
		if name == "" {
			skipped++
			continue
		}

		item := domain.InventoryItem{
			Name: name,
			Unit: field(record, "unit"),
		}
		if v := field(record, "category"); v != "" {
			item.CategoryName = &v
		}
		if v := field(record, "current_quantity"); v != "" {
			qty, err := strconv.ParseFloat(v, 64)
			if err != nil {
				skipped++
				continue
			}
			item.CurrentQuantity = qty
		}
		if v := field(record, "min_quantity"); v != "" {
			qty, err := strconv.ParseFloat(v, 64)
			if err != nil {
				skipped++
				continue
			}
			item.MinQuantity = qty
		}
		if v := field(record, "cost_per_unit"); v != "" {
			cost, err := strconv.ParseFloat(v, 64)
			if err != nil {
				skipped++
				continue
			}
			item.CostPerUnit = &cost
		}
		if v := field(record, "expiry_date"); v != "" {
			expiry, err := time.Parse("2006-01-02", v)
			if err != nil {
				skipped++
				continue
			}
			item.ExpiryDate = &expiry
		}
		if v := field(record, "supplier"); v != "" {
			item.Supplier = &v
		}

		items = append(items, item)
	}

	return items, skipped, nil
}
