package ingest

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseInventoryCSV(t *testing.T) {
	csvData := strings.Join([]string{
		"name,unit,category,current_quantity,min_quantity,cost_per_unit,expiry_date,supplier",
		"Arroz,kg,Graos,25,5,4.50,2025-12-01,Atacadao",
		"Alface,un,Hortifruti,12,4,,,",
		",kg,Graos,1,1,1,,",
		"Oleo,l,Graos,8,2,not-a-number,,",
	}, "\n")

	items, skipped, err := parseInventoryCSV(strings.NewReader(csvData))

	assert.NoError(t, err)
	assert.Len(t, items, 2)
	// Rows with a missing name or malformed number are skipped, not fatal.
	assert.Equal(t, 2, skipped)

	arroz := items[0]
	assert.Equal(t, "Arroz", arroz.Name)
	assert.Equal(t, "kg", arroz.Unit)
	assert.Equal(t, "Graos", *arroz.CategoryName)
	assert.Equal(t, 25.0, arroz.CurrentQuantity)
	assert.Equal(t, 5.0, arroz.MinQuantity)
	assert.Equal(t, 4.5, *arroz.CostPerUnit)
	assert.Equal(t, time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC), *arroz.ExpiryDate)
	assert.Equal(t, "Atacadao", *arroz.Supplier)

	alface := items[1]
	assert.Nil(t, alface.CostPerUnit)
	assert.Nil(t, alface.ExpiryDate)
	assert.Nil(t, alface.Supplier)
}

func TestParseInventoryCSVRequiresNameColumn(t *testing.T) {
	csvData := "unit,current_quantity\nkg,5\n"

	_, _, err := parseInventoryCSV(strings.NewReader(csvData))
	assert.Error(t, err)
}

func TestRestaurantIDFromKey(t *testing.T) {
	svc := NewService(nil, nil, "imports/")

	id, err := svc.restaurantIDFromKey("imports/42/stock-2025-06.csv")
	assert.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, key := range []string{
		"imports/stock.csv",
		"other/42/stock.csv",
		"imports/abc/stock.csv",
		"imports/0/stock.csv",
	} {
		_, err := svc.restaurantIDFromKey(key)
		assert.ErrorIs(t, err, ErrBadObjectKey, key)
	}
}

func TestNewServiceNormalizesPrefix(t *testing.T) {
	svc := NewService(nil, nil, "drops")

	id, err := svc.restaurantIDFromKey("drops/7/file.csv")
	assert.NoError(t, err)
	assert.Equal(t, int64(7), id)
}
