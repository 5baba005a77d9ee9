package bootstrap_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"rentdesk-backend/internal/bootstrap"
	"rentdesk-backend/internal/config"
	"rentdesk-backend/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memoryConfig(snapshot string) *config.Config {
	return &config.Config{Store: config.StoreConfig{Type: config.StoreMemory, SnapshotPath: snapshot}}
}

func TestOpenStore_UnsupportedType(t *testing.T) {
	_, err := bootstrap.OpenStore(context.Background(), &config.Config{Store: config.StoreConfig{Type: "mongo"}})

	assert.Error(t, err)
}

func TestSeed_DefaultDataOnce(t *testing.T) {
	ctx := context.Background()
	store, err := bootstrap.OpenStore(ctx, memoryConfig(""))
	require.NoError(t, err)
	svcs := bootstrap.NewServices(store, service.NewSystemClock(time.UTC))

	seeded, err := bootstrap.Seed(ctx, svcs, bootstrap.DefaultSeed())
	require.NoError(t, err)
	assert.True(t, seeded)

	seeded, err = bootstrap.Seed(ctx, svcs, bootstrap.DefaultSeed())
	require.NoError(t, err)
	assert.False(t, seeded)

	customers, err := svcs.Customers.ListCustomers(ctx)
	require.NoError(t, err)
	assert.Len(t, customers, 2)

	items, err := svcs.Inventory.ListInventory(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	for _, it := range items {
		assert.Equal(t, it.TotalQuantity, it.Available)
	}
}

func TestSeed_PersistsToSnapshot(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "shop.json")

	store, err := bootstrap.OpenStore(ctx, memoryConfig(path))
	require.NoError(t, err)
	_, err = bootstrap.Seed(ctx, bootstrap.NewServices(store, service.NewSystemClock(time.UTC)), bootstrap.DefaultSeed())
	require.NoError(t, err)
	require.NoError(t, store.Close())

	reopened, err := bootstrap.OpenStore(ctx, memoryConfig(path))
	require.NoError(t, err)
	items, err := bootstrap.NewServices(reopened, service.NewSystemClock(time.UTC)).Inventory.ListInventory(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "LED Par Light", items[0].Name)
}

func TestLoadSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	content := `customers:
  - name: Jane Roe
    phone: "01900000000"
items:
  - name: Fog Machine
    category: Effects
    daily_rent_price: "750.50"
    selling_price: "12000"
    total_quantity: 3
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	data, err := bootstrap.LoadSeed(path)
	require.NoError(t, err)

	require.Len(t, data.Customers, 1)
	assert.Equal(t, "01900000000", data.Customers[0].Phone)
	require.Len(t, data.Items, 1)
	assert.True(t, decimal.RequireFromString("750.5").Equal(data.Items[0].DailyRentPrice))
	assert.Equal(t, 3, data.Items[0].TotalQuantity)
}

func TestLoadSeed_MissingFile(t *testing.T) {
	_, err := bootstrap.LoadSeed(filepath.Join(t.TempDir(), "nope.yaml"))

	assert.Error(t, err)
}
