package bootstrap

import (
	"context"
	"fmt"
	"os"

	"rentdesk-backend/internal/logger"
	"rentdesk-backend/internal/service"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

type SeedCustomer struct {
	Name    string `yaml:"name"`
	Phone   string `yaml:"phone"`
	Address string `yaml:"address"`
}

type SeedItem struct {
	Name           string          `yaml:"name"`
	Category       string          `yaml:"category"`
	DailyRentPrice decimal.Decimal `yaml:"daily_rent_price"`
	SellingPrice   decimal.Decimal `yaml:"selling_price"`
	TotalQuantity  int             `yaml:"total_quantity"`
}

// SeedData is the starter data for an empty shop.
type SeedData struct {
	Customers []SeedCustomer `yaml:"customers"`
	Items     []SeedItem     `yaml:"items"`
}

// DefaultSeed is used when no seed file is given.
func DefaultSeed() SeedData {
	return SeedData{
		Customers: []SeedCustomer{
			{Name: "John Doe", Phone: "01700000000", Address: "Dhaka, Bangladesh"},
			{Name: "Event Pro Ltd", Phone: "01800000000", Address: "Chittagong"},
		},
		Items: []SeedItem{
			{Name: "LED Par Light", Category: "Lights", DailyRentPrice: decimal.NewFromInt(500), SellingPrice: decimal.NewFromInt(2500), TotalQuantity: 20},
			{Name: "Wireless Mic", Category: "Audio", DailyRentPrice: decimal.NewFromInt(1000), SellingPrice: decimal.NewFromInt(15000), TotalQuantity: 5},
			{Name: "Projector 4K", Category: "Visual", DailyRentPrice: decimal.NewFromInt(5000), SellingPrice: decimal.NewFromInt(80000), TotalQuantity: 2},
		},
	}
}

func LoadSeed(path string) (SeedData, error) {
	var data SeedData
	raw, err := os.ReadFile(path)
	if err != nil {
		return data, fmt.Errorf("failed to read seed file: %w", err)
	}
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return data, fmt.Errorf("failed to parse seed file: %w", err)
	}
	return data, nil
}

// Seed adds the seed records to an empty shop. It does nothing and returns
// false when any customer or item already exists.
func Seed(ctx context.Context, svcs *Services, data SeedData) (bool, error) {
	customers, err := svcs.Customers.ListCustomers(ctx)
	if err != nil {
		return false, err
	}
	items, err := svcs.Inventory.ListInventory(ctx)
	if err != nil {
		return false, err
	}
	if len(customers) > 0 || len(items) > 0 {
		logger.Info("Shop already has data, skipping seed", "customers", len(customers), "items", len(items))
		return false, nil
	}

	for _, c := range data.Customers {
		in := service.CustomerInput{Name: &c.Name, Phone: &c.Phone}
		if c.Address != "" {
			in.Address = &c.Address
		}
		if _, err := svcs.Customers.CreateCustomer(ctx, in); err != nil {
			return false, fmt.Errorf("failed to seed customer %s: %w", c.Name, err)
		}
	}

	for _, it := range data.Items {
		in := service.ItemInput{
			Name:           &it.Name,
			DailyRentPrice: &it.DailyRentPrice,
			SellingPrice:   &it.SellingPrice,
			TotalQuantity:  &it.TotalQuantity,
		}
		if it.Category != "" {
			in.Category = &it.Category
		}
		if _, err := svcs.Inventory.CreateItem(ctx, in); err != nil {
			return false, fmt.Errorf("failed to seed item %s: %w", it.Name, err)
		}
	}

	logger.Info("Seeded shop", "customers", len(data.Customers), "items", len(data.Items))
	return true, nil
}
