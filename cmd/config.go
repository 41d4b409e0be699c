package cmd

import (
	"fmt"
	"strconv"

	"bakeshop/internal/core/domain/model/kernel"
	"bakeshop/internal/core/domain/model/pricing"
)

// Store location defaults: the bakery on the outskirts of Bengaluru.
const (
	DefaultStoreLat = 12.7786
	DefaultStoreLng = 77.7629
)

// Config carries the environment-driven settings of the application.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	StoreLat   float64
	StoreLng   float64
}

// DSN renders the Postgres connection string for GORM.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// StoreLocation builds the store's pickup point from the configured coordinates.
func (c Config) StoreLocation() (kernel.GeoPoint, error) {
	return kernel.NewGeoPoint(c.StoreLat, c.StoreLng)
}

// ParseCoordinate parses an environment value into a coordinate, falling back
// to the given default when the value is empty.
func ParseCoordinate(value string, fallback float64) (float64, error) {
	if value == "" {
		return fallback, nil
	}
	return strconv.ParseFloat(value, 64)
}

// DefaultDeliverySettings builds the stock fee configuration: a base price of
// 60, order value bounds of 100 to 50000 for home delivery, and three
// distance tiers below the extended range.
func DefaultDeliverySettings() (pricing.DeliverySettings, error) {
	near, err := pricing.NewDeliveryTier(0, 3, 50)
	if err != nil {
		return pricing.DeliverySettings{}, err
	}
	mid, err := pricing.NewDeliveryTier(3, 7, 80)
	if err != nil {
		return pricing.DeliverySettings{}, err
	}
	far, err := pricing.NewDeliveryTier(7, 10, 120)
	if err != nil {
		return pricing.DeliverySettings{}, err
	}

	return pricing.NewDeliverySettings(60, 100, 50000, []pricing.DeliveryTier{near, mid, far})
}
