package entity

import (
	"time"

	"rental-service/src/internal/pricing"
)

const (
	VehicleTypeCar       = "mobil"
	VehicleTypeMotorbike = "motor"
)

type Vehicle struct {
	ID           string    `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Type         string    `json:"type" db:"type"`
	Category     string    `json:"category" db:"category"`
	PriceInCity  int64     `json:"price_in_city" db:"price_in_city"`
	PriceOutCity int64     `json:"price_out_city" db:"price_out_city"`
	Price12h     int64     `json:"price_12h" db:"price_12h"`
	Price24h     int64     `json:"price_24h" db:"price_24h"`
	Image        string    `json:"image" db:"image"`
	Specs        []byte    `json:"-" db:"specs"` // JSON array of strings
	Description  string    `json:"description" db:"description"`
	Available    bool      `json:"available" db:"available"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

func (v *Vehicle) RateCard() pricing.RateCard {
	return pricing.RateCard{
		Price12h:     v.Price12h,
		Price24h:     v.Price24h,
		PriceInCity:  v.PriceInCity,
		PriceOutCity: v.PriceOutCity,
	}
}
