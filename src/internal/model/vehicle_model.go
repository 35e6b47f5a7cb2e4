package model

type ListVehicleRequest struct {
	Type          string `json:"-" validate:"omitempty,oneof=mobil motor"`
	AvailableOnly bool   `json:"-"`
}

type VehicleDetailRequest struct {
	VehicleID string `json:"-" validate:"required,max=100"`
}

type UpsertVehicleRequest struct {
	VehicleID    string   `json:"-"`
	Name         string   `json:"name" validate:"required,max=100"`
	Type         string   `json:"type" validate:"required,oneof=mobil motor"`
	Category     string   `json:"category" validate:"required,max=50"`
	PriceInCity  int64    `json:"priceInCity" validate:"gte=0"`
	PriceOutCity int64    `json:"priceOutCity" validate:"gte=0"`
	Price12h     int64    `json:"price12h" validate:"gte=0"`
	Price24h     int64    `json:"price24h" validate:"gte=0"`
	Image        string   `json:"image" validate:"max=255"`
	Specs        []string `json:"specs"`
	Description  string   `json:"description" validate:"max=1000"`
	Available    *bool    `json:"available"`
}

type DeleteVehicleRequest struct {
	VehicleID string `json:"-" validate:"required,max=100"`
}
