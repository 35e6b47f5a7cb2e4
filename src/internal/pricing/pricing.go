package pricing

import (
	"math"
	"time"
)

// DeliveryFee is the flat charge for having the vehicle delivered,
// applied once per booking regardless of rental length.
const DeliveryFee int64 = 50000

type Zone string

const (
	ZoneInCity  Zone = "inCity"
	ZoneOutCity Zone = "outCity"
)

// RateCard is the pricing subset of a vehicle record. Unset prices are
// zero: a vehicle without a configured rate quotes free instead of
// failing, and guarding against that belongs to vehicle administration,
// not the calculator.
type RateCard struct {
	Price12h     int64
	Price24h     int64
	PriceInCity  int64
	PriceOutCity int64
}

type RentalWindow struct {
	Start time.Time
	End   time.Time
}

// Options selects the pricing branch per vehicle class. Cars are billed
// by wall-clock hours against the 12h/24h tiers; motorbikes by calendar
// day and usage zone.
type Options interface {
	isRentalOptions()
}

type CarOptions struct{}

type MotorbikeOptions struct {
	Zone Zone
}

func (CarOptions) isRentalOptions()       {}
func (MotorbikeOptions) isRentalOptions() {}

type Quote struct {
	UnitCount         int64  `json:"unitCount"`
	UnitPrice         int64  `json:"unitPrice"`
	UnitLabel         string `json:"unitLabel"`
	RentalSubtotal    int64  `json:"rentalSubtotal"`
	DeliverySurcharge int64  `json:"deliverySurcharge"`
	Total             int64  `json:"total"`
}

// ComputeQuote prices a rental window against a rate card. It is pure
// and never fails: degenerate windows clamp to one billable unit.
//
// Car tiers are inclusive of the lower bound: exactly 12 hours bills a
// single 12h unit, exactly 24 hours a single 24h unit. Past 24 hours the
// count is ceil(hours/24) at the 24h rate. The jump from the 12h to the
// 24h rate just past the 12-hour mark is intended.
func ComputeQuote(card RateCard, window RentalWindow, opts Options, deliveryRequested bool) Quote {
	var q Quote

	switch o := opts.(type) {
	case MotorbikeOptions:
		q.UnitCount = rentalDays(window)
		if o.Zone == ZoneOutCity {
			q.UnitPrice = card.PriceOutCity
			q.UnitLabel = "hari (luar kota)"
		} else {
			q.UnitPrice = card.PriceInCity
			q.UnitLabel = "hari (dalam kota)"
		}
	default:
		hours := window.End.Sub(window.Start).Hours()
		if hours < 0 {
			hours = 0
		}
		switch {
		case hours <= 12:
			q.UnitCount = 1
			q.UnitPrice = card.Price12h
			q.UnitLabel = "12 jam"
		case hours <= 24:
			q.UnitCount = 1
			q.UnitPrice = card.Price24h
			q.UnitLabel = "24 jam"
		default:
			q.UnitCount = int64(math.Ceil(hours / 24))
			q.UnitPrice = card.Price24h
			q.UnitLabel = "24 jam"
		}
	}

	q.RentalSubtotal = q.UnitCount * q.UnitPrice
	if deliveryRequested {
		q.DeliverySurcharge = DeliveryFee
	}
	q.Total = q.RentalSubtotal + q.DeliverySurcharge
	return q
}

// rentalDays counts calendar days between the window endpoints,
// ignoring time of day. Equal or inverted dates still bill one day.
func rentalDays(window RentalWindow) int64 {
	start := truncateToDate(window.Start)
	end := truncateToDate(window.End)

	diff := end.Sub(start)
	if diff < 0 {
		diff = -diff
	}
	days := int64(math.Ceil(diff.Hours() / 24))
	if days < 1 {
		days = 1
	}
	return days
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
