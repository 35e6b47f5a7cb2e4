package midtrans

import (
	"crypto/sha512"
	"encoding/hex"

	"rental-service/src/internal/entity"
)

// Signature recomputes the notification signature: SHA-512 hex over
// order_id + status_code + gross_amount + server key, per Midtrans docs.
func Signature(orderID, statusCode, grossAmount, serverKey string) string {
	sum := sha512.Sum512([]byte(orderID + statusCode + grossAmount + serverKey))
	return hex.EncodeToString(sum[:])
}

// MapPaymentStatus translates a gateway transaction/fraud status pair
// into a domain payment status. Unknown statuses map to pending so a
// new gateway status never flips a booking into a terminal state.
func MapPaymentStatus(transactionStatus, fraudStatus string) string {
	switch transactionStatus {
	case "capture":
		if fraudStatus == "accept" {
			return entity.PaymentPaid
		}
		return entity.PaymentPending
	case "settlement":
		return entity.PaymentPaid
	case "pending":
		return entity.PaymentPending
	case "deny", "cancel":
		return entity.PaymentFailed
	case "expire":
		return entity.PaymentExpired
	case "refund":
		return entity.PaymentRefunded
	default:
		return entity.PaymentPending
	}
}

// BookingStatusFor derives the lifecycle status a payment status
// implies; empty string means leave the booking status untouched.
func BookingStatusFor(paymentStatus string) string {
	switch paymentStatus {
	case entity.PaymentPaid:
		return entity.BookingConfirmed
	case entity.PaymentFailed, entity.PaymentExpired:
		return entity.BookingCancelled
	default:
		return ""
	}
}
