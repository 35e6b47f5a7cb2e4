package midtrans_test

import (
	"crypto/sha512"
	"encoding/hex"
	"testing"

	"rental-service/src/internal/entity"
	"rental-service/src/internal/gateway/midtrans"

	"github.com/stretchr/testify/assert"
)

func TestSignature(t *testing.T) {
	got := midtrans.Signature("DMT-1-ABC123", "200", "150000.00", "secret-key")

	sum := sha512.Sum512([]byte("DMT-1-ABC123" + "200" + "150000.00" + "secret-key"))
	assert.Equal(t, hex.EncodeToString(sum[:]), got)
	assert.Len(t, got, 128)

	// any input change produces a different signature
	assert.NotEqual(t, got, midtrans.Signature("DMT-1-ABC123", "200", "150000.01", "secret-key"))
	assert.NotEqual(t, got, midtrans.Signature("DMT-1-ABC123", "200", "150000.00", "other-key"))
}

func TestMapPaymentStatus(t *testing.T) {
	tests := []struct {
		transactionStatus string
		fraudStatus       string
		want              string
	}{
		{"capture", "accept", entity.PaymentPaid},
		{"capture", "challenge", entity.PaymentPending},
		{"capture", "", entity.PaymentPending},
		{"settlement", "", entity.PaymentPaid},
		{"pending", "", entity.PaymentPending},
		{"deny", "", entity.PaymentFailed},
		{"cancel", "", entity.PaymentFailed},
		{"expire", "", entity.PaymentExpired},
		{"refund", "", entity.PaymentRefunded},
		{"partial_refund", "", entity.PaymentPending},
		{"", "", entity.PaymentPending},
	}

	for _, tc := range tests {
		got := midtrans.MapPaymentStatus(tc.transactionStatus, tc.fraudStatus)
		assert.Equalf(t, tc.want, got, "status=%q fraud=%q", tc.transactionStatus, tc.fraudStatus)
	}
}

func TestBookingStatusFor(t *testing.T) {
	assert.Equal(t, entity.BookingConfirmed, midtrans.BookingStatusFor(entity.PaymentPaid))
	assert.Equal(t, entity.BookingCancelled, midtrans.BookingStatusFor(entity.PaymentFailed))
	assert.Equal(t, entity.BookingCancelled, midtrans.BookingStatusFor(entity.PaymentExpired))
	assert.Equal(t, "", midtrans.BookingStatusFor(entity.PaymentPending))
	assert.Equal(t, "", midtrans.BookingStatusFor(entity.PaymentRefunded))
}
