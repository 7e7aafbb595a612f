package domain_test

import (
	"testing"

	"github.com/adinugroho/laundryhub/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestNotificationKindForStatus(t *testing.T) {
	tests := []struct {
		status  string
		expKind domain.NotificationKind
	}{
		{"new", domain.NotificationNew},
		{"pending", domain.NotificationNew},
		{"baru", domain.NotificationNew},
		{"Baru", domain.NotificationNew},
		{"BARU", domain.NotificationNew},

		{"processing", domain.NotificationProcessing},
		{"diproses", domain.NotificationProcessing},
		{"sedang diproses", domain.NotificationProcessing},
		{"Sedang Diproses", domain.NotificationProcessing},

		{"completed", domain.NotificationCompleted},
		{"ready", domain.NotificationCompleted},
		{"selesai", domain.NotificationCompleted},
		{"siap", domain.NotificationCompleted},

		{"picked_up", domain.NotificationPickedUp},
		{"delivered", domain.NotificationPickedUp},
		{"diambil", domain.NotificationPickedUp},
		{"  Diambil  ", domain.NotificationPickedUp},
	}

	for _, test := range tests {
		t.Run(test.status, func(t *testing.T) {
			kind, ok := domain.NotificationKindForStatus(test.status)
			assert.True(t, ok)
			assert.Equal(t, test.expKind, kind)
		})
	}
}

func TestNotificationKindForStatus_Unknown(t *testing.T) {
	for _, status := range []string{"", "canceled", "whatever", "baru-baru"} {
		kind, ok := domain.NotificationKindForStatus(status)
		assert.False(t, ok, "status %q", status)
		assert.Empty(t, kind)
	}
}

// Repeating the same lookup yields the same result; the mapping holds no
// state.
func TestNotificationKindForStatus_Idempotent(t *testing.T) {
	first, ok1 := domain.NotificationKindForStatus("selesai")
	second, ok2 := domain.NotificationKindForStatus("selesai")
	assert.True(t, ok1)
	assert.True(t, ok2)
	assert.Equal(t, first, second)
}

func TestCanonicalStatus(t *testing.T) {
	tests := []struct {
		status    string
		expStatus domain.OrderStatus
	}{
		{"new", domain.OrderStatusNew},
		{"pending", domain.OrderStatusNew},
		{"baru", domain.OrderStatusNew},
		{"PROCESSING", domain.OrderStatusProcessing},
		{"sedang diproses", domain.OrderStatusProcessing},
		{"ready", domain.OrderStatusCompleted},
		{"siap", domain.OrderStatusCompleted},
		{"delivered", domain.OrderStatusPickedUp},
		{"diambil", domain.OrderStatusPickedUp},
	}

	for _, test := range tests {
		t.Run(test.status, func(t *testing.T) {
			status, ok := domain.CanonicalStatus(test.status)
			assert.True(t, ok)
			assert.Equal(t, test.expStatus, status)
		})
	}

	_, ok := domain.CanonicalStatus("refunded")
	assert.False(t, ok)
}
