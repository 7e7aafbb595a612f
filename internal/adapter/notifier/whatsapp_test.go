package notifier_test

import (
	"testing"

	"github.com/adinugroho/laundryhub/internal/adapter/notifier"
	"github.com/adinugroho/laundryhub/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestBuildWhatsAppLink(t *testing.T) {
	tests := []struct {
		name    string
		phone   string
		message string
		expLink string
	}{
		{
			name:    "local number rewritten to country code",
			phone:   "081234567890",
			message: "Pesanan selesai",
			expLink: "https://wa.me/6281234567890?text=Pesanan+selesai",
		},
		{
			name:    "already international",
			phone:   "+62 812-3456-7890",
			message: "",
			expLink: "https://wa.me/6281234567890",
		},
		{
			name:    "punctuation stripped",
			phone:   "(0812) 3456-7890",
			message: "Halo",
			expLink: "https://wa.me/6281234567890?text=Halo",
		},
		{
			name:    "no digits means no link",
			phone:   "n/a",
			message: "Halo",
			expLink: "",
		},
		{
			name:    "empty phone",
			phone:   "",
			message: "Halo",
			expLink: "",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			link := notifier.BuildWhatsAppLink(test.phone, test.message)
			assert.Equal(t, test.expLink, link)
		})
	}
}

func TestMessage(t *testing.T) {
	order := &domain.Order{ID: 7, Customer: domain.CustomerInfo{Name: "Budi"}}

	tests := []struct {
		kind       domain.NotificationKind
		expMessage string
	}{
		{domain.NotificationNew, "Pesanan baru #7 untuk Budi telah dibuat"},
		{domain.NotificationProcessing, "Pesanan #7 sedang diproses"},
		{domain.NotificationCompleted, "Pesanan #7 selesai dan siap diambil"},
		{domain.NotificationPickedUp, "Pesanan #7 telah diambil"},
	}

	for _, test := range tests {
		t.Run(string(test.kind), func(t *testing.T) {
			assert.Equal(t, test.expMessage, notifier.Message(order, test.kind))
		})
	}
}
