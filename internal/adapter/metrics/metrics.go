// Package metrics exposes the prometheus instruments for the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrdersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "laundryhub_orders_created_total",
		Help: "Orders accepted into the store.",
	})

	PaymentsRecorded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "laundryhub_payments_recorded_total",
		Help: "Payments appended to order payment histories.",
	})

	OrdersReset = promauto.NewCounter(prometheus.CounterOpts{
		Name: "laundryhub_orders_reset_total",
		Help: "Destructive full resets of a user's order collection.",
	})

	NotificationsEmitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "laundryhub_notifications_emitted_total",
		Help: "Notifications emitted to the UI layer, by kind.",
	}, []string{"kind"})
)
