package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ordersPlaced = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "campus_laundry",
		Subsystem: "orders",
		Name:      "placed_total",
		Help:      "Total number of orders placed.",
	})

	slotFullRejections = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "campus_laundry",
		Subsystem: "orders",
		Name:      "slot_full_total",
		Help:      "Checkouts rejected because the pickup slot was full.",
	}, []string{"slot"})

	statusTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "campus_laundry",
		Subsystem: "orders",
		Name:      "status_transitions_total",
		Help:      "Applied order status transitions.",
	}, []string{"from", "to"})

	statusConflicts = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "campus_laundry",
		Subsystem: "orders",
		Name:      "status_conflicts_total",
		Help:      "Status updates lost to a concurrent writer.",
	})

	signIns = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "campus_laundry",
		Subsystem: "auth",
		Name:      "sign_ins_total",
		Help:      "Sign-in attempts by result.",
	}, []string{"result"})
)
