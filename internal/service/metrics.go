package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var recordsCreated = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "tripwise",
		Subsystem: "planner",
		Name:      "records_created_total",
		Help:      "Trips, activities and expenses created.",
	},
	[]string{"kind"},
)

var authEvents = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "tripwise",
		Subsystem: "auth",
		Name:      "events_total",
		Help:      "Mock login, signup and logout calls that succeeded.",
	},
	[]string{"kind"},
)
