package overdue_watch

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var OverdueJobCards = promauto.NewGauge(
	prometheus.GaugeOpts{
		Name: "overdue_job_cards",
		Help: "Number of job cards past their estimated arrival time and not yet delivered or cancelled",
	},
)
