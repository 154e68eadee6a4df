package controller

import "github.com/prometheus/client_golang/prometheus"

var (
	CommandDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "bookypedia_command_duration_ms",
		Help:    "Duration of a menu command in ms",
		Buckets: prometheus.DefBuckets,
	}, []string{"command"})

	CommandFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "bookypedia_command_failures_total",
		Help: "Number of menu commands that reported a failure",
	}, []string{"command"})
)

func init() {
	prometheus.MustRegister(CommandDuration, CommandFailures)
}
