// Package metrics collects and exposes Prometheus metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Rejection reasons recorded on failed booking attempts.
const (
	ReasonClassFull      = "class_full"
	ReasonClassNotFound  = "class_not_found"
	ReasonMemberNotFound = "member_not_found"
	ReasonInternal       = "internal"
)

// Recorder is the interface the service layer uses to record events.
type Recorder interface {
	RecordBookingCreated()
	RecordBookingRejected(reason string)
	RecordLoginFailure()
	RecordAuthFailure()
	RecordRegistration()
}

// Collector is the Prometheus-backed Recorder implementation.
type Collector struct {
	bookingsCreated  prometheus.Counter
	bookingsRejected *prometheus.CounterVec
	loginFailures    prometheus.Counter
	authFailures     prometheus.Counter
	registrations    prometheus.Counter
}

var _ Recorder = (*Collector)(nil)

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		bookingsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fitbook_bookings_created_total",
			Help: "Total number of committed bookings.",
		}),
		bookingsRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fitbook_bookings_rejected_total",
			Help: "Total number of rejected booking attempts by reason.",
		}, []string{"reason"}),
		loginFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fitbook_login_failures_total",
			Help: "Total number of failed login attempts.",
		}),
		authFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fitbook_auth_failures_total",
			Help: "Total number of rejected bearer tokens.",
		}),
		registrations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fitbook_registrations_total",
			Help: "Total number of registered users.",
		}),
	}

	reg.MustRegister(
		c.bookingsCreated,
		c.bookingsRejected,
		c.loginFailures,
		c.authFailures,
		c.registrations,
	)
	return c
}

// RecordBookingCreated counts a committed booking.
func (c *Collector) RecordBookingCreated() {
	c.bookingsCreated.Inc()
}

// RecordBookingRejected counts a rejected booking attempt by reason.
func (c *Collector) RecordBookingRejected(reason string) {
	c.bookingsRejected.WithLabelValues(reason).Inc()
}

// RecordLoginFailure counts a failed login.
func (c *Collector) RecordLoginFailure() {
	c.loginFailures.Inc()
}

// RecordAuthFailure counts a rejected bearer token.
func (c *Collector) RecordAuthFailure() {
	c.authFailures.Inc()
}

// RecordRegistration counts a new registration.
func (c *Collector) RecordRegistration() {
	c.registrations.Inc()
}
