// Package metrics exposes activity registry counters to Prometheus.
package metrics

import (
	"context"
	"fmt"

	"github.com/phrazzld/mergington-activities/internal/domain"
	"github.com/phrazzld/mergington-activities/internal/events"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder keeps per-activity signup metrics up to date by handling
// activity events.
type Recorder struct {
	signups         *prometheus.CounterVec
	unregistrations *prometheus.CounterVec
	participants    *prometheus.GaugeVec
}

// Compile-time check to ensure Recorder implements events.EventHandler
var _ events.EventHandler = (*Recorder)(nil)

// NewRecorder creates a Recorder whose collectors are registered with reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)

	return &Recorder{
		signups: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "activity_signups_total",
				Help: "Total number of successful activity signups",
			},
			[]string{"activity"},
		),
		unregistrations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "activity_unregistrations_total",
				Help: "Total number of successful activity unregistrations",
			},
			[]string{"activity"},
		),
		participants: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "activity_participants",
				Help: "Current number of participants per activity",
			},
			[]string{"activity"},
		),
	}
}

// Prime sets the participant gauge for every activity, so activities that
// never change still report their seeded size.
func (r *Recorder) Prime(activities []*domain.Activity) {
	for _, activity := range activities {
		r.participants.WithLabelValues(activity.Name).Set(float64(len(activity.Participants)))
	}
}

// HandleEvent implements events.EventHandler
func (r *Recorder) HandleEvent(ctx context.Context, event *events.ActivityEvent) error {
	switch event.Type {
	case events.TypeParticipantSignedUp:
		r.signups.WithLabelValues(event.Activity).Inc()
	case events.TypeParticipantUnregistered:
		r.unregistrations.WithLabelValues(event.Activity).Inc()
	default:
		return fmt.Errorf("unsupported event type %q", event.Type)
	}

	r.participants.WithLabelValues(event.Activity).Set(float64(event.Participants))
	return nil
}
