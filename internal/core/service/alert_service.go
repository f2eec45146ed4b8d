package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/propertyhub/marketplace/internal/api/metrics"
	"github.com/propertyhub/marketplace/internal/core/domain"
	"github.com/propertyhub/marketplace/internal/core/policy"
	"github.com/propertyhub/marketplace/internal/core/ports"
)

type AlertService struct {
	alerts ports.AlertRepository
	log    zerolog.Logger
}

func NewAlertService(alerts ports.AlertRepository, log zerolog.Logger) *AlertService {
	return &AlertService{alerts: alerts, log: log}
}

func (s *AlertService) List(ctx context.Context, acting *domain.Identity) ([]*domain.Alert, error) {
	if err := policy.IsAuthenticated(acting); err != nil {
		return nil, err
	}
	alerts, err := s.alerts.ListByUser(ctx, acting.ID)
	if err != nil {
		return nil, fmt.Errorf("list alerts: %w", err)
	}
	return alerts, nil
}

// MarkRead flags an alert as read. Only its recipient may do so.
func (s *AlertService) MarkRead(ctx context.Context, acting *domain.Identity, id string) (*domain.Alert, error) {
	if err := policy.IsAuthenticated(acting); err != nil {
		return nil, err
	}
	alert, err := s.alerts.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("mark alert read: %w", err)
	}
	if err := policy.IsResourceOwner(acting, alert); err != nil {
		return nil, err
	}
	updated, err := s.alerts.MarkRead(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("mark alert read: %w", err)
	}
	return updated, nil
}

// AlertWriter persists alerts synchronously. Failures are logged and counted,
// never returned: alert delivery is best-effort.
type AlertWriter struct {
	alerts ports.AlertRepository
	log    zerolog.Logger
}

func NewAlertWriter(alerts ports.AlertRepository, log zerolog.Logger) *AlertWriter {
	return &AlertWriter{alerts: alerts, log: log}
}

func (w *AlertWriter) Publish(ctx context.Context, alerts []*domain.Alert) {
	if len(alerts) == 0 {
		return
	}
	if err := w.alerts.InsertMany(ctx, alerts); err != nil {
		for _, a := range alerts {
			metrics.AlertsDroppedTotal.WithLabelValues(string(a.Type), "write_failed").Inc()
		}
		w.log.Warn().Err(err).Int("count", len(alerts)).Str("type", string(alerts[0].Type)).Msg("alert write failed")
		return
	}
	for _, a := range alerts {
		metrics.AlertsDeliveredTotal.WithLabelValues(string(a.Type)).Inc()
	}
}
