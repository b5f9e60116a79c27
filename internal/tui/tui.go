// Package tui renders the records dashboard of the CLI client: tables of
// the sensor and advice records kept in the contract's key/value store and
// a live feed of contract events.
package tui

import (
	"context"

	"github.com/MKhiriev/go-farm-twin/internal/logger"
	"github.com/MKhiriev/go-farm-twin/internal/service"
	"github.com/MKhiriev/go-farm-twin/models"
	tea "github.com/charmbracelet/bubbletea"
)

// TUI runs the dashboard program.
type TUI struct {
	services *service.ClientServices
	logger   *logger.Logger
}

func New(services *service.ClientServices, log *logger.Logger) *TUI {
	return &TUI{services: services, logger: log}
}

// Dashboard blocks until the user quits. The event watch job runs for as
// long as the dashboard is open.
func (t *TUI) Dashboard(ctx context.Context) error {
	program := tea.NewProgram(newDashboardModel(ctx, t.services.RecordsService), tea.WithAltScreen(), tea.WithContext(ctx))

	t.services.WatchJob.Start(ctx, 0, 0, func(events []models.Event) {
		program.Send(eventsMsg{events: events})
	})
	defer t.services.WatchJob.Stop()

	if _, err := program.Run(); err != nil {
		t.logger.Err(err).Msg("dashboard stopped with error")
		return err
	}

	return nil
}
