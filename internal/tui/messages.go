package tui

import (
	"github.com/MKhiriev/go-farm-twin/models"
)

type recordsLoadedMsg struct {
	sensors []models.SensorRecord
	advice  []models.AdviceRecord
}

type eventsMsg struct {
	events []models.Event
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
