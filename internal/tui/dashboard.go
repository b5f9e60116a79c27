package tui

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-farm-twin/internal/service"
	"github.com/MKhiriev/go-farm-twin/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	feedSize     = 5
	tableHeight  = 10
	statusTTL    = 2 * time.Second
	sensorsTab   = 0
	adviceTab    = 1
	tabsCount    = 2
	noteColWidth = 24
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

type dashboardModel struct {
	ctx     context.Context
	records service.ClientRecordsService

	sensors []models.SensorRecord
	advice  []models.AdviceRecord

	sensorTable table.Model
	adviceTable table.Model
	tab         int

	loading bool
	spinner spinner.Model
	feed    []models.Event
	status  string
	errMsg  string
}

func newDashboardModel(ctx context.Context, records service.ClientRecordsService) dashboardModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	sensorTable := table.New(
		table.WithColumns([]table.Column{
			{Title: "ID", Width: 10},
			{Title: "Time", Width: 16},
			{Title: "Location", Width: 12},
			{Title: "Temp", Width: 6},
			{Title: "Hum", Width: 6},
			{Title: "CO2", Width: 7},
			{Title: "Light", Width: 7},
			{Title: "Soil", Width: 6},
		}),
		table.WithFocused(true),
		table.WithHeight(tableHeight),
	)

	adviceTable := table.New(
		table.WithColumns([]table.Column{
			{Title: "ID", Width: 10},
			{Title: "Time", Width: 16},
			{Title: "Twin", Width: 6},
			{Title: "Watering", Width: 16},
			{Title: "Nutrients", Width: 16},
			{Title: "Light", Width: 16},
			{Title: "Note", Width: noteColWidth},
		}),
		table.WithHeight(tableHeight),
	)

	return dashboardModel{
		ctx:         ctx,
		records:     records,
		sensorTable: sensorTable,
		adviceTable: adviceTable,
		loading:     true,
		spinner:     s,
	}
}

func (m dashboardModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdLoad())
}

func (m dashboardModel) cmdLoad() tea.Cmd {
	return func() tea.Msg {
		return recordsLoadedMsg{
			sensors: m.records.SensorRecords(m.ctx),
			advice:  m.records.AdviceRecords(m.ctx),
		}
	}
}

func (m dashboardModel) cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		if err := writeClipboard(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case recordsLoadedMsg:
		m.loading = false
		m.sensors = msg.sensors
		m.advice = msg.advice
		m.sensorTable.SetRows(sensorRows(msg.sensors))
		m.adviceTable.SetRows(adviceRows(msg.advice))
		return m, nil

	case eventsMsg:
		m.feed = append(m.feed, msg.events...)
		if len(m.feed) > feedSize {
			m.feed = m.feed[len(m.feed)-feedSize:]
		}
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.status = "Copied to clipboard"
		return m, clearStatusAfter(statusTTL)

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m dashboardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit

	case key.Matches(msg, keys.tab):
		m.tab = (m.tab + 1) % tabsCount
		if m.tab == sensorsTab {
			m.sensorTable.Focus()
			m.adviceTable.Blur()
		} else {
			m.adviceTable.Focus()
			m.sensorTable.Blur()
		}
		return m, nil

	case key.Matches(msg, keys.refresh):
		m.loading = true
		m.errMsg = ""
		return m, tea.Batch(m.spinner.Tick, m.cmdLoad())

	case key.Matches(msg, keys.copy):
		text, ok := m.selectedJSON()
		if !ok {
			return m, nil
		}
		return m, m.cmdCopy(text)
	}

	var cmd tea.Cmd
	if m.tab == sensorsTab {
		m.sensorTable, cmd = m.sensorTable.Update(msg)
	} else {
		m.adviceTable, cmd = m.adviceTable.Update(msg)
	}
	return m, cmd
}

// selectedJSON returns the selected record of the active tab as JSON.
func (m dashboardModel) selectedJSON() (string, bool) {
	var v any
	if m.tab == sensorsTab {
		i := m.sensorTable.Cursor()
		if i < 0 || i >= len(m.sensors) {
			return "", false
		}
		v = m.sensors[i]
	} else {
		i := m.adviceTable.Cursor()
		if i < 0 || i >= len(m.advice) {
			return "", false
		}
		v = m.advice[i]
	}

	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", false
	}
	return string(raw), true
}

func (m dashboardModel) View() string {
	var b strings.Builder

	header := titleStyle.Render("Farm records")
	if m.loading {
		header += "  " + m.spinner.View()
	}
	b.WriteString(header + "\n\n")

	sensorsTitle := fmt.Sprintf("Sensors (%d)", len(m.sensors))
	adviceTitle := fmt.Sprintf("Advice (%d)", len(m.advice))
	if m.tab == sensorsTab {
		sensorsTitle = activeStyle.Render(sensorsTitle)
	} else {
		adviceTitle = activeStyle.Render(adviceTitle)
	}
	b.WriteString(sensorsTitle + "   " + adviceTitle + "\n" + uiDivider + "\n")

	if m.tab == sensorsTab {
		b.WriteString(m.sensorTable.View())
	} else {
		b.WriteString(m.adviceTable.View())
	}
	b.WriteString("\n\n")

	feed := make([]string, 0, len(m.feed))
	for _, e := range m.feed {
		feed = append(feed, describeEvent(e))
	}
	if len(feed) == 0 {
		feed = append(feed, "no events yet")
	}
	b.WriteString(feedStyle.Render("Events\n"+strings.Join(feed, "\n")) + "\n")

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.errMsg) + "\n")
	}

	b.WriteString("\n" + helpStyle.Render("tab switch  r refresh  c copy JSON  q quit"))
	return appStyle.Render(b.String())
}

func sensorRows(records []models.SensorRecord) []table.Row {
	rows := make([]table.Row, 0, len(records))
	for _, r := range records {
		rows = append(rows, table.Row{
			fitText(r.ID, 10),
			formatTimestamp(r.Timestamp),
			fitText(valueOrDash(r.Location), 12),
			formatFloat(r.Temperature),
			formatFloat(r.Humidity),
			formatFloat(r.CO2),
			formatFloat(r.Light),
			formatFloat(r.SoilMoisture),
		})
	}
	return rows
}

func adviceRows(records []models.AdviceRecord) []table.Row {
	rows := make([]table.Row, 0, len(records))
	for _, r := range records {
		twin := "-"
		if r.TwinID != 0 {
			twin = fmt.Sprint(r.TwinID)
		}
		rows = append(rows, table.Row{
			fitText(r.ID, 10),
			formatTimestamp(r.Timestamp),
			twin,
			fitText(valueOrDash(r.Watering), 16),
			fitText(valueOrDash(r.Nutrients), 16),
			fitText(valueOrDash(r.LightAdjust), 16),
			fitText(valueOrDash(r.Note), noteColWidth),
		})
	}
	return rows
}
