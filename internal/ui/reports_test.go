package ui

import (
	"net/http"
	"sync/atomic"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reportHandler(t *testing.T, failOrders *atomic.Bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/orders":
			if failOrders != nil && failOrders.Load() {
				w.WriteHeader(http.StatusBadGateway)
				_, _ = w.Write([]byte(`{"success":false,"message":"orders service down"}`))
				return
			}
			writeData(w, []map[string]any{
				{"id": "o1", "status": "completed", "pricing": map[string]any{"finalPrice": 40000}},
				{"id": "o2", "status": "pending"},
			})
		case "/users":
			writeData(w, []map[string]any{{"id": "u1", "isActive": true}, {"id": "u2"}})
		case "/products":
			writeData(w, []map[string]any{{"id": "p1", "name": "iPhone 13", "basePrice": 30000, "status": "active"}})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}
}

func stepReports(t *testing.T, m ReportsModel, msg tea.Msg) (ReportsModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	rm, ok := next.(ReportsModel)
	require.True(t, ok)
	return rm, cmd
}

func TestReportsModelRendersSections(t *testing.T) {
	client := testClient(t, reportHandler(t, nil))
	m := NewReportsModel(client, nil)

	m, _ = stepReports(t, m, m.Init()())

	require.Len(t, m.ctrl.Records(), 4)
	view := m.View()
	for _, want := range []string{"Orders", "Order pipeline", "Users", "Catalog", "Total payout", "₹40,000", "Updated"} {
		assert.Contains(t, view, want)
	}
}

func TestReportsModelShowsLoading(t *testing.T) {
	client := testClient(t, reportHandler(t, nil))
	m := NewReportsModel(client, nil)
	_ = m.Init()
	assert.Contains(t, m.View(), "Loading reports...")
}

func TestReportsModelWideLayout(t *testing.T) {
	client := testClient(t, reportHandler(t, nil))
	m := NewReportsModel(client, nil)
	m, _ = stepReports(t, m, tea.WindowSizeMsg{Width: 160, Height: 50})
	m, _ = stepReports(t, m, m.Init()())

	view := m.View()
	assert.Contains(t, view, "Order pipeline")
	assert.Contains(t, view, "Catalog")
}

func TestReportsModelFailedRefreshKeepsLastReport(t *testing.T) {
	var fail atomic.Bool
	client := testClient(t, reportHandler(t, &fail))
	m := NewReportsModel(client, nil)
	m, _ = stepReports(t, m, m.Init()())

	fail.Store(true)
	m, cmd := stepReports(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})
	require.NotNil(t, cmd)
	m, _ = stepReports(t, m, cmd())

	view := m.View()
	assert.Contains(t, view, "Could not load reports")
	assert.Contains(t, view, "orders service down")
	assert.Len(t, m.ctrl.Records(), 4)
}

func TestReportsModelDiscardsStaleLoad(t *testing.T) {
	client := testClient(t, reportHandler(t, nil))
	m := NewReportsModel(client, nil)

	first := m.Init()
	m, second := stepReports(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})

	m, _ = stepReports(t, m, second())
	m, _ = stepReports(t, m, first())

	assert.NoError(t, m.ctrl.Err())
	assert.Len(t, m.ctrl.Records(), 4)
	assert.False(t, m.ctrl.Loading())
}
