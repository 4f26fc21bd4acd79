package resource

import (
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gravitrone/resale-admin/cli/internal/api"
	"github.com/gravitrone/resale-admin/cli/internal/listview"
)

var printer = message.NewPrinter(language.English)

// Money renders a whole-rupee amount with digit grouping.
func Money(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	return "₹" + printer.Sprintf("%.0f", v)
}

// Percent renders v as a percentage with one decimal.
func Percent(v float64) string {
	return listview.Number(v, 1) + "%"
}

// Count renders an integer counter.
func Count(v float64) string {
	return printer.Sprintf("%.0f", finite(v))
}

// Date renders the calendar date, or N/A for missing timestamps.
func Date(t api.Time) string {
	return listview.Text(t.Format("2006-01-02"))
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func yesNo(b bool) string {
	if b {
		return "active"
	}
	return "inactive"
}

func itoa(n int) string {
	return strconv.Itoa(n)
}

// --- nil-safe reference fields ---

func refName(r *api.Ref) string {
	if r == nil {
		return ""
	}
	return r.Name
}

func refBrand(r *api.Ref) string {
	if r == nil {
		return ""
	}
	return r.Brand
}

func refEmail(r *api.Ref) string {
	if r == nil {
		return ""
	}
	return r.Email
}

func refPhone(r *api.Ref) string {
	if r == nil {
		return ""
	}
	return r.Phone
}
