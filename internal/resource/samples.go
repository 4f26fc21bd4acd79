package resource

import (
	"time"

	"github.com/gravitrone/resale-admin/cli/internal/listview"
	"github.com/gravitrone/resale-admin/cli/internal/placeholder"
	"github.com/gravitrone/resale-admin/cli/internal/stats"
)

const sampleNote = "Sample data: the backend does not serve this list yet."

// Leads lists prospective sellers from the fixed sample set.
func Leads(delay time.Duration) Definition[placeholder.Lead] {
	src := placeholder.Source[placeholder.Lead]{Items: placeholder.Leads(), Delay: delay}
	estimate := func(l placeholder.Lead) float64 { return l.EstimatedValue }
	return Definition[placeholder.Lead]{
		Key:   "leads",
		Title: "Leads",
		Noun:  "leads",
		List: listview.Config[placeholder.Lead]{
			Fields: map[string]listview.Accessor[placeholder.Lead]{
				"name":   func(l placeholder.Lead) string { return l.Name },
				"phone":  func(l placeholder.Lead) string { return l.Phone },
				"email":  func(l placeholder.Lead) string { return l.Email },
				"device": func(l placeholder.Lead) string { return l.Device },
				"source": func(l placeholder.Lead) string { return l.Source },
				"status": func(l placeholder.Lead) string { return l.Status },
			},
			Searchable: []string{"name", "phone", "email", "device"},
			Filters:    []string{"status", "source"},
			Choices:    map[string][]string{"status": placeholder.LeadStatuses},
		},
		Source: src.List,
		Columns: []Column{
			{Header: "ID", Width: 8},
			{Header: "Name", Width: 16},
			{Header: "Phone", Width: 16},
			{Header: "Device", Width: 16},
			{Header: "Source", Width: 10},
			{Header: "Status", Width: 10},
			{Header: "Estimate", Width: 10, Right: true},
		},
		Row: func(l placeholder.Lead) []string {
			return []string{l.ID, listview.Text(l.Name), listview.Text(l.Phone), listview.Text(l.Device), listview.Text(l.Source), listview.Text(l.Status), Money(l.EstimatedValue)}
		},
		ID:    func(l placeholder.Lead) string { return l.ID },
		Label: func(l placeholder.Lead) string { return listview.Or(l.Name, l.ID) },
		Detail: func(l placeholder.Lead) []Field {
			return []Field{
				{"Lead", l.ID},
				{"Name", listview.Text(l.Name)},
				{"Phone", listview.Text(l.Phone)},
				{"Email", listview.Text(l.Email)},
				{"Device", listview.Text(l.Device)},
				{"Source", listview.Text(l.Source)},
				{"Status", listview.Text(l.Status)},
				{"Estimate", Money(l.EstimatedValue)},
				{"Created", listview.Text(l.CreatedAt.Format("2006-01-02"))},
			}
		},
		Summary: func(records []placeholder.Lead, _ stats.Summary) []Field {
			converted := stats.CountWhere(records, func(l placeholder.Lead) bool { return l.Status == "converted" })
			return []Field{
				{"Leads", itoa(len(records))},
				{"New", itoa(stats.CountWhere(records, func(l placeholder.Lead) bool { return l.Status == "new" }))},
				{"Conversion", Percent(stats.Ratio(converted, len(records)))},
				{"Avg estimate", Money(stats.Average(records, estimate))},
			}
		},
		Note: sampleNote,
	}
}

// Pricing lists the sample buy price grid.
func Pricing(delay time.Duration) Definition[placeholder.PriceEntry] {
	src := placeholder.Source[placeholder.PriceEntry]{Items: placeholder.Prices(), Delay: delay}
	price := func(p placeholder.PriceEntry) float64 { return p.Price }
	return Definition[placeholder.PriceEntry]{
		Key:   "pricing",
		Title: "Pricing",
		Noun:  "price entries",
		List: listview.Config[placeholder.PriceEntry]{
			Fields: map[string]listview.Accessor[placeholder.PriceEntry]{
				"product":   func(p placeholder.PriceEntry) string { return p.Product },
				"variant":   func(p placeholder.PriceEntry) string { return p.Variant },
				"condition": func(p placeholder.PriceEntry) string { return p.Condition },
				"status":    func(p placeholder.PriceEntry) string { return p.Status },
			},
			Searchable: []string{"product", "variant"},
			Filters:    []string{"condition", "status"},
			Choices: map[string][]string{
				"condition": placeholder.PriceConditions,
				"status":    statusChoices,
			},
		},
		Source: src.List,
		Columns: []Column{
			{Header: "Product", Width: 20},
			{Header: "Variant", Width: 12},
			{Header: "Condition", Width: 10},
			{Header: "Price", Width: 10, Right: true},
			{Header: "Status", Width: 8},
		},
		Row: func(p placeholder.PriceEntry) []string {
			return []string{listview.Text(p.Product), listview.Text(p.Variant), listview.Text(p.Condition), Money(p.Price), listview.Text(p.Status)}
		},
		ID:    func(p placeholder.PriceEntry) string { return p.ID },
		Label: func(p placeholder.PriceEntry) string { return p.Product + " " + p.Variant + " (" + p.Condition + ")" },
		Detail: func(p placeholder.PriceEntry) []Field {
			return []Field{
				{"Product", listview.Text(p.Product)},
				{"Variant", listview.Text(p.Variant)},
				{"Condition", listview.Text(p.Condition)},
				{"Price", Money(p.Price)},
				{"Status", listview.Text(p.Status)},
			}
		},
		Summary: func(records []placeholder.PriceEntry, _ stats.Summary) []Field {
			return []Field{
				{"Entries", itoa(len(records))},
				{"Avg price", Money(stats.Average(records, price))},
			}
		},
		Note: sampleNote,
	}
}
