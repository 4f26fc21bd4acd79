package resource

import (
	"context"
	"strings"

	"github.com/gravitrone/resale-admin/cli/internal/api"
	"github.com/gravitrone/resale-admin/cli/internal/listview"
	"github.com/gravitrone/resale-admin/cli/internal/stats"
)

// Orders lists buy orders. The status filter is applied by the backend.
func Orders(client *api.Client) Definition[api.BuyOrder] {
	return Definition[api.BuyOrder]{
		Key:   "orders",
		Title: "Buy Orders",
		Noun:  "orders",
		List: listview.Config[api.BuyOrder]{
			Fields: map[string]listview.Accessor[api.BuyOrder]{
				"order":    func(o api.BuyOrder) string { return o.OrderNumber },
				"status":   func(o api.BuyOrder) string { return o.Status },
				"device":   func(o api.BuyOrder) string { return refName(o.Product) },
				"brand":    func(o api.BuyOrder) string { return refBrand(o.Product) },
				"customer": func(o api.BuyOrder) string { return refName(o.User) },
				"email":    func(o api.BuyOrder) string { return refEmail(o.User) },
				"phone":    func(o api.BuyOrder) string { return refPhone(o.User) },
				"city":     pickupCity,
			},
			Searchable: []string{"order", "device", "brand", "customer", "email", "phone"},
			Filters:    []string{"status", "city"},
			Remote:     []string{"status"},
			Choices:    map[string][]string{"status": api.OrderStatuses},
		},
		Source: FromAPI(client.ListOrders),
		Columns: []Column{
			{Header: "Order", Width: 12},
			{Header: "Device", Width: 22},
			{Header: "Customer", Width: 18},
			{Header: "Status", Width: 16},
			{Header: "Quote", Width: 10, Right: true},
			{Header: "Created", Width: 10},
		},
		Row: func(o api.BuyOrder) []string {
			return []string{
				listview.Text(o.OrderNumber),
				listview.Text(refName(o.Product)),
				listview.Text(refName(o.User)),
				listview.Text(o.Status),
				Money(quote(o)),
				Date(o.CreatedAt),
			}
		},
		ID:    func(o api.BuyOrder) string { return o.ID },
		Label: func(o api.BuyOrder) string { return "order " + listview.Or(o.OrderNumber, o.ID) },
		Detail: func(o api.BuyOrder) []Field {
			var pricing api.OrderPricing
			if o.Pricing != nil {
				pricing = *o.Pricing
			}
			fields := []Field{
				{"Order", listview.Text(o.OrderNumber)},
				{"Status", listview.Text(o.Status)},
				{"Device", listview.Text(strings.TrimSpace(refBrand(o.Product) + " " + refName(o.Product)))},
				{"Customer", listview.Text(refName(o.User))},
				{"Email", listview.Text(refEmail(o.User))},
				{"Phone", listview.Text(refPhone(o.User))},
				{"Base price", Money(pricing.BasePrice.Float())},
				{"Deductions", Money(pricing.Deductions.Float())},
				{"Final quote", Money(pricing.FinalPrice.Float())},
			}
			if o.Pickup != nil {
				address := strings.Join(nonEmpty(o.Pickup.Address, o.Pickup.City, o.Pickup.Pincode), ", ")
				fields = append(fields,
					Field{"Pickup address", listview.Text(address)},
					Field{"Pickup slot", listview.Text(o.Pickup.ScheduledAt.Format("2006-01-02 15:04"))},
				)
			} else {
				fields = append(fields, Field{"Pickup", listview.Placeholder})
			}
			return append(fields, Field{"Created", Date(o.CreatedAt)})
		},
		Summary:  OrderSummary,
		Statuses: api.OrderStatuses,
		SetStatus: func(ctx context.Context, id, status string) error {
			_, err := client.UpdateOrderStatus(ctx, id, api.OrderStatusInput{Status: status})
			return err
		},
	}
}

// OrderSummary rolls up orders, preferring the backend counters.
func OrderSummary(orders []api.BuyOrder, server stats.Summary) []Field {
	byStatus := func(status string) func() float64 {
		return func() float64 {
			return float64(stats.CountWhere(orders, func(o api.BuyOrder) bool { return o.Status == status }))
		}
	}
	return []Field{
		{"Orders", Count(server.Resolve("total", func() float64 { return float64(stats.Count(orders)) }))},
		{"Pending", Count(server.Resolve("pending", byStatus("pending")))},
		{"Completed", Count(server.Resolve("completed", byStatus("completed")))},
		{"Avg quote", Money(stats.Average(orders, quote))},
	}
}

func quote(o api.BuyOrder) float64 {
	if o.Pricing == nil {
		return 0
	}
	return o.Pricing.FinalPrice.Float()
}

func pickupCity(o api.BuyOrder) string {
	if o.Pickup == nil {
		return ""
	}
	return o.Pickup.City
}

func nonEmpty(values ...string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}
