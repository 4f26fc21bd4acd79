// Package report builds the dashboard rollup shown by the Reports tab and
// printed by `resale report`.
package report

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/gravitrone/resale-admin/cli/internal/api"
	"github.com/gravitrone/resale-admin/cli/internal/resource"
	"github.com/gravitrone/resale-admin/cli/internal/stats"
)

// Section is one titled block of counters.
type Section struct {
	Title  string
	Fields []resource.Field
}

// Report is the rollup of orders, users, and the catalog.
type Report struct {
	GeneratedAt time.Time
	Sections    []Section
}

// Backend is the subset of the API client the report reads from.
type Backend interface {
	ListOrders(ctx context.Context, params api.QueryParams) (api.ListResult[api.BuyOrder], error)
	ListUsers(ctx context.Context, params api.QueryParams) (api.ListResult[api.User], error)
	ListProducts(ctx context.Context, params api.QueryParams) (api.ListResult[api.Product], error)
}

// Load fetches orders, users, and products concurrently and builds the
// report. The first failure cancels the other requests.
func Load(ctx context.Context, backend Backend, log *zap.Logger) (Report, error) {
	if log == nil {
		log = zap.NewNop()
	}
	start := time.Now()

	var (
		orders   api.ListResult[api.BuyOrder]
		users    api.ListResult[api.User]
		products api.ListResult[api.Product]
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		orders, err = backend.ListOrders(gctx, nil)
		if err != nil {
			return fmt.Errorf("load orders: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		users, err = backend.ListUsers(gctx, nil)
		if err != nil {
			return fmt.Errorf("load users: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		products, err = backend.ListProducts(gctx, nil)
		if err != nil {
			return fmt.Errorf("load products: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		log.Warn("report load failed", zap.Error(err))
		return Report{}, err
	}

	log.Debug("report loaded",
		zap.Int("orders", len(orders.Items)),
		zap.Int("users", len(users.Items)),
		zap.Int("products", len(products.Items)),
		zap.Duration("took", time.Since(start)),
	)
	return Build(orders, users, products, time.Now()), nil
}

// Build computes the report from loaded lists. Server stats win over local
// counts where the backend sent them.
func Build(orders api.ListResult[api.BuyOrder], users api.ListResult[api.User], products api.ListResult[api.Product], at time.Time) Report {
	completed := func(o api.BuyOrder) bool { return o.Status == "completed" }
	done := make([]api.BuyOrder, 0, len(orders.Items))
	for _, o := range orders.Items {
		if completed(o) {
			done = append(done, o)
		}
	}
	payout := stats.Sum(done, func(o api.BuyOrder) float64 {
		if o.Pricing == nil {
			return 0
		}
		return o.Pricing.FinalPrice.Float()
	})

	server := stats.Summary(orders.Stats)
	total := server.Resolve("total", func() float64 { return float64(len(orders.Items)) })
	completedN := server.Resolve("completed", func() float64 { return float64(len(done)) })

	orderFields := resource.OrderSummary(orders.Items, orders.Stats)
	orderFields = append(orderFields,
		resource.Field{Label: "Completion rate", Value: resource.Percent(stats.Ratio(int(completedN), int(total)))},
		resource.Field{Label: "Total payout", Value: resource.Money(payout)},
	)

	pipeline := make([]resource.Field, 0, len(api.OrderStatuses))
	for _, status := range api.OrderStatuses {
		n := stats.CountWhere(orders.Items, func(o api.BuyOrder) bool { return o.Status == status })
		pipeline = append(pipeline, resource.Field{Label: status, Value: resource.Count(float64(n))})
	}

	return Report{
		GeneratedAt: at,
		Sections: []Section{
			{Title: "Orders", Fields: orderFields},
			{Title: "Order pipeline", Fields: pipeline},
			{Title: "Users", Fields: resource.UserSummary(users.Items, users.Stats)},
			{Title: "Catalog", Fields: resource.ProductSummary(products.Items, products.Stats)},
		},
	}
}

// WriteText prints the report as aligned plain text.
func WriteText(w io.Writer, r Report) error {
	if _, err := fmt.Fprintf(w, "Resale admin report\nGenerated %s\n", r.GeneratedAt.UTC().Format("2006-01-02 15:04 UTC")); err != nil {
		return err
	}
	for _, s := range r.Sections {
		if _, err := fmt.Fprintf(w, "\n%s\n", s.Title); err != nil {
			return err
		}
		for _, f := range s.Fields {
			if _, err := fmt.Fprintf(w, "  %-18s %s\n", f.Label, f.Value); err != nil {
				return err
			}
		}
	}
	return nil
}
