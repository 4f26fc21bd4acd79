package resource

import (
	"context"
	"fmt"

	"github.com/gravitrone/resale-admin/cli/internal/api"
	"github.com/gravitrone/resale-admin/cli/internal/listview"
	"github.com/gravitrone/resale-admin/cli/internal/stats"
)

var statusChoices = []string{"active", "inactive"}

func deleter(client *api.Client, collection string) func(context.Context, string) error {
	return func(ctx context.Context, id string) error {
		return client.Delete(ctx, collection, id)
	}
}

func activeCount[T any](records []T, status func(T) string) string {
	return itoa(stats.CountWhere(records, func(r T) bool { return status(r) == "active" }))
}

// SuperCategories lists the top-level catalog groups.
func SuperCategories(client *api.Client) Definition[api.SuperCategory] {
	status := func(s api.SuperCategory) string { return s.Status }
	return Definition[api.SuperCategory]{
		Key:   "super-categories",
		Title: "Super Categories",
		Noun:  "super categories",
		List: listview.Config[api.SuperCategory]{
			Fields: map[string]listview.Accessor[api.SuperCategory]{
				"name":   func(s api.SuperCategory) string { return s.Name },
				"status": status,
			},
			Searchable: []string{"name"},
			Filters:    []string{"status"},
			Remote:     []string{"status"},
			Choices:    map[string][]string{"status": statusChoices},
		},
		Source: FromAPI(client.ListSuperCategories),
		Columns: []Column{
			{Header: "Name", Width: 32},
			{Header: "Status", Width: 10},
			{Header: "Created", Width: 12},
		},
		Row: func(s api.SuperCategory) []string {
			return []string{listview.Text(s.Name), listview.Text(s.Status), Date(s.CreatedAt)}
		},
		ID:    func(s api.SuperCategory) string { return s.ID },
		Label: func(s api.SuperCategory) string { return listview.Or(s.Name, s.ID) },
		Detail: func(s api.SuperCategory) []Field {
			return []Field{
				{"Name", listview.Text(s.Name)},
				{"Status", listview.Text(s.Status)},
				{"Image", listview.Text(s.Image)},
				{"Created", Date(s.CreatedAt)},
			}
		},
		Summary: func(records []api.SuperCategory, server stats.Summary) []Field {
			return []Field{
				{"Super categories", Count(server.Resolve("total", func() float64 { return float64(len(records)) }))},
				{"Active", activeCount(records, status)},
			}
		},
		Add:    creator(client.CreateSuperCategory),
		Edit:   updater(client.UpdateSuperCategory),
		Remove: deleter(client, api.PathSuperCategories),
	}
}

// Categories lists brand-level catalog groups.
func Categories(client *api.Client) Definition[api.Category] {
	status := func(c api.Category) string { return c.Status }
	return Definition[api.Category]{
		Key:   "categories",
		Title: "Categories",
		Noun:  "categories",
		List: listview.Config[api.Category]{
			Fields: map[string]listview.Accessor[api.Category]{
				"name":          func(c api.Category) string { return c.Name },
				"superCategory": func(c api.Category) string { return refName(c.SuperCategory) },
				"status":        status,
			},
			Searchable: []string{"name", "superCategory"},
			Filters:    []string{"superCategory", "status"},
			Remote:     []string{"status"},
			Choices:    map[string][]string{"status": statusChoices},
		},
		Source: FromAPI(client.ListCategories),
		Columns: []Column{
			{Header: "Name", Width: 24},
			{Header: "Super Category", Width: 20},
			{Header: "Status", Width: 10},
			{Header: "Created", Width: 12},
		},
		Row: func(c api.Category) []string {
			return []string{
				listview.Text(c.Name),
				listview.Text(refName(c.SuperCategory)),
				listview.Text(c.Status),
				Date(c.CreatedAt),
			}
		},
		ID:    func(c api.Category) string { return c.ID },
		Label: func(c api.Category) string { return listview.Or(c.Name, c.ID) },
		Detail: func(c api.Category) []Field {
			return []Field{
				{"Name", listview.Text(c.Name)},
				{"Super category", listview.Text(refName(c.SuperCategory))},
				{"Status", listview.Text(c.Status)},
				{"Image", listview.Text(c.Image)},
				{"Created", Date(c.CreatedAt)},
			}
		},
		Summary: func(records []api.Category, server stats.Summary) []Field {
			return []Field{
				{"Categories", Count(server.Resolve("total", func() float64 { return float64(len(records)) }))},
				{"Active", activeCount(records, status)},
			}
		},
		Add:    creator(client.CreateCategory),
		Edit:   updater(client.UpdateCategory),
		Remove: deleter(client, api.PathCategories),
	}
}

// SeriesList lists product lines.
func SeriesList(client *api.Client) Definition[api.Series] {
	return Definition[api.Series]{
		Key:   "series",
		Title: "Series",
		Noun:  "series",
		List: listview.Config[api.Series]{
			Fields: map[string]listview.Accessor[api.Series]{
				"name":     func(s api.Series) string { return s.Name },
				"category": func(s api.Series) string { return refName(s.Category) },
				"status":   func(s api.Series) string { return s.Status },
			},
			Searchable: []string{"name", "category"},
			Filters:    []string{"category", "status"},
			Remote:     []string{"status"},
			Choices:    map[string][]string{"status": statusChoices},
		},
		Source: FromAPI(client.ListSeries),
		Columns: []Column{
			{Header: "Name", Width: 24},
			{Header: "Category", Width: 20},
			{Header: "Status", Width: 10},
			{Header: "Created", Width: 12},
		},
		Row: func(s api.Series) []string {
			return []string{listview.Text(s.Name), listview.Text(refName(s.Category)), listview.Text(s.Status), Date(s.CreatedAt)}
		},
		ID:    func(s api.Series) string { return s.ID },
		Label: func(s api.Series) string { return listview.Or(s.Name, s.ID) },
		Detail: func(s api.Series) []Field {
			return []Field{
				{"Name", listview.Text(s.Name)},
				{"Category", listview.Text(refName(s.Category))},
				{"Status", listview.Text(s.Status)},
				{"Created", Date(s.CreatedAt)},
			}
		},
		Add:    creator(client.CreateSeries),
		Edit:   updater(client.UpdateSeries),
		Remove: deleter(client, api.PathSeries),
	}
}

// Products lists resellable device models.
func Products(client *api.Client) Definition[api.Product] {
	return Definition[api.Product]{
		Key:   "products",
		Title: "Products",
		Noun:  "products",
		List: listview.Config[api.Product]{
			Fields: map[string]listview.Accessor[api.Product]{
				"name":     func(p api.Product) string { return p.Name },
				"brand":    func(p api.Product) string { return p.Brand },
				"category": func(p api.Product) string { return refName(p.Category) },
				"series":   func(p api.Product) string { return refName(p.Series) },
				"status":   func(p api.Product) string { return p.Status },
			},
			Searchable: []string{"name", "brand", "category", "series"},
			Filters:    []string{"category", "brand", "status"},
			Remote:     []string{"status"},
			Choices:    map[string][]string{"status": statusChoices},
		},
		Source: FromAPI(client.ListProducts),
		Columns: []Column{
			{Header: "Name", Width: 24},
			{Header: "Brand", Width: 12},
			{Header: "Category", Width: 14},
			{Header: "Series", Width: 14},
			{Header: "Base price", Width: 11, Right: true},
			{Header: "Variants", Width: 8, Right: true},
			{Header: "Status", Width: 8},
		},
		Row: func(p api.Product) []string {
			return []string{
				listview.Text(p.Name),
				listview.Text(p.Brand),
				listview.Text(refName(p.Category)),
				listview.Text(refName(p.Series)),
				Money(p.BasePrice.Float()),
				itoa(len(p.Variants)),
				listview.Text(p.Status),
			}
		},
		ID:    func(p api.Product) string { return p.ID },
		Label: func(p api.Product) string { return listview.Or(p.Name, p.ID) },
		Detail: func(p api.Product) []Field {
			fields := []Field{
				{"Name", listview.Text(p.Name)},
				{"Brand", listview.Text(p.Brand)},
				{"Category", listview.Text(refName(p.Category))},
				{"Series", listview.Text(refName(p.Series))},
				{"Base price", Money(p.BasePrice.Float())},
				{"Status", listview.Text(p.Status)},
			}
			if len(p.Variants) == 0 {
				fields = append(fields, Field{"Variants", listview.Placeholder})
			}
			for i, v := range p.Variants {
				fields = append(fields, Field{fmt.Sprintf("Variant %d", i+1), listview.Text(v.Name) + "  " + Money(v.Price.Float())})
			}
			return append(fields, Field{"Created", Date(p.CreatedAt)})
		},
		Summary: ProductSummary,
		Add:     creator(client.CreateProduct),
		Edit:    updater(client.UpdateProduct),
		Remove:  deleter(client, api.PathProducts),
	}
}

// ProductSummary rolls up the catalog, preferring the backend total.
func ProductSummary(products []api.Product, server stats.Summary) []Field {
	return []Field{
		{"Products", Count(server.Resolve("total", func() float64 { return float64(len(products)) }))},
		{"Active", activeCount(products, func(p api.Product) string { return p.Status })},
		{"Avg base price", Money(stats.Average(products, func(p api.Product) float64 { return p.BasePrice.Float() }))},
	}
}

// Defects lists the condition checks that deduct from quotes.
func Defects(client *api.Client) Definition[api.Defect] {
	deduction := func(d api.Defect) float64 { return d.DeductionPercent.Float() }
	return Definition[api.Defect]{
		Key:   "defects",
		Title: "Defects",
		Noun:  "defects",
		List: listview.Config[api.Defect]{
			Fields: map[string]listview.Accessor[api.Defect]{
				"name":     func(d api.Defect) string { return d.Name },
				"section":  func(d api.Defect) string { return d.Section },
				"category": func(d api.Defect) string { return refName(d.Category) },
				"status":   func(d api.Defect) string { return d.Status },
			},
			Searchable: []string{"name", "section", "category"},
			Filters:    []string{"section", "category", "status"},
			Remote:     []string{"status"},
			Choices:    map[string][]string{"status": statusChoices},
		},
		Source: FromAPI(client.ListDefects),
		Columns: []Column{
			{Header: "Name", Width: 28},
			{Header: "Section", Width: 16},
			{Header: "Category", Width: 14},
			{Header: "Deduction", Width: 10, Right: true},
			{Header: "Status", Width: 8},
		},
		Row: func(d api.Defect) []string {
			return []string{
				listview.Text(d.Name),
				listview.Text(d.Section),
				listview.Text(refName(d.Category)),
				Percent(d.DeductionPercent.Float()),
				listview.Text(d.Status),
			}
		},
		ID:    func(d api.Defect) string { return d.ID },
		Label: func(d api.Defect) string { return listview.Or(d.Name, d.ID) },
		Detail: func(d api.Defect) []Field {
			return []Field{
				{"Name", listview.Text(d.Name)},
				{"Section", listview.Text(d.Section)},
				{"Category", listview.Text(refName(d.Category))},
				{"Deduction", Percent(d.DeductionPercent.Float())},
				{"Status", listview.Text(d.Status)},
			}
		},
		Summary: func(records []api.Defect, server stats.Summary) []Field {
			return []Field{
				{"Defects", Count(server.Resolve("total", func() float64 { return float64(len(records)) }))},
				{"Avg deduction", Percent(stats.Average(records, deduction))},
			}
		},
		Add:    creator(client.CreateDefect),
		Edit:   updater(client.UpdateDefect),
		Remove: deleter(client, api.PathDefects),
	}
}
