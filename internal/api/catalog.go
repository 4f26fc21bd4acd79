package api

import "context"

// Collection paths.
const (
	PathSuperCategories = "/super-categories"
	PathCategories      = "/categories"
	PathSeries          = "/series"
	PathProducts        = "/products"
	PathDefects         = "/defects"
)

// --- Super Categories ---

func (c *Client) ListSuperCategories(ctx context.Context, params QueryParams) (ListResult[SuperCategory], error) {
	return listResource[SuperCategory](ctx, c, PathSuperCategories, params)
}

func (c *Client) CreateSuperCategory(ctx context.Context, input SuperCategoryInput) (*SuperCategory, error) {
	return createResource[SuperCategory](ctx, c, PathSuperCategories, input)
}

func (c *Client) UpdateSuperCategory(ctx context.Context, id string, input SuperCategoryInput) (*SuperCategory, error) {
	return updateResource[SuperCategory](ctx, c, PathSuperCategories, id, input)
}

// --- Categories ---

func (c *Client) ListCategories(ctx context.Context, params QueryParams) (ListResult[Category], error) {
	return listResource[Category](ctx, c, PathCategories, params)
}

func (c *Client) GetCategory(ctx context.Context, id string) (*Category, error) {
	return getResource[Category](ctx, c, PathCategories, id)
}

func (c *Client) CreateCategory(ctx context.Context, input CategoryInput) (*Category, error) {
	return createResource[Category](ctx, c, PathCategories, input)
}

func (c *Client) UpdateCategory(ctx context.Context, id string, input CategoryInput) (*Category, error) {
	return updateResource[Category](ctx, c, PathCategories, id, input)
}

// --- Series ---

func (c *Client) ListSeries(ctx context.Context, params QueryParams) (ListResult[Series], error) {
	return listResource[Series](ctx, c, PathSeries, params)
}

func (c *Client) CreateSeries(ctx context.Context, input SeriesInput) (*Series, error) {
	return createResource[Series](ctx, c, PathSeries, input)
}

func (c *Client) UpdateSeries(ctx context.Context, id string, input SeriesInput) (*Series, error) {
	return updateResource[Series](ctx, c, PathSeries, id, input)
}

// --- Products ---

func (c *Client) ListProducts(ctx context.Context, params QueryParams) (ListResult[Product], error) {
	return listResource[Product](ctx, c, PathProducts, params)
}

func (c *Client) GetProduct(ctx context.Context, id string) (*Product, error) {
	return getResource[Product](ctx, c, PathProducts, id)
}

func (c *Client) CreateProduct(ctx context.Context, input ProductInput) (*Product, error) {
	return createResource[Product](ctx, c, PathProducts, input)
}

func (c *Client) UpdateProduct(ctx context.Context, id string, input ProductInput) (*Product, error) {
	return updateResource[Product](ctx, c, PathProducts, id, input)
}

// --- Defects ---

func (c *Client) ListDefects(ctx context.Context, params QueryParams) (ListResult[Defect], error) {
	return listResource[Defect](ctx, c, PathDefects, params)
}

func (c *Client) CreateDefect(ctx context.Context, input DefectInput) (*Defect, error) {
	return createResource[Defect](ctx, c, PathDefects, input)
}

func (c *Client) UpdateDefect(ctx context.Context, id string, input DefectInput) (*Defect, error) {
	return updateResource[Defect](ctx, c, PathDefects, id, input)
}
