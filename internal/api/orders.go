package api

import "context"

const PathOrders = "/orders"

// ListOrders returns buy orders. Supported filters: status, from, to.
func (c *Client) ListOrders(ctx context.Context, params QueryParams) (ListResult[BuyOrder], error) {
	return listResource[BuyOrder](ctx, c, PathOrders, params)
}

func (c *Client) GetOrder(ctx context.Context, id string) (*BuyOrder, error) {
	return getResource[BuyOrder](ctx, c, PathOrders, id)
}

// UpdateOrderStatus moves an order to input.Status.
func (c *Client) UpdateOrderStatus(ctx context.Context, id string, input OrderStatusInput) (*BuyOrder, error) {
	if err := Validate(input); err != nil {
		return nil, err
	}
	data, err := c.put(ctx, resourcePath(PathOrders, id)+"/status", input)
	if err != nil {
		return nil, err
	}
	return decodeOne[BuyOrder](data)
}
