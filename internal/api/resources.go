package api

import "context"

// --- Generic Resource Calls ---

func listResource[T any](ctx context.Context, c *Client, collection string, params QueryParams) (ListResult[T], error) {
	data, err := c.get(ctx, buildQuery(collection, params))
	if err != nil {
		return ListResult[T]{}, err
	}
	return decodeList[T](data)
}

func getResource[T any](ctx context.Context, c *Client, collection, id string) (*T, error) {
	data, err := c.get(ctx, resourcePath(collection, id))
	if err != nil {
		return nil, err
	}
	return decodeOne[T](data)
}

func createResource[T any](ctx context.Context, c *Client, collection string, input any) (*T, error) {
	if err := Validate(input); err != nil {
		return nil, err
	}
	data, err := c.post(ctx, collection, input)
	if err != nil {
		return nil, err
	}
	return decodeOne[T](data)
}

func updateResource[T any](ctx context.Context, c *Client, collection, id string, input any) (*T, error) {
	if err := Validate(input); err != nil {
		return nil, err
	}
	data, err := c.put(ctx, resourcePath(collection, id), input)
	if err != nil {
		return nil, err
	}
	return decodeOne[T](data)
}

func deleteResource(ctx context.Context, c *Client, collection, id string) error {
	_, err := c.del(ctx, resourcePath(collection, id))
	return err
}

// Delete removes a record from any collection, e.g. "/categories".
func (c *Client) Delete(ctx context.Context, collection, id string) error {
	return deleteResource(ctx, c, collection, id)
}
