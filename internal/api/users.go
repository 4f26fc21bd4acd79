package api

import "context"

const PathUsers = "/users"

// ListUsers returns accounts. Supported filters: role.
func (c *Client) ListUsers(ctx context.Context, params QueryParams) (ListResult[User], error) {
	return listResource[User](ctx, c, PathUsers, params)
}

func (c *Client) CreateUser(ctx context.Context, input UserInput) (*User, error) {
	return createResource[User](ctx, c, PathUsers, input)
}

func (c *Client) UpdateUser(ctx context.Context, id string, input UserInput) (*User, error) {
	return updateResource[User](ctx, c, PathUsers, id, input)
}
