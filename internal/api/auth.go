package api

import "context"

// Login exchanges admin credentials for a session token. The returned token
// is not stored on the client; callers decide where it lives.
func (c *Client) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	if err := Validate(input); err != nil {
		return nil, err
	}
	data, err := c.post(ctx, "/auth/login", input)
	if err != nil {
		return nil, err
	}
	return decodeOne[LoginResult](data)
}
