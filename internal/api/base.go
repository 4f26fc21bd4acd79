package api

// DefaultBaseURL is the API target used when the config does not set one.
const DefaultBaseURL = "http://localhost:5000/api"

// NewDefaultClient builds a client pointed at the default API URL.
func NewDefaultClient(creds Credentials, opts ...Option) *Client {
	return NewClient(DefaultBaseURL, creds, opts...)
}
