package resource

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
)

// decodePayload reads one input value from JSON, rejecting unknown keys.
func decodePayload[I any](payload []byte) (I, error) {
	var in I
	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&in); err != nil {
		return in, fmt.Errorf("invalid payload: %w", err)
	}
	return in, nil
}

func creator[T, I any](create func(context.Context, I) (*T, error)) func(context.Context, []byte) (*T, error) {
	return func(ctx context.Context, payload []byte) (*T, error) {
		in, err := decodePayload[I](payload)
		if err != nil {
			return nil, err
		}
		return create(ctx, in)
	}
}

func updater[T, I any](update func(context.Context, string, I) (*T, error)) func(context.Context, string, []byte) (*T, error) {
	return func(ctx context.Context, id string, payload []byte) (*T, error) {
		in, err := decodePayload[I](payload)
		if err != nil {
			return nil, err
		}
		return update(ctx, id, in)
	}
}
