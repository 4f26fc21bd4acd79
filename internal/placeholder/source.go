// Package placeholder serves fixed records for admin lists that have no
// backend endpoint yet (leads and pricing).
package placeholder

import (
	"context"
	"time"

	"github.com/gravitrone/resale-admin/cli/internal/listview"
)

// DefaultDelay imitates a network round trip so loading states render.
const DefaultDelay = 300 * time.Millisecond

// Source returns a copy of Items after Delay, or the context error if the
// fetch is cancelled first. Filters are applied by the list controller.
type Source[T any] struct {
	Items []T
	Delay time.Duration
}

// List implements listview.SourceFunc.
func (s Source[T]) List(ctx context.Context, _ listview.Query) (listview.Result[T], error) {
	if s.Delay > 0 {
		timer := time.NewTimer(s.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return listview.Result[T]{}, ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return listview.Result[T]{}, err
	}
	items := make([]T, len(s.Items))
	copy(items, s.Items)
	return listview.Result[T]{Items: items}, nil
}
