// Package resource describes the admin lists: where each record type comes
// from, which fields search and filters see, and how records are shown.
// The TUI and the list commands share these definitions.
package resource

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/gravitrone/resale-admin/cli/internal/api"
	"github.com/gravitrone/resale-admin/cli/internal/listview"
	"github.com/gravitrone/resale-admin/cli/internal/stats"
)

// ErrUnsupported is returned for actions a list does not offer.
var ErrUnsupported = errors.New("not supported for this list")

// Column is one table column. Width is the preferred width in cells.
type Column struct {
	Header string
	Width  int
	Right  bool
}

// Field is a label/value pair of a detail view or summary line.
type Field struct {
	Label string
	Value string
}

// Definition is one admin list over records of type T. Add, Edit, Remove
// and SetStatus are nil when the list does not support the action.
type Definition[T any] struct {
	Key     string
	Title   string
	Noun    string
	List    listview.Config[T]
	Source  listview.SourceFunc[T]
	Columns []Column
	Row     func(T) []string
	ID      func(T) string
	Label   func(T) string
	Detail  func(T) []Field
	Summary func(records []T, server stats.Summary) []Field

	Add       func(ctx context.Context, payload []byte) (*T, error)
	Edit      func(ctx context.Context, id string, payload []byte) (*T, error)
	Remove    func(ctx context.Context, id string) error
	Statuses  []string
	SetStatus func(ctx context.Context, id, status string) error

	// Note is printed under the table, e.g. for lists without a backend.
	Note string
}

// FromAPI adapts a client list call to a list source.
func FromAPI[T any](list func(context.Context, api.QueryParams) (api.ListResult[T], error)) listview.SourceFunc[T] {
	return func(ctx context.Context, q listview.Query) (listview.Result[T], error) {
		res, err := list(ctx, api.QueryParams(q))
		if err != nil {
			return listview.Result[T]{}, err
		}
		return listview.Result[T]{Items: res.Items, Stats: res.Stats}, nil
	}
}

// --- Type-erased access for commands ---

// Entry is a Definition with its record type hidden.
type Entry interface {
	Name() string
	Heading() string
	Filters() []string
	Snapshot(ctx context.Context, opts ListOptions) (Snapshot, error)
	Create(ctx context.Context, payload []byte) (string, error)
	Update(ctx context.Context, id string, payload []byte) (string, error)
	Delete(ctx context.Context, id string) error
}

// ListOptions select one page of a list.
type ListOptions struct {
	Search  string
	Filters map[string]string
	// Page is 1-based; out of range values are clamped.
	Page     int
	PageSize int
	Logger   *zap.Logger
}

// Snapshot is one rendered page of a list.
type Snapshot struct {
	Title   string
	Headers []string
	Right   []bool
	Rows    [][]string
	// Matched counts records passing the filters; Loaded counts all records.
	Matched int
	Loaded  int
	Page    int
	Pages   int
	Summary []Field
	Note    string
}

func (d Definition[T]) Name() string    { return d.Key }
func (d Definition[T]) Heading() string { return d.Title }

func (d Definition[T]) Filters() []string {
	return d.List.Filters
}

// Snapshot fetches the list, applies opts, and renders the selected page.
func (d Definition[T]) Snapshot(ctx context.Context, opts ListOptions) (Snapshot, error) {
	cfg := d.List
	if opts.PageSize > 0 {
		cfg.PageSize = opts.PageSize
	}
	ctrl := listview.New(cfg, listview.WithLogger(opts.Logger), listview.WithName(d.Key))

	for key, value := range opts.Filters {
		if !contains(cfg.Filters, key) {
			return Snapshot{}, fmt.Errorf("unknown filter %q for %s (valid: %s)", key, d.Key, strings.Join(cfg.Filters, ", "))
		}
		ctrl.SetFilterValue(key, value)
	}
	ctrl.SetSearchTerm(strings.TrimSpace(opts.Search))

	if err := ctrl.Fetch(ctx, d.Source); err != nil {
		return Snapshot{}, err
	}
	ctrl.SetPage(opts.Page - 1)
	page := ctrl.Visible()

	snap := Snapshot{
		Title:   d.Title,
		Headers: make([]string, len(d.Columns)),
		Right:   make([]bool, len(d.Columns)),
		Rows:    make([][]string, 0, len(page.Items)),
		Matched: page.Total,
		Loaded:  len(ctrl.Records()),
		Page:    page.Index + 1,
		Pages:   max(page.Pages, 1),
		Note:    d.Note,
	}
	for i, c := range d.Columns {
		snap.Headers[i] = c.Header
		snap.Right[i] = c.Right
	}
	for _, item := range page.Items {
		snap.Rows = append(snap.Rows, d.Row(item))
	}
	if d.Summary != nil {
		snap.Summary = d.Summary(ctrl.Records(), stats.Summary(ctrl.Stats()))
	}
	return snap, nil
}

// Create adds a record from a JSON payload and returns its label.
func (d Definition[T]) Create(ctx context.Context, payload []byte) (string, error) {
	if d.Add == nil {
		return "", fmt.Errorf("create %s: %w", d.Key, ErrUnsupported)
	}
	rec, err := d.Add(ctx, payload)
	if err != nil {
		return "", err
	}
	return d.Label(*rec), nil
}

// Update replaces the record with id from a JSON payload and returns its
// label.
func (d Definition[T]) Update(ctx context.Context, id string, payload []byte) (string, error) {
	if d.Edit == nil {
		return "", fmt.Errorf("update %s: %w", d.Key, ErrUnsupported)
	}
	rec, err := d.Edit(ctx, id, payload)
	if err != nil {
		return "", err
	}
	return listview.Or(d.Label(*rec), id), nil
}

// Delete removes the record with id.
func (d Definition[T]) Delete(ctx context.Context, id string) error {
	if d.Remove == nil {
		return fmt.Errorf("delete %s: %w", d.Key, ErrUnsupported)
	}
	return d.Remove(ctx, id)
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
