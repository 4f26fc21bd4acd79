package listview

import (
	"context"
	"sort"
	"sync"

	"go.uber.org/zap"
)

// Query holds the filter values sent to the backend.
type Query map[string]string

// Result is one successful fetch.
type Result[T any] struct {
	Items []T
	// Stats is the rollup the backend sent with the list, if any.
	Stats map[string]float64
}

// SourceFunc fetches the records of one list.
type SourceFunc[T any] func(ctx context.Context, q Query) (Result[T], error)

// Ticket identifies one fetch started with Begin. Query holds the remote
// filters in effect when the fetch began.
type Ticket struct {
	gen   uint64
	Query Query
}

// Generation returns the request generation the ticket was issued for.
func (t Ticket) Generation() uint64 {
	return t.gen
}

// Option configures a Controller.
type Option func(*options)

type options struct {
	logger *zap.Logger
	name   string
}

// WithLogger sets the logger used for fetch bookkeeping.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithName labels log lines from this controller.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// Controller owns the records, filter state, and fetch lifecycle of one list.
// It is safe for concurrent use; fetch results may arrive on any goroutine.
type Controller[T any] struct {
	mu      sync.Mutex
	cfg     Config[T]
	log     *zap.Logger
	records []T
	stats   map[string]float64
	state   FilterState
	loading bool
	err     error
	gen     uint64
	cancel  context.CancelFunc
}

// New creates a controller with default filter state.
func New[T any](cfg Config[T], opts ...Option) *Controller[T] {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	log := o.logger
	if o.name != "" {
		log = log.With(zap.String("list", o.name))
	}
	return &Controller[T]{
		cfg:   cfg,
		log:   log,
		state: FilterState{Values: map[string]string{}},
	}
}

// Config returns the controller configuration.
func (c *Controller[T]) Config() Config[T] {
	return c.cfg
}

// SetSearchTerm replaces the search term and returns to the first page.
func (c *Controller[T]) SetSearchTerm(term string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Search = term
	c.state.Page = 0
}

// SetFilterValue replaces one filter. All or an empty value removes it.
func (c *Controller[T]) SetFilterValue(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if isUnset(value) {
		delete(c.state.Values, key)
	} else {
		c.state.Values[key] = value
	}
	c.state.Page = 0
}

// SetPage moves to page n, clamped to the derived view.
func (c *Controller[T]) SetPage(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Page = n
	c.state.Page = c.visibleLocked().Index
}

// NextPage advances one page if possible.
func (c *Controller[T]) NextPage() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Page++
	c.state.Page = c.visibleLocked().Index
}

// PrevPage goes back one page if possible.
func (c *Controller[T]) PrevPage() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state.Page > 0 {
		c.state.Page--
	}
	c.state.Page = c.visibleLocked().Index
}

// State returns a copy of the filter state.
func (c *Controller[T]) State() FilterState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.clone()
}

// Query returns the active remote filters as backend query params.
func (c *Controller[T]) Query() Query {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.queryLocked()
}

func (c *Controller[T]) queryLocked() Query {
	q := Query{}
	for key, value := range c.state.Active() {
		if c.cfg.IsRemote(key) {
			q[key] = value
		}
	}
	return q
}

// SetRecords replaces the record set directly, for lists without a backend.
func (c *Controller[T]) SetRecords(records []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.records = records
	c.stats = nil
	c.err = nil
	c.loading = false
}

// Records returns the full record set. Callers must not modify it.
func (c *Controller[T]) Records() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.records
}

// Stats returns the backend rollup of the last successful fetch.
func (c *Controller[T]) Stats() map[string]float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

// Loading reports whether a fetch is in flight.
func (c *Controller[T]) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// Err returns the error of the latest fetch, if it failed.
func (c *Controller[T]) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// Filtered returns every record passing the filters and search term.
func (c *Controller[T]) Filtered() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Derive(c.cfg, c.records, c.state)
}

// Visible returns the current page of the derived view.
func (c *Controller[T]) Visible() Page[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.visibleLocked()
}

func (c *Controller[T]) visibleLocked() Page[T] {
	return Paginate(Derive(c.cfg, c.records, c.state), c.state.Page, c.cfg.pageSize())
}

// Options lists the values a filter can cycle through, starting with All.
func (c *Controller[T]) Options(key string) []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if choices, ok := c.cfg.Choices[key]; ok {
		return append([]string{All}, choices...)
	}
	get := c.cfg.Fields[key]
	seen := map[string]struct{}{}
	var values []string
	for _, r := range c.records {
		v := read(get, r)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	sort.Strings(values)
	return append([]string{All}, values...)
}

// Begin starts a fetch. It cancels the fetch still in flight, if any, and
// returns the context and ticket for the new one.
func (c *Controller[T]) Begin(parent context.Context) (context.Context, Ticket) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancel != nil {
		c.cancel()
	}
	ctx, cancel := context.WithCancel(parent)
	c.gen++
	c.cancel = cancel
	c.loading = true
	return ctx, Ticket{gen: c.gen, Query: c.queryLocked()}
}

// Resolve applies the outcome of the fetch identified by t. Results of any
// fetch other than the latest are discarded and Resolve returns false. A
// failed fetch keeps the previous records.
func (c *Controller[T]) Resolve(t Ticket, res Result[T], err error) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if t.gen != c.gen {
		c.log.Debug("discarding stale response",
			zap.Uint64("generation", t.gen),
			zap.Uint64("latest", c.gen),
		)
		return false
	}
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.loading = false
	if err != nil {
		c.err = err
		c.log.Warn("fetch failed", zap.Error(err))
		return true
	}
	c.err = nil
	c.records = res.Items
	c.stats = res.Stats
	return true
}

// Cancel aborts the fetch in flight. Its result will be discarded.
func (c *Controller[T]) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.gen++
	c.loading = false
}

// Fetch runs src with the current remote filters and applies its result.
func (c *Controller[T]) Fetch(ctx context.Context, src SourceFunc[T]) error {
	fctx, ticket := c.Begin(ctx)
	res, err := src(fctx, ticket.Query)
	c.Resolve(ticket, res, err)
	return err
}
