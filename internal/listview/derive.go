package listview

import (
	"strings"

	"golang.org/x/text/cases"
)

// All is the filter value that removes a constraint.
const All = "all"

// DefaultPageSize is used when a Config leaves PageSize unset.
const DefaultPageSize = 20

// Accessor reads one display field from a record.
type Accessor[T any] func(T) string

// Config describes how a list derives its visible rows.
type Config[T any] struct {
	// Fields maps field names to accessors. Filters and search only see
	// fields listed here.
	Fields map[string]Accessor[T]
	// Searchable names the fields the search term is matched against.
	Searchable []string
	// Filters names the fields usable as exact-match filters, in display order.
	Filters []string
	// Remote names the filters the backend applies too. Changing one of
	// them should trigger a refetch with Query().
	Remote []string
	// Choices pins the option list of a filter. Filters without choices
	// offer the distinct values of the loaded records.
	Choices  map[string][]string
	PageSize int
}

func (c Config[T]) pageSize() int {
	if c.PageSize <= 0 {
		return DefaultPageSize
	}
	return c.PageSize
}

// IsRemote reports whether the backend filters on key.
func (c Config[T]) IsRemote(key string) bool {
	for _, k := range c.Remote {
		if k == key {
			return true
		}
	}
	return false
}

// FilterState is the search term, filter selections, and page of one list.
type FilterState struct {
	Search string
	Values map[string]string
	Page   int
}

// Value returns the selected value for key, or All when unset.
func (s FilterState) Value(key string) string {
	v := strings.TrimSpace(s.Values[key])
	if v == "" {
		return All
	}
	return v
}

// Active returns the filters that constrain the result.
func (s FilterState) Active() map[string]string {
	out := make(map[string]string, len(s.Values))
	for k, v := range s.Values {
		if isUnset(v) {
			continue
		}
		out[k] = v
	}
	return out
}

func (s FilterState) clone() FilterState {
	values := make(map[string]string, len(s.Values))
	for k, v := range s.Values {
		values[k] = v
	}
	s.Values = values
	return s
}

func isUnset(v string) bool {
	v = strings.TrimSpace(v)
	return v == "" || v == All
}

// Derive returns the records matching every active filter and the search
// term, in their original order. It does not modify records.
func Derive[T any](cfg Config[T], records []T, state FilterState) []T {
	filters := make(map[string]Accessor[T])
	wants := make(map[string]string)
	for key, value := range state.Active() {
		get, ok := cfg.Fields[key]
		if !ok || get == nil {
			continue
		}
		filters[key] = get
		wants[key] = value
	}
	needle := fold(strings.TrimSpace(state.Search))

	out := make([]T, 0, len(records))
	for _, record := range records {
		if !matchFilters(filters, wants, record) {
			continue
		}
		if needle != "" && !matchSearch(cfg, record, needle) {
			continue
		}
		out = append(out, record)
	}
	return out
}

func matchFilters[T any](filters map[string]Accessor[T], wants map[string]string, record T) bool {
	for key, get := range filters {
		if read(get, record) != wants[key] {
			return false
		}
	}
	return true
}

func matchSearch[T any](cfg Config[T], record T, needle string) bool {
	for _, name := range cfg.Searchable {
		if strings.Contains(fold(read(cfg.Fields[name], record)), needle) {
			return true
		}
	}
	return false
}

// read calls get, treating a nil accessor or a panic on a malformed record
// as an empty field.
func read[T any](get Accessor[T], record T) (value string) {
	if get == nil {
		return ""
	}
	defer func() {
		if recover() != nil {
			value = ""
		}
	}()
	return get(record)
}

func fold(s string) string {
	if s == "" {
		return s
	}
	return cases.Fold().String(s)
}

// Page is one slice of a derived view.
type Page[T any] struct {
	Items []T
	Index int
	Size  int
	Total int
	Pages int
}

// Paginate slices items into the requested page. Out of range pages clamp
// to the nearest valid page; an empty input is page 0 of 1.
func Paginate[T any](items []T, page, size int) Page[T] {
	if size <= 0 {
		size = DefaultPageSize
	}
	pages := len(items) / size
	if len(items)%size != 0 || pages == 0 {
		pages++
	}
	page = clamp(page, 0, pages-1)
	start := page * size
	end := start + min(size, len(items)-start)
	return Page[T]{
		Items: items[start:end],
		Index: page,
		Size:  size,
		Total: len(items),
		Pages: pages,
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
