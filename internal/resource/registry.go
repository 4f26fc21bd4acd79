package resource

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/gravitrone/resale-admin/cli/internal/api"
)

// Registry returns every admin list keyed by name. delay is the simulated
// latency of the sample-backed lists.
func Registry(client *api.Client, delay time.Duration) map[string]Entry {
	entries := []Entry{
		Orders(client),
		Leads(delay),
		Pricing(delay),
		Products(client),
		Categories(client),
		SuperCategories(client),
		SeriesList(client),
		Users(client),
		Defects(client),
	}
	out := make(map[string]Entry, len(entries))
	for _, e := range entries {
		out[e.Name()] = e
	}
	return out
}

// Lookup finds the list called name.
func Lookup(client *api.Client, delay time.Duration, name string) (Entry, error) {
	reg := Registry(client, delay)
	if e, ok := reg[name]; ok {
		return e, nil
	}
	return nil, fmt.Errorf("unknown list %q (valid: %s)", name, strings.Join(Names(reg), ", "))
}

// Names returns the registry keys in sorted order.
func Names(reg map[string]Entry) []string {
	names := make([]string, 0, len(reg))
	for name := range reg {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
