package placeholder

import "time"

// Lead is a prospective seller captured by the marketing site.
type Lead struct {
	ID             string
	Name           string
	Phone          string
	Email          string
	Device         string
	Source         string
	Status         string
	EstimatedValue float64
	CreatedAt      time.Time
}

// PriceEntry is the quoted buy price for one product condition.
type PriceEntry struct {
	ID        string
	Product   string
	Variant   string
	Condition string
	Price     float64
	Status    string
}

// LeadStatuses and PriceConditions are the filter choices of the two lists.
var (
	LeadStatuses    = []string{"new", "contacted", "qualified", "converted", "lost"}
	PriceConditions = []string{"excellent", "good", "fair", "poor"}
)

func day(d int) time.Time {
	return time.Date(2024, time.March, d, 10, 0, 0, 0, time.UTC)
}

// Leads returns the fixed lead records.
func Leads() []Lead {
	return []Lead{
		{ID: "L-1001", Name: "Rahul Sharma", Phone: "+91 98100 11111", Email: "rahul@example.com", Device: "iPhone 13", Source: "website", Status: "new", EstimatedValue: 32000, CreatedAt: day(1)},
		{ID: "L-1002", Name: "Priya Nair", Phone: "+91 98100 22222", Email: "priya@example.com", Device: "MacBook Air M1", Source: "instagram", Status: "contacted", EstimatedValue: 45000, CreatedAt: day(2)},
		{ID: "L-1003", Name: "Arjun Mehta", Phone: "+91 98100 33333", Device: "Galaxy S22", Source: "referral", Status: "qualified", EstimatedValue: 28000, CreatedAt: day(3)},
		{ID: "L-1004", Name: "Sneha Iyer", Phone: "+91 98100 44444", Email: "sneha@example.com", Device: "iPad Air", Source: "website", Status: "converted", EstimatedValue: 21000, CreatedAt: day(5)},
		{ID: "L-1005", Name: "Vikram Singh", Phone: "+91 98100 55555", Device: "Pixel 7", Source: "walk-in", Status: "lost", CreatedAt: day(8)},
		{ID: "L-1006", Name: "Ananya Das", Phone: "+91 98100 66666", Email: "ananya@example.com", Device: "OnePlus 11", Source: "instagram", Status: "new", EstimatedValue: 24000, CreatedAt: day(9)},
	}
}

// Prices returns the fixed price grid.
func Prices() []PriceEntry {
	return []PriceEntry{
		{ID: "PR-1", Product: "iPhone 13", Variant: "128GB", Condition: "excellent", Price: 36000, Status: "active"},
		{ID: "PR-2", Product: "iPhone 13", Variant: "128GB", Condition: "good", Price: 32000, Status: "active"},
		{ID: "PR-3", Product: "iPhone 13", Variant: "128GB", Condition: "fair", Price: 27000, Status: "active"},
		{ID: "PR-4", Product: "MacBook Air M1", Variant: "8GB/256GB", Condition: "excellent", Price: 48000, Status: "active"},
		{ID: "PR-5", Product: "MacBook Air M1", Variant: "8GB/256GB", Condition: "poor", Price: 30000, Status: "inactive"},
		{ID: "PR-6", Product: "Galaxy S22", Variant: "256GB", Condition: "good", Price: 29000, Status: "active"},
		{ID: "PR-7", Product: "Pixel 7", Variant: "128GB", Condition: "good", Price: 22000, Status: "active"},
	}
}
