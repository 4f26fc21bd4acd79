package api

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// --- API Response Envelope ---

type envelope[T any] struct {
	Success bool              `json:"success"`
	Data    T                 `json:"data"`
	Message string            `json:"message,omitempty"`
	Stats   map[string]Number `json:"stats,omitempty"`
}

// QueryParams are list filters sent as query string values.
type QueryParams map[string]string

// ListResult is one page of records and the backend rollup that came with it.
type ListResult[T any] struct {
	Items []T
	Stats map[string]float64
}

// --- Lenient Scalars ---

// Number decodes JSON numbers, numeric strings, and null. Anything that is
// not a finite number decodes as 0.
type Number float64

func (n *Number) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = strings.TrimSpace(unquoted)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		*n = 0
		return nil
	}
	*n = Number(v)
	return nil
}

// Float returns the value as float64.
func (n Number) Float() float64 {
	return float64(n)
}

// Time decodes RFC 3339 timestamps. Empty or malformed values decode as the
// zero time.
type Time struct {
	time.Time
}

func (t *Time) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		t.Time = time.Time{}
		return nil
	}
	parsed, err := time.Parse(time.RFC3339, strings.TrimSpace(s))
	if err != nil {
		t.Time = time.Time{}
		return nil
	}
	t.Time = parsed
	return nil
}

func (t Time) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Format(time.RFC3339))
}

// Format renders the date, or an empty string for the zero time.
func (t Time) Format(layout string) string {
	if t.IsZero() {
		return ""
	}
	return t.Time.Format(layout)
}

// Ref is a reference to another record. The backend sends either the bare
// id or the populated object; both decode into Ref.
type Ref struct {
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
	Brand string `json:"brand,omitempty"`
}

func (r *Ref) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var id string
		if err := json.Unmarshal(trimmed, &id); err != nil {
			return nil
		}
		*r = Ref{ID: id}
		return nil
	}
	type plain Ref
	var p plain
	if err := json.Unmarshal(trimmed, &p); err != nil {
		*r = Ref{}
		return nil
	}
	*r = Ref(p)
	return nil
}

// --- Catalog ---

// SuperCategory groups categories, e.g. "Phones" or "Laptops".
type SuperCategory struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Image     string `json:"image,omitempty"`
	Status    string `json:"status,omitempty"`
	CreatedAt Time   `json:"createdAt"`
}

// Category is a brand-level catalog grouping under a super category.
type Category struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Image         string `json:"image,omitempty"`
	SuperCategory *Ref   `json:"superCategory,omitempty"`
	Status        string `json:"status,omitempty"`
	CreatedAt     Time   `json:"createdAt"`
}

// Series is a product line within a category.
type Series struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Category  *Ref   `json:"category,omitempty"`
	Status    string `json:"status,omitempty"`
	CreatedAt Time   `json:"createdAt"`
}

// Variant is one configuration of a product with its own base price.
type Variant struct {
	Name  string `json:"name"`
	Price Number `json:"price"`
}

// Product is a resellable device model.
type Product struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Brand     string    `json:"brand,omitempty"`
	Category  *Ref      `json:"category,omitempty"`
	Series    *Ref      `json:"series,omitempty"`
	BasePrice Number    `json:"basePrice"`
	Variants  []Variant `json:"variants,omitempty"`
	Status    string    `json:"status,omitempty"`
	Image     string    `json:"image,omitempty"`
	CreatedAt Time      `json:"createdAt"`
}

// Defect is a condition check that deducts from a device quote.
type Defect struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Section          string `json:"section,omitempty"`
	Category         *Ref   `json:"category,omitempty"`
	DeductionPercent Number `json:"deductionPercent"`
	Status           string `json:"status,omitempty"`
}

// --- Orders ---

// OrderPricing is the quote attached to a buy order. Values are computed by
// the backend and only displayed here.
type OrderPricing struct {
	BasePrice  Number `json:"basePrice"`
	Deductions Number `json:"deductions"`
	FinalPrice Number `json:"finalPrice"`
}

// Pickup is the collection appointment for a buy order.
type Pickup struct {
	Address     string `json:"address,omitempty"`
	City        string `json:"city,omitempty"`
	Pincode     string `json:"pincode,omitempty"`
	ScheduledAt Time   `json:"scheduledAt"`
}

// BuyOrder is a customer's request to sell a device to the platform.
type BuyOrder struct {
	ID          string        `json:"id"`
	OrderNumber string        `json:"orderNumber"`
	Status      string        `json:"status"`
	Product     *Ref          `json:"product,omitempty"`
	User        *Ref          `json:"user,omitempty"`
	Pricing     *OrderPricing `json:"pricing,omitempty"`
	Pickup      *Pickup       `json:"pickup,omitempty"`
	CreatedAt   Time          `json:"createdAt"`
}

// OrderStatuses are the buy order states the backend accepts.
var OrderStatuses = []string{"pending", "confirmed", "pickup_scheduled", "picked", "completed", "cancelled"}

// --- Users ---

// User is an admin panel or marketplace account.
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Role      string `json:"role"`
	IsActive  bool   `json:"isActive"`
	CreatedAt Time   `json:"createdAt"`
}

// UserRoles are the roles the backend accepts.
var UserRoles = []string{"admin", "staff", "partner", "customer"}

// --- Inputs ---

// SuperCategoryInput is the payload for creating or updating a super category.
type SuperCategoryInput struct {
	Name   string `json:"name" validate:"required,max=120"`
	Image  string `json:"image,omitempty" validate:"omitempty,url"`
	Status string `json:"status,omitempty" validate:"omitempty,oneof=active inactive"`
}

// CategoryInput is the payload for creating or updating a category.
type CategoryInput struct {
	Name          string `json:"name" validate:"required,max=120"`
	Image         string `json:"image,omitempty" validate:"omitempty,url"`
	SuperCategory string `json:"superCategory" validate:"required"`
	Status        string `json:"status,omitempty" validate:"omitempty,oneof=active inactive"`
}

// SeriesInput is the payload for creating or updating a series.
type SeriesInput struct {
	Name     string `json:"name" validate:"required,max=120"`
	Category string `json:"category" validate:"required"`
	Status   string `json:"status,omitempty" validate:"omitempty,oneof=active inactive"`
}

// VariantInput is one variant of a product payload.
type VariantInput struct {
	Name  string  `json:"name" validate:"required"`
	Price float64 `json:"price" validate:"gte=0"`
}

// ProductInput is the payload for creating or updating a product.
type ProductInput struct {
	Name      string         `json:"name" validate:"required,max=160"`
	Brand     string         `json:"brand,omitempty"`
	Category  string         `json:"category" validate:"required"`
	Series    string         `json:"series,omitempty"`
	BasePrice float64        `json:"basePrice" validate:"gte=0"`
	Variants  []VariantInput `json:"variants,omitempty" validate:"dive"`
	Status    string         `json:"status,omitempty" validate:"omitempty,oneof=active inactive"`
	Image     string         `json:"image,omitempty" validate:"omitempty,url"`
}

// DefectInput is the payload for creating or updating a defect.
type DefectInput struct {
	Name             string  `json:"name" validate:"required,max=120"`
	Section          string  `json:"section" validate:"required"`
	Category         string  `json:"category,omitempty"`
	DeductionPercent float64 `json:"deductionPercent" validate:"gte=0,lte=100"`
	Status           string  `json:"status,omitempty" validate:"omitempty,oneof=active inactive"`
}

// UserInput is the payload for creating or updating a user.
type UserInput struct {
	Name     string `json:"name" validate:"required,max=120"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone,omitempty"`
	Role     string `json:"role" validate:"required,oneof=admin staff partner customer"`
	IsActive *bool  `json:"isActive,omitempty"`
	Password string `json:"password,omitempty" validate:"omitempty,min=8"`
}

// OrderStatusInput moves a buy order to a new state.
type OrderStatusInput struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed pickup_scheduled picked completed cancelled"`
	Note   string `json:"note,omitempty" validate:"max=500"`
}

// LoginInput is the admin login payload.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResult is the session issued by the login endpoint.
type LoginResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// UploadResult is the stored location of an uploaded image.
type UploadResult struct {
	URL string `json:"url"`
}
