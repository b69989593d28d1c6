package model

import "time"

// dateLayouts are the formats the platform API has been observed to use
// for discount windows.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05.000Z",
	"2006-01-02",
}

// ParseAPIDate parses a date string from the API, trying each known
// layout. The zero time is returned for empty or unparseable input.
func ParseAPIDate(s string) time.Time {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// RawDiscount is the wire shape of a discount code.
type RawDiscount struct {
	ID        string   `json:"_id"`
	Code      string   `json:"code"`
	Percent   *float64 `json:"percent"`
	StartDate string   `json:"startDate"`
	EndDate   string   `json:"endDate"`
	IsActive  *bool    `json:"isActive"`
}

// Discount is the normalized admin view of a discount code. Its display
// status is derived, never persisted; see DiscountStatus.
type Discount struct {
	ID        string
	Code      string
	Percent   float64
	StartDate time.Time
	EndDate   time.Time
	IsActive  bool
}

// NormalizeDiscount maps a raw API discount into the admin shape.
// Unparseable dates become the zero time, which DiscountStatus treats
// as an unbounded window.
func NormalizeDiscount(r RawDiscount) Discount {
	d := Discount{
		ID:        r.ID,
		Code:      r.Code,
		StartDate: ParseAPIDate(r.StartDate),
		EndDate:   ParseAPIDate(r.EndDate),
	}
	if r.Percent != nil {
		d.Percent = *r.Percent
	}
	if r.IsActive != nil {
		d.IsActive = *r.IsActive
	}
	return d
}

// Status derives the discount's display status at the given instant.
func (d Discount) Status(now time.Time) Status {
	return DiscountStatus(d, now)
}
