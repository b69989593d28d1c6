package model

import (
	"strings"
	"time"
)

// Status is the shared lifecycle vocabulary for all admin resources.
// Some statuses arrive verbatim from the platform API (orders, transactions),
// others are derived locally from record fields (discounts, stock levels).
type Status string

const (
	// Order lifecycle.
	StatusPending    Status = "Pending"
	StatusProcessing Status = "Processing"
	StatusShipped    Status = "Shipped"
	StatusDelivered  Status = "Delivered"
	StatusCancelled  Status = "Cancelled"
	StatusRefunded   Status = "Refunded"

	// Discount / plan / membership lifecycle.
	StatusActive    Status = "Active"
	StatusScheduled Status = "Scheduled"
	StatusExpired   Status = "Expired"
	StatusInactive  Status = "Inactive"

	// Payment outcome.
	StatusPaid   Status = "Paid"
	StatusFailed Status = "Failed"

	// Stock levels.
	StatusInStock    Status = "In Stock"
	StatusLowStock   Status = "Low Stock"
	StatusOutOfStock Status = "Out of Stock"
)

// String returns the string representation of the status.
func (s Status) String() string {
	return string(s)
}

// ParseStatus maps an API status string onto the shared vocabulary,
// case-insensitively. Unknown values pass through unchanged so the UI
// still shows whatever the server sent.
func ParseStatus(raw string) Status {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "pending":
		return StatusPending
	case "processing":
		return StatusProcessing
	case "shipped":
		return StatusShipped
	case "delivered":
		return StatusDelivered
	case "cancelled", "canceled":
		return StatusCancelled
	case "refunded":
		return StatusRefunded
	case "active":
		return StatusActive
	case "scheduled":
		return StatusScheduled
	case "expired":
		return StatusExpired
	case "inactive":
		return StatusInactive
	case "paid", "success", "succeeded":
		return StatusPaid
	case "failed":
		return StatusFailed
	default:
		return Status(raw)
	}
}

// BadgeColor returns the presentation color for a status badge. This is
// the single lookup table used by the dashboard templates and the CLI so
// the same status renders the same way on every page.
func (s Status) BadgeColor() string {
	switch s {
	case StatusPending:
		return "yellow"
	case StatusProcessing, StatusScheduled:
		return "blue"
	case StatusShipped:
		return "indigo"
	case StatusDelivered, StatusActive, StatusPaid, StatusInStock:
		return "green"
	case StatusCancelled, StatusFailed, StatusOutOfStock:
		return "red"
	case StatusRefunded, StatusLowStock:
		return "orange"
	case StatusExpired, StatusInactive:
		return "gray"
	default:
		return "gray"
	}
}

// LowStockThreshold is the quantity at or below which a product counts
// as low stock.
const LowStockThreshold = 5

// StockStatus derives the stock status from a quantity on hand.
func StockStatus(quantity int) Status {
	switch {
	case quantity <= 0:
		return StatusOutOfStock
	case quantity <= LowStockThreshold:
		return StatusLowStock
	default:
		return StatusInStock
	}
}

// DiscountStatus derives the display status of a discount from its
// persisted fields and the supplied clock time. It is a pure function:
// the result is never written back to the API.
func DiscountStatus(d Discount, now time.Time) Status {
	if !d.IsActive {
		return StatusInactive
	}
	if !d.StartDate.IsZero() && now.Before(d.StartDate) {
		return StatusScheduled
	}
	if !d.EndDate.IsZero() && now.After(d.EndDate) {
		return StatusExpired
	}
	return StatusActive
}
