package model

// RawOrder is the wire shape of an order.
type RawOrder struct {
	ID           string   `json:"_id"`
	CustomerName string   `json:"customerName"`
	Email        string   `json:"email"`
	Total        *float64 `json:"totalAmount"`
	ItemCount    *int     `json:"itemCount"`
	Status       string   `json:"status"`
	CreatedAt    string   `json:"createdAt"`
}

// Order is the normalized admin view of an order.
type Order struct {
	ID           string
	CustomerName string
	Email        string
	Total        float64
	ItemCount    int
	Status       Status
	CreatedAt    string
}

// OrderStatuses lists the states an admin may move an order into.
var OrderStatuses = []Status{
	StatusPending,
	StatusProcessing,
	StatusShipped,
	StatusDelivered,
	StatusCancelled,
	StatusRefunded,
}

// NormalizeOrder maps a raw API order into the admin shape. A missing
// status defaults to Pending; missing numerics default to 0.
func NormalizeOrder(r RawOrder) Order {
	o := Order{
		ID:           r.ID,
		CustomerName: r.CustomerName,
		Email:        r.Email,
		CreatedAt:    r.CreatedAt,
	}
	if r.Total != nil {
		o.Total = *r.Total
	}
	if r.ItemCount != nil {
		o.ItemCount = *r.ItemCount
	}
	if r.Status == "" {
		o.Status = StatusPending
	} else {
		o.Status = ParseStatus(r.Status)
	}
	return o
}

// RawShippingZone is the wire shape of a shipping zone.
type RawShippingZone struct {
	ID           string   `json:"_id"`
	Name         string   `json:"name"`
	Regions      []string `json:"regions"`
	Rate         *float64 `json:"rate"`
	DeliveryDays *int     `json:"deliveryDays"`
	IsActive     *bool    `json:"isActive"`
}

// ShippingZone is the normalized admin view of a shipping zone.
type ShippingZone struct {
	ID           string
	Name         string
	Regions      []string
	Rate         float64
	DeliveryDays int
	Status       Status
}

// NormalizeShippingZone maps a raw API shipping zone into the admin
// shape. A zone with no isActive flag counts as inactive.
func NormalizeShippingZone(r RawShippingZone) ShippingZone {
	z := ShippingZone{ID: r.ID, Name: r.Name, Regions: r.Regions}
	if r.Rate != nil {
		z.Rate = *r.Rate
	}
	if r.DeliveryDays != nil {
		z.DeliveryDays = *r.DeliveryDays
	}
	if r.IsActive != nil && *r.IsActive {
		z.Status = StatusActive
	} else {
		z.Status = StatusInactive
	}
	return z
}

// RawTransaction is the wire shape of a payment transaction.
type RawTransaction struct {
	ID        string   `json:"_id"`
	OrderID   string   `json:"orderId"`
	Amount    *float64 `json:"amount"`
	Method    string   `json:"method"`
	Status    string   `json:"status"`
	CreatedAt string   `json:"createdAt"`
}

// Transaction is the normalized admin view of a payment transaction.
type Transaction struct {
	ID        string
	OrderID   string
	Amount    float64
	Method    string
	Status    Status
	CreatedAt string
}

// NormalizeTransaction maps a raw API transaction into the admin shape.
func NormalizeTransaction(r RawTransaction) Transaction {
	t := Transaction{
		ID:        r.ID,
		OrderID:   r.OrderID,
		Method:    r.Method,
		CreatedAt: r.CreatedAt,
	}
	if r.Amount != nil {
		t.Amount = *r.Amount
	}
	if r.Status == "" {
		t.Status = StatusPending
	} else {
		t.Status = ParseStatus(r.Status)
	}
	return t
}
