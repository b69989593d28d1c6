package model

import (
	"encoding/json"
	"testing"
)

func TestNormalizeCourse_Defaults(t *testing.T) {
	// A partial record from the API must normalize, not error.
	var raw RawCourse
	if err := json.Unmarshal([]byte(`{"_id":"c1","title":"Course A"}`), &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	c := NormalizeCourse(raw)
	if c.Status != StatusInactive {
		t.Errorf("missing status should default to %q, got %q", StatusInactive, c.Status)
	}
	if c.Price != 0 {
		t.Errorf("missing price should default to 0, got %v", c.Price)
	}
	if c.EnrollmentsCount != 0 {
		t.Errorf("missing enrollmentsCount should default to 0, got %d", c.EnrollmentsCount)
	}
}

func TestNormalizeCourse_PassThrough(t *testing.T) {
	payload := `{"_id":"1","title":"Course A","instructor":"Jane","price":10,"status":"Active","enrollmentsCount":3}`
	var raw RawCourse
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	c := NormalizeCourse(raw)
	if c.ID != "1" || c.Title != "Course A" || c.Instructor != "Jane" {
		t.Errorf("identity fields not passed through: %+v", c)
	}
	if c.Price != 10 {
		t.Errorf("Price = %v, want 10", c.Price)
	}
	if c.Status != StatusActive {
		t.Errorf("Status = %q, want Active", c.Status)
	}
	if c.EnrollmentsCount != 3 {
		t.Errorf("EnrollmentsCount = %d, want 3", c.EnrollmentsCount)
	}
}

func TestNormalizeOrder_Defaults(t *testing.T) {
	o := NormalizeOrder(RawOrder{ID: "o1", CustomerName: "Ada"})
	if o.Status != StatusPending {
		t.Errorf("missing order status should default to Pending, got %q", o.Status)
	}
	if o.Total != 0 || o.ItemCount != 0 {
		t.Errorf("missing numerics should default to 0: %+v", o)
	}
}

func TestNormalizeProduct_StockStatus(t *testing.T) {
	zero := 0
	three := 3
	fifty := 50

	tests := []struct {
		stock *int
		want  Status
	}{
		{nil, StatusOutOfStock},
		{&zero, StatusOutOfStock},
		{&three, StatusLowStock},
		{&fifty, StatusInStock},
	}
	for _, tt := range tests {
		p := NormalizeProduct(RawProduct{ID: "p1", Name: "Blocks", Stock: tt.stock})
		if p.Status != tt.want {
			t.Errorf("stock %v: Status = %q, want %q", tt.stock, p.Status, tt.want)
		}
	}
}

func TestNormalizeDiscount_BadDates(t *testing.T) {
	active := true
	d := NormalizeDiscount(RawDiscount{
		ID:        "d1",
		Code:      "OOPS",
		StartDate: "not-a-date",
		EndDate:   "",
		IsActive:  &active,
	})
	if !d.StartDate.IsZero() || !d.EndDate.IsZero() {
		t.Errorf("unparseable dates should be zero, got %v / %v", d.StartDate, d.EndDate)
	}
}

func TestParseAPIDate_Layouts(t *testing.T) {
	for _, s := range []string{
		"2025-06-01",
		"2025-06-01T12:30:00Z",
		"2025-06-01T12:30:00.000Z",
	} {
		if ParseAPIDate(s).IsZero() {
			t.Errorf("ParseAPIDate(%q) returned zero time", s)
		}
	}
	if !ParseAPIDate("garbage").IsZero() {
		t.Error("ParseAPIDate should return zero time for garbage")
	}
}

func TestNormalizeShippingZone_ActiveFlag(t *testing.T) {
	yes := true
	z := NormalizeShippingZone(RawShippingZone{ID: "z1", Name: "EU", IsActive: &yes})
	if z.Status != StatusActive {
		t.Errorf("Status = %q, want Active", z.Status)
	}
	z = NormalizeShippingZone(RawShippingZone{ID: "z2", Name: "APAC"})
	if z.Status != StatusInactive {
		t.Errorf("missing isActive should normalize to Inactive, got %q", z.Status)
	}
}
