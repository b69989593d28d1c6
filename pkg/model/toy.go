package model

// RawToy is the wire shape of a lending-library toy.
type RawToy struct {
	ID             string `json:"_id"`
	Name           string `json:"name"`
	AgeRange       string `json:"ageRange"`
	TotalUnits     *int   `json:"totalUnits"`
	AvailableUnits *int   `json:"availableUnits"`
	ImageURL       string `json:"image"`
}

// Toy is the normalized admin view of a toy. Availability status is
// derived from the unit counts the same way product stock is.
type Toy struct {
	ID             string
	Name           string
	AgeRange       string
	TotalUnits     int
	AvailableUnits int
	ImageURL       string
	Status         Status
}

// NormalizeToy maps a raw API toy into the admin shape.
func NormalizeToy(r RawToy) Toy {
	t := Toy{
		ID:       r.ID,
		Name:     r.Name,
		AgeRange: r.AgeRange,
		ImageURL: r.ImageURL,
	}
	if r.TotalUnits != nil {
		t.TotalUnits = *r.TotalUnits
	}
	if r.AvailableUnits != nil {
		t.AvailableUnits = *r.AvailableUnits
	}
	t.Status = StockStatus(t.AvailableUnits)
	return t
}
