package model

// RawProduct is the wire shape of a product as returned by the platform
// API. Optional fields are pointers so missing values can be defaulted
// during normalization instead of silently becoming zero.
type RawProduct struct {
	ID          string   `json:"_id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Price       *float64 `json:"price"`
	Stock       *int     `json:"countInStock"`
	ImageURL    string   `json:"image"`
	CreatedAt   string   `json:"createdAt"`
}

// Product is the normalized admin view of a product.
type Product struct {
	ID          string
	Name        string
	Description string
	Category    string
	Price       float64
	Stock       int
	ImageURL    string
	CreatedAt   string
	Status      Status
}

// NormalizeProduct maps a raw API product into the admin shape,
// defaulting missing numerics to 0 and deriving the stock status.
func NormalizeProduct(r RawProduct) Product {
	p := Product{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Category:    r.Category,
		ImageURL:    r.ImageURL,
		CreatedAt:   r.CreatedAt,
	}
	if r.Price != nil {
		p.Price = *r.Price
	}
	if r.Stock != nil {
		p.Stock = *r.Stock
	}
	p.Status = StockStatus(p.Stock)
	return p
}

// RawCategory is the wire shape of a product category.
type RawCategory struct {
	ID           string `json:"_id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	ProductCount *int   `json:"productCount"`
}

// Category is the normalized admin view of a category.
type Category struct {
	ID           string
	Name         string
	Slug         string
	ProductCount int
}

// NormalizeCategory maps a raw API category into the admin shape.
func NormalizeCategory(r RawCategory) Category {
	c := Category{ID: r.ID, Name: r.Name, Slug: r.Slug}
	if r.ProductCount != nil {
		c.ProductCount = *r.ProductCount
	}
	return c
}
