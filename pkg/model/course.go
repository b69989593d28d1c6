package model

// RawCourse is the wire shape of a course.
type RawCourse struct {
	ID               string   `json:"_id"`
	Title            string   `json:"title"`
	Instructor       string   `json:"instructor"`
	Price            *float64 `json:"price"`
	Status           string   `json:"status"`
	EnrollmentsCount *int     `json:"enrollmentsCount"`
}

// Course is the normalized admin view of a course.
type Course struct {
	ID               string
	Title            string
	Instructor       string
	Price            float64
	Status           Status
	EnrollmentsCount int
}

// NormalizeCourse maps a raw API course into the admin shape. Missing
// status defaults to inactive; missing price and enrollment count
// default to 0.
func NormalizeCourse(r RawCourse) Course {
	c := Course{
		ID:         r.ID,
		Title:      r.Title,
		Instructor: r.Instructor,
	}
	if r.Price != nil {
		c.Price = *r.Price
	}
	if r.EnrollmentsCount != nil {
		c.EnrollmentsCount = *r.EnrollmentsCount
	}
	if r.Status == "" {
		c.Status = StatusInactive
	} else {
		c.Status = ParseStatus(r.Status)
	}
	return c
}
