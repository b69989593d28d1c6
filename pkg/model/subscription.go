package model

// RawPlan is the wire shape of a subscription plan.
type RawPlan struct {
	ID           string   `json:"_id"`
	Name         string   `json:"name"`
	Price        *float64 `json:"price"`
	Interval     string   `json:"interval"`
	Status       string   `json:"status"`
	MembersCount *int     `json:"membersCount"`
}

// Plan is the normalized admin view of a subscription plan.
type Plan struct {
	ID           string
	Name         string
	Price        float64
	Interval     string
	Status       Status
	MembersCount int
}

// NormalizePlan maps a raw API plan into the admin shape. A missing
// status defaults to inactive.
func NormalizePlan(r RawPlan) Plan {
	p := Plan{ID: r.ID, Name: r.Name, Interval: r.Interval}
	if r.Price != nil {
		p.Price = *r.Price
	}
	if r.MembersCount != nil {
		p.MembersCount = *r.MembersCount
	}
	if r.Status == "" {
		p.Status = StatusInactive
	} else {
		p.Status = ParseStatus(r.Status)
	}
	return p
}

// RawMember is the wire shape of a subscription member.
type RawMember struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PlanName    string `json:"planName"`
	Status      string `json:"status"`
	RenewalDate string `json:"renewalDate"`
}

// Member is the normalized admin view of a subscription member.
type Member struct {
	ID          string
	Name        string
	Email       string
	PlanName    string
	Status      Status
	RenewalDate string
}

// NormalizeMember maps a raw API member into the admin shape.
func NormalizeMember(r RawMember) Member {
	m := Member{
		ID:          r.ID,
		Name:        r.Name,
		Email:       r.Email,
		PlanName:    r.PlanName,
		RenewalDate: r.RenewalDate,
	}
	if r.Status == "" {
		m.Status = StatusInactive
	} else {
		m.Status = ParseStatus(r.Status)
	}
	return m
}
