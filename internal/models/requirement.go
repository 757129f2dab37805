package models

// Owner identifies who posted a requirement.
type Owner struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Requirement is an investment/partnership listing from /api/requirements.
// Budget is a two-element [min, max] array; either bound may be null.
type Requirement struct {
	ID              int64      `json:"id"`
	Title           string     `json:"title"`
	Sector          string     `json:"sector,omitempty"`
	MainBrand       string     `json:"main_brand,omitempty"`
	SubBrand        string     `json:"sub_brand,omitempty"`
	Country         string     `json:"country,omitempty"`
	City            string     `json:"city,omitempty"`
	Budget          []*float64 `json:"budget"`
	PartnershipType string     `json:"partnership_type,omitempty"`
	Description     string     `json:"description,omitempty"`
	Owner           Owner      `json:"owner"`
	CreatedAt       Timestamp  `json:"created_at"`
}

// NewRequirement is the payload for POST /api/requirements.
type NewRequirement struct {
	Title           string  `json:"title"`
	Sector          string  `json:"sector,omitempty"`
	MainBrand       string  `json:"main_brand,omitempty"`
	SubBrand        string  `json:"sub_brand,omitempty"`
	Description     string  `json:"description,omitempty"`
	Country         string  `json:"country,omitempty"`
	City            string  `json:"city,omitempty"`
	PartnershipType string  `json:"partnership_type,omitempty"`
	BudgetMin       float64 `json:"budget_min"`
	BudgetMax       float64 `json:"budget_max"`
}

// RequirementFilter narrows GET /api/requirements server-side.
type RequirementFilter struct {
	Sector          string
	Country         string
	Query           string
	PartnershipType string
}

// BusinessProfile is the payload for POST /api/business.
type BusinessProfile struct {
	Name               string  `json:"name"`
	Sector             string  `json:"sector,omitempty"`
	Country            string  `json:"country,omitempty"`
	City               string  `json:"city,omitempty"`
	InvestmentNeedsMin float64 `json:"investment_needs_min"`
	InvestmentNeedsMax float64 `json:"investment_needs_max"`
	BrandStory         string  `json:"brand_story,omitempty"`
	ExpansionPotential string  `json:"expansion_potential,omitempty"`
}
