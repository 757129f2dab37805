package models

// Country is an entry from /api/countries.
type Country struct {
	Name   string `json:"name"`
	Region string `json:"region"`
}

// CostInput is the payload for POST /api/costs. The index computation
// itself lives server-side; the client only supplies base figures.
type CostInput struct {
	BaseRent      float64  `json:"base_rent"`
	BaseLabor     float64  `json:"base_labor"`
	BaseUtilities float64  `json:"base_utilities"`
	BaseLogistics float64  `json:"base_logistics"`
	BaseTax       float64  `json:"base_tax"`
	Countries     []string `json:"countries"`
}

// CostEstimate is one country's row in the comparison result.
type CostEstimate struct {
	Country      string  `json:"country"`
	Region       string  `json:"region"`
	Rent         float64 `json:"rent"`
	Labor        float64 `json:"labor"`
	Utilities    float64 `json:"utilities"`
	Logistics    float64 `json:"logistics"`
	Tax          float64 `json:"tax"`
	TotalMonthly float64 `json:"total_monthly"`
	CostIndex    float64 `json:"cost_index"`
}
