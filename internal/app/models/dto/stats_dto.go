package dto

// AgeBrackets partitions records by whole-year age: under 15, 15 through 64
// inclusive, 65 and over. Records with no birth date count as age 0.
type AgeBrackets struct {
	Under15    int `json:"under15"`
	From15To64 int `json:"from15To64"`
	Over65     int `json:"over65"` // age >= 65
}

// SexCounts tallies M and F only; any other stored value is excluded from the
// by-sex tally but still included in totals.
type SexCounts struct {
	Male   int `json:"male"`
	Female int `json:"female"`
}

// ParticipantStats aggregates triage counts for one campaign
type ParticipantStats struct {
	Total     int         `json:"total"`
	Awaiting  int         `json:"awaiting"`
	Confirmed int         `json:"confirmed"`
	Declined  int         `json:"declined"`
	BySex     SexCounts   `json:"bySex"`
	ByAge     AgeBrackets `json:"byAge"`
}

// BeneficiaryStats aggregates decision counts for one campaign
type BeneficiaryStats struct {
	Total    int         `json:"total"`
	Accepted int         `json:"accepted"`
	Pending  int         `json:"pending"`
	Refused  int         `json:"refused"`
	BySex    SexCounts   `json:"bySex"`
	ByAge    AgeBrackets `json:"byAge"`
}

// DeviceStats is only populated for hearing-aid campaigns
type DeviceStats struct {
	Unilateral  int `json:"unilateral"`
	Bilateral   int `json:"bilateral"`
	DeviceCount int `json:"deviceCount"` // unilateral×1 + bilateral×2
}

// CampaignStatsResponse is the complete statistics payload for a campaign
type CampaignStatsResponse struct {
	Campaign       CampaignResponse `json:"campaign"`
	Participants   ParticipantStats `json:"participants"`
	Beneficiaries  BeneficiaryStats `json:"beneficiaries"`
	CoverageRate   float64          `json:"coverageRate"`   // accepted / total participants × 100
	AcceptanceRate float64          `json:"acceptanceRate"` // accepted / total beneficiaries × 100
	UnitPrice      float64          `json:"unitPrice"`      // budget / accepted
	CreditNeeded   float64          `json:"creditNeeded"`   // pending × unit price
	Devices        *DeviceStats     `json:"devices,omitempty"`
}
