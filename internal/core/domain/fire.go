package domain

import "github.com/shopspring/decimal"

// FireSnapshot is the server-computed summary of net worth and FIRE
// progress. Read-only on the client; only classified for display.
type FireSnapshot struct {
	HasProfile             bool            `json:"hasProfile"`
	NetWorth               decimal.Decimal `json:"netWorth"`
	TotalAssets            decimal.Decimal `json:"totalAssets"`
	TotalDebts             decimal.Decimal `json:"totalDebts"`
	FireNumber             decimal.Decimal `json:"fireNumber"`
	MonthlySavings         decimal.Decimal `json:"monthlySavings"`
	ProjectedRetirementAge float64         `json:"projectedRetirementAge"`
	YearsToFire            float64         `json:"yearsToFire"`
	OnTrack                bool            `json:"onTrack"`
	FireProgress           float64         `json:"fireProgress"` // percent, may exceed 100
	SavingsRate            float64         `json:"savingsRate"`  // percent
	EmergencyMonths        float64         `json:"emergencyMonths"`
}
