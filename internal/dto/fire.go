package dto

import "github.com/shopspring/decimal"

// FireImpactRequest asks the server how a hypothetical change to the
// monthly numbers would move the projection.
type FireImpactRequest struct {
	MonthlyExpenseDelta decimal.Decimal `json:"monthly_expense_delta"`
	MonthlySavingsDelta decimal.Decimal `json:"monthly_savings_delta"`
}

// FireImpactResponse is the server's delta projection.
type FireImpactResponse struct {
	YearsToFireDelta       float64 `json:"years_to_fire_delta"`
	ProjectedRetirementAge float64 `json:"projected_retirement_age"`
}

// AskFiRequest is one chat turn sent to the advisor endpoint.
type AskFiRequest struct {
	Message string `json:"message" validate:"required"`
}

// AskFiResponse is the advisor's reply.
type AskFiResponse struct {
	Reply string `json:"reply"`
}

// ChatMessage is one persisted advisor exchange turn.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
