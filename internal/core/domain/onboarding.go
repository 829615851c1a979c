package domain

import "github.com/shopspring/decimal"

// OnboardingProfile is the flat record accumulated across the five wizard
// steps and submitted once as a whole.
type OnboardingProfile struct {
	// Assets
	BankBalance     decimal.Decimal `json:"bank_balance"`
	Investments     decimal.Decimal `json:"investments"`
	PropertyValue   decimal.Decimal `json:"property_value"`
	RetirementFunds decimal.Decimal `json:"retirement_funds"`
	LoansGiven      decimal.Decimal `json:"loans_given"`
	OtherAssets     decimal.Decimal `json:"other_assets"`

	// Liabilities
	HomeLoan         decimal.Decimal `json:"home_loan"`
	CreditCardDebt   decimal.Decimal `json:"credit_card_debt"`
	OtherLoans       decimal.Decimal `json:"other_loans"`
	LoansFromFriends decimal.Decimal `json:"loans_from_friends"`

	// Income
	MonthlyIncome decimal.Decimal `json:"monthly_income"`
	OtherIncome   decimal.Decimal `json:"other_income"`

	// Expenses: either the single scalar or the per-category breakdown.
	MonthlyExpenses  decimal.Decimal            `json:"monthly_expenses"`
	ExpenseBreakdown map[string]decimal.Decimal `json:"expense_breakdown"`

	// Planning
	CurrentAge           int             `json:"current_age"`
	TargetRetirementAge  int             `json:"target_retirement_age"`
	DesiredMonthlyIncome decimal.Decimal `json:"desired_monthly_income"`
}

// BreakdownTotal sums the detailed expense categories.
func (p OnboardingProfile) BreakdownTotal() decimal.Decimal {
	total := decimal.Zero
	for _, v := range p.ExpenseBreakdown {
		total = total.Add(v)
	}
	return total
}

// ExpenseCategory identifies one slot of the detailed expense breakdown.
type ExpenseCategory struct {
	ID    string
	Label string
}

// ExpenseCategories lists the breakdown slots offered by the wizard.
var ExpenseCategories = []ExpenseCategory{
	{ID: "rent", Label: "Rent / Home EMI"},
	{ID: "groceries", Label: "Groceries & Household"},
	{ID: "utilities", Label: "Utilities"},
	{ID: "transport", Label: "Transport / Fuel"},
	{ID: "dining", Label: "Dining Out"},
	{ID: "shopping", Label: "Shopping & Personal"},
	{ID: "health", Label: "Health / Insurance"},
	{ID: "education", Label: "Education"},
	{ID: "sip", Label: "SIP / Monthly Investments"},
	{ID: "remittance", Label: "Sending to Family"},
	{ID: "entertainment", Label: "Entertainment / Subscriptions"},
	{ID: "travel", Label: "Travel"},
	{ID: "other", Label: "Other Expenses"},
}
