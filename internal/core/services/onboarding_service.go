package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/finwealth4all/enoughfi-client/internal/apperrors"
	"github.com/finwealth4all/enoughfi-client/internal/core/domain"
	"github.com/finwealth4all/enoughfi-client/internal/core/ports"
	"github.com/shopspring/decimal"
)

// WizardStep enumerates the five screens of the onboarding wizard.
type WizardStep int

const (
	StepAssets WizardStep = iota
	StepDebts
	StepIncome
	StepExpenses
	StepPlanning
)

const wizardStepCount = 5

// ExpenseMode selects how the expenses step is filled in.
type ExpenseMode string

const (
	ExpenseQuick    ExpenseMode = "quick"    // one rough monthly number
	ExpenseDetailed ExpenseMode = "detailed" // per-category breakdown
)

var (
	// ErrStepIncomplete is returned by Next when the current step's gate fails.
	ErrStepIncomplete = errors.New("current step is incomplete")
	// ErrSkipUnavailable is returned when a first-time registration tries to skip.
	ErrSkipUnavailable = errors.New("skip is not available during first-time setup")
	// ErrRetirementAge is returned when the target age does not exceed the current age.
	ErrRetirementAge = errors.New("target retirement age must be greater than current age")
)

// desiredIncomeFactor is the default desired retirement income as a share
// of monthly expenses when the user leaves the field empty.
var desiredIncomeFactor = decimal.NewFromFloat(0.7)

// OnboardingWizard is the linear five-step profile builder. The only state
// beyond the accumulated profile is the current step index and the active
// expense entry mode.
type OnboardingWizard struct {
	api       ports.OnboardingAPIFacade
	allowSkip bool

	step    WizardStep
	mode    ExpenseMode
	profile domain.OnboardingProfile
}

// NewOnboardingWizard starts a wizard at the assets step. allowSkip should
// be true only for users who already had an account before the wizard
// opened, not for first-time registration.
func NewOnboardingWizard(api ports.OnboardingAPIFacade, allowSkip bool) *OnboardingWizard {
	return &OnboardingWizard{
		api:       api,
		allowSkip: allowSkip,
		mode:      ExpenseQuick,
		profile: domain.OnboardingProfile{
			ExpenseBreakdown:    map[string]decimal.Decimal{},
			CurrentAge:          30,
			TargetRetirementAge: 45,
		},
	}
}

// Step returns the current step index.
func (w *OnboardingWizard) Step() WizardStep { return w.step }

// Mode returns the active expense entry mode.
func (w *OnboardingWizard) Mode() ExpenseMode { return w.mode }

// Profile exposes the accumulated profile for editing. The wizard is
// single-threaded by design, matching the event-driven UI it backs.
func (w *OnboardingWizard) Profile() *domain.OnboardingProfile { return &w.profile }

// SetMode switches between quick and detailed expense entry. Values already
// entered in the other mode are preserved; only the mode active at
// submission decides the submitted total.
func (w *OnboardingWizard) SetMode(mode ExpenseMode) { w.mode = mode }

// SetExpenseCategory records one slot of the detailed breakdown.
func (w *OnboardingWizard) SetExpenseCategory(category string, amount decimal.Decimal) {
	w.profile.ExpenseBreakdown[category] = amount
}

// CanProceed reports whether the current step's gate passes. Assets and
// debts are unconditionally passable; zero is a valid answer there.
func (w *OnboardingWizard) CanProceed() bool {
	switch w.step {
	case StepAssets, StepDebts:
		return true
	case StepIncome:
		return w.profile.MonthlyIncome.IsPositive()
	case StepExpenses:
		if w.mode == ExpenseQuick {
			return w.profile.MonthlyExpenses.IsPositive()
		}
		return w.profile.BreakdownTotal().IsPositive()
	case StepPlanning:
		return w.profile.CurrentAge > 0
	}
	return true
}

// Next advances one step, or returns ErrStepIncomplete when the gate fails.
// Calling Next on the final step is invalid; use Submit.
func (w *OnboardingWizard) Next() error {
	if !w.CanProceed() {
		return ErrStepIncomplete
	}
	if w.step < wizardStepCount-1 {
		w.step++
	}
	return nil
}

// Back moves one step back, flooring at the first step.
func (w *OnboardingWizard) Back() {
	if w.step > 0 {
		w.step--
	}
}

// Submit finalizes and persists the whole profile in a single call. In
// detailed mode the submitted monthly_expenses is the breakdown sum; an
// unset desired income defaults to 70% of monthly expenses. On failure the
// wizard stays on the final step with all state intact.
func (w *OnboardingWizard) Submit(ctx context.Context) (*domain.OnboardingProfile, error) {
	if !w.CanProceed() {
		return nil, ErrStepIncomplete
	}
	if w.profile.TargetRetirementAge <= w.profile.CurrentAge {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, ErrRetirementAge)
	}

	final := w.profile
	final.ExpenseBreakdown = make(map[string]decimal.Decimal, len(w.profile.ExpenseBreakdown))
	for k, v := range w.profile.ExpenseBreakdown {
		final.ExpenseBreakdown[k] = v
	}
	if w.mode == ExpenseDetailed {
		final.MonthlyExpenses = final.BreakdownTotal()
	}
	if final.DesiredMonthlyIncome.IsZero() {
		final.DesiredMonthlyIncome = final.MonthlyExpenses.Mul(desiredIncomeFactor)
	}

	if err := w.api.SaveOnboarding(ctx, final); err != nil {
		return nil, err
	}
	return &final, nil
}

// Skip marks onboarding as explicitly skipped server-side, bypassing every
// step gate. Only available to users who already had an account.
func (w *OnboardingWizard) Skip(ctx context.Context) error {
	if !w.allowSkip {
		return ErrSkipUnavailable
	}
	return w.api.SkipOnboarding(ctx)
}
