// Package workflow is the wizard's step state machine. It only gates which
// steps and actions are reachable and never calls a vendor.
package workflow

import (
	"strings"

	domainerrors "kinconnect/internal/domain/errors"
)

// Step is one wizard screen.
type Step string

const (
	StepLanding  Step = "LANDING"
	StepUpload   Step = "UPLOAD"
	StepRoster   Step = "ROSTER"
	StepDesign   Step = "DESIGN"
	StepShop     Step = "SHOP"
	StepCheckout Step = "CHECKOUT"
	StepSuccess  Step = "SUCCESS"
)

// Steps is the fixed linear order of the wizard.
var Steps = []Step{StepLanding, StepUpload, StepRoster, StepDesign, StepShop, StepCheckout, StepSuccess}

// ParseStep accepts a step name in any case.
func ParseStep(s string) (Step, bool) {
	candidate := Step(strings.ToUpper(strings.TrimSpace(s)))
	if candidate.index() < 0 {
		return "", false
	}

	return candidate, true
}

func (s Step) index() int {
	for i, step := range Steps {
		if step == s {
			return i
		}
	}

	return -1
}

// Facts are the parts of the order draft that forward transitions depend on.
type Facts struct {
	MemberCount int
	TotalCents  int64
}

// Action is a user operation gated by the current step.
type Action string

const (
	ActionAnalyzePhoto Action = "analyze_photo"
	ActionEditRoster   Action = "edit_roster"
	ActionEditDesign   Action = "edit_design"
	ActionGenerate     Action = "generate"
	ActionEditCheckout Action = "edit_checkout"
	ActionPreview      Action = "preview"
	ActionPlaceOrder   Action = "place_order"
	ActionShare        Action = "share"
)

var actionSteps = map[Action][]Step{
	ActionAnalyzePhoto: {StepUpload},
	ActionEditRoster:   {StepUpload, StepRoster, StepDesign, StepShop, StepCheckout},
	ActionEditDesign:   {StepDesign, StepShop},
	ActionGenerate:     {StepDesign},
	ActionEditCheckout: {StepCheckout},
	ActionPreview:      {StepCheckout},
	ActionPlaceOrder:   {StepCheckout},
	ActionShare:        {StepShop, StepCheckout, StepSuccess},
}

// Machine holds the current step. The zero value starts at LANDING.
type Machine struct {
	current Step
}

// Restore returns a machine positioned at step, or at LANDING for an unknown step.
func Restore(step Step) Machine {
	if step.index() < 0 {
		return Machine{current: StepLanding}
	}

	return Machine{current: step}
}

func (m Machine) Current() Step {
	if m.current == "" {
		return StepLanding
	}

	return m.current
}

// Terminal reports whether the machine reached SUCCESS.
func (m Machine) Terminal() bool {
	return m.Current() == StepSuccess
}

// Next advances one step when the current step's precondition holds.
// CHECKOUT never advances through Next: only Complete reaches SUCCESS.
func (m *Machine) Next(facts Facts) error {
	switch m.Current() {
	case StepLanding, StepDesign:
	case StepUpload, StepRoster:
		if facts.MemberCount < 1 {
			return domainerrors.ErrInvalidTransition.WithDetails("add at least one family member first")
		}
	case StepShop:
		if facts.TotalCents <= 0 {
			return domainerrors.ErrInvalidTransition.WithDetails("order total must be greater than zero")
		}
	case StepCheckout:
		return domainerrors.ErrInvalidTransition.WithDetails("checkout completes only by placing an order")
	case StepSuccess:
		return domainerrors.ErrInvalidTransition.WithDetails("order already completed, start over to make changes")
	}

	m.current = Steps[m.Current().index()+1]

	return nil
}

// Back moves one step earlier. It is a no-op at LANDING and rejected at SUCCESS.
func (m *Machine) Back() error {
	switch m.Current() {
	case StepLanding:
		return nil
	case StepSuccess:
		return domainerrors.ErrInvalidTransition.WithDetails("order already completed, start over to make changes")
	}

	m.current = Steps[m.Current().index()-1]

	return nil
}

// JumpTo moves to any step at or before the current one.
func (m *Machine) JumpTo(target Step) error {
	if m.Terminal() {
		return domainerrors.ErrInvalidTransition.WithDetails("order already completed, start over to make changes")
	}

	idx := target.index()
	if idx < 0 {
		return domainerrors.ErrValidationFailed.WithDetails("unknown step " + string(target))
	}
	if idx > m.Current().index() {
		return domainerrors.ErrInvalidTransition.WithDetails("cannot skip ahead to " + string(target))
	}

	m.current = target

	return nil
}

// Complete records a successful order and moves CHECKOUT to SUCCESS.
func (m *Machine) Complete() error {
	if m.Current() != StepCheckout {
		return domainerrors.ErrInvalidTransition.WithDetails("orders are placed from checkout")
	}

	m.current = StepSuccess

	return nil
}

// Reset returns to LANDING. It is the only way out of SUCCESS.
func (m *Machine) Reset() {
	m.current = StepLanding
}

// Allows reports whether action is available at the current step.
func (m Machine) Allows(action Action) bool {
	for _, step := range actionSteps[action] {
		if step == m.Current() {
			return true
		}
	}

	return false
}

// Require is Allows as an error.
func (m Machine) Require(action Action) error {
	if m.Allows(action) {
		return nil
	}

	return domainerrors.ErrActionNotAllowed.WithDetails(string(action) + " is not available at " + string(m.Current()))
}
