package workflow

import (
	"testing"

	domainerrors "kinconnect/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMachine_ForwardPath(t *testing.T) {
	var m Machine
	facts := Facts{MemberCount: 2, TotalCents: 5000}

	for _, want := range []Step{StepUpload, StepRoster, StepDesign, StepShop, StepCheckout} {
		require.NoError(t, m.Next(facts))
		assert.Equal(t, want, m.Current())
	}

	err := m.Next(facts)
	require.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
	assert.Equal(t, StepCheckout, m.Current())

	require.NoError(t, m.Complete())
	assert.Equal(t, StepSuccess, m.Current())
	assert.True(t, m.Terminal())
}

func TestMachine_NextPreconditions(t *testing.T) {
	tests := []struct {
		name  string
		from  Step
		facts Facts
	}{
		{name: "upload needs a member", from: StepUpload, facts: Facts{}},
		{name: "roster needs a member", from: StepRoster, facts: Facts{}},
		{name: "shop needs a positive total", from: StepShop, facts: Facts{MemberCount: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Restore(tt.from)
			err := m.Next(tt.facts)
			require.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
			assert.Equal(t, tt.from, m.Current())
		})
	}
}

func TestMachine_BackFromRosterReturnsToUpload(t *testing.T) {
	m := Restore(StepRoster)

	require.NoError(t, m.Back())
	assert.Equal(t, StepUpload, m.Current())
}

func TestMachine_BackAtLandingIsNoop(t *testing.T) {
	var m Machine

	require.NoError(t, m.Back())
	assert.Equal(t, StepLanding, m.Current())
}

func TestMachine_JumpTo(t *testing.T) {
	m := Restore(StepShop)

	err := m.JumpTo(StepCheckout)
	require.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
	assert.Equal(t, StepShop, m.Current())

	require.NoError(t, m.JumpTo(StepShop))
	require.NoError(t, m.JumpTo(StepRoster))
	assert.Equal(t, StepRoster, m.Current())

	err = m.JumpTo(Step("NOWHERE"))
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestMachine_SuccessIsTerminal(t *testing.T) {
	m := Restore(StepSuccess)

	require.ErrorIs(t, m.Back(), domainerrors.ErrInvalidTransition)
	require.ErrorIs(t, m.Next(Facts{MemberCount: 1, TotalCents: 1}), domainerrors.ErrInvalidTransition)
	require.ErrorIs(t, m.JumpTo(StepLanding), domainerrors.ErrInvalidTransition)
	require.ErrorIs(t, m.Complete(), domainerrors.ErrInvalidTransition)
	assert.Equal(t, StepSuccess, m.Current())

	m.Reset()
	assert.Equal(t, StepLanding, m.Current())
}

func TestMachine_Allows(t *testing.T) {
	tests := []struct {
		step    Step
		action  Action
		allowed bool
	}{
		{step: StepUpload, action: ActionAnalyzePhoto, allowed: true},
		{step: StepRoster, action: ActionAnalyzePhoto, allowed: false},
		{step: StepShop, action: ActionEditRoster, allowed: true},
		{step: StepSuccess, action: ActionEditRoster, allowed: false},
		{step: StepDesign, action: ActionGenerate, allowed: true},
		{step: StepShop, action: ActionGenerate, allowed: false},
		{step: StepCheckout, action: ActionPlaceOrder, allowed: true},
		{step: StepShop, action: ActionPlaceOrder, allowed: false},
		{step: StepSuccess, action: ActionShare, allowed: true},
	}

	for _, tt := range tests {
		t.Run(string(tt.step)+"/"+string(tt.action), func(t *testing.T) {
			m := Restore(tt.step)
			assert.Equal(t, tt.allowed, m.Allows(tt.action))
			if tt.allowed {
				assert.NoError(t, m.Require(tt.action))
			} else {
				assert.ErrorIs(t, m.Require(tt.action), domainerrors.ErrActionNotAllowed)
			}
		})
	}
}

func TestParseStep(t *testing.T) {
	step, ok := ParseStep("roster")
	require.True(t, ok)
	assert.Equal(t, StepRoster, step)

	_, ok = ParseStep("payment")
	assert.False(t, ok)
}
