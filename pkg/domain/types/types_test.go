package types_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/briareos/pkg/domain/types"
)

func TestCategoryIDValidate(t *testing.T) {
	cases := []struct {
		name    string
		id      types.CategoryID
		wantErr bool
	}{
		{"valid simple", types.CategoryGeneral, false},
		{"valid hyphenated", types.CategoryPaymentTracking, false},
		{"empty", types.CategoryID(""), true},
		{"uppercase", types.CategoryID("Payment"), true},
		{"trailing hyphen", types.CategoryID("payment-"), true},
		{"underscore", types.CategoryID("payment_tracking"), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.id.Validate()
			if tc.wantErr {
				gt.Error(t, err)
			} else {
				gt.NoError(t, err)
			}
		})
	}
}

func TestAgentType(t *testing.T) {
	gt.Array(t, types.AllAgentTypes()).Length(7)

	for _, agent := range types.AllAgentTypes() {
		gt.Bool(t, agent.IsValid()).True()
	}
	gt.Bool(t, types.AgentType("unknown-agent").IsValid()).False()

	parsed, err := types.ParseAgentType("payment")
	gt.NoError(t, err)
	gt.Value(t, parsed).Equal(types.AgentPayment)

	_, err = types.ParseAgentType("invalid")
	gt.Error(t, err)
}

func TestPriorityTierOrder(t *testing.T) {
	tiers := types.AllPriorityTiers()
	gt.Array(t, tiers).Length(4)
	gt.Value(t, tiers[0]).Equal(types.PriorityCritical)
	gt.Value(t, tiers[3]).Equal(types.PriorityLow)
}

func TestSessionStatusTransitions(t *testing.T) {
	cases := []struct {
		name string
		from types.SessionStatus
		to   types.SessionStatus
		ok   bool
	}{
		{"active to escalated", types.SessionStatusActive, types.SessionStatusEscalated, true},
		{"active to completed", types.SessionStatusActive, types.SessionStatusCompleted, true},
		{"escalated to completed", types.SessionStatusEscalated, types.SessionStatusCompleted, true},
		{"escalated back to active", types.SessionStatusEscalated, types.SessionStatusActive, false},
		{"completed back to active", types.SessionStatusCompleted, types.SessionStatusActive, false},
		{"completed to escalated", types.SessionStatusCompleted, types.SessionStatusEscalated, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gt.Value(t, tc.from.CanTransitionTo(tc.to)).Equal(tc.ok)
		})
	}
}

func TestParseSessionStatus(t *testing.T) {
	status, err := types.ParseSessionStatus("escalated")
	gt.NoError(t, err)
	gt.Value(t, status).Equal(types.SessionStatusEscalated)

	_, err = types.ParseSessionStatus("inactive")
	gt.Error(t, err)
}

func TestMessageRole(t *testing.T) {
	gt.Bool(t, types.RoleUser.IsValid()).True()
	gt.Bool(t, types.RoleAssistant.IsValid()).True()
	gt.Bool(t, types.MessageRole("system").IsValid()).False()
}
