package detect

import (
	"github.com/secmon-lab/briareos/pkg/domain/model"
	"github.com/secmon-lab/briareos/pkg/domain/types"
)

// PaymentDelayThreshold is the pending-payment age, in days, beyond
// which a payment-tracking conversation escalates. The comparison is
// strict: exactly this many days does not escalate.
const PaymentDelayThreshold = 90

// ShouldEscalate decides whether a classified message requires human
// escalation. Critical-tier categories and the explicit escalation
// categories always escalate; payment tracking escalates only past the
// delay threshold.
func (e *Engine) ShouldEscalate(category types.CategoryID, payment *model.PaymentContext) bool {
	if e.tax.Tier(category) == types.PriorityCritical {
		return true
	}

	switch category {
	case types.CategoryAdminEscalation, types.CategoryCommercialEscalation:
		return true
	case types.CategoryPaymentTracking:
		return payment != nil && payment.TotalDays > PaymentDelayThreshold
	}
	return false
}

// EscalationType returns the escalation channel for a category
func (e *Engine) EscalationType(category types.CategoryID) types.EscalationType {
	switch category {
	case types.CategoryAdminEscalation:
		return types.EscalationAdmin
	case types.CategoryCommercialEscalation:
		return types.EscalationCommercial
	case types.CategoryAggressiveBehavior:
		return types.EscalationQuality
	case types.CategoryCPFBlocked, types.CategoryOPCOBlocked:
		return types.EscalationCPFSpecialist
	default:
		return types.EscalationGeneral
	}
}
