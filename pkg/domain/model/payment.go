package model

import (
	"time"

	"github.com/secmon-lab/briareos/pkg/domain/types"
)

// PaymentContextKey is the context-data key under which the payment
// context is carried across turns of a payment conversation.
const PaymentContextKey = "payment_context"

// PaymentContext captures the payment situation referenced by a message:
// the funding channel and how long the user reports having waited.
type PaymentContext struct {
	Financing  types.FinancingType `json:"financing_type"`
	Durations  DurationSet         `json:"durations,omitempty"`
	TotalDays  int                 `json:"total_days"`
	RecordedAt time.Time           `json:"recorded_at"`
}
