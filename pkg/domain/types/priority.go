package types

// PriorityTier represents the severity level of a category. Tiers govern
// the order of keyword evaluation and the urgency reported downstream.
type PriorityTier string

const (
	PriorityCritical PriorityTier = "CRITICAL"
	PriorityHigh     PriorityTier = "HIGH"
	PriorityMedium   PriorityTier = "MEDIUM"
	PriorityLow      PriorityTier = "LOW"
)

// AllPriorityTiers returns all tiers in evaluation order, most urgent first
func AllPriorityTiers() []PriorityTier {
	return []PriorityTier{
		PriorityCritical,
		PriorityHigh,
		PriorityMedium,
		PriorityLow,
	}
}

// IsValid checks if the priority tier is valid
func (p PriorityTier) IsValid() bool {
	switch p {
	case PriorityCritical, PriorityHigh, PriorityMedium, PriorityLow:
		return true
	default:
		return false
	}
}

// String returns the string representation of the priority tier
func (p PriorityTier) String() string {
	return string(p)
}
