package types

// EscalationType represents the human handoff channel for an escalated session
type EscalationType string

const (
	EscalationAdmin         EscalationType = "admin"
	EscalationCommercial    EscalationType = "commercial"
	EscalationQuality       EscalationType = "quality"
	EscalationCPFSpecialist EscalationType = "cpf_specialist"
	EscalationGeneral       EscalationType = "general"
)

// IsValid checks if the escalation type is valid
func (e EscalationType) IsValid() bool {
	switch e {
	case EscalationAdmin, EscalationCommercial, EscalationQuality, EscalationCPFSpecialist, EscalationGeneral:
		return true
	default:
		return false
	}
}

// String returns the string representation of the escalation type
func (e EscalationType) String() string {
	return string(e)
}
