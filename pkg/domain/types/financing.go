package types

// FinancingType represents the funding channel referenced by a message
type FinancingType string

const (
	FinancingDirect  FinancingType = "direct"
	FinancingOPCO    FinancingType = "opco"
	FinancingCPF     FinancingType = "cpf"
	FinancingUnknown FinancingType = "unknown"
)

// IsValid checks if the financing type is valid
func (f FinancingType) IsValid() bool {
	switch f {
	case FinancingDirect, FinancingOPCO, FinancingCPF, FinancingUnknown:
		return true
	default:
		return false
	}
}

// String returns the string representation of the financing type
func (f FinancingType) String() string {
	return string(f)
}
