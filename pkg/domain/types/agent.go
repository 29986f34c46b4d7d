package types

import "fmt"

// AgentType represents a specialized handler class a category is routed to
type AgentType string

const (
	AgentGeneral    AgentType = "general"
	AgentAmbassador AgentType = "ambassador"
	AgentLearner    AgentType = "learner"
	AgentProspect   AgentType = "prospect"
	AgentPayment    AgentType = "payment"
	AgentCPFBlocked AgentType = "cpf_blocked"
	AgentQuality    AgentType = "quality"
)

// AllAgentTypes returns all valid agent types
func AllAgentTypes() []AgentType {
	return []AgentType{
		AgentGeneral,
		AgentAmbassador,
		AgentLearner,
		AgentProspect,
		AgentPayment,
		AgentCPFBlocked,
		AgentQuality,
	}
}

// IsValid checks if the agent type is valid
func (a AgentType) IsValid() bool {
	switch a {
	case AgentGeneral,
		AgentAmbassador,
		AgentLearner,
		AgentProspect,
		AgentPayment,
		AgentCPFBlocked,
		AgentQuality:
		return true
	default:
		return false
	}
}

// Specialization returns the human description of what the agent handles
func (a AgentType) Specialization() string {
	switch a {
	case AgentGeneral:
		return "Accueil et orientation générale"
	case AgentAmbassador:
		return "Programme ambassadeur et processus d'affiliation"
	case AgentLearner:
		return "Catalogue formations et processus d'inscription"
	case AgentProspect:
		return "Qualification prospects et devis commerciaux"
	case AgentPayment:
		return "Suivi paiements, factures et délais"
	case AgentCPFBlocked:
		return "Déblocage dossiers CPF et OPCO"
	case AgentQuality:
		return "Contrôle qualité, escalades et gestion conflits"
	default:
		return "Spécialisation non définie"
	}
}

// String returns the string representation of the agent type
func (a AgentType) String() string {
	return string(a)
}

// ParseAgentType parses a string into an AgentType
func ParseAgentType(s string) (AgentType, error) {
	agent := AgentType(s)
	if !agent.IsValid() {
		return "", fmt.Errorf("invalid agent type: %s", s)
	}
	return agent, nil
}
