package taxonomy

import "github.com/secmon-lab/briareos/pkg/domain/types"

// Spec describes one category of the catalog: its keyword set, priority
// tier, routed agent and optional predecessor constraint. Keywords are
// matched as case-insensitive substrings of the normalized message; the
// corpus is French, matching the conversations the system handles.
type Spec struct {
	ID           types.CategoryID
	Description  string
	Keywords     []string
	Tier         types.PriorityTier // empty = untiered, reachable only via follow-up rules
	Agent        types.AgentType
	Predecessors []types.CategoryID // nil = no sequence constraint
}

// defaultCatalog is the built-in category catalog. Order matters: the
// flattened priority scan preserves catalog order within each tier.
var defaultCatalog = []Spec{
	// CRITICAL
	{
		ID:          types.CategoryAggressiveBehavior,
		Description: "Comportement agressif",
		Keywords: []string{
			"agressif", "énervé", "fâché", "colère", "insulte", "grossier", "impoli",
			"nuls", "nul", "merde", "putain", "con", "connard", "salop", "salope",
			"incompétent", "incompétents", "inutile",
		},
		Tier:  types.PriorityCritical,
		Agent: types.AgentQuality,
	},
	{
		ID:          types.CategoryLegal,
		Description: "Aspects légaux",
		Keywords:    []string{"légal", "droit", "juridique", "avocat", "procédure", "recours"},
		Tier:        types.PriorityCritical,
		Agent:       types.AgentQuality,
	},
	{
		ID:          types.CategoryCPFBlocked,
		Description: "CPF bloqué",
		Keywords:    []string{"cpf bloqué", "dossier bloqué", "blocage cpf", "problème cpf", "délai cpf"},
		Tier:        types.PriorityCritical,
		Agent:       types.AgentCPFBlocked,
	},
	{
		ID:          types.CategoryOPCOBlocked,
		Description: "OPCO",
		Keywords:    []string{"opco", "opérateur compétences", "délai opco", "blocage opco", "problème opco"},
		Tier:        types.PriorityCritical,
		Agent:       types.AgentCPFBlocked,
	},

	// HIGH
	{
		ID:          types.CategoryPaymentTracking,
		Description: "Suivi paiement et factures",
		Keywords: []string{
			"paiement", "payé", "payée", "payer", "argent", "facture", "débit", "prélèvement",
			"virement", "chèque", "carte bancaire", "cb", "mastercard", "visa", "pas été payé",
		},
		Tier:  types.PriorityHigh,
		Agent: types.AgentPayment,
	},
	{
		ID:          types.CategoryCPFQuestion,
		Description: "Question CPF",
		Keywords: []string{
			"cpf", "compte personnel formation", "formation cpf", "financement cpf",
			"droit formation", "mon compte formation",
		},
		Tier:  types.PriorityHigh,
		Agent: types.AgentCPFBlocked,
	},
	{
		ID:          types.CategoryAmbassadorApply,
		Description: "Devenir ambassadeur",
		Keywords: []string{
			"devenir ambassadeur", "comment devenir ambassadeur", "postuler ambassadeur",
			"candidature ambassadeur", "rejoindre ambassadeur",
		},
		Tier:  types.PriorityHigh,
		Agent: types.AgentAmbassador,
	},
	{
		ID:          types.CategoryAmbassadorDefinition,
		Description: "C'est quoi un ambassadeur",
		Keywords: []string{
			"c'est quoi un ambassadeur", "qu'est ce qu'un ambassadeur", "définition ambassadeur",
		},
		Tier:  types.PriorityHigh,
		Agent: types.AgentAmbassador,
	},
	{
		ID:          types.CategoryHumanContact,
		Description: "Parler à un humain",
		Keywords: []string{
			"parler humain", "contacter humain", "appeler", "téléphoner", "conseiller",
			"assistant", "aide humaine",
		},
		Tier:  types.PriorityHigh,
		Agent: types.AgentGeneral,
	},
	{
		ID:          types.CategoryCourseCatalog,
		Description: "Formations disponibles",
		Keywords: []string{
			"formations disponibles", "catalogue formation", "programmes formation",
			"spécialités", "domaines formation", "c'est quoi vos formations", "quelles sont vos formations",
		},
		Tier:  types.PriorityHigh,
		Agent: types.AgentLearner,
	},
	{
		ID:          types.CategoryOfferOverview,
		Description: "Comprendre les offres",
		Keywords: []string{
			"prospect", "devis", "tarif", "prix", "coût", "formation", "programme",
			"offre", "catalogue",
		},
		Tier:  types.PriorityHigh,
		Agent: types.AgentProspect,
	},

	// MEDIUM
	{
		ID:          types.CategoryAffiliateDiscovery,
		Description: "Découverte programme affiliation",
		Keywords: []string{
			"affiliation", "affilié", "affiliée", "programme affiliation", "mail affiliation",
			"email affiliation", "courriel affiliation",
		},
		Tier:  types.PriorityMedium,
		Agent: types.AgentAmbassador,
	},
	{
		ID:          types.CategoryAffiliateOverview,
		Description: "L'affiliation c'est quoi",
		Keywords: []string{
			"c'est quoi un ambassadeur", "qu'est ce qu'un ambassadeur", "définition ambassadeur",
			"ambassadeur définition", "expliquer ambassadeur",
		},
		Tier:  types.PriorityMedium,
		Agent: types.AgentAmbassador,
	},
	{
		ID:          types.CategoryAmbassadorProcess,
		Description: "Processus ambassadeur",
		Keywords: []string{
			"processus ambassadeur", "étapes ambassadeur", "comment ça marche ambassadeur",
			"procédure ambassadeur",
		},
		Tier:         types.PriorityMedium,
		Agent:        types.AgentAmbassador,
		Predecessors: []types.CategoryID{types.CategoryAmbassadorApply, types.CategoryAmbassadorDefinition},
	},
	{
		ID:          types.CategoryCoursePayment,
		Description: "Paiement formation",
		Keywords:    []string{"paiement formation", "payé formation", "facture formation", "débit formation"},
		Tier:        types.PriorityMedium,
		Agent:       types.AgentPayment,
	},
	{
		ID:          types.CategoryDirectPayment,
		Description: "Paiement direct",
		Keywords:    []string{"paiement direct", "paiement immédiat", "payer maintenant"},
		Tier:        types.PriorityMedium,
		Agent:       types.AgentPayment,
	},
	{
		ID:           types.CategoryPaymentOverdue,
		Description:  "Délai dépassé",
		Keywords:     []string{"délai dépassé", "retard paiement", "paiement en retard", "délai expiré"},
		Tier:         types.PriorityMedium,
		Agent:        types.AgentPayment,
		Predecessors: []types.CategoryID{types.CategoryPaymentTracking},
	},
	{
		ID:          types.CategoryCourseSelected,
		Description: "Après choix formation",
		Keywords: []string{
			"après choix", "formation choisie", "inscription", "confirmation", "intéressé par",
			"je voudrais", "je veux", "je choisis", "m'intéresse",
		},
		Tier:         types.PriorityMedium,
		Agent:        types.AgentLearner,
		Predecessors: []types.CategoryID{types.CategoryCourseCatalog},
	},

	// LOW
	{
		ID:          types.CategoryGeneral,
		Description: "Général",
		Keywords:    []string{"bonjour", "salut", "hello", "qui êtes-vous", "présentation"},
		Tier:        types.PriorityLow,
		Agent:       types.AgentGeneral,
	},
	{
		ID:          types.CategoryCompanyPro,
		Description: "Entreprise/Professionnel",
		Keywords:    []string{"entreprise", "société", "professionnel", "auto-entrepreneur", "salarié"},
		Tier:        types.PriorityLow,
		Agent:       types.AgentProspect,
	},
	{
		ID:          types.CategoryAmbassadorSeller,
		Description: "Ambassadeur vendeur",
		Keywords:    []string{"ambassadeur vendeur", "vendeur", "commercial", "vente"},
		Tier:        types.PriorityLow,
		Agent:       types.AgentProspect,
	},

	// Untiered: reachable only through follow-up rules, never through the
	// keyword priority scan.
	{
		ID:          types.CategoryCPFFileBlocked,
		Description: "CPF dossier bloqué",
		Keywords:    []string{"cpf dossier bloqué", "blocage dossier cpf", "problème dossier cpf"},
		Agent:       types.AgentCPFBlocked,
		Predecessors: []types.CategoryID{
			types.CategoryCPFBlocked, types.CategoryOPCOBlocked,
		},
	},
	{
		ID:          types.CategoryCPFAdminBlocked,
		Description: "CPF dossier bloqué (admin)",
		Keywords:    []string{"cpf dossier bloqué", "blocage administratif", "délai administratif"},
		Agent:       types.AgentCPFBlocked,
	},
	{
		ID:          types.CategoryEscalationFollowUp,
		Description: "Relance après escalade",
		Keywords:    []string{"relance", "suivi", "nouvelle", "après escalade"},
		Agent:       types.AgentCPFBlocked,
	},
	{
		ID:          types.CategoryTaxThresholds,
		Description: "Seuils fiscaux",
		Keywords:    []string{"seuils fiscaux", "micro-entreprise", "fiscal", "impôts"},
		Agent:       types.AgentCPFBlocked,
	},
	{
		ID:          types.CategoryNoSocialMedia,
		Description: "Sans réseaux sociaux",
		Keywords:    []string{"sans réseaux sociaux", "pas de réseaux", "pas instagram", "pas snapchat"},
		Agent:       types.AgentCPFBlocked,
	},
	{
		ID:          types.CategoryAdminEscalation,
		Description: "Escalade admin",
		Keywords:    []string{"escalade admin", "administrateur", "responsable", "manager"},
		Agent:       types.AgentQuality,
	},
	{
		ID:          types.CategoryCommercialEscalation,
		Description: "Escalade commercial",
		Keywords:    []string{"escalade co", "commercial", "vendeur", "conseiller"},
		Agent:       types.AgentQuality,
	},
}
