package detect

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/secmon-lab/briareos/pkg/domain/model"
	"github.com/secmon-lab/briareos/pkg/domain/types"
)

// Profile indicator sets, checked in precedence order: an ambassador
// signal wins over a learner signal, which wins over a prospect signal.
var (
	ambassadorIndicators = []string{
		"ambassadeur", "affiliation", "commission", "programme affiliation",
	}
	learnerIndicators = []string{
		"formation", "apprenant", "étudiant", "cours", "apprentissage",
	}
	prospectIndicators = []string{
		"devis", "tarif", "prix", "coût", "prospect", "nouveau",
	}
)

var (
	cpfIndicators    = []string{"cpf", "compte personnel formation"}
	opcoIndicators   = []string{"opco", "opérateur compétences"}
	directIndicators = []string{"direct", "immédiat", "maintenant"}
)

// Profile infers the speaker profile from one message
func (e *Engine) Profile(message string) types.Profile {
	lowered := strings.ToLower(message)

	switch {
	case containsAny(lowered, ambassadorIndicators):
		return types.ProfileAmbassador
	case containsAny(lowered, learnerIndicators):
		return types.ProfileLearnerInfluencer
	case containsAny(lowered, prospectIndicators):
		return types.ProfileProspect
	}
	return types.ProfileUnknown
}

// Financing infers the financing method from one message. CPF wins over
// OPCO wins over direct.
func (e *Engine) Financing(message string) types.FinancingType {
	lowered := strings.ToLower(message)

	switch {
	case containsAny(lowered, cpfIndicators):
		return types.FinancingCPF
	case containsAny(lowered, opcoIndicators):
		return types.FinancingOPCO
	case containsAny(lowered, directIndicators):
		return types.FinancingDirect
	}
	return types.FinancingUnknown
}

// Singular unit stems match their plurals too ("jours", "semaines").
var durationPatterns = map[model.DurationUnit]*regexp.Regexp{
	model.UnitDays:   regexp.MustCompile(`(\d+)\s*jour`),
	model.UnitWeeks:  regexp.MustCompile(`(\d+)\s*semaine`),
	model.UnitMonths: regexp.MustCompile(`(\d+)\s*mois`),
	model.UnitYears:  regexp.MustCompile(`(\d+)\s*année`),
}

// ExtractDurations pulls French duration mentions out of the message.
// The first mention of each unit wins.
func (e *Engine) ExtractDurations(message string) model.DurationSet {
	lowered := strings.ToLower(message)

	durations := make(model.DurationSet)
	for unit, pattern := range durationPatterns {
		m := pattern.FindStringSubmatch(lowered)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		durations[unit] = n
	}
	return durations
}
