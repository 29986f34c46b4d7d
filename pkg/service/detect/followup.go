package detect

import (
	"strings"

	"github.com/secmon-lab/briareos/pkg/domain/model"
	"github.com/secmon-lab/briareos/pkg/domain/types"
)

// Token sets for the contextual follow-up rules. These are matched
// against the new message when the previous turn left the conversation
// in a known state.
var (
	interestIndicators = []string{
		"intéressé par", "je choisis", "je veux", "m'intéresse",
		"ça m'intéresse", "je prends", "je sélectionne", "je souhaite",
		"je voudrais",
	}
	courseTopics = []string{
		"comptabilité", "marketing", "langues", "web", "3d", "vente",
		"développement", "bureautique", "informatique", "écologie", "bilan",
		"anglais", "français", "espagnol", "allemand", "italien",
	}
	questionWords    = []string{"comment", "quand", "où", "combien"}
	delayWords       = []string{"depuis", "ça fait", "délai", "attendre"}
	filterReplyWords = []string{"oui", "non", "bloqué", "informé"}
)

// catalogRecallWindow is how far back the recent-category ring is
// consulted when deciding whether the course catalog was just shown.
const catalogRecallWindow = 3

// FollowUp resolves the category of a message from conversational
// context rather than from its own keywords. Returns false when no
// follow-up rule applies and the message should go through the normal
// priority scan. Rules are ordered; the first hit wins.
func (e *Engine) FollowUp(message string, sc *model.SessionContext) (types.CategoryID, bool) {
	if sc == nil {
		return "", false
	}
	lowered := strings.ToLower(message)

	// Aggression overrides any contextual interpretation
	if e.matches(lowered, types.CategoryAggressiveBehavior) {
		return types.CategoryAggressiveBehavior, true
	}

	// Picking a course right after the catalog was shown
	if e.courseInterest(lowered, sc) {
		return types.CategoryCourseSelected, true
	}

	// Practical questions right after the ambassador pitch
	if (sc.LastCategory == types.CategoryAmbassadorApply ||
		sc.LastCategory == types.CategoryAmbassadorDefinition) &&
		containsAny(lowered, questionWords) {
		return types.CategoryAmbassadorProcess, true
	}

	// Elaborating on how long a payment has been pending
	if sc.LastCategory == types.CategoryPaymentTracking &&
		containsAny(lowered, delayWords) {
		return types.CategoryPaymentOverdue, true
	}

	// Answering the CPF/OPCO triage question
	if (sc.LastCategory == types.CategoryCPFBlocked ||
		sc.LastCategory == types.CategoryOPCOBlocked) &&
		containsAny(lowered, filterReplyWords) {
		return types.CategoryCPFFileBlocked, true
	}

	return "", false
}

// courseInterest reports whether the message expresses interest in a
// specific course topic while the course catalog appears in the recent
// categories.
func (e *Engine) courseInterest(lowered string, sc *model.SessionContext) bool {
	if !containsAny(lowered, interestIndicators) || !containsAny(lowered, courseTopics) {
		return false
	}
	for _, id := range sc.RecentCategoriesTail(catalogRecallWindow) {
		if id == types.CategoryCourseCatalog {
			return true
		}
	}
	return false
}

// ValidateSequence checks the predecessor constraint of a category. A
// category with no constraint, or any category arriving on a fresh
// session, always passes.
func (e *Engine) ValidateSequence(current, previous types.CategoryID) bool {
	preds := e.tax.Predecessors(current)
	if len(preds) == 0 || previous == "" {
		return true
	}
	for _, p := range preds {
		if p == previous {
			return true
		}
	}
	return false
}
