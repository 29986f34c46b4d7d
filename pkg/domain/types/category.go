package types

import (
	"regexp"

	"github.com/m-mizutani/goerr/v2"
)

// CategoryID represents a unique identifier for a discourse category
type CategoryID string

var idPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Category identifiers. Keyword sets, priority tiers and agent routing
// for each category live in pkg/domain/taxonomy.
const (
	// General
	CategoryGeneral      CategoryID = "general"
	CategoryHumanContact CategoryID = "human-contact"

	// Ambassador program
	CategoryAffiliateDiscovery   CategoryID = "affiliate-discovery"
	CategoryAffiliateOverview    CategoryID = "affiliate-overview"
	CategoryAmbassadorApply      CategoryID = "ambassador-apply"
	CategoryAmbassadorDefinition CategoryID = "ambassador-definition"
	CategoryAmbassadorProcess    CategoryID = "ambassador-process"

	// Learner / course
	CategoryCourseCatalog  CategoryID = "course-catalog"
	CategoryCourseSelected CategoryID = "course-selected"

	// Prospect
	CategoryOfferOverview    CategoryID = "offer-overview"
	CategoryCompanyPro       CategoryID = "company-pro"
	CategoryAmbassadorSeller CategoryID = "ambassador-seller"

	// Payment
	CategoryPaymentTracking CategoryID = "payment-tracking"
	CategoryCoursePayment   CategoryID = "course-payment"
	CategoryDirectPayment   CategoryID = "direct-payment"
	CategoryPaymentOverdue  CategoryID = "payment-overdue"

	// CPF / OPCO funding
	CategoryCPFQuestion        CategoryID = "cpf-question"
	CategoryCPFBlocked         CategoryID = "cpf-blocked"
	CategoryCPFFileBlocked     CategoryID = "cpf-file-blocked"
	CategoryOPCOBlocked        CategoryID = "opco-blocked"
	CategoryCPFAdminBlocked    CategoryID = "cpf-admin-blocked"
	CategoryEscalationFollowUp CategoryID = "escalation-follow-up"
	CategoryTaxThresholds      CategoryID = "tax-thresholds"
	CategoryNoSocialMedia      CategoryID = "no-social-media"

	// Quality
	CategoryAggressiveBehavior   CategoryID = "aggressive-behavior"
	CategoryLegal                CategoryID = "legal"
	CategoryAdminEscalation      CategoryID = "admin-escalation"
	CategoryCommercialEscalation CategoryID = "commercial-escalation"
)

// Validate checks if the CategoryID is valid
func (c CategoryID) Validate() error {
	if c == "" {
		return goerr.New("category ID cannot be empty")
	}
	if !idPattern.MatchString(string(c)) {
		return goerr.New("category ID must be lowercase alphanumeric with hyphens", goerr.V("id", c))
	}
	return nil
}

// String returns the string representation of CategoryID
func (c CategoryID) String() string {
	return string(c)
}
