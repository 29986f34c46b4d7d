package types

// Profile represents the detected user profile of a message author
type Profile string

const (
	ProfileAmbassador        Profile = "ambassador"
	ProfileLearnerInfluencer Profile = "learner_influencer"
	ProfileProspect          Profile = "prospect"
	ProfileUnknown           Profile = "unknown"
)

// IsValid checks if the profile is valid
func (p Profile) IsValid() bool {
	switch p {
	case ProfileAmbassador, ProfileLearnerInfluencer, ProfileProspect, ProfileUnknown:
		return true
	default:
		return false
	}
}

// String returns the string representation of the profile
func (p Profile) String() string {
	return string(p)
}
