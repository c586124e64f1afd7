package models

type ApplicationStatus string

const (
	ApplicationStatusPending     ApplicationStatus = "Pending"
	ApplicationStatusShortlisted ApplicationStatus = "Shortlisted"
	ApplicationStatusMaybe       ApplicationStatus = "Maybe"
	ApplicationStatusRejected    ApplicationStatus = "Rejected"
)

// KnownStatuses is the closed set accepted by the status update endpoint.
var KnownStatuses = []ApplicationStatus{
	ApplicationStatusPending,
	ApplicationStatusShortlisted,
	ApplicationStatusMaybe,
	ApplicationStatusRejected,
}

func (s ApplicationStatus) IsValid() bool {
	for _, known := range KnownStatuses {
		if s == known {
			return true
		}
	}
	return false
}

type ExperienceLevel string

const (
	ExperienceLevelFresher     ExperienceLevel = "fresher"
	ExperienceLevelExperienced ExperienceLevel = "experienced"
)
