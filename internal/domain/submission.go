package domain

// SubmissionState is the lifecycle state of a repurpose submission
type SubmissionState string

const (
	SubmissionIdle          SubmissionState = "idle"
	SubmissionValidating    SubmissionState = "validating"
	SubmissionCheckingQuota SubmissionState = "checking_quota"
	SubmissionCalling       SubmissionState = "calling"
	SubmissionSucceeded     SubmissionState = "succeeded"
	SubmissionFailed        SubmissionState = "failed"
)

// IsTerminal reports whether the state ends a submission attempt
func (s SubmissionState) IsTerminal() bool {
	return s == SubmissionSucceeded || s == SubmissionFailed
}
