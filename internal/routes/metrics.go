package routes

import "github.com/haguru/signupgate/internal/interfaces"

// RegisterMetrics registers the collectors recorded by Route.Signup.
func RegisterMetrics(m interfaces.Metrics) {
	m.RegisterCounter(SignupSubmissionsTotal, SignupSubmissionsTotalHelp)
	m.RegisterCounterVec(SignupResultsTotal, SignupResultsTotalHelp, []string{LabelStatusClass})
	m.RegisterCounterVec(SignupFailuresTotal, SignupFailuresTotalHelp, []string{LabelKind})
	m.RegisterHistogram(
		SignupDownstreamDurationSeconds,
		SignupDownstreamDurationSecondsHelp,
		SignupDownstreamDurationSecondsBuckets)
}
