package routes

var (
	SignupDownstreamDurationSecondsBuckets = []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}
)

const (
	// API route constants
	MetricsRouteAPI = "/metrics"
	SignupRouteAPI  = "/signup"

	// Content-Type constants
	ContentType                  = "Content-Type"
	ContentTypeJson              = "application/json"
	ContentTypeFormURLEncoded    = "application/x-www-form-urlencoded"
	ContentTypeMultipartFormData = "multipart/form-data"

	// Request size limits
	MaxFormBytes  = 1 << 20
	MaxFormMemory = 32 << 10

	// Error messages
	ErrMethodNotAllowed       = "method not allowed"
	ErrInvalidContentType     = "content-Type must be application/x-www-form-urlencoded or multipart/form-data"
	ErrInvalidContentTypeFmt  = "invalid content-type: %s"
	ErrInvalidFormBody        = "invalid form body"
	ErrMissingFormField       = "username and password are required"
	ErrSignupServiceDown      = "signup service is unavailable, please try again later"
	ErrSignupServiceMalformed = "signup service returned an unexpected response"
	ErrSignupServiceTooLarge  = "signup service response was too large"
	ErrInternal               = "something went wrong, please try again later"

	// Failure kinds for SignupFailuresTotal
	FailureBadRequest        = "bad_request"
	FailureNetwork           = "network"
	FailureMalformedResponse = "malformed_response"
	FailureResponseTooLarge  = "response_too_large"
	FailureInternal          = "internal"

	// metrics constants
	SignupSubmissionsTotal              = "signup_submissions_total"
	SignupSubmissionsTotalHelp          = "Total number of signup form submissions received"
	SignupResultsTotal                  = "signup_results_total"
	SignupResultsTotalHelp              = "Total number of downstream signup answers by status class"
	SignupFailuresTotal                 = "signup_failures_total"
	SignupFailuresTotalHelp             = "Total number of signup submissions that produced no result, by kind"
	SignupDownstreamDurationSeconds     = "signup_downstream_duration_seconds"
	SignupDownstreamDurationSecondsHelp = "Duration of downstream signup calls in seconds"

	// metrics label constants
	LabelStatusClass = "status_class"
	LabelKind        = "kind"
)
