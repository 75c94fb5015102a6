package routes

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"time"

	"github.com/haguru/signupgate/internal/interfaces"
	"github.com/haguru/signupgate/internal/signup"
)

type Route struct {
	Metrics interfaces.Metrics
	Adapter interfaces.SignupAdapter
	Client  interfaces.HTTPClient
	Logger  interfaces.Logger
}

// NewRoute creates a new Route instance.
func NewRoute(metrics interfaces.Metrics, adapter interfaces.SignupAdapter,
	client interfaces.HTTPClient, logger interfaces.Logger,
) *Route {

	return &Route{
		Metrics: metrics,
		Adapter: adapter,
		Client:  client,
		Logger:  logger,
	}
}

// Signup handles signup form submissions. The downstream status becomes the
// response status and the body is {"status": ..., "body": ...}.
func (r *Route) Signup(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		r.errorResponse(w, http.StatusMethodNotAllowed, fmt.Errorf("method %s not allowed", req.Method), ErrMethodNotAllowed)
		return
	}

	if r.Metrics != nil {
		r.Metrics.IncCounter(SignupSubmissionsTotal)
	}

	mediaType, _, err := mime.ParseMediaType(req.Header.Get(ContentType))
	if err != nil || (mediaType != ContentTypeFormURLEncoded && mediaType != ContentTypeMultipartFormData) {
		r.errorResponse(w, http.StatusBadRequest, fmt.Errorf(ErrInvalidContentTypeFmt, req.Header.Get(ContentType)), ErrInvalidContentType)
		r.countFailure(FailureBadRequest)
		return
	}

	req.Body = http.MaxBytesReader(w, req.Body, MaxFormBytes)
	if mediaType == ContentTypeMultipartFormData {
		err = req.ParseMultipartForm(MaxFormMemory)
	} else {
		err = req.ParseForm()
	}
	if err != nil {
		r.errorResponse(w, http.StatusBadRequest, err, ErrInvalidFormBody)
		r.countFailure(FailureBadRequest)
		return
	}

	startTime := time.Now()
	result, err := r.Adapter.HandleSignup(req.Context(), req.PostForm, r.Client)
	if r.Metrics != nil {
		r.Metrics.ObserveHistogram(SignupDownstreamDurationSeconds, time.Since(startTime).Seconds())
	}
	if err != nil {
		switch {
		case errors.Is(err, signup.ErrMissingFormField):
			r.errorResponse(w, http.StatusBadRequest, err, ErrMissingFormField)
			r.countFailure(FailureBadRequest)
		case errors.Is(err, signup.ErrNetwork):
			r.errorResponse(w, http.StatusBadGateway, err, ErrSignupServiceDown)
			r.countFailure(FailureNetwork)
		case errors.Is(err, signup.ErrMalformedResponse):
			r.errorResponse(w, http.StatusBadGateway, err, ErrSignupServiceMalformed)
			r.countFailure(FailureMalformedResponse)
		case errors.Is(err, signup.ErrResponseTooLarge):
			r.errorResponse(w, http.StatusBadGateway, err, ErrSignupServiceTooLarge)
			r.countFailure(FailureResponseTooLarge)
		default:
			r.Logger.Error("Signup failed", "error", err)
			r.errorResponse(w, http.StatusInternalServerError, err, ErrInternal)
			r.countFailure(FailureInternal)
		}
		return
	}

	if r.Metrics != nil {
		r.Metrics.IncCounterVec(SignupResultsTotal, fmt.Sprintf("%dxx", result.Status/100))
	}

	w.Header().Set(ContentType, ContentTypeJson)
	w.WriteHeader(result.Status)
	if err := json.NewEncoder(w).Encode(result); err != nil {
		r.Logger.Error("Failed to encode signup result", "error", err)
	}
}

func (r *Route) countFailure(kind string) {
	if r.Metrics != nil {
		r.Metrics.IncCounterVec(SignupFailuresTotal, kind)
	}
}

func (r *Route) errorResponse(w http.ResponseWriter, status int, err error, message string) {
	w.Header().Set(ContentType, ContentTypeJson)
	w.WriteHeader(status)
	jsonResponse := map[string]string{
		"error":   err.Error(),
		"message": message,
	}
	_ = json.NewEncoder(w).Encode(jsonResponse)
}
