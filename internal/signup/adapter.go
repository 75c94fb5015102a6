package signup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/haguru/signupgate/internal/interfaces"
	"github.com/haguru/signupgate/internal/models/dto"
	"github.com/haguru/signupgate/pkg/helper"

	structValidator "github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/google/uuid"
)

// Adapter translates a submitted signup form into a JSON call to the
// downstream signup API and translates the answer back into a SignupResult.
// It holds no per-request state and is safe for concurrent use.
type Adapter struct {
	BaseURL   string
	Logger    interfaces.Logger
	validator *structValidator.Validate
}

// NewAdapter creates a new Adapter targeting the downstream at baseURL.
func NewAdapter(baseURL string, logger interfaces.Logger, validator *structValidator.Validate) *Adapter {
	if validator == nil {
		validator = structValidator.New()
	}

	return &Adapter{
		BaseURL:   baseURL,
		Logger:    logger,
		validator: validator,
	}
}

// HandleSignup posts the form's username and password to the downstream
// signup endpoint through client and returns the downstream status and
// decoded JSON body.
//
// Non-2xx answers are not errors: they come back as a SignupResult so the
// page can render the downstream's validation messages. Errors wrap
// ErrMissingFormField, ErrNetwork, ErrMalformedResponse or ErrResponseTooLarge,
// and a non-nil error is never accompanied by a result.
func (a *Adapter) HandleSignup(ctx context.Context, form url.Values, client interfaces.HTTPClient) (*dto.SignupResult, error) {
	funcName := helper.GetFuncName()
	requestID := uuid.NewString()
	logger := a.Logger.WithContext(map[string]any{"func": funcName, "request_id": requestID})

	fields, err := a.extractFields(form)
	if err != nil {
		logger.Warn("Rejected signup form", "error", err)
		return nil, err
	}

	payload, err := json.Marshal(dto.SignupRequestDTO{
		Username: *fields.Username,
		Password: *fields.Password,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToEncodeRequest, err)
	}

	endpoint, err := url.JoinPath(a.BaseURL, SignupPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBuildRequest, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBuildRequest, err)
	}
	req.Header.Set(ContentType, ContentTypeJson)
	req.Header.Set(RequestIDHeader, requestID)

	logger.Debug("Forwarding signup", "user", *fields.Username, "endpoint", endpoint)
	resp, err := client.Do(req)
	if err != nil {
		logger.Error(ErrMsgNetwork, "user", *fields.Username, "error", err)
		return nil, fmt.Errorf("%w: %w", ErrNetwork, err)
	}
	defer resp.Body.Close()

	body, err := decodeBody(resp.Body)
	if err != nil {
		logger.Error("Failed to read signup response", "status", resp.StatusCode, "error", err)
		return nil, err
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		logger.Warn("Downstream rejected signup", "user", *fields.Username, "status", resp.StatusCode, "body", body)
	} else {
		logger.Info("Signup forwarded", "user", *fields.Username, "status", resp.StatusCode)
	}

	return &dto.SignupResult{
		Status: resp.StatusCode,
		Body:   body,
	}, nil
}

// extractFields pulls username and password out of the form, keeping the
// first value of each key. Both keys must be present with at least one value;
// empty strings pass. Key names are case-sensitive.
func (a *Adapter) extractFields(form url.Values) (*dto.SignupFormFields, error) {
	raw := make(map[string]any, len(form))
	for key, values := range form {
		if len(values) == 0 {
			continue
		}
		raw[key] = values[0]
	}

	fields := &dto.SignupFormFields{}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:    fields,
		MatchName: func(mapKey, fieldName string) bool { return mapKey == fieldName },
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToDecodeForm, err)
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToDecodeForm, err)
	}

	if err := a.validator.Struct(fields); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMissingFormField, err)
	}

	return fields, nil
}

// decodeBody reads at most MaxResponseBytes and decodes them as one JSON value.
func decodeBody(r io.Reader) (any, error) {
	raw, err := io.ReadAll(io.LimitReader(r, MaxResponseBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNetwork, err)
	}
	if len(raw) > MaxResponseBytes {
		return nil, fmt.Errorf("%w: limit is %d bytes", ErrResponseTooLarge, MaxResponseBytes)
	}

	var result any
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	return result, nil
}
