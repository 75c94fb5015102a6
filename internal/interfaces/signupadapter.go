package interfaces

import (
	"context"
	"net/url"

	"github.com/haguru/signupgate/internal/models/dto"
)

// SignupAdapter forwards a submitted signup form to the downstream signup API.
type SignupAdapter interface {
	HandleSignup(ctx context.Context, form url.Values, client HTTPClient) (*dto.SignupResult, error)
}
