package dto

// SignupFormFields is the submitted signup form. A nil field means the key was
// absent from the form; an empty string is a legitimate submitted value.
type SignupFormFields struct {
	Username *string `mapstructure:"username" validate:"required"`
	Password *string `mapstructure:"password" validate:"required"`
}

// SignupRequestDTO is the JSON body forwarded to the downstream signup API.
type SignupRequestDTO struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SignupResult carries the downstream status code and its decoded JSON body.
type SignupResult struct {
	Status int `json:"status"`
	Body   any `json:"body"`
}
