package handler

// errorResponse documents the error envelope rendered by the central error
// handler on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// The length and complexity rules live in the auth service; binding only
// checks presence and email shape.
type registerRequest struct {
	Username string `json:"username"  validate:"required"`
	Email    string `json:"email"     validate:"required,email"`
	Password string `json:"password"  validate:"required"`
	FullName string `json:"full_name" validate:"required"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

type resetRequestRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type resetRequestResponse struct {
	Code      string `json:"code"`
	ExpiresIn int    `json:"expires_in"`
}

type resetConfirmRequest struct {
	Email       string `json:"email"        validate:"required,email"`
	Code        string `json:"code"         validate:"required"`
	NewPassword string `json:"new_password" validate:"required"`
}

type recoverAdminRequest struct {
	Answer string `json:"answer"`
}

type recoverAdminResponse struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	RevealFor int    `json:"reveal_for"`
}
