package models

// SignupRequest represents the JSON body for account creation
// swagger:model SignupRequest
type SignupRequest struct {
	// Display name
	// required: true
	// example: Alice
	Name string `json:"name"`

	// Username, at least 5 characters
	// required: true
	// example: alice1
	Username string `json:"username"`

	// Email
	// required: true
	// example: alice@example.com
	Email string `json:"email"`

	// Password, at least 5 characters
	// required: true
	// example: secret
	Password string `json:"password"`
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// required: true
	// example: alice1
	Username string `json:"username"`

	// required: true
	// example: secret
	Password string `json:"password"`
}

// TokenResponse is returned by signup and login
// swagger:model TokenResponse
type TokenResponse struct {
	// JWT token
	// example: JWT_TOKEN
	Token string `json:"token"`
}

// ErrorResponse is the body of every non-2xx response
// swagger:model ErrorResponse
type ErrorResponse struct {
	// example: Invalid user or password
	Message string `json:"message"`
}
