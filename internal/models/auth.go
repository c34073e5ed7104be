package models

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Display name
	// required: true
	// example: John Doe
	Name string `json:"name"`

	// Email
	// required: true
	// example: john@example.com
	Email string `json:"email"`

	// Password, at least 6 characters
	// required: true
	// example: secret123
	Password string `json:"password"`
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Email
	// required: true
	// example: john@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// example: secret123
	Password string `json:"password"`
}

// AuthResponse is returned on successful registration and login
// swagger:model AuthResponse
type AuthResponse struct {
	User    *User  `json:"user"`
	Message string `json:"message"`
}

// ErrorResponse is the body of every JSON error response
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: invalid email or password
	Error string `json:"error"`
}
