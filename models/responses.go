package models

// AuthResponse is returned by the registration and login endpoints.
// Token is the compact JWS string the client must present on subsequent
// requests in the Authorization header.
type AuthResponse struct {
	Message string     `json:"message"`
	User    PublicUser `json:"user"`
	Token   string     `json:"token"`
}

// UserResponse is returned by the provisioning endpoints.
// No token is issued; the new user must log in separately.
type UserResponse struct {
	Message string     `json:"message"`
	User    PublicUser `json:"user"`
}

// SchoolResponse is returned by the school registration endpoint.
type SchoolResponse struct {
	Message string `json:"message"`
	School  School `json:"school"`
}

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Message string `json:"message"`
}
