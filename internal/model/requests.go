package model

// UpdateProfileRequest carries an owner's profile edit. Nil pointers mean
// "leave unchanged"; non-nil slices replace the stored sequence wholesale,
// matching how the profile editor submits its state.
type UpdateProfileRequest struct {
	DisplayName *string      `json:"display_name,omitempty"`
	Bio         *string      `json:"bio,omitempty"`
	Theme       *string      `json:"theme,omitempty"`
	Links       []Link       `json:"links,omitempty"`
	Connections []Connection `json:"connections,omitempty"`
}

// RegisterRequest is the registration payload.
type RegisterRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
