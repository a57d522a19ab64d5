// internal/model/auth.go
package model

// LoginRequest goes to /admin/auth/login/.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse tolerates the three key names the backend has returned the
// token under at various times.
type LoginResponse struct {
	Access      string `json:"access,omitempty"`
	AccessToken string `json:"access_token,omitempty"`
	Token       string `json:"token,omitempty"`
}

// BearerToken returns whichever of the three keys is populated, in the same
// priority order the original client checked them.
func (r *LoginResponse) BearerToken() string {
	switch {
	case r.Access != "":
		return r.Access
	case r.AccessToken != "":
		return r.AccessToken
	default:
		return r.Token
	}
}
