// models/auth.go

package models

type SignupRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	DisplayName string `json:"displayName" validate:"required"`
	Phone       string `json:"phone,omitempty"`
	// AdminCode, when it matches the configured registration code, grants
	// the admin role. Any other value registers a normal user.
	AdminCode string `json:"adminCode,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	FCMToken string `json:"fcmToken,omitempty"`
}

type GoogleSignInRequest struct {
	IDToken  string `json:"idToken" validate:"required"`
	FCMToken string `json:"fcmToken,omitempty"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}
