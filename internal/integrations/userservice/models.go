package userservice

import "time"

// Profile профиль пользователя из UserService
type Profile struct {
	ID                  int64      `json:"id"`
	Email               string     `json:"email"`
	IDVerified          bool       `json:"id_verified"`
	AcceptedTermsAt     *time.Time `json:"accepted_terms_at,omitempty"`
	AcceptedLiabilityAt *time.Time `json:"accepted_liability_at,omitempty"`
}

// ErrorResponse модель ошибки от UserService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
