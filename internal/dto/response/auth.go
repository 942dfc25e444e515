package response

import (
	"time"

	"room-booking/internal/data/entity"
)

type AuthResponse struct {
	UserID    int64           `json:"user_id"`
	Username  string          `json:"username,omitempty"`
	Role      entity.UserRole `json:"role"`
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expires_at"`
}

// AuthPage drives the shared login/register form.
type AuthPage struct {
	Notice
	Title           string `json:"title"`
	Action          string `json:"action"`
	ButtonLabel     string `json:"button_label"`
	FooterText      string `json:"footer_text"`
	FooterLinkURL   string `json:"footer_link_url"`
	FooterLinkLabel string `json:"footer_link_label"`
}

func AuthToResponse(user *entity.User, session *entity.Session) AuthResponse {
	resp := AuthResponse{
		UserID: session.UserID,
		Role:   session.Role,
	}
	if user != nil {
		resp.Username = user.Username
	}
	resp.Token = session.Token.String()
	resp.ExpiresAt = session.ExpiresAt
	return resp
}

// LoginPage and RegisterPage mirror each other with swapped footer links.
func LoginPage() *AuthPage {
	return &AuthPage{
		Title:           "In dein Konto einloggen",
		Action:          "/login",
		ButtonLabel:     "Einloggen",
		FooterText:      "Noch kein Konto?",
		FooterLinkURL:   "/register",
		FooterLinkLabel: "Registrieren",
	}
}

func RegisterPage() *AuthPage {
	return &AuthPage{
		Title:           "Neues Konto erstellen",
		Action:          "/register",
		ButtonLabel:     "Registrieren",
		FooterText:      "Du hast bereits ein Konto?",
		FooterLinkURL:   "/login",
		FooterLinkLabel: "Einloggen",
	}
}

// SimplePage carries only a notice, e.g. the logout confirmation.
type SimplePage struct {
	Notice
}
