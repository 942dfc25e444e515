package adaptor

import (
	"errors"
	"net"
	"net/http"
	"time"

	"room-booking/internal/dto/request"
	"room-booking/internal/dto/response"
	"room-booking/internal/usecase"
	"room-booking/pkg/i18n"
	"room-booking/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	session utils.SessionConfig
	demo    bool
	render  *Renderer
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, config *utils.Config, render *Renderer, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		session: config.Session,
		demo:    config.App.DemoRegistration,
		render:  render,
		log:     log.With(zap.String("handler", "auth")),
	}
}

// LoginForm handles GET /login
func (h *AuthHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	h.render.Page(w, r, http.StatusOK, tplLogin, response.LoginPage())
}

// Login handles POST /login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := decodeRequest(r, &req); err != nil {
		badRequest(h.render, h.log, w, r, err, "login")
		return
	}

	auth, err := h.service.Login(r.Context(), &req, sessionMeta(r))
	if errors.Is(err, usecase.ErrInvalidCredentials) {
		page := response.LoginPage()
		page.Status = response.NewStatus(i18n.LoginFailed)
		code := http.StatusOK
		if utils.WantsJSON(r) {
			code = http.StatusUnauthorized
		}
		h.render.Page(w, r, code, tplLogin, page)
		return
	}
	if err != nil {
		handleServiceError(h.render, h.log, w, r, err, "login")
		return
	}

	h.setSessionCookie(w, auth)
	h.render.SeeOther(w, r, "/", http.StatusOK, "Login successful", auth)
}

// RegisterForm handles GET /register
func (h *AuthHandler) RegisterForm(w http.ResponseWriter, r *http.Request) {
	h.render.Page(w, r, http.StatusOK, tplLogin, response.RegisterPage())
}

// Register handles POST /register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if err := decodeRequest(r, &req); err != nil {
		badRequest(h.render, h.log, w, r, err, "register")
		return
	}

	user, err := h.service.Register(r.Context(), &req)
	if err != nil {
		page := response.RegisterPage()
		code := http.StatusBadRequest
		switch {
		case errors.Is(err, usecase.ErrUsernameTaken):
			page.Status = response.NewStatus(i18n.UsernameTaken)
			code = http.StatusConflict
		case errors.Is(err, usecase.ErrValidation):
			page.Status = response.NewStatus(i18n.ValidationFailed, validationDetail(err))
		default:
			handleServiceError(h.render, h.log, w, r, err, "register")
			return
		}
		if !utils.WantsJSON(r) {
			code = http.StatusOK
		}
		h.render.Page(w, r, code, tplLogin, page)
		return
	}

	h.render.SeeOther(w, r, "/login", http.StatusCreated, h.render.Text(r, i18n.Registered), map[string]any{
		"id":       user.ID,
		"username": user.Username,
	})
}

// DemoForm handles GET /registration
func (h *AuthHandler) DemoForm(w http.ResponseWriter, r *http.Request) {
	if !h.demo {
		h.render.Error(w, r, http.StatusNotFound, h.render.Text(r, i18n.NotFound))
		return
	}
	h.render.Page(w, r, http.StatusOK, tplRegistration, &response.SimplePage{})
}

// DemoLogin handles POST /registration
func (h *AuthHandler) DemoLogin(w http.ResponseWriter, r *http.Request) {
	var req request.DemoLoginRequest
	if err := decodeRequest(r, &req); err != nil {
		badRequest(h.render, h.log, w, r, err, "demo login")
		return
	}

	auth, err := h.service.DemoLogin(r.Context(), &req, sessionMeta(r))
	if err != nil {
		handleServiceError(h.render, h.log, w, r, err, "demo login")
		return
	}

	h.setSessionCookie(w, auth)
	h.render.SeeOther(w, r, "/", http.StatusOK, "Login successful", auth)
}

// Logout handles GET /logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token, ok := utils.GetTokenFromContext(r.Context())
	if !ok {
		h.render.Error(w, r, http.StatusUnauthorized, h.render.Text(r, i18n.AuthRequired))
		return
	}

	if err := h.service.Logout(r.Context(), token); err != nil {
		handleServiceError(h.render, h.log, w, r, err, "logout")
		return
	}

	h.clearSessionCookie(w)

	// the page renders as anonymous
	r = r.WithContext(utils.SetUserContext(r.Context(), 0, ""))

	page := &response.SimplePage{}
	page.Status = response.NewStatus(i18n.LoggedOut)
	h.render.Page(w, r, http.StatusOK, tplLogout, page)
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, auth *response.AuthResponse) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.session.CookieName,
		Value:    auth.Token,
		Path:     "/",
		Expires:  auth.ExpiresAt,
		HttpOnly: true,
		Secure:   h.session.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.session.CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.session.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func sessionMeta(r *http.Request) usecase.SessionMeta {
	ip := r.RemoteAddr
	if host, _, err := net.SplitHostPort(ip); err == nil {
		ip = host
	}
	return usecase.SessionMeta{
		UserAgent: r.UserAgent(),
		IPAddress: ip,
	}
}
