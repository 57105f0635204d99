package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"

	"kindergarden/internal/security"
)

// Google sign-in for the admin panel. The allow-list in AdminService decides
// who gets in; this flow only proves ownership of the email.

// StartGoogleAuth begins the OAuth flow.
// GET /admin/auth/google/start
func (h *AdminHandler) StartGoogleAuth(w http.ResponseWriter, r *http.Request) {
	if h.oauth == nil || h.oauth.ClientID == "" || h.oauth.ClientSecret == "" {
		respondError(w, http.StatusBadRequest, "Google sign-in is not configured")
		return
	}

	state := security.GenerateSessionID()
	h.setTempCookie(w, r, "oauth_state", state, 10*time.Minute)

	http.Redirect(w, r, h.oauth.AuthCodeURL(state, oauth2.AccessTypeOnline), http.StatusFound)
}

// GoogleCallback completes the flow, verifies the account against the
// allow-list, and sets the admin session cookie.
// GET /admin/auth/google/callback
func (h *AdminHandler) GoogleCallback(w http.ResponseWriter, r *http.Request) {
	if h.oauth == nil || h.oauth.ClientID == "" || h.oauth.ClientSecret == "" {
		respondError(w, http.StatusBadRequest, "Google sign-in is not configured")
		return
	}

	state := r.URL.Query().Get("state")
	code := r.URL.Query().Get("code")
	if code == "" {
		respondError(w, http.StatusBadRequest, "missing authorization code")
		return
	}

	stateCookie, err := r.Cookie("oauth_state")
	if err != nil || stateCookie.Value == "" || stateCookie.Value != state {
		respondError(w, http.StatusBadRequest, "invalid OAuth state")
		return
	}
	h.clearTempCookie(w, r, "oauth_state")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	token, err := h.oauth.Exchange(ctx, code)
	if err != nil {
		respondError(w, http.StatusBadRequest, "failed to exchange OAuth code")
		return
	}

	email, err := fetchGoogleEmail(ctx, token)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	sessionToken, err := h.admin.AuthenticateEmail(email)
	if err != nil {
		logrus.WithField("email", email).Warn("sign-in from non-allow-listed account")
		respondServiceError(w, err)
		return
	}

	expires := time.Now().Add(h.admin.TokenTTL())
	http.SetCookie(w, security.CreateSessionCookie(r, adminCookieName, sessionToken, expires))
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// Session returns the CSRF token for an already-authenticated panel session,
// which the OAuth redirect flow cannot deliver in a response body.
// GET /admin/session (behind RequireAdmin)
func (h *AdminHandler) Session(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(adminCookieName)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "admin session required")
		return
	}
	csrfToken, err := h.mw.CSRFToken(cookie.Value)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"csrfToken":    csrfToken,
		"googleSignIn": h.admin.GoogleSignInEnabled(),
	})
}

func fetchGoogleEmail(ctx context.Context, token *oauth2.Token) (string, error) {
	client := oauth2.NewClient(ctx, oauth2.StaticTokenSource(token))
	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		return "", errFetchUserInfo
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errFetchUserInfo
	}

	var payload struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", errFetchUserInfo
	}
	if payload.Email == "" {
		return "", errFetchUserInfo
	}
	return payload.Email, nil
}

func (h *AdminHandler) setTempCookie(w http.ResponseWriter, r *http.Request, name, value string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   security.IsSecureRequest(r),
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(ttl),
		MaxAge:   int(ttl.Seconds()),
	})
}

func (h *AdminHandler) clearTempCookie(w http.ResponseWriter, r *http.Request, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   security.IsSecureRequest(r),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}
