package cookie

import (
	"net/http"
)

const GuestSessionCookieName = "guest_session_id"

// GuestSession builds the cookie that identifies a guest device session to the backend.
func GuestSession(sessionID string) *http.Cookie {
	return &http.Cookie{
		Name:     GuestSessionCookieName,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// AttachGuestSession adds the guest cookie unless the request already carries one.
func AttachGuestSession(req *http.Request, sessionID string) {
	if sessionID == "" {
		return
	}
	if _, err := req.Cookie(GuestSessionCookieName); err == nil {
		return
	}
	req.AddCookie(GuestSession(sessionID))
}
