package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mygymbro/mygymbro/internal/common"
	"github.com/mygymbro/mygymbro/internal/server/models"
)

type signupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusInternalServerError, msgGenericError)
		return
	}

	id, token, err := s.users.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		s.logger.Error(r.Context(), "signup failed", "error", err.Error())

		var ve *common.ValidationError
		switch {
		case errors.As(err, &ve):
			writeMessage(w, http.StatusInternalServerError, ve.Error())
		case errors.Is(err, common.ErrDuplicateKey):
			writeMessage(w, http.StatusInternalServerError, "Username or email already exists")
		default:
			writeMessage(w, http.StatusInternalServerError, msgGenericError)
		}
		return
	}

	s.setSessionCookie(w, token)
	writeJSON(w, http.StatusOK, map[string]string{"user": id})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, msgGenericError)
		return
	}

	id, token, err := s.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		s.logger.Warn(r.Context(), "login failed", "error", err.Error())

		var ae *common.AuthenticationError
		if errors.As(err, &ae) {
			writeMessage(w, http.StatusBadRequest, ae.Reason)
			return
		}
		writeMessage(w, http.StatusBadRequest, msgGenericError)
		return
	}

	s.setSessionCookie(w, token)
	writeJSON(w, http.StatusOK, map[string]string{"user": id})
}

func (s *Server) handleClearCookies(w http.ResponseWriter, r *http.Request) {
	cookies := r.Cookies()
	if len(cookies) == 0 {
		writeJSON(w, http.StatusOK, "No cookies to clear")
		return
	}

	for _, c := range cookies {
		http.SetCookie(w, &http.Cookie{
			Name:     c.Name,
			Value:    "",
			Path:     "/",
			HttpOnly: true,
			MaxAge:   -1,
		})
	}
	writeJSON(w, http.StatusOK, "All cookies cleared")
}

// handleVerifyJWT is the initial session probe at app start: it answers the
// user id bound to the cookie without touching the database.
func (s *Server) handleVerifyJWT(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "not authenticated")
		return
	}

	userID, err := s.users.VerifyToken(cookie.Value)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "jwt is invalid")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"id": userID})
}

func (s *Server) handleGetUserData(w http.ResponseWriter, r *http.Request) {
	user, err := s.users.Get(r.Context(), r.URL.Query().Get("id"))
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "user not found")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (s *Server) handleEditProfile(w http.ResponseWriter, r *http.Request) {
	var upd models.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		writeMessage(w, http.StatusBadRequest, msgGenericError)
		return
	}

	err := s.users.UpdateProfile(r.Context(), r.URL.Query().Get("id"), &upd)
	if err != nil {
		var ve *common.ValidationError
		switch {
		case errors.As(err, &ve):
			writeMessage(w, http.StatusBadRequest, ve.Error())
		case errors.Is(err, common.ErrNotFound):
			writeMessage(w, http.StatusBadRequest, "user not found")
		default:
			writeMessage(w, http.StatusBadRequest, msgGenericError)
		}
		return
	}

	writeMessage(w, http.StatusOK, "Profile updated successfully")
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

func (s *Server) handleChangePassword(w http.ResponseWriter, r *http.Request) {
	var req changePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, msgGenericError)
		return
	}

	err := s.users.ChangePassword(r.Context(), requestUserID(r), req.CurrentPassword, req.NewPassword)
	if err != nil {
		var ve *common.ValidationError
		var ae *common.AuthenticationError
		switch {
		case errors.As(err, &ve):
			writeMessage(w, http.StatusBadRequest, ve.Error())
		case errors.As(err, &ae):
			writeMessage(w, http.StatusBadRequest, ae.Reason)
		default:
			writeMessage(w, http.StatusBadRequest, msgGenericError)
		}
		return
	}

	writeMessage(w, http.StatusOK, "Password changed successfully")
}
