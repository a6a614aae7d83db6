package auth

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"time"
)

// LoginHandler exchanges the configured admin password for a bearer
// token. When no admin password is configured the endpoint is disabled.
func LoginHandler(secret []byte, adminPassword string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if adminPassword == "" {
			http.Error(w, "admin login disabled", http.StatusNotFound)
			return
		}

		var body struct {
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		if subtle.ConstantTimeCompare([]byte(body.Password), []byte(adminPassword)) != 1 {
			http.Error(w, "invalid credentials", http.StatusUnauthorized)
			return
		}

		token, err := GenerateAdminToken(secret, time.Now())
		if err != nil {
			http.Error(w, "token error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"token": token})
	}
}
