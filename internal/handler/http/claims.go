package http

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/wellpay/wellpay-backend-go/internal/domain/auth"
)

// userIDFromRequest extracts the authenticated user's ID from the verified
// token claims. It can only fail on routes missing the auth middleware.
func userIDFromRequest(r *http.Request) (string, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", auth.ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", auth.ErrInvalidToken
	}
	return userID, nil
}
