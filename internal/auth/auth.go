package auth

import (
	"context"

	"github.com/curioswitch/go-usegcp/middleware/firebaseauth"
)

// UserID returns the authenticated user's id. Empty outside
// authenticated routes.
func UserID(ctx context.Context) string {
	tok := firebaseauth.TokenFromContext(ctx)
	if tok == nil {
		return ""
	}
	return tok.UID
}

// UserLabel returns a display label for the authenticated user: the
// email identity when present, the uid otherwise.
func UserLabel(ctx context.Context) string {
	tok := firebaseauth.TokenFromContext(ctx)
	if tok == nil {
		return ""
	}
	if id, ok := tok.Firebase.Identities["email"]; ok {
		if idAny, ok := id.([]any); ok && len(idAny) > 0 {
			if email, ok := idAny[0].(string); ok {
				return email
			}
		}
	}
	return tok.UID
}
