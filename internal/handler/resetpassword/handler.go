package resetpassword

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	fbauth "firebase.google.com/go/v4/auth"

	"github.com/Moacho78/Parcial-Recetas/internal/httpapi"
	"github.com/Moacho78/Parcial-Recetas/internal/mail"
)

var errMissingEmail = errors.New("resetpassword: email is required")

type Request struct {
	Email string `json:"email"`
}

type Response struct{}

func NewHandler(fbAuth *fbauth.Client, mailer *mail.Sender) *Handler {
	return &Handler{
		fbAuth: fbAuth,
		mailer: mailer,
	}
}

type Handler struct {
	fbAuth *fbauth.Client
	mailer *mail.Sender
}

// ResetPassword generates a password-reset link for the account and
// emails it to the address. Whether the account exists is not revealed
// to the caller.
func (h *Handler) ResetPassword(ctx context.Context, req *Request) (*Response, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" {
		return nil, httpapi.NewError(http.StatusBadRequest, errMissingEmail)
	}

	link, err := h.fbAuth.PasswordResetLink(ctx, email)
	if err != nil {
		if fbauth.IsUserNotFound(err) {
			return &Response{}, nil
		}
		return nil, fmt.Errorf("resetpassword: generating reset link: %w", err)
	}

	body := fmt.Sprintf(`<p>Click the link below to reset your password.</p><p><a href=%q>Reset password</a></p>`, link)
	if err := h.mailer.Send(email, "Reset your password", body); err != nil {
		return nil, fmt.Errorf("resetpassword: %w", err)
	}
	return &Response{}, nil
}
