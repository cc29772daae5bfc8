package register

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	fbauth "firebase.google.com/go/v4/auth"

	"github.com/Moacho78/Parcial-Recetas/internal/httpapi"
)

var errMissingCredentials = errors.New("register: email and password are required")

type Request struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Response struct {
	UserID string `json:"userId"`
}

func NewHandler(fbAuth *fbauth.Client) *Handler {
	return &Handler{
		fbAuth: fbAuth,
	}
}

type Handler struct {
	fbAuth *fbauth.Client
}

// Register creates an email/password account with the auth provider.
func (h *Handler) Register(ctx context.Context, req *Request) (*Response, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		return nil, httpapi.NewError(http.StatusBadRequest, errMissingCredentials)
	}

	user, err := h.fbAuth.CreateUser(ctx, (&fbauth.UserToCreate{}).
		Email(email).
		Password(req.Password))
	if err != nil {
		if fbauth.IsEmailAlreadyExists(err) {
			return nil, httpapi.NewError(http.StatusConflict, fmt.Errorf("register: %w", err))
		}
		return nil, fmt.Errorf("register: creating user: %w", err)
	}
	return &Response{
		UserID: user.UID,
	}, nil
}
