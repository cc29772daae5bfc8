package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type echoRequest struct {
	Message string `json:"message"`
}

type echoResponse struct {
	Message string `json:"message"`
}

func TestHandleJSON(t *testing.T) {
	mux := chi.NewRouter()
	HandleJSON(mux, "/echo", func(_ context.Context, req *echoRequest) (*echoResponse, error) {
		return &echoResponse{Message: req.Message}, nil
	})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{"message":"hola"}`)))

	require.Equal(t, http.StatusOK, rec.Code)
	var res echoResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "hola", res.Message)
}

func TestHandleJSONEmptyBody(t *testing.T) {
	mux := chi.NewRouter()
	HandleJSON(mux, "/echo", func(_ context.Context, req *echoRequest) (*echoResponse, error) {
		return &echoResponse{Message: req.Message}, nil
	})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/echo", http.NoBody))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandleJSONBadBody(t *testing.T) {
	mux := chi.NewRouter()
	HandleJSON(mux, "/echo", func(_ context.Context, req *echoRequest) (*echoResponse, error) {
		return &echoResponse{Message: req.Message}, nil
	})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader("{not json")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleJSONErrorStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "plain error", err: errors.New("boom"), want: http.StatusInternalServerError},
		{name: "not found", err: NewError(http.StatusNotFound, errors.New("missing")), want: http.StatusNotFound},
		{name: "wrapped status error", err: fmt.Errorf("handler: %w", NewError(http.StatusBadRequest, errors.New("bad"))), want: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux := chi.NewRouter()
			HandleJSON(mux, "/fail", func(_ context.Context, _ *echoRequest) (*echoResponse, error) {
				return nil, tt.err
			})

			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/fail", http.NoBody))

			assert.Equal(t, tt.want, rec.Code)

			var body errorBody
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.NotEmpty(t, body.Error)
		})
	}
}
