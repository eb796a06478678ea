package httperr

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/festeros/internal/domain"
	"github.com/GlebRadaev/festeros/pkg/utils"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{fmt.Errorf("%w: name: cannot be blank", domain.ErrValidation), http.StatusUnprocessableEntity},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{domain.ErrPermissionDenied, http.StatusForbidden},
		{domain.ErrNotAMember, http.StatusForbidden},
		{domain.ErrNotFound, http.StatusNotFound},
		{domain.ErrEmailTaken, http.StatusConflict},
		{domain.ErrMemberHasAssignments, http.StatusConflict},
		{domain.ErrInvalidTransition, http.StatusConflict},
		{errors.New("connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.status, Status(tt.err))
		})
	}
}

func TestRespond(t *testing.T) {
	rr := httptest.NewRecorder()
	Respond(rr, domain.ErrMemberHasAssignments)

	var resp utils.Response
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.False(t, resp.Success)
	assert.Equal(t, domain.ErrMemberHasAssignments.Error(), resp.Error)
}

func TestPathID(t *testing.T) {
	tests := []struct {
		name   string
		param  string
		wantID string
		wantOK bool
	}{
		{name: "Valid uuid", param: "0F8FAD5B-D9CB-469F-A165-70867728950E", wantID: "0f8fad5b-d9cb-469f-a165-70867728950e", wantOK: true},
		{name: "Malformed id", param: "42"},
		{name: "Missing param", param: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.param)
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
			rr := httptest.NewRecorder()

			id, ok := PathID(rr, req, "id")

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
			if !tt.wantOK {
				assert.Equal(t, http.StatusNotFound, rr.Code)
			}
		})
	}
}
