package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/GlebRadaev/festeros/internal/domain"
	"github.com/GlebRadaev/festeros/pkg/utils"
)

func TestMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	tokens := NewMockJWTServiceInterface(ctrl)
	resolver := NewMockCallerResolver(ctrl)

	var seen domain.Caller
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = CallerFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	handler := Middleware(tokens, resolver)(next)

	tests := []struct {
		name         string
		header       string
		prepareMock  func()
		expectedCode int
		expected     domain.Caller
	}{
		{
			name:   "Caller resolved with current role",
			header: "Bearer good",
			prepareMock: func() {
				tokens.EXPECT().ValidateToken("good").Return(&Claims{AccountID: "acc-1"}, nil)
				resolver.EXPECT().ResolveCaller(gomock.Any(), "acc-1").
					Return(domain.Caller{AccountID: "acc-1", Role: domain.RoleAdmin}, nil)
			},
			expectedCode: http.StatusOK,
			expected:     domain.Caller{AccountID: "acc-1", Role: domain.RoleAdmin},
		},
		{
			name:         "Missing header",
			header:       "",
			prepareMock:  func() {},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "Not a bearer token",
			header:       "Basic abc",
			prepareMock:  func() {},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:   "Invalid token",
			header: "Bearer bad",
			prepareMock: func() {
				tokens.EXPECT().ValidateToken("bad").Return(nil, ErrInvalidToken)
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:   "Account no longer exists",
			header: "Bearer good",
			prepareMock: func() {
				tokens.EXPECT().ValidateToken("good").Return(&Claims{AccountID: "acc-1"}, nil)
				resolver.EXPECT().ResolveCaller(gomock.Any(), "acc-1").Return(domain.Caller{}, domain.ErrNotFound)
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:   "Account store failure",
			header: "Bearer good",
			prepareMock: func() {
				tokens.EXPECT().ValidateToken("good").Return(&Claims{AccountID: "acc-1"}, nil)
				resolver.EXPECT().ResolveCaller(gomock.Any(), "acc-1").Return(domain.Caller{}, errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen = domain.Caller{}
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodGet, "/api/me/member", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, tt.expected, seen)
			if tt.expectedCode != http.StatusOK {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.False(t, resp.Success)
			}
		})
	}
}

func TestCallerFromContext(t *testing.T) {
	assert.Equal(t, domain.Caller{}, CallerFromContext(context.Background()))

	ctx := WithCaller(context.Background(), domain.Caller{AccountID: "acc-1", Role: domain.RoleMember})
	assert.Equal(t, "acc-1", CallerFromContext(ctx).AccountID)
}
