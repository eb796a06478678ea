package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	_ "github.com/GlebRadaev/festeros/docs"
	"github.com/GlebRadaev/festeros/internal/domain"
	"github.com/GlebRadaev/festeros/internal/pg"
	"github.com/GlebRadaev/festeros/internal/repo"
	"github.com/GlebRadaev/festeros/internal/service"
	"github.com/GlebRadaev/festeros/pkg/auth"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockDB.Close()

	services := service.New(repo.New(mockDB, pg.NewMockTXManager(ctrl)), auth.NewMockJWTServiceInterface(ctrl), time.Hour)

	h := New(services)
	assert.NotNil(t, h, "Handlers should not be nil")
	assert.NotNil(t, h.Authenticate)
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockMembersHandler := NewMockMembersHandler(ctrl)
	mockLotteryHandler := NewMockLotteryHandler(ctrl)
	tokens := auth.NewMockJWTServiceInterface(ctrl)
	resolver := auth.NewMockCallerResolver(ctrl)

	caller := domain.Caller{AccountID: "acc-1", Role: domain.RoleAdmin}
	tokens.EXPECT().ValidateToken("valid").Return(&auth.Claims{AccountID: "acc-1"}, nil).AnyTimes()
	resolver.EXPECT().ResolveCaller(gomock.Any(), "acc-1").Return(caller, nil).AnyTimes()

	mockAuthHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockMembersHandler.EXPECT().ListMembers(gomock.Any(), gomock.Any()).AnyTimes()
	mockMembersHandler.EXPECT().CreateMember(gomock.Any(), gomock.Any()).AnyTimes()
	mockMembersHandler.EXPECT().GetMember(gomock.Any(), gomock.Any()).AnyTimes()
	mockMembersHandler.EXPECT().UpdateMember(gomock.Any(), gomock.Any()).AnyTimes()
	mockMembersHandler.EXPECT().DeleteMember(gomock.Any(), gomock.Any()).AnyTimes()
	mockMembersHandler.EXPECT().ListAccounts(gomock.Any(), gomock.Any()).AnyTimes()
	mockMembersHandler.EXPECT().UpdateAccountRole(gomock.Any(), gomock.Any()).AnyTimes()
	mockMembersHandler.EXPECT().GetMyMember(gomock.Any(), gomock.Any()).AnyTimes()
	mockLotteryHandler.EXPECT().ListDraws(gomock.Any(), gomock.Any()).AnyTimes()
	mockLotteryHandler.EXPECT().CreateDraw(gomock.Any(), gomock.Any()).AnyTimes()
	mockLotteryHandler.EXPECT().GetDraw(gomock.Any(), gomock.Any()).AnyTimes()
	mockLotteryHandler.EXPECT().UpdateDraw(gomock.Any(), gomock.Any()).AnyTimes()
	mockLotteryHandler.EXPECT().DeleteDraw(gomock.Any(), gomock.Any()).AnyTimes()
	mockLotteryHandler.EXPECT().GetDrawAssignments(gomock.Any(), gomock.Any()).AnyTimes()
	mockLotteryHandler.EXPECT().GetDrawSummary(gomock.Any(), gomock.Any()).AnyTimes()
	mockLotteryHandler.EXPECT().BulkAssign(gomock.Any(), gomock.Any()).AnyTimes()
	mockLotteryHandler.EXPECT().UpdateAssignment(gomock.Any(), gomock.Any()).AnyTimes()
	mockLotteryHandler.EXPECT().RecordPayment(gomock.Any(), gomock.Any()).AnyTimes()
	mockLotteryHandler.EXPECT().GetMemberAssignments(gomock.Any(), gomock.Any()).AnyTimes()
	mockLotteryHandler.EXPECT().GetMyAssignments(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		AuthHandler:    mockAuthHandler,
		MembersHandler: mockMembersHandler,
		LotteryHandler: mockLotteryHandler,
		Authenticate:   auth.Middleware(tokens, resolver),
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	const id = "b3c1e0a2-7f4d-4d1a-8c55-0e9a6f2b7d31"
	protected := []struct {
		method string
		url    string
	}{
		{"GET", "/api/me/member"},
		{"GET", "/api/me/lottery"},
		{"GET", "/api/admin/members"},
		{"POST", "/api/admin/members"},
		{"GET", "/api/admin/members/" + id},
		{"PUT", "/api/admin/members/" + id},
		{"DELETE", "/api/admin/members/" + id},
		{"GET", "/api/admin/members/" + id + "/lottery"},
		{"GET", "/api/admin/accounts"},
		{"PUT", "/api/admin/accounts/" + id + "/role"},
		{"GET", "/api/lottery/draws"},
		{"POST", "/api/lottery/draws"},
		{"GET", "/api/lottery/draws/" + id},
		{"PATCH", "/api/lottery/draws/" + id},
		{"DELETE", "/api/lottery/draws/" + id},
		{"GET", "/api/lottery/draws/" + id + "/assignments"},
		{"GET", "/api/lottery/draws/" + id + "/summary"},
		{"POST", "/api/lottery/draws/" + id + "/assignments/bulk"},
		{"PUT", "/api/lottery/draws/" + id + "/assignments/" + id},
		{"PUT", "/api/lottery/draws/" + id + "/assignments/" + id + "/payment"},
	}

	for _, tt := range []struct {
		method string
		url    string
	}{
		{"POST", "/api/auth/register"},
		{"POST", "/api/auth/login"},
	} {
		t.Run("public "+tt.method+" "+tt.url, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.url, nil))
			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}

	for _, tt := range protected {
		t.Run("anonymous "+tt.method+" "+tt.url, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.url, nil))
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})

		t.Run("authenticated "+tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			req.Header.Set("Authorization", "Bearer valid")
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}

	t.Run("unknown route", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/user/orders", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
