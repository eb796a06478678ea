package members

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/GlebRadaev/festeros/internal/domain"
	"github.com/GlebRadaev/festeros/internal/dto"
	"github.com/GlebRadaev/festeros/internal/handlers/httperr"
	"github.com/GlebRadaev/festeros/pkg/auth"
	"github.com/GlebRadaev/festeros/pkg/utils"
)

//go:generate mockgen -destination=mock_members.go -package=members github.com/GlebRadaev/festeros/internal/handlers/members Service

type Service interface {
	ListMembers(ctx context.Context, caller domain.Caller) ([]domain.Member, error)
	GetMember(ctx context.Context, caller domain.Caller, id string) (*domain.Member, error)
	CreateMember(ctx context.Context, caller domain.Caller, input domain.Member) (*domain.Member, error)
	UpdateMember(ctx context.Context, caller domain.Caller, id string, input domain.Member) (*domain.Member, error)
	DeleteMember(ctx context.Context, caller domain.Caller, id string) error
	ListAccounts(ctx context.Context, caller domain.Caller) ([]domain.Account, error)
	UpdateAccountRole(ctx context.Context, caller domain.Caller, accountID string, role domain.Role) error
	GetMyMember(ctx context.Context, caller domain.Caller) (*domain.Member, error)
}

type MembersHandler struct {
	rosterService Service
}

func New(rosterService Service) *MembersHandler {
	return &MembersHandler{
		rosterService: rosterService,
	}
}

// ListMembers godoc
//
//	@Summary		List roster
//	@Description	All association members ordered by family name and given name
//	@Tags			Members
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.MemberResponseDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		403	{object}	utils.Response	"Admin only"
//	@Router			/api/admin/members [get]
func (h *MembersHandler) ListMembers(w http.ResponseWriter, r *http.Request) {
	members, err := h.rosterService.ListMembers(r.Context(), auth.CallerFromContext(r.Context()))
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewMemberListResponse(members))
}

// CreateMember godoc
//
//	@Summary		Add member
//	@Tags			Members
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.MemberRequestDTO	true	"Member"
//	@Success		201		{object}	dto.MemberResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		403		{object}	utils.Response	"Admin only"
//	@Failure		409		{object}	utils.Response	"Email already used"
//	@Failure		422		{object}	utils.Response	"Validation failed"
//	@Router			/api/admin/members [post]
func (h *MembersHandler) CreateMember(w http.ResponseWriter, r *http.Request) {
	input, ok := decodeMember(w, r)
	if !ok {
		return
	}
	member, err := h.rosterService.CreateMember(r.Context(), auth.CallerFromContext(r.Context()), input)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewMemberResponse(*member))
}

// GetMember godoc
//
//	@Summary	Get member
//	@Tags		Members
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"Member ID"
//	@Success	200	{object}	dto.MemberResponseDTO
//	@Failure	403	{object}	utils.Response	"Admin only"
//	@Failure	404	{object}	utils.Response	"Not found"
//	@Router		/api/admin/members/{id} [get]
func (h *MembersHandler) GetMember(w http.ResponseWriter, r *http.Request) {
	id, ok := httperr.PathID(w, r, "id")
	if !ok {
		return
	}
	member, err := h.rosterService.GetMember(r.Context(), auth.CallerFromContext(r.Context()), id)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewMemberResponse(*member))
}

// UpdateMember godoc
//
//	@Summary		Update member
//	@Description	Replace the editable fields of a member. The account link is kept.
//	@Tags			Members
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string					true	"Member ID"
//	@Param			request	body		dto.MemberRequestDTO	true	"Member"
//	@Success		200		{object}	dto.MemberResponseDTO
//	@Failure		403		{object}	utils.Response	"Admin only"
//	@Failure		404		{object}	utils.Response	"Not found"
//	@Failure		409		{object}	utils.Response	"Email already used"
//	@Failure		422		{object}	utils.Response	"Validation failed"
//	@Router			/api/admin/members/{id} [put]
func (h *MembersHandler) UpdateMember(w http.ResponseWriter, r *http.Request) {
	id, ok := httperr.PathID(w, r, "id")
	if !ok {
		return
	}
	input, ok := decodeMember(w, r)
	if !ok {
		return
	}
	member, err := h.rosterService.UpdateMember(r.Context(), auth.CallerFromContext(r.Context()), id, input)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewMemberResponse(*member))
}

// DeleteMember godoc
//
//	@Summary		Remove member
//	@Description	Fails with 409 while the member still holds lottery assignments
//	@Tags			Members
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"Member ID"
//	@Success		200	{object}	utils.Response
//	@Failure		403	{object}	utils.Response	"Admin only"
//	@Failure		404	{object}	utils.Response	"Not found"
//	@Failure		409	{object}	utils.Response	"Member has assignments"
//	@Router			/api/admin/members/{id} [delete]
func (h *MembersHandler) DeleteMember(w http.ResponseWriter, r *http.Request) {
	id, ok := httperr.PathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.rosterService.DeleteMember(r.Context(), auth.CallerFromContext(r.Context()), id); err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithSuccess(w, http.StatusOK)
}

// ListAccounts godoc
//
//	@Summary	List accounts
//	@Tags		Accounts
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}		dto.AccountResponseDTO
//	@Failure	403	{object}	utils.Response	"Admin only"
//	@Router		/api/admin/accounts [get]
func (h *MembersHandler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.rosterService.ListAccounts(r.Context(), auth.CallerFromContext(r.Context()))
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewAccountListResponse(accounts))
}

// UpdateAccountRole godoc
//
//	@Summary	Change account role
//	@Tags		Accounts
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		string				true	"Account ID"
//	@Param		request	body		dto.RoleRequestDTO	true	"Role"
//	@Success	200		{object}	utils.Response
//	@Failure	403		{object}	utils.Response	"Admin only"
//	@Failure	404		{object}	utils.Response	"Not found"
//	@Failure	422		{object}	utils.Response	"Unknown role"
//	@Router		/api/admin/accounts/{id}/role [put]
func (h *MembersHandler) UpdateAccountRole(w http.ResponseWriter, r *http.Request) {
	id, ok := httperr.PathID(w, r, "id")
	if !ok {
		return
	}
	var req dto.RoleRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	err := h.rosterService.UpdateAccountRole(r.Context(), auth.CallerFromContext(r.Context()), id, domain.Role(req.Role))
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithSuccess(w, http.StatusOK)
}

// GetMyMember godoc
//
//	@Summary		Own member record
//	@Description	The roster entry linked to the signed-in account
//	@Tags			Me
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.MemberResponseDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		404	{object}	utils.Response	"No linked member"
//	@Router			/api/me/member [get]
func (h *MembersHandler) GetMyMember(w http.ResponseWriter, r *http.Request) {
	member, err := h.rosterService.GetMyMember(r.Context(), auth.CallerFromContext(r.Context()))
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewMemberResponse(*member))
}

func decodeMember(w http.ResponseWriter, r *http.Request) (domain.Member, bool) {
	var req dto.MemberRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return domain.Member{}, false
	}
	input, err := req.ToDomain()
	if err != nil {
		httperr.Respond(w, err)
		return domain.Member{}, false
	}
	return input, true
}
