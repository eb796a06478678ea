package lottery

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

//go:generate mockgen -destination=mock_lottery.go -package=lottery github.com/GlebRadaev/festeros/internal/handlers/lottery Service

type Service interface {
	ListDraws(ctx context.Context, caller domain.Caller) ([]domain.Draw, error)
	GetDraw(ctx context.Context, caller domain.Caller, id string) (*domain.Draw, error)
	CreateDraw(ctx context.Context, caller domain.Caller, input domain.Draw) (*domain.Draw, error)
	UpdateDraw(ctx context.Context, caller domain.Caller, id string, patch domain.DrawPatch) (*domain.Draw, error)
	DeleteDraw(ctx context.Context, caller domain.Caller, id string) error
	GetDrawAssignments(ctx context.Context, caller domain.Caller, drawID string) ([]domain.DrawAssignment, error)
	GetDrawSummary(ctx context.Context, caller domain.Caller, drawID string) (*domain.DrawSummary, error)
	UpdateAssignment(ctx context.Context, caller domain.Caller, drawID, memberID string, quantity int) (*domain.Assignment, error)
	BulkAssign(ctx context.Context, caller domain.Caller, drawID string, quantity int) (int64, error)
	RecordPayment(ctx context.Context, caller domain.Caller, drawID, memberID string, amountPaid float64, status string) (*domain.Assignment, error)
	GetMemberAssignments(ctx context.Context, caller domain.Caller, memberID string) (domain.MemberStatement, error)
	GetMyAssignments(ctx context.Context, caller domain.Caller) (domain.MemberStatement, error)
}

type LotteryHandler struct {
	lotteryService Service
}

func New(lotteryService Service) *LotteryHandler {
	return &LotteryHandler{
		lotteryService: lotteryService,
	}
}

// ListDraws godoc
//
//	@Summary		List draws
//	@Description	Newest draw date first
//	@Tags			Lottery
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.DrawResponseDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Router			/api/lottery/draws [get]
func (h *LotteryHandler) ListDraws(w http.ResponseWriter, r *http.Request) {
	draws, err := h.lotteryService.ListDraws(r.Context(), auth.CallerFromContext(r.Context()))
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewDrawListResponse(draws))
}

// CreateDraw godoc
//
//	@Summary	Create draw
//	@Tags		Lottery
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		request	body		dto.DrawRequestDTO	true	"Draw"
//	@Success	201		{object}	dto.DrawResponseDTO
//	@Failure	400		{object}	utils.Response	"Invalid request body"
//	@Failure	403		{object}	utils.Response	"Admin only"
//	@Failure	422		{object}	utils.Response	"Validation failed"
//	@Router		/api/lottery/draws [post]
func (h *LotteryHandler) CreateDraw(w http.ResponseWriter, r *http.Request) {
	var req dto.DrawRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	input, err := req.ToDomain()
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	draw, err := h.lotteryService.CreateDraw(r.Context(), auth.CallerFromContext(r.Context()), input)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewDrawResponse(*draw))
}

// GetDraw godoc
//
//	@Summary	Get draw
//	@Tags		Lottery
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"Draw ID"
//	@Success	200	{object}	dto.DrawResponseDTO
//	@Failure	404	{object}	utils.Response	"Not found"
//	@Router		/api/lottery/draws/{id} [get]
func (h *LotteryHandler) GetDraw(w http.ResponseWriter, r *http.Request) {
	id, ok := httperr.PathID(w, r, "id")
	if !ok {
		return
	}
	draw, err := h.lotteryService.GetDraw(r.Context(), auth.CallerFromContext(r.Context()), id)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	if draw == nil {
		httperr.Respond(w, domain.ErrNotFound)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewDrawResponse(*draw))
}

// UpdateDraw godoc
//
//	@Summary		Patch draw
//	@Description	Only the fields present are changed. Status can only move forward.
//	@Tags			Lottery
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string				true	"Draw ID"
//	@Param			request	body		dto.DrawPatchDTO	true	"Fields to change"
//	@Success		200		{object}	dto.DrawResponseDTO
//	@Failure		403		{object}	utils.Response	"Admin only"
//	@Failure		404		{object}	utils.Response	"Not found"
//	@Failure		409		{object}	utils.Response	"Invalid status transition"
//	@Failure		422		{object}	utils.Response	"Validation failed"
//	@Router			/api/lottery/draws/{id} [patch]
func (h *LotteryHandler) UpdateDraw(w http.ResponseWriter, r *http.Request) {
	id, ok := httperr.PathID(w, r, "id")
	if !ok {
		return
	}
	var req dto.DrawPatchDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	patch, err := req.ToDomain()
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	draw, err := h.lotteryService.UpdateDraw(r.Context(), auth.CallerFromContext(r.Context()), id, patch)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewDrawResponse(*draw))
}

// DeleteDraw godoc
//
//	@Summary		Delete draw
//	@Description	Removes the draw together with its assignments
//	@Tags			Lottery
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"Draw ID"
//	@Success		200	{object}	utils.Response
//	@Failure		403	{object}	utils.Response	"Admin only"
//	@Failure		404	{object}	utils.Response	"Not found"
//	@Router			/api/lottery/draws/{id} [delete]
func (h *LotteryHandler) DeleteDraw(w http.ResponseWriter, r *http.Request) {
	id, ok := httperr.PathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.lotteryService.DeleteDraw(r.Context(), auth.CallerFromContext(r.Context()), id); err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithSuccess(w, http.StatusOK)
}

// GetDrawAssignments godoc
//
//	@Summary		Draw ledger
//	@Description	One row per roster member, zero quantity where nothing is assigned
//	@Tags			Lottery
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"Draw ID"
//	@Success		200	{array}		dto.DrawAssignmentResponseDTO
//	@Failure		403	{object}	utils.Response	"Admin only"
//	@Failure		404	{object}	utils.Response	"Draw not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/lottery/draws/{id}/assignments [get]
func (h *LotteryHandler) GetDrawAssignments(w http.ResponseWriter, r *http.Request) {
	id, ok := httperr.PathID(w, r, "id")
	if !ok {
		return
	}
	rows, err := h.lotteryService.GetDrawAssignments(r.Context(), auth.CallerFromContext(r.Context()), id)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewDrawAssignmentsResponse(rows))
}

// GetDrawSummary godoc
//
//	@Summary	Draw totals
//	@Tags		Lottery
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"Draw ID"
//	@Success	200	{object}	dto.DrawSummaryResponseDTO
//	@Failure	403	{object}	utils.Response	"Admin only"
//	@Failure	404	{object}	utils.Response	"Not found"
//	@Router		/api/lottery/draws/{id}/summary [get]
func (h *LotteryHandler) GetDrawSummary(w http.ResponseWriter, r *http.Request) {
	id, ok := httperr.PathID(w, r, "id")
	if !ok {
		return
	}
	summary, err := h.lotteryService.GetDrawSummary(r.Context(), auth.CallerFromContext(r.Context()), id)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewDrawSummaryResponse(*summary))
}

// BulkAssign godoc
//
//	@Summary		Assign tickets to the whole roster
//	@Description	Sets the same quantity for every member. Payments and statuses are kept.
//	@Tags			Lottery
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string						true	"Draw ID"
//	@Param			request	body		dto.AssignmentRequestDTO	true	"Quantity"
//	@Success		200		{object}	dto.BulkAssignResponseDTO
//	@Failure		403		{object}	utils.Response	"Admin only"
//	@Failure		404		{object}	utils.Response	"Not found"
//	@Router			/api/lottery/draws/{id}/assignments/bulk [post]
func (h *LotteryHandler) BulkAssign(w http.ResponseWriter, r *http.Request) {
	id, ok := httperr.PathID(w, r, "id")
	if !ok {
		return
	}
	quantity, ok := decodeQuantity(w, r)
	if !ok {
		return
	}
	count, err := h.lotteryService.BulkAssign(r.Context(), auth.CallerFromContext(r.Context()), id, quantity)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BulkAssignResponseDTO{Success: true, Members: count})
}

// UpdateAssignment godoc
//
//	@Summary		Set member tickets
//	@Description	Negative quantities are stored as zero
//	@Tags			Lottery
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id			path		string						true	"Draw ID"
//	@Param			memberID	path		string						true	"Member ID"
//	@Param			request		body		dto.AssignmentRequestDTO	true	"Quantity"
//	@Success		200			{object}	dto.AssignmentResponseDTO
//	@Failure		403			{object}	utils.Response	"Admin only"
//	@Failure		404			{object}	utils.Response	"Unknown draw or member"
//	@Router			/api/lottery/draws/{id}/assignments/{memberID} [put]
func (h *LotteryHandler) UpdateAssignment(w http.ResponseWriter, r *http.Request) {
	drawID, ok := httperr.PathID(w, r, "id")
	if !ok {
		return
	}
	memberID, ok := httperr.PathID(w, r, "memberID")
	if !ok {
		return
	}
	quantity, ok := decodeQuantity(w, r)
	if !ok {
		return
	}
	assignment, err := h.lotteryService.UpdateAssignment(r.Context(), auth.CallerFromContext(r.Context()), drawID, memberID, quantity)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewAssignmentResponse(*assignment))
}

// RecordPayment godoc
//
//	@Summary		Record payment
//	@Description	Stores the amount paid. An empty status keeps the current one.
//	@Tags			Lottery
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id			path		string					true	"Draw ID"
//	@Param			memberID	path		string					true	"Member ID"
//	@Param			request		body		dto.PaymentRequestDTO	true	"Payment"
//	@Success		200			{object}	dto.AssignmentResponseDTO
//	@Failure		403			{object}	utils.Response	"Admin only"
//	@Failure		404			{object}	utils.Response	"Unknown draw or member"
//	@Failure		422			{object}	utils.Response	"Validation failed"
//	@Router			/api/lottery/draws/{id}/assignments/{memberID}/payment [put]
func (h *LotteryHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	drawID, ok := httperr.PathID(w, r, "id")
	if !ok {
		return
	}
	memberID, ok := httperr.PathID(w, r, "memberID")
	if !ok {
		return
	}
	var req dto.PaymentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	assignment, err := h.lotteryService.RecordPayment(r.Context(), auth.CallerFromContext(r.Context()), drawID, memberID, req.AmountPaid, req.Status)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewAssignmentResponse(*assignment))
}

// GetMemberAssignments godoc
//
//	@Summary	Member lottery statement
//	@Tags		Lottery
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"Member ID"
//	@Success	200	{object}	dto.MemberStatementResponseDTO
//	@Failure	403	{object}	utils.Response	"Forbidden"
//	@Failure	404	{object}	utils.Response	"Member not found"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/admin/members/{id}/lottery [get]
func (h *LotteryHandler) GetMemberAssignments(w http.ResponseWriter, r *http.Request) {
	id, ok := httperr.PathID(w, r, "id")
	if !ok {
		return
	}
	statement, err := h.lotteryService.GetMemberAssignments(r.Context(), auth.CallerFromContext(r.Context()), id)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewMemberStatementResponse(statement))
}

// GetMyAssignments godoc
//
//	@Summary		Own lottery statement
//	@Description	Tickets and amounts of the member linked to the signed-in account
//	@Tags			Me
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.MemberStatementResponseDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/me/lottery [get]
func (h *LotteryHandler) GetMyAssignments(w http.ResponseWriter, r *http.Request) {
	statement, err := h.lotteryService.GetMyAssignments(r.Context(), auth.CallerFromContext(r.Context()))
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewMemberStatementResponse(statement))
}

// decodeQuantity clamps negative input to zero.
func decodeQuantity(w http.ResponseWriter, r *http.Request) (int, bool) {
	var req dto.AssignmentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return 0, false
	}
	return max(req.Quantity, 0), true
}
