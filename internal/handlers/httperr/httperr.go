package httperr

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/GlebRadaev/festeros/internal/domain"
	"github.com/GlebRadaev/festeros/pkg/utils"
)

// Status maps domain errors to HTTP status codes. Anything unknown is a
// store failure.
func Status(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrPermissionDenied), errors.Is(err, domain.ErrNotAMember):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrMemberHasAssignments),
		errors.Is(err, domain.ErrInvalidTransition):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func Respond(w http.ResponseWriter, err error) {
	utils.RespondWithError(w, Status(err), err.Error())
}

// PathID reads a uuid route parameter. A malformed id cannot name an
// existing row, so it answers 404 and reports false.
func PathID(w http.ResponseWriter, r *http.Request, key string) (string, bool) {
	id, err := uuid.Parse(chi.URLParam(r, key))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, domain.ErrNotFound.Error())
		return "", false
	}
	return id.String(), true
}
