package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/campus-laundry/internal/entities"
	"github.com/SergeyBogomolovv/campus-laundry/pkg/utils"
)

type errorMapping struct {
	target error
	code   int
}

// Order matters: the first matching sentinel wins.
var errorMappings = []errorMapping{
	{entities.ErrUserExists, http.StatusConflict},
	{entities.ErrAuth, http.StatusUnauthorized},
	{entities.ErrUnauthenticated, http.StatusUnauthorized},
	{entities.ErrForbidden, http.StatusForbidden},

	{entities.ErrOrderNotFound, http.StatusNotFound},
	{entities.ErrSlotNotFound, http.StatusNotFound},
	{entities.ErrUserNotFound, http.StatusNotFound},
	{entities.ErrLineNotFound, http.StatusNotFound},

	{entities.ErrSlotFull, http.StatusConflict},
	{entities.ErrInvalidTransition, http.StatusConflict},
	{entities.ErrStatusConflict, http.StatusConflict},
	{entities.ErrDuplicateRequest, http.StatusConflict},

	{entities.ErrEmptySelection, http.StatusUnprocessableEntity},
	{entities.ErrEmptyCart, http.StatusUnprocessableEntity},

	{entities.ErrInvalidPickup, http.StatusBadRequest},
	{entities.ErrUnknownItem, http.StatusBadRequest},
	{entities.ErrInvalidStatus, http.StatusBadRequest},
	{entities.ErrInvalidOrder, http.StatusBadRequest},
}

// writeServiceError maps a service error to a response. Store failures are
// reported as retryable, anything unknown is logged and hidden.
func writeServiceError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			utils.WriteError(w, err.Error(), m.code)
			return
		}
	}

	if errors.Is(err, entities.ErrStore) {
		logger.WarnContext(r.Context(), "store unavailable", slog.Any("error", err))
		utils.WriteRetryableError(w, "service temporarily unavailable, try again", http.StatusServiceUnavailable)
		return
	}

	logger.ErrorContext(r.Context(), "unexpected error", slog.Any("error", err), slog.String("path", r.URL.Path))
	utils.WriteRetryableError(w, "internal server error", http.StatusInternalServerError)
}
