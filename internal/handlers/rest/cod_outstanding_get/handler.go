package cod_outstanding_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"settlement/internal/generated/dto"
	"settlement/internal/service/cod"
	"settlement/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		service: service,
		log:     handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["riderId"]
	riderID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	outstanding, err := h.service.Outstanding(r.Context(), riderID)
	if err != nil {
		switch {
		case errors.Is(err, cod.ErrInvalidRiderID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	outstandingDTO := dto.CodOutstanding{
		RiderID:          outstanding.RiderID,
		Amount:           outstanding.Amount,
		CollectedPending: outstanding.CollectedPending,
		PendingEntries:   outstanding.PendingEntries,
		OldestPendingAt:  outstanding.OldestPendingAt,
		SettlementStatus: outstanding.SettlementStatus.String(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(outstandingDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
