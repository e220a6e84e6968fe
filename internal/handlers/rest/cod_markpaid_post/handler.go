package cod_markpaid_post

import (
	"encoding/json"
	"errors"
	"net/http"

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
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var markPaidDTO dto.CodMarkPaidRequest
	err := json.NewDecoder(r.Body).Decode(&markPaidDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	settlementEntity, err := h.service.MarkPaid(r.Context(), markPaidDTO.RiderID, markPaidDTO.Upto)
	if err != nil {
		switch {
		case errors.Is(err, cod.ErrInvalidRiderID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, cod.ErrNoPendingEntries):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.CodMarkPaidResponse{
		RiderID:         settlementEntity.RiderID,
		EntriesPaid:     settlementEntity.EntriesPaid,
		AmountDeposited: settlementEntity.AmountDeposited,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
