package reconcile_post

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"settlement/internal/entities"
	"settlement/internal/generated/dto"
	"settlement/internal/service/reconciliation"
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

// Без тела или с пустым телом сверяются все сущности, с entity_type и
// entity_id — одна.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var reconcileDTO dto.ReconcileRequest
	err := json.NewDecoder(r.Body).Decode(&reconcileDTO)
	if err != nil && !errors.Is(err, io.EOF) {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var reports []entities.ReconciliationReport
	if reconcileDTO.EntityType != nil && reconcileDTO.EntityID != nil {
		report, err := h.service.Reconcile(
			r.Context(),
			entities.TransactionEntityType(*reconcileDTO.EntityType),
			*reconcileDTO.EntityID,
		)
		if err != nil {
			h.writeError(w, err)
			return
		}
		reports = []entities.ReconciliationReport{*report}
	} else {
		reports, err = h.service.ReconcileAll(r.Context())
		if err != nil {
			h.writeError(w, err)
			return
		}
	}

	response := dto.ReconcileResponse{
		Reports: make([]dto.ReconciliationReport, 0, len(reports)),
	}
	for i := range reports {
		response.Reports = append(response.Reports, dto.ReconciliationReport{
			EntityType:      reports[i].EntityType.String(),
			EntityID:        reports[i].EntityID,
			PreviousTotal:   reports[i].PreviousTotal,
			RecomputedTotal: reports[i].RecomputedTotal,
			Delta:           reports[i].Delta,
			CodOutstanding:  reports[i].CODOutstanding,
		})
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

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, reconciliation.ErrInvalidEntityID),
		errors.Is(err, reconciliation.ErrUnknownEntityType):
		w.WriteHeader(http.StatusBadRequest)
	default:
		w.WriteHeader(http.StatusInternalServerError)
	}
}
