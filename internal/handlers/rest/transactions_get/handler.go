package transactions_get

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"settlement/internal/entities"
	"settlement/internal/generated/dto"
	"settlement/pkg/logger"
)

const defaultLimit = 100

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
	filter, err := parseFilter(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	transactions, err := h.service.ListTransactions(r.Context(), filter)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := dto.TransactionsResponse{
		Transactions: make([]dto.Transaction, 0, len(transactions)),
	}
	for i := range transactions {
		response.Transactions = append(response.Transactions, toTransactionDTO(&transactions[i]))
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

func parseFilter(r *http.Request) (entities.TransactionFilter, error) {
	query := r.URL.Query()

	filter := entities.TransactionFilter{
		EntityType: entities.TransactionEntityType(query.Get("entity_type")),
		Limit:      defaultLimit,
	}

	if raw := query.Get("entity_id"); raw != "" {
		entityID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return entities.TransactionFilter{}, err
		}
		filter.EntityID = entityID
	}

	if raw := query.Get("from"); raw != "" {
		from, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return entities.TransactionFilter{}, err
		}
		filter.From = &from
	}

	if raw := query.Get("to"); raw != "" {
		to, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return entities.TransactionFilter{}, err
		}
		filter.To = &to
	}

	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return entities.TransactionFilter{}, err
		}
		if limit > 0 {
			filter.Limit = limit
		}
	}

	return filter, nil
}

func toTransactionDTO(t *entities.Transaction) dto.Transaction {
	transactionDTO := dto.Transaction{
		ID:           t.ID,
		EntityType:   t.EntityType.String(),
		EntityID:     t.EntityID,
		Type:         t.Type.String(),
		Amount:       t.Amount,
		BalanceAfter: t.BalanceAfter,
		CreatedAt:    t.CreatedAt,
	}
	if t.OrderID != "" {
		orderID := t.OrderID
		transactionDTO.OrderID = &orderID
	}
	return transactionDTO
}
