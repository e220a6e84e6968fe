package restaurant_wallet_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"settlement/internal/generated/dto"
	"settlement/internal/service/wallet"
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
	idStr := mux.Vars(r)["id"]
	restaurantID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	walletEntity, err := h.service.GetRestaurantWallet(r.Context(), restaurantID)
	if err != nil {
		switch {
		case errors.Is(err, wallet.ErrWalletNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, wallet.ErrInvalidEntityID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	walletDTO := dto.RestaurantWallet{
		RestaurantID:             walletEntity.RestaurantID,
		AvailableBalance:         walletEntity.AvailableBalance,
		PendingPayout:            walletEntity.PendingPayout,
		OnHoldAmount:             walletEntity.OnHoldAmount,
		TotalCommissionCollected: walletEntity.TotalCommissionCollected,
		TotalEarnings:            walletEntity.TotalEarnings,
		UpdatedAt:                walletEntity.UpdatedAt,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(walletDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
