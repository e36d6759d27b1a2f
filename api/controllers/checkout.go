package controllers

import (
	"net/http"

	"github.com/ecostylo/ecostylo-backend/api/responses"
	checkoutsvc "github.com/ecostylo/ecostylo-backend/internal/checkout"
	pkgerrors "github.com/ecostylo/ecostylo-backend/pkg/errors"
	"github.com/ecostylo/ecostylo-backend/pkg/logger"
)

// Checkout converts the cart into an order.
func Checkout(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		userID, err := currentUserID(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order, err := svc.Execute(r.Context(), userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, order)
	}
}
