package controllers

import (
	"net/http"

	"github.com/ecostylo/ecostylo-backend/api/responses"
	socialsvc "github.com/ecostylo/ecostylo-backend/internal/social"
	pkgerrors "github.com/ecostylo/ecostylo-backend/pkg/errors"
	"github.com/ecostylo/ecostylo-backend/pkg/logger"
)

// SocialMediaList returns the active footer links.
func SocialMediaList(svc socialsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "social media service unavailable"))
			return
		}

		links, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, links)
	}
}
