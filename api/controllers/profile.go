package controllers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/ecostylo/ecostylo-backend/api/responses"
	"github.com/ecostylo/ecostylo-backend/api/validators"
	usersvc "github.com/ecostylo/ecostylo-backend/internal/users"
	"github.com/ecostylo/ecostylo-backend/pkg/db/models"
	pkgerrors "github.com/ecostylo/ecostylo-backend/pkg/errors"
	"github.com/ecostylo/ecostylo-backend/pkg/logger"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const profileFieldMaxLen = 255

type profileStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, updates map[string]any) (*models.User, error)
}

// ProfileGet returns the authenticated user's profile.
func ProfileGet(repo profileStore, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if repo == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "user repository unavailable"))
			return
		}

		userID, err := currentUserID(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		user, err := repo.FindByID(r.Context(), userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "user not found"))
				return
			}
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load user"))
			return
		}

		responses.WriteSuccess(w, usersvc.FromModel(user))
	}
}

type updateProfileRequest struct {
	FirstName *string `json:"first_name,omitempty" validate:"omitempty,min=1,max=255"`
	LastName  *string `json:"last_name,omitempty" validate:"omitempty,min=1,max=255"`
	Phone     *string `json:"phone,omitempty" validate:"omitempty,max=32"`
	Address   *string `json:"address,omitempty" validate:"omitempty,max=500"`
}

// ProfileUpdate applies partial updates to the contact profile. Email and
// role are not editable through this endpoint.
func ProfileUpdate(repo profileStore, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if repo == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "user repository unavailable"))
			return
		}

		userID, err := currentUserID(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updateProfileRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		updates := map[string]any{}
		if payload.FirstName != nil {
			updates["first_name"] = validators.SanitizeString(*payload.FirstName, profileFieldMaxLen)
		}
		if payload.LastName != nil {
			updates["last_name"] = validators.SanitizeString(*payload.LastName, profileFieldMaxLen)
		}
		if payload.Phone != nil {
			updates["phone"] = strings.TrimSpace(*payload.Phone)
		}
		if payload.Address != nil {
			updates["address"] = validators.SanitizeString(*payload.Address, 500)
		}
		if len(updates) == 0 {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "no fields to update"))
			return
		}

		user, err := repo.UpdateProfile(r.Context(), userID, updates)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "user not found"))
				return
			}
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update profile"))
			return
		}

		responses.WriteSuccess(w, usersvc.FromModel(user))
	}
}
