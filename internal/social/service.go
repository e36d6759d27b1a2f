package social

import (
	"context"
	"fmt"

	"github.com/ecostylo/ecostylo-backend/pkg/db/models"
	pkgerrors "github.com/ecostylo/ecostylo-backend/pkg/errors"
	"github.com/google/uuid"
)

// LinkDTO is the public social-media link payload.
type LinkDTO struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	URL  string    `json:"url"`
	Icon string    `json:"icon,omitempty"`
}

// Service lists the storefront's social links.
type Service interface {
	List(ctx context.Context) ([]LinkDTO, error)
}

type linkRepository interface {
	ListActive(ctx context.Context) ([]models.SocialMedia, error)
}

type service struct {
	repo linkRepository
}

// NewService constructs the social-media service.
func NewService(repo linkRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("social media repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context) ([]LinkDTO, error) {
	rows, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list social links")
	}

	links := make([]LinkDTO, 0, len(rows))
	for _, row := range rows {
		links = append(links, LinkDTO{
			ID:   row.ID,
			Name: row.Name,
			URL:  row.URL,
			Icon: row.Icon,
		})
	}
	return links, nil
}
