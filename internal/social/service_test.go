package social

import (
	"context"
	"testing"

	"github.com/ecostylo/ecostylo-backend/pkg/db/models"
	"github.com/google/uuid"
)

type stubLinkRepo struct {
	rows []models.SocialMedia
}

func (s *stubLinkRepo) ListActive(ctx context.Context) ([]models.SocialMedia, error) {
	return s.rows, nil
}

func TestServiceListMapsActiveLinks(t *testing.T) {
	repo := &stubLinkRepo{rows: []models.SocialMedia{
		{ID: uuid.New(), Name: "Instagram", URL: "https://instagram.com/ecostylo", Icon: "instagram"},
		{ID: uuid.New(), Name: "TikTok", URL: "https://tiktok.com/@ecostylo"},
	}}

	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	links, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(links) != 2 {
		t.Fatalf("expected 2 links, got %d", len(links))
	}
	if links[0].Name != "Instagram" || links[0].Icon != "instagram" {
		t.Fatalf("unexpected first link %+v", links[0])
	}
	if links[1].Icon != "" {
		t.Fatalf("expected empty icon, got %q", links[1].Icon)
	}
}

func TestNewServiceRequiresRepository(t *testing.T) {
	if _, err := NewService(nil); err == nil {
		t.Fatal("expected error for nil repository")
	}
}
