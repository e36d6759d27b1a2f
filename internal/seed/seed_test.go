package seed

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
)

func TestProductsCatalog(t *testing.T) {
	products := Products()
	if len(products) != 3 {
		t.Fatalf("expected 3 sample products, got %d", len(products))
	}

	prices := map[string]string{
		"Organic Cotton Shirt": "25.50",
		"Recycled Denim Jeans": "45.00",
		"Canvas Tote":          "15.75",
	}
	for _, product := range products {
		want, ok := prices[product.Name]
		if !ok {
			t.Fatalf("unexpected product %q", product.Name)
		}
		if !product.Price.Equal(decimal.RequireFromString(want)) {
			t.Fatalf("expected %s price %s, got %s", product.Name, want, product.Price)
		}
		if !product.Active || product.Stock <= 0 {
			t.Fatalf("sample product %q must be active and in stock", product.Name)
		}
	}
}

func TestSocialLinksAreActive(t *testing.T) {
	links := SocialLinks()
	if len(links) != 3 {
		t.Fatalf("expected 3 sample links, got %d", len(links))
	}
	for _, link := range links {
		if !link.Active {
			t.Fatalf("sample link %q must be active", link.Name)
		}
		if link.URL == "" {
			t.Fatalf("sample link %q missing url", link.Name)
		}
	}
}

func TestRunRequiresStaffPassword(t *testing.T) {
	err := Run(context.Background(), Params{})
	if err == nil {
		t.Fatal("expected error without db and staff password")
	}
}
