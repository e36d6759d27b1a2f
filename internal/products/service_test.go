package products

import (
	"context"
	"testing"

	pkgerrors "github.com/ecostylo/ecostylo-backend/pkg/errors"
	"github.com/ecostylo/ecostylo-backend/pkg/pagination"
	"github.com/shopspring/decimal"
)

func TestNewServiceRequiresRepo(t *testing.T) {
	if _, err := NewService(nil); err == nil {
		t.Fatal("expected error for nil repository")
	}
}

func TestServiceCreateValidation(t *testing.T) {
	svc, err := NewService(NewRepository(nil))
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	ctx := context.Background()

	cases := []struct {
		name  string
		input CreateProductInput
	}{
		{"missing name", CreateProductInput{Price: decimal.RequireFromString("9.99")}},
		{"zero price", CreateProductInput{Name: "Tote", Price: decimal.Zero}},
		{"negative price", CreateProductInput{Name: "Tote", Price: decimal.RequireFromString("-1.00")}},
		{"negative stock", CreateProductInput{Name: "Tote", Price: decimal.RequireFromString("9.99"), Stock: -1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tc.input)
			if err == nil {
				t.Fatal("expected validation error")
			}
			typed := pkgerrors.As(err)
			if typed == nil || typed.Code() != pkgerrors.CodeValidation {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestServiceListRejectsBadCursor(t *testing.T) {
	svc, err := NewService(NewRepository(nil))
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	_, err = svc.List(context.Background(), pagination.Params{Cursor: "%%%not-base64%%%"})
	if err == nil {
		t.Fatal("expected error for malformed cursor")
	}
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}
