package notifications

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ecostylo/ecostylo-backend/pkg/config"
	"github.com/ecostylo/ecostylo-backend/pkg/db/models"
	pkgerrors "github.com/ecostylo/ecostylo-backend/pkg/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func sampleOrder() (*models.Order, *models.User) {
	order := &models.Order{
		ID:          uuid.New(),
		OrderNumber: "ORD202508301000007F3A",
		Total:       decimal.RequireFromString("96.00"),
		Items: []models.OrderItem{
			{Name: "Organic Cotton Shirt", Quantity: 2, UnitPrice: decimal.RequireFromString("25.50")},
			{Name: "Recycled Denim Jeans", Quantity: 1, UnitPrice: decimal.RequireFromString("45.00")},
		},
	}
	customer := &models.User{
		FirstName: "Ana",
		LastName:  "Torres",
		Email:     "ana@example.com",
		Phone:     "+5215512345678",
		Address:   "Av. Reforma 100, CDMX",
	}
	return order, customer
}

func TestFormatOrderMessage(t *testing.T) {
	order, customer := sampleOrder()
	msg := FormatOrderMessage(order, customer)

	for _, want := range []string{
		"New order ORD202508301000007F3A",
		"Customer: Ana Torres",
		"Phone: +5215512345678",
		"Organic Cotton Shirt x 2 = 51.00",
		"Recycled Denim Jeans x 1 = 45.00",
		"Total: 96.00",
	} {
		if !strings.Contains(msg, want) {
			t.Fatalf("message missing %q:\n%s", want, msg)
		}
	}
}

func TestSenderDeliversPayload(t *testing.T) {
	var got webhookPayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("unexpected content type %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	sender := NewSender(config.NotificationConfig{
		WebhookURL: server.URL,
		Recipient:  "+5215598765432",
		Timeout:    time.Second,
	}, nil)

	order, customer := sampleOrder()
	if err := sender.OrderPlaced(context.Background(), order, customer); err != nil {
		t.Fatalf("OrderPlaced: %v", err)
	}
	if got.Recipient != "+5215598765432" {
		t.Fatalf("unexpected recipient %q", got.Recipient)
	}
	if !strings.Contains(got.Message, "Total: 96.00") {
		t.Fatalf("unexpected message %q", got.Message)
	}
}

func TestSenderReportsUpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bridge offline", http.StatusBadGateway)
	}))
	defer server.Close()

	sender := NewSender(config.NotificationConfig{WebhookURL: server.URL, Timeout: time.Second}, nil)

	order, customer := sampleOrder()
	err := sender.OrderPlaced(context.Background(), order, customer)
	if err == nil {
		t.Fatal("expected delivery error")
	}
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", err)
	}
}

func TestSenderSkipsWhenUnconfigured(t *testing.T) {
	sender := NewSender(config.NotificationConfig{}, nil)

	order, customer := sampleOrder()
	if err := sender.OrderPlaced(context.Background(), order, customer); err != nil {
		t.Fatalf("expected no-op without webhook, got %v", err)
	}
}
