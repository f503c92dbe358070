package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/pllumaj/results/internal/api/handler"
	"github.com/pllumaj/results/internal/core/domain"
	"github.com/pllumaj/results/internal/core/ports"
)

type stubNeedService struct {
	listFn   func(ctx context.Context) ([]ports.NeedSummary, error)
	createFn func(ctx context.Context, callerID string, input ports.CreateNeedInput) (*domain.Need, error)
}

func (s *stubNeedService) List(ctx context.Context) ([]ports.NeedSummary, error) {
	return s.listFn(ctx)
}

func (s *stubNeedService) Create(ctx context.Context, callerID string, input ports.CreateNeedInput) (*domain.Need, error) {
	return s.createFn(ctx, callerID, input)
}

func TestNeedHandler_List_OK(t *testing.T) {
	svc := &stubNeedService{
		listFn: func(context.Context) ([]ports.NeedSummary, error) {
			return []ports.NeedSummary{
				{
					Need:        domain.Need{ID: "need_2", Title: "second", ClientID: "user_2"},
					ClientEmail: "bob@example.com",
				},
				{
					Need:        domain.Need{ID: "need_1", Title: "first", ClientID: "user_1"},
					ClientEmail: "alice@example.com",
				},
			}, nil
		},
	}
	e := newEcho()
	e.GET("/needs", handler.NewNeedHandler(svc).List)

	rec := doJSON(e, http.MethodGet, "/needs", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var items []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0]["title"] != "second" {
		t.Fatalf("expected newest first, got %v", items[0])
	}
	client, _ := items[0]["client"].(map[string]any)
	if client == nil || client["email"] != "bob@example.com" {
		t.Fatalf("expected nested client email, got %v", items[0])
	}
}

func TestNeedHandler_List_EmptyIsArray(t *testing.T) {
	svc := &stubNeedService{
		listFn: func(context.Context) ([]ports.NeedSummary, error) { return nil, nil },
	}
	e := newEcho()
	e.GET("/needs", handler.NewNeedHandler(svc).List)

	rec := doJSON(e, http.MethodGet, "/needs", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if body := rec.Body.String(); body != "[]\n" {
		t.Fatalf("expected empty JSON array, got %q", body)
	}
}

func TestNeedHandler_Create_Created(t *testing.T) {
	var gotCaller string
	var gotInput ports.CreateNeedInput
	svc := &stubNeedService{
		createFn: func(_ context.Context, callerID string, input ports.CreateNeedInput) (*domain.Need, error) {
			gotCaller = callerID
			gotInput = input
			return &domain.Need{ID: "need_1", Title: input.Title, ClientID: callerID}, nil
		},
	}
	e := newEcho()
	e.POST("/needs", handler.NewNeedHandler(svc).Create, authAs("user_1"))

	rec := doJSON(e, http.MethodPost, "/needs",
		`{"title":"Fix leaking sink","description":"Kitchen sink","budgetAmount":50,"categoryId":"cat_1"}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if gotCaller != "user_1" {
		t.Fatalf("expected caller from claims, got %q", gotCaller)
	}
	if gotInput.Title != "Fix leaking sink" || gotInput.CategoryID != "cat_1" {
		t.Fatalf("unexpected input: %+v", gotInput)
	}
	if gotInput.BudgetAmount == nil || *gotInput.BudgetAmount != 50 {
		t.Fatalf("expected budget 50, got %+v", gotInput.BudgetAmount)
	}
	if body := decodeBody(t, rec); body["id"] != "need_1" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestNeedHandler_Create_ValidationFailure(t *testing.T) {
	svc := &stubNeedService{
		createFn: func(context.Context, string, ports.CreateNeedInput) (*domain.Need, error) {
			t.Fatal("service should not be called on invalid payload")
			return nil, nil
		},
	}
	e := newEcho()
	e.POST("/needs", handler.NewNeedHandler(svc).Create, authAs("user_1"))

	rec := doJSON(e, http.MethodPost, "/needs", `{"description":"no title"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["error"] != "title is required" {
		t.Fatalf("unexpected error body: %v", body)
	}
}

func TestNeedHandler_Create_NoClaims(t *testing.T) {
	svc := &stubNeedService{
		createFn: func(context.Context, string, ports.CreateNeedInput) (*domain.Need, error) {
			t.Fatal("service should not be called without claims")
			return nil, nil
		},
	}
	e := newEcho()
	e.POST("/needs", handler.NewNeedHandler(svc).Create)

	rec := doJSON(e, http.MethodPost, "/needs", `{"title":"t","description":"d"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
