package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/lusunpay/internal/domain/errors"
	"github.com/polkiloo/lusunpay/internal/domain/model"
	testhelpers "github.com/polkiloo/lusunpay/internal/test"
)

func TestOrderUseCaseCreate(t *testing.T) {
	repo := testhelpers.NewOrderRepositoryStub()
	ids := &testhelpers.IDIssuerStub{IDs: []string{"LS-20240305-001"}}
	uc := NewOrderUseCase(repo, ids, fakeClock(), discardLogger())

	got, err := uc.Create(context.Background(), CreateOrderInput{
		ProjectName: "Design",
		Details:     "Logo pack",
		Amount:      decimal.NewFromInt(1000),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "LS-20240305-001" || got.Status != model.OrderStatusPending || got.Version != 1 {
		t.Fatalf("unexpected order %+v", got)
	}
	if !got.CreatedAt.Equal(testNow) {
		t.Fatalf("expected creation time from clock, got %v", got.CreatedAt)
	}
	if got.Invoice != nil {
		t.Fatalf("new order must not carry an invoice")
	}
	if _, ok := repo.Snapshot(got.ID); !ok {
		t.Fatalf("order was not persisted")
	}
}

func TestOrderUseCaseCreateRejectsInvalidInput(t *testing.T) {
	repo := testhelpers.NewOrderRepositoryStub()
	uc := NewOrderUseCase(repo, &testhelpers.IDIssuerStub{}, fakeClock(), discardLogger())

	_, err := uc.Create(context.Background(), CreateOrderInput{ProjectName: "Design", Details: "x"})
	if !errors.Is(err, domainErrors.ErrInvalidAmount) {
		t.Fatalf("expected invalid amount, got %v", err)
	}
	if orders, _ := repo.List(context.Background()); len(orders) != 0 {
		t.Fatalf("invalid input must not be stored")
	}
}

func TestOrderUseCaseCreateRetriesTakenID(t *testing.T) {
	repo := testhelpers.NewOrderRepositoryStub(order("LS-20240305-001", model.OrderStatusPending, "10"))
	ids := &testhelpers.IDIssuerStub{IDs: []string{"LS-20240305-001", "LS-20240305-002"}}
	uc := NewOrderUseCase(repo, ids, fakeClock(), discardLogger())

	got, err := uc.Create(context.Background(), CreateOrderInput{
		ProjectName: testhelpers.RandomASCIIString(3, 12),
		Details:     "d",
		Amount:      testhelpers.RandomAmount(500),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "LS-20240305-002" {
		t.Fatalf("expected second id, got %s", got.ID)
	}
}

func TestOrderUseCaseCreatePropagatesIDError(t *testing.T) {
	uc := NewOrderUseCase(testhelpers.NewOrderRepositoryStub(), &testhelpers.IDIssuerStub{Err: domainErrors.ErrIDSpaceExhausted}, fakeClock(), discardLogger())
	_, err := uc.Create(context.Background(), CreateOrderInput{ProjectName: "a", Details: "b", Amount: decimal.NewFromInt(1)})
	if !errors.Is(err, domainErrors.ErrIDSpaceExhausted) {
		t.Fatalf("expected id space exhausted, got %v", err)
	}
}

func TestOrderUseCaseGet(t *testing.T) {
	repo := testhelpers.NewOrderRepositoryStub(order("LS-1", model.OrderStatusPaid, "5"))
	uc := NewOrderUseCase(repo, &testhelpers.IDIssuerStub{}, fakeClock(), discardLogger())

	if _, err := uc.Get(context.Background(), "missing"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	got, err := uc.Get(context.Background(), "LS-1")
	if err != nil || got.ID != "LS-1" {
		t.Fatalf("unexpected result %+v, %v", got, err)
	}
}

func TestOrderUseCaseSearch(t *testing.T) {
	paid := order("LS-3", model.OrderStatusPaid, "5")
	paid.ProjectName = "Website"
	pending := order("LS-2", model.OrderStatusPending, "5")
	pending.ProjectName = "Web app"
	finished := order("LS-1", model.OrderStatusFinished, "5")
	finished.ProjectName = "Branding"
	repo := testhelpers.NewOrderRepositoryStub(paid, pending, finished)
	uc := NewOrderUseCase(repo, &testhelpers.IDIssuerStub{}, fakeClock(), discardLogger())

	got, err := uc.Search(context.Background(), "web", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].ID != "LS-3" || got[1].ID != "LS-2" {
		t.Fatalf("unexpected search result %+v", got)
	}

	got, err = uc.Search(context.Background(), "", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got[0].ID != "LS-2" {
		t.Fatalf("expected pending order first, got %s", got[0].ID)
	}
}

func TestOrderUseCaseReset(t *testing.T) {
	repo := testhelpers.NewOrderRepositoryStub(order("LS-1", model.OrderStatusPaid, "5"))
	uc := NewOrderUseCase(repo, &testhelpers.IDIssuerStub{}, fakeClock(), discardLogger())

	if err := uc.Reset(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.Resets != 1 {
		t.Fatalf("expected repository reset")
	}
	orders, _ := uc.List(context.Background())
	if len(orders) != 0 {
		t.Fatalf("expected empty list after reset, got %d", len(orders))
	}
}
