package di

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"

	"github.com/polkiloo/lusunpay/internal/app"
	"github.com/polkiloo/lusunpay/internal/config"
	"github.com/polkiloo/lusunpay/internal/domain/repository"
	"github.com/polkiloo/lusunpay/internal/test"
)

func testConfig() *config.Config {
	return &config.Config{
		RunAddress:        "127.0.0.1:0",
		PublicOrigin:      "http://localhost:8080",
		ShutdownTimeout:   time.Millisecond,
		StorageDriver:     config.StorageMemory,
		StorageKey:        "lusun_orders_v1",
		SeedOnEmpty:       true,
		OrderIDPrefix:     "LS",
		OrderIDStrategy:   "sequential",
		WithdrawalFeeRate: decimal.RequireFromString("0.065"),
	}
}

func TestModuleComposesGraphWithReplacements(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	orderRepo := test.NewOrderRepositoryStub()

	var facade *app.Facade
	fxApp := fx.New(
		fx.NopLogger,
		fx.Provide(func() context.Context { return context.Background() }),
		Module(
			fx.Replace(testConfig()),
			fx.Replace(logger),
			fx.Replace(fx.Annotate(orderRepo, fx.As(new(repository.OrderRepository)))),
		),
		fx.Populate(&facade),
	)

	if err := fxApp.Err(); err != nil {
		t.Fatalf("fx app returned error: %v", err)
	}
	t.Cleanup(func() { _ = fxApp.Stop(context.Background()) })
	if facade == nil {
		t.Fatal("expected payment facade instance")
	}
	if _, err := facade.Order(context.Background(), "LS-20240107-001"); err == nil {
		t.Fatal("expected replaced empty repository instead of the seeded store")
	}
}

func TestModuleServesSeededOrders(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	var engine *gin.Engine
	fxApp := fx.New(
		fx.NopLogger,
		fx.Provide(func() context.Context { return context.Background() }),
		Module(
			fx.Replace(testConfig()),
			fx.Replace(logger),
		),
		fx.Populate(&engine),
	)
	if err := fxApp.Err(); err != nil {
		t.Fatalf("fx app returned error: %v", err)
	}

	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/orders/LS-20240107-001", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected seeded order, got %d: %s", resp.Code, resp.Body.String())
	}

	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected metrics endpoint, got %d", resp.Code)
	}
}
