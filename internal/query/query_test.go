package query

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/lusunpay/internal/domain/model"
	"github.com/polkiloo/lusunpay/internal/lifecycle"
	"github.com/polkiloo/lusunpay/internal/policy"
	"github.com/polkiloo/lusunpay/internal/seed"
)

func order(id, project string, status model.OrderStatus, amount int64) model.Order {
	return model.Order{ID: id, ProjectName: project, Status: status, Amount: decimal.NewFromInt(amount)}
}

func mustFees(t *testing.T) policy.FeePolicy {
	t.Helper()
	fees, err := policy.NewFeePolicy(policy.DefaultFeeRate)
	if err != nil {
		t.Fatalf("fee policy: %v", err)
	}
	return fees
}

func TestTotals(t *testing.T) {
	orders := []model.Order{
		order("a", "A", model.OrderStatusPending, 100),
		order("b", "B", model.OrderStatusPaid, 200),
		order("c", "C", model.OrderStatusFinished, 400),
		order("d", "D", model.OrderStatusPaid, 800),
	}

	summary := Summary(orders)
	if !summary.Available.Equal(decimal.NewFromInt(1000)) {
		t.Fatalf("unexpected available %s", summary.Available)
	}
	if !summary.Pending.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("unexpected pending %s", summary.Pending)
	}
	if !summary.Settled.Equal(decimal.NewFromInt(1400)) {
		t.Fatalf("unexpected settled %s", summary.Settled)
	}
	if !WithdrawableAmount(orders).Equal(summary.Available) {
		t.Fatal("withdrawable amount must equal available balance")
	}
	if !NetAfterFee(orders, mustFees(t)).Equal(decimal.NewFromInt(935)) {
		t.Fatalf("unexpected net %s", NetAfterFee(orders, mustFees(t)))
	}
	if !AvailableBalance(nil).IsZero() {
		t.Fatal("expected zero balance for empty collection")
	}
}

func TestBalanceFollowsLifecycle(t *testing.T) {
	orders := seed.Orders(time.Now())
	base := AvailableBalance(orders)

	created := append([]model.Order{order("n", "New", model.OrderStatusPending, 1000)}, orders...)
	if !AvailableBalance(created).Equal(base) {
		t.Fatal("creating an order must not change available balance")
	}

	paid, _ := lifecycle.MarkPaid(created[0])
	created[0] = paid
	if !AvailableBalance(created).Equal(base.Add(decimal.NewFromInt(1000))) {
		t.Fatalf("expected balance to grow by 1000, got %s", AvailableBalance(created))
	}

	for _, swept := range lifecycle.Withdraw(created) {
		for i := range created {
			if created[i].ID == swept.ID {
				created[i] = swept
			}
		}
	}
	if !AvailableBalance(created).IsZero() {
		t.Fatalf("expected zero balance after withdraw, got %s", AvailableBalance(created))
	}
}

func TestQuote(t *testing.T) {
	orders := []model.Order{
		order("a", "A", model.OrderStatusPaid, 600),
		order("b", "B", model.OrderStatusPaid, 400),
		order("c", "C", model.OrderStatusPending, 50),
	}
	q := Quote(orders, mustFees(t))
	if !q.Gross.Equal(decimal.NewFromInt(1000)) || !q.Fee.Equal(decimal.NewFromInt(65)) || !q.Net.Equal(decimal.NewFromInt(935)) {
		t.Fatalf("unexpected quote: %+v", q)
	}
	if q.Orders != 2 {
		t.Fatalf("expected 2 orders in quote, got %d", q.Orders)
	}
}

func TestSearch(t *testing.T) {
	orders := []model.Order{
		order("LS-20240107-001", "Website Redesign", model.OrderStatusPaid, 1),
		order("LS-20240108-002", "SaaS backend", model.OrderStatusPending, 1),
	}

	cases := []struct {
		term string
		want []string
	}{
		{"", []string{"LS-20240107-001", "LS-20240108-002"}},
		{" ", []string{"LS-20240107-001", "LS-20240108-002"}},
		{"  ", nil},
		{"site re", []string{"LS-20240107-001"}},
		{"website", []string{"LS-20240107-001"}},
		{"SAAS", []string{"LS-20240108-002"}},
		{"ls-20240108", []string{"LS-20240108-002"}},
		{"missing", nil},
	}
	for _, tc := range cases {
		t.Run(tc.term, func(t *testing.T) {
			got := Search(orders, tc.term)
			if len(got) != len(tc.want) {
				t.Fatalf("expected %v, got %+v", tc.want, got)
			}
			for i, id := range tc.want {
				if got[i].ID != id {
					t.Fatalf("expected %s at %d, got %s", id, i, got[i].ID)
				}
			}
		})
	}
}

func TestSettled(t *testing.T) {
	orders := []model.Order{
		order("a", "A", model.OrderStatusFinished, 1),
		order("b", "B", model.OrderStatusPending, 1),
		order("c", "C", model.OrderStatusPaid, 1),
	}
	got := Settled(orders)
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "c" {
		t.Fatalf("unexpected settled list: %+v", got)
	}
}

func TestPrioritySort(t *testing.T) {
	unsent := &model.InvoiceInfo{}
	sentAt := time.Now()
	sent := &model.InvoiceInfo{SentAt: &sentAt}

	orders := []model.Order{
		{ID: "finished", Status: model.OrderStatusFinished},
		{ID: "paid-sent", Status: model.OrderStatusPaid, Invoice: sent},
		{ID: "pending-1", Status: model.OrderStatusPending},
		{ID: "paid-unsent", Status: model.OrderStatusPaid, Invoice: unsent},
		{ID: "paid-none", Status: model.OrderStatusPaid},
		{ID: "pending-2", Status: model.OrderStatusPending},
	}

	got := PrioritySort(orders)
	want := []string{"pending-1", "pending-2", "paid-unsent", "finished", "paid-sent", "paid-none"}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("position %d: expected %s, got %s", i, id, got[i].ID)
		}
	}
	if orders[0].ID != "finished" {
		t.Fatal("input must not be reordered")
	}
}

func TestPrioritySortSeedOrders(t *testing.T) {
	got := PrioritySort(seed.Orders(time.Now()))
	if got[0].ID != "LS-20240108-002" || got[1].ID != "LS-20240107-001" {
		t.Fatalf("expected pending seed first, got %s, %s", got[0].ID, got[1].ID)
	}
}
