package service

import (
	"context"
	"errors"
	"testing"

	"grotto/internal/domain"
	"grotto/internal/repository"
)

type testEnv struct {
	repos       *repository.Set
	inventory   *InventoryService
	games       *GameService
	sessions    *SessionService
	customers   *CustomerService
	memberships *MembershipService
	orders      *OrderService
}

func setup(t *testing.T) *testEnv {
	t.Helper()
	repos := repository.NewMemorySet()
	inventory := NewInventoryService(repos.CafeItems)
	return &testEnv{
		repos:       repos,
		inventory:   inventory,
		games:       NewGameService(repos.BarGames),
		sessions:    NewSessionService(repos.BarGames, repos.Customers, repos.GameSessions, repos.Tx),
		customers:   NewCustomerService(repos.Customers, repos.Memberships, repos.Orders, repos.GameSessions),
		memberships: NewMembershipService(repos.Memberships),
		orders:      NewOrderService(repos.Orders, repos.Customers, repos.GameSessions, inventory, repos.Tx),
	}
}

func (e *testEnv) seedCustomer(t *testing.T, name string) *domain.Customer {
	t.Helper()
	c, err := e.customers.Create(context.Background(), domain.Customer{Name: name})
	if err != nil {
		t.Fatalf("seed customer: %v", err)
	}
	return c
}

func (e *testEnv) seedItem(t *testing.T, name string, price float64, qty int64) *domain.CafeItem {
	t.Helper()
	it, err := e.inventory.Create(context.Background(), domain.CafeItem{Name: name, Price: price, Quantity: qty, InStock: true})
	if err != nil {
		t.Fatalf("seed item: %v", err)
	}
	return it
}

// seedClosedSession кладёт в хранилище завершённую сессию с заданной стоимостью
func (e *testEnv) seedClosedSession(t *testing.T, customerID string, cost *float64) *domain.GameSession {
	t.Helper()
	sess := domain.GameSession{GameID: "game", CustomerID: customerID, Cost: cost}
	if cost != nil {
		end := sess.StartTime.Add(1)
		sess.EndTime = &end
	}
	if err := e.repos.GameSessions.Create(context.Background(), &sess); err != nil {
		t.Fatalf("seed session: %v", err)
	}
	return &sess
}

// checkTotal сверяет totalAmount с суммой вкладов строк
func checkTotal(t *testing.T, o *domain.Order) {
	t.Helper()
	sum := 0.0
	for _, it := range o.Items {
		switch it.ItemType {
		case domain.ItemTypeCafeItem:
			sum += it.PriceAtSale * float64(it.Quantity)
		case domain.ItemTypeGameSession:
			sum += *it.CostAtSale
		}
	}
	if o.TotalAmount != sum {
		t.Fatalf("total %v does not match items sum %v", o.TotalAmount, sum)
	}
}

func TestCreateOrder_MixedItems(t *testing.T) {
	ctx := context.Background()
	e := setup(t)
	cust := e.seedCustomer(t, "John")
	item := e.seedItem(t, "Espresso", 4, 10)
	cost := 15.0
	sess := e.seedClosedSession(t, cust.ID, &cost)

	o, err := e.orders.Create(ctx, cust.ID, []LineItem{
		{ItemID: item.ID, ItemType: domain.ItemTypeCafeItem, Quantity: 3},
		{ItemID: sess.ID, ItemType: domain.ItemTypeGameSession},
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	if len(o.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(o.Items))
	}
	if o.TotalAmount != 4*3+15 {
		t.Fatalf("total expected 27, got %v", o.TotalAmount)
	}
	checkTotal(t, o)
	if o.PaymentStatus != domain.PaymentPending {
		t.Fatalf("expected pending")
	}
	if o.Items[1].Quantity != 1 || o.Items[1].CostAtSale == nil || *o.Items[1].CostAtSale != 15 {
		t.Fatalf("session line: %+v", o.Items[1])
	}

	after, _ := e.inventory.GetByID(ctx, item.ID)
	if after.Quantity != 7 {
		t.Fatalf("stock expected 7, got %v", after.Quantity)
	}
}

func TestCreateOrder_SessionWithoutCost(t *testing.T) {
	ctx := context.Background()
	e := setup(t)
	cust := e.seedCustomer(t, "John")
	sess := e.seedClosedSession(t, cust.ID, nil)

	o, err := e.orders.Create(ctx, cust.ID, []LineItem{
		{ItemID: sess.ID, ItemType: domain.ItemTypeGameSession},
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	if o.TotalAmount != 0 || o.Items[0].PriceAtSale != 0 {
		t.Fatalf("unset session cost must bill zero: %+v", o.Items[0])
	}
}

func TestCreateOrder_CustomerNotFound(t *testing.T) {
	e := setup(t)
	item := e.seedItem(t, "Espresso", 4, 10)
	_, err := e.orders.Create(context.Background(), "missing", []LineItem{
		{ItemID: item.ID, ItemType: domain.ItemTypeCafeItem, Quantity: 1},
	})
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestCreateOrder_PartialFailure(t *testing.T) {
	ctx := context.Background()
	e := setup(t)
	cust := e.seedCustomer(t, "John")
	first := e.seedItem(t, "Espresso", 4, 10)
	second := e.seedItem(t, "Croissant", 2, 1)

	_, err := e.orders.Create(ctx, cust.ID, []LineItem{
		{ItemID: first.ID, ItemType: domain.ItemTypeCafeItem, Quantity: 3},
		{ItemID: second.ID, ItemType: domain.ItemTypeCafeItem, Quantity: 5},
	})
	if !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("expected insufficient stock, got %v", err)
	}

	// заказ не создан
	orders, _ := e.orders.List(ctx)
	if len(orders) != 0 {
		t.Fatalf("no order must be persisted, got %d", len(orders))
	}
	// но списание по первой строке осталось: компенсации нет
	f, _ := e.inventory.GetByID(ctx, first.ID)
	if f.Quantity != 7 {
		t.Fatalf("first item stock expected 7, got %v", f.Quantity)
	}
	s, _ := e.inventory.GetByID(ctx, second.ID)
	if s.Quantity != 1 {
		t.Fatalf("second item stock expected 1, got %v", s.Quantity)
	}
}

func TestCreateOrder_InvalidInput(t *testing.T) {
	ctx := context.Background()
	e := setup(t)
	cust := e.seedCustomer(t, "John")
	item := e.seedItem(t, "Espresso", 4, 10)

	if _, err := e.orders.Create(ctx, "", []LineItem{{ItemID: item.ID, ItemType: domain.ItemTypeCafeItem, Quantity: 1}}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("empty customer: %v", err)
	}
	if _, err := e.orders.Create(ctx, cust.ID, nil); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("empty items: %v", err)
	}
	if _, err := e.orders.Create(ctx, cust.ID, []LineItem{{ItemID: item.ID, ItemType: domain.ItemTypeCafeItem, Quantity: 0}}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("zero quantity: %v", err)
	}
	if _, err := e.orders.Create(ctx, cust.ID, []LineItem{{ItemID: item.ID, ItemType: "Voucher", Quantity: 1}}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("unknown item type: %v", err)
	}
}

func TestAddItems(t *testing.T) {
	ctx := context.Background()
	e := setup(t)
	cust := e.seedCustomer(t, "John")
	item := e.seedItem(t, "Espresso", 4, 10)

	o, err := e.orders.Create(ctx, cust.ID, []LineItem{{ItemID: item.ID, ItemType: domain.ItemTypeCafeItem, Quantity: 2}})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	cost := 7.5
	sess := e.seedClosedSession(t, cust.ID, &cost)
	o2, err := e.orders.AddItems(ctx, o.ID, []LineItem{
		{ItemID: item.ID, ItemType: domain.ItemTypeCafeItem, Quantity: 1},
		{ItemID: sess.ID, ItemType: domain.ItemTypeGameSession},
	})
	if err != nil {
		t.Fatalf("add items: %v", err)
	}
	if len(o2.Items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(o2.Items))
	}
	if o2.TotalAmount != 8+4+7.5 {
		t.Fatalf("total expected 19.5, got %v", o2.TotalAmount)
	}
	checkTotal(t, o2)

	after, _ := e.inventory.GetByID(ctx, item.ID)
	if after.Quantity != 7 {
		t.Fatalf("stock expected 7, got %v", after.Quantity)
	}

	if _, err := e.orders.AddItems(ctx, "missing", []LineItem{{ItemID: item.ID, ItemType: domain.ItemTypeCafeItem, Quantity: 1}}); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestUpdateItemQuantity(t *testing.T) {
	ctx := context.Background()
	e := setup(t)
	cust := e.seedCustomer(t, "John")
	item := e.seedItem(t, "Espresso", 4, 10)

	o, err := e.orders.Create(ctx, cust.ID, []LineItem{{ItemID: item.ID, ItemType: domain.ItemTypeCafeItem, Quantity: 2}})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	stockBefore, _ := e.inventory.GetByID(ctx, item.ID)

	o2, err := e.orders.UpdateItemQuantity(ctx, o.ID, o.Items[0].ID, 5)
	if err != nil {
		t.Fatalf("update quantity: %v", err)
	}
	// дельта 3 × цена 4
	if o2.TotalAmount != o.TotalAmount+3*4 {
		t.Fatalf("total expected %v, got %v", o.TotalAmount+12, o2.TotalAmount)
	}
	checkTotal(t, o2)

	// склад дозаказом не трогается
	stockAfter, _ := e.inventory.GetByID(ctx, item.ID)
	if stockAfter.Quantity != stockBefore.Quantity {
		t.Fatalf("stock must not change: %v -> %v", stockBefore.Quantity, stockAfter.Quantity)
	}

	if _, err := e.orders.UpdateItemQuantity(ctx, o.ID, "missing", 2); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("missing item: %v", err)
	}
	if _, err := e.orders.UpdateItemQuantity(ctx, o.ID, o.Items[0].ID, 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("zero quantity: %v", err)
	}
}

func TestUpdateItemQuantity_SessionLineRejected(t *testing.T) {
	ctx := context.Background()
	e := setup(t)
	cust := e.seedCustomer(t, "John")
	cost := 10.0
	sess := e.seedClosedSession(t, cust.ID, &cost)

	o, err := e.orders.Create(ctx, cust.ID, []LineItem{{ItemID: sess.ID, ItemType: domain.ItemTypeGameSession}})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	if _, err := e.orders.UpdateItemQuantity(ctx, o.ID, o.Items[0].ID, 2); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("session line resize must be rejected, got %v", err)
	}
}

func TestRemoveItem(t *testing.T) {
	ctx := context.Background()
	e := setup(t)
	cust := e.seedCustomer(t, "John")
	item := e.seedItem(t, "Espresso", 4, 10)
	cost := 6.0
	sess := e.seedClosedSession(t, cust.ID, &cost)

	o, err := e.orders.Create(ctx, cust.ID, []LineItem{
		{ItemID: item.ID, ItemType: domain.ItemTypeCafeItem, Quantity: 3},
		{ItemID: sess.ID, ItemType: domain.ItemTypeGameSession},
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	o2, err := e.orders.RemoveItem(ctx, o.ID, o.Items[0].ID)
	if err != nil {
		t.Fatalf("remove item: %v", err)
	}
	if len(o2.Items) != 1 || o2.TotalAmount != 6 {
		t.Fatalf("after remove: items %d total %v", len(o2.Items), o2.TotalAmount)
	}
	checkTotal(t, o2)

	// резерв на полку не возвращается
	after, _ := e.inventory.GetByID(ctx, item.ID)
	if after.Quantity != 7 {
		t.Fatalf("stock expected 7, got %v", after.Quantity)
	}

	if _, err := e.orders.RemoveItem(ctx, o.ID, "missing"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("missing item: %v", err)
	}
}

func TestPayOrder_Terminal(t *testing.T) {
	ctx := context.Background()
	e := setup(t)
	cust := e.seedCustomer(t, "John")
	item := e.seedItem(t, "Espresso", 4, 10)

	o, err := e.orders.Create(ctx, cust.ID, []LineItem{{ItemID: item.ID, ItemType: domain.ItemTypeCafeItem, Quantity: 1}})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	paid, err := e.orders.Pay(ctx, o.ID)
	if err != nil {
		t.Fatalf("pay: %v", err)
	}
	if paid.PaymentStatus != domain.PaymentPaid {
		t.Fatalf("expected paid")
	}

	if _, err := e.orders.Pay(ctx, o.ID); !errors.Is(err, ErrOrderPaid) {
		t.Fatalf("second pay: %v", err)
	}
	got, _ := e.orders.Get(ctx, o.ID)
	if got.PaymentStatus != domain.PaymentPaid {
		t.Fatalf("status must stay paid")
	}

	// оплаченный заказ терминален для правок
	if _, err := e.orders.AddItems(ctx, o.ID, []LineItem{{ItemID: item.ID, ItemType: domain.ItemTypeCafeItem, Quantity: 1}}); !errors.Is(err, ErrOrderClosed) {
		t.Fatalf("add after pay: %v", err)
	}
	if _, err := e.orders.UpdateItemQuantity(ctx, o.ID, o.Items[0].ID, 5); !errors.Is(err, ErrOrderClosed) {
		t.Fatalf("resize after pay: %v", err)
	}
	if _, err := e.orders.RemoveItem(ctx, o.ID, o.Items[0].ID); !errors.Is(err, ErrOrderClosed) {
		t.Fatalf("remove after pay: %v", err)
	}
}

func TestCancelOrder(t *testing.T) {
	ctx := context.Background()
	e := setup(t)
	cust := e.seedCustomer(t, "John")
	item := e.seedItem(t, "Espresso", 4, 10)

	o, err := e.orders.Create(ctx, cust.ID, []LineItem{{ItemID: item.ID, ItemType: domain.ItemTypeCafeItem, Quantity: 2}})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	cancelled, err := e.orders.Cancel(ctx, o.ID)
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if cancelled.PaymentStatus != domain.PaymentCancelled {
		t.Fatalf("expected cancelled")
	}

	// отмена — только смена статуса, склад не возвращается
	after, _ := e.inventory.GetByID(ctx, item.ID)
	if after.Quantity != 8 {
		t.Fatalf("stock expected 8, got %v", after.Quantity)
	}

	if _, err := e.orders.Cancel(ctx, o.ID); !errors.Is(err, ErrOrderClosed) {
		t.Fatalf("second cancel: %v", err)
	}
	if _, err := e.orders.Pay(ctx, o.ID); !errors.Is(err, ErrOrderClosed) {
		t.Fatalf("pay after cancel: %v", err)
	}
}
