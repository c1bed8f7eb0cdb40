package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"grotto/internal/domain"
	"grotto/internal/repository"
	"grotto/internal/service"
)

func setupServer(t *testing.T) *Server {
	t.Helper()
	repos := repository.NewMemorySet()
	inventorySvc := service.NewInventoryService(repos.CafeItems)
	gamesSvc := service.NewGameService(repos.BarGames)
	sessionsSvc := service.NewSessionService(repos.BarGames, repos.Customers, repos.GameSessions, repos.Tx)
	customersSvc := service.NewCustomerService(repos.Customers, repos.Memberships, repos.Orders, repos.GameSessions)
	membershipsSvc := service.NewMembershipService(repos.Memberships)
	ordersSvc := service.NewOrderService(repos.Orders, repos.Customers, repos.GameSessions, inventorySvc, repos.Tx)
	return NewServer(inventorySvc, gamesSvc, sessionsSvc, customersSvc, membershipsSvc, ordersSvc)
}

func doJSON(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Engine().ServeHTTP(w, req)
	return w
}

// decodeData распаковывает конверт {success, data} и отдаёт data
func decodeData[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var env struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
		Error   string          `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v (%s)", err, w.Body.String())
	}
	if !env.Success {
		t.Fatalf("expected success envelope, got error %q", env.Error)
	}
	var out T
	if err := json.Unmarshal(env.Data, &out); err != nil {
		t.Fatalf("decode data: %v (%s)", err, env.Data)
	}
	return out
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var env struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v (%s)", err, w.Body.String())
	}
	if env.Success {
		t.Fatalf("expected error envelope: %s", w.Body.String())
	}
	return env.Error
}

func TestHealth(t *testing.T) {
	s := setupServer(t)
	w := doJSON(t, s, http.MethodGet, "/api/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("health code %v", w.Code)
	}
}

func TestCafeItemFlow(t *testing.T) {
	s := setupServer(t)

	w := doJSON(t, s, http.MethodPost, "/api/cafe-items", map[string]any{
		"name": "Espresso", "price": 3.5, "category": "coffee", "quantity": 20,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create code %v: %s", w.Code, w.Body.String())
	}
	it := decodeData[domain.CafeItem](t, w)
	if it.ID == "" || !it.InStock {
		t.Fatalf("created item: %+v", it)
	}

	w = doJSON(t, s, http.MethodGet, "/api/cafe-items/"+it.ID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get code %v", w.Code)
	}

	w = doJSON(t, s, http.MethodPut, "/api/cafe-items/"+it.ID, map[string]any{
		"name": "Espresso", "price": 4.0, "category": "coffee", "quantity": 3,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("update code %v: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, s, http.MethodGet, "/api/cafe-items/low-stock", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("low-stock code %v", w.Code)
	}
	low := decodeData[[]domain.CafeItem](t, w)
	if len(low) != 1 {
		t.Fatalf("low-stock expected 1, got %d", len(low))
	}

	w = doJSON(t, s, http.MethodGet, "/api/cafe-items/category/coffee", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("category code %v", w.Code)
	}

	w = doJSON(t, s, http.MethodDelete, "/api/cafe-items/"+it.ID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete code %v", w.Code)
	}
	w = doJSON(t, s, http.MethodGet, "/api/cafe-items/"+it.ID, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %v", w.Code)
	}
}

func TestGameSessionFlow(t *testing.T) {
	s := setupServer(t)

	cust := decodeData[domain.Customer](t, doJSON(t, s, http.MethodPost, "/api/customers", map[string]any{"name": "John"}))
	game := decodeData[domain.BarGame](t, doJSON(t, s, http.MethodPost, "/api/bar-games", map[string]any{
		"name": "Darts", "pricePerHour": 10,
	}))

	w := doJSON(t, s, http.MethodPost, "/api/bar-games/"+game.ID+"/check-in", map[string]any{"customerId": cust.ID})
	if w.Code != http.StatusCreated {
		t.Fatalf("check-in code %v: %s", w.Code, w.Body.String())
	}
	sess := decodeData[domain.GameSession](t, w)

	// вторая активная сессия того же клиента
	w = doJSON(t, s, http.MethodPost, "/api/bar-games/"+game.ID+"/check-in", map[string]any{"customerId": cust.ID})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("duplicate check-in expected 400, got %v", w.Code)
	}

	w = doJSON(t, s, http.MethodGet, "/api/bar-games/game-sessions/active", nil)
	active := decodeData[[]domain.GameSession](t, w)
	if len(active) != 1 || active[0].ID != sess.ID {
		t.Fatalf("active sessions: %+v", active)
	}

	w = doJSON(t, s, http.MethodPut, "/api/bar-games/game-sessions/"+sess.ID+"/check-out", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("check-out code %v: %s", w.Code, w.Body.String())
	}
	done := decodeData[domain.GameSession](t, w)
	if done.EndTime == nil || done.Cost == nil {
		t.Fatalf("closed session: %+v", done)
	}

	w = doJSON(t, s, http.MethodPut, "/api/bar-games/game-sessions/"+sess.ID+"/check-out", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("double check-out expected 400, got %v", w.Code)
	}

	w = doJSON(t, s, http.MethodGet, "/api/bar-games/game-sessions/past", nil)
	past := decodeData[[]domain.GameSession](t, w)
	if len(past) != 1 {
		t.Fatalf("past sessions: %+v", past)
	}

	// закрытая сессия не правится и административно
	w = doJSON(t, s, http.MethodPut, "/api/bar-games/game-sessions/"+sess.ID, map[string]any{"gameId": game.ID})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("update of closed session expected 400, got %v", w.Code)
	}
}

func TestOrderFlow(t *testing.T) {
	s := setupServer(t)

	cust := decodeData[domain.Customer](t, doJSON(t, s, http.MethodPost, "/api/customers", map[string]any{"name": "John"}))
	item := decodeData[domain.CafeItem](t, doJSON(t, s, http.MethodPost, "/api/cafe-items", map[string]any{
		"name": "Espresso", "price": 4, "quantity": 10,
	}))

	w := doJSON(t, s, http.MethodPost, "/api/orders", map[string]any{
		"customerId": cust.ID,
		"items":      []map[string]any{{"itemId": item.ID, "itemType": "CafeItem", "quantity": 3}},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create order %v: %s", w.Code, w.Body.String())
	}
	o := decodeData[domain.Order](t, w)
	if o.TotalAmount != 12 {
		t.Fatalf("total expected 12, got %v", o.TotalAmount)
	}

	w = doJSON(t, s, http.MethodPost, "/api/orders/"+o.ID+"/items", map[string]any{
		"items": []map[string]any{{"itemId": item.ID, "itemType": "CafeItem", "quantity": 1}},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("add items %v: %s", w.Code, w.Body.String())
	}
	o = decodeData[domain.Order](t, w)
	if len(o.Items) != 2 || o.TotalAmount != 16 {
		t.Fatalf("after add: %+v", o)
	}

	w = doJSON(t, s, http.MethodPut, "/api/orders/"+o.ID+"/items/"+o.Items[0].ID, map[string]any{"quantity": 5})
	if w.Code != http.StatusOK {
		t.Fatalf("update quantity %v: %s", w.Code, w.Body.String())
	}
	o = decodeData[domain.Order](t, w)
	if o.TotalAmount != 24 {
		t.Fatalf("total after resize expected 24, got %v", o.TotalAmount)
	}

	w = doJSON(t, s, http.MethodDelete, "/api/orders/"+o.ID+"/items/"+o.Items[1].ID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("remove item %v", w.Code)
	}

	w = doJSON(t, s, http.MethodPost, "/api/orders/"+o.ID+"/pay", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("pay %v: %s", w.Code, w.Body.String())
	}
	paid := decodeData[domain.Order](t, w)
	if paid.PaymentStatus != domain.PaymentPaid {
		t.Fatalf("expected paid, got %v", paid.PaymentStatus)
	}

	w = doJSON(t, s, http.MethodPost, "/api/orders/"+o.ID+"/pay", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("double pay expected 400, got %v", w.Code)
	}
	w = doJSON(t, s, http.MethodPost, "/api/orders/"+o.ID+"/cancel", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("cancel of paid expected 400, got %v", w.Code)
	}
}

func TestOrderInsufficientStock(t *testing.T) {
	s := setupServer(t)
	cust := decodeData[domain.Customer](t, doJSON(t, s, http.MethodPost, "/api/customers", map[string]any{"name": "John"}))
	item := decodeData[domain.CafeItem](t, doJSON(t, s, http.MethodPost, "/api/cafe-items", map[string]any{
		"name": "Espresso", "price": 4, "quantity": 2,
	}))

	w := doJSON(t, s, http.MethodPost, "/api/orders", map[string]any{
		"customerId": cust.ID,
		"items":      []map[string]any{{"itemId": item.ID, "itemType": "CafeItem", "quantity": 5}},
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", w.Code)
	}
	if msg := decodeError(t, w); !strings.Contains(msg, "insufficient stock") {
		t.Fatalf("error message: %q", msg)
	}

	// заказ не создан
	w = doJSON(t, s, http.MethodGet, "/api/orders", nil)
	if orders := decodeData[[]domain.Order](t, w); len(orders) != 0 {
		t.Fatalf("orders expected 0, got %d", len(orders))
	}
}

func TestCustomerEndpoints(t *testing.T) {
	s := setupServer(t)

	cust := decodeData[domain.Customer](t, doJSON(t, s, http.MethodPost, "/api/customers", map[string]any{
		"name": "Alice", "email": "alice@example.com", "phone": "111",
	}))
	m := decodeData[domain.Membership](t, doJSON(t, s, http.MethodPost, "/api/memberships", map[string]any{
		"name": "Gold", "duration": 30, "price": 25,
	}))

	w := doJSON(t, s, http.MethodGet, "/api/customers/search?query=ali", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("search %v", w.Code)
	}
	if found := decodeData[[]domain.Customer](t, w); len(found) != 1 {
		t.Fatalf("search expected 1, got %d", len(found))
	}
	w = doJSON(t, s, http.MethodGet, "/api/customers/search", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("empty query expected 400, got %v", w.Code)
	}

	w = doJSON(t, s, http.MethodPut, "/api/customers/"+cust.ID+"/assign-membership", map[string]any{"membershipId": m.ID})
	if w.Code != http.StatusOK {
		t.Fatalf("assign membership %v: %s", w.Code, w.Body.String())
	}
	if got := decodeData[domain.Customer](t, w); got.MembershipID != m.ID {
		t.Fatalf("membership not linked: %+v", got)
	}

	// устаревший маршрут работает так же
	w = doJSON(t, s, http.MethodPut, "/api/customers/"+cust.ID+"/link-membership", map[string]any{"membershipId": m.ID})
	if w.Code != http.StatusOK {
		t.Fatalf("link membership %v", w.Code)
	}

	w = doJSON(t, s, http.MethodGet, "/api/customers/"+cust.ID+"/orders", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("customer orders %v", w.Code)
	}
	w = doJSON(t, s, http.MethodGet, "/api/customers/"+cust.ID+"/game-sessions", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("customer sessions %v", w.Code)
	}
}

func TestHTTP_BadRequests(t *testing.T) {
	s := setupServer(t)

	w := doJSON(t, s, http.MethodPost, "/api/cafe-items", map[string]any{"name": ""})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", w.Code)
	}

	w = doJSON(t, s, http.MethodPost, "/api/bar-games/some-id/check-in", map[string]any{"customerId": "x"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("check-in on unknown game expected 400, got %v", w.Code)
	}

	w = doJSON(t, s, http.MethodGet, "/api/orders/missing", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %v", w.Code)
	}
	w = doJSON(t, s, http.MethodGet, "/api/customers/missing", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %v", w.Code)
	}
}
