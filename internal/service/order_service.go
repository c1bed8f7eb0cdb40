package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"grotto/internal/domain"
	"grotto/internal/repository"
)

// OrderService реализует составные заказы: сборка из строк двух типов,
// поддержание totalAmount и переходы статуса оплаты
type OrderService struct {
	orders    repository.OrderRepository
	customers repository.CustomerRepository
	sessions  repository.GameSessionRepository
	inventory *InventoryService
	tx        repository.TxManager
}

func NewOrderService(
	orders repository.OrderRepository,
	customers repository.CustomerRepository,
	sessions repository.GameSessionRepository,
	inventory *InventoryService,
	tx repository.TxManager,
) *OrderService {
	return &OrderService{
		orders:    orders,
		customers: customers,
		sessions:  sessions,
		inventory: inventory,
		tx:        tx,
	}
}

var (
	ErrOrderPaid   = errors.New("order is already paid")
	ErrOrderClosed = errors.New("order can no longer be modified")
)

// LineItem строка запроса на добавление в заказ
type LineItem struct {
	ItemID   string          `json:"itemId"`
	ItemType domain.ItemType `json:"itemType"`
	Quantity int64           `json:"quantity"`
}

func validateLines(lines []LineItem) error {
	if len(lines) == 0 {
		return ErrInvalidInput
	}
	for _, l := range lines {
		if l.ItemID == "" {
			return ErrInvalidInput
		}
		switch l.ItemType {
		case domain.ItemTypeCafeItem:
			if l.Quantity <= 0 {
				return ErrInvalidInput
			}
		case domain.ItemTypeGameSession:
			// quantity фиксировано равным 1, присланное значение игнорируется
		default:
			return ErrInvalidInput
		}
	}
	return nil
}

// Create собирает заказ, обрабатывая строки строго последовательно.
// Первая неудачная строка прерывает вызов без создания заказа; уже
// выполненные списания склада при этом НЕ откатываются — принятый риск,
// операции возврата резерва не существует.
func (s *OrderService) Create(ctx context.Context, customerID string, lines []LineItem) (*domain.Order, error) {
	if customerID == "" {
		return nil, ErrInvalidInput
	}
	if err := validateLines(lines); err != nil {
		return nil, err
	}
	var created *domain.Order
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.customers.GetByID(ctx, customerID); err != nil {
			return err
		}
		o := domain.Order{
			CustomerID:    customerID,
			Items:         make([]domain.OrderItem, 0, len(lines)),
			PaymentStatus: domain.PaymentPending,
		}
		if err := s.appendLines(ctx, &o, lines); err != nil {
			return err
		}
		if err := s.orders.Create(ctx, &o); err != nil {
			return err
		}
		created = &o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// appendLines общая часть Create/AddItems: резервирует склад для кафе-строк,
// снимает снапшот стоимости для сессий, наращивает totalAmount построчно
func (s *OrderService) appendLines(ctx context.Context, o *domain.Order, lines []LineItem) error {
	for _, l := range lines {
		switch l.ItemType {
		case domain.ItemTypeCafeItem:
			price, err := s.inventory.CheckAndReserve(ctx, l.ItemID, l.Quantity)
			if err != nil {
				return err
			}
			o.Items = append(o.Items, domain.OrderItem{
				ID:          uuid.NewString(),
				ItemID:      l.ItemID,
				ItemType:    domain.ItemTypeCafeItem,
				Quantity:    l.Quantity,
				PriceAtSale: price,
			})
			o.TotalAmount += price * float64(l.Quantity)
		case domain.ItemTypeGameSession:
			sess, err := s.sessions.GetByID(ctx, l.ItemID)
			if err != nil {
				return err
			}
			cost := 0.0
			if sess.Cost != nil {
				cost = *sess.Cost
			}
			o.Items = append(o.Items, domain.OrderItem{
				ID:          uuid.NewString(),
				ItemID:      l.ItemID,
				ItemType:    domain.ItemTypeGameSession,
				Quantity:    1,
				PriceAtSale: cost,
				CostAtSale:  &cost,
			})
			o.TotalAmount += cost
		}
	}
	return nil
}

// AddItems дописывает строки в существующий заказ; семантика построчной
// обработки и частичного отказа та же, что у Create
func (s *OrderService) AddItems(ctx context.Context, orderID string, lines []LineItem) (*domain.Order, error) {
	if orderID == "" {
		return nil, ErrInvalidInput
	}
	if err := validateLines(lines); err != nil {
		return nil, err
	}
	var updated *domain.Order
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		o, err := s.orders.GetByID(ctx, orderID)
		if err != nil {
			return err
		}
		if o.Terminal() {
			return ErrOrderClosed
		}
		if err := s.appendLines(ctx, o, lines); err != nil {
			return err
		}
		if err := s.orders.Update(ctx, o); err != nil {
			return err
		}
		updated = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// UpdateItemQuantity меняет количество в кафе-строке: к totalAmount
// применяется дельта по цене на момент продажи. Складской остаток при этом
// сознательно не трогается — дозаказ количества резерв не добирает.
func (s *OrderService) UpdateItemQuantity(ctx context.Context, orderID, orderItemID string, quantity int64) (*domain.Order, error) {
	if orderID == "" || orderItemID == "" || quantity <= 0 {
		return nil, ErrInvalidInput
	}
	var updated *domain.Order
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		o, err := s.orders.GetByID(ctx, orderID)
		if err != nil {
			return err
		}
		if o.Terminal() {
			return ErrOrderClosed
		}
		idx := findItem(o, orderItemID)
		if idx < 0 {
			return repository.ErrNotFound
		}
		if o.Items[idx].ItemType == domain.ItemTypeGameSession {
			// сессия всегда одной строкой количеством 1
			return ErrInvalidInput
		}
		diff := quantity - o.Items[idx].Quantity
		o.Items[idx].Quantity = quantity
		o.TotalAmount += float64(diff) * o.Items[idx].PriceAtSale
		if err := s.orders.Update(ctx, o); err != nil {
			return err
		}
		updated = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// RemoveItem убирает строку и вычитает её полный вклад из totalAmount.
// Зарезервированный под строку склад не возвращается.
func (s *OrderService) RemoveItem(ctx context.Context, orderID, orderItemID string) (*domain.Order, error) {
	if orderID == "" || orderItemID == "" {
		return nil, ErrInvalidInput
	}
	var updated *domain.Order
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		o, err := s.orders.GetByID(ctx, orderID)
		if err != nil {
			return err
		}
		if o.Terminal() {
			return ErrOrderClosed
		}
		idx := findItem(o, orderItemID)
		if idx < 0 {
			return repository.ErrNotFound
		}
		it := o.Items[idx]
		// для сессий priceAtSale == costAtSale при quantity 1,
		// так что формула покрывает оба типа строк
		o.TotalAmount -= it.PriceAtSale * float64(it.Quantity)
		o.Items = append(o.Items[:idx], o.Items[idx+1:]...)
		if err := s.orders.Update(ctx, o); err != nil {
			return err
		}
		updated = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Pay переводит заказ в Paid. Сверки суммы и способа оплаты нет — это
// только смена статуса; Paid терминален.
func (s *OrderService) Pay(ctx context.Context, orderID string) (*domain.Order, error) {
	if orderID == "" {
		return nil, ErrInvalidInput
	}
	var updated *domain.Order
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		o, err := s.orders.GetByID(ctx, orderID)
		if err != nil {
			return err
		}
		if o.PaymentStatus == domain.PaymentPaid {
			return ErrOrderPaid
		}
		if o.PaymentStatus == domain.PaymentCancelled {
			return ErrOrderClosed
		}
		o.PaymentStatus = domain.PaymentPaid
		if err := s.orders.Update(ctx, o); err != nil {
			return err
		}
		updated = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Cancel переводит заказ в Cancelled. Смена статуса без компенсаций:
// списанный под заказ склад на полку не возвращается.
func (s *OrderService) Cancel(ctx context.Context, orderID string) (*domain.Order, error) {
	if orderID == "" {
		return nil, ErrInvalidInput
	}
	var updated *domain.Order
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		o, err := s.orders.GetByID(ctx, orderID)
		if err != nil {
			return err
		}
		if o.Terminal() {
			return ErrOrderClosed
		}
		o.PaymentStatus = domain.PaymentCancelled
		if err := s.orders.Update(ctx, o); err != nil {
			return err
		}
		updated = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *OrderService) Get(ctx context.Context, id string) (*domain.Order, error) {
	if id == "" {
		return nil, ErrInvalidInput
	}
	return s.orders.GetByID(ctx, id)
}

func (s *OrderService) List(ctx context.Context) ([]domain.Order, error) {
	return s.orders.List(ctx, repository.OrderFilter{})
}

func findItem(o *domain.Order, orderItemID string) int {
	for i := range o.Items {
		if o.Items[i].ID == orderItemID {
			return i
		}
	}
	return -1
}
