package service

import (
	"context"
	"errors"
	"fmt"

	"grotto/internal/domain"
	"grotto/internal/repository"
)

// InventoryService инкапсулирует бизнес-логику вокруг позиций кафе и их остатков
type InventoryService struct {
	items repository.CafeItemRepository
}

func NewInventoryService(items repository.CafeItemRepository) *InventoryService {
	return &InventoryService{items: items}
}

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrInsufficientStock = errors.New("insufficient stock")
)

func (s *InventoryService) Create(ctx context.Context, it domain.CafeItem) (*domain.CafeItem, error) {
	if it.Name == "" || it.Price <= 0 || it.Quantity < 0 {
		return nil, ErrInvalidInput
	}
	cp := it
	if err := s.items.Create(ctx, &cp); err != nil {
		return nil, err
	}
	return &cp, nil
}

func (s *InventoryService) GetByID(ctx context.Context, id string) (*domain.CafeItem, error) {
	if id == "" {
		return nil, ErrInvalidInput
	}
	return s.items.GetByID(ctx, id)
}

func (s *InventoryService) Update(ctx context.Context, it domain.CafeItem) (*domain.CafeItem, error) {
	if it.ID == "" || it.Name == "" || it.Price <= 0 || it.Quantity < 0 {
		return nil, ErrInvalidInput
	}
	cp := it
	if err := s.items.Update(ctx, &cp); err != nil {
		return nil, err
	}
	return &cp, nil
}

func (s *InventoryService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidInput
	}
	return s.items.Delete(ctx, id)
}

func (s *InventoryService) List(ctx context.Context) ([]domain.CafeItem, error) {
	return s.items.List(ctx, repository.CafeItemFilter{})
}

// LowStock позиции с остатком ниже порога либо снятые с продажи
func (s *InventoryService) LowStock(ctx context.Context) ([]domain.CafeItem, error) {
	return s.items.List(ctx, repository.CafeItemFilter{LowStock: true})
}

func (s *InventoryService) ByCategory(ctx context.Context, category string) ([]domain.CafeItem, error) {
	if category == "" {
		return nil, ErrInvalidInput
	}
	return s.items.List(ctx, repository.CafeItemFilter{Category: category})
}

// CheckAndReserve списывает остаток под заказ и возвращает цену единицы на
// момент продажи. Последовательность read-check-decrement не атомарна сама по
// себе: вызывающий обязан выполнять её внутри TxManager.WithTransaction.
// При обнулении остатка флаг inStock гасится; обратно он не поднимается,
// операции возврата на склад не существует.
func (s *InventoryService) CheckAndReserve(ctx context.Context, itemID string, quantity int64) (float64, error) {
	if itemID == "" || quantity <= 0 {
		return 0, ErrInvalidInput
	}
	it, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return 0, err
	}
	if it.Quantity < quantity {
		return 0, fmt.Errorf("%w for %s", ErrInsufficientStock, it.Name)
	}
	price := it.Price
	it.Quantity -= quantity
	if it.Quantity == 0 {
		it.InStock = false
	}
	if err := s.items.Update(ctx, it); err != nil {
		return 0, err
	}
	return price, nil
}
