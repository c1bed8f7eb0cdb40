package repository

import (
	"context"
	"errors"
	"strings"

	"grotto/internal/domain"
)

// ErrNotFound возвращается, когда сущность не найдена
var ErrNotFound = errors.New("not found")

// LowStockThreshold остаток, ниже которого позиция считается заканчивающейся
const LowStockThreshold int64 = 10

// CafeItemFilter параметры фильтрации позиций кафе
type CafeItemFilter struct {
	Category string
	// LowStock выбирает позиции с остатком ниже порога либо помеченные как отсутствующие
	LowStock bool
}

// CustomerFilter поиск по подстроке в имени, email или телефоне
type CustomerFilter struct {
	Query string
}

// SessionFilter параметры выборки игровых сессий
type SessionFilter struct {
	CustomerID string
	// Active: nil — все, true — только идущие, false — только завершённые
	Active *bool
}

// OrderFilter параметры выборки заказов
type OrderFilter struct {
	CustomerID string
}

// CafeItemRepository интерфейс репозитория позиций кафе
type CafeItemRepository interface {
	Create(ctx context.Context, it *domain.CafeItem) error
	GetByID(ctx context.Context, id string) (*domain.CafeItem, error)
	Update(ctx context.Context, it *domain.CafeItem) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f CafeItemFilter) ([]domain.CafeItem, error)
}

// BarGameRepository интерфейс репозитория игр
type BarGameRepository interface {
	Create(ctx context.Context, g *domain.BarGame) error
	GetByID(ctx context.Context, id string) (*domain.BarGame, error)
	Update(ctx context.Context, g *domain.BarGame) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.BarGame, error)
}

// GameSessionRepository интерфейс репозитория игровых сессий
type GameSessionRepository interface {
	Create(ctx context.Context, s *domain.GameSession) error
	GetByID(ctx context.Context, id string) (*domain.GameSession, error)
	Update(ctx context.Context, s *domain.GameSession) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f SessionFilter) ([]domain.GameSession, error)
	// FindActiveByCustomer возвращает ErrNotFound, если активной сессии нет
	FindActiveByCustomer(ctx context.Context, customerID string) (*domain.GameSession, error)
}

// CustomerRepository интерфейс репозитория клиентов
type CustomerRepository interface {
	Create(ctx context.Context, c *domain.Customer) error
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
	Update(ctx context.Context, c *domain.Customer) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f CustomerFilter) ([]domain.Customer, error)
}

// MembershipRepository интерфейс репозитория абонементов
type MembershipRepository interface {
	Create(ctx context.Context, m *domain.Membership) error
	GetByID(ctx context.Context, id string) (*domain.Membership, error)
	Update(ctx context.Context, m *domain.Membership) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Membership, error)
}

// OrderRepository интерфейс репозитория заказов
type OrderRepository interface {
	Create(ctx context.Context, o *domain.Order) error
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	Update(ctx context.Context, o *domain.Order) error
	List(ctx context.Context, f OrderFilter) ([]domain.Order, error)
}

// TxManager абстракция критической секции. Для in-memory — глобальная блокировка записи,
// для mongo — сериализация в пределах процесса.
type TxManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Set объединяет репозитории одного хранилища для передачи в сервисы
type Set struct {
	CafeItems    CafeItemRepository
	BarGames     BarGameRepository
	GameSessions GameSessionRepository
	Customers    CustomerRepository
	Memberships  MembershipRepository
	Orders       OrderRepository
	Tx           TxManager
}

// helper: case-insensitive contains
func containsIgnoreCase(s, substr string) bool {
	if substr == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func isLowStock(it *domain.CafeItem) bool {
	return it.Quantity < LowStockThreshold || !it.InStock
}
