package service

import (
	"context"

	"grotto/internal/domain"
	"grotto/internal/repository"
)

// CustomerService справочник клиентов и привязка абонементов
type CustomerService struct {
	customers   repository.CustomerRepository
	memberships repository.MembershipRepository
	orders      repository.OrderRepository
	sessions    repository.GameSessionRepository
}

func NewCustomerService(
	customers repository.CustomerRepository,
	memberships repository.MembershipRepository,
	orders repository.OrderRepository,
	sessions repository.GameSessionRepository,
) *CustomerService {
	return &CustomerService{
		customers:   customers,
		memberships: memberships,
		orders:      orders,
		sessions:    sessions,
	}
}

func (s *CustomerService) Create(ctx context.Context, c domain.Customer) (*domain.Customer, error) {
	if c.Name == "" {
		return nil, ErrInvalidInput
	}
	cp := c
	if err := s.customers.Create(ctx, &cp); err != nil {
		return nil, err
	}
	return &cp, nil
}

func (s *CustomerService) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	if id == "" {
		return nil, ErrInvalidInput
	}
	return s.customers.GetByID(ctx, id)
}

func (s *CustomerService) Update(ctx context.Context, c domain.Customer) (*domain.Customer, error) {
	if c.ID == "" || c.Name == "" {
		return nil, ErrInvalidInput
	}
	cp := c
	if err := s.customers.Update(ctx, &cp); err != nil {
		return nil, err
	}
	return &cp, nil
}

func (s *CustomerService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidInput
	}
	return s.customers.Delete(ctx, id)
}

func (s *CustomerService) List(ctx context.Context) ([]domain.Customer, error) {
	return s.customers.List(ctx, repository.CustomerFilter{})
}

// Search подстрочный поиск по имени, email и телефону
func (s *CustomerService) Search(ctx context.Context, query string) ([]domain.Customer, error) {
	if query == "" {
		return nil, ErrInvalidInput
	}
	return s.customers.List(ctx, repository.CustomerFilter{Query: query})
}

// Orders заказы клиента; несуществующий клиент даёт пустой список
func (s *CustomerService) Orders(ctx context.Context, customerID string) ([]domain.Order, error) {
	if customerID == "" {
		return nil, ErrInvalidInput
	}
	return s.orders.List(ctx, repository.OrderFilter{CustomerID: customerID})
}

// Sessions игровые сессии клиента, активные и завершённые
func (s *CustomerService) Sessions(ctx context.Context, customerID string) ([]domain.GameSession, error) {
	if customerID == "" {
		return nil, ErrInvalidInput
	}
	return s.sessions.List(ctx, repository.SessionFilter{CustomerID: customerID})
}

// AssignMembership привязывает абонемент к клиенту
func (s *CustomerService) AssignMembership(ctx context.Context, customerID, membershipID string) (*domain.Customer, error) {
	if customerID == "" || membershipID == "" {
		return nil, ErrInvalidInput
	}
	if _, err := s.memberships.GetByID(ctx, membershipID); err != nil {
		return nil, err
	}
	c, err := s.customers.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	c.MembershipID = membershipID
	if err := s.customers.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}
