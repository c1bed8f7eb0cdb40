package service

import (
	"context"

	"grotto/internal/domain"
	"grotto/internal/repository"
)

// MembershipService CRUD абонементов
type MembershipService struct {
	memberships repository.MembershipRepository
}

func NewMembershipService(memberships repository.MembershipRepository) *MembershipService {
	return &MembershipService{memberships: memberships}
}

func (s *MembershipService) Create(ctx context.Context, m domain.Membership) (*domain.Membership, error) {
	if m.Name == "" || m.Duration <= 0 || m.Price < 0 {
		return nil, ErrInvalidInput
	}
	cp := m
	if err := s.memberships.Create(ctx, &cp); err != nil {
		return nil, err
	}
	return &cp, nil
}

func (s *MembershipService) GetByID(ctx context.Context, id string) (*domain.Membership, error) {
	if id == "" {
		return nil, ErrInvalidInput
	}
	return s.memberships.GetByID(ctx, id)
}

func (s *MembershipService) Update(ctx context.Context, m domain.Membership) (*domain.Membership, error) {
	if m.ID == "" || m.Name == "" || m.Duration <= 0 || m.Price < 0 {
		return nil, ErrInvalidInput
	}
	cp := m
	if err := s.memberships.Update(ctx, &cp); err != nil {
		return nil, err
	}
	return &cp, nil
}

func (s *MembershipService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidInput
	}
	return s.memberships.Delete(ctx, id)
}

func (s *MembershipService) List(ctx context.Context) ([]domain.Membership, error) {
	return s.memberships.List(ctx)
}
