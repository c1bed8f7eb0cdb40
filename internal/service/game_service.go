package service

import (
	"context"

	"grotto/internal/domain"
	"grotto/internal/repository"
)

// GameService CRUD каталога игр; прокат как таковой живёт в SessionService
type GameService struct {
	games repository.BarGameRepository
}

func NewGameService(games repository.BarGameRepository) *GameService {
	return &GameService{games: games}
}

func (s *GameService) Create(ctx context.Context, g domain.BarGame) (*domain.BarGame, error) {
	if g.Name == "" || g.PricePerHour <= 0 {
		return nil, ErrInvalidInput
	}
	cp := g
	if err := s.games.Create(ctx, &cp); err != nil {
		return nil, err
	}
	return &cp, nil
}

func (s *GameService) GetByID(ctx context.Context, id string) (*domain.BarGame, error) {
	if id == "" {
		return nil, ErrInvalidInput
	}
	return s.games.GetByID(ctx, id)
}

func (s *GameService) Update(ctx context.Context, g domain.BarGame) (*domain.BarGame, error) {
	if g.ID == "" || g.Name == "" || g.PricePerHour <= 0 {
		return nil, ErrInvalidInput
	}
	cp := g
	if err := s.games.Update(ctx, &cp); err != nil {
		return nil, err
	}
	return &cp, nil
}

func (s *GameService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidInput
	}
	return s.games.Delete(ctx, id)
}

func (s *GameService) List(ctx context.Context) ([]domain.BarGame, error) {
	return s.games.List(ctx)
}
