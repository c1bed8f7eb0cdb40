package service

import (
	"context"
	"errors"
	"time"

	"grotto/internal/domain"
	"grotto/internal/repository"
)

// SessionService реализует прокат игр: check-in, check-out с расчётом
// стоимости по фактическому времени, выборки и административные правки
type SessionService struct {
	games     repository.BarGameRepository
	customers repository.CustomerRepository
	sessions  repository.GameSessionRepository
	tx        repository.TxManager
	nowFn     func() time.Time
}

func NewSessionService(
	games repository.BarGameRepository,
	customers repository.CustomerRepository,
	sessions repository.GameSessionRepository,
	tx repository.TxManager,
) *SessionService {
	return &SessionService{
		games:     games,
		customers: customers,
		sessions:  sessions,
		tx:        tx,
		nowFn:     time.Now,
	}
}

var (
	ErrGameUnavailable = errors.New("game not available")
	ErrSessionActive   = errors.New("customer is already in an active game session")
	ErrSessionClosed   = errors.New("game session already ended")
)

// CheckIn открывает сессию. Отсутствующая или снятая с проката игра даёт
// один и тот же отказ; проверка «у клиента нет другой активной сессии» и
// создание идут одной критической секцией.
func (s *SessionService) CheckIn(ctx context.Context, gameID, customerID string) (*domain.GameSession, error) {
	if gameID == "" || customerID == "" {
		return nil, ErrInvalidInput
	}
	var created *domain.GameSession
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		game, err := s.games.GetByID(ctx, gameID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return ErrGameUnavailable
			}
			return err
		}
		if !game.Available {
			return ErrGameUnavailable
		}
		if _, err := s.customers.GetByID(ctx, customerID); err != nil {
			return err
		}
		if _, err := s.sessions.FindActiveByCustomer(ctx, customerID); err == nil {
			return ErrSessionActive
		} else if !errors.Is(err, repository.ErrNotFound) {
			return err
		}
		sess := domain.GameSession{
			GameID:     gameID,
			CustomerID: customerID,
			StartTime:  s.nowFn(),
		}
		if err := s.sessions.Create(ctx, &sess); err != nil {
			return err
		}
		created = &sess
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// CheckOut закрывает сессию и считает стоимость ровно один раз:
// дробные часы × цена игры в час. Если игру к этому моменту удалили,
// списывать не с чего — стоимость нулевая, check-out всё равно проходит.
func (s *SessionService) CheckOut(ctx context.Context, sessionID string) (*domain.GameSession, error) {
	if sessionID == "" {
		return nil, ErrInvalidInput
	}
	var updated *domain.GameSession
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		sess, err := s.sessions.GetByID(ctx, sessionID)
		if err != nil {
			return err
		}
		if sess.EndTime != nil {
			return ErrSessionClosed
		}
		end := s.nowFn()
		cost := 0.0
		game, err := s.games.GetByID(ctx, sess.GameID)
		switch {
		case err == nil:
			cost = end.Sub(sess.StartTime).Hours() * game.PricePerHour
		case errors.Is(err, repository.ErrNotFound):
			// cost stays 0
		default:
			return err
		}
		sess.EndTime = &end
		sess.Cost = &cost
		if err := s.sessions.Update(ctx, sess); err != nil {
			return err
		}
		updated = sess
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *SessionService) Active(ctx context.Context) ([]domain.GameSession, error) {
	active := true
	return s.sessions.List(ctx, repository.SessionFilter{Active: &active})
}

func (s *SessionService) Past(ctx context.Context) ([]domain.GameSession, error) {
	active := false
	return s.sessions.List(ctx, repository.SessionFilter{Active: &active})
}

// SessionUpdate изменяемые административным путём поля сессии
type SessionUpdate struct {
	GameID     string
	CustomerID string
	StartTime  *time.Time
}

// UpdateSession административная правка. Закрытая сессия терминальна:
// endTime и cost после check-out не пересматриваются.
func (s *SessionService) UpdateSession(ctx context.Context, id string, upd SessionUpdate) (*domain.GameSession, error) {
	if id == "" {
		return nil, ErrInvalidInput
	}
	var updated *domain.GameSession
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		sess, err := s.sessions.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if sess.EndTime != nil {
			return ErrSessionClosed
		}
		if upd.GameID != "" {
			sess.GameID = upd.GameID
		}
		if upd.CustomerID != "" {
			sess.CustomerID = upd.CustomerID
		}
		if upd.StartTime != nil {
			sess.StartTime = *upd.StartTime
		}
		if err := s.sessions.Update(ctx, sess); err != nil {
			return err
		}
		updated = sess
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *SessionService) DeleteSession(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidInput
	}
	return s.sessions.Delete(ctx, id)
}
