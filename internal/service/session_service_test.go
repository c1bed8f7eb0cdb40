package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"grotto/internal/domain"
	"grotto/internal/repository"
)

func (e *testEnv) seedGame(t *testing.T, name string, pricePerHour float64, available bool) *domain.BarGame {
	t.Helper()
	g, err := e.games.Create(context.Background(), domain.BarGame{Name: name, PricePerHour: pricePerHour, Available: available})
	if err != nil {
		t.Fatalf("seed game: %v", err)
	}
	return g
}

func TestCheckInCheckOut_Cost(t *testing.T) {
	ctx := context.Background()
	e := setup(t)
	cust := e.seedCustomer(t, "John")
	game := e.seedGame(t, "Darts", 10, true)

	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	e.sessions.nowFn = func() time.Time { return start }

	sess, err := e.sessions.CheckIn(ctx, game.ID, cust.ID)
	if err != nil {
		t.Fatalf("check-in: %v", err)
	}
	if !sess.StartTime.Equal(start) || sess.EndTime != nil || sess.Cost != nil {
		t.Fatalf("fresh session: %+v", sess)
	}

	// 90 минут проката по 10/час
	e.sessions.nowFn = func() time.Time { return start.Add(90 * time.Minute) }
	done, err := e.sessions.CheckOut(ctx, sess.ID)
	if err != nil {
		t.Fatalf("check-out: %v", err)
	}
	if done.EndTime == nil || done.Cost == nil {
		t.Fatalf("closed session: %+v", done)
	}
	if *done.Cost != 15.0 {
		t.Fatalf("cost expected 15, got %v", *done.Cost)
	}
}

func TestCheckIn_Rejections(t *testing.T) {
	ctx := context.Background()
	e := setup(t)
	cust := e.seedCustomer(t, "John")
	game := e.seedGame(t, "Darts", 10, true)
	shelved := e.seedGame(t, "Jenga", 5, false)

	if _, err := e.sessions.CheckIn(ctx, "missing", cust.ID); !errors.Is(err, ErrGameUnavailable) {
		t.Fatalf("missing game: %v", err)
	}
	if _, err := e.sessions.CheckIn(ctx, shelved.ID, cust.ID); !errors.Is(err, ErrGameUnavailable) {
		t.Fatalf("unavailable game: %v", err)
	}
	if _, err := e.sessions.CheckIn(ctx, game.ID, "missing"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("missing customer: %v", err)
	}

	sess, err := e.sessions.CheckIn(ctx, game.ID, cust.ID)
	if err != nil {
		t.Fatalf("check-in: %v", err)
	}
	// одна активная сессия на клиента, игра не важна
	if _, err := e.sessions.CheckIn(ctx, game.ID, cust.ID); !errors.Is(err, ErrSessionActive) {
		t.Fatalf("second check-in: %v", err)
	}
	other := e.seedGame(t, "Pool", 20, true)
	if _, err := e.sessions.CheckIn(ctx, other.ID, cust.ID); !errors.Is(err, ErrSessionActive) {
		t.Fatalf("second check-in other game: %v", err)
	}

	if _, err := e.sessions.CheckOut(ctx, sess.ID); err != nil {
		t.Fatalf("check-out: %v", err)
	}
	if _, err := e.sessions.CheckIn(ctx, other.ID, cust.ID); err != nil {
		t.Fatalf("check-in after check-out: %v", err)
	}
}

func TestCheckOut_Terminal(t *testing.T) {
	ctx := context.Background()
	e := setup(t)
	cust := e.seedCustomer(t, "John")
	game := e.seedGame(t, "Darts", 10, true)

	sess, err := e.sessions.CheckIn(ctx, game.ID, cust.ID)
	if err != nil {
		t.Fatalf("check-in: %v", err)
	}
	done, err := e.sessions.CheckOut(ctx, sess.ID)
	if err != nil {
		t.Fatalf("check-out: %v", err)
	}

	if _, err := e.sessions.CheckOut(ctx, sess.ID); !errors.Is(err, ErrSessionClosed) {
		t.Fatalf("double check-out: %v", err)
	}
	again, _ := e.repos.GameSessions.GetByID(ctx, sess.ID)
	if !again.EndTime.Equal(*done.EndTime) || *again.Cost != *done.Cost {
		t.Fatalf("closed session must not change: %+v vs %+v", again, done)
	}

	if _, err := e.sessions.CheckOut(ctx, "missing"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("missing session: %v", err)
	}
}

func TestCheckOut_GameDeleted(t *testing.T) {
	ctx := context.Background()
	e := setup(t)
	cust := e.seedCustomer(t, "John")
	game := e.seedGame(t, "Darts", 10, true)

	sess, err := e.sessions.CheckIn(ctx, game.ID, cust.ID)
	if err != nil {
		t.Fatalf("check-in: %v", err)
	}
	if err := e.games.Delete(ctx, game.ID); err != nil {
		t.Fatalf("delete game: %v", err)
	}

	done, err := e.sessions.CheckOut(ctx, sess.ID)
	if err != nil {
		t.Fatalf("check-out after game delete: %v", err)
	}
	if done.Cost == nil || *done.Cost != 0 {
		t.Fatalf("cost expected 0, got %+v", done.Cost)
	}
}

func TestSessionListings(t *testing.T) {
	ctx := context.Background()
	e := setup(t)
	c1 := e.seedCustomer(t, "John")
	c2 := e.seedCustomer(t, "Jane")
	game := e.seedGame(t, "Darts", 10, true)

	s1, _ := e.sessions.CheckIn(ctx, game.ID, c1.ID)
	s2, _ := e.sessions.CheckIn(ctx, game.ID, c2.ID)
	if _, err := e.sessions.CheckOut(ctx, s2.ID); err != nil {
		t.Fatalf("check-out: %v", err)
	}

	active, _ := e.sessions.Active(ctx)
	if len(active) != 1 || active[0].ID != s1.ID {
		t.Fatalf("active: %v", active)
	}
	past, _ := e.sessions.Past(ctx)
	if len(past) != 1 || past[0].ID != s2.ID {
		t.Fatalf("past: %v", past)
	}
}

func TestUpdateSession(t *testing.T) {
	ctx := context.Background()
	e := setup(t)
	cust := e.seedCustomer(t, "John")
	game := e.seedGame(t, "Darts", 10, true)

	sess, err := e.sessions.CheckIn(ctx, game.ID, cust.ID)
	if err != nil {
		t.Fatalf("check-in: %v", err)
	}

	newStart := sess.StartTime.Add(-30 * time.Minute)
	upd, err := e.sessions.UpdateSession(ctx, sess.ID, SessionUpdate{StartTime: &newStart})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !upd.StartTime.Equal(newStart) || upd.GameID != game.ID {
		t.Fatalf("merged update: %+v", upd)
	}

	if _, err := e.sessions.CheckOut(ctx, sess.ID); err != nil {
		t.Fatalf("check-out: %v", err)
	}
	if _, err := e.sessions.UpdateSession(ctx, sess.ID, SessionUpdate{GameID: "other"}); !errors.Is(err, ErrSessionClosed) {
		t.Fatalf("update of closed session: %v", err)
	}
}
