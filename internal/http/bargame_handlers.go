package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"grotto/internal/domain"
	"grotto/internal/service"
)

type barGameReq struct {
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	PricePerHour float64 `json:"pricePerHour"`
	Available    *bool   `json:"available"`
}

// @Summary Create bar game
// @Tags bar-games
// @Accept json
// @Produce json
// @Param input body barGameReq true "Bar game"
// @Success 201 {object} envelope{data=domain.BarGame}
// @Failure 400 {object} envelope
// @Router /bar-games [post]
func (s *Server) createBarGame(c *gin.Context) {
	var req barGameReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid json")
		return
	}
	available := true
	if req.Available != nil {
		available = *req.Available
	}
	g, err := s.games.Create(c, domain.BarGame{
		Name:         req.Name,
		Description:  req.Description,
		PricePerHour: req.PricePerHour,
		Available:    available,
	})
	if err != nil {
		respondError(c, err, "Failed to create bar game")
		return
	}
	respondData(c, http.StatusCreated, g)
}

// @Summary Get bar game by id
// @Tags bar-games
// @Produce json
// @Param id path string true "Bar game ID"
// @Success 200 {object} envelope{data=domain.BarGame}
// @Failure 404 {object} envelope
// @Router /bar-games/{id} [get]
func (s *Server) getBarGame(c *gin.Context) {
	g, err := s.games.GetByID(c, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to fetch bar game")
		return
	}
	respondData(c, http.StatusOK, g)
}

// @Summary Update bar game
// @Tags bar-games
// @Accept json
// @Produce json
// @Param id path string true "Bar game ID"
// @Param input body barGameReq true "Update"
// @Success 200 {object} envelope{data=domain.BarGame}
// @Failure 400 {object} envelope
// @Failure 404 {object} envelope
// @Router /bar-games/{id} [put]
func (s *Server) updateBarGame(c *gin.Context) {
	var req barGameReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid json")
		return
	}
	available := true
	if req.Available != nil {
		available = *req.Available
	}
	g, err := s.games.Update(c, domain.BarGame{
		ID:           c.Param("id"),
		Name:         req.Name,
		Description:  req.Description,
		PricePerHour: req.PricePerHour,
		Available:    available,
	})
	if err != nil {
		respondError(c, err, "Failed to update bar game")
		return
	}
	respondData(c, http.StatusOK, g)
}

// @Summary Delete bar game
// @Tags bar-games
// @Produce json
// @Param id path string true "Bar game ID"
// @Success 200 {object} envelope
// @Failure 404 {object} envelope
// @Router /bar-games/{id} [delete]
func (s *Server) deleteBarGame(c *gin.Context) {
	if err := s.games.Delete(c, c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete bar game")
		return
	}
	respondMessage(c, http.StatusOK, "Bar game deleted successfully")
}

// @Summary List bar games
// @Tags bar-games
// @Produce json
// @Success 200 {object} envelope{data=[]domain.BarGame}
// @Router /bar-games [get]
func (s *Server) listBarGames(c *gin.Context) {
	games, err := s.games.List(c)
	if err != nil {
		respondError(c, err, "Failed to fetch bar games")
		return
	}
	respondData(c, http.StatusOK, games)
}

type checkInReq struct {
	CustomerID string `json:"customerId"`
}

// @Summary Check in to a game
// @Tags bar-games
// @Accept json
// @Produce json
// @Param id path string true "Bar game ID"
// @Param input body checkInReq true "Customer"
// @Success 201 {object} envelope{data=domain.GameSession}
// @Failure 400 {object} envelope
// @Failure 404 {object} envelope
// @Router /bar-games/{id}/check-in [post]
func (s *Server) checkIn(c *gin.Context) {
	var req checkInReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid json")
		return
	}
	sess, err := s.sessions.CheckIn(c, c.Param("id"), req.CustomerID)
	if err != nil {
		respondError(c, err, "Failed to check in to game")
		return
	}
	respondData(c, http.StatusCreated, sess)
}

// @Summary Check out of a game session
// @Tags bar-games
// @Produce json
// @Param id path string true "Game session ID"
// @Success 200 {object} envelope{data=domain.GameSession}
// @Failure 400 {object} envelope
// @Failure 404 {object} envelope
// @Router /bar-games/game-sessions/{id}/check-out [put]
func (s *Server) checkOut(c *gin.Context) {
	sess, err := s.sessions.CheckOut(c, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to check out of game")
		return
	}
	respondData(c, http.StatusOK, sess)
}

// @Summary List active game sessions
// @Tags bar-games
// @Produce json
// @Success 200 {object} envelope{data=[]domain.GameSession}
// @Router /bar-games/game-sessions/active [get]
func (s *Server) activeSessions(c *gin.Context) {
	sessions, err := s.sessions.Active(c)
	if err != nil {
		respondError(c, err, "Failed to fetch active game sessions")
		return
	}
	respondData(c, http.StatusOK, sessions)
}

// @Summary List past game sessions
// @Tags bar-games
// @Produce json
// @Success 200 {object} envelope{data=[]domain.GameSession}
// @Router /bar-games/game-sessions/past [get]
func (s *Server) pastSessions(c *gin.Context) {
	sessions, err := s.sessions.Past(c)
	if err != nil {
		respondError(c, err, "Failed to fetch past game sessions")
		return
	}
	respondData(c, http.StatusOK, sessions)
}

type updateSessionReq struct {
	GameID     string     `json:"gameId"`
	CustomerID string     `json:"customerId"`
	StartTime  *time.Time `json:"startTime"`
}

// @Summary Update game session
// @Tags bar-games
// @Accept json
// @Produce json
// @Param id path string true "Game session ID"
// @Param input body updateSessionReq true "Update"
// @Success 200 {object} envelope{data=domain.GameSession}
// @Failure 400 {object} envelope
// @Failure 404 {object} envelope
// @Router /bar-games/game-sessions/{id} [put]
func (s *Server) updateSession(c *gin.Context) {
	var req updateSessionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid json")
		return
	}
	sess, err := s.sessions.UpdateSession(c, c.Param("id"), service.SessionUpdate{
		GameID:     req.GameID,
		CustomerID: req.CustomerID,
		StartTime:  req.StartTime,
	})
	if err != nil {
		respondError(c, err, "Failed to update game session")
		return
	}
	respondData(c, http.StatusOK, sess)
}

// @Summary Delete game session
// @Tags bar-games
// @Produce json
// @Param id path string true "Game session ID"
// @Success 200 {object} envelope
// @Failure 404 {object} envelope
// @Router /bar-games/game-sessions/{id} [delete]
func (s *Server) deleteSession(c *gin.Context) {
	if err := s.sessions.DeleteSession(c, c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete game session")
		return
	}
	respondMessage(c, http.StatusOK, "Game session deleted successfully")
}
