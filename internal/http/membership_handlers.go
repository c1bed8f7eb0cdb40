package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"grotto/internal/domain"
)

type membershipReq struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Duration    int64   `json:"duration"`
	Price       float64 `json:"price"`
	Active      *bool   `json:"active"`
}

// @Summary Create membership
// @Tags memberships
// @Accept json
// @Produce json
// @Param input body membershipReq true "Membership"
// @Success 201 {object} envelope{data=domain.Membership}
// @Failure 400 {object} envelope
// @Router /memberships [post]
func (s *Server) createMembership(c *gin.Context) {
	var req membershipReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid json")
		return
	}
	active := true
	if req.Active != nil {
		active = *req.Active
	}
	m, err := s.memberships.Create(c, domain.Membership{
		Name:        req.Name,
		Description: req.Description,
		Duration:    req.Duration,
		Price:       req.Price,
		Active:      active,
	})
	if err != nil {
		respondError(c, err, "Failed to create membership")
		return
	}
	respondData(c, http.StatusCreated, m)
}

// @Summary Get membership by id
// @Tags memberships
// @Produce json
// @Param id path string true "Membership ID"
// @Success 200 {object} envelope{data=domain.Membership}
// @Failure 404 {object} envelope
// @Router /memberships/{id} [get]
func (s *Server) getMembership(c *gin.Context) {
	m, err := s.memberships.GetByID(c, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to fetch membership")
		return
	}
	respondData(c, http.StatusOK, m)
}

// @Summary Update membership
// @Tags memberships
// @Accept json
// @Produce json
// @Param id path string true "Membership ID"
// @Param input body membershipReq true "Update"
// @Success 200 {object} envelope{data=domain.Membership}
// @Failure 400 {object} envelope
// @Failure 404 {object} envelope
// @Router /memberships/{id} [put]
func (s *Server) updateMembership(c *gin.Context) {
	var req membershipReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid json")
		return
	}
	active := true
	if req.Active != nil {
		active = *req.Active
	}
	m, err := s.memberships.Update(c, domain.Membership{
		ID:          c.Param("id"),
		Name:        req.Name,
		Description: req.Description,
		Duration:    req.Duration,
		Price:       req.Price,
		Active:      active,
	})
	if err != nil {
		respondError(c, err, "Failed to update membership")
		return
	}
	respondData(c, http.StatusOK, m)
}

// @Summary Delete membership
// @Tags memberships
// @Produce json
// @Param id path string true "Membership ID"
// @Success 200 {object} envelope
// @Failure 404 {object} envelope
// @Router /memberships/{id} [delete]
func (s *Server) deleteMembership(c *gin.Context) {
	if err := s.memberships.Delete(c, c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete membership")
		return
	}
	respondMessage(c, http.StatusOK, "Membership deleted successfully")
}

// @Summary List memberships
// @Tags memberships
// @Produce json
// @Success 200 {object} envelope{data=[]domain.Membership}
// @Router /memberships [get]
func (s *Server) listMemberships(c *gin.Context) {
	memberships, err := s.memberships.List(c)
	if err != nil {
		respondError(c, err, "Failed to fetch memberships")
		return
	}
	respondData(c, http.StatusOK, memberships)
}
