package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"grotto/internal/domain"
)

type customerReq struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Membership string `json:"membership"`
}

// @Summary Create customer
// @Tags customers
// @Accept json
// @Produce json
// @Param input body customerReq true "Customer"
// @Success 201 {object} envelope{data=domain.Customer}
// @Failure 400 {object} envelope
// @Router /customers [post]
func (s *Server) createCustomer(c *gin.Context) {
	var req customerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid json")
		return
	}
	cust, err := s.customers.Create(c, domain.Customer{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		MembershipID: req.Membership,
	})
	if err != nil {
		respondError(c, err, "Failed to create customer")
		return
	}
	respondData(c, http.StatusCreated, cust)
}

// @Summary Get customer by id
// @Tags customers
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} envelope{data=domain.Customer}
// @Failure 404 {object} envelope
// @Router /customers/{id} [get]
func (s *Server) getCustomer(c *gin.Context) {
	cust, err := s.customers.GetByID(c, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to fetch customer")
		return
	}
	respondData(c, http.StatusOK, cust)
}

// @Summary Update customer
// @Tags customers
// @Accept json
// @Produce json
// @Param id path string true "Customer ID"
// @Param input body customerReq true "Update"
// @Success 200 {object} envelope{data=domain.Customer}
// @Failure 400 {object} envelope
// @Failure 404 {object} envelope
// @Router /customers/{id} [put]
func (s *Server) updateCustomer(c *gin.Context) {
	var req customerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid json")
		return
	}
	cust, err := s.customers.Update(c, domain.Customer{
		ID:           c.Param("id"),
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		MembershipID: req.Membership,
	})
	if err != nil {
		respondError(c, err, "Failed to update customer")
		return
	}
	respondData(c, http.StatusOK, cust)
}

// @Summary Delete customer
// @Tags customers
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} envelope
// @Failure 404 {object} envelope
// @Router /customers/{id} [delete]
func (s *Server) deleteCustomer(c *gin.Context) {
	if err := s.customers.Delete(c, c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete customer")
		return
	}
	respondMessage(c, http.StatusOK, "Customer deleted successfully")
}

// @Summary List customers
// @Tags customers
// @Produce json
// @Success 200 {object} envelope{data=[]domain.Customer}
// @Router /customers [get]
func (s *Server) listCustomers(c *gin.Context) {
	customers, err := s.customers.List(c)
	if err != nil {
		respondError(c, err, "Failed to fetch customers")
		return
	}
	respondData(c, http.StatusOK, customers)
}

// @Summary Search customers
// @Tags customers
// @Produce json
// @Param query query string true "Search query"
// @Success 200 {object} envelope{data=[]domain.Customer}
// @Failure 400 {object} envelope
// @Router /customers/search [get]
func (s *Server) searchCustomers(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		respondBadRequest(c, "Search query is required")
		return
	}
	customers, err := s.customers.Search(c, query)
	if err != nil {
		respondError(c, err, "Failed to search customers")
		return
	}
	respondData(c, http.StatusOK, customers)
}

// @Summary Get customer orders
// @Tags customers
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} envelope{data=[]domain.Order}
// @Router /customers/{id}/orders [get]
func (s *Server) customerOrders(c *gin.Context) {
	orders, err := s.customers.Orders(c, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to fetch customer orders")
		return
	}
	respondData(c, http.StatusOK, orders)
}

// @Summary Get customer game sessions
// @Tags customers
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} envelope{data=[]domain.GameSession}
// @Router /customers/{id}/game-sessions [get]
func (s *Server) customerSessions(c *gin.Context) {
	sessions, err := s.customers.Sessions(c, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to fetch customer game sessions")
		return
	}
	respondData(c, http.StatusOK, sessions)
}

type assignMembershipReq struct {
	MembershipID string `json:"membershipId"`
}

// @Summary Assign membership to customer
// @Tags customers
// @Accept json
// @Produce json
// @Param id path string true "Customer ID"
// @Param input body assignMembershipReq true "Membership"
// @Success 200 {object} envelope{data=domain.Customer}
// @Failure 400 {object} envelope
// @Failure 404 {object} envelope
// @Router /customers/{id}/assign-membership [put]
func (s *Server) assignMembership(c *gin.Context) {
	var req assignMembershipReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid json")
		return
	}
	cust, err := s.customers.AssignMembership(c, c.Param("id"), req.MembershipID)
	if err != nil {
		respondError(c, err, "Failed to assign membership")
		return
	}
	respondData(c, http.StatusOK, cust)
}
