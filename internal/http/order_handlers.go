package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"grotto/internal/service"
)

type createOrderReq struct {
	CustomerID string             `json:"customerId"`
	Items      []service.LineItem `json:"items"`
}

// @Summary Create order
// @Tags orders
// @Accept json
// @Produce json
// @Param input body createOrderReq true "Order"
// @Success 201 {object} envelope{data=domain.Order}
// @Failure 400 {object} envelope
// @Failure 404 {object} envelope
// @Router /orders [post]
func (s *Server) createOrder(c *gin.Context) {
	var req createOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid json")
		return
	}
	o, err := s.orders.Create(c, req.CustomerID, req.Items)
	if err != nil {
		respondError(c, err, "Failed to create order")
		return
	}
	respondData(c, http.StatusCreated, o)
}

// @Summary Get order by id
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} envelope{data=domain.Order}
// @Failure 404 {object} envelope
// @Router /orders/{id} [get]
func (s *Server) getOrder(c *gin.Context) {
	o, err := s.orders.Get(c, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to fetch order")
		return
	}
	respondData(c, http.StatusOK, o)
}

// @Summary List orders
// @Tags orders
// @Produce json
// @Success 200 {object} envelope{data=[]domain.Order}
// @Router /orders [get]
func (s *Server) listOrders(c *gin.Context) {
	orders, err := s.orders.List(c)
	if err != nil {
		respondError(c, err, "Failed to fetch orders")
		return
	}
	respondData(c, http.StatusOK, orders)
}

type addItemsReq struct {
	Items []service.LineItem `json:"items"`
}

// @Summary Add items to order
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param input body addItemsReq true "Items"
// @Success 200 {object} envelope{data=domain.Order}
// @Failure 400 {object} envelope
// @Failure 404 {object} envelope
// @Router /orders/{id}/items [post]
func (s *Server) addOrderItems(c *gin.Context) {
	var req addItemsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid json")
		return
	}
	o, err := s.orders.AddItems(c, c.Param("id"), req.Items)
	if err != nil {
		respondError(c, err, "Failed to add items to order")
		return
	}
	respondData(c, http.StatusOK, o)
}

type updateQuantityReq struct {
	Quantity int64 `json:"quantity"`
}

// @Summary Update order item quantity
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param itemId path string true "Order item ID"
// @Param input body updateQuantityReq true "Quantity"
// @Success 200 {object} envelope{data=domain.Order}
// @Failure 400 {object} envelope
// @Failure 404 {object} envelope
// @Router /orders/{id}/items/{itemId} [put]
func (s *Server) updateOrderItemQuantity(c *gin.Context) {
	var req updateQuantityReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid json")
		return
	}
	o, err := s.orders.UpdateItemQuantity(c, c.Param("id"), c.Param("itemId"), req.Quantity)
	if err != nil {
		respondError(c, err, "Failed to update item quantity")
		return
	}
	respondData(c, http.StatusOK, o)
}

// @Summary Remove item from order
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Param itemId path string true "Order item ID"
// @Success 200 {object} envelope{data=domain.Order}
// @Failure 400 {object} envelope
// @Failure 404 {object} envelope
// @Router /orders/{id}/items/{itemId} [delete]
func (s *Server) removeOrderItem(c *gin.Context) {
	o, err := s.orders.RemoveItem(c, c.Param("id"), c.Param("itemId"))
	if err != nil {
		respondError(c, err, "Failed to remove items from order")
		return
	}
	respondData(c, http.StatusOK, o)
}

// @Summary Pay for order
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} envelope{data=domain.Order}
// @Failure 400 {object} envelope
// @Failure 404 {object} envelope
// @Router /orders/{id}/pay [post]
func (s *Server) payOrder(c *gin.Context) {
	o, err := s.orders.Pay(c, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to process payment")
		return
	}
	respondData(c, http.StatusOK, o)
}

// @Summary Cancel order
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} envelope{data=domain.Order}
// @Failure 400 {object} envelope
// @Failure 404 {object} envelope
// @Router /orders/{id}/cancel [post]
func (s *Server) cancelOrder(c *gin.Context) {
	o, err := s.orders.Cancel(c, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to cancel order")
		return
	}
	respondData(c, http.StatusOK, o)
}
