package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"grotto/internal/domain"
)

type cafeItemReq struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Quantity    int64   `json:"quantity"`
	InStock     *bool   `json:"inStock"`
}

// @Summary Create cafe item
// @Tags cafe-items
// @Accept json
// @Produce json
// @Param input body cafeItemReq true "Cafe item"
// @Success 201 {object} envelope{data=domain.CafeItem}
// @Failure 400 {object} envelope
// @Router /cafe-items [post]
func (s *Server) createCafeItem(c *gin.Context) {
	var req cafeItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid json")
		return
	}
	// inStock по умолчанию true, даже при нулевом остатке — как в схеме хранения
	inStock := true
	if req.InStock != nil {
		inStock = *req.InStock
	}
	it, err := s.inventory.Create(c, domain.CafeItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Quantity:    req.Quantity,
		InStock:     inStock,
	})
	if err != nil {
		respondError(c, err, "Failed to create cafe item")
		return
	}
	respondData(c, http.StatusCreated, it)
}

// @Summary Get cafe item by id
// @Tags cafe-items
// @Produce json
// @Param id path string true "Cafe item ID"
// @Success 200 {object} envelope{data=domain.CafeItem}
// @Failure 404 {object} envelope
// @Router /cafe-items/{id} [get]
func (s *Server) getCafeItem(c *gin.Context) {
	it, err := s.inventory.GetByID(c, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to fetch cafe item")
		return
	}
	respondData(c, http.StatusOK, it)
}

// @Summary Update cafe item
// @Tags cafe-items
// @Accept json
// @Produce json
// @Param id path string true "Cafe item ID"
// @Param input body cafeItemReq true "Update"
// @Success 200 {object} envelope{data=domain.CafeItem}
// @Failure 400 {object} envelope
// @Failure 404 {object} envelope
// @Router /cafe-items/{id} [put]
func (s *Server) updateCafeItem(c *gin.Context) {
	var req cafeItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid json")
		return
	}
	inStock := true
	if req.InStock != nil {
		inStock = *req.InStock
	}
	it, err := s.inventory.Update(c, domain.CafeItem{
		ID:          c.Param("id"),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Quantity:    req.Quantity,
		InStock:     inStock,
	})
	if err != nil {
		respondError(c, err, "Failed to update cafe item")
		return
	}
	respondData(c, http.StatusOK, it)
}

// @Summary Delete cafe item
// @Tags cafe-items
// @Produce json
// @Param id path string true "Cafe item ID"
// @Success 200 {object} envelope
// @Failure 404 {object} envelope
// @Router /cafe-items/{id} [delete]
func (s *Server) deleteCafeItem(c *gin.Context) {
	if err := s.inventory.Delete(c, c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete cafe item")
		return
	}
	respondMessage(c, http.StatusOK, "Cafe item deleted successfully")
}

// @Summary List cafe items
// @Tags cafe-items
// @Produce json
// @Success 200 {object} envelope{data=[]domain.CafeItem}
// @Router /cafe-items [get]
func (s *Server) listCafeItems(c *gin.Context) {
	items, err := s.inventory.List(c)
	if err != nil {
		respondError(c, err, "Failed to fetch cafe items")
		return
	}
	respondData(c, http.StatusOK, items)
}

// @Summary List low stock items
// @Tags cafe-items
// @Produce json
// @Success 200 {object} envelope{data=[]domain.CafeItem}
// @Router /cafe-items/low-stock [get]
func (s *Server) lowStockCafeItems(c *gin.Context) {
	items, err := s.inventory.LowStock(c)
	if err != nil {
		respondError(c, err, "Failed to fetch low stock items")
		return
	}
	respondData(c, http.StatusOK, items)
}

// @Summary List items by category
// @Tags cafe-items
// @Produce json
// @Param categoryName path string true "Category"
// @Success 200 {object} envelope{data=[]domain.CafeItem}
// @Failure 400 {object} envelope
// @Router /cafe-items/category/{categoryName} [get]
func (s *Server) cafeItemsByCategory(c *gin.Context) {
	items, err := s.inventory.ByCategory(c, c.Param("categoryName"))
	if err != nil {
		respondError(c, err, "Failed to fetch items by category")
		return
	}
	respondData(c, http.StatusOK, items)
}
