package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"grotto/internal/repository"
	"grotto/internal/service"
)

type Server struct {
	engine      *gin.Engine
	inventory   *service.InventoryService
	games       *service.GameService
	sessions    *service.SessionService
	customers   *service.CustomerService
	memberships *service.MembershipService
	orders      *service.OrderService
}

func NewServer(
	inventory *service.InventoryService,
	games *service.GameService,
	sessions *service.SessionService,
	customers *service.CustomerService,
	memberships *service.MembershipService,
	orders *service.OrderService,
) *Server {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	s := &Server{
		engine:      r,
		inventory:   inventory,
		games:       games,
		sessions:    sessions,
		customers:   customers,
		memberships: memberships,
		orders:      orders,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Engine() *gin.Engine { return s.engine }

func (s *Server) registerRoutes() {
	// Swagger UI
	s.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := s.engine.Group("/api")
	{
		api.GET("/health", s.health)

		items := api.Group("/cafe-items")
		items.GET("", s.listCafeItems)
		items.GET("/low-stock", s.lowStockCafeItems)
		items.GET("/category/:categoryName", s.cafeItemsByCategory)
		items.GET(":id", s.getCafeItem)
		items.POST("", s.createCafeItem)
		items.PUT(":id", s.updateCafeItem)
		items.DELETE(":id", s.deleteCafeItem)

		games := api.Group("/bar-games")
		games.GET("", s.listBarGames)
		games.GET(":id", s.getBarGame)
		games.POST("", s.createBarGame)
		games.PUT(":id", s.updateBarGame)
		games.DELETE(":id", s.deleteBarGame)
		games.POST(":id/check-in", s.checkIn)
		games.PUT("/game-sessions/:id/check-out", s.checkOut)
		games.GET("/game-sessions/active", s.activeSessions)
		games.GET("/game-sessions/past", s.pastSessions)
		games.PUT("/game-sessions/:id", s.updateSession)
		games.DELETE("/game-sessions/:id", s.deleteSession)

		customers := api.Group("/customers")
		customers.GET("", s.listCustomers)
		customers.GET("/search", s.searchCustomers)
		customers.GET(":id", s.getCustomer)
		customers.GET(":id/orders", s.customerOrders)
		customers.GET(":id/game-sessions", s.customerSessions)
		customers.POST("", s.createCustomer)
		customers.PUT(":id", s.updateCustomer)
		// link-membership исторический дубликат assign-membership
		customers.PUT(":id/assign-membership", s.assignMembership)
		customers.PUT(":id/link-membership", s.assignMembership)
		customers.DELETE(":id", s.deleteCustomer)

		memberships := api.Group("/memberships")
		memberships.GET("", s.listMemberships)
		memberships.GET(":id", s.getMembership)
		memberships.POST("", s.createMembership)
		memberships.PUT(":id", s.updateMembership)
		memberships.DELETE(":id", s.deleteMembership)

		orders := api.Group("/orders")
		orders.GET("", s.listOrders)
		orders.GET(":id", s.getOrder)
		orders.POST("", s.createOrder)
		orders.POST(":id/items", s.addOrderItems)
		orders.PUT(":id/items/:itemId", s.updateOrderItemQuantity)
		orders.DELETE(":id/items/:itemId", s.removeOrderItem)
		orders.POST(":id/pay", s.payOrder)
		orders.POST(":id/cancel", s.cancelOrder)
	}
}

// envelope единый конверт ответа API
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

func respondData(c *gin.Context, code int, data any) {
	c.JSON(code, envelope{Success: true, Data: data})
}

func respondMessage(c *gin.Context, code int, msg string) {
	c.JSON(code, envelope{Success: true, Message: msg})
}

func respondBadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, envelope{Error: msg})
}

// respondError прячет неожиданные ошибки за fallback-сообщением,
// бизнес-отказы отдаёт как есть
func respondError(c *gin.Context, err error, fallback string) {
	status := mapErrorToStatus(err)
	if status == http.StatusInternalServerError {
		c.JSON(status, envelope{Error: fallback})
		return
	}
	c.JSON(status, envelope{Error: err.Error()})
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, service.ErrInsufficientStock),
		errors.Is(err, service.ErrGameUnavailable),
		errors.Is(err, service.ErrSessionActive),
		errors.Is(err, service.ErrSessionClosed),
		errors.Is(err, service.ErrOrderPaid),
		errors.Is(err, service.ErrOrderClosed):
		return http.StatusBadRequest
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} envelope
// @Router /health [get]
func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Cafe and Bar Game Management System API is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
