package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"grotto/internal/config"
	httpapi "grotto/internal/http"
	"grotto/internal/repository"
	"grotto/internal/service"

	_ "grotto/docs"
)

func main() {
	cfg := config.Load()
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	var repos *repository.Set
	if cfg.MongoURI != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		store, err := repository.ConnectMongo(ctx, cfg.MongoURI, cfg.MongoDB)
		cancel()
		if err != nil {
			log.Fatalf("mongo connect: %v", err)
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := store.Close(ctx); err != nil {
				log.Printf("mongo close: %v", err)
			}
		}()
		repos = store.Repositories()
		log.Printf("connected to mongodb, database %q", cfg.MongoDB)
	} else {
		repos = repository.NewMemorySet()
		log.Printf("MONGODB_URI not set, using in-memory store")
	}

	inventorySvc := service.NewInventoryService(repos.CafeItems)
	gamesSvc := service.NewGameService(repos.BarGames)
	sessionsSvc := service.NewSessionService(repos.BarGames, repos.Customers, repos.GameSessions, repos.Tx)
	customersSvc := service.NewCustomerService(repos.Customers, repos.Memberships, repos.Orders, repos.GameSessions)
	membershipsSvc := service.NewMembershipService(repos.Memberships)
	ordersSvc := service.NewOrderService(repos.Orders, repos.Customers, repos.GameSessions, inventorySvc, repos.Tx)

	srv := httpapi.NewServer(inventorySvc, gamesSvc, sessionsSvc, customersSvc, membershipsSvc, ordersSvc)

	httpServer := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: srv.Engine(),
	}

	go func() {
		log.Printf("HTTP server listening on %s", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
