package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/GGmuzem/stackcalc/internal/auth"
	"github.com/GGmuzem/stackcalc/internal/config"
	"github.com/GGmuzem/stackcalc/internal/handlers"
	"github.com/GGmuzem/stackcalc/internal/service"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatalf("Ошибка загрузки настроек: %v", err)
	}

	var authenticator *auth.Authenticator
	if cfg.AuthEnabled() {
		authenticator, err = auth.NewAuthenticator(cfg.JWTSecret, cfg.TokenTTL)
		if err != nil {
			log.Fatalf("Ошибка настройки авторизации: %v", err)
		}
		log.Println("Авторизация по JWT включена")
	} else {
		log.Println("JWT_SECRET не задан, API доступно без токена")
	}

	svc := service.NewCalculatorService(cfg.MaxExpressionLength)

	grpcServer, err := service.StartGRPCServer(cfg.GRPCPort, svc)
	if err != nil {
		log.Fatalf("Ошибка запуска gRPC сервера: %v", err)
	}

	httpServer := handlers.NewServer(svc, authenticator, cfg.HTTPPort)
	go func() {
		if err := httpServer.Start(); err != nil {
			log.Fatalf("Ошибка запуска HTTP сервера: %v", err)
		}
	}()

	// Ожидаем сигнала для завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("Останавливаем сервис...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Stop(ctx); err != nil {
		log.Printf("Ошибка остановки HTTP сервера: %v", err)
	}
	grpcServer.GracefulStop()

	log.Println("Сервис остановлен")
}
