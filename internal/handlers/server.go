package handlers

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/GGmuzem/stackcalc/internal/auth"
	"github.com/GGmuzem/stackcalc/internal/service"
	"github.com/julienschmidt/httprouter"
)

// Server HTTP-интерфейс калькулятора
type Server struct {
	port   int
	server *http.Server
	router *httprouter.Router
}

// NewServer создает сервер и регистрирует маршруты. Если authenticator
// равен nil, API доступно без токена.
func NewServer(svc *service.CalculatorService, authenticator *auth.Authenticator, port int) *Server {
	s := &Server{
		port:   port,
		router: NewRouter(svc, authenticator),
	}
	return s
}

// NewRouter возвращает маршрутизатор со всеми обработчиками API
func NewRouter(svc *service.CalculatorService, authenticator *auth.Authenticator) *httprouter.Router {
	h := New(svc)
	router := httprouter.New()

	router.GET("/status", StatusHandler)
	router.POST("/api/v1/calculate", authenticator.Middleware(h.CalculateHandler))
	router.POST("/api/v1/convert", authenticator.Middleware(h.ConvertHandler))
	router.POST("/api/v1/length", authenticator.Middleware(h.LengthHandler))

	return router
}

// Start запускает HTTP сервер и блокируется до его остановки
func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", s.port),
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Printf("HTTP сервер запущен на порту :%d", s.port)
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Stop останавливает HTTP сервер
func (s *Server) Stop(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}
