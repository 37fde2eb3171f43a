package service

import (
	"context"
	"fmt"
	"log"
	"net"
	"time"

	"github.com/GGmuzem/stackcalc/pkg/calculator"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"
)

// NewGRPCServer создает gRPC сервер с зарегистрированным сервисом калькулятора
func NewGRPCServer(svc calculator.CalculatorServer) *grpc.Server {
	grpcServer := grpc.NewServer(grpc.UnaryInterceptor(loggingInterceptor))
	calculator.RegisterCalculatorServer(grpcServer, svc)

	// Включаем рефлексию для отладки
	reflection.Register(grpcServer)
	return grpcServer
}

// StartGRPCServer запускает gRPC сервер на указанном порту в отдельной горутине
func StartGRPCServer(port int, svc calculator.CalculatorServer) (*grpc.Server, error) {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return nil, fmt.Errorf("error listening on gRPC port %d: %w", port, err)
	}

	grpcServer := NewGRPCServer(svc)
	go func() {
		log.Printf("gRPC сервер запущен на порту :%d", port)
		if err := grpcServer.Serve(lis); err != nil {
			log.Printf("gRPC сервер остановлен с ошибкой: %v", err)
		}
	}()

	return grpcServer, nil
}

func loggingInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	if err != nil {
		log.Printf("=== GRPC SERVER: %s завершился ошибкой за %v: %v", info.FullMethod, time.Since(start), err)
	} else {
		log.Printf("=== GRPC SERVER: %s выполнен за %v", info.FullMethod, time.Since(start))
	}
	return resp, err
}
