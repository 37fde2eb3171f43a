package client

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/GGmuzem/stackcalc/internal/calculate"
	"github.com/GGmuzem/stackcalc/pkg/calculator"
	"github.com/GGmuzem/stackcalc/pkg/models"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// DefaultTimeout ограничивает время одного вызова
const DefaultTimeout = 5 * time.Second

// GRPCClient клиент для gRPC взаимодействия с сервисом калькулятора
type GRPCClient struct {
	client  calculator.CalculatorClient
	conn    *grpc.ClientConn
	timeout time.Duration
}

// NewGRPCClient создает новый gRPC клиент. Дополнительные опции
// добавляются после стандартных (без TLS).
func NewGRPCClient(serverAddr string, opts ...grpc.DialOption) (*GRPCClient, error) {
	dialOpts := append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)
	conn, err := grpc.Dial(serverAddr, dialOpts...)
	if err != nil {
		return nil, fmt.Errorf("error connecting to %s: %w", serverAddr, err)
	}

	return &GRPCClient{
		client:  calculator.NewCalculatorClient(conn),
		conn:    conn,
		timeout: DefaultTimeout,
	}, nil
}

// Close закрывает соединение с сервером
func (c *GRPCClient) Close() error {
	return c.conn.Close()
}

// Evaluate вычисляет выражение на сервере. Ошибка вычисления
// возвращается как *calculate.CalcError с исходным видом.
func (c *GRPCClient) Evaluate(ctx context.Context, expression string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.Evaluate(ctx, &models.EvaluateRequest{Expression: expression})
	if err != nil {
		log.Printf("Ошибка при вычислении на сервере: %v", err)
		return "", err
	}
	if resp.Error != "" {
		return "", remoteError(resp.Kind, resp.Error)
	}
	return resp.Result, nil
}

// ConvertBase переводит число на сервере
func (c *GRPCClient) ConvertBase(ctx context.Context, value string, fromBase, toBase int) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.ConvertBase(ctx, &models.ConvertRequest{Value: value, FromBase: fromBase, ToBase: toBase})
	if err != nil {
		return "", err
	}
	if resp.Error != "" {
		return "", remoteError(resp.Kind, resp.Error)
	}
	return resp.Result, nil
}

// ConvertLength переводит длину на сервере
func (c *GRPCClient) ConvertLength(ctx context.Context, value float64, from, to string) (*models.LengthResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.ConvertLength(ctx, &models.LengthRequest{Value: value, From: from, To: to})
	if err != nil {
		return nil, err
	}
	if resp.Error != "" {
		return nil, errors.New(resp.Error)
	}
	return resp, nil
}

// remoteError восстанавливает вид ошибки, пришедший от сервера
func remoteError(kind, message string) error {
	if kind == "" {
		return errors.New(message)
	}
	message = strings.TrimPrefix(message, kind+": ")
	return &calculate.CalcError{Kind: calculate.ErrorKind(kind), Message: message, Pos: -1}
}
