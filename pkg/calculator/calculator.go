package calculator

import (
	"context"

	"github.com/GGmuzem/stackcalc/pkg/models"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Полные имена методов сервиса
const (
	ServiceName             = "calculator.Calculator"
	EvaluateFullMethod      = "/calculator.Calculator/Evaluate"
	ConvertBaseFullMethod   = "/calculator.Calculator/ConvertBase"
	ConvertLengthFullMethod = "/calculator.Calculator/ConvertLength"
)

// CalculatorClient клиентская сторона сервиса Calculator
type CalculatorClient interface {
	Evaluate(ctx context.Context, in *models.EvaluateRequest, opts ...grpc.CallOption) (*models.EvaluateResponse, error)
	ConvertBase(ctx context.Context, in *models.ConvertRequest, opts ...grpc.CallOption) (*models.ConvertResponse, error)
	ConvertLength(ctx context.Context, in *models.LengthRequest, opts ...grpc.CallOption) (*models.LengthResponse, error)
}

// CalculatorServer серверная сторона сервиса Calculator
type CalculatorServer interface {
	Evaluate(ctx context.Context, in *models.EvaluateRequest) (*models.EvaluateResponse, error)
	ConvertBase(ctx context.Context, in *models.ConvertRequest) (*models.ConvertResponse, error)
	ConvertLength(ctx context.Context, in *models.LengthRequest) (*models.LengthResponse, error)
}

// Базовая реализация CalculatorServer
type UnimplementedCalculatorServer struct{}

func (UnimplementedCalculatorServer) Evaluate(ctx context.Context, in *models.EvaluateRequest) (*models.EvaluateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "метод Evaluate не реализован")
}

func (UnimplementedCalculatorServer) ConvertBase(ctx context.Context, in *models.ConvertRequest) (*models.ConvertResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "метод ConvertBase не реализован")
}

func (UnimplementedCalculatorServer) ConvertLength(ctx context.Context, in *models.LengthRequest) (*models.LengthResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "метод ConvertLength не реализован")
}

// RegisterCalculatorServer регистрирует сервер Calculator в gRPC
func RegisterCalculatorServer(s grpc.ServiceRegistrar, srv CalculatorServer) {
	s.RegisterService(&_Calculator_serviceDesc, srv)
}

var _Calculator_serviceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CalculatorServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Evaluate",
			Handler:    _Calculator_Evaluate_Handler,
		},
		{
			MethodName: "ConvertBase",
			Handler:    _Calculator_ConvertBase_Handler,
		},
		{
			MethodName: "ConvertLength",
			Handler:    _Calculator_ConvertLength_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "calculator.proto",
}

// Обработчик Evaluate
func _Calculator_Evaluate_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(models.EvaluateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CalculatorServer).Evaluate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: EvaluateFullMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CalculatorServer).Evaluate(ctx, req.(*models.EvaluateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// Обработчик ConvertBase
func _Calculator_ConvertBase_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(models.ConvertRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CalculatorServer).ConvertBase(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ConvertBaseFullMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CalculatorServer).ConvertBase(ctx, req.(*models.ConvertRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// Обработчик ConvertLength
func _Calculator_ConvertLength_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(models.LengthRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CalculatorServer).ConvertLength(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ConvertLengthFullMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CalculatorServer).ConvertLength(ctx, req.(*models.LengthRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// NewCalculatorClient создает нового клиента для сервиса Calculator.
// Все вызовы идут с JSON-кодеком, см. codec.go.
func NewCalculatorClient(cc grpc.ClientConnInterface) CalculatorClient {
	return &calculatorClient{cc}
}

type calculatorClient struct {
	cc grpc.ClientConnInterface
}

func (c *calculatorClient) Evaluate(ctx context.Context, in *models.EvaluateRequest, opts ...grpc.CallOption) (*models.EvaluateResponse, error) {
	out := new(models.EvaluateResponse)
	if err := c.cc.Invoke(ctx, EvaluateFullMethod, in, out, withJSON(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *calculatorClient) ConvertBase(ctx context.Context, in *models.ConvertRequest, opts ...grpc.CallOption) (*models.ConvertResponse, error) {
	out := new(models.ConvertResponse)
	if err := c.cc.Invoke(ctx, ConvertBaseFullMethod, in, out, withJSON(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *calculatorClient) ConvertLength(ctx context.Context, in *models.LengthRequest, opts ...grpc.CallOption) (*models.LengthResponse, error) {
	out := new(models.LengthResponse)
	if err := c.cc.Invoke(ctx, ConvertLengthFullMethod, in, out, withJSON(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}
