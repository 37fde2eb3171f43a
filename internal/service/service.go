package service

import (
	"context"
	"log"

	"github.com/GGmuzem/stackcalc/internal/calculate"
	"github.com/GGmuzem/stackcalc/internal/convert"
	"github.com/GGmuzem/stackcalc/pkg/calculator"
	"github.com/GGmuzem/stackcalc/pkg/models"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// CalculatorService реализует операции калькулятора для gRPC и HTTP.
// Состояния между запросами нет: каждое выражение вычисляется заново.
type CalculatorService struct {
	calculator.UnimplementedCalculatorServer

	maxExpressionLength int
}

// NewCalculatorService создает сервис с ограничением длины выражения
func NewCalculatorService(maxExpressionLength int) *CalculatorService {
	return &CalculatorService{maxExpressionLength: maxExpressionLength}
}

// Evaluate вычисляет выражение. Ошибки вычисления возвращаются в теле ответа,
// ошибка gRPC означает некорректный запрос.
func (s *CalculatorService) Evaluate(ctx context.Context, req *models.EvaluateRequest) (*models.EvaluateResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "пустой запрос")
	}
	if s.maxExpressionLength > 0 && len(req.Expression) > s.maxExpressionLength {
		return nil, status.Errorf(codes.InvalidArgument, "выражение длиннее %d символов", s.maxExpressionLength)
	}

	result, err := calculate.Evaluate(req.Expression)
	if err != nil {
		log.Printf("Evaluate: ошибка вычисления %q: %v", req.Expression, err)
		return &models.EvaluateResponse{Error: err.Error(), Kind: string(calculate.KindOf(err))}, nil
	}

	log.Printf("Evaluate: %q = %s", req.Expression, result)
	return &models.EvaluateResponse{
		Result:  result.String(),
		Value:   result.Float64(),
		Integer: result.IsInteger(),
	}, nil
}

// ConvertBase переводит число между системами счисления
func (s *CalculatorService) ConvertBase(ctx context.Context, req *models.ConvertRequest) (*models.ConvertResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "пустой запрос")
	}
	if s.maxExpressionLength > 0 && len(req.Value) > s.maxExpressionLength {
		return nil, status.Errorf(codes.InvalidArgument, "число длиннее %d символов", s.maxExpressionLength)
	}

	result, err := convert.ConvertBase(req.Value, req.FromBase, req.ToBase)
	if err != nil {
		log.Printf("ConvertBase: ошибка перевода %q из %d в %d: %v", req.Value, req.FromBase, req.ToBase, err)
		return &models.ConvertResponse{Error: err.Error(), Kind: string(calculate.KindOf(err))}, nil
	}
	return &models.ConvertResponse{Result: result}, nil
}

// ConvertLength переводит длину между единицами. Перевод из метров в футы
// дополнительно раскладывается на футы и дюймы.
func (s *CalculatorService) ConvertLength(ctx context.Context, req *models.LengthRequest) (*models.LengthResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "пустой запрос")
	}

	from, err := convert.ParseUnit(req.From)
	if err != nil {
		return &models.LengthResponse{Error: err.Error()}, nil
	}
	to, err := convert.ParseUnit(req.To)
	if err != nil {
		return &models.LengthResponse{Error: err.Error()}, nil
	}

	result, err := convert.ConvertLength(req.Value, from, to)
	if err != nil {
		return &models.LengthResponse{Error: err.Error()}, nil
	}

	resp := &models.LengthResponse{Result: result}
	if from == convert.Meter && to == convert.Foot {
		fi, err := convert.MetersToFeetInches(req.Value)
		if err == nil {
			resp.Feet = &fi.Feet
			resp.Inches = fi.Inches
		}
	}
	return resp, nil
}

// IsBadRequest сообщает, что ошибка сервиса вызвана некорректным запросом
func IsBadRequest(err error) bool {
	return status.Code(err) == codes.InvalidArgument
}
