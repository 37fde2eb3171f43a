package models

// EvaluateRequest запрос на вычисление выражения
type EvaluateRequest struct {
	Expression string `json:"expression"`
}

// EvaluateResponse ответ на вычисление. При ошибке заполнены Error и Kind.
type EvaluateResponse struct {
	Result  string  `json:"result,omitempty"`
	Value   float64 `json:"value"`
	Integer bool    `json:"integer,omitempty"`
	Error   string  `json:"error,omitempty"`
	Kind    string  `json:"kind,omitempty"`
}

// ConvertRequest запрос на перевод между системами счисления
type ConvertRequest struct {
	Value    string `json:"value"`
	FromBase int    `json:"from_base"`
	ToBase   int    `json:"to_base"`
}

// ConvertResponse результат перевода
type ConvertResponse struct {
	Result string `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
	Kind   string `json:"kind,omitempty"`
}

// LengthRequest запрос на перевод единиц длины
type LengthRequest struct {
	Value float64 `json:"value"`
	From  string  `json:"from"`
	To    string  `json:"to"`
}

// LengthResponse результат перевода длины
type LengthResponse struct {
	Result float64 `json:"result"`
	Feet   *int    `json:"feet,omitempty"`
	Inches float64 `json:"inches,omitempty"`
	Error  string  `json:"error,omitempty"`
}

// StatusResponse ответ проверки состояния сервиса
type StatusResponse struct {
	Status string `json:"status"`
}
