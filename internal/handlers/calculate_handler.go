package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/GGmuzem/stackcalc/internal/auth"
	"github.com/GGmuzem/stackcalc/internal/service"
	"github.com/GGmuzem/stackcalc/pkg/models"
	"github.com/julienschmidt/httprouter"
)

// maxBodyBytes ограничивает размер тела запроса
const maxBodyBytes = 1 << 16

// Handlers HTTP-обработчики поверх сервиса калькулятора
type Handlers struct {
	svc *service.CalculatorService
}

// New создает обработчики для сервиса
func New(svc *service.CalculatorService) *Handlers {
	return &Handlers{svc: svc}
}

// CalculateHandler обрабатывает POST-запросы с арифметическими выражениями
func (h *Handlers) CalculateHandler(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req models.EvaluateRequest
	if !decode(w, r, &req) {
		return
	}
	if subject, ok := auth.GetSubjectFromContext(r.Context()); ok {
		log.Printf("Запрос на вычисление от %s", subject)
	}

	resp, err := h.svc.Evaluate(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}
	if resp.Error != "" {
		writeJSON(w, http.StatusUnprocessableEntity, resp)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// ConvertHandler переводит число между системами счисления
func (h *Handlers) ConvertHandler(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req models.ConvertRequest
	if !decode(w, r, &req) {
		return
	}

	resp, err := h.svc.ConvertBase(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}
	if resp.Error != "" {
		writeJSON(w, http.StatusUnprocessableEntity, resp)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// LengthHandler переводит длину между единицами
func (h *Handlers) LengthHandler(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req models.LengthRequest
	if !decode(w, r, &req) {
		return
	}

	resp, err := h.svc.ConvertLength(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}
	if resp.Error != "" {
		writeJSON(w, http.StatusUnprocessableEntity, resp)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// StatusHandler проверка состояния сервиса
func StatusHandler(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	writeJSON(w, http.StatusOK, models.StatusResponse{Status: "ok"})
}

func decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid JSON"})
		return false
	}
	return true
}

func handleError(w http.ResponseWriter, err error) {
	if service.IsBadRequest(err) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	log.Printf("Внутренняя ошибка обработки запроса: %v", err)
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Ошибка записи ответа: %v", err)
	}
}
