package http

import (
	"net/http"

	"github.com/wellpay/wellpay-backend-go/internal/domain/wellness"
	"github.com/wellpay/wellpay-backend-go/internal/handler/http/response"
)

type WellnessHandler interface {
	ListTips(w http.ResponseWriter, r *http.Request)
}

type WellnessHandlerImpl struct{}

func NewWellnessHandler() WellnessHandler {
	return &WellnessHandlerImpl{}
}

// ListTips implements WellnessHandler.
func (h *WellnessHandlerImpl) ListTips(w http.ResponseWriter, r *http.Request) {
	response.Success(w, wellness.Tips())
}
