package checkout

import (
	"context"
	"fmt"
	"mediplant-service/internal/app/contracts"
	"mediplant-service/internal/pkg/constvars"
	"mediplant-service/internal/pkg/dto/requests"
	"mediplant-service/internal/pkg/exceptions"
	"mediplant-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type CheckoutController struct {
	Log             *zap.Logger
	CheckoutUsecase contracts.CheckoutUsecase
}

func NewCheckoutController(logger *zap.Logger, checkoutUsecase contracts.CheckoutUsecase) *CheckoutController {
	return &CheckoutController{
		Log:             logger,
		CheckoutUsecase: checkoutUsecase,
	}
}

func sessionIDFromContext(r *http.Request) (string, error) {
	sessionID, _ := r.Context().Value(constvars.CONTEXT_CART_SESSION_KEY).(string)
	if sessionID == "" {
		return "", exceptions.ErrCartSessionMissing(fmt.Errorf("missing %s header", constvars.HeaderXCartSession))
	}
	return sessionID, nil
}

func (ctrl *CheckoutController) BeginCheckout(w http.ResponseWriter, r *http.Request) {
	sessionID, err := sessionIDFromContext(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.CheckoutUsecase.BeginCheckout(ctx, sessionID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.BeginCheckoutSuccessMessage, response)
}

func (ctrl *CheckoutController) BackToCart(w http.ResponseWriter, r *http.Request) {
	sessionID, err := sessionIDFromContext(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.CheckoutUsecase.BackToCart(ctx, sessionID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.BackToCartSuccessMessage, response)
}

func (ctrl *CheckoutController) CompletePayment(w http.ResponseWriter, r *http.Request) {
	sessionID, err := sessionIDFromContext(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.CompletePaymentRequest)
	err = json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	response, err := ctrl.CheckoutUsecase.CompletePayment(ctx, sessionID, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CompletePaymentSuccessMessage, response)
}

func (ctrl *CheckoutController) GetCheckout(w http.ResponseWriter, r *http.Request) {
	sessionID, err := sessionIDFromContext(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.CheckoutUsecase.GetCheckout(ctx, sessionID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetCheckoutSuccessMessage, response)
}
