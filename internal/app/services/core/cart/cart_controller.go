package cart

import (
	"context"
	"fmt"
	"mediplant-service/internal/app/contracts"
	"mediplant-service/internal/pkg/constvars"
	"mediplant-service/internal/pkg/dto/requests"
	"mediplant-service/internal/pkg/dto/responses"
	"mediplant-service/internal/pkg/exceptions"
	"mediplant-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type CartController struct {
	Log         *zap.Logger
	CartUsecase contracts.CartUsecase
}

func NewCartController(logger *zap.Logger, cartUsecase contracts.CartUsecase) *CartController {
	return &CartController{
		Log:         logger,
		CartUsecase: cartUsecase,
	}
}

func sessionIDFromContext(r *http.Request) (string, error) {
	sessionID, _ := r.Context().Value(constvars.CONTEXT_CART_SESSION_KEY).(string)
	if sessionID == "" {
		return "", exceptions.ErrCartSessionMissing(fmt.Errorf("missing %s header", constvars.HeaderXCartSession))
	}
	return sessionID, nil
}

// CreateSession mints a new browsing session id. The client keeps it and
// sends it back in the X-Cart-Session header on every cart and checkout call.
func (ctrl *CartController) CreateSession(w http.ResponseWriter, r *http.Request) {
	response := &responses.CartSession{SessionID: utils.GenerateCartSessionID()}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateCartSessionSuccessMessage, response)
}

func (ctrl *CartController) GetCart(w http.ResponseWriter, r *http.Request) {
	sessionID, err := sessionIDFromContext(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.CartUsecase.GetCart(ctx, sessionID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetCartSuccessMessage, response)
}

func (ctrl *CartController) AddItem(w http.ResponseWriter, r *http.Request) {
	sessionID, err := sessionIDFromContext(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.AddCartItemRequest)
	err = json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeAddCartItemRequest(request)
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.CartUsecase.AddItem(ctx, sessionID, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AddCartItemSuccessMessage, response)
}

func (ctrl *CartController) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	sessionID, err := sessionIDFromContext(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.UpdateCartQuantityRequest)
	err = json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeUpdateCartQuantityRequest(request)
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.CartUsecase.UpdateQuantity(ctx, sessionID, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateCartQuantitySuccessMessage, response)
}

func (ctrl *CartController) ClearCart(w http.ResponseWriter, r *http.Request) {
	sessionID, err := sessionIDFromContext(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err = ctrl.CartUsecase.ClearCart(ctx, sessionID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ClearCartSuccessMessage, nil)
}
