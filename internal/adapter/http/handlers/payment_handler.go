package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	request "payments-service/internal/adapter/http/dto/request"
	response "payments-service/internal/adapter/http/dto/response"
	"payments-service/internal/domain/entities"
	"payments-service/internal/usecase"
	"payments-service/internal/usecase/interfaces"
	"payments-service/pkg"

	"github.com/gin-gonic/gin"
)

// PaymentHandler serves the payment read paths and the Mercado Pago
// webhook.

type PaymentHandler struct {
	find       usecase.IFindPaymentByIDUseCase
	render     usecase.IRenderQRCodeUseCase
	finalize   usecase.IFinalizePaymentUseCase
	webhookKey string
}

func NewPaymentHandler(find usecase.IFindPaymentByIDUseCase, render usecase.IRenderQRCodeUseCase, finalize usecase.IFinalizePaymentUseCase, webhookKey string) *PaymentHandler {
	return &PaymentHandler{find: find, render: render, finalize: finalize, webhookKey: webhookKey}
}

// GetPaymentByID returns a payment by its internal id.
func (h *PaymentHandler) GetPaymentByID(c *gin.Context) {
	paymentID := c.Param("payment_id")

	p, err := h.find.Execute(c.Request.Context(), paymentID)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayment(p))
}

// RenderQRCode returns the payment's QR code as a PNG image.
func (h *PaymentHandler) RenderQRCode(c *gin.Context) {
	paymentID := c.Param("payment_id")

	png, err := h.render.Execute(c.Request.Context(), paymentID)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}

// MercadoPagoWebhook admits and reconciles gateway notifications.
//
// The callback URL registered with Mercado Pago carries the shared webhook
// key as the x-mp-webhook-key query parameter; callers without it get 401
// before the body is even read.
//
// Mercado Pago retries on anything other than a success acknowledgment, so
// malformed bodies and notification kinds this service does not reconcile
// are answered 204 without touching any use case. A publish failure after
// the state transition committed is also answered 204: retrying the whole
// webhook could never re-run the transition.
func (h *PaymentHandler) MercadoPagoWebhook(c *gin.Context) {
	if c.Query("x-mp-webhook-key") != h.webhookKey {
		log.Printf("[payment][webhook] rejecting notification with invalid webhook key")
		appErr := pkg.NewDomainErrorSimple("UNAUTHORIZED", "Unauthorized", http.StatusUnauthorized)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	raw, err := c.GetRawData()
	if err != nil {
		log.Printf("[payment][webhook] discarding unreadable body err=%v", err)
		c.Status(http.StatusNoContent)
		return
	}

	var notification request.MercadoPagoWebhookRequest
	if err := json.Unmarshal(raw, &notification); err != nil {
		log.Printf("[payment][webhook] discarding malformed notification err=%v", err)
		c.Status(http.StatusNoContent)
		return
	}

	mpPaymentID, ok := notification.PaymentCreatedID()
	if !ok {
		log.Printf("[payment][webhook] discarding notification type=%q action=%q", notification.Type, notification.Action)
		c.Status(http.StatusNoContent)
		return
	}

	p, err := h.finalize.Execute(c.Request.Context(), mpPaymentID)
	if err != nil {
		if errors.Is(err, interfaces.ErrEventPublishing) {
			log.Printf("[payment][webhook] event lost after close payment_id=%s err=%v", p.ID, err)
			c.Status(http.StatusNoContent)
			return
		}
		log.Printf("[payment][webhook] finalize failed mp_payment_id=%s err=%v", mpPaymentID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[payment][webhook] payment closed payment_id=%s", p.ID)
	c.Status(http.StatusNoContent)
}

func mapPaymentError(err error) *pkg.AppError {
	var ist *entities.InvalidStateTransitionError
	switch {
	case errors.Is(err, interfaces.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidPaymentID), errors.Is(err, usecase.ErrInvalidMPPaymentID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingQRCode):
		return pkg.NewDomainErrorSimple("MISSING_QR_CODE", "Payment does not have an associated QR code.", http.StatusBadRequest)
	case errors.As(err, &ist):
		return pkg.NewDomainErrorSimple("ALREADY_PROCESSED", "Payment was already processed", http.StatusBadRequest)
	case errors.Is(err, interfaces.ErrPaymentGateway):
		return pkg.NewDomainError("PAYMENT_GATEWAY_ERROR", "Payment gateway unavailable", err, http.StatusBadGateway)
	case errors.Is(err, interfaces.ErrPersistence):
		return pkg.NewDomainError("PERSISTENCE_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
