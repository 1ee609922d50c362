package routes

import (
	"payments-service/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments = "/payments"
	PathWebhooks = "/webhooks"
)

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.GET("/:payment_id", paymentHandler.GetPaymentByID)
		payments.GET("/:payment_id/qr-code", paymentHandler.RenderQRCode)
	}

	webhooks := rg.Group(PathWebhooks)
	{
		webhooks.POST("/mercadopago", paymentHandler.MercadoPagoWebhook)
	}
}
