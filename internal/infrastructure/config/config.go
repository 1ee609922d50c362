package config

import (
	"os"
	"strconv"
	"time"
)

// Settings groups every env-driven knob of the service. Both entrypoints
// load it once at startup; godotenv autoload fills the environment first.

type Settings struct {
	// Mercado Pago integration
	MercadoPagoAccessToken string
	MercadoPagoUserID      string
	MercadoPagoPOS         string
	MercadoPagoBaseURL     string
	MercadoPagoCallbackURL string
	MercadoPagoWebhookKey  string

	// Gateway behavior
	HTTPTimeout  time.Duration
	QRExpiration time.Duration

	// Persistence
	PaymentsTable string

	// Messaging
	OrderCreatedQueueURL  string
	PaymentClosedTopicARN string
	PaymentClosedGroupID  string
}

func Load() Settings {
	return Settings{
		MercadoPagoAccessToken: os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),
		MercadoPagoUserID:      os.Getenv("MERCADOPAGO_USER_ID"),
		MercadoPagoPOS:         os.Getenv("MERCADOPAGO_POS"),
		MercadoPagoBaseURL:     getenvDefault("MERCADOPAGO_BASE_URL", "https://api.mercadopago.com"),
		MercadoPagoCallbackURL: os.Getenv("MERCADOPAGO_CALLBACK_URL"),
		MercadoPagoWebhookKey:  os.Getenv("MERCADOPAGO_WEBHOOK_KEY"),

		HTTPTimeout:  getenvSeconds("HTTP_TIMEOUT_SECONDS", 10),
		QRExpiration: getenvSeconds("QR_EXPIRATION_SECONDS", 30*60),

		PaymentsTable: getenvDefault("PAYMENTS_TABLE", "payments"),

		OrderCreatedQueueURL:  os.Getenv("SQS_ORDER_CREATED_QUEUE_URL"),
		PaymentClosedTopicARN: os.Getenv("SNS_PAYMENT_CLOSED_TOPIC_ARN"),
		PaymentClosedGroupID:  getenvDefault("SNS_PAYMENT_CLOSED_GROUP_ID", "payments"),
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvSeconds(key string, def int) time.Duration {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n) * time.Second
		}
	}
	return time.Duration(def) * time.Second
}
