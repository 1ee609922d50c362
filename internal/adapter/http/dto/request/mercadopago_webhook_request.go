package request

import "strings"

// MercadoPagoWebhookRequest is the notification body Mercado Pago posts to
// the callback URL. Many notification kinds arrive on the same endpoint;
// only payment-created ones are reconciled here.

type MercadoPagoWebhookRequest struct {
	Action string `json:"action"`
	Type   string `json:"type"`
	Data   struct {
		ID string `json:"id"`
	} `json:"data"`
}

// PaymentCreatedID returns the gateway payment id when the notification is
// a well-formed payment-created event, and false for everything else.
func (r MercadoPagoWebhookRequest) PaymentCreatedID() (string, bool) {
	if r.Type != "payment" || r.Action != "payment.created" {
		return "", false
	}
	id := strings.TrimSpace(r.Data.ID)
	if id == "" {
		return "", false
	}
	return id, true
}
