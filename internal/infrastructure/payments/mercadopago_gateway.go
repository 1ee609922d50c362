package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"payments-service/internal/domain/entities"
	appconfig "payments-service/internal/infrastructure/config"
	"payments-service/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/merchantorder"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")

// MercadoPagoGateway implements the payment gateway port.
//
// Payment and merchant-order lookups go through the official SDK. The
// in-store dynamic QR order endpoint is not exposed by the SDK, so that
// single call is made directly against the REST API.

type MercadoPagoGateway struct {
	payments payment.Client
	orders   merchantorder.Client
	http     *http.Client
	settings appconfig.Settings
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(settings appconfig.Settings) (*MercadoPagoGateway, error) {
	if settings.MercadoPagoAccessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(settings.MercadoPagoAccessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{
		payments: payment.NewClient(cfg),
		orders:   merchantorder.NewClient(cfg),
		http:     &http.Client{Timeout: settings.HTTPTimeout},
		settings: settings,
	}, nil
}

type qrOrderItem struct {
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Category    string  `json:"category,omitempty"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	UnitMeasure string  `json:"unit_measure"`
	TotalAmount float64 `json:"total_amount"`
}

type qrOrderRequest struct {
	ExternalReference string        `json:"external_reference"`
	Title             string        `json:"title"`
	Description       string        `json:"description,omitempty"`
	NotificationURL   string        `json:"notification_url,omitempty"`
	TotalAmount       float64       `json:"total_amount"`
	ExpirationDate    string        `json:"expiration_date"`
	Items             []qrOrderItem `json:"items"`
}

type qrOrderResponse struct {
	QRData         string `json:"qr_data"`
	InStoreOrderID string `json:"in_store_order_id"`
}

func (g *MercadoPagoGateway) CreateDynamicQROrder(ctx context.Context, orderID string, totalOrderValue float64, products []entities.Product) (interfaces.QROrder, error) {
	expiration := time.Now().UTC().Add(g.settings.QRExpiration)

	items := make([]qrOrderItem, 0, len(products))
	for _, p := range products {
		items = append(items, qrOrderItem{
			Title:       p.Description,
			Category:    p.Category,
			Quantity:    p.Quantity,
			UnitPrice:   p.UnitPrice,
			UnitMeasure: "unit",
			TotalAmount: p.Total(),
		})
	}

	reqBody := qrOrderRequest{
		ExternalReference: orderID,
		Title:             fmt.Sprintf("Order %s", orderID),
		NotificationURL:   g.settings.MercadoPagoCallbackURL,
		TotalAmount:       totalOrderValue,
		ExpirationDate:    expiration.Format(time.RFC3339),
		Items:             items,
	}

	url := fmt.Sprintf("%s/instore/orders/qr/seller/collectors/%s/pos/%s/qrs",
		g.settings.MercadoPagoBaseURL, g.settings.MercadoPagoUserID, g.settings.MercadoPagoPOS)

	var out qrOrderResponse
	if err := g.postJSON(ctx, url, reqBody, &out); err != nil {
		return interfaces.QROrder{}, err
	}
	log.Printf("[payment][gateway] qr order created order_id=%s in_store_order_id=%s", orderID, out.InStoreOrderID)

	return interfaces.QROrder{
		ExternalID: out.InStoreOrderID,
		QRData:     out.QRData,
		Expiration: expiration,
	}, nil
}

func (g *MercadoPagoGateway) FindPaymentByID(ctx context.Context, paymentID string) (interfaces.GatewayPayment, error) {
	id, err := strconv.Atoi(strings.TrimSpace(paymentID))
	if err != nil {
		return interfaces.GatewayPayment{}, fmt.Errorf("%w: malformed payment id %q", interfaces.ErrPaymentGateway, paymentID)
	}

	resp, err := g.payments.Get(ctx, id)
	if err != nil {
		return interfaces.GatewayPayment{}, mapSDKError(err)
	}

	orderID, err := strconv.ParseInt(strings.TrimSpace(resp.Order.ID), 10, 64)
	if err != nil {
		return interfaces.GatewayPayment{}, fmt.Errorf("%w: malformed order id %q", interfaces.ErrPaymentGateway, resp.Order.ID)
	}

	return interfaces.GatewayPayment{
		ID:      strconv.Itoa(resp.ID),
		OrderID: orderID,
		Status:  resp.Status,
	}, nil
}

func (g *MercadoPagoGateway) FindOrderByID(ctx context.Context, orderID int64) (interfaces.GatewayOrder, error) {
	resp, err := g.orders.Get(ctx, int(orderID))
	if err != nil {
		return interfaces.GatewayOrder{}, mapSDKError(err)
	}

	return interfaces.GatewayOrder{
		ID:                int64(resp.ID),
		ExternalReference: resp.ExternalReference,
	}, nil
}

func (g *MercadoPagoGateway) postJSON(ctx context.Context, url string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("%w: %v", interfaces.ErrPaymentGateway, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: %v", interfaces.ErrPaymentGateway, err)
	}
	req.Header.Set("Authorization", "Bearer "+g.settings.MercadoPagoAccessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.http.Do(req)
	if err != nil {
		log.Printf("[payment][gateway] request failed url=%s err=%v", url, err)
		return fmt.Errorf("%w: %v", interfaces.ErrPaymentGateway, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", interfaces.ErrPaymentGateway, err)
	}
	if resp.StatusCode == http.StatusNotFound {
		return interfaces.ErrGatewayNotFound
	}
	if resp.StatusCode >= 400 {
		log.Printf("[payment][gateway] request rejected url=%s status=%d body=%s", url, resp.StatusCode, raw)
		return fmt.Errorf("%w: status %d", interfaces.ErrPaymentGateway, resp.StatusCode)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: %v", interfaces.ErrPaymentGateway, err)
	}
	return nil
}

func mapSDKError(err error) error {
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "404") || strings.Contains(msg, "not_found") || strings.Contains(msg, "not found") {
		return interfaces.ErrGatewayNotFound
	}
	return fmt.Errorf("%w: %v", interfaces.ErrPaymentGateway, err)
}
