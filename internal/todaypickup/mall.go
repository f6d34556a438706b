package todaypickup

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"

	"todaypickup-relay-go/internal/model"
)

// MallClient wraps the transport client with one method per mall operation.
// Mall calls require only a token; creds.AgencyID stays empty.
type MallClient struct {
	c *Client
}

// NewMallClient creates a MallClient over the shared transport.
func NewMallClient(c *Client) *MallClient {
	return &MallClient{c: c}
}

// CancelDelivery cancels a delivery by invoice number. POST /mall/cancelDelivery.
func (m *MallClient) CancelDelivery(ctx context.Context, creds model.Credentials, dto GoodsReturnRequestDTO) (json.RawMessage, error) {
	return m.c.request(ctx, "POST", "/mall/cancelDelivery", creds, withBody(dto))
}

// GetDeliveryByInvoice fetches one delivery. GET /mall/delivery/{invoiceNumber}.
func (m *MallClient) GetDeliveryByInvoice(ctx context.Context, creds model.Credentials, invoiceNumber string) (json.RawMessage, error) {
	return m.c.request(ctx, "GET", "/mall/delivery/"+invoiceNumber, creds)
}

// FindByInvoiceList fetches deliveries by comma-joined invoice numbers.
// GET /mall/deliveryList/{invoiceNumberList}.
func (m *MallClient) FindByInvoiceList(ctx context.Context, creds model.Credentials, invoiceNumberList string) (json.RawMessage, error) {
	return m.c.request(ctx, "GET", "/mall/deliveryList/"+invoiceNumberList, creds)
}

// DeliveryListRegister registers a list of deliveries. POST /mall/deliveryListRegister.
func (m *MallClient) DeliveryListRegister(ctx context.Context, creds model.Credentials, dto MallApiDeliveryDTO) (json.RawMessage, error) {
	dto.applyWireDefaults()
	return m.c.request(ctx, "POST", "/mall/deliveryListRegister", creds, withBody(dto))
}

// DeliveryRegister registers a single delivery. POST /mall/deliveryRegister.
func (m *MallClient) DeliveryRegister(ctx context.Context, creds model.Credentials, dto GoodsDTO) (json.RawMessage, error) {
	dto.applyWireDefaults()
	return m.c.request(ctx, "POST", "/mall/deliveryRegister", creds, withBody(dto))
}

// PossibleDelivery checks serviceability for an address.
// GET /mall/possibleDelivery; dawnDelivery is rendered as lowercase
// "true"/"false" when present.
func (m *MallClient) PossibleDelivery(ctx context.Context, creds model.Credentials, address string, postalCode *string, dawnDelivery *bool) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("address", address)
	if postalCode != nil {
		params.Set("postalCode", *postalCode)
	}
	if dawnDelivery != nil {
		params.Set("dawnDelivery", strconv.FormatBool(*dawnDelivery))
	}
	return m.c.request(ctx, "GET", "/mall/possibleDelivery", creds, withQuery(params))
}

// ReturnDelivery requests a return for one delivery. POST /mall/returnDelivery.
func (m *MallClient) ReturnDelivery(ctx context.Context, creds model.Credentials, dto GoodsReturnRequestDTO) (json.RawMessage, error) {
	return m.c.request(ctx, "POST", "/mall/returnDelivery", creds, withBody(dto))
}

// ReturnListRegister registers a list of return pickups. POST /mall/returnListRegister.
func (m *MallClient) ReturnListRegister(ctx context.Context, creds model.Credentials, dto MallApiReturnDTO) (json.RawMessage, error) {
	dto.applyWireDefaults()
	return m.c.request(ctx, "POST", "/mall/returnListRegister", creds, withBody(dto))
}

// ReturnRegister registers a single return pickup. POST /mall/returnRegister.
func (m *MallClient) ReturnRegister(ctx context.Context, creds model.Credentials, dto GoodsDTO) (json.RawMessage, error) {
	dto.applyWireDefaults()
	return m.c.request(ctx, "POST", "/mall/returnRegister", creds, withBody(dto))
}
