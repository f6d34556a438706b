package todaypickup

import (
	"context"
	"encoding/json"

	"todaypickup-relay-go/internal/model"
)

// AgencyClient wraps the transport client with one method per agency
// operation. Agency calls require both a token and an agencyId in creds.
type AgencyClient struct {
	c *Client
}

// NewAgencyClient creates an AgencyClient over the shared transport.
func NewAgencyClient(c *Client) *AgencyClient {
	return &AgencyClient{c: c}
}

// CheckAuth validates the agency token. POST /agency/auth, empty body.
func (a *AgencyClient) CheckAuth(ctx context.Context, creds model.Credentials) (json.RawMessage, error) {
	return a.c.request(ctx, "POST", "/agency/auth", creds)
}

// AuthToken issues a new agency token. POST /agency/auth/token.
func (a *AgencyClient) AuthToken(ctx context.Context, creds model.Credentials, dto AuthAgencyDTO) (json.RawMessage, error) {
	return a.c.request(ctx, "POST", "/agency/auth/token", creds, withBody(dto))
}

// UpdateDelivery updates consignment info. PUT /agency/delivery.
func (a *AgencyClient) UpdateDelivery(ctx context.Context, creds model.Credentials, dto DeliveryUpdateConsignDTO) (json.RawMessage, error) {
	return a.c.request(ctx, "PUT", "/agency/delivery", creds, withBody(dto))
}

// ReturnDeliveryFlex hands one invoice over to flex. PUT /agency/delivery/flex.
func (a *AgencyClient) ReturnDeliveryFlex(ctx context.Context, creds model.Credentials, dto DeliveryInvoiceNumberDTO) (json.RawMessage, error) {
	return a.c.request(ctx, "PUT", "/agency/delivery/flex", creds, withBody(dto))
}

// ReturnDeliveryListFlex hands a list of invoices over to flex.
// PUT /agency/delivery/list/flex.
func (a *AgencyClient) ReturnDeliveryListFlex(ctx context.Context, creds model.Credentials, dto DeliveryFlexListUpdateDTO) (json.RawMessage, error) {
	return a.c.request(ctx, "PUT", "/agency/delivery/list/flex", creds, withBody(dto))
}

// FindDeliveryList lists deliveries for a date. POST /agency/delivery/list/{deliveryDt}.
func (a *AgencyClient) FindDeliveryList(ctx context.Context, creds model.Credentials, deliveryDt string) (json.RawMessage, error) {
	return a.c.request(ctx, "POST", "/agency/delivery/list/"+deliveryDt, creds)
}

// UpdateDeliveryState updates the state of a delivery. PUT /agency/delivery/state.
func (a *AgencyClient) UpdateDeliveryState(ctx context.Context, creds model.Credentials, dto DeliveryStateUpdateDTO) (json.RawMessage, error) {
	return a.c.request(ctx, "PUT", "/agency/delivery/state", creds, withBody(dto))
}

// FindDelivery looks up deliveries by comma-joined invoice numbers.
// POST /agency/delivery/{invoiceNumberList}; the upstream may answer with any
// content type.
func (a *AgencyClient) FindDelivery(ctx context.Context, creds model.Credentials, invoiceNumberList string) (json.RawMessage, error) {
	return a.c.request(ctx, "POST", "/agency/delivery/"+invoiceNumberList, creds, withHeader("Accept", "*/*"))
}

// SavePostalCodes uploads the serviceable-area list. POST /agency/postal/save.
func (a *AgencyClient) SavePostalCodes(ctx context.Context, creds model.Credentials, dto PostalCodeListDTO) (json.RawMessage, error) {
	dto.applyWireDefaults()
	return a.c.request(ctx, "POST", "/agency/postal/save", creds, withBody(dto))
}
