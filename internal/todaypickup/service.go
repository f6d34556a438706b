package todaypickup

import (
	"context"
	"encoding/json"

	"todaypickup-relay-go/internal/model"
)

// AgencyService is a stable facade over AgencyClient. It adds no behavior;
// callers depend on it instead of the transport so the client can change
// underneath without touching handler code.
type AgencyService struct {
	client *AgencyClient
}

// NewAgencyService creates an AgencyService.
func NewAgencyService(client *AgencyClient) *AgencyService {
	return &AgencyService{client: client}
}

func (s *AgencyService) CheckAuth(ctx context.Context, creds model.Credentials) (json.RawMessage, error) {
	return s.client.CheckAuth(ctx, creds)
}

func (s *AgencyService) AuthToken(ctx context.Context, creds model.Credentials, dto AuthAgencyDTO) (json.RawMessage, error) {
	return s.client.AuthToken(ctx, creds, dto)
}

func (s *AgencyService) UpdateDelivery(ctx context.Context, creds model.Credentials, dto DeliveryUpdateConsignDTO) (json.RawMessage, error) {
	return s.client.UpdateDelivery(ctx, creds, dto)
}

func (s *AgencyService) ReturnDeliveryFlex(ctx context.Context, creds model.Credentials, dto DeliveryInvoiceNumberDTO) (json.RawMessage, error) {
	return s.client.ReturnDeliveryFlex(ctx, creds, dto)
}

func (s *AgencyService) ReturnDeliveryListFlex(ctx context.Context, creds model.Credentials, dto DeliveryFlexListUpdateDTO) (json.RawMessage, error) {
	return s.client.ReturnDeliveryListFlex(ctx, creds, dto)
}

func (s *AgencyService) FindDeliveryList(ctx context.Context, creds model.Credentials, deliveryDt string) (json.RawMessage, error) {
	return s.client.FindDeliveryList(ctx, creds, deliveryDt)
}

func (s *AgencyService) UpdateDeliveryState(ctx context.Context, creds model.Credentials, dto DeliveryStateUpdateDTO) (json.RawMessage, error) {
	return s.client.UpdateDeliveryState(ctx, creds, dto)
}

func (s *AgencyService) FindDelivery(ctx context.Context, creds model.Credentials, invoiceNumberList string) (json.RawMessage, error) {
	return s.client.FindDelivery(ctx, creds, invoiceNumberList)
}

func (s *AgencyService) SavePostalCodes(ctx context.Context, creds model.Credentials, dto PostalCodeListDTO) (json.RawMessage, error) {
	return s.client.SavePostalCodes(ctx, creds, dto)
}

// MallService is a stable facade over MallClient, mirroring it one to one.
type MallService struct {
	client *MallClient
}

// NewMallService creates a MallService.
func NewMallService(client *MallClient) *MallService {
	return &MallService{client: client}
}

func (s *MallService) CancelDelivery(ctx context.Context, creds model.Credentials, dto GoodsReturnRequestDTO) (json.RawMessage, error) {
	return s.client.CancelDelivery(ctx, creds, dto)
}

func (s *MallService) GetDeliveryByInvoice(ctx context.Context, creds model.Credentials, invoiceNumber string) (json.RawMessage, error) {
	return s.client.GetDeliveryByInvoice(ctx, creds, invoiceNumber)
}

func (s *MallService) FindByInvoiceList(ctx context.Context, creds model.Credentials, invoiceNumberList string) (json.RawMessage, error) {
	return s.client.FindByInvoiceList(ctx, creds, invoiceNumberList)
}

func (s *MallService) DeliveryListRegister(ctx context.Context, creds model.Credentials, dto MallApiDeliveryDTO) (json.RawMessage, error) {
	return s.client.DeliveryListRegister(ctx, creds, dto)
}

func (s *MallService) DeliveryRegister(ctx context.Context, creds model.Credentials, dto GoodsDTO) (json.RawMessage, error) {
	return s.client.DeliveryRegister(ctx, creds, dto)
}

func (s *MallService) PossibleDelivery(ctx context.Context, creds model.Credentials, address string, postalCode *string, dawnDelivery *bool) (json.RawMessage, error) {
	return s.client.PossibleDelivery(ctx, creds, address, postalCode, dawnDelivery)
}

func (s *MallService) ReturnDelivery(ctx context.Context, creds model.Credentials, dto GoodsReturnRequestDTO) (json.RawMessage, error) {
	return s.client.ReturnDelivery(ctx, creds, dto)
}

func (s *MallService) ReturnListRegister(ctx context.Context, creds model.Credentials, dto MallApiReturnDTO) (json.RawMessage, error) {
	return s.client.ReturnListRegister(ctx, creds, dto)
}

func (s *MallService) ReturnRegister(ctx context.Context, creds model.Credentials, dto GoodsDTO) (json.RawMessage, error) {
	return s.client.ReturnRegister(ctx, creds, dto)
}
