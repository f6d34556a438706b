package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"todaypickup-relay-go/internal/model"
	"todaypickup-relay-go/internal/todaypickup"
)

// PickupMallHandler exposes the mall operations of the typed client/service
// pair under /todaypickup/mall. Mall routes expect "Authorization: Bearer
// <token>"; the bare token is what goes upstream.
type PickupMallHandler struct {
	service *todaypickup.MallService
	logger  *slog.Logger
}

// NewPickupMallHandler creates a PickupMallHandler.
func NewPickupMallHandler(svc *todaypickup.MallService, logger *slog.Logger) *PickupMallHandler {
	return &PickupMallHandler{
		service: svc,
		logger:  logger.With("component", "pickup_mall_handler"),
	}
}

func mallCredentials(c echo.Context) (model.Credentials, error) {
	token, err := bearerToken(c)
	if err != nil {
		return model.Credentials{}, err
	}
	return model.Credentials{Token: token}, nil
}

// CancelDelivery handles POST /todaypickup/mall/cancel-delivery.
func (h *PickupMallHandler) CancelDelivery(c echo.Context) error {
	creds, err := mallCredentials(c)
	if err != nil {
		return err
	}
	var dto todaypickup.GoodsReturnRequestDTO
	if err := bindAndValidate(c, &dto); err != nil {
		return err
	}
	raw, err := h.service.CancelDelivery(c.Request().Context(), creds, dto)
	if err != nil {
		return mapPickupError(c, h.logger, err)
	}
	return writePickupResult(c, raw)
}

// DeliveryByInvoice handles GET /todaypickup/mall/delivery/:invoiceNumber.
func (h *PickupMallHandler) DeliveryByInvoice(c echo.Context) error {
	creds, err := mallCredentials(c)
	if err != nil {
		return err
	}
	raw, err := h.service.GetDeliveryByInvoice(c.Request().Context(), creds, c.Param("invoiceNumber"))
	if err != nil {
		return mapPickupError(c, h.logger, err)
	}
	return writePickupResult(c, raw)
}

// DeliveryListByInvoices handles GET /todaypickup/mall/delivery-list/:invoiceNumberList.
func (h *PickupMallHandler) DeliveryListByInvoices(c echo.Context) error {
	creds, err := mallCredentials(c)
	if err != nil {
		return err
	}
	raw, err := h.service.FindByInvoiceList(c.Request().Context(), creds, c.Param("invoiceNumberList"))
	if err != nil {
		return mapPickupError(c, h.logger, err)
	}
	return writePickupResult(c, raw)
}

// DeliveryListRegister handles POST /todaypickup/mall/delivery-list-register.
func (h *PickupMallHandler) DeliveryListRegister(c echo.Context) error {
	creds, err := mallCredentials(c)
	if err != nil {
		return err
	}
	var dto todaypickup.MallApiDeliveryDTO
	if err := bindAndValidate(c, &dto); err != nil {
		return err
	}
	raw, err := h.service.DeliveryListRegister(c.Request().Context(), creds, dto)
	if err != nil {
		return mapPickupError(c, h.logger, err)
	}
	return writePickupResult(c, raw)
}

// DeliveryRegister handles POST /todaypickup/mall/delivery-register.
func (h *PickupMallHandler) DeliveryRegister(c echo.Context) error {
	creds, err := mallCredentials(c)
	if err != nil {
		return err
	}
	var dto todaypickup.GoodsDTO
	if err := bindAndValidate(c, &dto); err != nil {
		return err
	}
	raw, err := h.service.DeliveryRegister(c.Request().Context(), creds, dto)
	if err != nil {
		return mapPickupError(c, h.logger, err)
	}
	return writePickupResult(c, raw)
}

// PossibleDelivery handles GET /todaypickup/mall/possible-delivery.
func (h *PickupMallHandler) PossibleDelivery(c echo.Context) error {
	creds, err := mallCredentials(c)
	if err != nil {
		return err
	}

	address := c.QueryParam("address")
	if address == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "address query parameter is required")
	}

	var postalCode *string
	if v := c.QueryParam("postalCode"); v != "" {
		postalCode = &v
	}
	var dawnDelivery *bool
	if v := c.QueryParam("dawnDelivery"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "dawnDelivery must be a boolean")
		}
		dawnDelivery = &b
	}

	raw, err := h.service.PossibleDelivery(c.Request().Context(), creds, address, postalCode, dawnDelivery)
	if err != nil {
		return mapPickupError(c, h.logger, err)
	}
	return writePickupResult(c, raw)
}

// ReturnDelivery handles POST /todaypickup/mall/return-delivery.
func (h *PickupMallHandler) ReturnDelivery(c echo.Context) error {
	creds, err := mallCredentials(c)
	if err != nil {
		return err
	}
	var dto todaypickup.GoodsReturnRequestDTO
	if err := bindAndValidate(c, &dto); err != nil {
		return err
	}
	raw, err := h.service.ReturnDelivery(c.Request().Context(), creds, dto)
	if err != nil {
		return mapPickupError(c, h.logger, err)
	}
	return writePickupResult(c, raw)
}

// ReturnListRegister handles POST /todaypickup/mall/return-list-register.
func (h *PickupMallHandler) ReturnListRegister(c echo.Context) error {
	creds, err := mallCredentials(c)
	if err != nil {
		return err
	}
	var dto todaypickup.MallApiReturnDTO
	if err := bindAndValidate(c, &dto); err != nil {
		return err
	}
	raw, err := h.service.ReturnListRegister(c.Request().Context(), creds, dto)
	if err != nil {
		return mapPickupError(c, h.logger, err)
	}
	return writePickupResult(c, raw)
}

// ReturnRegister handles POST /todaypickup/mall/return-register.
func (h *PickupMallHandler) ReturnRegister(c echo.Context) error {
	creds, err := mallCredentials(c)
	if err != nil {
		return err
	}
	var dto todaypickup.GoodsDTO
	if err := bindAndValidate(c, &dto); err != nil {
		return err
	}
	raw, err := h.service.ReturnRegister(c.Request().Context(), creds, dto)
	if err != nil {
		return mapPickupError(c, h.logger, err)
	}
	return writePickupResult(c, raw)
}
