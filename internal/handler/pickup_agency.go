package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"todaypickup-relay-go/internal/model"
	"todaypickup-relay-go/internal/todaypickup"
)

// PickupAgencyHandler exposes the agency operations of the typed
// client/service pair under /todaypickup/agency. Unlike the byte-level relays
// in agency.go, request bodies are bound to typed records and validated before
// anything goes upstream.
type PickupAgencyHandler struct {
	service *todaypickup.AgencyService
	logger  *slog.Logger
}

// NewPickupAgencyHandler creates a PickupAgencyHandler.
func NewPickupAgencyHandler(svc *todaypickup.AgencyService, logger *slog.Logger) *PickupAgencyHandler {
	return &PickupAgencyHandler{
		service: svc,
		logger:  logger.With("component", "pickup_agency_handler"),
	}
}

// agencyCredentials extracts the raw token and agencyId headers.
func agencyCredentials(c echo.Context) (model.Credentials, error) {
	token, err := rawToken(c)
	if err != nil {
		return model.Credentials{}, err
	}
	id, err := agencyID(c)
	if err != nil {
		return model.Credentials{}, err
	}
	return model.Credentials{Token: token, AgencyID: id}, nil
}

// CheckAuth handles POST /todaypickup/agency/auth-check.
func (h *PickupAgencyHandler) CheckAuth(c echo.Context) error {
	creds, err := agencyCredentials(c)
	if err != nil {
		return err
	}
	raw, err := h.service.CheckAuth(c.Request().Context(), creds)
	if err != nil {
		return mapPickupError(c, h.logger, err)
	}
	return writePickupResult(c, raw)
}

// AuthToken handles POST /todaypickup/agency/auth-token.
func (h *PickupAgencyHandler) AuthToken(c echo.Context) error {
	creds, err := agencyCredentials(c)
	if err != nil {
		return err
	}
	var dto todaypickup.AuthAgencyDTO
	if err := bindAndValidate(c, &dto); err != nil {
		return err
	}
	raw, err := h.service.AuthToken(c.Request().Context(), creds, dto)
	if err != nil {
		return mapPickupError(c, h.logger, err)
	}
	return writePickupResult(c, raw)
}

// UpdateDelivery handles PUT /todaypickup/agency/delivery.
func (h *PickupAgencyHandler) UpdateDelivery(c echo.Context) error {
	creds, err := agencyCredentials(c)
	if err != nil {
		return err
	}
	var dto todaypickup.DeliveryUpdateConsignDTO
	if err := bindAndValidate(c, &dto); err != nil {
		return err
	}
	raw, err := h.service.UpdateDelivery(c.Request().Context(), creds, dto)
	if err != nil {
		return mapPickupError(c, h.logger, err)
	}
	return writePickupResult(c, raw)
}

// ReturnFlex handles PUT /todaypickup/agency/delivery/flex.
func (h *PickupAgencyHandler) ReturnFlex(c echo.Context) error {
	creds, err := agencyCredentials(c)
	if err != nil {
		return err
	}
	var dto todaypickup.DeliveryInvoiceNumberDTO
	if err := bindAndValidate(c, &dto); err != nil {
		return err
	}
	raw, err := h.service.ReturnDeliveryFlex(c.Request().Context(), creds, dto)
	if err != nil {
		return mapPickupError(c, h.logger, err)
	}
	return writePickupResult(c, raw)
}

// ReturnListFlex handles PUT /todaypickup/agency/delivery/list/flex.
func (h *PickupAgencyHandler) ReturnListFlex(c echo.Context) error {
	creds, err := agencyCredentials(c)
	if err != nil {
		return err
	}
	var dto todaypickup.DeliveryFlexListUpdateDTO
	if err := bindAndValidate(c, &dto); err != nil {
		return err
	}
	raw, err := h.service.ReturnDeliveryListFlex(c.Request().Context(), creds, dto)
	if err != nil {
		return mapPickupError(c, h.logger, err)
	}
	return writePickupResult(c, raw)
}

// DeliveryListByDate handles POST /todaypickup/agency/delivery/list/:deliveryDt.
func (h *PickupAgencyHandler) DeliveryListByDate(c echo.Context) error {
	creds, err := agencyCredentials(c)
	if err != nil {
		return err
	}
	raw, err := h.service.FindDeliveryList(c.Request().Context(), creds, c.Param("deliveryDt"))
	if err != nil {
		return mapPickupError(c, h.logger, err)
	}
	return writePickupResult(c, raw)
}

// UpdateDeliveryState handles PUT /todaypickup/agency/delivery/state.
func (h *PickupAgencyHandler) UpdateDeliveryState(c echo.Context) error {
	creds, err := agencyCredentials(c)
	if err != nil {
		return err
	}
	var dto todaypickup.DeliveryStateUpdateDTO
	if err := bindAndValidate(c, &dto); err != nil {
		return err
	}
	raw, err := h.service.UpdateDeliveryState(c.Request().Context(), creds, dto)
	if err != nil {
		return mapPickupError(c, h.logger, err)
	}
	return writePickupResult(c, raw)
}

// DeliveryByInvoiceList handles POST /todaypickup/agency/delivery/:invoiceNumberList.
func (h *PickupAgencyHandler) DeliveryByInvoiceList(c echo.Context) error {
	creds, err := agencyCredentials(c)
	if err != nil {
		return err
	}
	raw, err := h.service.FindDelivery(c.Request().Context(), creds, c.Param("invoiceNumberList"))
	if err != nil {
		return mapPickupError(c, h.logger, err)
	}
	return writePickupResult(c, raw)
}

// SavePostalCodes handles POST /todaypickup/agency/postal/save.
func (h *PickupAgencyHandler) SavePostalCodes(c echo.Context) error {
	creds, err := agencyCredentials(c)
	if err != nil {
		return err
	}
	var dto todaypickup.PostalCodeListDTO
	if err := bindAndValidate(c, &dto); err != nil {
		return err
	}
	raw, err := h.service.SavePostalCodes(c.Request().Context(), creds, dto)
	if err != nil {
		return mapPickupError(c, h.logger, err)
	}
	return writePickupResult(c, raw)
}

// bindAndValidate binds the JSON body into dto and runs the registered
// validator. Failures are client input errors (400), never sent upstream.
func bindAndValidate(c echo.Context, dto any) error {
	if err := c.Bind(dto); err != nil {
		return err
	}
	if err := c.Validate(dto); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// writePickupResult renders a typed-client result: an upstream 204 becomes a
// local 204, everything else is the raw JSON passed through.
func writePickupResult(c echo.Context, raw json.RawMessage) error {
	if raw == nil {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSONBlob(http.StatusOK, raw)
}

// mapPickupError forwards upstream business errors with their original status
// and body; transport failures become a 500 with a generic detail.
func mapPickupError(c echo.Context, logger *slog.Logger, err error) error {
	var apiErr *todaypickup.APIError
	if errors.As(err, &apiErr) {
		logger.Warn("upstream business error", "status", apiErr.Status)
		return c.Blob(apiErr.Status, echo.MIMEApplicationJSON, apiErr.Body)
	}

	logger.Error("pickup request failed", "err", err)
	return c.JSON(http.StatusInternalServerError, map[string]string{
		"error": "upstream request failed",
	})
}
