package handler

import (
	"log/slog"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"todaypickup-relay-go/internal/model"
	"todaypickup-relay-go/internal/service"
)

// MallHandler exposes the fixed set of mall endpoints. A bearer-style
// Authorization header is required and forwarded verbatim; mall calls carry no
// tenant identifier.
type MallHandler struct {
	service *service.RelayService
	logger  *slog.Logger
}

// NewMallHandler creates a MallHandler.
func NewMallHandler(svc *service.RelayService, logger *slog.Logger) *MallHandler {
	return &MallHandler{
		service: svc,
		logger:  logger.With("component", "mall_handler"),
	}
}

// CancelDelivery handles POST /api/mall/cancelDelivery.
func (h *MallHandler) CancelDelivery(c echo.Context) error {
	return h.forward(c, http.MethodPost, "/mall/cancelDelivery", true, "")
}

// DeliveryByInvoice handles GET /api/mall/delivery/:invoiceNumber.
func (h *MallHandler) DeliveryByInvoice(c echo.Context) error {
	return h.forward(c, http.MethodGet, "/mall/delivery/"+c.Param("invoiceNumber"), false, "")
}

// DeliveryListByInvoices handles GET /api/mall/deliveryList/:invoiceNumberList.
func (h *MallHandler) DeliveryListByInvoices(c echo.Context) error {
	return h.forward(c, http.MethodGet, "/mall/deliveryList/"+c.Param("invoiceNumberList"), false, "")
}

// DeliveryListRegister handles POST /api/mall/deliveryListRegister.
func (h *MallHandler) DeliveryListRegister(c echo.Context) error {
	return h.forward(c, http.MethodPost, "/mall/deliveryListRegister", true, "")
}

// DeliveryRegister handles POST /api/mall/deliveryRegister.
func (h *MallHandler) DeliveryRegister(c echo.Context) error {
	return h.forward(c, http.MethodPost, "/mall/deliveryRegister", true, "")
}

// PossibleDelivery handles GET /api/mall/possibleDelivery. Query parameters:
// required address, optional postalCode and dawnDelivery.
func (h *MallHandler) PossibleDelivery(c echo.Context) error {
	address := c.QueryParam("address")
	if address == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "address query parameter is required")
	}

	params := url.Values{}
	params.Set("address", address)
	if v := c.QueryParam("postalCode"); v != "" {
		params.Set("postalCode", v)
	}
	if v := c.QueryParam("dawnDelivery"); v != "" {
		params.Set("dawnDelivery", v)
	}

	return h.forwardQuery(c, "/mall/possibleDelivery", params.Encode())
}

// ReturnDelivery handles POST /api/mall/returnDelivery.
func (h *MallHandler) ReturnDelivery(c echo.Context) error {
	return h.forward(c, http.MethodPost, "/mall/returnDelivery", true, "")
}

// ReturnListRegister handles POST /api/mall/returnListRegister.
func (h *MallHandler) ReturnListRegister(c echo.Context) error {
	return h.forward(c, http.MethodPost, "/mall/returnListRegister", true, "")
}

// ReturnRegister handles POST /api/mall/returnRegister.
func (h *MallHandler) ReturnRegister(c echo.Context) error {
	return h.forward(c, http.MethodPost, "/mall/returnRegister", true, "")
}

func (h *MallHandler) forward(c echo.Context, method, path string, withBody bool, rawQuery string) error {
	token, err := rawToken(c)
	if err != nil {
		return err
	}

	header := http.Header{
		"Authorization": {token},
		"Accept":        {"application/json"},
	}
	if withBody {
		header.Set("Content-Type", "application/json")
	}

	rr := &model.RelayRequest{
		Ctx:      c.Request().Context(),
		Method:   method,
		Path:     path,
		RawQuery: rawQuery,
		Header:   header,
	}
	if withBody {
		rr.Body = c.Request().Body
	}

	resp, err := h.service.ForwardAPI(rr)
	if err != nil {
		h.logger.Error("mall forward error", "err", err, "path", path)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "error connecting to upstream: " + err.Error(),
		})
	}
	defer func() { _ = resp.Body.Close() }()

	return writeUpstream(c, resp)
}

func (h *MallHandler) forwardQuery(c echo.Context, path, rawQuery string) error {
	return h.forward(c, http.MethodGet, path, false, rawQuery)
}
