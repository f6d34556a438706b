package handler

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"todaypickup-relay-go/internal/model"
	"todaypickup-relay-go/internal/service"
)

// AgencyHandler exposes the fixed set of agency endpoints. Each endpoint is
// bound to one upstream (method, path) pair and forwards the caller's body
// verbatim; credentials are checked before any outbound call is attempted.
type AgencyHandler struct {
	service *service.RelayService
	logger  *slog.Logger
}

// NewAgencyHandler creates an AgencyHandler.
func NewAgencyHandler(svc *service.RelayService, logger *slog.Logger) *AgencyHandler {
	return &AgencyHandler{
		service: svc,
		logger:  logger.With("component", "agency_handler"),
	}
}

// CheckAuth handles POST /api/agency/auth (token validity check, empty body).
func (h *AgencyHandler) CheckAuth(c echo.Context) error {
	return h.forward(c, http.MethodPost, "/agency/auth", false, "application/json")
}

// AuthToken handles POST /api/agency/auth/token (token issuance).
func (h *AgencyHandler) AuthToken(c echo.Context) error {
	return h.forward(c, http.MethodPost, "/agency/auth/token", true, "application/json")
}

// UpdateDelivery handles PUT /api/agency/delivery (consignment update).
func (h *AgencyHandler) UpdateDelivery(c echo.Context) error {
	return h.forward(c, http.MethodPut, "/agency/delivery", true, "application/json")
}

// ReturnFlex handles PUT /api/agency/delivery/flex (single invoice hand-off).
func (h *AgencyHandler) ReturnFlex(c echo.Context) error {
	return h.forward(c, http.MethodPut, "/agency/delivery/flex", true, "application/json")
}

// ReturnListFlex handles PUT /api/agency/delivery/list/flex (invoice list hand-off).
func (h *AgencyHandler) ReturnListFlex(c echo.Context) error {
	return h.forward(c, http.MethodPut, "/agency/delivery/list/flex", true, "application/json")
}

// DeliveryListByDate handles POST /api/agency/delivery/list/:deliveryDt.
func (h *AgencyHandler) DeliveryListByDate(c echo.Context) error {
	return h.forward(c, http.MethodPost, "/agency/delivery/list/"+c.Param("deliveryDt"), false, "application/json")
}

// UpdateDeliveryState handles PUT /api/agency/delivery/state.
func (h *AgencyHandler) UpdateDeliveryState(c echo.Context) error {
	return h.forward(c, http.MethodPut, "/agency/delivery/state", true, "application/json")
}

// DeliveryByInvoiceList handles POST /api/agency/delivery/:invoiceNumberList.
// The path parameter is a comma-joined invoice list; the upstream may answer
// with any content type, so Accept is */*.
func (h *AgencyHandler) DeliveryByInvoiceList(c echo.Context) error {
	return h.forward(c, http.MethodPost, "/agency/delivery/"+c.Param("invoiceNumberList"), false, "*/*")
}

// SavePostalCodes handles POST /api/agency/postal/save (serviceable area upload).
func (h *AgencyHandler) SavePostalCodes(c echo.Context) error {
	return h.forward(c, http.MethodPost, "/agency/postal/save", true, "application/json")
}

// forward checks the agency credential headers, then relays one call upstream
// and returns the upstream status, body and content type unchanged.
func (h *AgencyHandler) forward(c echo.Context, method, path string, withBody bool, accept string) error {
	token, err := rawToken(c)
	if err != nil {
		return err
	}
	id, err := agencyID(c)
	if err != nil {
		return err
	}

	header := http.Header{
		"Authorization": {token},
		agencyIDHeader:  {id},
		"Content-Type":  {"application/json"},
		"Accept":        {accept},
	}

	rr := &model.RelayRequest{
		Ctx:    c.Request().Context(),
		Method: method,
		Path:   path,
		Header: header,
	}
	if withBody {
		rr.Body = c.Request().Body
	}

	resp, err := h.service.ForwardAPI(rr)
	if err != nil {
		h.logger.Error("agency forward error", "err", err, "path", path)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "error connecting to upstream: " + err.Error(),
		})
	}
	defer func() { _ = resp.Body.Close() }()

	return writeUpstream(c, resp)
}

// writeUpstream copies the upstream status, content type and body to the caller.
func writeUpstream(c echo.Context, resp *model.RelayResponse) error {
	if ct := resp.Header.Get(echo.HeaderContentType); ct != "" {
		c.Response().Header().Set(echo.HeaderContentType, ct)
	}
	c.Response().WriteHeader(resp.StatusCode)
	_, err := io.Copy(c.Response(), resp.Body)
	return err
}
