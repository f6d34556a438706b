package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// agencyIDHeader is the tenant identifier header required by agency endpoints.
// The exact casing matters to some upstream deployments, so it is preserved on
// the wire rather than canonicalized.
const agencyIDHeader = "agencyId"

// rawToken returns the Authorization header value verbatim. Agency endpoints
// send the token without a Bearer prefix.
func rawToken(c echo.Context) (string, error) {
	token := c.Request().Header.Get(echo.HeaderAuthorization)
	if token == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is missing")
	}
	return token, nil
}

// bearerToken extracts the token from an "Authorization: Bearer <token>" header.
func bearerToken(c echo.Context) (string, error) {
	auth := c.Request().Header.Get(echo.HeaderAuthorization)
	if auth == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is missing")
	}
	parts := strings.Fields(auth)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "Invalid Authorization header format. Expected 'Bearer <token>'")
	}
	return parts[1], nil
}

// agencyID returns the agencyId header. Missing tenant id is a client input
// error (400), not an authentication failure.
func agencyID(c echo.Context) (string, error) {
	id := c.Request().Header.Get(agencyIDHeader)
	if id == "" {
		return "", echo.NewHTTPError(http.StatusBadRequest, "agencyId header is missing")
	}
	return id, nil
}
