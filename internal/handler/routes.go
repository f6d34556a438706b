package handler

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes wires all route handlers onto the Echo instance.
func RegisterRoutes(
	e *echo.Echo,
	relay *RelayHandler,
	agency *AgencyHandler,
	mall *MallHandler,
	pickupAgency *PickupAgencyHandler,
	pickupMall *PickupMallHandler,
	users *UserHandler,
	health *HealthHandler,
) {
	e.GET("/healthz", health.Healthz)
	e.GET("/relay/status", health.Status)

	e.Any("/relay/*", relay.Handle)

	ag := e.Group("/api/agency")
	ag.POST("/auth", agency.CheckAuth)
	ag.POST("/auth/token", agency.AuthToken)
	ag.PUT("/delivery", agency.UpdateDelivery)
	ag.PUT("/delivery/flex", agency.ReturnFlex)
	ag.PUT("/delivery/list/flex", agency.ReturnListFlex)
	ag.POST("/delivery/list/:deliveryDt", agency.DeliveryListByDate)
	ag.PUT("/delivery/state", agency.UpdateDeliveryState)
	ag.POST("/delivery/:invoiceNumberList", agency.DeliveryByInvoiceList)
	ag.POST("/postal/save", agency.SavePostalCodes)

	ml := e.Group("/api/mall")
	ml.POST("/cancelDelivery", mall.CancelDelivery)
	ml.GET("/delivery/:invoiceNumber", mall.DeliveryByInvoice)
	ml.GET("/deliveryList/:invoiceNumberList", mall.DeliveryListByInvoices)
	ml.POST("/deliveryListRegister", mall.DeliveryListRegister)
	ml.POST("/deliveryRegister", mall.DeliveryRegister)
	ml.GET("/possibleDelivery", mall.PossibleDelivery)
	ml.POST("/returnDelivery", mall.ReturnDelivery)
	ml.POST("/returnListRegister", mall.ReturnListRegister)
	ml.POST("/returnRegister", mall.ReturnRegister)

	pa := e.Group("/todaypickup/agency")
	pa.POST("/auth-check", pickupAgency.CheckAuth)
	pa.POST("/auth-token", pickupAgency.AuthToken)
	pa.PUT("/delivery", pickupAgency.UpdateDelivery)
	pa.PUT("/delivery/flex", pickupAgency.ReturnFlex)
	pa.PUT("/delivery/list/flex", pickupAgency.ReturnListFlex)
	pa.POST("/delivery/list/:deliveryDt", pickupAgency.DeliveryListByDate)
	pa.PUT("/delivery/state", pickupAgency.UpdateDeliveryState)
	pa.POST("/delivery/:invoiceNumberList", pickupAgency.DeliveryByInvoiceList)
	pa.POST("/postal/save", pickupAgency.SavePostalCodes)

	pm := e.Group("/todaypickup/mall")
	pm.POST("/cancel-delivery", pickupMall.CancelDelivery)
	pm.GET("/delivery/:invoiceNumber", pickupMall.DeliveryByInvoice)
	pm.GET("/delivery-list/:invoiceNumberList", pickupMall.DeliveryListByInvoices)
	pm.POST("/delivery-list-register", pickupMall.DeliveryListRegister)
	pm.POST("/delivery-register", pickupMall.DeliveryRegister)
	pm.GET("/possible-delivery", pickupMall.PossibleDelivery)
	pm.POST("/return-delivery", pickupMall.ReturnDelivery)
	pm.POST("/return-list-register", pickupMall.ReturnListRegister)
	pm.POST("/return-register", pickupMall.ReturnRegister)

	us := e.Group("/users")
	us.POST("", users.Create)
	us.GET("", users.List)
	us.GET("/:id", users.Get)
	us.PUT("/:id", users.Update)
	us.DELETE("/:id", users.Delete)
}
