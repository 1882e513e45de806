package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/cinema-box-office/internal/handler"
	"github.com/iliyamo/cinema-box-office/internal/middleware"
	"github.com/iliyamo/cinema-box-office/internal/model"
)

// RegisterStaff registers ticket sales for STAFF and ADMIN.  Successful
// writes purge the public response cache.
func RegisterStaff(e *echo.Echo, h *handler.BoxOfficeHandler, d Deps) {
	g := e.Group(
		"/v1",
		middleware.JWTAuth(d.JWTSecret),
		middleware.RequireRole(model.RoleStaff, model.RoleAdmin),
		middleware.NewTokenBucket(d.RateLimit, d.Redis),
		middleware.NewCachePurge(d.Cache, d.Redis),
	)
	g.POST("/houses/:number/tickets", h.BuyTickets)
	g.GET("/tickets/:number", h.GetTicket)
	g.POST("/tickets/:number/refund", h.RefundTicket)
}

// RegisterAdmin registers house management, seat overrides and the ticket
// ledger.  All routes require the ADMIN role.
func RegisterAdmin(e *echo.Echo, h *handler.BoxOfficeHandler, d Deps) {
	g := e.Group(
		"/v1",
		middleware.JWTAuth(d.JWTSecret),
		middleware.RequireRole(model.RoleAdmin),
		middleware.NewCachePurge(d.Cache, d.Redis),
	)
	g.POST("/houses", h.CreateHouse)
	g.PATCH("/houses/:number", h.UpdateHouse)
	g.DELETE("/houses/:number", h.DeleteHouse)
	g.POST("/houses/:number/clear", h.ClearHouse)
	g.POST("/override", h.Override)

	g.GET("/tickets", h.ListTickets)
	g.GET("/tickets/stats", h.TicketStats)
	g.DELETE("/tickets/:number", h.DeleteTicket)
}
