package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/cinema-box-office/internal/boxoffice"
	"github.com/iliyamo/cinema-box-office/internal/middleware"
	"github.com/iliyamo/cinema-box-office/internal/model"
)

// ticketView adds the printed ticket number and seat label.
type ticketView struct {
	*model.Ticket
	Number string `json:"number"`
	Seat   string `json:"seat"`
}

func viewTicket(t *model.Ticket) ticketView {
	return ticketView{Ticket: t, Number: t.Number(), Seat: t.Seat()}
}

func viewTickets(ts []*model.Ticket) []ticketView {
	out := make([]ticketView, 0, len(ts))
	for _, t := range ts {
		out = append(out, viewTicket(t))
	}
	return out
}

type buyReq struct {
	Count int      `json:"count"`
	Seats []string `json:"seats"`
	Kind  string   `json:"kind"`
}

// BuyTickets sells count seats of one kind in a house.  Each entry of seats
// is a coordinate expression; together they must cover exactly count seats.
func (h *BoxOfficeHandler) BuyTickets(c echo.Context) error {
	number, ok := houseNumberParam(c)
	if !ok {
		return middleware.Abort(c, http.StatusBadRequest, "invalid_parameter")
	}
	var req buyReq
	if err := c.Bind(&req); err != nil {
		return middleware.Abort(c, http.StatusBadRequest, "invalid_body")
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	tickets, err := h.Office.BuyTickets(ctx, boxoffice.BuyRequest{
		House:       number,
		Count:       req.Count,
		Expressions: req.Seats,
		Kind:        model.TicketKind(strings.ToUpper(strings.TrimSpace(req.Kind))),
	})
	if err != nil {
		return respondError(c, err)
	}
	var total uint64
	for _, t := range tickets {
		total += uint64(t.PriceCents)
	}
	return c.JSON(http.StatusCreated, echo.Map{"tickets": viewTickets(tickets), "total_cents": total})
}

// GetTicket looks a ticket up by its printed number, e.g. T00042.
func (h *BoxOfficeHandler) GetTicket(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	t, err := h.Office.GetTicket(ctx, c.Param("number"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, viewTicket(t))
}

// RefundTicket removes a ticket and frees its seat.
func (h *BoxOfficeHandler) RefundTicket(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	t, err := h.Office.RefundTicket(ctx, c.Param("number"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"ticket": viewTicket(t), "refunded_cents": t.PriceCents})
}

// ListTickets returns every active ticket.
func (h *BoxOfficeHandler) ListTickets(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	tickets, err := h.Office.ListTickets(ctx)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"tickets": viewTickets(tickets)})
}

// TicketStats reports ticket totals and revenue.
func (h *BoxOfficeHandler) TicketStats(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	st, err := h.Office.Stats(ctx)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, st)
}

// DeleteTicket removes a ticket record; the seat keeps its status.
func (h *BoxOfficeHandler) DeleteTicket(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	t, err := h.Office.DeleteTicket(ctx, c.Param("number"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"ticket": viewTicket(t)})
}
