package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/cinema-box-office/internal/boxoffice"
	"github.com/iliyamo/cinema-box-office/internal/middleware"
)

type createHouseReq struct {
	Rows            int     `json:"rows"`
	Columns         int     `json:"columns"`
	Movie           *string `json:"movie"`
	AdultPriceCents *uint32 `json:"adult_price_cents"`
	ChildPriceCents *uint32 `json:"child_price_cents"`
}

type updateHouseReq struct {
	Movie           *string `json:"movie"`
	AdultPriceCents *uint32 `json:"adult_price_cents"`
	ChildPriceCents *uint32 `json:"child_price_cents"`
}

func (r updateHouseReq) empty() bool {
	return r.Movie == nil && r.AdultPriceCents == nil && r.ChildPriceCents == nil
}

// CreateHouse adds a house.  Movie and prices may be given up front.
func (h *BoxOfficeHandler) CreateHouse(c echo.Context) error {
	var req createHouseReq
	if err := c.Bind(&req); err != nil {
		return middleware.Abort(c, http.StatusBadRequest, "invalid_body")
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u := boxoffice.HouseUpdate{Movie: req.Movie, AdultPriceCents: req.AdultPriceCents, ChildPriceCents: req.ChildPriceCents}
	house, err := h.Office.CreateHouse(ctx, req.Rows, req.Columns, u)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, house)
}

// UpdateHouse changes movie and prices.  A new movie empties the house and
// removes its tickets; the count is reported as tickets_removed.
func (h *BoxOfficeHandler) UpdateHouse(c echo.Context) error {
	number, ok := houseNumberParam(c)
	if !ok {
		return middleware.Abort(c, http.StatusBadRequest, "invalid_parameter")
	}
	var req updateHouseReq
	if err := c.Bind(&req); err != nil || req.empty() {
		return middleware.Abort(c, http.StatusBadRequest, "invalid_body")
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	house, removed, err := h.Office.UpdateHouse(ctx, number, boxoffice.HouseUpdate(req))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"house": house, "tickets_removed": removed})
}

// ClearHouse empties every seat and removes the house's tickets.
func (h *BoxOfficeHandler) ClearHouse(c echo.Context) error {
	number, ok := houseNumberParam(c)
	if !ok {
		return middleware.Abort(c, http.StatusBadRequest, "invalid_parameter")
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	removed, err := h.Office.ClearHouse(ctx, number)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"house": number, "tickets_removed": removed})
}

// DeleteHouse removes a house with its seats and tickets.
func (h *BoxOfficeHandler) DeleteHouse(c echo.Context) error {
	number, ok := houseNumberParam(c)
	if !ok {
		return middleware.Abort(c, http.StatusBadRequest, "invalid_parameter")
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	removed, err := h.Office.DeleteHouse(ctx, number)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"house": number, "tickets_removed": removed})
}

type overrideReq struct {
	Command string `json:"command"`
}

// Override runs an ACTION-HOUSE-EXPRESSION seat override, e.g.
// "BUY-1-3A:4C".
func (h *BoxOfficeHandler) Override(c echo.Context) error {
	var req overrideReq
	if err := c.Bind(&req); err != nil {
		return middleware.Abort(c, http.StatusBadRequest, "invalid_body")
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	res, err := h.Office.Override(ctx, req.Command)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}
