package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/cinema-box-office/internal/boxoffice"
	"github.com/iliyamo/cinema-box-office/internal/coorexpr"
	"github.com/iliyamo/cinema-box-office/internal/i18n"
	"github.com/iliyamo/cinema-box-office/internal/middleware"
	"github.com/iliyamo/cinema-box-office/internal/model"
)

// BoxOfficeHandler serves houses, seats and tickets on top of an Office.
type BoxOfficeHandler struct {
	Office *boxoffice.Office
}

// NewBoxOfficeHandler panics on a nil office so wiring mistakes surface at
// startup.
func NewBoxOfficeHandler(o *boxoffice.Office) *BoxOfficeHandler {
	if o == nil {
		panic("nil office passed to NewBoxOfficeHandler")
	}
	return &BoxOfficeHandler{Office: o}
}

// ListHouses returns a summary per house: movie and free seats.
func (h *BoxOfficeHandler) ListHouses(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	houses, err := h.Office.ListHouses(ctx)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]model.Summary, 0, len(houses))
	for _, hs := range houses {
		out = append(out, hs.Summarize())
	}
	return c.JSON(http.StatusOK, echo.Map{"houses": out})
}

// GetHouse returns one house with its seating plan.
func (h *BoxOfficeHandler) GetHouse(c echo.Context) error {
	number, ok := houseNumberParam(c)
	if !ok {
		return middleware.Abort(c, http.StatusBadRequest, "invalid_parameter")
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	house, err := h.Office.GetHouse(ctx, number)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, house)
}

// Chart renders the seating plan as text.  ?select=<expr> previews the
// seats an expression covers, marked with '?'.
func (h *BoxOfficeHandler) Chart(c echo.Context) error {
	number, ok := houseNumberParam(c)
	if !ok {
		return middleware.Abort(c, http.StatusBadRequest, "invalid_parameter")
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	house, err := h.Office.GetHouse(ctx, number)
	if err != nil {
		return respondError(c, err)
	}
	var selected []coorexpr.Coordinate
	if expr := c.QueryParam("select"); strings.TrimSpace(expr) != "" {
		if selected, err = coorexpr.Seats(expr, house.Rows, house.Columns); err != nil {
			return respondError(c, err)
		}
	}
	lang := middleware.Lang(c)
	chart := boxoffice.RenderChart(house, i18n.Message(lang, "screen"), selected...)
	return c.String(http.StatusOK, chart+"\n"+i18n.Message(lang, "legend")+"\n")
}

type parseReq struct {
	Expr    string `json:"expr"`
	Rows    int    `json:"rows"`
	Columns int    `json:"columns"`
}

// ParseCoordinates analyzes and expands an expression against a rows x
// columns grid without touching any house.
func (h *BoxOfficeHandler) ParseCoordinates(c echo.Context) error {
	var req parseReq
	if err := c.Bind(&req); err != nil {
		return middleware.Abort(c, http.StatusBadRequest, "invalid_body")
	}
	coords, err := coorexpr.Analyze(req.Expr, req.Rows, req.Columns)
	if err != nil {
		return respondError(c, err)
	}
	seats, err := coorexpr.Expand(coords)
	if err != nil {
		return respondError(c, err)
	}
	labels := make([]string, len(seats))
	for i, s := range seats {
		labels[i] = s.String()
	}
	return c.JSON(http.StatusOK, echo.Map{
		"coordinates": coords,
		"seats":       seats,
		"labels":      labels,
	})
}
