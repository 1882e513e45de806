package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/cinema-box-office/internal/boxoffice"
	"github.com/iliyamo/cinema-box-office/internal/coorexpr"
	"github.com/iliyamo/cinema-box-office/internal/middleware"
	"github.com/iliyamo/cinema-box-office/internal/repository"
)

type errorMapping struct {
	err    error
	status int
	code   string
}

// errorTable is checked in order with errors.Is.
var errorTable = []errorMapping{
	{boxoffice.ErrHouseNotFound, http.StatusNotFound, "house_not_found"},
	{boxoffice.ErrTicketNotFound, http.StatusNotFound, "ticket_not_found"},
	{repository.ErrUserNotFound, http.StatusNotFound, "user_not_found"},

	{boxoffice.ErrSeatUnavailable, http.StatusConflict, "seat_unavailable"},
	{boxoffice.ErrSeatTaken, http.StatusConflict, "seat_taken"},
	{boxoffice.ErrNoMovie, http.StatusConflict, "no_movie"},
	{repository.ErrEmailExists, http.StatusConflict, "email_exists"},

	{boxoffice.ErrSeatOutOfPlan, http.StatusUnprocessableEntity, "seat_out_of_plan"},
	{boxoffice.ErrSeatAlreadySelected, http.StatusUnprocessableEntity, "seat_already_selected"},
	{boxoffice.ErrTooManySeats, http.StatusUnprocessableEntity, "too_many_seats"},
	{boxoffice.ErrSelectionIncomplete, http.StatusUnprocessableEntity, "selection_incomplete"},
	{boxoffice.ErrInvalidHouseNumber, http.StatusUnprocessableEntity, "invalid_house_number"},

	{boxoffice.ErrInvalidHouseSize, http.StatusBadRequest, "invalid_house_size"},
	{boxoffice.ErrMovieTooLong, http.StatusBadRequest, "movie_too_long"},
	{boxoffice.ErrInvalidTicketCount, http.StatusBadRequest, "invalid_ticket_count"},
	{boxoffice.ErrInvalidTicketKind, http.StatusBadRequest, "invalid_ticket_kind"},
	{boxoffice.ErrEmptyCommand, http.StatusBadRequest, "empty_command"},
	{boxoffice.ErrInvalidCommand, http.StatusBadRequest, "invalid_command"},
	{boxoffice.ErrUnknownAction, http.StatusBadRequest, "unknown_action"},

	{boxoffice.ErrEmptyTicketNumber, http.StatusBadRequest, "empty_ticket_number"},
	{boxoffice.ErrTicketNumberPrefix, http.StatusBadRequest, "ticket_number_prefix"},
	{boxoffice.ErrTicketNumberNoDigits, http.StatusBadRequest, "ticket_number_no_digits"},
	{boxoffice.ErrTicketNumberTooShort, http.StatusBadRequest, "ticket_number_too_short"},
	{boxoffice.ErrTicketNumberNotDecimal, http.StatusBadRequest, "ticket_number_not_decimal"},
	{boxoffice.ErrTicketNumberLeadingZeros, http.StatusBadRequest, "ticket_number_leading_zeros"},
	{boxoffice.ErrTicketNumberAllZero, http.StatusBadRequest, "ticket_number_all_zero"},
}

// errorResponse maps err to a status and message code.  Coordinate
// expression errors use their kind name as code: 400 for bad arguments,
// 422 for everything the user typed.
func errorResponse(err error) (int, string) {
	if k, ok := coorexpr.KindOf(err); ok {
		if k.Class() == "argument" {
			return http.StatusBadRequest, k.String()
		}
		return http.StatusUnprocessableEntity, k.String()
	}
	for _, m := range errorTable {
		if errors.Is(err, m.err) {
			return m.status, m.code
		}
	}
	return http.StatusInternalServerError, "internal"
}

// respondError writes the JSON error for err.  Unexpected errors are logged.
func respondError(c echo.Context, err error) error {
	status, code := errorResponse(err)
	if status == http.StatusInternalServerError {
		c.Logger().Errorf("%s %s: %v", c.Request().Method, c.Path(), err)
	}
	return middleware.Abort(c, status, code)
}

// houseNumberParam reads the :number path parameter as a house number.
func houseNumberParam(c echo.Context) (uint64, bool) {
	n, err := strconv.ParseUint(c.Param("number"), 10, 64)
	if err != nil || n == 0 {
		return 0, false
	}
	return n, true
}
