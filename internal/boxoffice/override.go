package boxoffice

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/iliyamo/cinema-box-office/internal/coorexpr"
	"github.com/iliyamo/cinema-box-office/internal/model"
)

// Override actions and the status each one writes.
var overrideActions = map[string]model.SeatStatus{
	"EMPTY":   model.SeatEmpty,
	"BUY":     model.SeatSold,
	"RESERVE": model.SeatReserved,
}

// commandCleaner drops the decoration users copy from the usage line
// "(EMPTY | BUY | RESERVE) - <House number> - <Coordinate Expression>"
// and maps the full-width dash typed by Chinese input methods.
var commandCleaner = strings.NewReplacer(
	" ", "", "<", "", ">", "", "(", "", ")", "",
	"（", "", "）", "", "《", "", "》", "", "|", "",
	"—", "-",
)

// OverrideCommand is a parsed ACTION-HOUSE-EXPRESSION command.
type OverrideCommand struct {
	Action     string
	Status     model.SeatStatus
	House      uint64
	Expression string
}

// ParseOverride normalizes and splits a command.  It does not look the house
// up or parse the expression.
func ParseOverride(command string) (OverrideCommand, error) {
	command = commandCleaner.Replace(strings.ToUpper(strings.TrimSpace(command)))
	if command == "" {
		return OverrideCommand{}, ErrEmptyCommand
	}
	parts := strings.Split(command, "-")
	if len(parts) != 3 {
		return OverrideCommand{}, ErrInvalidCommand
	}
	status, ok := overrideActions[parts[0]]
	if !ok {
		return OverrideCommand{}, fmt.Errorf("%w: %q", ErrUnknownAction, parts[0])
	}
	if !isDecimal(parts[1]) {
		return OverrideCommand{}, fmt.Errorf("%w: %q", ErrInvalidHouseNumber, parts[1])
	}
	number, err := strconv.ParseUint(parts[1], 10, 64)
	if err != nil {
		return OverrideCommand{}, fmt.Errorf("%w: %q", ErrInvalidHouseNumber, parts[1])
	}
	return OverrideCommand{Action: parts[0], Status: status, House: number, Expression: parts[2]}, nil
}

// OverrideResult reports what an override changed.
type OverrideResult struct {
	Command OverrideCommand       `json:"-"`
	House   uint64                `json:"house"`
	Action  string                `json:"action"`
	Status  model.SeatStatus      `json:"status"`
	Seats   []coorexpr.Coordinate `json:"seats"`
}

// Override runs an admin seat override.  Every seat the expression covers is
// set to the action's status regardless of its current status, and tickets
// are left untouched.
func (o *Office) Override(ctx context.Context, command string) (*OverrideResult, error) {
	cmd, err := ParseOverride(command)
	if err != nil {
		return nil, err
	}
	h, err := o.store.GetHouse(ctx, cmd.House)
	if errors.Is(err, ErrHouseNotFound) {
		return nil, fmt.Errorf("%w: house %d does not exist", ErrInvalidHouseNumber, cmd.House)
	}
	if err != nil {
		return nil, err
	}
	seats, err := coorexpr.Seats(cmd.Expression, h.Rows, h.Columns)
	if err != nil {
		return nil, err
	}
	if err := o.store.SetSeatStatus(ctx, h.Number, seats, cmd.Status); err != nil {
		return nil, err
	}
	log.Printf("box-office: override %s house %d %s, %d seats overwritten", cmd.Action, h.Number, cmd.Expression, len(seats))
	return &OverrideResult{Command: cmd, House: h.Number, Action: cmd.Action, Status: cmd.Status, Seats: seats}, nil
}

func isDecimal(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
