package boxoffice

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ParseTicketNumber validates a ticket number such as "T00042" and returns
// its index.  Numbers have at least five digits; more digits are allowed
// only without a leading zero.
func ParseTicketNumber(s string) (uint64, error) {
	s = strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(s)), " ", "")
	switch {
	case s == "":
		return 0, ErrEmptyTicketNumber
	case s[0] != 'T':
		return 0, ErrTicketNumberPrefix
	case s == "T":
		return 0, ErrTicketNumberNoDigits
	case utf8.RuneCountInString(s) < 6:
		return 0, ErrTicketNumberTooShort
	}
	digits := s[1:]
	if !isDecimal(digits) {
		return 0, ErrTicketNumberNotDecimal
	}
	if len(s) > 6 && digits[0] == '0' {
		return 0, ErrTicketNumberLeadingZeros
	}
	if strings.Trim(digits, "0") == "" {
		return 0, ErrTicketNumberAllZero
	}
	n, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		// too large to have been issued
		return 0, fmt.Errorf("%w: %s", ErrTicketNotFound, s)
	}
	return n, nil
}
