package appointment

import (
	"math/rand/v2"
	"regexp"
	"strconv"
)

const (
	ticketPrefix = "APPT-"
	ticketMin    = 10000
	ticketMax    = 99999
)

var ticketPattern = regexp.MustCompile(`^APPT-\d+$`)

// NewTicketNumber draws from a small space; uniqueness is enforced by the store.
func NewTicketNumber() string {
	return ticketPrefix + strconv.Itoa(ticketMin+rand.IntN(ticketMax-ticketMin+1))
}

func IsTicketNumber(s string) bool {
	return ticketPattern.MatchString(s)
}
