package model

import (
	"time"
)

type RentalStatus string

const (
	RentalActive   RentalStatus = "active"
	RentalCanceled RentalStatus = "canceled"
)

type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Rental reserves an item for an inclusive date range. Start and End are
// calendar dates in YYYY-MM-DD form; because that format sorts the same as
// the dates themselves, plain string comparison is used throughout.
type Rental struct {
	ID        string       `json:"id"`
	ItemID    int64        `json:"itemId"`
	Start     string       `json:"start"`
	End       string       `json:"end"`
	Customer  Customer     `json:"customer"`
	CreatedAt time.Time    `json:"createdAt"`
	Status    RentalStatus `json:"status"`
}

// ValidDate reports whether s is a real calendar date in YYYY-MM-DD form.
func ValidDate(s string) bool {
	if len(s) != 10 {
		return false
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}
