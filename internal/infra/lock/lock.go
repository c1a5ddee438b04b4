// Package lock implements the short-lived reservation hold taken while a
// booking request is admitted. A hold is keyed by listing, desk and date and
// never outlives its TTL.
package lock

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Release frees a hold. It is safe to call more than once.
type Release func(ctx context.Context) error

// Locker acquires holds
type Locker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (Release, error)
}

// HoldKey builds the key for a desk on a given date
func HoldKey(listingID int64, deskLabel string, date time.Time) string {
	return fmt.Sprintf("hold:listing:%d:desk:%s:date:%s",
		listingID,
		strings.ToLower(strings.TrimSpace(deskLabel)),
		date.Format("2006-01-02"),
	)
}
