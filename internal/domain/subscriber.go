package domain

import "time"

// Subscriber is a newsletter subscription
type Subscriber struct {
	ID        int64
	Email     string
	CreatedAt time.Time
}
