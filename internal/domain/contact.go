package domain

import "time"

// ContactMessage is a message left through the contact form
type ContactMessage struct {
	ID        int64
	Name      string
	Email     string
	Phone     *string
	Subject   *string
	Message   string
	CreatedAt time.Time
}
