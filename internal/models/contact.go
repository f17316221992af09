package models

import "time"

// ContactItem is a message left through the public contact form.
type ContactItem struct {
	ID       int       `json:"id"`
	Name     string    `json:"name"`
	Company  string    `json:"company"`
	Email    string    `json:"email"`
	Phone    *string   `json:"phone"`
	Comments string    `json:"comments"`
	Date     time.Time `json:"date"`
}
