package domain

import "time"

// Note is a free-text entry in the shop's expense and reminder log.
type Note struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}
