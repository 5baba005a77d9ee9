package domain

import "time"

type Customer struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone"`
	Address    *string   `json:"address,omitempty"`
	NationalID *string   `json:"nid,omitempty"`
	PhotoURL   *string   `json:"photoUrl,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}
