package models

import "time"

type User struct {
	ID        string    `json:"user_id"`
	Username  string    `json:"username,omitempty"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Password  string    `json:"-"`
	OTP       *int      `json:"-"` // champ hérité du schéma, aucun flux ne l'utilise
	CreatedAt time.Time `json:"created_at"`
}
