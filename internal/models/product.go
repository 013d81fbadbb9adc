package models

import (
	"time"

	"github.com/gocql/gocql"
)

type Product struct {
	ID          gocql.UUID `json:"id" db:"product_id"`
	Name        string     `json:"name" db:"name"`
	Price       int64      `json:"price" db:"price"`
	OldPrice    *int64     `json:"old_price,omitempty" db:"old_price"`
	ImageURL    string     `json:"image_url" db:"image_url"`
	Description string     `json:"description" db:"description"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
}
