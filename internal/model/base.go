package model

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Money is rendered as a JSON number, matching what clients already parse.
	decimal.MarshalJSONWithoutQuotes = true
}

type BaseModel struct {
	ID        string    `db:"id" json:"id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
