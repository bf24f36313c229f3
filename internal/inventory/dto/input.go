package dto

type SellInput struct {
	ProductID string
	Quantity  *int // nil when the client omitted it
}
