package ordering

import "time"

type Status string

const StatusPending Status = "pending"

type Order struct {
	ID        string
	UserID    string
	ProductID string
	// ProductName is denormalized so the order stays displayable even if
	// the product is later deleted.
	ProductName string
	Size        string
	Quantity    int
	// TotalPrice is fixed at submission time and never recomputed.
	TotalPrice      float64
	DeliveryAddress string
	Status          Status
	CreatedAt       time.Time
}
