package ordering

import (
	"github.com/F1oxyz/coffe-cat-cop/internal/docstore"
)

func docFromOrder(o Order) docstore.Document {
	return docstore.Document{
		"userId":          o.UserID,
		"productId":       o.ProductID,
		"productName":     o.ProductName,
		"size":            o.Size,
		"quantity":        o.Quantity,
		"totalPrice":      o.TotalPrice,
		"deliveryAddress": o.DeliveryAddress,
		"status":          string(o.Status),
	}
}
