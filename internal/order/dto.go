package order

import (
	"fmt"
	"math"

	"github.com/MikeMC777/commerce-api/internal/apperr"
)

// MaxQuantity is the largest quantity an order line can store.
const MaxQuantity = math.MaxInt32

// ItemPayload is one requested line. Any client-sent price is ignored.
// swagger:model CreateOrderItem
type ItemPayload struct {
	ProductID int64 `json:"productId" validate:"gt=0" example:"1"`
	Quantity  int   `json:"quantity"  validate:"gt=0,lte=2147483647" example:"2"`
}

// Payload is the body of order creation.
// swagger:model CreateOrderRequest
type Payload struct {
	Items []ItemPayload `json:"items" validate:"min=1,dive"`
}

func (Payload) ValidationMessages() map[string]string {
	return map[string]string{
		"items":        "must have at least one item",
		"quantity":     "quantity must be positive",
		"quantity.lte": "quantity must not exceed 2147483647",
	}
}

// lines folds repeated products into one line, keeping first-seen order.
// A folded quantity past MaxQuantity is reported on the item that overflowed it.
func (in Payload) lines() ([]ItemPayload, error) {
	out := make([]ItemPayload, 0, len(in.Items))
	idx := make(map[int64]int, len(in.Items))
	for n, it := range in.Items {
		i, ok := idx[it.ProductID]
		if !ok {
			idx[it.ProductID] = len(out)
			out = append(out, it)
			continue
		}
		if out[i].Quantity > MaxQuantity-it.Quantity {
			return nil, apperr.Validation(apperr.FieldMessage{
				FieldName: fmt.Sprintf("items[%d].quantity", n),
				Message:   fmt.Sprintf("total quantity for product %d must not exceed %d", it.ProductID, MaxQuantity),
			})
		}
		out[i].Quantity += it.Quantity
	}
	return out, nil
}
