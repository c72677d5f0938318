package order

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusWaitingPayment Status = "WAITING_PAYMENT"
	StatusPaid           Status = "PAID"
	StatusShipped        Status = "SHIPPED"
	StatusDelivered      Status = "DELIVERED"
	StatusCanceled       Status = "CANCELED"
)

var transitions = map[Status][]Status{
	StatusWaitingPayment: {StatusPaid, StatusCanceled},
	StatusPaid:           {StatusShipped, StatusCanceled},
	StatusShipped:        {StatusDelivered},
}

func (s Status) Valid() bool {
	switch s {
	case StatusWaitingPayment, StatusPaid, StatusShipped, StatusDelivered, StatusCanceled:
		return true
	}
	return false
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type Client struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Payment exists once the order has been paid; its id is the order id.
type Payment struct {
	ID     int64     `json:"id"`
	Moment time.Time `json:"moment"`
}

// Item is one order line. Price is the product price when the order was placed.
type Item struct {
	ProductID int64           `json:"productId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price" swaggertype:"string" example:"90.50"`
	Quantity  int             `json:"quantity"`
	ImgURL    string          `json:"imgUrl"`
}

func (i Item) SubTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

func (i Item) MarshalJSON() ([]byte, error) {
	type alias Item
	return json.Marshal(struct {
		alias
		SubTotal decimal.Decimal `json:"subTotal"`
	}{alias(i), i.SubTotal()})
}

// Order is the full projection returned by order endpoints.
// swagger:model
type Order struct {
	ID      int64     `json:"id"`
	Moment  time.Time `json:"moment"`
	Status  Status    `json:"status"`
	Client  Client    `json:"client"`
	Payment *Payment  `json:"payment"`
	Items   []Item    `json:"items"`
}

func (o Order) Total() decimal.Decimal {
	sum := decimal.Zero
	for _, it := range o.Items {
		sum = sum.Add(it.SubTotal())
	}
	return sum
}

func (o Order) MarshalJSON() ([]byte, error) {
	type alias Order
	return json.Marshal(struct {
		alias
		Total decimal.Decimal `json:"total"`
	}{alias(o), o.Total()})
}
