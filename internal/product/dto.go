package product

import (
	"github.com/shopspring/decimal"

	"github.com/MikeMC777/commerce-api/internal/category"
)

// CategoryRef points at an existing category by id.
type CategoryRef struct {
	ID int64 `json:"id" validate:"gt=0" example:"1"`
}

// Payload is the body of product insert and update.
// swagger:model ProductPayload
type Payload struct {
	Name        string          `json:"name"        validate:"required,min=3,max=80" example:"Mechanical Keyboard"`
	Description string          `json:"description" validate:"required,min=10"       example:"RGB 60% keyboard with hot-swap switches"`
	Price       decimal.Decimal `json:"price"       validate:"gt=0,money"            swaggertype:"string" example:"199.90"`
	ImgURL      string          `json:"imgUrl"      example:"https://img.example.com/kb.jpg"`
	Categories  []CategoryRef   `json:"categories"  validate:"min=1,dive"`
}

func (Payload) ValidationMessages() map[string]string {
	return map[string]string{
		"name":        "name must have 3 to 80 characters",
		"description": "description must have at least 10 characters",
		"price":       "price must be positive",
		"price.money": "price must have at most 2 decimal places and not exceed 9999999999.99",
		"categories":  "must have at least one category",
	}
}

// toProduct drops repeated category ids; the set has no order.
func (in Payload) toProduct(id int64) *Product {
	p := &Product{
		ID:          id,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		ImgURL:      in.ImgURL,
	}
	seen := make(map[int64]bool, len(in.Categories))
	for _, c := range in.Categories {
		if seen[c.ID] {
			continue
		}
		seen[c.ID] = true
		p.Categories = append(p.Categories, category.Category{ID: c.ID})
	}
	return p
}
