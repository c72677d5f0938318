package product

import (
	"github.com/shopspring/decimal"

	"github.com/MikeMC777/commerce-api/internal/category"
)

// Product is the full projection returned by single-product endpoints.
// swagger:model
type Product struct {
	ID          int64               `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Price       decimal.Decimal     `json:"price" swaggertype:"string" example:"90.50"`
	ImgURL      string              `json:"imgUrl"`
	Categories  []category.Category `json:"categories"`
}

// Min is the listing projection.
// swagger:model ProductMin
type Min struct {
	ID     int64           `json:"id"`
	Name   string          `json:"name"`
	Price  decimal.Decimal `json:"price" swaggertype:"string" example:"90.50"`
	ImgURL string          `json:"imgUrl"`
}

func (p Product) Min() Min {
	return Min{ID: p.ID, Name: p.Name, Price: p.Price, ImgURL: p.ImgURL}
}

// Page is one slice of a name-ordered listing. Number is zero-based.
type Page[T any] struct {
	Content       []T   `json:"content"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	Number        int   `json:"number"`
	Size          int   `json:"size"`
}

func NewPage[T any](content []T, total int64, number, size int) Page[T] {
	if content == nil {
		content = []T{}
	}
	pages := 0
	if size > 0 {
		pages = int((total + int64(size) - 1) / int64(size))
	}
	return Page[T]{Content: content, TotalElements: total, TotalPages: pages, Number: number, Size: size}
}
