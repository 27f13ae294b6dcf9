package catalog

import (
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

// CategoryResponse is the wire shape of a menu category.
type CategoryResponse struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ProductResponse is the wire shape of a product; Price has two decimals.
type ProductResponse struct {
	ID          int    `json:"id"`
	CategoryID  int    `json:"categoryId"`
	Name        string `json:"name"`
	Price       string `json:"price"`
	Description string `json:"description"`
}

var copyOptions = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: decimal.Decimal{},
			DstType: copier.String,
			Fn: func(src interface{}) (interface{}, error) {
				return src.(decimal.Decimal).StringFixed(2), nil
			},
		},
	},
}

func ToCategoryResponses(categories []Category) ([]CategoryResponse, error) {
	out := make([]CategoryResponse, 0, len(categories))
	if err := copier.CopyWithOption(&out, &categories, copyOptions); err != nil {
		return nil, err
	}
	return out, nil
}

func ToProductResponse(product Product) (ProductResponse, error) {
	var out ProductResponse
	if err := copier.CopyWithOption(&out, &product, copyOptions); err != nil {
		return ProductResponse{}, err
	}
	return out, nil
}

func ToProductResponses(products []Product) ([]ProductResponse, error) {
	out := make([]ProductResponse, 0, len(products))
	if err := copier.CopyWithOption(&out, &products, copyOptions); err != nil {
		return nil, err
	}
	return out, nil
}
