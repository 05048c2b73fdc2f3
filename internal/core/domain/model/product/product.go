// Package product models a catalog entry as reported by the order service's
// search endpoint. Products are read-only here; price and stock belong to
// the service.
package product

import (
	"errors"
	"strings"

	"instore/internal/pkg/errs"
	"instore/internal/pkg/guard"
)

var (
	ErrProductIDIsRequired   = errors.New("product id is required")
	ErrProductCodeIsRequired = errors.New("product code is required")
	ErrProductNameIsRequired = errors.New("product name is required")
)

// Product is a catalog entry as reported by the order service.
// Price is in minor currency units.
type Product struct {
	id            string
	code          string
	name          string
	price         int64
	stockQuantity int
	description   string
	image         string
	colors        []string

	guard guard.ConstructorGuard
}

// NewProduct creates a catalog entry. Description and image are optional;
// the search endpoint omits them for products without marketing copy.
func NewProduct(id string, code string, name string, price int64,
	stockQuantity int, description string, image string,
	colors []string) (*Product, error) {
	p := &Product{
		description: description,
		image:       image,
		guard:       guard.NewConstructorGuard(),
	}

	err := errors.Join(
		p.setID(id),
		p.setCode(code),
		p.setName(name),
		p.setPrice(price),
		p.setStockQuantity(stockQuantity),
	)
	if err != nil {
		return nil, err
	}

	p.colors = append([]string(nil), colors...)

	return p, nil
}

func (p *Product) setID(id string) error {
	if strings.TrimSpace(id) == "" {
		return errs.NewValueIsRequiredErrorWithCause("id", ErrProductIDIsRequired)
	}
	p.id = id
	return nil
}

func (p *Product) setCode(code string) error {
	if strings.TrimSpace(code) == "" {
		return errs.NewValueIsRequiredErrorWithCause("code", ErrProductCodeIsRequired)
	}
	p.code = code
	return nil
}

func (p *Product) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredErrorWithCause("name", ErrProductNameIsRequired)
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price int64) error {
	if price < 0 {
		return errs.NewValueIsInvalidError("price")
	}
	p.price = price
	return nil
}

func (p *Product) setStockQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidError("stockQuantity")
	}
	p.stockQuantity = quantity
	return nil
}

func (p *Product) ID() string {
	return p.id
}

func (p *Product) Code() string {
	return p.code
}

func (p *Product) Name() string {
	return p.name
}

func (p *Product) Price() int64 {
	return p.price
}

func (p *Product) StockQuantity() int {
	return p.stockQuantity
}

// InStock reports whether at least one unit can be added to a cart.
func (p *Product) InStock() bool {
	return p.stockQuantity > 0
}

// Description returns the marketing copy, empty when the service sent none.
func (p *Product) Description() string {
	return p.description
}

// Image returns the product image URL, empty when the service sent none.
func (p *Product) Image() string {
	return p.image
}

func (p *Product) Colors() []string {
	return append([]string(nil), p.colors...)
}
