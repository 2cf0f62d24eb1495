package domain

import "github.com/google/uuid"

// Restaurant is a read-only catalog snapshot fetched per request.
type Restaurant struct {
	ID       uuid.UUID
	Active   bool
	Products []*Product
}

type Product struct {
	ID    uuid.UUID
	Name  string
	Price Money
}

func (r *Restaurant) FindProduct(productID uuid.UUID) *Product {
	for _, p := range r.Products {
		if p.ID == productID {
			return p
		}
	}
	return nil
}
