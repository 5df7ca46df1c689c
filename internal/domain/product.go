package domain

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is an industrial equipment listing. Products are immutable once
// created; there are no update or delete operations.
type Product struct {
	ID               primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name             string             `json:"name" bson:"name"`
	Category         string             `json:"category" bson:"category"`
	ShortDescription string             `json:"short_description,omitempty" bson:"short_description,omitempty"`
	Specs            map[string]string  `json:"specs,omitempty" bson:"specs,omitempty"`
	ImageURL         string             `json:"image_url,omitempty" bson:"image_url,omitempty"`
	DatasheetURL     string             `json:"datasheet_url,omitempty" bson:"datasheet_url,omitempty"`
	Brand            string             `json:"brand,omitempty" bson:"brand,omitempty"`
	Model            string             `json:"model,omitempty" bson:"model,omitempty"`
	InStock          bool               `json:"in_stock" bson:"in_stock"`
}

// ProductInput is the untyped-input shape accepted by the create endpoint.
// URL fields must be well-formed absolute URLs when present and are omitted
// from the stored document when absent.
type ProductInput struct {
	Name             string            `json:"name" validate:"required"`
	Category         string            `json:"category" validate:"required"`
	ShortDescription string            `json:"short_description"`
	Specs            map[string]string `json:"specs"`
	ImageURL         string            `json:"image_url" validate:"omitempty,url"`
	DatasheetURL     string            `json:"datasheet_url" validate:"omitempty,url"`
	Brand            string            `json:"brand"`
	Model            string            `json:"model"`
	InStock          *bool             `json:"in_stock"`
}

// Normalize trims surrounding whitespace before validation.
func (in *ProductInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Category = strings.TrimSpace(in.Category)
	in.Brand = strings.TrimSpace(in.Brand)
	in.Model = strings.TrimSpace(in.Model)
}

// Record converts validated input to a Product, applying the in_stock
// default when the field was omitted.
func (in ProductInput) Record() Product {
	inStock := true
	if in.InStock != nil {
		inStock = *in.InStock
	}
	return Product{
		Name:             in.Name,
		Category:         in.Category,
		ShortDescription: in.ShortDescription,
		Specs:            in.Specs,
		ImageURL:         in.ImageURL,
		DatasheetURL:     in.DatasheetURL,
		Brand:            in.Brand,
		Model:            in.Model,
		InStock:          inStock,
	}
}
