package domain

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Inquiry is a buyer RFQ submitted from the website. Inquiries are written
// once and never read back through the API.
type Inquiry struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Company   string             `json:"company" bson:"company"`
	Email     string             `json:"email" bson:"email"`
	Phone     string             `json:"phone,omitempty" bson:"phone,omitempty"`
	Message   string             `json:"message" bson:"message"`
	ProductID string             `json:"product_id,omitempty" bson:"product_id,omitempty"`
}

// InquiryInput is the shape accepted by the inquiry endpoint. product_id is
// expected to reference a product but is not checked as a foreign key.
type InquiryInput struct {
	Name      string `json:"name" validate:"required"`
	Company   string `json:"company" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone"`
	Message   string `json:"message" validate:"required"`
	ProductID string `json:"product_id"`
}

func (in *InquiryInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Company = strings.TrimSpace(in.Company)
	in.Email = strings.TrimSpace(in.Email)
}

func (in InquiryInput) Record() Inquiry {
	return Inquiry{
		Name:      in.Name,
		Company:   in.Company,
		Email:     in.Email,
		Phone:     in.Phone,
		Message:   in.Message,
		ProductID: in.ProductID,
	}
}
