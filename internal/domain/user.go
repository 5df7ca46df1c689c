package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is a registered account. The schema is defined and validated but no
// route is wired to it yet.
type User struct {
	ID       primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name     string             `json:"name" bson:"name"`
	Email    string             `json:"email" bson:"email"`
	Address  string             `json:"address" bson:"address"`
	Age      *int               `json:"age,omitempty" bson:"age,omitempty"`
	IsActive bool               `json:"is_active" bson:"is_active"`
}

type UserInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Address  string `json:"address" validate:"required"`
	Age      *int   `json:"age" validate:"omitempty,gte=0,lte=120"`
	IsActive *bool  `json:"is_active"`
}

func (in UserInput) Record() User {
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}
	return User{
		Name:     in.Name,
		Email:    in.Email,
		Address:  in.Address,
		Age:      in.Age,
		IsActive: active,
	}
}
