package models

import "encoding/json"

// Customer fields are opaque strings; email and phone are not format-checked.
type Customer struct {
	CustomerID string `json:"customer_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
}

func NewCustomer(customerID, name, email, phone string) Customer {
	return Customer{CustomerID: customerID, Name: name, Email: email, Phone: phone}
}

type customerRecord struct {
	CustomerID *string `json:"customer_id" validate:"required"`
	Name       *string `json:"name" validate:"required"`
	Email      *string `json:"email" validate:"required"`
	Phone      *string `json:"phone" validate:"required"`
}

func (c *Customer) UnmarshalJSON(data []byte) error {
	var rec customerRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}
	if err := validateRecord("customer", rec); err != nil {
		return err
	}

	*c = NewCustomer(*rec.CustomerID, *rec.Name, *rec.Email, *rec.Phone)
	return nil
}

type CustomerUpdate struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
}

func (u CustomerUpdate) Apply(c *Customer) {
	if u.Name != nil {
		c.Name = *u.Name
	}
	if u.Email != nil {
		c.Email = *u.Email
	}
	if u.Phone != nil {
		c.Phone = *u.Phone
	}
}
