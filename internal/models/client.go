package models

import "time"

// Client is a customer record. Shops and Payments carry the referenced
// documents resolved, never bare ids.
type Client struct {
	ID           int64     `json:"id,string"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	NID          string    `json:"nid"`
	BRNNumber    string    `json:"brnNumber"`
	PhoneNumber  string    `json:"phoneNumber"`
	MobileNumber string    `json:"mobileNumber"`
	Email        string    `json:"email"`
	Shops        []Shop    `json:"shops"`
	DeliveryDay  string    `json:"deliveryDateTime"`
	Payments     []Payment `json:"payments"`
	CreatedAt    time.Time `json:"createDateTime"`
}

// FullName joins the name fields for display; either part may be empty.
func (c *Client) FullName() string {
	switch {
	case c.FirstName == "":
		return c.LastName
	case c.LastName == "":
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}
