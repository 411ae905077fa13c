package models

import "time"

// Address is a free-text address with a map pin.
type Address struct {
	Name string  `json:"name"`
	City string  `json:"city"`
	Lat  float64 `json:"lat"`
	Long float64 `json:"long"`
}

// Shop is owned by the client it was created with.
type Shop struct {
	ID        int64     `json:"id,string"`
	ShopName  string    `json:"shopName"`
	Address   Address   `json:"address"`
	CreatedAt time.Time `json:"createDateTime"`
}
