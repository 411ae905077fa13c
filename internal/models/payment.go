package models

// Payment is a catalog entry for a payment type. The catalog is seeded
// in migrations and only referenced from clients, never created here.
type Payment struct {
	ID    int64  `json:"id,string"`
	Value string `json:"value"`
}
