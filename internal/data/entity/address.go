package entity

type Address struct {
	Base
	Line1      string  `db:"line1"`
	Line2      *string `db:"line2"`
	City       string  `db:"city"`
	State      *string `db:"state"`
	Country    string  `db:"country"`
	PostalCode *string `db:"postal_code"`
}
