package domain

// Address maps the feed's physical `address` element. All fields are optional:
// absent source data marshals as null.
type Address struct {
	StreetAddress *string `json:"street_address"`
	City          *string `json:"city"`
	State         *string `json:"state"`
	PostalCode    *string `json:"postal_code"`
	Country       *string `json:"country"`
}

// Hotel maps one `travelItem` element. Name is HTML-entity-decoded; Rating
// carries the diamond rating code verbatim as text.
type Hotel struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Rating  *string `json:"rating"`
	Address Address `json:"address"`
}
