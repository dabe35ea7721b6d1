package entity

// Listing is a schema-flexible catalog document. Callers supply arbitrary
// fields at creation time and the store echoes them back on reads, so the
// entity is an open key/value payload rather than a fixed struct. The
// store-assigned identifier appears under the "_id" key as a hex string.
type Listing map[string]any

// ID returns the listing's hex identifier, or an empty string if the
// document has none.
func (l Listing) ID() string {
	id, _ := l["_id"].(string)

	return id
}
