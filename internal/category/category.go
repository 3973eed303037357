package category

// Item is one selectable category in the catalogue filter.
type Item struct {
	Value string `json:"value"`
	Label string `json:"label"`
}
