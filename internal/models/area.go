package models

// Area is a named delivery zone used for grouping customers on supply sheets.
type Area struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
