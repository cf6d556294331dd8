package model

import "fmt"

// ReadyMadeWine is a finished bottle sold straight from the catalog.
type ReadyMadeWine struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       int      `json:"price"`
	Alcohol     string   `json:"alcohol"` // ABV label, e.g. "12%"
	Rating      float64  `json:"rating"`
	Image       string   `json:"image"`
	Badge       string   `json:"badge,omitempty"`
	Ingredients []string `json:"ingredients"`
}

// ProductRef is the identity shared by cart lines and favorites that point
// at this wine.
func (w ReadyMadeWine) ProductRef() string {
	return fmt.Sprintf("ready-made-%d", w.ID)
}
