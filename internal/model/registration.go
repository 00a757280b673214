package model

import "mime/multipart"

// TechEntry is one validated technology skill row.
type TechEntry struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Knowledge int    `json:"knowledge"`
}

// Registration is the canonical output of a successful validation run.
// Every field satisfied the schema at the moment it was produced.
type Registration struct {
	Avatar   *multipart.FileHeader `json:"-"`
	Name     string                `json:"name"`
	Email    string                `json:"email"`
	Password string                `json:"password"`
	Techs    []TechEntry           `json:"techs"`
}
