package api

// swagger:model api.TechResponse
type TechResponse struct {
	ID        string `json:"id" example:"8c7e1b4a-2f3d-4f6e-9a0b-1c2d3e4f5a6b"`
	Title     string `json:"title" example:"Go"`
	Knowledge int    `json:"knowledge" example:"80"`
}

// RegistrationResponse echoes the validated submission; Avatar carries the
// object key the file was uploaded under.
// swagger:model api.RegistrationResponse
type RegistrationResponse struct {
	Avatar   string         `json:"avatar" example:"me.png"`
	Name     string         `json:"name" example:"Ana Maria"`
	Email    string         `json:"email" example:"ana@gmail.com"`
	Password string         `json:"password" example:"Secret123!"`
	Techs    []TechResponse `json:"techs"`
}
