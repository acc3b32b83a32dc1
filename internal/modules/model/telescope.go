package model

// TelescopeStatus is the live state document the external status daemon
// maintains for the telescope. This service reads it, never writes it.
type TelescopeStatus struct {
	Name     string  `json:"name"`
	Status   string  `json:"status"`
	Slit     string  `json:"slit"`
	Filter   string  `json:"filter"`
	Focus    float64 `json:"focus"`
	Rain     string  `json:"rain"`
	Cloud    float64 `json:"cloud"`
	Dew      float64 `json:"dew"`
	SunAlt   float64 `json:"sun"`
	MoonAlt  float64 `json:"moon"`
	Exposing bool    `json:"exposing"`
	User     string  `json:"user"`
}
