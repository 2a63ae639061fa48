package dto

// DateLayout is the wire format for order dates.
const DateLayout = "2006-01-02"

type OrderRequestDTO struct {
	InstallationNumber string   `json:"installation_number" validate:"required,max=50" example:"INST-0042"`
	Date               string   `json:"date" validate:"required" example:"2025-03-14"`
	Type               string   `json:"type" validate:"required" example:"ResidentialInstall"`
	Subtypes           []string `json:"subtypes" example:"Interior -80m,TV"`
}

type OrderResponseDTO struct {
	ID                 int      `json:"id" example:"7"`
	UserID             int      `json:"user_id" example:"3"`
	InstallationNumber string   `json:"installation_number" example:"INST-0042"`
	Date               string   `json:"date" example:"2025-03-14"`
	Type               string   `json:"type" example:"ResidentialInstall"`
	Subtypes           []string `json:"subtypes"`
	Points             float64  `json:"points" example:"4.23"`
}

// SubtypeRateDTO is one selectable subtype with its point value, used by the
// order form.
type SubtypeRateDTO struct {
	Name   string  `json:"name" example:"Interior -80m"`
	Points float64 `json:"points" example:"3.8"`
}

type JobTypeFormDTO struct {
	Type     string           `json:"type" example:"Repair"`
	Subtypes []SubtypeRateDTO `json:"subtypes"`
}
