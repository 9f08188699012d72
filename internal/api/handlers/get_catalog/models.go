package get_catalog

import "github.com/m04kA/SMC-BikeService/internal/catalog"

// ServiceResponse услуга в ответе
type ServiceResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ShowroomResponse мастерская в ответе
type ShowroomResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Contact string `json:"contact"`
}

// MechanicResponse механик в ответе
type MechanicResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Specialization string `json:"specialization"`
}

// CatalogResponse HTTP response model
type CatalogResponse struct {
	Success   bool                          `json:"success"`
	Services  []ServiceResponse             `json:"services"`
	Showrooms []ShowroomResponse            `json:"showrooms"`
	Mechanics map[string][]MechanicResponse `json:"mechanics"`
	TimeSlots []string                      `json:"timeSlots"`
}

// FromCatalog конвертирует каталог в HTTP response
// Непустой showroomID оставляет только эту мастерскую и ее механиков.
func FromCatalog(c *catalog.Catalog, showroomID string) (*CatalogResponse, bool) {
	resp := &CatalogResponse{
		Success:   true,
		Services:  make([]ServiceResponse, 0, len(c.Services)),
		Showrooms: make([]ShowroomResponse, 0, len(c.Showrooms)),
		Mechanics: make(map[string][]MechanicResponse, len(c.Mechanics)),
		TimeSlots: c.Slots(),
	}

	for _, s := range c.Services {
		resp.Services = append(resp.Services, ServiceResponse{ID: s.ID, Name: s.Name, Description: s.Description})
	}

	found := showroomID == ""
	for _, sr := range c.Showrooms {
		if showroomID != "" && sr.ID != showroomID {
			continue
		}
		found = true
		resp.Showrooms = append(resp.Showrooms, ShowroomResponse{ID: sr.ID, Name: sr.Name, Address: sr.Address, Contact: sr.Contact})

		mechanics := make([]MechanicResponse, 0, len(c.Mechanics[sr.ID]))
		for _, m := range c.Mechanics[sr.ID] {
			mechanics = append(mechanics, MechanicResponse{ID: m.ID, Name: m.Name, Specialization: m.Specialization})
		}
		resp.Mechanics[sr.ID] = mechanics
	}

	return resp, found
}
