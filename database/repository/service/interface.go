package serviceRepo

import "citixo/models"

// ServiceRepository defines data access for catalog services.
type ServiceRepository interface {
	Create(s *models.Service) error
	GetByID(id string) (*models.Service, error)
	Update(s *models.Service) error
	Delete(id string) error
	List(activeOnly bool) ([]models.Service, error)
	IncrementBookingCount(id string) error
}
