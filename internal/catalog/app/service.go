package app

import (
	"errors"

	"github.com/dwikikusuma/kikuchan-store/internal/catalog/domain"
)

var ErrNotFound = errors.New("not found")

type Service struct {
	repo ProductRepo
}

func NewService(repo ProductRepo) *Service {
	return &Service{
		repo: repo,
	}
}

// FindByID reports ok=false on a miss. A miss is a no-op signal for callers.
func (s *Service) FindByID(id int) (domain.Product, bool) {
	return s.repo.Get(id)
}

// GetProduct is FindByID for callers that want an error value.
func (s *Service) GetProduct(id int) (domain.Product, error) {
	p, ok := s.repo.Get(id)
	if !ok {
		return domain.Product{}, ErrNotFound
	}
	return p, nil
}

func (s *Service) ListProducts() []domain.Product {
	return s.repo.List()
}
