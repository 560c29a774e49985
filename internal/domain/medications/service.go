package medications

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

func (s *Service) Create(ctx context.Context, name string) (Medication, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Medication{}, ErrInvalidInput
	}

	m := Medication{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: s.now(),
	}

	if err := s.repo.Create(ctx, m); err != nil {
		return Medication{}, err
	}
	return m, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Medication, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Medication{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

// List busca en el catálogo. query vacío lista todo (hasta limit).
func (s *Service) List(ctx context.Context, query string, limit int) ([]Medication, error) {
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}
	return s.repo.List(ctx, strings.TrimSpace(query), limit)
}
