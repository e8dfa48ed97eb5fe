package vehicle

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=vehicle
type Repository interface {
	CreateVehicle(ctx context.Context, v *Vehicle) error
	GetVehicle(ctx context.Context, id uuid.UUID) (*Vehicle, error)
	ListVehicles(ctx context.Context, filter ListFilter) ([]*Vehicle, error)
	UpdateVehicle(ctx context.Context, v *Vehicle) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error
	DeleteVehicle(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Placa      string
	Marca      string
	Modelo     string
	Ano        int
	Cor        string
	Km         int
	Custo      int64
	PrecoVenda int64
}

type ListFilter struct {
	Status *Status
	Busca  string
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Vehicle, error) {
	v := &Vehicle{
		Placa:      params.Placa,
		Marca:      params.Marca,
		Modelo:     params.Modelo,
		Ano:        params.Ano,
		Cor:        params.Cor,
		Km:         params.Km,
		Custo:      params.Custo,
		PrecoVenda: params.PrecoVenda,
		Status:     StatusEmEstoque,
	}
	if err := s.repo.CreateVehicle(ctx, v); err != nil {
		return nil, err
	}

	return v, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Vehicle, error) {
	return s.repo.GetVehicle(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Vehicle, error) {
	return s.repo.ListVehicles(ctx, filter)
}

// ListAvailable returns the storefront view: vehicles still in stock.
func (s *Service) ListAvailable(ctx context.Context) ([]*Vehicle, error) {
	status := StatusEmEstoque

	return s.repo.ListVehicles(ctx, ListFilter{Status: &status})
}

func (s *Service) Update(ctx context.Context, v *Vehicle) error {
	return s.repo.UpdateVehicle(ctx, v)
}

func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error {
	return s.repo.UpdateStatus(ctx, id, status)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteVehicle(ctx, id)
}
