package partner

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=partner
type Repository interface {
	CreatePartner(ctx context.Context, p *Partner) error
	GetPartner(ctx context.Context, id uuid.UUID) (*Partner, error)
	ListPartners(ctx context.Context, filter ListFilter) ([]*Partner, error)
	UpdatePartner(ctx context.Context, p *Partner) error
	DeletePartner(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Nome         string
	CpfCnpj      string
	Telefone     string
	Email        string
	Tipo         Tipo
	Participacao int
}

type ListFilter struct {
	Tipo *Tipo
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Partner, error) {
	p := &Partner{
		Nome:         params.Nome,
		CpfCnpj:      params.CpfCnpj,
		Telefone:     params.Telefone,
		Email:        params.Email,
		Tipo:         params.Tipo,
		Participacao: params.Participacao,
	}
	if err := s.repo.CreatePartner(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Partner, error) {
	return s.repo.GetPartner(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Partner, error) {
	return s.repo.ListPartners(ctx, filter)
}

func (s *Service) Update(ctx context.Context, p *Partner) error {
	return s.repo.UpdatePartner(ctx, p)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeletePartner(ctx, id)
}
