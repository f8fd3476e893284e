package usecase

import (
	"context"
	"errors"

	"github.com/EduardoMSouza/consultorio-api/internal/converter"
	"github.com/EduardoMSouza/consultorio-api/internal/delivery/dto"
	"github.com/EduardoMSouza/consultorio-api/internal/domain/entity"
	"github.com/EduardoMSouza/consultorio-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrPlanoNotFound  = errors.New("plano dental não encontrado")
	ErrPlanoTerminal  = errors.New("plano dental em status terminal não pode ser alterado")
	ErrPlanoTransicao = errors.New("transição de status do plano não permitida")
	ErrValorNegativo  = errors.New("valor do plano não pode ser negativo")
)

type PlanoDentalUsecase interface {
	Create(ctx context.Context, req *dto.PlanoDentalRequest) (*dto.PlanoDentalResponse, error)
	Get(ctx context.Context, id uint) (*dto.PlanoDentalResponse, error)
	List(ctx context.Context, filter *entity.PlanoDentalFilter) ([]dto.PlanoDentalResponse, int64, error)
	Update(ctx context.Context, id uint, req *dto.PlanoDentalRequest) (*dto.PlanoDentalResponse, error)
	Delete(ctx context.Context, id uint) error
	Iniciar(ctx context.Context, id uint) (*dto.PlanoDentalResponse, error)
	Concluir(ctx context.Context, id uint) (*dto.PlanoDentalResponse, error)
	Cancelar(ctx context.Context, id uint) (*dto.PlanoDentalResponse, error)
}

type planoDentalUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	planoRepo    repository.PlanoDentalRepository
	pacienteRepo repository.PacienteRepository
	dentistaRepo repository.DentistaRepository
}

func NewPlanoDentalUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	planoRepo repository.PlanoDentalRepository,
	pacienteRepo repository.PacienteRepository,
	dentistaRepo repository.DentistaRepository,
) PlanoDentalUsecase {
	return &planoDentalUsecase{
		db:           db,
		log:          log,
		planoRepo:    planoRepo,
		pacienteRepo: pacienteRepo,
		dentistaRepo: dentistaRepo,
	}
}

func (u *planoDentalUsecase) Create(ctx context.Context, req *dto.PlanoDentalRequest) (*dto.PlanoDentalResponse, error) {
	if req.Valor.IsNegative() {
		return nil, ErrValorNegativo
	}

	db := u.db.WithContext(ctx)

	paciente, err := u.pacienteRepo.FindByID(db, req.PacienteID)
	if err != nil {
		u.log.Warnf("Failed to find paciente %d: %+v", req.PacienteID, err)
		return nil, err
	}
	if paciente == nil {
		return nil, ErrPacienteNotFound
	}

	dentista, err := u.dentistaRepo.FindByID(db, req.DentistaID)
	if err != nil {
		u.log.Warnf("Failed to find dentista %d: %+v", req.DentistaID, err)
		return nil, err
	}
	if dentista == nil {
		return nil, ErrDentistaNotFound
	}

	plano := &entity.PlanoDental{
		PacienteID:   req.PacienteID,
		DentistaID:   req.DentistaID,
		Dente:        req.Dente,
		Procedimento: req.Procedimento,
		Valor:        req.Valor,
		Observacoes:  req.Observacoes,
		Status:       entity.PlanoPendente,
	}

	if err := u.planoRepo.Create(db, plano); err != nil {
		u.log.Warnf("Failed to create plano dental: %+v", err)
		return nil, err
	}

	return converter.PlanoDentalToResponse(plano), nil
}

func (u *planoDentalUsecase) Get(ctx context.Context, id uint) (*dto.PlanoDentalResponse, error) {
	plano, err := u.planoRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find plano %d: %+v", id, err)
		return nil, err
	}
	if plano == nil {
		return nil, ErrPlanoNotFound
	}
	return converter.PlanoDentalToResponse(plano), nil
}

func (u *planoDentalUsecase) List(ctx context.Context, filter *entity.PlanoDentalFilter) ([]dto.PlanoDentalResponse, int64, error) {
	planos, total, err := u.planoRepo.FindPage(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list planos: %+v", err)
		return nil, 0, err
	}
	return converter.PlanosDentaisToResponses(planos), total, nil
}

func (u *planoDentalUsecase) Update(ctx context.Context, id uint, req *dto.PlanoDentalRequest) (*dto.PlanoDentalResponse, error) {
	if req.Valor.IsNegative() {
		return nil, ErrValorNegativo
	}

	db := u.db.WithContext(ctx)

	plano, err := u.planoRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find plano %d: %+v", id, err)
		return nil, err
	}
	if plano == nil {
		return nil, ErrPlanoNotFound
	}
	if plano.IsTerminal() {
		return nil, ErrPlanoTerminal
	}

	plano.PacienteID = req.PacienteID
	plano.DentistaID = req.DentistaID
	plano.Dente = req.Dente
	plano.Procedimento = req.Procedimento
	plano.Valor = req.Valor
	plano.Observacoes = req.Observacoes

	if err := u.planoRepo.Update(db, plano); err != nil {
		u.log.Warnf("Failed to update plano %d: %+v", id, err)
		return nil, err
	}

	return converter.PlanoDentalToResponse(plano), nil
}

func (u *planoDentalUsecase) Delete(ctx context.Context, id uint) error {
	plano, err := u.planoRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find plano %d: %+v", id, err)
		return err
	}
	if plano == nil {
		return ErrPlanoNotFound
	}
	return u.planoRepo.Delete(u.db.WithContext(ctx), id)
}

func (u *planoDentalUsecase) Iniciar(ctx context.Context, id uint) (*dto.PlanoDentalResponse, error) {
	return u.transition(ctx, id, func(p *entity.PlanoDental) bool { return p.Iniciar() })
}

func (u *planoDentalUsecase) Concluir(ctx context.Context, id uint) (*dto.PlanoDentalResponse, error) {
	return u.transition(ctx, id, func(p *entity.PlanoDental) bool { return p.Concluir() })
}

func (u *planoDentalUsecase) Cancelar(ctx context.Context, id uint) (*dto.PlanoDentalResponse, error) {
	return u.transition(ctx, id, func(p *entity.PlanoDental) bool { return p.Cancelar() })
}

func (u *planoDentalUsecase) transition(ctx context.Context, id uint, apply func(*entity.PlanoDental) bool) (*dto.PlanoDentalResponse, error) {
	db := u.db.WithContext(ctx)

	plano, err := u.planoRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find plano %d: %+v", id, err)
		return nil, err
	}
	if plano == nil {
		return nil, ErrPlanoNotFound
	}

	if !apply(plano) {
		return nil, ErrPlanoTransicao
	}

	if err := u.planoRepo.Update(db, plano); err != nil {
		u.log.Warnf("Failed to update plano %d: %+v", id, err)
		return nil, err
	}

	return converter.PlanoDentalToResponse(plano), nil
}
