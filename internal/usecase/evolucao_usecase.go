package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/EduardoMSouza/consultorio-api/internal/converter"
	"github.com/EduardoMSouza/consultorio-api/internal/delivery/dto"
	"github.com/EduardoMSouza/consultorio-api/internal/domain/entity"
	"github.com/EduardoMSouza/consultorio-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrEvolucaoNotFound = errors.New("evolução não encontrada")

type EvolucaoUsecase interface {
	Create(ctx context.Context, req *dto.EvolucaoRequest, usuario string) (*dto.EvolucaoResponse, error)
	ListByPaciente(ctx context.Context, pacienteID uint) ([]dto.EvolucaoResponse, error)
	Delete(ctx context.Context, id uint) error
}

type evolucaoUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	evolucaoRepo repository.EvolucaoRepository
	pacienteRepo repository.PacienteRepository
	dentistaRepo repository.DentistaRepository
}

func NewEvolucaoUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	evolucaoRepo repository.EvolucaoRepository,
	pacienteRepo repository.PacienteRepository,
	dentistaRepo repository.DentistaRepository,
) EvolucaoUsecase {
	return &evolucaoUsecase{
		db:           db,
		log:          log,
		evolucaoRepo: evolucaoRepo,
		pacienteRepo: pacienteRepo,
		dentistaRepo: dentistaRepo,
	}
}

func (u *evolucaoUsecase) Create(ctx context.Context, req *dto.EvolucaoRequest, usuario string) (*dto.EvolucaoResponse, error) {
	data, err := time.Parse("2006-01-02", req.Data)
	if err != nil {
		return nil, ErrDataInvalida
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

	evolucao := &entity.EvolucaoTratamento{
		PacienteID:    req.PacienteID,
		DentistaID:    req.DentistaID,
		PlanoDentalID: req.PlanoDentalID,
		Data:          data,
		Descricao:     req.Descricao,
		CriadoPor:     usuario,
	}

	if err := u.evolucaoRepo.Create(db, evolucao); err != nil {
		u.log.Warnf("Failed to create evolucao: %+v", err)
		return nil, err
	}

	return converter.EvolucaoToResponse(evolucao), nil
}

func (u *evolucaoUsecase) ListByPaciente(ctx context.Context, pacienteID uint) ([]dto.EvolucaoResponse, error) {
	evolucoes, err := u.evolucaoRepo.FindByPacienteID(u.db.WithContext(ctx), pacienteID)
	if err != nil {
		u.log.Warnf("Failed to list evolucoes for paciente %d: %+v", pacienteID, err)
		return nil, err
	}
	return converter.EvolucoesToResponses(evolucoes), nil
}

func (u *evolucaoUsecase) Delete(ctx context.Context, id uint) error {
	evolucao, err := u.evolucaoRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find evolucao %d: %+v", id, err)
		return err
	}
	if evolucao == nil {
		return ErrEvolucaoNotFound
	}
	return u.evolucaoRepo.Delete(u.db.WithContext(ctx), id)
}
