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

var ErrCPFAlreadyExists = errors.New("CPF já cadastrado")

type PacienteUsecase interface {
	Create(ctx context.Context, req *dto.PacienteRequest) (*dto.PacienteResponse, error)
	Get(ctx context.Context, id uint) (*dto.PacienteResponse, error)
	List(ctx context.Context, filter *entity.RegistroFilter) ([]dto.PacienteResponse, int64, error)
	Update(ctx context.Context, id uint, req *dto.UpdatePacienteRequest) (*dto.PacienteResponse, error)
	Delete(ctx context.Context, id uint) error
}

type pacienteUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	pacienteRepo repository.PacienteRepository
}

func NewPacienteUsecase(db *gorm.DB, log *logrus.Logger, pacienteRepo repository.PacienteRepository) PacienteUsecase {
	return &pacienteUsecase{
		db:           db,
		log:          log,
		pacienteRepo: pacienteRepo,
	}
}

func (u *pacienteUsecase) Create(ctx context.Context, req *dto.PacienteRequest) (*dto.PacienteResponse, error) {
	paciente := &entity.Paciente{
		Nome:        req.Nome,
		CPF:         req.CPF,
		Telefone:    req.Telefone,
		Email:       req.Email,
		Endereco:    req.Endereco,
		Convenio:    req.Convenio,
		Observacoes: req.Observacoes,
	}

	if req.DataNascimento != "" {
		nascimento, err := time.Parse("2006-01-02", req.DataNascimento)
		if err != nil {
			return nil, ErrDataInvalida
		}
		paciente.DataNascimento = &nascimento
	}

	if err := u.pacienteRepo.Create(u.db.WithContext(ctx), paciente); err != nil {
		if isDuplicateKeyError(err, "cpf") {
			return nil, ErrCPFAlreadyExists
		}
		u.log.Warnf("Failed to create paciente: %+v", err)
		return nil, err
	}

	return converter.PacienteToResponse(paciente), nil
}

func (u *pacienteUsecase) Get(ctx context.Context, id uint) (*dto.PacienteResponse, error) {
	paciente, err := u.pacienteRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find paciente %d: %+v", id, err)
		return nil, err
	}
	if paciente == nil {
		return nil, ErrPacienteNotFound
	}
	return converter.PacienteToResponse(paciente), nil
}

func (u *pacienteUsecase) List(ctx context.Context, filter *entity.RegistroFilter) ([]dto.PacienteResponse, int64, error) {
	pacientes, total, err := u.pacienteRepo.FindPage(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list pacientes: %+v", err)
		return nil, 0, err
	}
	return converter.PacientesToResponses(pacientes), total, nil
}

func (u *pacienteUsecase) Update(ctx context.Context, id uint, req *dto.UpdatePacienteRequest) (*dto.PacienteResponse, error) {
	paciente, err := u.pacienteRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find paciente %d: %+v", id, err)
		return nil, err
	}
	if paciente == nil {
		return nil, ErrPacienteNotFound
	}

	if req.Nome != "" {
		paciente.Nome = req.Nome
	}
	if req.CPF != "" {
		paciente.CPF = req.CPF
	}
	if req.DataNascimento != "" {
		nascimento, err := time.Parse("2006-01-02", req.DataNascimento)
		if err != nil {
			return nil, ErrDataInvalida
		}
		paciente.DataNascimento = &nascimento
	}
	if req.Telefone != "" {
		paciente.Telefone = req.Telefone
	}
	if req.Email != "" {
		paciente.Email = req.Email
	}
	if req.Endereco != "" {
		paciente.Endereco = req.Endereco
	}
	if req.Convenio != "" {
		paciente.Convenio = req.Convenio
	}
	if req.Observacoes != "" {
		paciente.Observacoes = req.Observacoes
	}
	if req.Ativo != nil {
		paciente.Ativo = req.Ativo
	}

	if err := u.pacienteRepo.Update(u.db.WithContext(ctx), paciente); err != nil {
		if isDuplicateKeyError(err, "cpf") {
			return nil, ErrCPFAlreadyExists
		}
		u.log.Warnf("Failed to update paciente %d: %+v", id, err)
		return nil, err
	}

	return converter.PacienteToResponse(paciente), nil
}

func (u *pacienteUsecase) Delete(ctx context.Context, id uint) error {
	paciente, err := u.pacienteRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find paciente %d: %+v", id, err)
		return err
	}
	if paciente == nil {
		return ErrPacienteNotFound
	}
	return u.pacienteRepo.Delete(u.db.WithContext(ctx), id)
}
