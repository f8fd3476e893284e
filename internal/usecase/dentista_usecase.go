package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/EduardoMSouza/consultorio-api/internal/converter"
	"github.com/EduardoMSouza/consultorio-api/internal/delivery/dto"
	"github.com/EduardoMSouza/consultorio-api/internal/domain/entity"
	"github.com/EduardoMSouza/consultorio-api/internal/domain/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrCROAlreadyExists   = errors.New("CRO já cadastrado")
	ErrEmailAlreadyExists = errors.New("e-mail já cadastrado")
)

type DentistaUsecase interface {
	Create(ctx context.Context, req *dto.DentistaRequest) (*dto.DentistaResponse, error)
	Get(ctx context.Context, id uint) (*dto.DentistaResponse, error)
	List(ctx context.Context, filter *entity.RegistroFilter) ([]dto.DentistaResponse, int64, error)
	Update(ctx context.Context, id uint, req *dto.UpdateDentistaRequest) (*dto.DentistaResponse, error)
	Delete(ctx context.Context, id uint) error
}

type dentistaUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	dentistaRepo repository.DentistaRepository
}

func NewDentistaUsecase(db *gorm.DB, log *logrus.Logger, dentistaRepo repository.DentistaRepository) DentistaUsecase {
	return &dentistaUsecase{
		db:           db,
		log:          log,
		dentistaRepo: dentistaRepo,
	}
}

func (u *dentistaUsecase) Create(ctx context.Context, req *dto.DentistaRequest) (*dto.DentistaResponse, error) {
	dentista := &entity.Dentista{
		Nome:          req.Nome,
		CRO:           req.CRO,
		Especialidade: req.Especialidade,
		Telefone:      req.Telefone,
		Email:         req.Email,
	}

	if err := u.dentistaRepo.Create(u.db.WithContext(ctx), dentista); err != nil {
		if isDuplicateKeyError(err, "cro") {
			return nil, ErrCROAlreadyExists
		}
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create dentista: %+v", err)
		return nil, err
	}

	return converter.DentistaToResponse(dentista), nil
}

func (u *dentistaUsecase) Get(ctx context.Context, id uint) (*dto.DentistaResponse, error) {
	dentista, err := u.dentistaRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find dentista %d: %+v", id, err)
		return nil, err
	}
	if dentista == nil {
		return nil, ErrDentistaNotFound
	}
	return converter.DentistaToResponse(dentista), nil
}

func (u *dentistaUsecase) List(ctx context.Context, filter *entity.RegistroFilter) ([]dto.DentistaResponse, int64, error) {
	dentistas, total, err := u.dentistaRepo.FindPage(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list dentistas: %+v", err)
		return nil, 0, err
	}
	return converter.DentistasToResponses(dentistas), total, nil
}

func (u *dentistaUsecase) Update(ctx context.Context, id uint, req *dto.UpdateDentistaRequest) (*dto.DentistaResponse, error) {
	dentista, err := u.dentistaRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find dentista %d: %+v", id, err)
		return nil, err
	}
	if dentista == nil {
		return nil, ErrDentistaNotFound
	}

	if req.Nome != "" {
		dentista.Nome = req.Nome
	}
	if req.CRO != "" {
		dentista.CRO = req.CRO
	}
	if req.Especialidade != "" {
		dentista.Especialidade = req.Especialidade
	}
	if req.Telefone != "" {
		dentista.Telefone = req.Telefone
	}
	if req.Email != "" {
		dentista.Email = req.Email
	}
	if req.Ativo != nil {
		dentista.Ativo = req.Ativo
	}

	if err := u.dentistaRepo.Update(u.db.WithContext(ctx), dentista); err != nil {
		if isDuplicateKeyError(err, "cro") {
			return nil, ErrCROAlreadyExists
		}
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to update dentista %d: %+v", id, err)
		return nil, err
	}

	return converter.DentistaToResponse(dentista), nil
}

func (u *dentistaUsecase) Delete(ctx context.Context, id uint) error {
	dentista, err := u.dentistaRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find dentista %d: %+v", id, err)
		return err
	}
	if dentista == nil {
		return ErrDentistaNotFound
	}
	return u.dentistaRepo.Delete(u.db.WithContext(ctx), id)
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique constraint
// violation containing the specified constraint name
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
