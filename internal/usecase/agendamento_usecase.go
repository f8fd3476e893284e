package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/EduardoMSouza/consultorio-api/internal/converter"
	"github.com/EduardoMSouza/consultorio-api/internal/delivery/dto"
	"github.com/EduardoMSouza/consultorio-api/internal/domain/entity"
	"github.com/EduardoMSouza/consultorio-api/internal/domain/repository"
	"github.com/EduardoMSouza/consultorio-api/internal/service"
	"github.com/EduardoMSouza/consultorio-api/internal/validation"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAgendamentoNotFound = errors.New("agendamento não encontrado")
	ErrDentistaNotFound    = errors.New("dentista não encontrado")
	ErrPacienteNotFound    = errors.New("paciente não encontrado")
	ErrHorarioIndisponivel = errors.New("dentista já possui agendamento neste horário")
	ErrTransicaoInvalida   = errors.New("transição de status não permitida")
	ErrAgendamentoTerminal = errors.New("agendamento em status terminal não pode ser alterado")
	ErrMotivoObrigatorio   = errors.New("motivo do cancelamento é obrigatório")
	ErrDataInvalida        = errors.New("data inválida, use o formato YYYY-MM-DD")
)

type AgendamentoUsecase interface {
	Create(ctx context.Context, req *dto.AgendamentoRequest, usuario string) (*dto.AgendamentoResponse, error)
	Get(ctx context.Context, id uint) (*dto.AgendamentoResponse, error)
	List(ctx context.Context, filter *entity.AgendamentoFilter) ([]dto.AgendamentoResponse, int64, error)
	Update(ctx context.Context, id uint, req *dto.AgendamentoRequest, usuario string) (*dto.AgendamentoResponse, error)
	Delete(ctx context.Context, id uint, usuario string) error
	Confirmar(ctx context.Context, id uint, usuario string) (*dto.AgendamentoResponse, error)
	IniciarAtendimento(ctx context.Context, id uint, usuario string) (*dto.AgendamentoResponse, error)
	Concluir(ctx context.Context, id uint, usuario string) (*dto.AgendamentoResponse, error)
	Cancelar(ctx context.Context, id uint, motivo, usuario string) (*dto.AgendamentoResponse, error)
	MarcarFalta(ctx context.Context, id uint, usuario string) (*dto.AgendamentoResponse, error)
	VerificarDisponibilidade(ctx context.Context, req *dto.DisponibilidadeRequest) (*dto.DisponibilidadeResponse, error)
}

type agendamentoUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	agendamentoRepo repository.AgendamentoRepository
	dentistaRepo    repository.DentistaRepository
	pacienteRepo    repository.PacienteRepository
	auditService    service.AuditService
}

func NewAgendamentoUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	agendamentoRepo repository.AgendamentoRepository,
	dentistaRepo repository.DentistaRepository,
	pacienteRepo repository.PacienteRepository,
	auditService service.AuditService,
) AgendamentoUsecase {
	return &agendamentoUsecase{
		db:              db,
		log:             log,
		agendamentoRepo: agendamentoRepo,
		dentistaRepo:    dentistaRepo,
		pacienteRepo:    pacienteRepo,
		auditService:    auditService,
	}
}

// Create validates the request, checks dentist/patient existence and time
// conflicts, and persists a new appointment in AGENDADO. Validation failures
// return before any repository access.
func (u *agendamentoUsecase) Create(ctx context.Context, req *dto.AgendamentoRequest, usuario string) (*dto.AgendamentoResponse, error) {
	if errs := validation.ValidateAgendamento(req); errs != nil {
		return nil, errs
	}

	dataConsulta, err := time.Parse("2006-01-02", req.DataConsulta)
	if err != nil {
		return nil, ErrDataInvalida
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.checkReferences(tx, uint(req.DentistaID), uint(req.PacienteID)); err != nil {
		return nil, err
	}

	conflitos, err := u.agendamentoRepo.CountOverlapping(tx, uint(req.DentistaID), dataConsulta, req.HoraInicio, req.HoraFim, 0)
	if err != nil {
		u.log.Warnf("Failed to check availability: %+v", err)
		return nil, err
	}
	if conflitos > 0 {
		return nil, ErrHorarioIndisponivel
	}

	agendamento := &entity.Agendamento{
		DentistaID:       uint(req.DentistaID),
		PacienteID:       uint(req.PacienteID),
		DataConsulta:     dataConsulta,
		HoraInicio:       req.HoraInicio,
		HoraFim:          req.HoraFim,
		TipoProcedimento: req.TipoProcedimento,
		ValorConsulta:    req.ValorConsulta,
		Observacoes:      req.Observacoes,
		Status:           entity.StatusAgendado,
		CriadoPor:        usuario,
		AtualizadoPor:    usuario,
	}

	if err := u.agendamentoRepo.Create(tx, agendamento); err != nil {
		u.log.Warnf("Failed to create agendamento: %+v", err)
		return nil, err
	}

	u.auditService.LogCreate(ctx, tx, usuario, entity.AuditActionAgendamentoCreate,
		"agendamento", fmt.Sprint(agendamento.ID), req)

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit transaction: %+v", err)
		return nil, err
	}

	u.log.Infof("Agendamento created: id=%d, dentista=%d, paciente=%d, data=%s %s-%s",
		agendamento.ID, agendamento.DentistaID, agendamento.PacienteID,
		req.DataConsulta, req.HoraInicio, req.HoraFim)

	return u.reload(ctx, agendamento)
}

func (u *agendamentoUsecase) Get(ctx context.Context, id uint) (*dto.AgendamentoResponse, error) {
	agendamento, err := u.agendamentoRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find agendamento %d: %+v", id, err)
		return nil, err
	}
	if agendamento == nil {
		return nil, ErrAgendamentoNotFound
	}
	return converter.AgendamentoToResponse(agendamento), nil
}

func (u *agendamentoUsecase) List(ctx context.Context, filter *entity.AgendamentoFilter) ([]dto.AgendamentoResponse, int64, error) {
	agendamentos, total, err := u.agendamentoRepo.FindPage(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list agendamentos: %+v", err)
		return nil, 0, err
	}
	return converter.AgendamentosToResponses(agendamentos), total, nil
}

// Update overwrites the full record with the same validation as Create.
// Terminal appointments are immutable.
func (u *agendamentoUsecase) Update(ctx context.Context, id uint, req *dto.AgendamentoRequest, usuario string) (*dto.AgendamentoResponse, error) {
	if errs := validation.ValidateAgendamento(req); errs != nil {
		return nil, errs
	}

	dataConsulta, err := time.Parse("2006-01-02", req.DataConsulta)
	if err != nil {
		return nil, ErrDataInvalida
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	agendamento, err := u.agendamentoRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find agendamento %d: %+v", id, err)
		return nil, err
	}
	if agendamento == nil {
		return nil, ErrAgendamentoNotFound
	}
	if agendamento.IsTerminal() {
		return nil, ErrAgendamentoTerminal
	}

	if err := u.checkReferences(tx, uint(req.DentistaID), uint(req.PacienteID)); err != nil {
		return nil, err
	}

	conflitos, err := u.agendamentoRepo.CountOverlapping(tx, uint(req.DentistaID), dataConsulta, req.HoraInicio, req.HoraFim, id)
	if err != nil {
		u.log.Warnf("Failed to check availability: %+v", err)
		return nil, err
	}
	if conflitos > 0 {
		return nil, ErrHorarioIndisponivel
	}

	old := *agendamento

	agendamento.DentistaID = uint(req.DentistaID)
	agendamento.PacienteID = uint(req.PacienteID)
	agendamento.DataConsulta = dataConsulta
	agendamento.HoraInicio = req.HoraInicio
	agendamento.HoraFim = req.HoraFim
	agendamento.TipoProcedimento = req.TipoProcedimento
	agendamento.ValorConsulta = req.ValorConsulta
	agendamento.Observacoes = req.Observacoes
	agendamento.AtualizadoPor = usuario

	if err := u.agendamentoRepo.Update(tx, agendamento); err != nil {
		u.log.Warnf("Failed to update agendamento %d: %+v", id, err)
		return nil, err
	}

	u.auditService.LogUpdate(ctx, tx, usuario, entity.AuditActionAgendamentoUpdate,
		"agendamento", fmt.Sprint(id), old.Status, req)

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit transaction: %+v", err)
		return nil, err
	}

	return u.reload(ctx, agendamento)
}

// Delete removes the record permanently, any status. The front end treats
// this as a separate destructive operation, not a transition.
func (u *agendamentoUsecase) Delete(ctx context.Context, id uint, usuario string) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	agendamento, err := u.agendamentoRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find agendamento %d: %+v", id, err)
		return err
	}
	if agendamento == nil {
		return ErrAgendamentoNotFound
	}

	if err := u.agendamentoRepo.Delete(tx, id); err != nil {
		u.log.Warnf("Failed to delete agendamento %d: %+v", id, err)
		return err
	}

	u.auditService.LogDelete(ctx, tx, usuario, entity.AuditActionAgendamentoDelete,
		"agendamento", fmt.Sprint(id), string(agendamento.Status))

	return tx.Commit().Error
}

func (u *agendamentoUsecase) Confirmar(ctx context.Context, id uint, usuario string) (*dto.AgendamentoResponse, error) {
	return u.transition(ctx, id, usuario, entity.AuditActionAgendamentoConfirmar,
		func(a *entity.Agendamento) bool {
			return a.Confirmar(usuario, time.Now())
		})
}

func (u *agendamentoUsecase) IniciarAtendimento(ctx context.Context, id uint, usuario string) (*dto.AgendamentoResponse, error) {
	return u.transition(ctx, id, usuario, entity.AuditActionAgendamentoIniciar,
		func(a *entity.Agendamento) bool {
			return a.IniciarAtendimento(usuario)
		})
}

func (u *agendamentoUsecase) Concluir(ctx context.Context, id uint, usuario string) (*dto.AgendamentoResponse, error) {
	return u.transition(ctx, id, usuario, entity.AuditActionAgendamentoConcluir,
		func(a *entity.Agendamento) bool {
			return a.Concluir(usuario)
		})
}

// Cancelar requires a non-blank motivo. The check runs before any repository
// access so an invalid call never opens a transaction.
func (u *agendamentoUsecase) Cancelar(ctx context.Context, id uint, motivo, usuario string) (*dto.AgendamentoResponse, error) {
	if strings.TrimSpace(motivo) == "" {
		return nil, ErrMotivoObrigatorio
	}
	return u.transition(ctx, id, usuario, entity.AuditActionAgendamentoCancelar,
		func(a *entity.Agendamento) bool {
			return a.Cancelar(motivo, usuario, time.Now())
		})
}

func (u *agendamentoUsecase) MarcarFalta(ctx context.Context, id uint, usuario string) (*dto.AgendamentoResponse, error) {
	return u.transition(ctx, id, usuario, entity.AuditActionAgendamentoFalta,
		func(a *entity.Agendamento) bool {
			return a.MarcarFalta(usuario)
		})
}

// VerificarDisponibilidade answers the availability query the front end may
// issue before submitting a form. It never mutates state.
func (u *agendamentoUsecase) VerificarDisponibilidade(ctx context.Context, req *dto.DisponibilidadeRequest) (*dto.DisponibilidadeResponse, error) {
	data, err := time.Parse("2006-01-02", req.Data)
	if err != nil {
		return nil, ErrDataInvalida
	}

	conflitos, err := u.agendamentoRepo.CountOverlapping(u.db.WithContext(ctx),
		uint(req.DentistaID), data, req.HoraInicio, req.HoraFim, req.IgnorarAgendamento)
	if err != nil {
		u.log.Warnf("Failed to check availability: %+v", err)
		return nil, err
	}

	return &dto.DisponibilidadeResponse{Disponivel: conflitos == 0}, nil
}

// transition loads the appointment, applies a guarded entity mutation and
// persists the result with an audit entry, all in one transaction.
func (u *agendamentoUsecase) transition(ctx context.Context, id uint, usuario, action string, apply func(*entity.Agendamento) bool) (*dto.AgendamentoResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	agendamento, err := u.agendamentoRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find agendamento %d: %+v", id, err)
		return nil, err
	}
	if agendamento == nil {
		return nil, ErrAgendamentoNotFound
	}

	oldStatus := agendamento.Status
	if !apply(agendamento) {
		return nil, ErrTransicaoInvalida
	}

	if err := u.agendamentoRepo.Update(tx, agendamento); err != nil {
		u.log.Warnf("Failed to update agendamento %d: %+v", id, err)
		return nil, err
	}

	u.auditService.LogUpdate(ctx, tx, usuario, action,
		"agendamento", fmt.Sprint(id), string(oldStatus), string(agendamento.Status))

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit transaction: %+v", err)
		return nil, err
	}

	u.log.Infof("Agendamento %d: %s -> %s (usuario=%s)", id, oldStatus, agendamento.Status, usuario)
	return converter.AgendamentoToResponse(agendamento), nil
}

func (u *agendamentoUsecase) checkReferences(tx *gorm.DB, dentistaID, pacienteID uint) error {
	dentista, err := u.dentistaRepo.FindByID(tx, dentistaID)
	if err != nil {
		u.log.Warnf("Failed to find dentista %d: %+v", dentistaID, err)
		return err
	}
	if dentista == nil {
		return ErrDentistaNotFound
	}

	paciente, err := u.pacienteRepo.FindByID(tx, pacienteID)
	if err != nil {
		u.log.Warnf("Failed to find paciente %d: %+v", pacienteID, err)
		return err
	}
	if paciente == nil {
		return ErrPacienteNotFound
	}

	return nil
}

func (u *agendamentoUsecase) reload(ctx context.Context, agendamento *entity.Agendamento) (*dto.AgendamentoResponse, error) {
	full, err := u.agendamentoRepo.FindByID(u.db.WithContext(ctx), agendamento.ID)
	if err != nil || full == nil {
		u.log.Warnf("Failed to reload agendamento %d: %+v", agendamento.ID, err)
		return converter.AgendamentoToResponse(agendamento), nil
	}
	return converter.AgendamentoToResponse(full), nil
}
