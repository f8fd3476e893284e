package usecase

import (
	"context"
	"errors"
	"fmt"
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
	ErrFilaNotFound    = errors.New("entrada da fila de espera não encontrada")
	ErrFilaTerminal    = errors.New("entrada da fila em status terminal não pode ser alterada")
	ErrFilaTransicao   = errors.New("transição de status da fila não permitida")
	ErrDataLimiteVazia = errors.New("data limite é obrigatória")
)

type FilaEsperaUsecase interface {
	Create(ctx context.Context, req *dto.FilaEsperaRequest, usuario string) (*dto.FilaEsperaResponse, error)
	Get(ctx context.Context, id uint) (*dto.FilaEsperaResponse, error)
	List(ctx context.Context, filter *entity.FilaEsperaFilter) ([]dto.FilaEsperaResponse, int64, error)
	Update(ctx context.Context, id uint, req *dto.FilaEsperaRequest, usuario string) (*dto.FilaEsperaResponse, error)
	Delete(ctx context.Context, id uint) error
	Notificar(ctx context.Context, id uint, usuario string) (*dto.FilaEsperaResponse, error)
	ConfirmarInteresse(ctx context.Context, id uint, usuario string) (*dto.FilaEsperaResponse, error)
	Converter(ctx context.Context, id uint, agendamentoID uint, usuario string) (*dto.FilaEsperaResponse, error)
	Cancelar(ctx context.Context, id uint, usuario string) (*dto.FilaEsperaResponse, error)
	Expirar(ctx context.Context, dataLimite string, usuario string) (*dto.ExpirarResponse, error)
}

type filaEsperaUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	filaRepo        repository.FilaEsperaRepository
	pacienteRepo    repository.PacienteRepository
	dentistaRepo    repository.DentistaRepository
	agendamentoRepo repository.AgendamentoRepository
	auditService    service.AuditService
}

func NewFilaEsperaUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	filaRepo repository.FilaEsperaRepository,
	pacienteRepo repository.PacienteRepository,
	dentistaRepo repository.DentistaRepository,
	agendamentoRepo repository.AgendamentoRepository,
	auditService service.AuditService,
) FilaEsperaUsecase {
	return &filaEsperaUsecase{
		db:              db,
		log:             log,
		filaRepo:        filaRepo,
		pacienteRepo:    pacienteRepo,
		dentistaRepo:    dentistaRepo,
		agendamentoRepo: agendamentoRepo,
		auditService:    auditService,
	}
}

// Create validates and persists a new waiting-list entry in AGUARDANDO.
// Validation failures return before any repository access.
func (u *filaEsperaUsecase) Create(ctx context.Context, req *dto.FilaEsperaRequest, usuario string) (*dto.FilaEsperaResponse, error) {
	if errs := validation.ValidateFilaEspera(req); errs != nil {
		return nil, errs
	}

	entrada, err := u.buildEntrada(req)
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	paciente, err := u.pacienteRepo.FindByID(tx, entrada.PacienteID)
	if err != nil {
		u.log.Warnf("Failed to find paciente %d: %+v", entrada.PacienteID, err)
		return nil, err
	}
	if paciente == nil {
		return nil, ErrPacienteNotFound
	}

	if entrada.DentistaID != nil {
		dentista, err := u.dentistaRepo.FindByID(tx, *entrada.DentistaID)
		if err != nil {
			u.log.Warnf("Failed to find dentista %d: %+v", *entrada.DentistaID, err)
			return nil, err
		}
		if dentista == nil {
			return nil, ErrDentistaNotFound
		}
	}

	if err := u.filaRepo.Create(tx, entrada); err != nil {
		u.log.Warnf("Failed to create fila entry: %+v", err)
		return nil, err
	}

	u.auditService.LogCreate(ctx, tx, usuario, entity.AuditActionFilaCreate,
		"fila_espera", fmt.Sprint(entrada.ID), req)

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit transaction: %+v", err)
		return nil, err
	}

	u.log.Infof("Fila entry created: id=%d, paciente=%d, prioridade=%d",
		entrada.ID, entrada.PacienteID, entrada.Prioridade)

	return u.reload(ctx, entrada.ID)
}

func (u *filaEsperaUsecase) Get(ctx context.Context, id uint) (*dto.FilaEsperaResponse, error) {
	return u.reload(ctx, id)
}

func (u *filaEsperaUsecase) List(ctx context.Context, filter *entity.FilaEsperaFilter) ([]dto.FilaEsperaResponse, int64, error) {
	db := u.db.WithContext(ctx)

	entradas, total, err := u.filaRepo.FindPage(db, filter)
	if err != nil {
		u.log.Warnf("Failed to list fila entries: %+v", err)
		return nil, 0, err
	}

	for i := range entradas {
		if entradas[i].IsTerminal() {
			continue
		}
		posicao, err := u.filaRepo.PosicaoNaFila(db, &entradas[i])
		if err != nil {
			u.log.Warnf("Failed to compute queue position for entry %d: %+v", entradas[i].ID, err)
			continue
		}
		entradas[i].PosicaoFila = posicao
	}

	return converter.FilaEsperaToResponses(entradas, time.Now()), total, nil
}

// Update overwrites the entry's request fields while it is non-terminal.
// Status, contact counters and conversion link are untouched.
func (u *filaEsperaUsecase) Update(ctx context.Context, id uint, req *dto.FilaEsperaRequest, usuario string) (*dto.FilaEsperaResponse, error) {
	if errs := validation.ValidateFilaEspera(req); errs != nil {
		return nil, errs
	}

	novo, err := u.buildEntrada(req)
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	entrada, err := u.filaRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find fila entry %d: %+v", id, err)
		return nil, err
	}
	if entrada == nil {
		return nil, ErrFilaNotFound
	}
	if entrada.IsTerminal() {
		return nil, ErrFilaTerminal
	}

	entrada.PacienteID = novo.PacienteID
	entrada.DentistaID = novo.DentistaID
	entrada.TipoProcedimento = novo.TipoProcedimento
	entrada.PeriodoPreferencial = novo.PeriodoPreferencial
	entrada.DataPreferencial = novo.DataPreferencial
	entrada.Prioridade = novo.Prioridade
	entrada.AceitaQualquerHorario = novo.AceitaQualquerHorario
	entrada.AceitaQualquerDentista = novo.AceitaQualquerDentista
	entrada.Observacoes = novo.Observacoes

	if err := u.filaRepo.Update(tx, entrada); err != nil {
		u.log.Warnf("Failed to update fila entry %d: %+v", id, err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit transaction: %+v", err)
		return nil, err
	}

	return u.reload(ctx, id)
}

func (u *filaEsperaUsecase) Delete(ctx context.Context, id uint) error {
	entrada, err := u.filaRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find fila entry %d: %+v", id, err)
		return err
	}
	if entrada == nil {
		return ErrFilaNotFound
	}
	return u.filaRepo.Delete(u.db.WithContext(ctx), id)
}

func (u *filaEsperaUsecase) Notificar(ctx context.Context, id uint, usuario string) (*dto.FilaEsperaResponse, error) {
	return u.transition(ctx, id, usuario, entity.AuditActionFilaNotificar,
		func(f *entity.FilaEspera) bool {
			return f.Notificar(time.Now())
		})
}

func (u *filaEsperaUsecase) ConfirmarInteresse(ctx context.Context, id uint, usuario string) (*dto.FilaEsperaResponse, error) {
	return u.transition(ctx, id, usuario, entity.AuditActionFilaConfirmar,
		func(f *entity.FilaEspera) bool {
			return f.ConfirmarInteresse()
		})
}

// Converter links the entry to an appointment the caller created beforehand
// and moves it to CONVERTIDO. The appointment must exist: rejecting unknown
// ids closes the dangling-entry gap the old two-call client flow had when the
// second call failed.
func (u *filaEsperaUsecase) Converter(ctx context.Context, id uint, agendamentoID uint, usuario string) (*dto.FilaEsperaResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	agendamento, err := u.agendamentoRepo.FindByID(tx, agendamentoID)
	if err != nil {
		u.log.Warnf("Failed to find agendamento %d: %+v", agendamentoID, err)
		return nil, err
	}
	if agendamento == nil {
		return nil, ErrAgendamentoNotFound
	}

	entrada, err := u.filaRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find fila entry %d: %+v", id, err)
		return nil, err
	}
	if entrada == nil {
		return nil, ErrFilaNotFound
	}

	oldStatus := entrada.Status
	if !entrada.Converter(agendamentoID) {
		return nil, ErrFilaTransicao
	}

	if err := u.filaRepo.Update(tx, entrada); err != nil {
		u.log.Warnf("Failed to update fila entry %d: %+v", id, err)
		return nil, err
	}

	u.auditService.LogUpdate(ctx, tx, usuario, entity.AuditActionFilaConverter,
		"fila_espera", fmt.Sprint(id), string(oldStatus), fmt.Sprintf("CONVERTIDO:agendamento=%d", agendamentoID))

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit transaction: %+v", err)
		return nil, err
	}

	u.log.Infof("Fila entry %d converted to agendamento %d", id, agendamentoID)
	return u.reload(ctx, id)
}

func (u *filaEsperaUsecase) Cancelar(ctx context.Context, id uint, usuario string) (*dto.FilaEsperaResponse, error) {
	return u.transition(ctx, id, usuario, entity.AuditActionFilaCancelar,
		func(f *entity.FilaEspera) bool {
			return f.Cancelar()
		})
}

// Expirar runs the administrative bulk sweep: AGUARDANDO entries created
// before the cutoff become EXPIRADO.
func (u *filaEsperaUsecase) Expirar(ctx context.Context, dataLimite string, usuario string) (*dto.ExpirarResponse, error) {
	if dataLimite == "" {
		return nil, ErrDataLimiteVazia
	}
	cutoff, err := time.Parse("2006-01-02", dataLimite)
	if err != nil {
		return nil, ErrDataInvalida
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	expirados, err := u.filaRepo.ExpireStale(tx, cutoff)
	if err != nil {
		u.log.Warnf("Failed to expire fila entries: %+v", err)
		return nil, err
	}

	u.auditService.LogUpdate(ctx, tx, usuario, entity.AuditActionFilaExpirar,
		"fila_espera", "bulk", nil, fmt.Sprintf("expirados=%d,dataLimite=%s", expirados, dataLimite))

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit transaction: %+v", err)
		return nil, err
	}

	u.log.Infof("Fila sweep expired %d entries older than %s", expirados, dataLimite)
	return &dto.ExpirarResponse{Expirados: expirados}, nil
}

func (u *filaEsperaUsecase) transition(ctx context.Context, id uint, usuario, action string, apply func(*entity.FilaEspera) bool) (*dto.FilaEsperaResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	entrada, err := u.filaRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find fila entry %d: %+v", id, err)
		return nil, err
	}
	if entrada == nil {
		return nil, ErrFilaNotFound
	}

	oldStatus := entrada.Status
	if !apply(entrada) {
		return nil, ErrFilaTransicao
	}

	if err := u.filaRepo.Update(tx, entrada); err != nil {
		u.log.Warnf("Failed to update fila entry %d: %+v", id, err)
		return nil, err
	}

	u.auditService.LogUpdate(ctx, tx, usuario, action,
		"fila_espera", fmt.Sprint(id), string(oldStatus), string(entrada.Status))

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit transaction: %+v", err)
		return nil, err
	}

	return u.reload(ctx, id)
}

func (u *filaEsperaUsecase) buildEntrada(req *dto.FilaEsperaRequest) (*entity.FilaEspera, error) {
	entrada := &entity.FilaEspera{
		PacienteID:             uint(req.PacienteID),
		TipoProcedimento:       req.TipoProcedimento,
		PeriodoPreferencial:    entity.PeriodoQualquer,
		AceitaQualquerHorario:  req.AceitaQualquerHorario,
		AceitaQualquerDentista: req.AceitaQualquerDentista,
		Observacoes:            req.Observacoes,
		Status:                 entity.FilaAguardando,
	}

	if req.DentistaID != nil && *req.DentistaID > 0 {
		dentistaID := uint(*req.DentistaID)
		entrada.DentistaID = &dentistaID
	}
	if req.PeriodoPreferencial != "" {
		entrada.PeriodoPreferencial = entity.PeriodoPreferencial(req.PeriodoPreferencial)
	}
	if req.Prioridade != nil {
		entrada.Prioridade = *req.Prioridade
	}
	if req.DataPreferencial != "" {
		data, err := time.Parse("2006-01-02", req.DataPreferencial)
		if err != nil {
			return nil, ErrDataInvalida
		}
		entrada.DataPreferencial = &data
	}

	return entrada, nil
}

func (u *filaEsperaUsecase) reload(ctx context.Context, id uint) (*dto.FilaEsperaResponse, error) {
	db := u.db.WithContext(ctx)

	entrada, err := u.filaRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to reload fila entry %d: %+v", id, err)
		return nil, err
	}
	if entrada == nil {
		return nil, ErrFilaNotFound
	}

	if !entrada.IsTerminal() {
		posicao, err := u.filaRepo.PosicaoNaFila(db, entrada)
		if err == nil {
			entrada.PosicaoFila = posicao
		}
	}

	return converter.FilaEsperaToResponse(entrada, time.Now()), nil
}
