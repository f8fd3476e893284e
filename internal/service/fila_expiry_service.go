package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/EduardoMSouza/consultorio-api/config"
	"github.com/EduardoMSouza/consultorio-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Timeout for a single sweep run
const sweepTimeout = 30 * time.Second

// FilaExpiryService periodically expires waiting-list entries that stayed
// in AGUARDANDO longer than the configured maximum age. The sweep is a
// single guarded UPDATE, so concurrent manual expiry via the API is safe.
type FilaExpiryService struct {
	db       *gorm.DB
	log      *logrus.Logger
	filaRepo repository.FilaEsperaRepository
	cfg      config.FilaConfig

	// Graceful shutdown
	stopChan chan struct{}
	wg       sync.WaitGroup
	stopped  atomic.Bool
}

// NewFilaExpiryService creates the service and starts the background sweep
// goroutine. Call Stop() during graceful shutdown.
func NewFilaExpiryService(db *gorm.DB, log *logrus.Logger, filaRepo repository.FilaEsperaRepository, cfg config.FilaConfig) *FilaExpiryService {
	svc := &FilaExpiryService{
		db:       db,
		log:      log,
		filaRepo: filaRepo,
		cfg:      cfg,
		stopChan: make(chan struct{}),
	}

	svc.wg.Add(1)
	go svc.sweepLoop()

	return svc
}

// Stop gracefully shuts down the service.
// Safe to call multiple times.
func (s *FilaExpiryService) Stop() {
	if s.stopped.CompareAndSwap(false, true) {
		close(s.stopChan)
		s.wg.Wait()
		s.log.Info("FilaExpiryService stopped")
	}
}

func (s *FilaExpiryService) sweepLoop() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.cfg.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopChan:
			s.log.Debug("Fila expiry goroutine stopping")
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *FilaExpiryService) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	cutoff := time.Now().Add(-s.cfg.MaxIdade)

	expired, err := s.filaRepo.ExpireStale(s.db.WithContext(ctx), cutoff)
	if err != nil {
		s.log.Warnf("Fila expiry sweep failed: %+v", err)
		return
	}

	if expired > 0 {
		s.log.Infof("Fila expiry sweep: %d entries expired (cutoff %s)", expired, cutoff.Format("2006-01-02"))
	}
}
