package dataset

import (
	"sync"
	"time"

	"github.com/vfg2006/retailbot-api/internal/domain"
)

// Provider entrega o snapshot atual do dataset para os serviços de consulta.
// Snapshot retorna domain.ErrDatasetUnavailable enquanto nenhuma carga
// tiver sido concluída com sucesso.
type Provider interface {
	Snapshot() (*domain.Dataset, error)
}

// Store guarda o snapshot imutável corrente do dataset. A troca de snapshot
// é atômica: consultas em andamento continuam lendo o snapshot com o qual
// começaram.
type Store struct {
	mu       sync.RWMutex
	current  *domain.Dataset
	loadedAt time.Time
}

func NewStore() *Store {
	return &Store{}
}

// Snapshot retorna o snapshot corrente do dataset
func (s *Store) Snapshot() (*domain.Dataset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return nil, domain.ErrDatasetUnavailable
	}

	return s.current, nil
}

// Replace troca o snapshot corrente pelo recém-carregado
func (s *Store) Replace(ds *domain.Dataset) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = ds
	s.loadedAt = time.Now()
}

// LoadedAt informa quando o snapshot corrente foi carregado
func (s *Store) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.loadedAt
}
