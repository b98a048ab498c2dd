// Package storage is the persistence gateway: it owns the two ledgers, the
// flat CSV files behind them, and the lock serializing mutations.
package storage

import (
	"fmt"
	"os"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/NDAYIZEYE-Vincent/Gestion-de-Stock-et-Ventes/internal/ledger"
)

// FlushError wraps a CSV write failure. The in-memory mutation that
// triggered the flush is NOT rolled back: callers surface the warning and
// carry on with memory ahead of disk.
type FlushError struct {
	Err error
}

func (e *FlushError) Error() string {
	return fmt.Sprintf("échec de la sauvegarde: %v", e.Err)
}

func (e *FlushError) Unwrap() error { return e.Err }

// Store holds both ledgers and flushes them to disk after every mutation.
type Store struct {
	mu     sync.RWMutex
	stock  *ledger.StockLedger
	ventes *ledger.SalesLedger

	stockPath  string
	ventesPath string
}

// Open creates the data directory if needed and loads both tables. A missing
// file yields an empty ledger; an unreadable directory is the one fatal
// startup condition.
func Open(dataDir, stockPath, ventesPath string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("création du répertoire de données %s: %w", dataDir, err)
	}

	ventes, err := loadVentes(ventesPath)
	if err != nil {
		return nil, err
	}
	stock, err := loadStock(stockPath, ventes)
	if err != nil {
		return nil, err
	}

	log.Info().
		Int("stock_rows", stock.Len()).
		Int("ventes_rows", ventes.Len()).
		Msg("données chargées")

	return &Store{
		stock:      stock,
		ventes:     ventes,
		stockPath:  stockPath,
		ventesPath: ventesPath,
	}, nil
}

// Update runs fn under the write lock, then flushes both tables. When fn
// fails nothing is written and its error is returned. When the flush fails
// the in-memory state stands and a *FlushError is returned instead.
func (s *Store) Update(fn func(stock *ledger.StockLedger, ventes *ledger.SalesLedger) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := fn(s.stock, s.ventes); err != nil {
		return err
	}
	if err := s.flushLocked(); err != nil {
		log.Warn().Err(err).Msg("sauvegarde CSV échouée, l'état en mémoire est conservé")
		return &FlushError{Err: err}
	}
	return nil
}

// View runs fn under the read lock. fn must not mutate the ledgers.
func (s *Store) View(fn func(stock *ledger.StockLedger, ventes *ledger.SalesLedger)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.stock, s.ventes)
}

func (s *Store) flushLocked() error {
	if err := saveStock(s.stockPath, s.stock); err != nil {
		return err
	}
	return saveVentes(s.ventesPath, s.ventes)
}
