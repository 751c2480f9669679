package ledger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/finviz-dev/finviz/internal/category"
	"github.com/finviz-dev/finviz/internal/config"
	"github.com/finviz-dev/finviz/internal/id"
	"github.com/finviz-dev/finviz/internal/importer"
	"github.com/finviz-dev/finviz/internal/importlog"
	"github.com/finviz-dev/finviz/internal/model"
	"github.com/finviz-dev/finviz/internal/store"
)

// Service orchestrates the statement pipeline over a Store and a staging
// directory. All state lives in the store; the Service itself is stateless
// between calls.
type Service struct {
	root       string
	stagingDir string
	store      store.Store
	registry   *importer.Registry
	classifier *category.Classifier
	log        *logrus.Logger
}

// NewService creates a ledger Service rooted at the data directory.
func NewService(root string, cfg *config.Config, st store.Store, log *logrus.Logger) *Service {
	return &Service{
		root:       root,
		stagingDir: filepath.Join(root, cfg.Import.Dir),
		store:      st,
		registry:   importer.DefaultRegistry(),
		classifier: category.New(),
		log:        log,
	}
}

// RunResult reports one pipeline run: how many records parsed into
// transactions and how many were dropped as malformed.
type RunResult struct {
	Processed int
	Dropped   int
}

// Stage saves an uploaded statement into the staging directory and returns
// the saved path.
func (s *Service) Stage(name string, data []byte) (string, error) {
	return importer.Stage(s.stagingDir, name, data)
}

// Run executes the import pipeline over all staged statements: extract,
// normalize, fold each file's batch into the running collection, then
// persist the merged result in a single write.
//
// Per-file failures are logged and skipped; the run itself fails only when
// the store cannot be read or written, in which case the prior persisted
// state is left untouched.
func (s *Service) Run() (RunResult, error) {
	var result RunResult
	var history []importlog.Entry

	files, err := importer.Scan(s.stagingDir)
	if err != nil {
		return result, err
	}

	merged, err := s.store.ReadAll()
	if err != nil {
		return result, fmt.Errorf("reading persisted collection: %w", err)
	}

	for _, file := range files {
		format := strings.TrimPrefix(strings.ToLower(filepath.Ext(file.Name)), ".")
		parser := s.registry.Get(format)
		if parser == nil {
			s.log.WithField("file", file.Name).Warn("no parser for statement format")
			continue
		}

		f, err := os.Open(file.Path)
		if err != nil {
			s.log.WithField("file", file.Name).WithError(err).Warn("skipping unreadable statement")
			continue
		}
		txns, stats, err := parser.Parse(f)
		f.Close()
		if err != nil {
			s.log.WithField("file", file.Name).WithError(err).Warn("skipping unparseable statement")
			continue
		}

		batch := make([]model.StoredTransaction, len(txns))
		for i, txn := range txns {
			batch[i] = txn.Stored()
		}
		merged = Merge(merged, batch)

		result.Processed += stats.Records
		result.Dropped += stats.Dropped
		history = append(history, importlog.Entry{
			Timestamp: time.Now().UTC(),
			File:      file.Name,
			Records:   stats.Records,
			Dropped:   stats.Dropped,
		})
		s.log.WithFields(logrus.Fields{
			"file":    file.Name,
			"records": stats.Records,
			"dropped": stats.Dropped,
		}).Info("statement parsed")
	}

	if err := s.store.WriteAll(merged); err != nil {
		return result, fmt.Errorf("persisting collection: %w", err)
	}

	// History is best-effort; a failure here must not fail the run after
	// the collection has already been persisted.
	if len(history) > 0 {
		if err := importlog.Append(s.root, history); err != nil {
			s.log.WithError(err).Warn("could not record import history")
		}
	}
	return result, nil
}

// Load reads the persisted collection and hydrates it for display: category
// and identity are recomputed from the stored fields on every load, so rule
// changes reclassify history without a migration. Records that no longer
// parse are dropped, matching the pipeline's tolerance policy.
func (s *Service) Load() ([]model.Transaction, error) {
	stored, err := s.store.ReadAll()
	if err != nil {
		return nil, err
	}

	txns := make([]model.Transaction, 0, len(stored))
	for _, st := range stored {
		txn, ok := s.hydrate(st)
		if !ok {
			s.log.WithField("date", st.Date).Warn("dropping unparseable stored record")
			continue
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

// Clear empties the persisted collection and removes staged statements.
func (s *Service) Clear() error {
	if err := s.store.Clear(); err != nil {
		return fmt.Errorf("clearing store: %w", err)
	}
	if err := importer.ClearStaged(s.stagingDir); err != nil {
		return fmt.Errorf("clearing staged statements: %w", err)
	}
	return nil
}

func (s *Service) hydrate(st model.StoredTransaction) (model.Transaction, bool) {
	date, err := time.Parse(model.DateLayout, st.Date)
	if err != nil {
		return model.Transaction{}, false
	}
	amount, err := decimal.NewFromString(st.Valor)
	if err != nil {
		return model.Transaction{}, false
	}

	var ref *time.Time
	if st.Referencia != nil {
		if r, err := time.Parse(model.DateLayout, *st.Referencia); err == nil {
			ref = &r
		}
	}

	return model.Transaction{
		ID:            id.Transaction(st.Date, st.Descricao, st.Valor),
		Date:          date,
		Description:   st.Descricao,
		Amount:        amount,
		ReferenceDate: ref,
		Category:      s.classifier.Classify(st.Descricao),
	}, true
}
