package ledger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finviz-dev/finviz/internal/config"
	"github.com/finviz-dev/finviz/internal/importlog"
	"github.com/finviz-dev/finviz/internal/logging"
	"github.com/finviz-dev/finviz/internal/model"
	"github.com/finviz-dev/finviz/internal/store"
)

const sampleOFX = `<DTASOF>20240115</DTASOF>
<STMTTRN><DTPOSTED>20240110</DTPOSTED><MEMO>IFOOD DELIVERY</MEMO><TRNAMT>-45.90</TRNAMT></STMTTRN>
<STMTTRN><DTPOSTED>20240112</DTPOSTED><MEMO>UBER TRIP</MEMO><TRNAMT>-30,00</TRNAMT></STMTTRN>
<STMTTRN><MEMO>NO DATE</MEMO><TRNAMT>-1.00</TRNAMT></STMTTRN>`

func newTestService(t *testing.T) (*Service, *store.MemoryStore, string) {
	t.Helper()
	root := t.TempDir()
	st := store.NewMemoryStore()
	svc := NewService(root, config.Default(), st, logging.Discard())
	return svc, st, root
}

func TestService_StageRunLoad(t *testing.T) {
	svc, st, root := newTestService(t)

	path, err := svc.Stage("cartao.ofx", []byte(sampleOFX))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "import", "cartao.ofx"), path)

	result, err := svc.Run()
	require.NoError(t, err)
	assert.Equal(t, 2, result.Processed)
	assert.Equal(t, 1, result.Dropped)

	stored, err := st.ReadAll()
	require.NoError(t, err)
	require.Len(t, stored, 2)
	// Sorted date descending at rest.
	assert.Equal(t, "UBER TRIP", stored[0].Descricao)
	assert.Equal(t, "IFOOD DELIVERY", stored[1].Descricao)
	require.NotNil(t, stored[1].Referencia)
	assert.Equal(t, "2024-01-15", *stored[1].Referencia)

	txns, err := svc.Load()
	require.NoError(t, err)
	require.Len(t, txns, 2)
	assert.Equal(t, model.CategoryTransport, txns[0].Category)
	assert.Equal(t, model.CategoryFood, txns[1].Category)
	assert.Equal(t, "-45.9", txns[1].Amount.String())
	assert.False(t, txns[1].IsIncome())
	assert.NotEmpty(t, txns[1].ID)
}

func TestService_RunIdempotent(t *testing.T) {
	svc, st, _ := newTestService(t)

	_, err := svc.Stage("cartao.ofx", []byte(sampleOFX))
	require.NoError(t, err)

	_, err = svc.Run()
	require.NoError(t, err)
	once, err := st.ReadAll()
	require.NoError(t, err)

	// Statements stay staged; a second run re-parses and dedups to a no-op.
	_, err = svc.Run()
	require.NoError(t, err)
	twice, err := st.ReadAll()
	require.NoError(t, err)

	assert.Equal(t, once, twice)
}

func TestService_RunFoldsMultipleFiles(t *testing.T) {
	svc, st, _ := newTestService(t)

	_, err := svc.Stage("jan.ofx", []byte(sampleOFX))
	require.NoError(t, err)
	_, err = svc.Stage("fev.ofx", []byte(
		`<STMTTRN><DTPOSTED>20240210<MEMO>PADARIA CENTRAL<TRNAMT>-12.00</STMTTRN>
<STMTTRN><DTPOSTED>20240112<MEMO>UBER TRIP<TRNAMT>-30,00</STMTTRN>`)) // duplicate of jan
	require.NoError(t, err)

	result, err := svc.Run()
	require.NoError(t, err)
	assert.Equal(t, 4, result.Processed)

	stored, err := st.ReadAll()
	require.NoError(t, err)
	assert.Len(t, stored, 3, "cross-file duplicate merged away")
}

func TestService_RunSkipsNonStatementFiles(t *testing.T) {
	svc, st, root := newTestService(t)

	importDir := filepath.Join(root, "import")
	require.NoError(t, os.MkdirAll(importDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(importDir, "notes.txt"), []byte("hi"), 0o644))
	_, err := svc.Stage("cartao.ofx", []byte(sampleOFX))
	require.NoError(t, err)

	result, err := svc.Run()
	require.NoError(t, err)
	assert.Equal(t, 2, result.Processed)

	stored, err := st.ReadAll()
	require.NoError(t, err)
	assert.Len(t, stored, 2)
}

func TestService_RunGarbageFileStillSucceeds(t *testing.T) {
	svc, st, _ := newTestService(t)

	_, err := svc.Stage("garbage.ofx", []byte{0x00, 0xff, 0xfe})
	require.NoError(t, err)
	_, err = svc.Stage("cartao.ofx", []byte(sampleOFX))
	require.NoError(t, err)

	// A statement that yields no blocks contributes nothing; the batch
	// still completes.
	result, err := svc.Run()
	require.NoError(t, err)
	assert.Equal(t, 2, result.Processed)

	stored, err := st.ReadAll()
	require.NoError(t, err)
	assert.Len(t, stored, 2)
}

func TestService_RunEmptyStaging(t *testing.T) {
	svc, st, _ := newTestService(t)

	result, err := svc.Run()
	require.NoError(t, err)
	assert.Equal(t, RunResult{}, result)

	stored, err := st.ReadAll()
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestService_RunMergesIntoExisting(t *testing.T) {
	svc, st, _ := newTestService(t)

	require.NoError(t, st.WriteAll([]model.StoredTransaction{
		{Date: "2023-12-01", Descricao: "SALDO ANTERIOR", Valor: "100"},
	}))

	_, err := svc.Stage("cartao.ofx", []byte(sampleOFX))
	require.NoError(t, err)
	_, err = svc.Run()
	require.NoError(t, err)

	stored, err := st.ReadAll()
	require.NoError(t, err)
	require.Len(t, stored, 3)
	assert.Equal(t, "SALDO ANTERIOR", stored[2].Descricao, "older entry sorts last")
}

func TestService_LoadRecomputesCategories(t *testing.T) {
	svc, st, _ := newTestService(t)

	require.NoError(t, st.WriteAll([]model.StoredTransaction{
		{Date: "2024-01-10", Descricao: "NETFLIX.COM", Valor: "-39.9"},
	}))

	txns, err := svc.Load()
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, model.CategoryEntertainment, txns[0].Category)
}

func TestService_LoadDropsCorruptRecords(t *testing.T) {
	svc, st, _ := newTestService(t)

	require.NoError(t, st.WriteAll([]model.StoredTransaction{
		{Date: "not-a-date", Descricao: "BROKEN", Valor: "-1"},
		{Date: "2024-01-10", Descricao: "OK", Valor: "not-a-number"},
		{Date: "2024-01-10", Descricao: "KEPT", Valor: "-1"},
	}))

	txns, err := svc.Load()
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, "KEPT", txns[0].Description)
}

func TestService_Clear(t *testing.T) {
	svc, st, root := newTestService(t)

	_, err := svc.Stage("cartao.ofx", []byte(sampleOFX))
	require.NoError(t, err)
	_, err = svc.Run()
	require.NoError(t, err)

	require.NoError(t, svc.Clear())

	stored, err := st.ReadAll()
	require.NoError(t, err)
	assert.Empty(t, stored)

	_, err = os.Stat(filepath.Join(root, "import", "cartao.ofx"))
	assert.True(t, os.IsNotExist(err))
}

func TestService_RunRecordsHistory(t *testing.T) {
	svc, _, root := newTestService(t)

	_, err := svc.Stage("cartao.ofx", []byte(sampleOFX))
	require.NoError(t, err)
	_, err = svc.Run()
	require.NoError(t, err)

	entries, err := importlog.Read(root)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "cartao.ofx", entries[0].File)
	assert.Equal(t, 2, entries[0].Records)
	assert.Equal(t, 1, entries[0].Dropped)

	// An empty run leaves the history untouched and creates no file in a
	// fresh directory.
	svc2, _, root2 := newTestService(t)
	_, err = svc2.Run()
	require.NoError(t, err)
	entries, err = importlog.Read(root2)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestService_RunWithFileStore(t *testing.T) {
	root := t.TempDir()
	cfg := config.Default()
	fs := store.NewFileStore(filepath.Join(root, cfg.Storage.File))
	svc := NewService(root, cfg, fs, logging.Discard())

	_, err := svc.Stage("cartao.ofx", []byte(sampleOFX))
	require.NoError(t, err)
	_, err = svc.Run()
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(root, "expenses.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"descricao": "IFOOD DELIVERY"`)
	assert.Contains(t, string(data), `"valor": "-45.9"`)
	assert.Contains(t, string(data), `"referencia": "2024-01-15"`)
}
