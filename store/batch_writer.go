package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress/zstd"
	"github.com/pkg/errors"
)

// Footer metadata keys.
const (
	metaSchema = "schema"
	metaSource = "source"
	metaRows   = "rows"
	metaGames  = "games"
)

// Summary describes a finished batch file.
type Summary struct {
	Path   string
	Source string
	Rows   int
	Games  int // distinct GameIDs
}

// BatchWriter writes the training rows of one run into a single parquet
// file. The file is built under dir/tmp and only appears in dir once
// Finalize succeeds, so readers never see a half-written batch.
type BatchWriter struct {
	source  string
	staging string
	final   string

	f  *os.File
	pw *parquet.GenericWriter[TrainingRow]

	games map[string]struct{}
	rows  int
}

// NewBatchWriter starts a batch in dir. Every row written is stamped with
// source, which also prefixes the file name.
func NewBatchWriter(dir, source string) (*BatchWriter, error) {
	if dir == "" {
		return nil, errors.New("output directory is required")
	}
	if source == "" || source != filepath.Base(source) {
		return nil, errors.Errorf("bad source %q", source)
	}
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	tmp := filepath.Join(dir, "tmp")
	if err := os.MkdirAll(tmp, 0o755); err != nil {
		return nil, errors.Wrap(err, "create staging dir")
	}

	name := fmt.Sprintf("%s_%d.parquet", source, time.Now().UnixNano())
	w := &BatchWriter{
		source:  source,
		staging: filepath.Join(tmp, name),
		final:   filepath.Join(dir, name),
		games:   make(map[string]struct{}),
	}
	f, err := os.OpenFile(w.staging, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, errors.Wrap(err, "open staging file")
	}
	w.f = f
	w.pw = parquet.NewGenericWriter[TrainingRow](f,
		parquet.Compression(&zstd.Codec{Level: zstd.SpeedBetterCompression}),
		parquet.SkipPageBounds("input"),
	)
	w.pw.SetKeyValueMetadata(metaSchema, schemaVersion)
	w.pw.SetKeyValueMetadata(metaSource, source)
	return w, nil
}

// StagingPath is where the batch lives until Finalize.
func (w *BatchWriter) StagingPath() string { return w.staging }

// Path is where Finalize puts the batch.
func (w *BatchWriter) Path() string { return w.final }

// Rows returns the number of rows written so far.
func (w *BatchWriter) Rows() int { return w.rows }

// Games returns the number of distinct games among the rows written so far.
func (w *BatchWriter) Games() int { return len(w.games) }

// Write appends rows. A row must name its game and its player ("W" or "B")
// and carry an encoded position; nothing is written if any row does not.
func (w *BatchWriter) Write(rows ...TrainingRow) error {
	if w.pw == nil {
		return errors.New("batch writer is closed")
	}
	if len(rows) == 0 {
		return nil
	}
	stamped := make([]TrainingRow, len(rows))
	for i, row := range rows {
		if err := checkRow(row); err != nil {
			return errors.Wrapf(err, "row %d", i)
		}
		row.Source = w.source
		stamped[i] = row
	}
	if _, err := w.pw.Write(stamped); err != nil {
		return errors.Wrap(err, "write rows")
	}
	for _, row := range stamped {
		w.games[row.GameID] = struct{}{}
	}
	w.rows += len(stamped)
	return nil
}

func checkRow(row TrainingRow) error {
	switch {
	case row.GameID == "":
		return errors.New("missing game id")
	case row.Player != "W" && row.Player != "B":
		return errors.Errorf("bad player %q", row.Player)
	case len(row.Input) == 0:
		return errors.New("empty input")
	}
	return nil
}

// Finalize closes the batch and moves it into place. A batch without rows is
// removed and the returned Summary has an empty Path. Finalize on a closed
// writer is a no-op.
func (w *BatchWriter) Finalize() (Summary, error) {
	if w.pw == nil {
		return Summary{}, nil
	}
	w.pw.SetKeyValueMetadata(metaRows, strconv.Itoa(w.rows))
	w.pw.SetKeyValueMetadata(metaGames, strconv.Itoa(len(w.games)))
	if err := w.close(); err != nil {
		return Summary{}, err
	}
	if w.rows == 0 {
		_ = os.Remove(w.staging)
		return Summary{}, nil
	}
	if err := os.Rename(w.staging, w.final); err != nil {
		return Summary{}, errors.Wrap(err, "move batch into place")
	}
	return Summary{
		Path:   w.final,
		Source: w.source,
		Rows:   w.rows,
		Games:  len(w.games),
	}, nil
}

// Abort closes the batch and deletes it.
func (w *BatchWriter) Abort() error {
	if w.pw == nil {
		return nil
	}
	var errs error
	if err := w.close(); err != nil {
		errs = multierror.Append(errs, err)
	}
	if err := os.Remove(w.staging); err != nil && !os.IsNotExist(err) {
		errs = multierror.Append(errs, errors.Wrap(err, "remove staging file"))
	}
	return errs
}

func (w *BatchWriter) close() error {
	var errs error
	if err := w.pw.Close(); err != nil {
		errs = multierror.Append(errs, errors.Wrap(err, "close parquet writer"))
	}
	w.pw = nil
	if err := w.f.Sync(); err != nil {
		errs = multierror.Append(errs, errors.Wrap(err, "sync batch"))
	}
	if err := w.f.Close(); err != nil {
		errs = multierror.Append(errs, errors.Wrap(err, "close batch"))
	}
	w.f = nil
	return errs
}
