package store

import (
	"io"
	"os"
	"strconv"

	"github.com/parquet-go/parquet-go"
	"github.com/pkg/errors"
)

// ReadRows loads every row of a batch written by BatchWriter.
func ReadRows(path string) ([]TrainingRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer f.Close()

	reader := parquet.NewGenericReader[TrainingRow](f)
	defer reader.Close()

	retVal := make([]TrainingRow, 0, int(reader.NumRows()))
	for {
		// fresh buffer each round: decoded slices may share the buffer's memory
		buf := make([]TrainingRow, 256)
		n, err := reader.Read(buf)
		retVal = append(retVal, buf[:n]...)
		if err == io.EOF {
			return retVal, nil
		}
		if err != nil {
			return nil, errors.Wrapf(err, "read %s", path)
		}
	}
}

// ReadSummary reads the footer of a finished batch without decoding its rows.
func ReadSummary(path string) (Summary, error) {
	f, err := os.Open(path)
	if err != nil {
		return Summary{}, errors.WithStack(err)
	}
	defer f.Close()
	st, err := f.Stat()
	if err != nil {
		return Summary{}, errors.WithStack(err)
	}
	pf, err := parquet.OpenFile(f, st.Size())
	if err != nil {
		return Summary{}, errors.Wrapf(err, "open %s", path)
	}

	if schema, _ := pf.Lookup(metaSchema); schema != schemaVersion {
		return Summary{}, errors.Errorf("%s: unknown schema %q", path, schema)
	}
	retVal := Summary{Path: path, Rows: int(pf.NumRows())}
	retVal.Source, _ = pf.Lookup(metaSource)
	if games, ok := pf.Lookup(metaGames); ok {
		if retVal.Games, err = strconv.Atoi(games); err != nil {
			return Summary{}, errors.Wrapf(err, "%s: games", path)
		}
	}
	return retVal, nil
}
