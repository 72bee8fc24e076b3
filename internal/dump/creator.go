package dump

import (
	"encoding/csv"
	"encoding/json"
	"fmt"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
)

// Creator dumps state of the Token contract into the file system. Use Open
// to read existing dumps.
type Creator struct {
	dumpStreams

	csv *csv.Writer
}

// NewCreator returns Creator which dumps the contract into given directory.
// Resulting Creator should be closed when finished working with it.
//
// NewCreator fails if dump with provided ID already exists.
func NewCreator(dir string, id ID) (*Creator, error) {
	var res Creator

	err := initDumpStreams(&res.dumpStreams, dir, id, false)
	if err != nil {
		return nil, err
	}

	res.csv = csv.NewWriter(res.storageItems)

	return &res, nil
}

// SetContract writes contract state into the dump.
func (x *Creator) SetContract(st state.Contract) error {
	enc := json.NewEncoder(x.contract)
	enc.SetIndent("", " ")

	err := enc.Encode(st)
	if err != nil {
		return fmt.Errorf("encode contract state to JSON: %w", err)
	}

	return nil
}

// Write saves given binary key-value into the dump as storage item. Its
// signature allows to pass it directly to the storage iterators.
func (x *Creator) Write(key, value []byte) error {
	err := x.csv.Write([]string{
		Table(key),
		_encoding.EncodeToString(key),
		_encoding.EncodeToString(value),
	})
	if err != nil {
		return fmt.Errorf("write storage item as CSV data: %w", err)
	}

	return nil
}

// Flush flushes buffered storage items to the file system.
func (x *Creator) Flush() error {
	x.csv.Flush()

	err := x.csv.Error()
	if err != nil {
		return fmt.Errorf("flush CSV data: %w", err)
	}

	return nil
}

// Close releases underlying resources of the Creator and makes it unusable.
func (x *Creator) Close() {
	x.close()
}
