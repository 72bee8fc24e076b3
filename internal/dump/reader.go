package dump

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
)

// Item is a single storage item of the dumped contract.
type Item struct {
	Table      string
	Key, Value []byte
}

// Reader provides access to the contract collected in the dump.
type Reader struct {
	state state.Contract
	items []Item
}

// Open reads dump with the given ID from the directory.
func Open(dir string, id ID) (*Reader, error) {
	var streams dumpStreams

	err := initDumpStreams(&streams, dir, id, true)
	if err != nil {
		return nil, err
	}
	defer streams.close()

	var r Reader

	err = r.fromDumpStreams(streams.contract, streams.storageItems)
	if err != nil {
		return nil, fmt.Errorf("read dump '%s': %w", id, err)
	}

	return &r, nil
}

// List returns IDs of all dumps located in the directory. Missing directory
// means no dumps.
func List(dir string) ([]ID, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read dump directory: %w", err)
	}

	var res []ID

	for i := range entries {
		name := entries[i].Name()
		if entries[i].IsDir() || !strings.HasSuffix(name, sep+contractFileSuffix) {
			continue
		}

		var id ID

		err = id.decodeString(strings.TrimSuffix(name, sep+contractFileSuffix))
		if err != nil {
			return nil, fmt.Errorf("decode dump ID from file name '%s': %w", name, err)
		}

		res = append(res, id)
	}

	return res, nil
}

func (x *Reader) fromDumpStreams(rContract, rStorageItems io.Reader) error {
	err := json.NewDecoder(rContract).Decode(&x.state)
	if err != nil {
		return fmt.Errorf("decode contract state from JSON: %w", err)
	}

	r := csv.NewReader(rStorageItems)
	r.FieldsPerRecord = 3

	for {
		rec, err := r.Read()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return fmt.Errorf("read next CSV record: %w", err)
		}

		var it Item

		it.Table = rec[0]

		it.Key, err = _encoding.DecodeString(rec[1])
		if err != nil {
			return fmt.Errorf("decode storage item key: %w", err)
		}

		it.Value, err = _encoding.DecodeString(rec[2])
		if err != nil {
			return fmt.Errorf("decode storage item value: %w", err)
		}

		x.items = append(x.items, it)
	}
}

// Contract returns state of the dumped contract.
func (x *Reader) Contract() state.Contract {
	return x.state
}

// IterateStorage passes all storage items from the dump into f in the order
// they were written. Break on f's error and return it.
func (x *Reader) IterateStorage(f func(Item) error) error {
	for i := range x.items {
		if err := f(x.items[i]); err != nil {
			return err
		}
	}
	return nil
}
