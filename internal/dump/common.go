package dump

import (
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nspcc-dev/stake-token-contract/contracts/token/tokenconst"
)

// ID is a unique identifier of the dump.
type ID struct {
	// Label of the dump source (e.g. testnet, mainnet).
	Label string
	// Blockchain height at which the state was pulled.
	Block uint32
}

// String returns hyphen-separated ID fields.
func (x ID) String() string {
	return x.Label + sep + strconv.FormatUint(uint64(x.Block), 10)
}

func (x *ID) decodeString(s string) error {
	i := strings.LastIndex(s, sep)
	if i <= 0 {
		return fmt.Errorf("expected '%s'-separated label and block", sep)
	}

	n, err := strconv.ParseUint(s[i+1:], 10, 32)
	if err != nil {
		return fmt.Errorf("decode block number from '%s': %w", s[i+1:], err)
	}

	x.Label = s[:i]
	x.Block = uint32(n)

	return nil
}

// Table returns name of the contract storage table the key belongs to.
func Table(key []byte) string {
	if len(key) == 0 {
		return "unknown"
	}

	switch key[0] {
	case tokenconst.OwnerKey:
		return "owner"
	case tokenconst.RefundDelayKey:
		return "refund-delay"
	case tokenconst.StatsPrefix:
		return "stats"
	case tokenconst.AccountPrefix:
		return "accounts"
	case tokenconst.StakePrefix:
		return "stake"
	case tokenconst.RefundPrefix:
		return "refunds"
	case tokenconst.RequestPrefix:
		return "requests"
	default:
		return "unknown"
	}
}

var _encoding = base64.StdEncoding

type dumpStreams struct {
	contract, storageItems io.ReadWriteCloser
}

func (x *dumpStreams) close() {
	_ = x.storageItems.Close()
	_ = x.contract.Close()
}

const (
	sep = "-"

	contractFileSuffix = "contract.json"
	storageFileSuffix  = "storage.csv"
)

// initDumpStreams opens files of the dump located in the specified directory.
// If read flag is set, streams are read-only. Otherwise, files must not
// exist, and streams are write only.
func initDumpStreams(d *dumpStreams, dir string, id ID, read bool) error {
	pathStorage := filepath.Join(dir, id.String()+sep+storageFileSuffix)
	pathContract := filepath.Join(dir, id.String()+sep+contractFileSuffix)

	var flag int
	var perm os.FileMode

	if read {
		flag = os.O_RDONLY
	} else {
		flag = os.O_CREATE | os.O_EXCL | os.O_WRONLY
		perm = 0600
	}

	var err error

	d.storageItems, err = os.OpenFile(pathStorage, flag, perm)
	if err != nil {
		return fmt.Errorf("open file with storage items: %w", err)
	}

	d.contract, err = os.OpenFile(pathContract, flag, perm)
	if err != nil {
		_ = d.storageItems.Close()
		return fmt.Errorf("open file with contract state: %w", err)
	}

	return nil
}
