/*
Package contracts reads compiled contracts from the file system.

Compiled contract directory holds the executable in 'contract.nef' and the
manifest in 'manifest.json'.
*/
package contracts

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"

	"github.com/nspcc-dev/neo-go/pkg/io"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
)

const (
	// TokenDir is a directory of the Token contract relative to the
	// repository root.
	TokenDir = "contracts/token"

	nefName      = "contract.nef"
	manifestName = "manifest.json"
)

// Contract groups information about compiled Neo contract.
type Contract struct {
	NEF      nef.File
	Manifest manifest.Manifest
}

var (
	errInvalidNEF      = errors.New("invalid NEF")
	errInvalidManifest = errors.New("invalid manifest")
)

// Read reads contract compiled into the given directory of fsys. Use "." for
// the root of fsys.
func Read(fsys fs.FS, dir string) (Contract, error) {
	var c Contract

	// fs.FS uses "/" even on Windows, so filepath.Join() is not applicable.
	fNEF, err := fsys.Open(path.Join(dir, nefName))
	if err != nil {
		return c, fmt.Errorf("open NEF: %w", err)
	}
	defer fNEF.Close()

	fManifest, err := fsys.Open(path.Join(dir, manifestName))
	if err != nil {
		return c, fmt.Errorf("open manifest: %w", err)
	}
	defer fManifest.Close()

	bReader := io.NewBinReaderFromIO(fNEF)
	c.NEF.DecodeBinary(bReader)
	if bReader.Err != nil {
		return c, fmt.Errorf("%w: %w", errInvalidNEF, bReader.Err)
	}

	err = json.NewDecoder(fManifest).Decode(&c.Manifest)
	if err != nil {
		return c, fmt.Errorf("%w: %w", errInvalidManifest, err)
	}

	if len(c.Manifest.ABI.Methods) == 0 {
		return c, fmt.Errorf("%w: no methods in ABI", errInvalidManifest)
	}

	return c, nil
}
