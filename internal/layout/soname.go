package layout

import (
	"debug/elf"
	"fmt"
)

// SonameReader extracts the embedded identity string from a shared library
type SonameReader interface {
	// Soname returns the DT_SONAME of the library at path
	Soname(path string) (string, error)
}

// ELFSonameReader reads the soname from the dynamic section of an ELF file
type ELFSonameReader struct{}

// Soname returns the DT_SONAME entry of the ELF file at path. A library
// without a DT_SONAME entry is an error; there is no recovery path.
func (ELFSonameReader) Soname(path string) (string, error) {
	f, err := elf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open ELF file: %w", err)
	}
	defer f.Close()

	names, err := f.DynString(elf.DT_SONAME)
	if err != nil {
		return "", fmt.Errorf("failed to read dynamic section: %w", err)
	}
	if len(names) == 0 {
		return "", fmt.Errorf("no DT_SONAME entry")
	}

	return names[0], nil
}
