// Package dwarfinfo reads the DWARF debug information of an ELF binary and
// exposes it through the layout.Provider boundary.
package dwarfinfo

import (
	"debug/dwarf"
	"debug/elf"
	"fmt"
	"os"

	"structhole/layout"
)

// Info is one debug-info session over an opened binary. Entries handed out
// as layout.EntryRef handles stay valid until Close.
type Info struct {
	path         string
	elfFile      *elf.File
	data         *dwarf.Data
	reader       *dwarf.Reader
	ptrSize      int
	offset2entry map[dwarf.Offset]*dwarf.Entry
}

// Open maps the binary at path and parses its debug sections. Unopenable
// or irregular files are usage errors; unreadable debug info is a data
// error.
func Open(path string) (*Info, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, layout.UsageErr("stat", err)
	}
	if !fi.Mode().IsRegular() {
		return nil, layout.UsageErr("open", fmt.Errorf("%s: not a regular file", path))
	}

	elfFile, err := elf.Open(path)
	if err != nil {
		return nil, layout.UsageErr("elf open", err)
	}
	ptrSize, err := classPointerSize(elfFile.FileHeader.Class)
	if err != nil {
		elfFile.Close()
		return nil, err
	}
	data, err := elfFile.DWARF()
	if err != nil {
		elfFile.Close()
		return nil, layout.DataErr("dwarf sections", err)
	}

	return &Info{
		path:         path,
		elfFile:      elfFile,
		data:         data,
		reader:       data.Reader(),
		ptrSize:      ptrSize,
		offset2entry: make(map[dwarf.Offset]*dwarf.Entry),
	}, nil
}

func classPointerSize(class elf.Class) (int, error) {
	switch class {
	case elf.ELFCLASS32:
		return 4, nil
	case elf.ELFCLASS64:
		return 8, nil
	}
	return 0, layout.Dataf("elf class", "bogus ELF ident header, machine class=%d", class)
}

// PointerSize is the addressing width of the binary in bytes.
func (_this *Info) PointerSize() int {
	return _this.ptrSize
}

// Close releases the session. Safe to call once per Open; a teardown
// failure is a software error.
func (_this *Info) Close() error {
	if _this.elfFile == nil {
		return nil
	}
	err := _this.elfFile.Close()
	_this.elfFile = nil
	if err != nil {
		return layout.SoftwareErr("close", err)
	}
	return nil
}
