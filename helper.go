package main

import (
	"io"

	dwarfinfo "structhole/dwarf"
	"structhole/layout"
)

// Probe opens the binary's debug info, locates the named aggregate and
// writes its layout report to w. The debug-info session is closed exactly
// once on every path; a close failure after an otherwise clean run is
// returned as the error.
func Probe(w io.Writer, structName, binary string, cacheline uint64) (err error) {
	info, err := dwarfinfo.Open(binary)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := info.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	ref, found, err := layout.Find(info, structName)
	if err != nil {
		return err
	}
	if !found {
		return layout.Dataf("lookup", "struct %s not found in %s", structName, binary)
	}

	cfg := layout.Config{
		CachelineSize: cacheline,
		PointerSize:   uint64(info.PointerSize()),
	}
	_, err = layout.Report(w, info, ref, cfg)
	return err
}
