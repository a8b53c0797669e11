package dwarfinfo

import (
	"debug/dwarf"
	"fmt"

	"structhole/layout"
)

// entryAt fetches the entry at off, caching entries as they are seen so
// repeated lookups don't rescan the info section.
func (_this *Info) entryAt(off dwarf.Offset) (*dwarf.Entry, error) {
	if entry, ok := _this.offset2entry[off]; ok {
		return entry, nil
	}
	_this.reader.Seek(off)
	entry, err := _this.reader.Next()
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, fmt.Errorf("no entry at offset %#x", off)
	}
	_this.offset2entry[off] = entry
	return entry, nil
}

// CompilationUnits lists the top-level compile unit entries of the binary.
func (_this *Info) CompilationUnits() ([]layout.EntryRef, error) {
	var cus []layout.EntryRef
	_this.reader.Seek(0)
	for {
		entry, err := _this.reader.Next()
		if err != nil {
			return nil, err
		}
		if entry == nil {
			break
		}
		if entry.Tag == dwarf.TagCompileUnit {
			_this.offset2entry[entry.Offset] = entry
			cus = append(cus, layout.EntryRef(entry.Offset))
		}
		_this.reader.SkipChildren()
	}
	return cus, nil
}

// Child returns the first child of ref, if it has any.
func (_this *Info) Child(ref layout.EntryRef) (layout.EntryRef, bool, error) {
	entry, err := _this.entryAt(dwarf.Offset(ref))
	if err != nil {
		return 0, false, err
	}
	if !entry.Children {
		return 0, false, nil
	}
	_this.reader.Seek(entry.Offset)
	if _, err := _this.reader.Next(); err != nil {
		return 0, false, err
	}
	kid, err := _this.reader.Next()
	if err != nil {
		return 0, false, err
	}
	if kid == nil || kid.Tag == 0 {
		return 0, false, nil
	}
	_this.offset2entry[kid.Offset] = kid
	return layout.EntryRef(kid.Offset), true, nil
}

// Sibling returns the next sibling of ref, skipping over any subtree
// rooted at ref. The walk ends at the null entry terminating the parent's
// child list.
func (_this *Info) Sibling(ref layout.EntryRef) (layout.EntryRef, bool, error) {
	_this.reader.Seek(dwarf.Offset(ref))
	if _, err := _this.reader.Next(); err != nil {
		return 0, false, err
	}
	_this.reader.SkipChildren()
	sib, err := _this.reader.Next()
	if err != nil {
		return 0, false, err
	}
	if sib == nil || sib.Tag == 0 {
		return 0, false, nil
	}
	_this.offset2entry[sib.Offset] = sib
	return layout.EntryRef(sib.Offset), true, nil
}
