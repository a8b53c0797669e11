package dwarfinfo

import (
	"debug/dwarf"
	"fmt"

	"fortio.org/safecast"
	mapset "github.com/deckarep/golang-set"

	"structhole/layout"
)

// Structs, classes and interfaces all lay out members the same way.
var aggregateTags = mapset.NewSetFromSlice([]interface{}{
	dwarf.TagStructType,
	dwarf.TagClassType,
	dwarf.TagInterfaceType,
})

func mapTag(tag dwarf.Tag) layout.Tag {
	if aggregateTags.Contains(tag) {
		return layout.TagAggregate
	}
	switch tag {
	case dwarf.TagEnumerationType:
		return layout.TagEnumeration
	case dwarf.TagPointerType:
		return layout.TagPointer
	case dwarf.TagMember:
		return layout.TagMember
	case dwarf.TagBaseType:
		return layout.TagBaseType
	}
	return layout.TagOther
}

// Tag classifies ref for the layout walker.
func (_this *Info) Tag(ref layout.EntryRef) layout.Tag {
	entry, err := _this.entryAt(dwarf.Offset(ref))
	if err != nil {
		return layout.TagOther
	}
	return mapTag(entry.Tag)
}

// Name returns the declared name of ref, if it has one.
func (_this *Info) Name(ref layout.EntryRef) (string, bool) {
	entry, err := _this.entryAt(dwarf.Offset(ref))
	if err != nil {
		return "", false
	}
	name, ok := entry.Val(dwarf.AttrName).(string)
	return name, ok && name != ""
}

// HasChildren reports whether ref heads a subtree.
func (_this *Info) HasChildren(ref layout.EntryRef) bool {
	entry, err := _this.entryAt(dwarf.Offset(ref))
	return err == nil && entry.Children
}

// TypeRef resolves the type attribute of ref to the referenced entry. A
// present but dangling reference is an error; the debug info is presumed
// authoritative.
func (_this *Info) TypeRef(ref layout.EntryRef) (layout.EntryRef, bool, error) {
	entry, err := _this.entryAt(dwarf.Offset(ref))
	if err != nil {
		return 0, false, err
	}
	val := entry.Val(dwarf.AttrType)
	if val == nil {
		return 0, false, nil
	}
	off, ok := val.(dwarf.Offset)
	if !ok {
		return 0, false, fmt.Errorf("type attribute at %#x is not a reference", entry.Offset)
	}
	if _, err := _this.entryAt(off); err != nil {
		return 0, false, err
	}
	return layout.EntryRef(off), true, nil
}

// AggregateSize computes the byte size of the type at ref, following
// typedefs and multiplying out array dimensions. ok is false when the
// debug info records no size, which is normal for pointers to incomplete
// types.
func (_this *Info) AggregateSize(ref layout.EntryRef) (uint64, bool) {
	typ, err := _this.data.Type(dwarf.Offset(ref))
	if err != nil {
		return 0, false
	}
	size := typ.Size()
	if size < 0 {
		return 0, false
	}
	out, err := safecast.Conv[uint64](size)
	if err != nil {
		return 0, false
	}
	return out, true
}

// Location returns the raw DW_AT_data_member_location field of ref without
// interpreting it: a plain constant, an expression block, absent, or an
// encoding class this tool does not know.
func (_this *Info) Location(ref layout.EntryRef) (layout.Location, error) {
	entry, err := _this.entryAt(dwarf.Offset(ref))
	if err != nil {
		return layout.Location{}, err
	}
	field := entry.AttrField(dwarf.AttrDataMemberLoc)
	if field == nil {
		return layout.Location{Kind: layout.LocAbsent}, nil
	}
	switch val := field.Val.(type) {
	case int64:
		off, err := safecast.Conv[uint64](val)
		if err != nil {
			return layout.Location{}, fmt.Errorf("negative member offset %d", val)
		}
		return layout.Location{Kind: layout.LocConstant, Const: off}, nil
	case []byte:
		return layout.Location{Kind: layout.LocExpr, Expr: val}, nil
	default:
		return layout.Location{Kind: layout.LocOther}, nil
	}
}
