// Package layout reconstructs the in-memory layout of one aggregate type
// (struct, class or interface) from the debug information of a compiled
// binary: per-member offsets and sizes, padding holes between members and
// cacheline boundary crossings.
//
// The package does not read ELF or DWARF itself. It walks an externally
// owned debug-info tree through the Provider interface and holds only
// transient entry handles during a lookup.
package layout

// EntryRef is an opaque handle to one debug-info entry. Handles are only
// valid for the Provider session that produced them.
type EntryRef uint64

// Tag classifies a debug-info entry as far as layout probing cares.
type Tag int

const (
	TagOther Tag = iota
	TagAggregate
	TagEnumeration
	TagPointer
	TagMember
	TagBaseType
)

// LocationKind describes the encoding of a member's storage location
// attribute as found in the debug info.
type LocationKind int

const (
	// LocAbsent means the entry carries no location attribute.
	LocAbsent LocationKind = iota
	// LocConstant is a plain unsigned byte offset.
	LocConstant
	// LocExpr is an expression block: an opcode byte followed by its
	// operand bytes.
	LocExpr
	// LocOther is any encoding class this tool does not understand.
	LocOther
)

// Location is the raw, undecoded member-location attribute.
type Location struct {
	Kind  LocationKind
	Const uint64
	Expr  []byte
}

// Provider is the narrow boundary to the debug-info reader. Entries are
// owned by the provider for the lifetime of the session; the walker never
// mutates them.
type Provider interface {
	// PointerSize is the addressing width of the binary in bytes (4 or 8).
	PointerSize() int

	// CompilationUnits lists the top-level compilation unit entries.
	CompilationUnits() ([]EntryRef, error)

	// Child returns the first child of ref, if any.
	Child(ref EntryRef) (EntryRef, bool, error)

	// Sibling returns the next sibling of ref, if any.
	Sibling(ref EntryRef) (EntryRef, bool, error)

	// Tag reports the layout classification of ref.
	Tag(ref EntryRef) Tag

	// Name returns the declared name of ref, if it has one.
	Name(ref EntryRef) (string, bool)

	// HasChildren reports whether ref has child entries.
	HasChildren(ref EntryRef) bool

	// TypeRef resolves the type-reference attribute of ref to the
	// referenced entry. ok is false when the attribute is absent; a present
	// but unresolvable reference is an error.
	TypeRef(ref EntryRef) (tref EntryRef, ok bool, err error)

	// AggregateSize computes the total byte size of the type described by
	// ref, following typedefs and computing array sizes. ok is false when
	// the size is not derivable from the debug info.
	AggregateSize(ref EntryRef) (size uint64, ok bool)

	// Location returns the raw member-location attribute of ref.
	Location(ref EntryRef) (Location, error)
}
