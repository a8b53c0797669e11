package layout

import (
	"errors"
	"fmt"
	"io"
)

// DefaultCachelineSize is used when the configuration leaves the cacheline
// size unset.
const DefaultCachelineSize = 64

// Config carries the per-run constants of a layout walk. It is threaded
// explicitly so independent lookups never share state.
type Config struct {
	// CachelineSize in bytes; 0 means DefaultCachelineSize.
	CachelineSize uint64
	// PointerSize is the binary's addressing width in bytes, used as the
	// size of pointer-typed members whose type carries no size of its own.
	PointerSize uint64
}

// Summary is the accumulated tail of a layout report.
type Summary struct {
	StructSize         uint64
	Cachelines         uint64
	Members            uint64
	MemberBytes        uint64
	Holes              uint64
	HoleBytes          uint64
	LastCachelineBytes uint64
}

type walker struct {
	w   io.Writer
	p   Provider
	cfg Config

	cline     uint64 // index of the cacheline last announced
	members   uint64
	holes     uint64
	memBytes  uint64
	holeBytes uint64
	end       uint64 // offset immediately after the last-placed member
}

// Report walks the direct members of aggregate in declaration order and
// writes a C-style declaration annotated with offsets, sizes, padding
// holes and cacheline boundary crossings, followed by a summary block.
//
// Siblings that are not member entries (nested type declarations and the
// like) are passed over without affecting offset tracking. A member whose
// location uses an encoding this tool cannot decode is flagged in the
// report and skipped; every other irregularity in the debug info aborts
// the walk with a data error.
func Report(w io.Writer, p Provider, aggregate EntryRef, cfg Config) (*Summary, error) {
	if cfg.CachelineSize == 0 {
		cfg.CachelineSize = DefaultCachelineSize
	}

	name, ok := p.Name(aggregate)
	if !ok || name == "" {
		name = Anonymous
	}
	size, ok := p.AggregateSize(aggregate)
	if !ok {
		return nil, Dataf("aggregate size", "size of struct %s not recorded in debug info", name)
	}
	ref, ok, err := p.Child(aggregate)
	if err != nil {
		return nil, DataErr("first child", err)
	}
	if !ok {
		return nil, Dataf("first child", "struct %s declares no members", name)
	}

	wk := &walker{w: w, p: p, cfg: cfg}
	fmt.Fprintf(w, "struct %s {\n", name)

	for {
		if p.Tag(ref) == TagMember {
			if err := wk.member(ref); err != nil {
				return nil, err
			}
		}
		next, more, err := p.Sibling(ref)
		if err != nil {
			return nil, DataErr("next sibling", err)
		}
		if !more {
			break
		}
		ref = next
	}

	return wk.summary(size), nil
}

func (wk *walker) member(ref EntryRef) error {
	name, ok := wk.p.Name(ref)
	if !ok || name == "" {
		name = Anonymous
	}

	tref, ok, err := wk.p.TypeRef(ref)
	if err != nil {
		return DataErr("member type", err)
	}
	if !ok {
		return Dataf("member type", "member %s has no type reference", name)
	}

	loc, err := wk.p.Location(ref)
	if err != nil {
		return DataErr("member location", err)
	}
	off, err := memberOffset(loc)
	if errors.Is(err, errUnsupportedLocation) {
		fmt.Fprintf(wk.w, "\t/* %s: unsupported location encoding, skipped */\n", name)
		return nil
	}
	if err != nil {
		return Dataf("member location", "member %s: %v", name, err)
	}

	size, ok := wk.p.AggregateSize(tref)
	if !ok {
		// Pointers to incomplete types have no computable size; they
		// occupy exactly one address.
		if wk.p.Tag(tref) != TagPointer {
			return Dataf("member size", "size of member %s not derivable", name)
		}
		size = wk.cfg.PointerSize
	}

	typeName, err := TypeName(wk.p, tref)
	if err != nil {
		return DataErr("type name", err)
	}

	if off > wk.end {
		fmt.Fprintf(wk.w, "\n\t/* %d bytes hole, try to pack */\n\n", off-wk.end)
		wk.holes++
		wk.holeBytes += off - wk.end
	}

	fmt.Fprintf(wk.w, "\t%-27s%-21s /* %5d %5d */\n", typeName, name+";", off, size)

	wk.members++
	wk.memBytes += size
	wk.end = off + size
	wk.crossings()
	return nil
}

// crossings announces newly reached cacheline boundaries. Landing exactly
// on a boundary and overshooting it get distinct wording.
func (wk *walker) crossings() {
	cls := wk.cfg.CachelineSize
	if wk.end/cls <= wk.cline {
		return
	}
	ago := wk.end % cls
	wk.cline = wk.end / cls
	boundary := wk.cline * cls
	if ago != 0 {
		fmt.Fprintf(wk.w, "\t/* --- cacheline %d boundary (%d bytes) was %d bytes ago --- */\n",
			wk.cline, boundary, ago)
	} else {
		fmt.Fprintf(wk.w, "\t/* --- cacheline %d boundary (%d bytes) --- */\n",
			wk.cline, boundary)
	}
}

func (wk *walker) summary(size uint64) *Summary {
	cls := wk.cfg.CachelineSize
	s := &Summary{
		StructSize:         size,
		Cachelines:         (size + cls - 1) / cls,
		Members:            wk.members,
		MemberBytes:        wk.memBytes,
		Holes:              wk.holes,
		HoleBytes:          wk.holeBytes,
		LastCachelineBytes: wk.end % cls,
	}
	if s.Cachelines == 0 {
		s.Cachelines = 1
	}

	fmt.Fprintf(wk.w, "\n\t/* size: %d, cachelines: %d, members: %d */\n",
		s.StructSize, s.Cachelines, s.Members)
	fmt.Fprintf(wk.w, "\t/* sum members: %d, holes: %d, sum holes: %d */\n",
		s.MemberBytes, s.Holes, s.HoleBytes)
	fmt.Fprintf(wk.w, "\t/* last cacheline: %d bytes */\n", s.LastCachelineBytes)
	fmt.Fprintf(wk.w, "};\n")
	return s
}
