package layout

// fakeProvider is an in-memory debug-info tree for exercising the walker
// and resolver without a real binary.

type fakeEntry struct {
	tag     Tag
	name    string
	typeRef EntryRef
	size    int64 // byte size; -1 when not derivable
	loc     *Location
	child   EntryRef
	sibling EntryRef
}

type fakeProvider struct {
	ptrSize int
	cus     []EntryRef
	entries map[EntryRef]*fakeEntry
	nextID  EntryRef
}

func newFakeProvider(ptrSize int) *fakeProvider {
	return &fakeProvider{
		ptrSize: ptrSize,
		entries: make(map[EntryRef]*fakeEntry),
		nextID:  1,
	}
}

func (f *fakeProvider) add(e *fakeEntry) EntryRef {
	id := f.nextID
	f.nextID++
	f.entries[id] = e
	return id
}

func (f *fakeProvider) addType(tag Tag, name string, size int64) EntryRef {
	return f.add(&fakeEntry{tag: tag, name: name, size: size})
}

func (f *fakeProvider) addPointer(to EntryRef) EntryRef {
	return f.add(&fakeEntry{tag: TagPointer, typeRef: to, size: -1})
}

func (f *fakeProvider) addMember(name string, typ EntryRef, loc *Location) EntryRef {
	return f.add(&fakeEntry{tag: TagMember, name: name, typeRef: typ, loc: loc, size: -1})
}

// addStruct wires name as a defined aggregate under a fresh compilation
// unit, with kids as its child list in order.
func (f *fakeProvider) addStruct(name string, size int64, kids ...EntryRef) EntryRef {
	root := f.add(&fakeEntry{tag: TagAggregate, name: name, size: size})
	var prev EntryRef
	for _, k := range kids {
		if prev == 0 {
			f.entries[root].child = k
		} else {
			f.entries[prev].sibling = k
		}
		prev = k
	}
	cu := f.add(&fakeEntry{tag: TagOther, child: root})
	f.cus = append(f.cus, cu)
	return root
}

func constLoc(off uint64) *Location {
	return &Location{Kind: LocConstant, Const: off}
}

func (f *fakeProvider) PointerSize() int { return f.ptrSize }

func (f *fakeProvider) CompilationUnits() ([]EntryRef, error) { return f.cus, nil }

func (f *fakeProvider) Child(ref EntryRef) (EntryRef, bool, error) {
	e := f.entries[ref]
	if e == nil || e.child == 0 {
		return 0, false, nil
	}
	return e.child, true, nil
}

func (f *fakeProvider) Sibling(ref EntryRef) (EntryRef, bool, error) {
	e := f.entries[ref]
	if e == nil || e.sibling == 0 {
		return 0, false, nil
	}
	return e.sibling, true, nil
}

func (f *fakeProvider) Tag(ref EntryRef) Tag {
	e := f.entries[ref]
	if e == nil {
		return TagOther
	}
	return e.tag
}

func (f *fakeProvider) Name(ref EntryRef) (string, bool) {
	e := f.entries[ref]
	if e == nil || e.name == "" {
		return "", false
	}
	return e.name, true
}

func (f *fakeProvider) HasChildren(ref EntryRef) bool {
	e := f.entries[ref]
	return e != nil && e.child != 0
}

func (f *fakeProvider) TypeRef(ref EntryRef) (EntryRef, bool, error) {
	e := f.entries[ref]
	if e == nil || e.typeRef == 0 {
		return 0, false, nil
	}
	return e.typeRef, true, nil
}

func (f *fakeProvider) AggregateSize(ref EntryRef) (uint64, bool) {
	e := f.entries[ref]
	if e == nil || e.size < 0 {
		return 0, false
	}
	return uint64(e.size), true
}

func (f *fakeProvider) Location(ref EntryRef) (Location, error) {
	e := f.entries[ref]
	if e == nil || e.loc == nil {
		return Location{Kind: LocAbsent}, nil
	}
	return *e.loc, nil
}
