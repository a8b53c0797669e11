package layout

// Find scans every compilation unit for an aggregate type declaration
// named name that has visible members. Forward declarations (childless
// entries) are passed over so that the defining entry wins.
func Find(p Provider, name string) (EntryRef, bool, error) {
	cus, err := p.CompilationUnits()
	if err != nil {
		return 0, false, DataErr("compilation units", err)
	}

	for _, cu := range cus {
		// A CU may be empty, e.g. a fully #if0'd file.
		ref, ok, err := p.Child(cu)
		if err != nil {
			return 0, false, DataErr("first child", err)
		}
		for ok {
			if p.Tag(ref) == TagAggregate && p.HasChildren(ref) {
				if n, named := p.Name(ref); named && n == name {
					return ref, true, nil
				}
			}
			ref, ok, err = p.Sibling(ref)
			if err != nil {
				return 0, false, DataErr("next sibling", err)
			}
		}
	}
	return 0, false, nil
}
