package layout

import "strings"

// Anonymous is rendered in place of any missing identifier so that layout
// lines stay well-formed.
const Anonymous = "<anonymous>"

// MaxIndirection caps the number of '*' characters rendered for chained
// pointer types. Deeper chains are truncated to this many stars.
const MaxIndirection = 29

// TypeName formats the type entry ref as a C declaration fragment:
// "struct foo", "enum bar", "char **" and so on. Pointer chains are
// followed to their ultimate base type, counting indirection and picking
// up a struct/enum prefix from the pointed-to type.
func TypeName(p Provider, ref EntryRef) (string, error) {
	prefix := ""
	stars := 0

	switch p.Tag(ref) {
	case TagAggregate:
		prefix = "struct "
	case TagEnumeration:
		prefix = "enum "
	case TagPointer:
		cur := ref
		for {
			switch p.Tag(cur) {
			case TagPointer:
				stars++
			case TagAggregate:
				prefix = "struct "
			case TagEnumeration:
				prefix = "enum "
			}

			// Untyped pointers (void*) have no further type reference;
			// resolution terminates at whatever was last seen.
			next, ok, err := p.TypeRef(cur)
			if err != nil {
				return "", err
			}
			if !ok {
				break
			}
			cur = next
			if p.Tag(cur) == TagBaseType {
				break
			}
		}
		ref = cur
	}

	name, ok := p.Name(ref)
	if !ok || name == "" {
		name = Anonymous
	}
	if stars > 0 {
		if stars > MaxIndirection {
			stars = MaxIndirection
		}
		name += " " + strings.Repeat("*", stars)
	}
	return prefix + name, nil
}
