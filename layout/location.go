package layout

import (
	"bytes"
	"fmt"

	"github.com/go-delve/delve/pkg/dwarf/leb128"
	"github.com/go-delve/delve/pkg/dwarf/op"
)

// memberOffset decodes a member's storage-location attribute into a byte
// offset from the start of the aggregate.
//
// Two encodings are supported: a plain unsigned constant, and an
// expression block whose single operation is DW_OP_plus_uconst or
// DW_OP_constu with a ULEB128 operand. Anything else yields
// errUnsupportedLocation so the walker can flag and skip the member.
func memberOffset(loc Location) (uint64, error) {
	switch loc.Kind {
	case LocConstant:
		return loc.Const, nil
	case LocExpr:
		if len(loc.Expr) < 2 {
			return 0, fmt.Errorf("location block too short (%d bytes)", len(loc.Expr))
		}
		switch op.Opcode(loc.Expr[0]) {
		case op.DW_OP_plus_uconst, op.DW_OP_constu:
		default:
			return 0, errUnsupportedLocation
		}
		off, n := leb128.DecodeUnsigned(bytes.NewBuffer(loc.Expr[1:]))
		if n == 0 {
			return 0, fmt.Errorf("truncated ULEB128 operand")
		}
		return off, nil
	case LocAbsent:
		return 0, fmt.Errorf("missing member location attribute")
	default:
		return 0, errUnsupportedLocation
	}
}
