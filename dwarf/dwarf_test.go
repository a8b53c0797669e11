package dwarfinfo

import (
	"debug/dwarf"
	"debug/elf"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"structhole/layout"
)

func TestClassPointerSize(t *testing.T) {
	size, err := classPointerSize(elf.ELFCLASS32)
	require.NoError(t, err)
	require.Equal(t, 4, size)

	size, err = classPointerSize(elf.ELFCLASS64)
	require.NoError(t, err)
	require.Equal(t, 8, size)

	_, err = classPointerSize(elf.ELFCLASSNONE)
	require.Error(t, err)
	require.Equal(t, layout.KindData, layout.KindOf(err))
}

func TestMapTag(t *testing.T) {
	cases := []struct {
		in   dwarf.Tag
		want layout.Tag
	}{
		{dwarf.TagStructType, layout.TagAggregate},
		{dwarf.TagClassType, layout.TagAggregate},
		{dwarf.TagInterfaceType, layout.TagAggregate},
		{dwarf.TagEnumerationType, layout.TagEnumeration},
		{dwarf.TagPointerType, layout.TagPointer},
		{dwarf.TagMember, layout.TagMember},
		{dwarf.TagBaseType, layout.TagBaseType},
		{dwarf.TagTypedef, layout.TagOther},
		{dwarf.TagUnionType, layout.TagOther},
		{dwarf.TagCompileUnit, layout.TagOther},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, mapTag(tc.in), "tag %v", tc.in)
	}
}

func TestOpenRejectsMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	require.Equal(t, layout.KindUsage, layout.KindOf(err))
}

func TestOpenRejectsDirectory(t *testing.T) {
	_, err := Open(t.TempDir())
	require.Error(t, err)
	require.Equal(t, layout.KindUsage, layout.KindOf(err))
}

func TestOpenRejectsNonELF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junk")
	require.NoError(t, os.WriteFile(path, []byte("definitely not an ELF binary"), 0o600))

	_, err := Open(path)
	require.Error(t, err)
	require.Equal(t, layout.KindUsage, layout.KindOf(err))
}
