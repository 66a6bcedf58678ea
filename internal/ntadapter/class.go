// Package ntadapter is the small adapter the core consults instead of
// hand-rolling the NT structure definitions: OBJECT_ATTRIBUTES/
// NTUnicodeString parsing via golang.org/x/sys/windows, and writers for
// the ten FILE_*_DIR_INFORMATION layouts NtQueryDirectoryFile[Ex] can be
// asked to return. golang.org/x/sys/windows does not define the
// directory-information structs itself (they're NT-native, not part of
// the Win32 surface it wraps), so their field layout is defined here,
// following the same by-hand style other winfsp-family bindings in the
// corpus use for structures outside golang.org/x/sys/windows's coverage.
package ntadapter

// DirInfoClass mirrors the subset of FILE_INFORMATION_CLASS values that
// NtQueryDirectoryFile[Ex] accepts, selected from the caller's class
// argument at hook entry via a tagged dispatch switch rather than virtual
// dispatch, per the design notes.
type DirInfoClass uint32

const (
	FileDirectoryInformation              DirInfoClass = 1
	FileFullDirectoryInformation          DirInfoClass = 2
	FileBothDirectoryInformation          DirInfoClass = 3
	FileNamesInformation                  DirInfoClass = 12
	FileIdBothDirectoryInformation        DirInfoClass = 37
	FileIdFullDirectoryInformation        DirInfoClass = 38
	FileIdGlobalTxDirectoryInformation    DirInfoClass = 60
	FileId64ExtdDirectoryInformation      DirInfoClass = 78
	FileId64ExtdBothDirectoryInformation  DirInfoClass = 79
	FileIdAllExtdBothDirectoryInformation DirInfoClass = 98
)

// Supported reports whether class is one of the ten layouts this adapter
// knows how to write.
func Supported(class DirInfoClass) bool {
	_, ok := layouts[class]
	return ok
}
