//go:build windows

package ntadapter

import "golang.org/x/sys/windows"

// ParsedObjectAttributes is the flat, engine-friendly view the core works
// with instead of OBJECT_ATTRIBUTES/NTUnicodeString directly.
type ParsedObjectAttributes struct {
	Path            string
	RootDirectory   windows.Handle
	CaseInsensitive bool
}

// ParseObjectAttributes flattens an OBJECT_ATTRIBUTES pointer (as NT file
// APIs receive it) into a plain path string and root-directory handle.
func ParseObjectAttributes(oa *windows.OBJECT_ATTRIBUTES) ParsedObjectAttributes {
	var path string
	if oa.ObjectName != nil {
		path = oa.ObjectName.String()
	}

	return ParsedObjectAttributes{
		Path:            path,
		RootDirectory:   oa.RootDirectory,
		CaseInsensitive: oa.Attributes&windows.OBJ_CASE_INSENSITIVE != 0,
	}
}
