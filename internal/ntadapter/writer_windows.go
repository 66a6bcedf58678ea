//go:build windows

package ntadapter

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// PopulateFromHandle fetches attribute metadata for an overlay file via
// the normal Win32 query and writes it into the record's fixed fields.
func PopulateFromHandle(class DirInfoClass, buf []byte, h windows.Handle) error {
	var fi windows.ByHandleFileInformation
	if err := windows.GetFileInformationByHandle(h, &fi); err != nil {
		return fmt.Errorf("populate from handle: %w", err)
	}
	return WriteFileAttributes(class, buf, fi.FileAttributes)
}
