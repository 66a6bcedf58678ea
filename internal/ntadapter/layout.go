package ntadapter

import (
	"encoding/binary"
	"fmt"
	"unicode/utf16"
)

// layout describes the fixed-size portion of one FILE_*_DIR_INFORMATION
// variant: headerSize is the offset at which the variable-length, UTF-16
// FileName field begins. FileNameLength directly follows FileAttributes;
// in FileNamesInformation, which has no FileAttributes field
// (fileAttributesOff is -1), it is the last field before FileName.
type layout struct {
	headerSize        int
	fileAttributesOff int
	hasShortName      bool
	hasFileID         bool
}

var layouts = map[DirInfoClass]layout{
	FileDirectoryInformation:              {headerSize: 64, fileAttributesOff: 56},
	FileFullDirectoryInformation:          {headerSize: 68, fileAttributesOff: 56},
	FileBothDirectoryInformation:          {headerSize: 94, fileAttributesOff: 56, hasShortName: true},
	FileNamesInformation:                  {headerSize: 12, fileAttributesOff: -1},
	FileIdBothDirectoryInformation:        {headerSize: 104, fileAttributesOff: 56, hasShortName: true, hasFileID: true},
	FileIdFullDirectoryInformation:        {headerSize: 76, fileAttributesOff: 56, hasFileID: true},
	FileIdGlobalTxDirectoryInformation:    {headerSize: 88, fileAttributesOff: 56, hasFileID: true},
	FileId64ExtdDirectoryInformation:      {headerSize: 80, fileAttributesOff: 56, hasFileID: true},
	FileId64ExtdBothDirectoryInformation:  {headerSize: 110, fileAttributesOff: 56, hasShortName: true, hasFileID: true},
	FileIdAllExtdBothDirectoryInformation: {headerSize: 120, fileAttributesOff: 56, hasShortName: true, hasFileID: true},
}

func align8(n int) int {
	return (n + 7) &^ 7
}

// RecordSize returns the total byte size a directory-info record of the
// given class needs to hold a file name of nameLen runes, 8-byte aligned
// the way consecutive NextEntryOffset-chained records require.
func RecordSize(class DirInfoClass, nameLen int) (int, error) {
	l, ok := layouts[class]
	if !ok {
		return 0, fmt.Errorf("unsupported directory information class %d", class)
	}
	return align8(l.headerSize + nameLen*2), nil
}

// WriteNextEntryOffset writes the NextEntryOffset field every variant
// carries at byte offset 0, used to chain consecutive records in the
// caller's buffer.
func WriteNextEntryOffset(buf []byte, offset uint32) {
	binary.LittleEndian.PutUint32(buf[0:4], offset)
}

// WriteFileAttributes writes the FILE_ATTRIBUTE_* bitmask field at the
// offset the given class carries it.
func WriteFileAttributes(class DirInfoClass, buf []byte, attrs uint32) error {
	l, ok := layouts[class]
	if !ok || l.fileAttributesOff < 0 {
		return fmt.Errorf("class %d has no file-attributes field", class)
	}
	binary.LittleEndian.PutUint32(buf[l.fileAttributesOff:l.fileAttributesOff+4], attrs)
	return nil
}

// WriteName writes name as UTF-16LE immediately after the class's fixed
// header and stores its byte length in the FileNameLength field.
func WriteName(class DirInfoClass, buf []byte, name string) error {
	l, ok := layouts[class]
	if !ok {
		return fmt.Errorf("unsupported directory information class %d", class)
	}

	units := utf16.Encode([]rune(name))
	nameLenOff := l.headerSize - 4
	if l.fileAttributesOff >= 0 {
		nameLenOff = l.fileAttributesOff + 4
	}
	binary.LittleEndian.PutUint32(buf[nameLenOff:nameLenOff+4], uint32(len(units)*2))

	for i, u := range units {
		off := l.headerSize + i*2
		binary.LittleEndian.PutUint16(buf[off:off+2], u)
	}
	return nil
}
