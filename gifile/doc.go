// Package gifile reads and writes GI files.
//
// A GI file is a 24 byte frame around an encoded node tree. All frame
// integers are big-endian int32:
//
//	offset  field
//	0       total size, file length - 4
//	4       version
//	8       head magic 0x0326
//	12      file type
//	16      content length, file length - 24
//	20      content
//	20+len  tail magic 0x0679
//
// Readers validate every size and magic field before looking at the
// content, and accept any version. Writers emit version 1.
package gifile
