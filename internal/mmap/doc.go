// Package mmap maps local XMAP inputs read-only into memory.
//
//	m, err := mmap.Open("sample.xmap")
//	if err != nil { ... }
//	defer m.Close()
//
//	_ = m.Advise(mmap.AccessSequential)
//	data := m.Bytes()
//
// Unix platforms use mmap(2) and madvise(2). Windows uses
// CreateFileMapping/MapViewOfFile and ignores access hints.
//
// A Mapping is safe for concurrent reads. Close is idempotent; Bytes must not
// be used after Close returns.
package mmap
