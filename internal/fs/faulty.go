package fs

import (
	"errors"
	"os"
	"sync"
)

// ErrInjected is the default error returned by an injected fault.
var ErrInjected = errors.New("injected fault")

// FaultyFS wraps a FileSystem and fails selected operations.
type FaultyFS struct {
	FS FileSystem

	mu             sync.Mutex
	failAfterBytes int64 // -1 disables
	written        int64
	failOnSync     bool
	failOnRename   bool
	err            error
}

// NewFaultyFS wraps fsys. A nil fsys wraps Default.
func NewFaultyFS(fsys FileSystem) *FaultyFS {
	if fsys == nil {
		fsys = Default
	}
	return &FaultyFS{FS: fsys, failAfterBytes: -1, err: ErrInjected}
}

// FailWritesAfter makes writes fail once n bytes were written across all
// files. A negative n disables the fault.
func (f *FaultyFS) FailWritesAfter(n int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failAfterBytes = n
	f.written = 0
}

// FailSync makes File.Sync fail.
func (f *FaultyFS) FailSync(on bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failOnSync = on
}

// FailRename makes Rename fail.
func (f *FaultyFS) FailRename(on bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failOnRename = on
}

// SetError sets the error returned by injected faults.
func (f *FaultyFS) SetError(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
}

// Written returns the bytes written through the wrapper.
func (f *FaultyFS) Written() int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.written
}

func (f *FaultyFS) CreateTemp(dir, pattern string) (File, error) {
	file, err := f.FS.CreateTemp(dir, pattern)
	if err != nil {
		return nil, err
	}
	return &faultyFile{File: file, fs: f}, nil
}

func (f *FaultyFS) Remove(name string) error { return f.FS.Remove(name) }

func (f *FaultyFS) Rename(oldpath, newpath string) error {
	f.mu.Lock()
	fail, err := f.failOnRename, f.err
	f.mu.Unlock()
	if fail {
		return &os.LinkError{Op: "rename", Old: oldpath, New: newpath, Err: err}
	}
	return f.FS.Rename(oldpath, newpath)
}

func (f *FaultyFS) MkdirAll(path string, perm os.FileMode) error {
	return f.FS.MkdirAll(path, perm)
}

type faultyFile struct {
	File
	fs *FaultyFS
}

func (ff *faultyFile) Write(p []byte) (int, error) {
	f := ff.fs
	f.mu.Lock()
	allowed := len(p)
	if f.failAfterBytes >= 0 {
		allowed = int(max(0, min(int64(len(p)), f.failAfterBytes-f.written)))
	}
	err := f.err
	f.mu.Unlock()

	n, werr := ff.File.Write(p[:allowed])

	f.mu.Lock()
	f.written += int64(n)
	f.mu.Unlock()

	if werr != nil {
		return n, werr
	}
	if allowed < len(p) {
		return n, &os.PathError{Op: "write", Path: ff.Name(), Err: err}
	}
	return n, nil
}

func (ff *faultyFile) Sync() error {
	f := ff.fs
	f.mu.Lock()
	fail, err := f.failOnSync, f.err
	f.mu.Unlock()
	if fail {
		return &os.PathError{Op: "sync", Path: ff.Name(), Err: err}
	}
	return ff.File.Sync()
}
