// Copyright (c) 2022, superwindstorm <fengwd.hc@gmail.com>
// All rights reserved.
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly
// +build linux darwin freebsd netbsd openbsd dragonfly

package cli

import (
	"bytes"
	"io"
	"os"

	"golang.org/x/sys/unix"
)

// mapped serves a read-only memory mapping of a whole file.
type mapped struct {
	*bytes.Reader
	data []byte
}

func (m *mapped) Close() error {
	return unix.Munmap(m.data)
}

// openFile maps regular files into memory and falls back to plain reads
// for everything else (pipes, devices, empty files, failed mappings).
func openFile(name string) (io.ReadCloser, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	size := fi.Size()
	if !fi.Mode().IsRegular() || size <= 0 || int64(int(size)) != size {
		return f, nil
	}
	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return f, nil
	}
	// the mapping outlives the descriptor
	f.Close()
	return &mapped{Reader: bytes.NewReader(data), data: data}, nil
}
