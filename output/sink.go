// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package output

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// A Sink stores exported files.
type Sink interface {
	// Create returns a writer for the named file. The file is
	// complete once the writer is closed without error.
	Create(ctx context.Context, name string) (io.WriteCloser, error)
	// Close releases the resources of the sink.
	Close() error
}

// Dir is a Sink writing into a local directory, created on first use.
type Dir string

func (d Dir) Create(ctx context.Context, name string) (io.WriteCloser, error) {
	if err := os.MkdirAll(string(d), 0777); err != nil {
		return nil, err
	}
	return os.Create(filepath.Join(string(d), name))
}

func (d Dir) Close() error { return nil }

// OpenSink returns the Sink for dest, which is either a local
// directory or a "gs://bucket/prefix" Cloud Storage location.
// credentials optionally names a service account key file for
// Cloud Storage.
func OpenSink(ctx context.Context, dest, credentials string) (Sink, error) {
	if rest, ok := strings.CutPrefix(dest, "gs://"); ok {
		bucket, prefix, _ := strings.Cut(rest, "/")
		g, err := NewGCS(ctx, bucket, prefix, credentials)
		if err != nil {
			return nil, err
		}
		return g, nil
	}
	return Dir(dest), nil
}
