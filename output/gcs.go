// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package output

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// GCS is a Sink writing objects into a Cloud Storage bucket.
type GCS struct {
	client *storage.Client
	bucket *storage.BucketHandle
	prefix string
}

// NewGCS returns a Sink storing files as objects prefix/name in bucket.
// If credentials is empty, application default credentials are used.
func NewGCS(ctx context.Context, bucket, prefix, credentials string) (*GCS, error) {
	if bucket == "" {
		return nil, fmt.Errorf("missing Cloud Storage bucket name")
	}
	var opts []option.ClientOption
	if credentials != "" {
		opts = append(opts, option.WithCredentialsFile(credentials))
	}
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return &GCS{client: client, bucket: client.Bucket(bucket), prefix: prefix}, nil
}

func (g *GCS) Create(ctx context.Context, name string) (io.WriteCloser, error) {
	w := g.bucket.Object(path.Join(g.prefix, name)).NewWriter(ctx)
	if typ := mime.TypeByExtension(path.Ext(name)); typ != "" {
		w.ContentType = typ
	}
	return w, nil
}

func (g *GCS) Close() error {
	return g.client.Close()
}
