// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package output implements what happens to finished figures: showing
// them, exporting them to files, or dumping their data.
package output

import (
	"context"

	"go.uber.org/multierr"

	"github.com/pcomm/bwplot/chart"
)

// A Strategy receives the figures of a run.
//
// Add is called once per figure, in sweep order. Finish is called once
// after the last figure, and only if every Add succeeded. Figures must
// not be modified after they are passed to Add.
type Strategy interface {
	Add(ctx context.Context, f *chart.Figure) error
	Finish(ctx context.Context) error
}

// Multi sends every figure to each of its strategies in turn.
type Multi []Strategy

func (m Multi) Add(ctx context.Context, f *chart.Figure) error {
	for _, s := range m {
		if err := s.Add(ctx, f); err != nil {
			return err
		}
	}
	return nil
}

// Finish finishes every strategy, even if some fail, and returns the
// combined errors.
func (m Multi) Finish(ctx context.Context) error {
	var err error
	for _, s := range m {
		err = multierr.Append(err, s.Finish(ctx))
	}
	return err
}
