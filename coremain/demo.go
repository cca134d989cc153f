/*
 * Copyright (C) 2020-2022, IrineSistiana
 *
 * This file is part of ringlist.
 *
 * ringlist is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * ringlist is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <https://www.gnu.org/licenses/>.
 */

package coremain

import (
	"errors"
	"fmt"
	"github.com/IrineSistiana/ringlist/pkg/ring"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"go.uber.org/zap"
	"golang.org/x/exp/slices"
	"io"
)

// RunDemo builds a list as cfg.Demo describes, prints it to out and
// checks both iteration orders against a plain slice. At last the list
// is torn down and every node must have been released.
func RunDemo(cfg *Config, lg *zap.Logger, out io.Writer) error {
	dc := cfg.Demo
	l := ring.NewWithOpts[int](ring.Opts{
		MaxNodes: dc.MaxNodes,
		Logger:   lg.Named("ring"),
	})

	insert := l.TryInsertFront
	if dc.Mode == modeBack {
		insert = l.TryInsertBack
	}
	for _, v := range dc.Values {
		if err := insert(v); err != nil {
			return fmt.Errorf("failed to insert %d: %w", v, err)
		}
	}

	want := slices.Clone(dc.Values)
	if dc.Mode == modeFront {
		reverse(want)
	}

	for _, v := range dc.Delete {
		if err := l.Delete(v); err != nil {
			if errors.Is(err, ring.ErrNotFound) {
				lg.Warn("value not deleted", zap.Int("value", v), zap.Error(err))
				continue
			}
			return err
		}
		i := slices.Index(want, v)
		want = slices.Delete(want, i, i+1)
	}

	if err := l.Print(out, dc.PrintLimit); err != nil {
		return fmt.Errorf("failed to print list: %w", err)
	}

	if got := l.Values(); !slices.Equal(got, want) {
		return fmt.Errorf("unexpected forward order, want %v, got %v", want, got)
	}
	got := make([]int, 0, l.Len())
	it := l.IterRev()
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		got = append(got, v)
	}
	reverse(want)
	if !slices.Equal(got, want) {
		return fmt.Errorf("unexpected reverse order, want %v, got %v", want, got)
	}

	if dc.Metrics {
		if err := writeMetrics(out, ring.NewCollector(l, "ringlist")); err != nil {
			return fmt.Errorf("failed to write metrics: %w", err)
		}
	}

	n := l.Len()
	before := l.Stats()
	l.Clear()
	after := l.Stats()
	if released := after.Released - before.Released; released != uint64(n) || after.Live != 0 {
		return fmt.Errorf("teardown released %d of %d nodes, %d still live", released, n, after.Live)
	}

	lg.Info("demo finished",
		zap.String("mode", dc.Mode),
		zap.Int("nodes", n),
		zap.Uint64("allocated", after.Allocated),
		zap.Uint64("released", after.Released),
	)
	return nil
}

func writeMetrics(out io.Writer, c prometheus.Collector) error {
	reg := prometheus.NewRegistry()
	if err := reg.Register(c); err != nil {
		return err
	}
	mfs, err := reg.Gather()
	if err != nil {
		return err
	}
	for _, mf := range mfs {
		if _, err := expfmt.MetricFamilyToText(out, mf); err != nil {
			return err
		}
	}
	return nil
}

func reverse(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
