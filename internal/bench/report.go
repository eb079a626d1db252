// Copyright (c) The modprod Authors. All rights reserved.
// Licensed under the MIT License.

package bench

import (
	"fmt"
	"io"

	"github.com/modprod/modprod-go"
)

// WriteText renders the report in a line-oriented form: host, run parameters,
// one line per strategy with its best elapsed time and product, and the
// ranking.
func (r *Report) WriteText(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "cpu: %s (%d physical / %d logical cores)\n",
		r.Host.CPU, r.Host.PhysicalCores, r.Host.LogicalCores); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "size=%d workers=%d zeroIndex=%d repetitions=%d modulus=%d\n",
		r.Spec.Size, r.Spec.Workers, r.Spec.ZeroIndex, r.Spec.Repetitions, modprod.Modulus); err != nil {
		return err
	}
	for _, s := range r.Summaries {
		if _, err := fmt.Fprintf(w, "%-14s completed in %v. Product = %d\n",
			s.Strategy, s.Best, s.Product); err != nil {
			return err
		}
	}
	if len(r.Ranked) > 0 {
		if _, err := fmt.Fprintf(w, "fastest: %s\n", r.Ranked[0]); err != nil {
			return err
		}
	}
	return nil
}
