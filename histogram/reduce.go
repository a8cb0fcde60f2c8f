// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package histogram

import "github.com/disorderedmaterials/dissolve-sub007/pool"

// AllSum reduces this histogram's bin counts across all ranks of p, for
// combining partial tallies from disjoint atom-pair subsets (spec §5)
func (o *Histogram) AllSum(p pool.ProcessPool) {
	buf := make([]float64, len(o.bins)+2)
	for i, c := range o.bins {
		buf[i] = float64(c)
	}
	buf[len(o.bins)] = float64(o.total)
	buf[len(o.bins)+1] = float64(o.outOfRange)

	p.AllSum(buf)

	for i := range o.bins {
		o.bins[i] = int(buf[i])
	}
	o.total = int(buf[len(o.bins)])
	o.outOfRange = int(buf[len(o.bins)+1])
}
