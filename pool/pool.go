// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pool defines the ranked process-pool boundary collaborator (spec
// §5/§6) and a concrete implementation over github.com/cpmech/gosl/mpi.
package pool

import (
	"math"

	"github.com/cpmech/gosl/mpi"
)

// ProcessPool is the boundary interface the core uses for its three contact
// points with the surrounding parallel application: broadcast, all-reduce
// sum, and an equality diagnostic.
type ProcessPool interface {
	// Rank returns this process's rank
	Rank() int
	// Size returns the number of ranks in the pool
	Size() int
	// Broadcast replicates data from root to all ranks, in place
	Broadcast(data []float64, root int)
	// AllSum reduces data element-wise (sum) across all ranks, in place
	AllSum(data []float64)
	// Equality returns false if the values of any two ranks differ by more
	// than tol
	Equality(value, tol float64) bool
}

// MPIPool implements ProcessPool over gosl/mpi
type MPIPool struct{}

// New returns the MPI-backed process pool. mpi.Start/mpi.Stop bracket the
// whole run (see cmd/refine), not this constructor.
func New() *MPIPool { return &MPIPool{} }

// Rank returns mpi.Rank()
func (o *MPIPool) Rank() int { return mpi.Rank() }

// Size returns mpi.Size()
func (o *MPIPool) Size() int { return mpi.Size() }

// Broadcast replicates data from rank 0 using mpi.BcastFromRoot. The root
// argument is not used: a root other than 0 is not honoured.
func (o *MPIPool) Broadcast(data []float64, root int) {
	if !mpi.IsOn() {
		return
	}
	mpi.BcastFromRoot(data)
}

// AllSum reduces data element-wise across ranks using mpi.AllReduceSum
func (o *MPIPool) AllSum(data []float64) {
	if !mpi.IsOn() {
		return
	}
	tmp := make([]float64, len(data))
	copy(tmp, data)
	mpi.AllReduceSum(data, tmp)
}

// Equality checks, via an all-reduce min/max round-trip, that every rank
// carries the same value within tol
func (o *MPIPool) Equality(value, tol float64) bool {
	if !mpi.IsOn() {
		return true
	}
	minBuf := []float64{value}
	maxBuf := []float64{value}
	minTmp := make([]float64, 1)
	maxTmp := make([]float64, 1)
	mpi.AllReduceMin(minBuf, minTmp)
	mpi.AllReduceMax(maxBuf, maxTmp)
	return math.Abs(maxBuf[0]-minBuf[0]) <= tol
}

// SerialPool is a no-op ProcessPool for single-process runs and tests: every
// broadcast/reduction is already consistent with itself.
type SerialPool struct{}

// Rank always returns 0
func (o *SerialPool) Rank() int { return 0 }

// Size always returns 1
func (o *SerialPool) Size() int { return 1 }

// Broadcast is a no-op
func (o *SerialPool) Broadcast(data []float64, root int) {}

// AllSum is a no-op: the single rank's data is already the sum
func (o *SerialPool) AllSum(data []float64) {}

// Equality always holds for a single rank
func (o *SerialPool) Equality(value, tol float64) bool { return true }
