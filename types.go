// Copyright 2026 The lfq Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lfq

// Queue is the bool-contract interface satisfied by [MPMCSeq]: non-blocking
// Enqueue and Dequeue that report success or failure directly, rather than
// through a sentinel error.
//
// The interface intentionally excludes a length method because an accurate
// count in a lock-free queue requires expensive cross-core synchronization;
// [MPMCSeq.Empty] is the best-effort alternative this package provides.
//
// Example:
//
//	var q lfq.Queue[int] = lfq.NewMPMCSeq[int](1024)
//	if ok := q.Enqueue(42); !ok {
//	    // queue is full
//	}
//	v, ok := q.Dequeue()
type Queue[T any] interface {
	// Enqueue adds an element to the queue. It reports whether the value
	// was stored; false means the queue was observed full.
	Enqueue(value T) bool

	// Dequeue removes and returns the queue's oldest element. It reports
	// whether an element was available; false means the queue was
	// observed empty.
	Dequeue() (T, bool)

	// Cap returns the queue's fixed capacity.
	Cap() int
}
