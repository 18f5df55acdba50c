// Copyright 2026 The lfq Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lfq

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// MPMCSeq is a bounded multi-producer multi-consumer lock-free queue based
// on Dmitry Vyukov's sequenced-array-cells algorithm.
//
// Each slot carries its own sequence number, which is the sole
// synchronization variable between the producer and consumer that rendezvous
// on it. Enqueue and Dequeue report success with a bool rather than an
// error, matching the source algorithm's contract exactly. It is the only
// queue type in this package and never returns the iox.ErrWouldBlock
// sentinel.
//
// Memory: n slots (64+ bytes per slot, depending on T).
type MPMCSeq[T any] struct {
	_        pad
	enqPos   atomix.Uint64
	_        pad
	deqPos   atomix.Uint64
	_        pad
	ring     []mpmcSeqCell[T]
	mask     uint64
	capacity uint64
}

type mpmcSeqCell[T any] struct {
	sequence atomix.Uint64
	payload  T
	_        padShort // pad to cache line
}

// NewMPMCSeq creates a bounded MPMC queue with the given capacity.
// Capacity must be a power of two and at least 2; NewMPMCSeq panics
// otherwise, since an invalid capacity is a programmer error, not an
// operational condition a caller can recover from.
func NewMPMCSeq[T any](capacity int) *MPMCSeq[T] {
	if capacity < 2 || capacity&(capacity-1) != 0 {
		panic("lfq: capacity must be a power of two and >= 2")
	}

	n := uint64(capacity)
	q := &MPMCSeq[T]{
		ring:     make([]mpmcSeqCell[T], n),
		mask:     n - 1,
		capacity: n,
	}
	for i := uint64(0); i < n; i++ {
		q.ring[i].sequence.StoreRelaxed(i)
	}
	return q
}

// Enqueue adds value to the queue. It reports whether the value was stored;
// it returns false immediately if the queue was observed full, without
// blocking or retrying beyond the CAS-contention loop on the producer
// cursor.
func (q *MPMCSeq[T]) Enqueue(value T) bool {
	sw := spin.Wait{}
	pos := q.enqPos.LoadRelaxed()
	for {
		c := &q.ring[pos&q.mask]
		seq := c.sequence.LoadAcquire()
		diff := int64(seq) - int64(pos)

		switch {
		case diff == 0:
			if q.enqPos.CompareAndSwapRelaxed(pos, pos+1) {
				c.payload = value
				c.sequence.StoreRelease(pos + 1)
				return true
			}
			pos = q.enqPos.LoadRelaxed()
		case diff < 0:
			return false
		default:
			pos = q.enqPos.LoadRelaxed()
		}
		sw.Once()
	}
}

// Dequeue removes and returns the queue's oldest element. It reports whether
// an element was available; it returns (zero-value, false) immediately if
// the queue was observed empty.
func (q *MPMCSeq[T]) Dequeue() (T, bool) {
	sw := spin.Wait{}
	pos := q.deqPos.LoadRelaxed()
	for {
		c := &q.ring[pos&q.mask]
		seq := c.sequence.LoadAcquire()
		diff := int64(seq) - int64(pos+1)

		switch {
		case diff == 0:
			if q.deqPos.CompareAndSwapRelaxed(pos, pos+1) {
				value := c.payload
				var zero T
				c.payload = zero
				c.sequence.StoreRelease(pos + q.capacity)
				return value, true
			}
			pos = q.deqPos.LoadRelaxed()
		case diff < 0:
			var zero T
			return zero, false
		default:
			pos = q.deqPos.LoadRelaxed()
		}
		sw.Once()
	}
}

// Cap returns the queue's fixed capacity N.
func (q *MPMCSeq[T]) Cap() int {
	return int(q.capacity)
}

// Empty reports whether the queue held no elements at some instant during
// the call. It is a best-effort snapshot, not a synchronization point: under
// concurrent activity the result may be stale by the time the caller
// observes it, though it never reports a state the queue's contract forbids.
func (q *MPMCSeq[T]) Empty() bool {
	sw := spin.Wait{}
	for {
		pos := q.deqPos.LoadRelaxed()
		c := &q.ring[pos&q.mask]
		seq := c.sequence.LoadAcquire()
		diff := int64(seq) - int64(pos+1)

		switch {
		case diff == 0:
			return false
		case diff < 0:
			return true
		default:
			sw.Once()
		}
	}
}
