// Copyright 2026 The lfq Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package lfq provides a bounded, multi-producer multi-consumer lock-free
// queue based on Dmitry Vyukov's sequenced-array-cells algorithm.
//
// # Quick Start
//
//	q := lfq.NewMPMCSeq[Request](1024)
//
//	if ok := q.Enqueue(req); !ok {
//	    // queue is full — caller decides whether to retry, drop, or block
//	}
//
//	req, ok := q.Dequeue()
//	if ok {
//	    process(req)
//	}
//
// # Contract
//
// Enqueue and Dequeue report success with a bool rather than an error: a
// false return means "full" or "empty" at the moment of the call, not a
// failure. There is no separate error-returning flavor in this package —
// every operational condition other than an invalid capacity is representable
// as a plain boolean, so a sentinel error would only be an extra layer over
// the same two states.
//
// Callers that want to compose Enqueue/Dequeue with an [code.hybscloud.com/iox]
// based retry policy can do so directly against the bool:
//
//	backoff := iox.Backoff{}
//	for !q.Enqueue(req) {
//	    backoff.Wait()
//	}
//	backoff.Reset()
//
// [ErrWouldBlock] and its classification helpers ([IsWouldBlock], [IsSemantic],
// [IsNonFailure]) are exported from this package for callers who wrap
// MPMCSeq behind their own error-returning interface (e.g. to satisfy a
// shared queue abstraction defined elsewhere in their codebase) and want a
// sentinel that composes with other [code.hybscloud.com/iox] based components;
// MPMCSeq itself never produces one.
//
// # Capacity
//
// Capacity must be an exact power of two, at least 2. [NewMPMCSeq] panics
// otherwise — the sequence-number protocol relies on masking a position with
// capacity-1 to fold it into a ring index, which only has the intended
// cyclic meaning when capacity is a power of two. Unlike a general-purpose
// allocator, this queue does not round up for the caller: picking the
// capacity is the caller's decision, and silently changing it under a
// "convenience" rounding would reallocate a different-sized ring than the
// caller asked for.
//
//	q := lfq.NewMPMCSeq[int](1024)  // ok
//	q := lfq.NewMPMCSeq[int](1000)  // panics: not a power of two
//
// Length is intentionally not provided: an accurate count in a lock-free
// queue requires expensive cross-core synchronization. [MPMCSeq.Empty] is a
// best-effort snapshot instead, built on the same diff-based check Enqueue
// and Dequeue already perform against the cell they are about to claim.
//
// # Thread Safety
//
// Any number of producer and consumer goroutines may call Enqueue and
// Dequeue concurrently against the same *MPMCSeq. There is no restriction on
// producer/consumer cardinality — every goroutine competes for a ticket via
// the same compare-and-swap loop on the shared cursor.
//
// # Graceful Shutdown
//
// There is no Drain method. The sequence-based algorithm has no threshold or
// livelock-prevention state to bypass — Dequeue already reports false, not a
// spurious block, the instant the queue is observed empty. Callers that need
// "stop enqueueing, then fully drain" compose it themselves: stop producer
// goroutines, wait for them with a sync.WaitGroup, then call Dequeue in a
// loop until it reports false.
//
// # Race Detection
//
// Go's race detector tracks happens-before edges established by mutexes,
// channels, and WaitGroup — not by acquire/release orderings on independent
// atomic variables. MPMCSeq's correctness depends entirely on the latter (the
// acquire load of a cell's sequence number synchronizes with the release
// store the previous occupant made on it), so the race detector can report
// false positives on tests that exercise it under real concurrency. This
// package exposes [RaceEnabled] (via a //go:build race / !race pair) so
// tests can skip the genuinely concurrent cases when run under -race rather
// than produce a false failure.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/atomix] for atomic primitives with
// explicit memory ordering (LoadAcquire, StoreRelease, CompareAndSwapRelaxed,
// and friends, so the intended ordering discipline is visible at each call
// site instead of being an unstated convention layered on sync/atomic's
// sequentially-consistent operations), [code.hybscloud.com/spin] for the
// CAS-retry loop's pause/backoff behavior, and [code.hybscloud.com/iox] for
// the exported error-classification helpers.
package lfq
