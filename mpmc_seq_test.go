// Copyright 2026 The lfq Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lfq_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"code.hybscloud.com/iox"
	"github.com/ringcell/lfq"
)

func TestMPMCSeqImplementsQueue(t *testing.T) {
	var _ lfq.Queue[int] = lfq.NewMPMCSeq[int](8)
}

func TestMPMCSeqBasic(t *testing.T) {
	q := lfq.NewMPMCSeq[int](4)

	if q.Cap() != 4 {
		t.Fatalf("Cap: got %d, want 4", q.Cap())
	}
	if !q.Empty() {
		t.Fatal("new queue must be empty")
	}

	for i := range 4 {
		if ok := q.Enqueue(i + 100); !ok {
			t.Fatalf("Enqueue(%d): reported full", i)
		}
	}

	if q.Empty() {
		t.Fatal("full queue must not report empty")
	}
	if ok := q.Enqueue(999); ok {
		t.Fatal("Enqueue on full queue must report false")
	}

	for i := range 4 {
		val, ok := q.Dequeue()
		if !ok {
			t.Fatalf("Dequeue(%d): reported empty", i)
		}
		if val != i+100 {
			t.Fatalf("Dequeue(%d): got %d, want %d", i, val, i+100)
		}
	}

	if !q.Empty() {
		t.Fatal("drained queue must report empty")
	}
	if _, ok := q.Dequeue(); ok {
		t.Fatal("Dequeue on empty queue must report false")
	}
}

func TestMPMCSeqCapacityMustBePowerOfTwo(t *testing.T) {
	for _, n := range []int{0, 1, 3, 5, 6, 7, 9, 100} {
		func() {
			defer func() {
				if r := recover(); r == nil {
					t.Fatalf("NewMPMCSeq(%d) did not panic", n)
				}
			}()
			lfq.NewMPMCSeq[int](n)
		}()
	}
}

func TestMPMCSeqWrapAround(t *testing.T) {
	q := lfq.NewMPMCSeq[int](4)

	for round := range 1000 {
		for i := range 4 {
			if ok := q.Enqueue(round*4 + i); !ok {
				t.Fatalf("round %d enqueue %d: reported full", round, i)
			}
		}
		for i := range 4 {
			val, ok := q.Dequeue()
			if !ok {
				t.Fatalf("round %d dequeue %d: reported empty", round, i)
			}
			expected := round*4 + i
			if val != expected {
				t.Fatalf("round %d dequeue %d: got %d, want %d", round, i, val, expected)
			}
		}
	}
}

// TestMPMCSeqConcurrentNoLossNoDuplication runs multiple producers and
// consumers against a shared MPMCSeq and checks every enqueued value is
// dequeued exactly once.
func TestMPMCSeqConcurrentNoLossNoDuplication(t *testing.T) {
	if lfq.RaceEnabled {
		t.Skip("lock-free memory ordering is not observable by the race detector")
	}

	const (
		producers   = 4
		consumers   = 4
		perProducer = 100000
		capacity    = 8
	)
	total := producers * perProducer

	q := lfq.NewMPMCSeq[int](capacity)

	var consumed atomic.Int64
	seen := make([]atomic.Bool, total)

	var producerWg, consumerWg sync.WaitGroup
	producerWg.Add(producers)
	consumerWg.Add(consumers)

	for p := range producers {
		go func(p int) {
			defer producerWg.Done()
			backoff := iox.Backoff{}
			for i := range perProducer {
				v := p*perProducer + i
				for !q.Enqueue(v) {
					backoff.Wait()
				}
				backoff.Reset()
			}
		}(p)
	}

	for range consumers {
		go func() {
			defer consumerWg.Done()
			backoff := iox.Backoff{}
			for consumed.Load() < int64(total) {
				v, ok := q.Dequeue()
				if !ok {
					backoff.Wait()
					continue
				}
				backoff.Reset()
				if v < 0 || v >= total {
					t.Errorf("dequeued out-of-range value %d", v)
					continue
				}
				if !seen[v].CompareAndSwap(false, true) {
					t.Errorf("value %d dequeued more than once", v)
					continue
				}
				consumed.Add(1)
			}
		}()
	}

	producerWg.Wait()
	consumerWg.Wait()

	for i := range seen {
		if !seen[i].Load() {
			t.Fatalf("value %d was never dequeued", i)
		}
	}
	if consumed.Load() != int64(total) {
		t.Fatalf("consumed %d items, want %d", consumed.Load(), total)
	}
}
