// Copyright 2026 The lfq Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lfq

// pad is cache line padding to prevent false sharing between independently
// mutated 8-byte fields (enqPos, deqPos).
type pad [64]byte

// padShort is padding to fill a cache line after an 8-byte sequence field.
// The payload size is not subtracted, so a ring cell occupies 64 bytes plus
// the size of its payload, which keeps the sequence fields of neighboring
// cells at least a cache line apart.
type padShort [64 - 8]byte
