// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package httpmsg

// BodyChain accumulates a request (or response) body as a sequence of
// byte chunks rather than one growing buffer. Chunks are appended as they
// arrive off the wire; Bytes() flattens them on demand rather than on
// every Append.
type BodyChain struct {
	chunks [][]byte
	size   int
}

// Append copies p and adds it as the next chunk. Appending a zero-length
// chunk is a no-op.
func (b *BodyChain) Append(p []byte) {
	if len(p) == 0 {
		return
	}
	cp := make([]byte, len(p))
	copy(cp, p)
	b.chunks = append(b.chunks, cp)
	b.size += len(cp)
}

// Len returns the total accumulated byte count.
func (b *BodyChain) Len() int {
	if b == nil {
		return 0
	}
	return b.size
}

// Bytes flattens the chain into a single contiguous slice.
func (b *BodyChain) Bytes() []byte {
	if b == nil || b.size == 0 {
		return nil
	}
	out := make([]byte, 0, b.size)
	for _, c := range b.chunks {
		out = append(out, c...)
	}
	return out
}
