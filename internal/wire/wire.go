// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package wire builds the exact byte sequences that the serde helper
// snippets emitted by internal/gen/guestjs are meant to read and write.
//
// It is test-support only: this generator never parses or writes this
// wire format itself, it only emits source text describing codecs for
// it. These helpers let golden and round-trip tests construct realistic
// inputs without re-deriving varint/zigzag encoding by hand in every
// test file.
package wire

import "google.golang.org/protobuf/encoding/protowire"

// AppendVarint appends an unsigned LEB128 varint to buf.
func AppendVarint(buf []byte, v uint64) []byte {
	return protowire.AppendVarint(buf, v)
}

// AppendZigZag32 appends a zigzag-encoded 32-bit signed integer to buf.
func AppendZigZag32(buf []byte, v int32) []byte {
	return protowire.AppendVarint(buf, protowire.EncodeZigZag(int64(v)))
}

// AppendZigZag64 appends a zigzag-encoded 64-bit signed integer to buf.
func AppendZigZag64(buf []byte, v int64) []byte {
	return protowire.AppendVarint(buf, protowire.EncodeZigZag(v))
}

// DecodeZigZag32 reverses [AppendZigZag32].
func DecodeZigZag32(v uint64) int32 {
	return int32(protowire.DecodeZigZag(v))
}

// DecodeZigZag64 reverses [AppendZigZag64].
func DecodeZigZag64(v uint64) int64 {
	return protowire.DecodeZigZag(v)
}

// ConsumeVarint reads a single varint off the front of buf, returning the
// decoded value and the number of bytes consumed. n is negative on error,
// mirroring [protowire.ConsumeVarint].
func ConsumeVarint(buf []byte) (v uint64, n int) {
	return protowire.ConsumeVarint(buf)
}

// AppendString appends a length-prefixed UTF-8 string to buf, in the shape
// the emitted STRING serde helper expects: a varint byte length followed by
// the raw bytes.
func AppendString(buf []byte, s string) []byte {
	buf = protowire.AppendVarint(buf, uint64(len(s)))
	return append(buf, s...)
}

// AppendBytes appends a length-prefixed byte string to buf, in the shape the
// emitted BYTES serde helper expects.
func AppendBytes(buf []byte, b []byte) []byte {
	buf = protowire.AppendVarint(buf, uint64(len(b)))
	return append(buf, b...)
}
