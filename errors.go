// Copyright 2025 the srsecrets authors
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

package srsecrets

import "errors"

// Sentinel errors shared by all subpackages. Functions wrap these with
// fmt.Errorf("%w: ...") so callers can classify failures with errors.Is
// without depending on message text.
var (
	// ErrValidation reports invalid input: out-of-range threshold or share
	// counts, empty secrets, mismatched slice lengths, duplicate share
	// indexes, or share sets that do not belong together.
	ErrValidation = errors.New("invalid input")

	// ErrArithmetic reports an undefined field operation, i.e. division by
	// zero in GF(2^8).
	ErrArithmetic = errors.New("arithmetic error")

	// ErrFormat reports malformed serialized data: invalid JSON or base64,
	// missing required fields, or values outside the field range.
	ErrFormat = errors.New("malformed encoding")

	// ErrIntegrity reports a share whose HMAC tag does not match its fields.
	ErrIntegrity = errors.New("integrity mismatch")
)
