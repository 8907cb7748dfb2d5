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

// Package srsecrets implements t-of-n [Shamir Secret Sharing] (SSS) over
// GF(2^8) for byte, byte-slice and string secrets. A secret is split into n
// shares such that any t of them reconstruct it exactly while t-1 reveal
// nothing about it.
//
// The root package holds the error taxonomy shared by the subpackages:
//
//   - [gf256] provides the finite field arithmetic and Lagrange
//     interpolation.
//   - [securerandom] provides the CSPRNG used for polynomial coefficients
//     and evaluation points.
//   - [polynomial] generates and evaluates the sharing polynomials.
//   - [share] defines the share data types, their JSON/base64 codec and the
//     HMAC integrity tags.
//   - [shamir] orchestrates splitting, reconstruction and interactive
//     share collection.
//
// This scheme is secure under the following assumptions:
//   - The scheme requires a trusted dealer to generate the shares.
//     Participants must trust the dealer with access to the secret and to
//     properly generate the shares.
//   - The scheme assumes a passive adversary which can observe (n - t)
//     shares without being able to reconstruct the secret. An adversary who
//     is allowed to contribute a chosen share to reconstruction can corrupt
//     the result undetected.
//
// [Shamir Secret Sharing]: https://web.mit.edu/6.857/OldStuff/Fall03/ref/Shamir-HowToShareAsecrets.pdf
package srsecrets
