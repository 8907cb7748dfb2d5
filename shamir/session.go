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

package shamir

import (
	"fmt"
	"unicode/utf8"

	"github.com/golang/glog"
	srsecrets "github.com/samuraisatoshi/srsecrets-sub003"
	"github.com/samuraisatoshi/srsecrets-sub003/gf256"
	"github.com/samuraisatoshi/srsecrets-sub003/share"
)

// SessionState is the lifecycle state of a Session.
type SessionState int

const (
	// Collecting is the initial state: the session accepts share sets.
	Collecting SessionState = iota
	// Reconstructed is reached once enough consistent share sets arrived
	// and the secret was recovered. Only Reset leaves this state.
	Reconstructed
)

func (s SessionState) String() string {
	switch s {
	case Collecting:
		return "collecting"
	case Reconstructed:
		return "reconstructed"
	default:
		return "unknown"
	}
}

// Session incrementally collects share sets for an interactive
// reconstruction workflow: shares arrive one at a time (scanned, typed or
// pasted by participants) and the session reconstructs as soon as the
// threshold is met. A Session is not safe for concurrent use.
type Session struct {
	threshold   int
	totalShares int
	recon       *Reconstructor
	sets        []share.Set
	seen        map[int]bool
	state       SessionState
	secret      []byte
}

// NewSession returns a Session expecting share sets generated under the
// given scheme parameters.
func NewSession(field *gf256.Field, threshold, totalShares int) (*Session, error) {
	if err := validateScheme(threshold, totalShares); err != nil {
		return nil, err
	}
	return &Session{
		threshold:   threshold,
		totalShares: totalShares,
		recon:       NewReconstructor(field),
		seen:        make(map[int]bool),
	}, nil
}

// AddShareSet offers a share set to the session and reports whether it
// advanced the session. A set whose scheme parameters mismatch the
// session's is rejected with an error and no mutation. A duplicate share
// index returns (false, nil) without mutation. An accepted set is
// appended; once the collected count reaches the threshold the session
// attempts reconstruction: on success it transitions to Reconstructed and
// returns (true, nil), on failure it stays in Collecting and returns
// (false, err) with the cause.
func (s *Session) AddShareSet(set share.Set) (bool, error) {
	if set.Metadata.Threshold != s.threshold || set.Metadata.TotalShares != s.totalShares {
		return false, fmt.Errorf("%w: share set was generated for a %d-of-%d scheme, session expects %d-of-%d",
			srsecrets.ErrValidation, set.Metadata.Threshold, set.Metadata.TotalShares, s.threshold, s.totalShares)
	}
	if s.seen[set.Metadata.ShareIndex] {
		glog.V(1).Infof("Ignoring duplicate share index %d", set.Metadata.ShareIndex)
		return false, nil
	}
	s.sets = append(s.sets, set)
	s.seen[set.Metadata.ShareIndex] = true
	glog.V(1).Infof("Collected share %d (%d of %d needed)", set.Metadata.ShareIndex, len(s.sets), s.threshold)

	if s.state != Collecting || len(s.sets) < s.threshold {
		return true, nil
	}
	secret, err := s.recon.ReconstructFromShareSets(s.sets)
	if err != nil {
		glog.Warningf("Reconstruction with %d shares failed: %v", len(s.sets), err)
		return false, err
	}
	s.secret = secret
	s.state = Reconstructed
	return true, nil
}

// State returns the session's lifecycle state.
func (s *Session) State() SessionState {
	return s.state
}

// SharesCollected returns the number of distinct share sets accepted.
func (s *Session) SharesCollected() int {
	return len(s.sets)
}

// SharesNeeded returns how many more share sets are required to reach the
// threshold.
func (s *Session) SharesNeeded() int {
	if n := s.threshold - len(s.sets); n > 0 {
		return n
	}
	return 0
}

// Progress returns collection progress in [0, 1].
func (s *Session) Progress() float64 {
	p := float64(len(s.sets)) / float64(s.threshold)
	if p > 1 {
		return 1
	}
	return p
}

// CanReconstruct reports whether the threshold has been met.
func (s *Session) CanReconstruct() bool {
	return len(s.sets) >= s.threshold
}

// SecretBytes returns a copy of the reconstructed secret, or false while
// the session is still collecting.
func (s *Session) SecretBytes() ([]byte, bool) {
	if s.state != Reconstructed {
		return nil, false
	}
	return append([]byte(nil), s.secret...), true
}

// SecretString returns the reconstructed secret as a string. It returns
// false while collecting, and also when the recovered bytes are not valid
// UTF-8.
func (s *Session) SecretString() (string, bool) {
	if s.state != Reconstructed || !utf8.Valid(s.secret) {
		return "", false
	}
	return string(s.secret), true
}

// Reset discards all collected shares and any reconstructed secret and
// returns the session to Collecting.
func (s *Session) Reset() {
	clear(s.secret)
	s.secret = nil
	s.sets = nil
	s.seen = make(map[int]bool)
	s.state = Collecting
}
