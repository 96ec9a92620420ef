// Copyright 2024 FeatureBaseDB, Inc.
// SPDX-License-Identifier: Apache-2.0
package tiledb

// CompletionFunc is invoked synchronously, exactly once per terminal
// transition to COMPLETED, before status is exposed to the caller.
type CompletionFunc func(userData interface{})

// QueryStateMachine owns a Query's status and its transition rules. It
// has no knowledge of Reader/Writer internals; callers drive it with
// closures that perform the actual delegated engine call and report the
// outcome.
type QueryStateMachine struct {
	status   QueryStatus
	callback CompletionFunc
	userData interface{}
}

// NewQueryStateMachine returns a state machine in the UNINITIALIZED
// state.
func NewQueryStateMachine() *QueryStateMachine {
	return &QueryStateMachine{status: UNINITIALIZED}
}

// Status returns the current status.
func (sm *QueryStateMachine) Status() QueryStatus { return sm.status }

// SetCallback registers the completion callback and its opaque user data.
func (sm *QueryStateMachine) SetCallback(fn CompletionFunc, userData interface{}) {
	sm.callback = fn
	sm.userData = userData
}

// Reset returns the state machine to UNINITIALIZED. Called whenever
// set_subarray succeeds.
func (sm *QueryStateMachine) Reset() {
	sm.status = UNINITIALIZED
}

// Init transitions UNINITIALIZED to INPROGRESS, delegating to engineInit
// only on the first entry. Re-entry from any other state is a no-op that
// (re-)sets INPROGRESS, matching the literal transition table's
// "idempotent re-entry" rule.
func (sm *QueryStateMachine) Init(engineInit func() error) error {
	if sm.status == UNINITIALIZED {
		if err := engineInit(); err != nil {
			return err
		}
	}
	sm.status = INPROGRESS
	return nil
}

// Process drives one step of work. step reports whether the engine has
// reached terminal completion, or (READ only) that the buffer was
// exhausted before completion (incomplete). process() on UNINITIALIZED
// fails with NotInitialized; process() on a FAILED (cancelled) query is a
// no-op returning OK, per the cancellation contract.
func (sm *QueryStateMachine) Process(step func() (completed bool, incomplete bool, err error)) error {
	if sm.status == UNINITIALIZED {
		return newErrNotInitialized()
	}
	if sm.status == FAILED {
		return nil
	}

	completed, incomplete, err := step()
	if err != nil {
		sm.status = FAILED
		return err
	}
	if incomplete {
		sm.status = INCOMPLETE
		return nil
	}
	if completed {
		if sm.callback != nil {
			sm.callback(sm.userData)
		}
		sm.status = COMPLETED
		return nil
	}
	sm.status = INPROGRESS
	return nil
}

// Finalize commits a WRITE's fragment (or is a symmetric no-op for READ,
// per the engine's own Finalize). UNINITIALIZED and FAILED are no-ops
// that return OK: the former per the transition table, the latter per
// the cancellation contract ("a subsequent finalize() on a FAILED
// query is a no-op that returns OK").
func (sm *QueryStateMachine) Finalize(engineFinalize func() error) error {
	if sm.status == UNINITIALIZED || sm.status == FAILED {
		return nil
	}
	if err := engineFinalize(); err != nil {
		sm.status = FAILED
		return err
	}
	sm.status = COMPLETED
	return nil
}

// Cancel is best-effort and idempotent: it unconditionally sets FAILED
// and returns OK. It does not interrupt an in-flight engine call.
func (sm *QueryStateMachine) Cancel() error {
	sm.status = FAILED
	return nil
}

// setStatus forcibly installs a status without going through any
// transition rule. Used by Query.Copy to replicate status onto a
// freshly constructed state machine.
func (sm *QueryStateMachine) setStatus(s QueryStatus) {
	sm.status = s
}
