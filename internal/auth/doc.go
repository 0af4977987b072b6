// Package auth gates protected actions behind a shared password.
//
// The [Gate] stores a single credential: the [security.Digest] of the
// password, kept in a durable slot. It holds no session. Every protected
// action needs a fresh password entry.
//
// # Prompt lifecycle
//
// A protected action goes through an explicit state machine instead of ad-hoc
// prompt callbacks:
//
//	Idle → AwaitingInput → Authorized → Executing → Done → Idle
//	                     ↘ Denied → Idle
//	                     ↘ Cancelled → Idle
//
// [Gate.Request] opens a prompt and returns a [Pending]. The caller collects
// the password however it likes and calls [Pending.Resolve] or
// [Pending.Cancel]. Only one prompt may be outstanding at a time; a second
// Request fails with [ErrBusy] until the first one settles.
//
// Changing the password with [Gate.SetCredential] does not require the old
// one. Anyone with access to the command can reset it.
package auth
