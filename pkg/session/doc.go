// Package session coordinates access to portrait preview sessions.
//
// A session is one character preview an author has open: its visibility
// snapshot and directive history, addressed by ID. The Manager serializes
// access per session (in-process mutexes with reference counting, plus an
// optional distributed locker for multi-instance setups) and delegates
// persistence to a ports.StateStore.
package session
