// Package shell owns command execution over one persistent shell session.
//
// Ownership boundary:
// - attempt-list construction from command templates
// - sequential queue execution with accept/retry/abort policy
// - result aggregation and exit-status judgment
//
// The session's stream pair arrives from the outside (session manager); this
// package never spawns or supervises the shell process. A Conn binds the
// stream pair to the lock that keeps the conversation ordered, so every Shell
// sharing one session must share one Conn.
//
// Run blocks until the queue drains or aborts. There is no timeout or
// cancellation at this layer: a shell that stops answering blocks the caller
// until the underlying stream fails.
package shell
