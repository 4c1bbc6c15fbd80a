// Package affinity pins the calling OS thread to a logical CPU.
//
// Callers must hold the thread with runtime.LockOSThread for as long as the
// pin is in effect and call the returned restore function before unlocking,
// otherwise the Go scheduler reuses a thread with a narrowed CPU mask.
package affinity
