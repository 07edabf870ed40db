// Package workers holds the background processes that run beside the
// HTTP surface, currently the periodic connection sync sweep. A Worker
// starts itself and returns; lifetime is bound to the context it was
// built with, so shutdown needs no per-worker plumbing.
package workers

// Worker is one background process. Run must not block: long-running
// workers spawn their loop on a goroutine and rely on their construction
// context for shutdown.
type Worker interface {
	Run()
}
