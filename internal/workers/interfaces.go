// Package workers runs the background jobs of the API, currently the
// asynchronous last-login recorder. The Workers aggregate starts every
// registered worker at boot and stops the stoppable ones on shutdown.
package workers

// Worker is a background job started once at application boot. Run must
// not block the caller: implementations spawn their own goroutines.
type Worker interface {
	Run()
}
