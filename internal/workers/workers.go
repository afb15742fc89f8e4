package workers

// Workers aggregates background workers so the application can start them
// all in one place.
type Workers struct {
	LoginRecorder *LoginRecorder

	workers []Worker
}

// NewWorkers wires the application's background workers.
func NewWorkers(recorder *LoginRecorder) *Workers {
	return &Workers{
		LoginRecorder: recorder,
		workers:       []Worker{recorder},
	}
}

// Run starts every registered worker.
func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

// Stop shuts down every worker that supports graceful shutdown, waiting
// for in-flight work to drain.
func (w *Workers) Stop() {
	for _, worker := range w.workers {
		if s, ok := worker.(interface{ Stop() }); ok {
			s.Stop()
		}
	}
}
