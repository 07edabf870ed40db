package workers

type Workers struct {
	workers []Worker
}

// NewWorkers aggregates background workers. They are started in the
// order given when Run is called.
func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
