package systems

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/spaghettifunk/litecraft/engine/containers"
	"github.com/spaghettifunk/litecraft/engine/core"
	"github.com/spaghettifunk/litecraft/engine/renderer/metadata"
)

// DefaultWorkerCount is the number of decode workers used when none is configured.
const DefaultWorkerCount = 6

var ErrNoWorkers = fmt.Errorf("attempting to create worker pool with less than 1 worker")
var ErrJobSystemShutdown = errors.New("job system is shut down")

// JobSystem runs jobs on a fixed set of worker goroutines. The queue in front of
// the workers is unbounded, so submitting never blocks.
type JobSystem struct {
	numWorkers int
	jobQueue   *containers.Queue[*metadata.JobTask]
	wg         sync.WaitGroup
}

func NewJobSystem(numWorkers int) (*JobSystem, error) {
	if numWorkers <= 0 {
		return nil, ErrNoWorkers
	}

	js := &JobSystem{
		numWorkers: numWorkers,
		jobQueue:   containers.NewQueue[*metadata.JobTask](64),
	}

	js.start()

	return js, nil
}

func (js *JobSystem) start() {
	for i := 0; i < js.numWorkers; i++ {
		js.wg.Add(1)
		go func() {
			defer js.wg.Done()
			for {
				job, ok := js.jobQueue.Pop()
				if !ok {
					return
				}
				js.run(job)
			}
		}()
	}
}

func (js *JobSystem) run(job *metadata.JobTask) {
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("job %s (%s) panicked: %v", job.Name, job.ID, r)
			core.LogError(err.Error())
			if job.OnFailure != nil {
				job.OnFailure(err)
			}
		}
	}()

	if err := job.OnStart(); err != nil {
		core.LogError("job %s (%s) failed: %s", job.Name, job.ID, err)
		if job.OnFailure != nil {
			job.OnFailure(err)
		}
		return
	}
	if job.OnComplete != nil {
		job.OnComplete()
	}
	core.LogDebug("job %s (%s) done in %s", job.Name, job.ID, time.Since(job.Dispatched))
}

/**
 * @brief Shuts the job system down. Jobs already submitted still run, the call
 * returns once every worker exited.
 */
func (js *JobSystem) Shutdown() error {
	js.jobQueue.Close()
	js.wg.Wait()
	return nil
}

/**
 * @brief Submits the provided job to be queued for execution.
 * @param jt The description of the job to be executed.
 */
func (js *JobSystem) Submit(jt *metadata.JobTask) error {
	if jt.OnStart == nil {
		return fmt.Errorf("job %s has no entry point", jt.Name)
	}
	if jt.Dispatched.IsZero() {
		jt.Dispatched = time.Now()
	}
	if !js.jobQueue.Push(jt) {
		return ErrJobSystemShutdown
	}
	return nil
}

// Workers returns the number of worker goroutines.
func (js *JobSystem) Workers() int {
	return js.numWorkers
}

// Queued returns the number of jobs waiting for a worker.
func (js *JobSystem) Queued() int {
	return js.jobQueue.Len()
}
