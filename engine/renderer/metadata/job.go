package metadata

import (
	"time"

	"github.com/google/uuid"
)

/** @brief Invoked on a worker goroutine when the job starts. A returned error fails the job. */
type JobStart func() error

/** @brief Invoked on the worker goroutine when the job successfully completes. */
type JobOnComplete func()

/** @brief Invoked on the worker goroutine when the job fails. */
type JobOnFailure func(err error)

/**
 * @brief Describes a job to be run by the job system.
 */
type JobTask struct {
	/** @brief Unique id of the job, used to correlate log lines. */
	ID uuid.UUID
	/** @brief Human readable name of the job. */
	Name string
	/** @brief When the job was handed to the job system. */
	Dispatched time.Time
	/** @brief Invoked when the job starts. Required. */
	OnStart JobStart
	/** @brief Invoked when the job successfully completes. Optional. */
	OnComplete JobOnComplete
	/** @brief Invoked when the job fails. Optional. */
	OnFailure JobOnFailure
}

func NewJobTask(name string, start JobStart, complete JobOnComplete, failure JobOnFailure) *JobTask {
	return &JobTask{
		ID:         uuid.New(),
		Name:       name,
		OnStart:    start,
		OnComplete: complete,
		OnFailure:  failure,
	}
}
