package gate

import (
	"context"
	"encoding/json"

	"github.com/relforge/relforge/internal/core/ports"
)

// pipelineExecutionSucceeded is the terminal success status reported by the
// pipeline API.
const pipelineExecutionSucceeded = "SUCCEEDED"

// PipelineStatus implements ports.TriggerStatus by polling a pipeline
// execution resource. It is the delegate wrapped by a trigger-poll status.
type PipelineStatus struct {
	source     ports.StatusSource
	path       string
	finishedOk bool
}

// NewPipelineStatus creates a delegate status polling the given resource.
func NewPipelineStatus(source ports.StatusSource, path string) *PipelineStatus {
	return &PipelineStatus{
		source: source,
		path:   path,
	}
}

// Refresh re-queries the pipeline resource. A non-2xx response or a payload
// without a terminal status leaves the delegate unfinished; only a reported
// SUCCEEDED execution flips FinishedOK.
func (s *PipelineStatus) Refresh(ctx context.Context) error {
	if s.finishedOk {
		return nil
	}

	resp, err := s.source.Get(ctx, s.path)
	if err != nil {
		return err
	}
	if !resp.OK() {
		return nil
	}

	var payload struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(resp.Body, &payload); err != nil {
		// The execution may not exist yet; an unparsable body is treated as
		// not-finished rather than a poll failure.
		return nil
	}

	s.finishedOk = payload.Status == pipelineExecutionSucceeded
	return nil
}

// FinishedOK reports whether the pipeline execution has succeeded.
func (s *PipelineStatus) FinishedOK() bool {
	return s.finishedOk
}
