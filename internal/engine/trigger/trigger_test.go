package trigger_test

import (
	"context"
	"errors"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/relforge/relforge/internal/core/domain"
	"github.com/relforge/relforge/internal/core/ports/mocks"
	"github.com/relforge/relforge/internal/engine/trigger"
)

func acceptedResponse() *domain.TriggerResponse {
	return &domain.TriggerResponse{StatusCode: 200, Body: []byte(`{"ref":"01ABCDEF"}`)}
}

func TestExecute_UploadContents(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockObjectStore(ctrl)
	source := mocks.NewMockStatusSource(ctrl)
	delegate := mocks.NewMockTriggerStatus(ctrl)

	store.EXPECT().
		UploadString(gomock.Any(), "builds", "triggers/run.json", []byte(`{"run":1}`)).
		Return(nil)
	source.EXPECT().Get(gomock.Any(), "/executions/42").Return(acceptedResponse(), nil)

	op := trigger.NewUploadOperation(store, source, delegate, trigger.Params{
		Bucket:     "builds",
		UploadPath: "triggers/run.json",
		Contents:   []byte(`{"run":1}`),
		StatusPath: "/executions/42",
	})
	assert.NotEmpty(t, op.ID())

	status, err := op.Execute(context.Background())
	require.NoError(t, err)
	require.NotNil(t, status)
	assert.False(t, status.Finished())
	assert.Equal(t, acceptedResponse(), status.TriggerResponse())
}

func TestExecute_UploadFilePreferred(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockObjectStore(ctrl)
	source := mocks.NewMockStatusSource(ctrl)
	delegate := mocks.NewMockTriggerStatus(ctrl)

	// With a local file set, the inline contents are never used.
	store.EXPECT().
		UploadFile(gomock.Any(), "builds", "triggers/run.json", "/tmp/payload.json").
		Return(nil)
	source.EXPECT().Get(gomock.Any(), "/executions/42").Return(acceptedResponse(), nil)

	op := trigger.NewUploadOperation(store, source, delegate, trigger.Params{
		Bucket:     "builds",
		UploadPath: "triggers/run.json",
		LocalFile:  "/tmp/payload.json",
		StatusPath: "/executions/42",
	})

	_, err := op.Execute(context.Background())
	require.NoError(t, err)
}

func TestExecute_UploadFailureIsAtomic(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockObjectStore(ctrl)
	// No expectations on source or delegate: a failed upload must not reach
	// the status source at all.
	source := mocks.NewMockStatusSource(ctrl)
	delegate := mocks.NewMockTriggerStatus(ctrl)

	store.EXPECT().
		UploadString(gomock.Any(), "builds", "triggers/run.json", gomock.Any()).
		Return(errors.New("connection reset"))

	op := trigger.NewUploadOperation(store, source, delegate, trigger.Params{
		Bucket:     "builds",
		UploadPath: "triggers/run.json",
		Contents:   []byte(`{}`),
		StatusPath: "/executions/42",
	})

	status, err := op.Execute(context.Background())
	assert.Nil(t, status)
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to upload trigger object")
}

func TestExecute_StatusLookupFailureIsAtomic(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockObjectStore(ctrl)
	source := mocks.NewMockStatusSource(ctrl)
	delegate := mocks.NewMockTriggerStatus(ctrl)

	store.EXPECT().UploadString(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	source.EXPECT().Get(gomock.Any(), "/executions/42").Return(nil, errors.New("gateway unavailable"))

	op := trigger.NewUploadOperation(store, source, delegate, trigger.Params{
		Bucket:     "builds",
		UploadPath: "triggers/run.json",
		Contents:   []byte(`{}`),
		StatusPath: "/executions/42",
	})

	status, err := op.Execute(context.Background())
	assert.Nil(t, status)
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to query status source")
}

func executeStatus(t *testing.T, source *mocks.MockStatusSource, store *mocks.MockObjectStore, delegate *mocks.MockTriggerStatus) *trigger.Status {
	t.Helper()

	store.EXPECT().UploadString(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	source.EXPECT().Get(gomock.Any(), "/executions/42").Return(acceptedResponse(), nil)

	op := trigger.NewUploadOperation(store, source, delegate, trigger.Params{
		Bucket:     "builds",
		UploadPath: "triggers/run.json",
		Contents:   []byte(`{}`),
		StatusPath: "/executions/42",
	})

	status, err := op.Execute(context.Background())
	require.NoError(t, err)
	return status
}

func TestRefresh_DelegateFailurePropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockObjectStore(ctrl)
	source := mocks.NewMockStatusSource(ctrl)
	delegate := mocks.NewMockTriggerStatus(ctrl)
	status := executeStatus(t, source, store, delegate)

	delegate.EXPECT().Refresh(gomock.Any()).Return(errors.New("poll failed"))

	err := status.Refresh(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to refresh trigger status")

	// A failed refresh leaves the status unfinished.
	assert.False(t, status.Finished())
	assert.False(t, status.FinishedOK())
	assert.False(t, status.TimedOut())
}

func TestRefresh_SuccessIsSticky(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockObjectStore(ctrl)
	source := mocks.NewMockStatusSource(ctrl)
	delegate := mocks.NewMockTriggerStatus(ctrl)
	status := executeStatus(t, source, store, delegate)

	// The delegate is consulted exactly once; after the execution finishes,
	// further refreshes never touch it again.
	delegate.EXPECT().Refresh(gomock.Any()).Return(nil).Times(1)
	delegate.EXPECT().FinishedOK().Return(true).Times(1)

	require.NoError(t, status.Refresh(context.Background()))
	assert.True(t, status.Finished())
	assert.True(t, status.FinishedOK())
	assert.False(t, status.TimedOut())

	require.NoError(t, status.Refresh(context.Background()))
	assert.True(t, status.FinishedOK())
}

func TestRefresh_TimeoutElapses(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := mocks.NewMockObjectStore(ctrl)
		source := mocks.NewMockStatusSource(ctrl)
		delegate := mocks.NewMockTriggerStatus(ctrl)
		status := executeStatus(t, source, store, delegate)
		status.SetTimeout(time.Second)

		delegate.EXPECT().Refresh(gomock.Any()).Return(nil).Times(2)
		delegate.EXPECT().FinishedOK().Return(false).Times(2)

		// Within the window: not finished, not timed out.
		time.Sleep(500 * time.Millisecond)
		require.NoError(t, status.Refresh(context.Background()))
		assert.False(t, status.Finished())

		// Past the window: the next refresh observes the timeout.
		time.Sleep(time.Second)
		require.NoError(t, status.Refresh(context.Background()))
		assert.True(t, status.Finished())
		assert.True(t, status.TimedOut())
		assert.False(t, status.FinishedOK())
	})
}

func TestRefresh_LateSuccessBeatsTimeout(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := mocks.NewMockObjectStore(ctrl)
		source := mocks.NewMockStatusSource(ctrl)
		delegate := mocks.NewMockTriggerStatus(ctrl)
		status := executeStatus(t, source, store, delegate)
		status.SetTimeout(time.Second)

		// The execution finishes after the deadline, but the refresh that
		// observes the finish never evaluates the timeout.
		delegate.EXPECT().Refresh(gomock.Any()).Return(nil)
		delegate.EXPECT().FinishedOK().Return(true)

		time.Sleep(2 * time.Second)
		require.NoError(t, status.Refresh(context.Background()))
		assert.True(t, status.FinishedOK())
		assert.False(t, status.TimedOut())
	})
}

func TestDetail_ReportsCapturedResponse(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockObjectStore(ctrl)
	source := mocks.NewMockStatusSource(ctrl)
	delegate := mocks.NewMockTriggerStatus(ctrl)
	status := executeStatus(t, source, store, delegate)

	assert.Contains(t, status.Detail(), "200")
}
