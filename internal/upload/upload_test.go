package upload

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"docmanager/internal/logging"
	"docmanager/internal/model"
	"docmanager/internal/storage"
	storagemocks "docmanager/internal/storage/mocks"
	"docmanager/internal/worker"
)

type mockAdder struct {
	mock.Mock
}

func (m *mockAdder) AddDocument(ctx context.Context, in model.NewDocument) (model.Document, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(model.Document), args.Error(1)
}

// inlinePool runs each task synchronously inside Submit. Task errors are
// dropped the way the worker pool only logs them.
type inlinePool struct{}

func (inlinePool) Submit(t worker.Task) error {
	_ = t(context.Background())
	return nil
}

type closedPool struct{}

func (closedPool) Submit(worker.Task) error { return worker.ErrPoolClosed }

type countingRecorder struct {
	mu     sync.Mutex
	counts map[string]int
}

func (r *countingRecorder) UploadFinished(result string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.counts == nil {
		r.counts = map[string]int{}
	}
	r.counts[result]++
}

func fixedStep(n int) func() int { return func() int { return n } }

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		file    File
		wantErr string
	}{
		{name: "pdf", file: File{Name: "a.pdf", ContentType: "application/pdf", Data: []byte("x")}},
		{name: "content type parameters", file: File{Name: "a.txt", ContentType: "Text/Plain; charset=utf-8", Data: []byte("x")}},
		{name: "missing name", file: File{ContentType: "application/pdf"}, wantErr: "file name is required"},
		{name: "too large", file: File{Name: "big.pdf", ContentType: "application/pdf", Data: make([]byte, 11)}, wantErr: "big.pdf is larger than 10 Bytes"},
		{name: "unsupported", file: File{Name: "x.zip", ContentType: "application/zip", Data: []byte("x")}, wantErr: `x.zip has unsupported type "application/zip"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.file, 10)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, model.ErrValidation)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestManager_SubmitAddsOneDocumentPerAcceptedFile(t *testing.T) {
	adder := new(mockAdder)
	objects := storage.NewMemory()
	rec := &countingRecorder{}
	m := NewManager(adder, objects, inlinePool{}, logging.Discard(),
		WithTick(time.Millisecond), WithStep(fixedStep(40)), WithMaxBytes(1024), WithRecorder(rec))

	adder.On("AddDocument", mock.Anything, mock.MatchedBy(func(in model.NewDocument) bool {
		return in.Name == "notes.txt" &&
			in.Description == "Uploaded file: notes.txt" &&
			strings.HasPrefix(in.SourceURL, storage.FilesPrefix+"uploads/") &&
			in.Size == 5 &&
			in.FolderID == "f1"
	})).Return(model.Document{ID: "doc-1"}, nil).Once()

	jobs, rejected := m.Submit([]File{
		{Name: "huge.pdf", ContentType: "application/pdf", Data: make([]byte, 2048)},
		{Name: "notes.txt", ContentType: "text/plain", Data: []byte("hello"), FolderID: "f1"},
		{Name: "archive.zip", ContentType: "application/zip", Data: []byte("zz")},
	})

	require.Len(t, jobs, 1)
	assert.Equal(t, StatusCompleted, jobs[0].Status)
	assert.Equal(t, 100, jobs[0].Progress)
	assert.Equal(t, "doc-1", jobs[0].DocumentID)
	require.Len(t, rejected, 2)
	assert.Equal(t, "huge.pdf", rejected[0].FileName)
	assert.Equal(t, "archive.zip", rejected[1].FileName)
	assert.NotContains(t, rejected[1].Reason, "validation failed")

	assert.Equal(t, 1, objects.Len())
	assert.Equal(t, map[string]int{"completed": 1, "rejected": 2}, rec.counts)
	adder.AssertExpectations(t)
}

func TestManager_StorageFailureSkipsAddDocument(t *testing.T) {
	adder := new(mockAdder)
	objects := new(storagemocks.MockStorage)
	objects.On("Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(storage.ObjectInfo{}, errors.New("bucket gone"))
	m := NewManager(adder, objects, inlinePool{}, logging.Discard(), WithTick(time.Millisecond))

	jobs, rejected := m.Submit([]File{{Name: "a.pdf", ContentType: "application/pdf", Data: []byte("x")}})

	assert.Empty(t, rejected)
	require.Len(t, jobs, 1)
	assert.Equal(t, StatusFailed, jobs[0].Status)
	assert.Contains(t, jobs[0].Error, "bucket gone")
	adder.AssertNotCalled(t, "AddDocument", mock.Anything, mock.Anything)
}

func TestManager_AddDocumentFailureRemovesObject(t *testing.T) {
	adder := new(mockAdder)
	adder.On("AddDocument", mock.Anything, mock.Anything).
		Return(model.Document{}, model.Invalidf("folder gone does not exist")).Once()
	objects := storage.NewMemory()
	m := NewManager(adder, objects, inlinePool{}, logging.Discard(), WithTick(time.Millisecond), WithStep(fixedStep(100)))

	jobs, _ := m.Submit([]File{{Name: "a.pdf", ContentType: "application/pdf", Data: []byte("x"), FolderID: "gone"}})

	require.Len(t, jobs, 1)
	assert.Equal(t, StatusFailed, jobs[0].Status)
	assert.Zero(t, objects.Len())
	adder.AssertExpectations(t)
}

func TestManager_PoolClosed(t *testing.T) {
	m := NewManager(new(mockAdder), storage.NewMemory(), closedPool{}, logging.Discard())

	jobs, rejected := m.Submit([]File{{Name: "a.pdf", ContentType: "application/pdf", Data: []byte("x")}})

	assert.Empty(t, jobs)
	require.Len(t, rejected, 1)
	assert.Equal(t, worker.ErrPoolClosed.Error(), rejected[0].Reason)
	all := m.Jobs()
	require.Len(t, all, 1)
	assert.Equal(t, StatusFailed, all[0].Status)
}

func TestManager_BackgroundProgressReachesCompletion(t *testing.T) {
	adder := new(mockAdder)
	adder.On("AddDocument", mock.Anything, mock.Anything).Return(model.Document{ID: "doc-9"}, nil).Twice()
	pool := worker.NewPool(context.Background(), 2, 8, logging.Discard())
	m := NewManager(adder, storage.NewMemory(), pool, logging.Discard(), WithTick(time.Millisecond), WithStep(fixedStep(7)))

	jobs, rejected := m.Submit([]File{
		{Name: "a.png", ContentType: "image/png", Data: []byte("1")},
		{Name: "b.mp4", ContentType: "video/mp4", Data: []byte("2")},
	})
	require.Empty(t, rejected)
	require.Len(t, jobs, 2)

	require.NoError(t, pool.Shutdown(context.Background()))

	for _, j := range m.Jobs() {
		assert.Equal(t, StatusCompleted, j.Status)
		assert.Equal(t, 100, j.Progress)
	}
	got, err := m.Job(jobs[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "doc-9", got.DocumentID)

	_, err = m.Job("missing")
	assert.ErrorIs(t, err, model.ErrNotFound)
	adder.AssertExpectations(t)
}
