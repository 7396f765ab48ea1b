// Package upload validates incoming files, stores their content and simulates
// transfer progress before registering each file as a document.
package upload

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"path"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"docmanager/internal/classify"
	"docmanager/internal/model"
	"docmanager/internal/storage"
	"docmanager/internal/worker"
)

// DefaultMaxBytes is the per-file size limit.
const DefaultMaxBytes int64 = 50 * 1024 * 1024

const maxStep = 30

// AllowedContentTypes lists the MIME types accepted for upload.
var AllowedContentTypes = []string{
	"application/pdf",
	"image/jpeg", "image/jpg", "image/png", "image/gif", "image/webp",
	"video/mp4", "video/avi", "video/mov", "video/wmv",
	"audio/mp3", "audio/wav", "audio/m4a", "audio/ogg",
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	"application/vnd.ms-excel",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"application/msword",
	"text/plain",
}

// Status of an upload job.
type Status string

const (
	StatusQueued    Status = "queued"
	StatusUploading Status = "uploading"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// File is one file of an upload batch.
type File struct {
	Name        string
	ContentType string
	Data        []byte
	FolderID    string
}

// Rejection explains why a file was refused before reaching the store.
type Rejection struct {
	FileName string `json:"file_name"`
	Reason   string `json:"reason"`
}

// Job is the progress record of an accepted file.
type Job struct {
	ID         string    `json:"id"`
	FileName   string    `json:"file_name"`
	Size       int64     `json:"size"`
	Progress   int       `json:"progress"`
	Status     Status    `json:"status"`
	DocumentID string    `json:"document_id,omitempty"`
	Error      string    `json:"error,omitempty"`
	StartedAt  time.Time `json:"started_at"`
}

// DocumentAdder registers a finished upload.
type DocumentAdder interface {
	AddDocument(ctx context.Context, in model.NewDocument) (model.Document, error)
}

// Recorder counts upload outcomes. It may be nil.
type Recorder interface {
	UploadFinished(result string)
}

// Submitter runs background tasks.
type Submitter interface {
	Submit(t worker.Task) error
}

// Validate checks f against the size limit and the allowed content types.
// Failures wrap model.ErrValidation.
func Validate(f File, maxBytes int64) error {
	if f.Name == "" {
		return model.Invalidf("file name is required")
	}
	if int64(len(f.Data)) > maxBytes {
		return model.Invalidf("%s is larger than %s", f.Name, classify.FormatFileSize(maxBytes))
	}
	if !slices.Contains(AllowedContentTypes, normalizeContentType(f.ContentType)) {
		return model.Invalidf("%s has unsupported type %q", f.Name, f.ContentType)
	}
	return nil
}

func normalizeContentType(ct string) string {
	ct, _, _ = strings.Cut(ct, ";")
	return strings.ToLower(strings.TrimSpace(ct))
}

// Manager accepts upload batches and tracks their jobs.
type Manager struct {
	docs     DocumentAdder
	objects  storage.Storage
	pool     Submitter
	recorder Recorder
	log      *slog.Logger

	maxBytes int64
	tick     time.Duration
	step     func() int
	now      func() time.Time

	mu   sync.RWMutex
	jobs []*Job
}

// Option configures a Manager.
type Option func(*Manager)

// WithMaxBytes overrides DefaultMaxBytes.
func WithMaxBytes(n int64) Option {
	return func(m *Manager) { m.maxBytes = n }
}

// WithTick sets the progress interval.
func WithTick(d time.Duration) Option {
	return func(m *Manager) { m.tick = d }
}

// WithStep overrides the random progress increment.
func WithStep(step func() int) Option {
	return func(m *Manager) { m.step = step }
}

// WithRecorder sets where upload outcomes are counted.
func WithRecorder(r Recorder) Option {
	return func(m *Manager) { m.recorder = r }
}

// NewManager wires the upload pipeline.
func NewManager(docs DocumentAdder, objects storage.Storage, pool Submitter, log *slog.Logger, opts ...Option) *Manager {
	m := &Manager{
		docs:     docs,
		objects:  objects,
		pool:     pool,
		log:      log.With("component", "upload"),
		maxBytes: DefaultMaxBytes,
		tick:     200 * time.Millisecond,
		step:     func() int { return rand.IntN(maxStep) + 1 },
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Submit validates every file and queues the accepted ones. A rejected file
// never stops the rest of the batch. Each queued job ends in exactly one
// AddDocument call or in a failure.
func (m *Manager) Submit(files []File) ([]Job, []Rejection) {
	accepted := make([]Job, 0, len(files))
	var rejected []Rejection

	for _, f := range files {
		if err := Validate(f, m.maxBytes); err != nil {
			rejected = append(rejected, Rejection{FileName: f.Name, Reason: strings.TrimPrefix(err.Error(), model.ErrValidation.Error()+": ")})
			m.record("rejected")
			m.log.Warn("upload_rejected", "file_name", f.Name, "reason", err.Error())
			continue
		}

		job := &Job{
			ID:        uuid.NewString(),
			FileName:  f.Name,
			Size:      int64(len(f.Data)),
			Status:    StatusQueued,
			StartedAt: m.now(),
		}
		m.mu.Lock()
		m.jobs = append(m.jobs, job)
		m.mu.Unlock()

		file := f
		if err := m.pool.Submit(func(ctx context.Context) error { return m.run(ctx, job, file) }); err != nil {
			m.finish(job, "", err)
			rejected = append(rejected, Rejection{FileName: f.Name, Reason: err.Error()})
			continue
		}
		accepted = append(accepted, m.snapshot(job))
	}
	return accepted, rejected
}

func (m *Manager) run(ctx context.Context, job *Job, f File) error {
	m.update(job, func(j *Job) { j.Status = StatusUploading })

	key := path.Join("uploads", job.ID, path.Base(f.Name))
	if _, err := m.objects.Put(ctx, key, bytes.NewReader(f.Data), storage.PutObjectOptions{
		Size:        int64(len(f.Data)),
		ContentType: normalizeContentType(f.ContentType),
		Metadata:    map[string]string{"original-filename": f.Name},
	}); err != nil {
		err = fmt.Errorf("store %s: %w", f.Name, err)
		m.finish(job, "", err)
		return err
	}

	m.simulateProgress(job)

	doc, err := m.docs.AddDocument(ctx, model.NewDocument{
		Name:        f.Name,
		Description: "Uploaded file: " + f.Name,
		SourceURL:   storage.SourceURL(key),
		Size:        int64(len(f.Data)),
		FolderID:    f.FolderID,
	})
	if err != nil {
		if delErr := m.objects.Delete(ctx, key); delErr != nil {
			err = errors.Join(err, fmt.Errorf("rollback delete: %w", delErr))
		}
		m.finish(job, "", err)
		return err
	}
	m.finish(job, doc.ID, nil)
	return nil
}

// simulateProgress advances the job by a random step every tick until it
// reaches 100. It cannot be cancelled.
func (m *Manager) simulateProgress(job *Job) {
	ticker := time.NewTicker(m.tick)
	defer ticker.Stop()
	for {
		done := false
		m.update(job, func(j *Job) {
			j.Progress = min(j.Progress+max(m.step(), 1), 100)
			done = j.Progress >= 100
		})
		if done {
			return
		}
		<-ticker.C
	}
}

func (m *Manager) finish(job *Job, documentID string, err error) {
	m.update(job, func(j *Job) {
		if err != nil {
			j.Status = StatusFailed
			j.Error = err.Error()
			return
		}
		j.Status = StatusCompleted
		j.Progress = 100
		j.DocumentID = documentID
	})
	if err != nil {
		m.record("failed")
		m.log.Error("upload_failed", "upload_id", job.ID, "file_name", job.FileName, "error_message", err.Error())
		return
	}
	m.record("completed")
	m.log.Info("upload_completed", "upload_id", job.ID, "file_name", job.FileName, "document_id", documentID)
}

func (m *Manager) record(result string) {
	if m.recorder != nil {
		m.recorder.UploadFinished(result)
	}
}

func (m *Manager) update(job *Job, fn func(*Job)) {
	m.mu.Lock()
	fn(job)
	m.mu.Unlock()
}

func (m *Manager) snapshot(job *Job) Job {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return *job
}

// Jobs returns every job, oldest first.
func (m *Manager) Jobs() []Job {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Job, len(m.jobs))
	for i, j := range m.jobs {
		out[i] = *j
	}
	return out
}

// Job returns the job with id.
func (m *Manager) Job(id string) (Job, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, j := range m.jobs {
		if j.ID == id {
			return *j, nil
		}
	}
	return Job{}, fmt.Errorf("upload %s: %w", id, model.ErrNotFound)
}
