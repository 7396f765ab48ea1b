package service

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"docmanager/internal/model"
)

// Metrics are the workspace gauges and counters.
type Metrics struct {
	documents   prometheus.Gauge
	folders     prometheus.Gauge
	visible     prometheus.Gauge
	derivations *prometheus.CounterVec
	mutations   *prometheus.CounterVec
	uploads     *prometheus.CounterVec
}

// NewMetrics creates the workspace metrics and registers them on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		documents: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "docmanager_documents",
			Help: "Number of documents in the store.",
		}),
		folders: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "docmanager_folders",
			Help: "Number of folders in the store.",
		}),
		visible: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "docmanager_visible_documents",
			Help: "Number of documents in the current filtered view.",
		}),
		derivations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "docmanager_derivations_total",
			Help: "Recomputations of the visible document list.",
		}, []string{"result"}),
		mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "docmanager_mutations_total",
			Help: "Workspace mutations by operation and result.",
		}, []string{"op", "result"}),
		uploads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "docmanager_uploads_total",
			Help: "Uploaded files by result.",
		}, []string{"result"}),
	}

	for _, c := range []prometheus.Collector{m.documents, m.folders, m.visible, m.derivations, m.mutations, m.uploads} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// UploadFinished counts one upload outcome: completed, failed or rejected.
func (m *Metrics) UploadFinished(result string) {
	if m == nil {
		return
	}
	m.uploads.WithLabelValues(result).Inc()
}

func (m *Metrics) mutation(op string, err error) {
	if m == nil {
		return
	}
	m.mutations.WithLabelValues(op, resultOf(err)).Inc()
}

func (m *Metrics) derivation(err error) {
	if m == nil {
		return
	}
	m.derivations.WithLabelValues(resultOf(err)).Inc()
}

func (m *Metrics) sizes(documents, folders, visible int) {
	if m == nil {
		return
	}
	m.documents.Set(float64(documents))
	m.folders.Set(float64(folders))
	m.visible.Set(float64(visible))
}

func resultOf(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, model.ErrInternalDerivation):
		return "error"
	case errors.Is(err, model.ErrNotFound):
		return "not_found"
	case errors.Is(err, model.ErrValidation):
		return "invalid"
	}
	return "error"
}
