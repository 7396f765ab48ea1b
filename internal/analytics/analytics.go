// Package analytics derives read-only reporting figures from the document
// store. Nothing here mutates its inputs.
package analytics

import (
	"cmp"
	"slices"
	"time"

	"docmanager/internal/classify"
	"docmanager/internal/model"
)

// Range bounds the documents the distributions are computed over.
type Range string

const (
	Range7Days  Range = "7d"
	Range30Days Range = "30d"
	Range90Days Range = "90d"
	Range1Year  Range = "1y"
)

// DefaultRange is used when the caller does not pick one.
const DefaultRange = Range30Days

const (
	trendMonths  = 6
	topLimit     = 10
	recentLimit  = 10
	bytesPerMiB  = 1024 * 1024
	hoursPerDay  = 24
	downloadGain = 10

	// RootBucket and UnknownBucket label documents without a folder and
	// documents pointing at a folder that no longer exists.
	RootBucket    = "Root"
	UnknownBucket = "Unknown"

	activityUpdated = "updated"
)

// ParseRange maps a query value to a Range. Empty means DefaultRange.
func ParseRange(s string) (Range, error) {
	switch r := Range(s); r {
	case "":
		return DefaultRange, nil
	case Range7Days, Range30Days, Range90Days, Range1Year:
		return r, nil
	}
	return "", model.Invalidf("unknown analytics range %q", s)
}

// Cutoff returns the earliest creation instant included by r.
func (r Range) Cutoff(now time.Time) time.Time {
	switch r {
	case Range7Days:
		return now.AddDate(0, 0, -7)
	case Range90Days:
		return now.AddDate(0, 0, -90)
	case Range1Year:
		return now.AddDate(-1, 0, 0)
	}
	return now.AddDate(0, 0, -30)
}

type CategoryCount struct {
	Category model.Category `json:"category"`
	Count    int            `json:"count"`
}

type CategoryBytes struct {
	Category model.Category `json:"category"`
	Bytes    int64          `json:"bytes"`
	Label    string         `json:"label"`
}

// FolderCount is one bucket of the folder distribution. FolderID is empty
// for the Root and Unknown buckets.
type FolderCount struct {
	FolderID string `json:"folder_id,omitempty"`
	Name     string `json:"name"`
	Count    int    `json:"count"`
}

type MonthPoint struct {
	Label string `json:"label"`
	Count int    `json:"count"`
	Bytes int64  `json:"bytes"`
}

type ScoredDocument struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Category      model.Category `json:"category"`
	DownloadCount int            `json:"download_count"`
	Size          int64          `json:"size"`
	Score         float64        `json:"score"`
}

type Activity struct {
	DocumentID string    `json:"document_id"`
	Name       string    `json:"name"`
	Kind       string    `json:"kind"`
	At         time.Time `json:"at"`
}

// Report is the full analytics payload.
type Report struct {
	Range              Range            `json:"range"`
	TotalDocuments     int              `json:"total_documents"`
	TotalBytes         int64            `json:"total_bytes"`
	TotalSizeLabel     string           `json:"total_size_label"`
	TypeDistribution   []CategoryCount  `json:"type_distribution"`
	StorageByType      []CategoryBytes  `json:"storage_by_type"`
	FolderDistribution []FolderCount    `json:"folder_distribution"`
	UploadTrend        []MonthPoint     `json:"upload_trend"`
	TopDocuments       []ScoredDocument `json:"top_documents"`
	RecentActivity     []Activity       `json:"recent_activity"`
}

// Compute builds the report. Distributions and totals cover documents created
// within r; the trend, top list and activity feed cover every document.
func Compute(docs []model.Document, folders []model.Folder, r Range, now time.Time) Report {
	cutoff := r.Cutoff(now)
	var inRange []model.Document
	for _, d := range docs {
		if !d.CreatedAt.Before(cutoff) {
			inRange = append(inRange, d)
		}
	}

	rep := Report{
		Range:              r,
		TotalDocuments:     len(inRange),
		TypeDistribution:   []CategoryCount{},
		StorageByType:      []CategoryBytes{},
		FolderDistribution: folderDistribution(inRange, folders),
		UploadTrend:        Trend(docs, now),
		TopDocuments:       Top(docs, now, topLimit),
		RecentActivity:     Recent(docs, recentLimit),
	}

	counts := make(map[model.Category]int)
	bytes := make(map[model.Category]int64)
	for _, d := range inRange {
		rep.TotalBytes += d.Size
		counts[d.Category]++
		bytes[d.Category] += d.Size
	}
	rep.TotalSizeLabel = classify.FormatFileSize(rep.TotalBytes)
	for _, c := range model.Categories {
		if counts[c] == 0 {
			continue
		}
		rep.TypeDistribution = append(rep.TypeDistribution, CategoryCount{Category: c, Count: counts[c]})
		rep.StorageByType = append(rep.StorageByType, CategoryBytes{
			Category: c,
			Bytes:    bytes[c],
			Label:    classify.FormatFileSize(bytes[c]),
		})
	}
	return rep
}

func folderDistribution(docs []model.Document, folders []model.Folder) []FolderCount {
	known := make(map[string]bool, len(folders))
	for _, f := range folders {
		known[f.ID] = true
	}
	counts := make(map[string]int)
	var root, unknown int
	for _, d := range docs {
		switch {
		case d.FolderID == "":
			root++
		case known[d.FolderID]:
			counts[d.FolderID]++
		default:
			unknown++
		}
	}

	out := []FolderCount{}
	if root > 0 {
		out = append(out, FolderCount{Name: RootBucket, Count: root})
	}
	for _, f := range folders {
		if n := counts[f.ID]; n > 0 {
			out = append(out, FolderCount{FolderID: f.ID, Name: f.Name, Count: n})
		}
	}
	if unknown > 0 {
		out = append(out, FolderCount{Name: UnknownBucket, Count: unknown})
	}
	return out
}

// Trend buckets documents by the calendar month of CreatedAt in now's
// location: the current month and the five before it, oldest first.
func Trend(docs []model.Document, now time.Time) []MonthPoint {
	loc := now.Location()
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
	points := make([]MonthPoint, trendMonths)
	for i := range points {
		points[i].Label = first.AddDate(0, i-(trendMonths-1), 0).Format("Jan 2006")
	}
	for _, d := range docs {
		c := d.CreatedAt.In(loc)
		months := (now.Year()-c.Year())*12 + int(now.Month()-c.Month())
		if months < 0 || months >= trendMonths {
			continue
		}
		p := &points[trendMonths-1-months]
		p.Count++
		p.Bytes += d.Size
	}
	return points
}

// Score ranks a document for the top list. More downloads and larger files
// score higher; every day since the last update costs one point.
func Score(d model.Document, now time.Time) float64 {
	days := now.Sub(d.UpdatedAt).Hours() / hoursPerDay
	return float64(d.DownloadCount*downloadGain) + float64(d.Size)/bytesPerMiB - days
}

// Top returns the limit highest scoring documents. Ties keep input order.
func Top(docs []model.Document, now time.Time, limit int) []ScoredDocument {
	out := make([]ScoredDocument, 0, len(docs))
	for _, d := range docs {
		out = append(out, ScoredDocument{
			ID:            d.ID,
			Name:          d.Name,
			Category:      d.Category,
			DownloadCount: d.DownloadCount,
			Size:          d.Size,
			Score:         Score(d, now),
		})
	}
	slices.SortStableFunc(out, func(a, b ScoredDocument) int { return cmp.Compare(b.Score, a.Score) })
	return out[:min(limit, len(out))]
}

// Recent returns the limit most recently updated documents as activity entries.
func Recent(docs []model.Document, limit int) []Activity {
	sorted := slices.Clone(docs)
	slices.SortStableFunc(sorted, func(a, b model.Document) int { return b.UpdatedAt.Compare(a.UpdatedAt) })
	out := make([]Activity, 0, min(limit, len(sorted)))
	for _, d := range sorted[:min(limit, len(sorted))] {
		out = append(out, Activity{DocumentID: d.ID, Name: d.Name, Kind: activityUpdated, At: d.UpdatedAt})
	}
	return out
}
