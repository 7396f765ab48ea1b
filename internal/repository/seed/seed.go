// Package seed provides the built-in mock catalog the workspace starts from
// when no database is configured.
package seed

import (
	"context"
	"time"

	"docmanager/internal/classify"
	"docmanager/internal/model"
	"docmanager/internal/repository"
)

const (
	FolderReports  = "folder-reports"
	FolderMedia    = "folder-media"
	FolderProjects = "folder-projects"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Folders returns the seeded folders.
func Folders() []model.Folder {
	return []model.Folder{
		{ID: FolderReports, Name: "Reports", Description: "Financial and training reports", CreatedAt: day(2024, 1, 1), UpdatedAt: day(2024, 1, 1), Color: "#3B82F6"},
		{ID: FolderMedia, Name: "Media", Description: "Photos, logos and recordings", CreatedAt: day(2024, 1, 1), UpdatedAt: day(2024, 1, 1), Color: "#10B981"},
		{ID: FolderProjects, Name: "Projects", CreatedAt: day(2024, 1, 1), UpdatedAt: day(2024, 1, 1), Color: "#F59E0B"},
	}
}

// Documents returns the seeded documents: two pdf, two image and one each of
// video, audio, spreadsheet and text. Stored permission flags are absent.
func Documents() []model.Document {
	doc := func(id, name, description, source string, c model.Category, size int64, created, updated time.Time, folder string, tags ...string) model.Document {
		return model.Document{
			ID:          id,
			Name:        name,
			Description: description,
			Category:    c,
			SourceURL:   source,
			PreviewURL:  classify.PlaceholderPreview(c),
			Size:        size,
			CreatedAt:   created,
			UpdatedAt:   updated,
			FolderID:    folder,
			Tags:        tags,
			Version:     1,
		}
	}

	return []model.Document{
		doc("1", "Annual Report 2024.pdf",
			"Company annual financial report for the year 2024 with detailed analysis and projections.",
			"/files/annual-report-2024.pdf", model.CategoryPDF, 2485760,
			day(2024, 1, 15), day(2024, 1, 15), FolderReports, "finance", "2024"),
		doc("2", "Team Photo.jpg",
			"Official team photograph taken during the annual company retreat.",
			"/files/team-photo.jpg", model.CategoryImage, 1048576,
			day(2024, 2, 20), day(2024, 2, 20), FolderMedia, "team"),
		doc("3", "Presentation Video.mp4",
			"CEO presentation video from the quarterly meeting discussing company strategy.",
			"/files/presentation-video.mp4", model.CategoryVideo, 15728640,
			day(2024, 3, 10), day(2024, 3, 10), FolderMedia, "strategy"),
		doc("4", "Sales Data.xlsx",
			"Comprehensive sales data spreadsheet with quarterly breakdowns and analysis.",
			"/files/sales-data.xlsx", model.CategorySpreadsheet, 524288,
			day(2024, 3, 25), day(2024, 3, 28), FolderReports, "sales", "finance"),
		doc("5", "Meeting Recording.mp3",
			"Audio recording of the board meeting held on March 15th, 2024.",
			"/files/meeting-recording.mp3", model.CategoryAudio, 8388608,
			day(2024, 3, 15), day(2024, 3, 15), ""),
		doc("6", "Project Proposal.docx",
			"Detailed project proposal document for the new product development initiative.",
			"/files/project-proposal.docx", model.CategoryText, 786432,
			day(2024, 4, 2), day(2024, 4, 5), FolderProjects, "product"),
		doc("7", "Company Logo.png",
			"High-resolution company logo in PNG format for marketing materials.",
			"/files/company-logo.png", model.CategoryImage, 204800,
			day(2024, 1, 10), day(2024, 1, 10), FolderMedia, "branding"),
		doc("8", "Training Manual.pdf",
			"Employee training manual covering company policies and procedures.",
			"/files/training-manual.pdf", model.CategoryPDF, 3145728,
			day(2024, 2, 1), day(2024, 2, 15), FolderReports, "hr"),
	}
}

// Users returns the seeded users. The first one is the default current user.
func Users() []model.User {
	return []model.User{
		{ID: "1", Name: "John Doe", Email: "john.doe@company.com", Role: model.RoleAdmin},
		{ID: "2", Name: "Jane Smith", Email: "jane.smith@company.com", Role: model.RoleEditor},
		{ID: "3", Name: "Bob Johnson", Email: "bob.johnson@company.com", Role: model.RoleViewer},
		{ID: "4", Name: "Alice Brown", Email: "alice.brown@company.com", Role: model.RoleEditor},
	}
}

// Catalog serves the static mock data through repository.CatalogRepository.
type Catalog struct{}

var _ repository.CatalogRepository = Catalog{}

// ListDocuments pages over Documents.
func (Catalog) ListDocuments(_ context.Context, pq repository.PageQuery) (*repository.PageResult[model.Document], error) {
	all := Documents()
	start := min(max(pq.Offset, 0), len(all))
	end := len(all)
	if pq.Limit > 0 {
		end = min(start+pq.Limit, len(all))
	}
	return &repository.PageResult[model.Document]{Items: all[start:end], Total: len(all)}, nil
}

func (Catalog) ListFolders(context.Context) ([]model.Folder, error) { return Folders(), nil }

func (Catalog) ListUsers(context.Context) ([]model.User, error) { return Users(), nil }
