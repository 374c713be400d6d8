package models

type ReportStatus string

const (
	ReportReviewed ReportStatus = "Reviewed"
	ReportPending  ReportStatus = "Pending"
)

// Report is one daily farm health submission.
type Report struct {
	ID          string       `json:"id"`
	Date        string       `json:"date"`
	AnimalCount int          `json:"animalCount"`
	FeedUsage   float64      `json:"feedUsage"` // kg
	Symptoms    string       `json:"symptoms"`
	Temperature float64      `json:"temperature"` // Celsius
	Status      ReportStatus `json:"status"`
	SubmittedBy string       `json:"submittedBy"`
}
