package models

// FarmStats is the headline snapshot on the farmer dashboard.
type FarmStats struct {
	AnimalCount      int     `json:"animalCount"`
	MortalityRate    float64 `json:"mortalityRate"` // percentage
	FeedUsage        float64 `json:"feedUsage"`     // kg per day
	BiosecurityScore int     `json:"biosecurityScore"`
}

// FarmDataTrend is one month of historical farm metrics.
type FarmDataTrend struct {
	NameKey   string  `json:"nameKey"`
	Mortality float64 `json:"mortality"`
	Feed      float64 `json:"feed"`
	Temp      float64 `json:"temp"`
}

// BiosecurityReport summarizes one batch compliance audit.
type BiosecurityReport struct {
	ID              string `json:"id"`
	BatchID         string `json:"batchId"`
	Date            string `json:"date"`
	ComplianceScore int    `json:"complianceScore"`
	StatusKey       string `json:"statusKey"` // complete, inProgress
}

// ChecklistItem is one task on the biosecurity checklist.
type ChecklistItem struct {
	ID          string `json:"id"`
	CategoryKey string `json:"categoryKey"` // entryProtocols, feedAndWater, pestControl, cleaning
	TaskKey     string `json:"taskKey"`
}

type VerificationStatus string

const (
	VerifySafe    VerificationStatus = "safe"
	VerifyWarning VerificationStatus = "warning"
	VerifyDanger  VerificationStatus = "danger"
)

// ProductVerification is a consumer-facing product safety record.
type ProductVerification struct {
	ID          string             `json:"id"`
	FarmID      string             `json:"farmId"`
	ProductName string             `json:"productName"`
	BatchDate   string             `json:"batchDate"`
	Status      VerificationStatus `json:"status"`
}

// FarmCompliance is one row of the government compliance register.
type FarmCompliance struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Region          string `json:"region"`
	ComplianceScore int    `json:"complianceScore"`
	LastInspection  string `json:"lastInspection"`
}
