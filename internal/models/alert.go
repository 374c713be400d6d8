package models

type AlertSeverity string

const (
	SeverityCritical AlertSeverity = "Critical"
	SeverityHigh     AlertSeverity = "High"
	SeverityMedium   AlertSeverity = "Medium"
	SeverityLow      AlertSeverity = "Low"
)

// Alert is a biosecurity notification. Title and description are translation
// keys, not display strings, so alerts render in the selected language.
type Alert struct {
	ID             string        `json:"id"`
	TitleKey       string        `json:"titleKey"`
	DescriptionKey string        `json:"descriptionKey"`
	Severity       AlertSeverity `json:"severity"`
	Date           string        `json:"date"`
	TypeKey        string        `json:"typeKey"` // system, aiCamera, outbreak, prediction
}
