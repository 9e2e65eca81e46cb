package domain

type SlideType string

const (
	SlideTitle   SlideType = "title"
	SlideContent SlideType = "content"
)

type ProjectStatus string

const (
	ProjectInitialized ProjectStatus = "initialized"
	ProjectOutlined    ProjectStatus = "outlined"
	ProjectGenerated   ProjectStatus = "generated"
	ProjectExported    ProjectStatus = "exported"
)

type ExportFormat string

const (
	FormatHTML         ExportFormat = "html"
	FormatPowerPoint   ExportFormat = "powerpoint"
	FormatPDF          ExportFormat = "pdf"
	FormatGoogleSlides ExportFormat = "google_slides"
)

// ValidExportFormats is the canonical set of accepted export format strings.
var ValidExportFormats = map[string]bool{
	"html": true, "powerpoint": true, "pdf": true, "google_slides": true,
}

func (f ExportFormat) Valid() bool {
	return ValidExportFormats[string(f)]
}

type OutlineSource string

const (
	OutlineManual OutlineSource = "manual"
	OutlineAI     OutlineSource = "ai"
)
