package extract

// Format identifies the source document format, inferred from the file
// extension.
type Format string

const (
	FormatText      Format = "text"
	FormatDOCX      Format = "docx"
	FormatPDF       Format = "pdf"
	FormatLegacyDoc Format = "legacy-doc"
	FormatUnknown   Format = "unknown"
)

// SectionCapture holds the lines captured for a named section. Started
// distinguishes "header never found" (false, empty Lines) from "header found
// but the section terminated immediately" (true, empty Lines).
type SectionCapture struct {
	Lines   []string `json:"lines"`
	Started bool     `json:"started"`
}

// ContactInfo holds extracted contact details. Emails appear in document
// order with duplicates preserved. Phone is the raw matched substring with
// its original formatting, or empty when nothing matched.
type ContactInfo struct {
	Emails []string `json:"emails"`
	Phone  string   `json:"phone"`
}

// ResumeFields is the full set of structured fields extracted from a resume.
// Absent values are empty strings or empty slices, never errors.
type ResumeFields struct {
	Path      string   `json:"path,omitempty"`
	Format    Format   `json:"format,omitempty"`
	Name      string   `json:"name"`
	Emails    []string `json:"emails"`
	Phone     string   `json:"phone"`
	Summary   []string `json:"summary"`
	Education []string `json:"education"`
	Companies []string `json:"companies"`
	Skills    []string `json:"skills"`
}
