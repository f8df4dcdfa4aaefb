package descriptions

// Tool descriptions with practical examples and use cases

const (
	ResumeExtractFileDescription = `Extract structured fields from a resume document (TXT, DOCX or PDF).

**When to use:** Need candidate data (name, contact details, summary, education, employers, skills) from a resume file for screening, search indexing, or CRM import.

**Why it's useful:** Returns clean structured fields instead of a raw text blob, handling line normalization, section-boundary detection and entity filtering automatically.

**Examples:**
• Screen an application: "Extract fields from jane-doe.pdf to fill the candidate record"
• Build a talent index: "Extract skills and employers from every resume in /inbox"

**Best practices:** Missing fields are returned empty rather than failing; check 'name' and 'emails' to judge extraction quality.`

	ResumeReadFileDescription = `Extract the raw text content from a resume document.

**When to use:** Need the full decoded text of a TXT, DOCX or PDF resume, for example to run your own analysis on top of the decoded blob.

**Why it's useful:** Handles the per-format decoding (PDF page extraction, DOCX markup stripping) and returns one plain text blob.

**Best practices:** Use resume_extract_file instead when you want structured fields; this tool is the raw decoding step only.`

	ResumeSearchDirectoryDescription = `Search for resume files in a directory with optional fuzzy filename matching.

**When to use:** Discover which resumes are available before extracting, or find a specific candidate's file by name fragment.

**Examples:**
• List everything: "Search /resumes for all files"
• Find one candidate: "Search /resumes for 'smith'"

**Best practices:** Supported extensions are .txt, .docx, .pdf and .doc; oversized files are skipped.`

	ResumeServerInfoDescription = `Get server information, available tools and usage guidance.

**When to use:** First call in a session to learn the configured resume directory, vocabulary size and available tools.`
)
