package domain

// ExtractedDocument is the input contract from the PDF extraction
// collaborator: the whole catalog as page text plus raw tables, already
// materialized. The ingestion engine never touches the PDF itself.
type ExtractedDocument struct {
	Source string          `json:"source"`
	Pages  []ExtractedPage `json:"pages"`
}

// ExtractedPage holds one catalog page. Tables are row-major cell grids;
// a cell may be empty and may contain embedded newlines representing
// stacked sub-values. Text is the raw page text used for context-marker
// detection, independent of table structure.
type ExtractedPage struct {
	Number int        `json:"number"`
	Text   string     `json:"text"`
	Tables []RawTable `json:"tables"`
}

// RawTable is an ordered sequence of rows of cell strings. Row 0 (or rows
// 0-1) may be a header.
type RawTable [][]string
