package model

// DateEntry identifies one daily CSV export. The ISO date string is the
// lookup key used by API clients; the filename is the on-disk source.
type DateEntry struct {
	Date        string `json:"date"`
	Filename    string `json:"filename"`
	DisplayDate string `json:"display_date"`
}

// CompanyRecord is one company's row for a day, after cleanup.
type CompanyRecord struct {
	Name       string   `json:"name"`
	Text       string   `json:"text"`
	Links      []string `json:"links"`
	HasContent bool     `json:"has_content"`
}

// DailyReport partitions a day's companies into the two news buckets,
// each sorted by name ascending.
type DailyReport struct {
	Date           string          `json:"date"`
	WithNews       []CompanyRecord `json:"companies_with_news"`
	NoNews         []CompanyRecord `json:"companies_no_news"`
	TotalCompanies int             `json:"total_companies"`
	NewsCount      int             `json:"news_count"`
	NoNewsCount    int             `json:"no_news_count"`
}

// CompanyDetails is the single-company drill-down view, carrying both the
// raw links field and the extracted URL list.
type CompanyDetails struct {
	CompanyName    string   `json:"company_name"`
	ExtractedText  string   `json:"extracted_text"`
	LinksRaw       string   `json:"links_raw"`
	ProcessedLinks []string `json:"processed_links"`
	Date           string   `json:"date"`
}
