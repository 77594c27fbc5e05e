package exporter

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"niftynews/internal/model"

	"github.com/go-playground/assert/v2"
)

const dailyCSV = `Company_Name,Extracted_Text,Extracted_Links
Acme Corp,No significant corporate developments for Acme Corp on 05.01.2026,No links found
Beta Inc,Beta Inc announced a record quarterly profit beating analyst expectations significantly,"https://example.com/news, https://example.com/news"
Gamma/Infra: Ltd,Gamma won a large infrastructure order announced to the exchanges this morning in a filing,https://example.com/gamma
`

func TestSanitizeCompanyName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "plain name unchanged",
			in:   "Acme Corp",
			want: "Acme Corp",
		},
		{
			name: "hostile characters replaced",
			in:   `A<B>C:D"E/F\G|H?I*J`,
			want: "A_B_C_D_E_F_G_H_I_J",
		},
		{
			name: "truncated to fifty",
			in:   "Very Long Company Name Private Limited Incorporated Holdings",
			want: "Very Long Company Name Private Limited Incorporate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeCompanyName(tt.in); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRun(t *testing.T) {
	csvDir := t.TempDir()
	outDir := filepath.Join(t.TempDir(), "api")

	err := os.WriteFile(filepath.Join(csvDir, "05.01.2026.csv"), []byte(dailyCSV), 0644)
	assert.Equal(t, nil, err)
	err = os.WriteFile(filepath.Join(csvDir, "README.csv"), []byte("not,a,daily,file\n"), 0644)
	assert.Equal(t, nil, err)

	settings := DefaultSettings()
	settings.CSVDir = csvDir
	settings.OutputDir = outDir

	err = New(settings).Run()
	assert.Equal(t, nil, err)

	data, err := os.ReadFile(filepath.Join(outDir, "available-dates.json"))
	assert.Equal(t, nil, err)

	var dates []model.DateEntry
	json.Unmarshal(data, &dates)
	assert.Equal(t, 1, len(dates))
	assert.Equal(t, "2026-01-05", dates[0].Date)
	assert.Equal(t, "05.01.2026.csv", dates[0].Filename)

	data, err = os.ReadFile(filepath.Join(outDir, "company-news-2026-01-05.json"))
	assert.Equal(t, nil, err)

	var rep model.DailyReport
	json.Unmarshal(data, &rep)
	assert.Equal(t, 3, rep.TotalCompanies)
	assert.Equal(t, 2, rep.NewsCount)
	assert.Equal(t, 1, rep.NoNewsCount)
	assert.Equal(t, []string{"https://example.com/news"}, rep.WithNews[0].Links)

	data, err = os.ReadFile(filepath.Join(outDir, "company-details-2026-01-05-Beta Inc.json"))
	assert.Equal(t, nil, err)

	var details model.CompanyDetails
	json.Unmarshal(data, &details)
	assert.Equal(t, "Beta Inc", details.CompanyName)
	assert.Equal(t, []string{"https://example.com/news"}, details.ProcessedLinks)

	// The slash and colon in the name are sanitized in the filename.
	_, err = os.Stat(filepath.Join(outDir, "company-details-2026-01-05-Gamma_Infra_ Ltd.json"))
	assert.Equal(t, nil, err)

	// No-news companies get detail files too.
	_, err = os.Stat(filepath.Join(outDir, "company-details-2026-01-05-Acme Corp.json"))
	assert.Equal(t, nil, err)
}

func TestRunOverlappingCompanyNames(t *testing.T) {
	csvDir := t.TempDir()
	outDir := t.TempDir()

	long := " announced to the exchanges this morning in a regulatory filing"
	csv := "Company_Name,Extracted_Text,Extracted_Links\n" +
		"HDFC,HDFC raised its deposit rates" + long + ",https://example.com/hdfc\n" +
		"HDFC Bank,HDFC Bank opened two hundred branches" + long + ",https://example.com/hdfc-bank\n"
	err := os.WriteFile(filepath.Join(csvDir, "05.01.2026.csv"), []byte(csv), 0644)
	assert.Equal(t, nil, err)

	settings := DefaultSettings()
	settings.CSVDir = csvDir
	settings.OutputDir = outDir

	err = New(settings).Run()
	assert.Equal(t, nil, err)

	// Each row gets its own detail file under its own name, even though
	// one name is a substring of the other.
	data, err := os.ReadFile(filepath.Join(outDir, "company-details-2026-01-05-HDFC.json"))
	assert.Equal(t, nil, err)

	var details model.CompanyDetails
	json.Unmarshal(data, &details)
	assert.Equal(t, "HDFC", details.CompanyName)
	assert.Equal(t, []string{"https://example.com/hdfc"}, details.ProcessedLinks)

	data, err = os.ReadFile(filepath.Join(outDir, "company-details-2026-01-05-HDFC Bank.json"))
	assert.Equal(t, nil, err)

	json.Unmarshal(data, &details)
	assert.Equal(t, "HDFC Bank", details.CompanyName)
	assert.Equal(t, []string{"https://example.com/hdfc-bank"}, details.ProcessedLinks)
}

func TestRunSplitStrategy(t *testing.T) {
	csvDir := t.TempDir()
	outDir := t.TempDir()

	csv := "Company_Name,Extracted_Text,Extracted_Links\n" +
		"Beta Inc,Beta Inc announced a record quarterly profit beating analyst expectations significantly,www.example.com/beta-news\n"
	err := os.WriteFile(filepath.Join(csvDir, "05.01.2026.csv"), []byte(csv), 0644)
	assert.Equal(t, nil, err)

	settings := DefaultSettings()
	settings.CSVDir = csvDir
	settings.OutputDir = outDir
	settings.LinkStrategy = LinkStrategySplit

	err = New(settings).Run()
	assert.Equal(t, nil, err)

	data, err := os.ReadFile(filepath.Join(outDir, "company-details-2026-01-05-Beta Inc.json"))
	assert.Equal(t, nil, err)

	var details model.CompanyDetails
	json.Unmarshal(data, &details)
	assert.Equal(t, []string{"https://www.example.com/beta-news"}, details.ProcessedLinks)
}
