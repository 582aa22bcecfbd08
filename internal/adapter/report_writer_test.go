package adapter

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	m "github.com/mouse-blink/prodscan/internal/model"
)

func tagResult() m.TagScanResult {
	return m.TagScanResult{
		Hits: []m.TagHit{
			{File: "prod1.yml", Prod: "prod1", Service: "billing", Tag: "team/feature-1", Line: 3},
			{File: "prod2.yml", Prod: "prod2", Service: "auth", Tag: "team/fix, two", Line: 7},
		},
		FilesScanned:  2,
		FilesWithHits: 2,
		DistinctTags:  []string{"team/feature-1", "team/fix, two"},
	}
}

func TestWriteTagReportCSV(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writer := NewLocalReportWriter()

	path, err := writer.WriteTagReport(filepath.Join(dir, "reports"), m.FormatCSV, tagResult())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := os.Open(string(path))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("report is not valid CSV: %v", err)
	}

	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}

	if rows[0][0] != "file" || rows[0][3] != "tag" {
		t.Errorf("unexpected header: %v", rows[0])
	}

	// The embedded comma survives RFC 4180 quoting.
	if rows[2][3] != "team/fix, two" {
		t.Errorf("comma-bearing tag mangled: %q", rows[2][3])
	}
}

func TestWriteTagReportText(t *testing.T) {
	t.Parallel()

	writer := NewLocalReportWriter()

	path, err := writer.WriteTagReport(t.TempDir(), m.FormatText, tagResult())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(string(path))
	if err != nil {
		t.Fatal(err)
	}

	content := string(data)
	if !strings.Contains(content, "prod1.yml:3") || !strings.Contains(content, "team/feature-1") {
		t.Errorf("missing hit line:\n%s", content)
	}

	if !strings.Contains(content, "Distinct tags:") {
		t.Errorf("missing distinct section:\n%s", content)
	}
}

func TestWriteTagReportMarkdown(t *testing.T) {
	t.Parallel()

	writer := NewLocalReportWriter()

	path, err := writer.WriteTagReport(t.TempDir(), m.FormatMarkdown, tagResult())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(string(path))
	if err != nil {
		t.Fatal(err)
	}

	content := string(data)
	if !strings.HasPrefix(content, "# Custom tags") {
		t.Errorf("missing title:\n%s", content)
	}

	if !strings.Contains(content, "| billing") {
		t.Errorf("missing table row:\n%s", content)
	}
}

func TestWriteServiceCSVModes(t *testing.T) {
	t.Parallel()

	index := m.ServiceIndex{
		ProdsByService: map[string][]string{
			"billing": {"prod1", "prod2"},
			"auth":    {"prod1"},
		},
		ServicesByProd: map[string][]string{
			"prod1": {"auth", "billing"},
			"prod2": {"billing"},
		},
		FilesScanned: 2,
	}

	writer := NewLocalReportWriter()
	dir := t.TempDir()

	tests := []struct {
		mode     ServiceCSVMode
		wantRows int
		wantStem string
	}{
		{CSVModeServices, 4, "services_services.csv"},
		{CSVModeProds, 3, "services_prods.csv"},
		{CSVModeSummary, 3, "services_summary.csv"},
	}

	for _, tt := range tests {
		path, err := writer.WriteServiceCSV(dir, tt.mode, index)
		if err != nil {
			t.Fatalf("mode %s: %v", tt.mode, err)
		}

		if filepath.Base(string(path)) != tt.wantStem {
			t.Errorf("mode %s wrote %s", tt.mode, path)
		}

		f, err := os.Open(string(path))
		if err != nil {
			t.Fatal(err)
		}

		rows, err := csv.NewReader(f).ReadAll()
		_ = f.Close()

		if err != nil {
			t.Fatalf("mode %s: invalid CSV: %v", tt.mode, err)
		}

		if len(rows) != tt.wantRows {
			t.Errorf("mode %s: %d rows, want %d", tt.mode, len(rows), tt.wantRows)
		}
	}
}

func TestWriteOptionsReportText(t *testing.T) {
	t.Parallel()

	result := m.OptionScanResult{
		OptionsByService: map[string]map[string][]string{
			"billing": {"prod1": {"-Xmx2g", "-ea"}},
		},
		DistinctOptions: []string{"-Xmx2g", "-ea"},
		FilesScanned:    1,
		FilesWithMatch:  1,
	}

	writer := NewLocalReportWriter()

	path, err := writer.WriteOptionsReport(t.TempDir(), m.FormatText, result)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(string(path))
	if err != nil {
		t.Fatal(err)
	}

	content := string(data)
	if !strings.Contains(content, "billing:") || !strings.Contains(content, "-Xmx2g -ea") {
		t.Errorf("missing option lines:\n%s", content)
	}
}
