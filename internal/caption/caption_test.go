package caption

import "testing"

func TestExtract(t *testing.T) {
	tests := []struct {
		name      string
		caption   string
		wantTitle string
		wantYear  int
	}{
		{
			name:      "Parenthesized year",
			caption:   "Spring Fever (2025) S01E08 720p",
			wantTitle: "Spring Fever",
			wantYear:  2025,
		},
		{
			name:      "Parenthesized year without trailing text",
			caption:   "Haq (2025)",
			wantTitle: "Haq",
			wantYear:  2025,
		},
		{
			name:      "Year with inner spaces",
			caption:   "Old Classic ( 1999 ) remaster",
			wantTitle: "Old Classic",
			wantYear:  1999,
		},
		{
			name:      "No year falls back to first five tokens",
			caption:   "Haq 2025 720p NF WEBRip x264",
			wantTitle: "Haq 2025 720p NF WEBRip",
			wantYear:  0,
		},
		{
			name:      "Dot separated release name",
			caption:   "The.Long.Walk.2160p.WEB-DL.DDP5.1",
			wantTitle: "The Long Walk 2160p WEB",
			wantYear:  0,
		},
		{
			name:      "Fewer than five tokens",
			caption:   "Night Train",
			wantTitle: "Night Train",
			wantYear:  0,
		},
		{
			name:      "Pipe and underscore separators",
			caption:   "Some_Show|S02|1080p",
			wantTitle: "Some Show S02 1080p",
			wantYear:  0,
		},
		{
			name:      "Empty caption",
			caption:   "",
			wantTitle: "",
			wantYear:  0,
		},
		{
			name:      "Whitespace only",
			caption:   "   ",
			wantTitle: "",
			wantYear:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, year := Extract(tt.caption)
			if title != tt.wantTitle {
				t.Errorf("Extract(%q) title = %q, want %q", tt.caption, title, tt.wantTitle)
			}
			if year != tt.wantYear {
				t.Errorf("Extract(%q) year = %d, want %d", tt.caption, year, tt.wantYear)
			}
		})
	}
}
