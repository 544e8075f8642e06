package catalog

import "testing"

func TestIsKnownExtension(t *testing.T) {
	cases := []struct {
		ext  string
		want bool
	}{
		{"mp4", true},
		{".mp4", true},
		{"MKV", true},
		{" flac ", true},
		{"exe", false},
		{"", false},
		{".", false},
	}
	for _, tc := range cases {
		if got := IsKnownExtension(tc.ext); got != tc.want {
			t.Errorf("IsKnownExtension(%q) = %v, want %v", tc.ext, got, tc.want)
		}
	}
}

func TestCommonOutputFormatsAreKnown(t *testing.T) {
	for _, format := range CommonOutputFormats {
		if !IsKnownExtension(format) {
			t.Errorf("output format %q missing from extension catalog", format)
		}
	}
}
