package config

import "testing"

func TestParseExtensions(t *testing.T) {
	exts := parseExtensions("pdf, .PNG ,jpg,,  ")
	want := []string{"pdf", "png", "jpg"}
	if len(exts) != len(want) {
		t.Fatalf("expected %d extensions, got %d (%v)", len(want), len(exts), exts)
	}
	for _, ext := range want {
		if _, ok := exts[ext]; !ok {
			t.Errorf("expected extension %q to be allowed", ext)
		}
	}
}

func TestNormalizeEnv(t *testing.T) {
	cases := map[string]string{
		"prod":       "production",
		"Production": "production",
		"staging":    "staging",
		"local":      "local",
		"dev":        "dev",
		"":           "dev",
		"whatever":   "dev",
	}
	for in, want := range cases {
		if got := normalizeEnv(in); got != want {
			t.Errorf("normalizeEnv(%q) = %q, want %q", in, got, want)
		}
	}
}
