package tides

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestScanLine(t *testing.T) {
	table := []struct {
		input   string
		want    Line
		wantOK  bool
		wantErr bool
	}{{
		input:  "06:15 - High Tide (7.42m)",
		want:   Line{Clock: "06:15", Type: High, Height: 7.42},
		wantOK: true,
	}, {
		input:  "14:03 - Low Tide &#x28;1.10m&#x29;",
		want:   Line{Clock: "14:03", Type: Low, Height: 1.1},
		wantOK: true,
	}, {
		// the same listing with literal parens must parse identically
		input:  "14:03 - Low Tide (1.10m)",
		want:   Line{Clock: "14:03", Type: Low, Height: 1.1},
		wantOK: true,
	}, {
		input:  "Tide times for Burry Port",
		wantOK: false,
	}, {
		input:  "",
		wantOK: false,
	}, {
		// wrong type token
		input:  "06:15 - Slack Tide (7.42m)",
		wantOK: false,
	}, {
		// height with a stray extra dot matches the pattern but fails to parse
		input:   "06:15 - High Tide (7.4.2m)",
		wantErr: true,
	}}

	for _, test := range table {
		t.Run(test.input, func(t *testing.T) {
			got, ok, err := ScanLine(test.input)
			if test.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %+v", err)
			}
			if ok != test.wantOK {
				t.Fatalf("got ok=%t, want %t", ok, test.wantOK)
			}
			if diff := cmp.Diff(got, test.want); diff != "" {
				t.Errorf("incorrect scan (-got,+want): %s", diff)
			}
		})
	}
}

func TestStripTags(t *testing.T) {
	input := `<a href="https://example.com">Burry Port</a>06:15 - High Tide (7.42m)<br/>18:42 - High Tide (7.21m)`
	want := "\nBurry Port\n06:15 - High Tide (7.42m)\n18:42 - High Tide (7.21m)"
	if got := StripTags(input); got != want {
		t.Errorf("got  %q", got)
		t.Errorf("want %q", want)
	}
}

func TestParseHeight(t *testing.T) {
	table := []struct {
		input   string
		want    float64
		wantErr bool
	}{
		{input: "7.42m", want: 7.42},
		{input: "7.42", want: 7.42},
		{input: " 2.559m ", want: 2.56},
		{input: "0m", want: 0},
		{input: "-0.2m", wantErr: true},
		{input: "sevenm", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, test := range table {
		t.Run(test.input, func(t *testing.T) {
			got, err := ParseHeight(test.input)
			if test.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %f", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %+v", err)
			}
			if got != test.want {
				t.Errorf("got %f, want %f", got, test.want)
			}
		})
	}
}
