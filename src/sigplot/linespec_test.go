package sigplot

import (
	"errors"
	"testing"
)

func TestParseLineSpec(t *testing.T) {
	cases := []struct {
		in       string
		hasColor bool
		dashed   bool
		dots     bool
		noLine   bool
	}{
		{"", false, false, false, false},
		{"b-", true, false, false, false},
		{"r--", true, true, false, false},
		{"k:", true, true, false, false},
		{"g-.", true, true, false, false},
		{"m", true, false, false, false},
		{"--", false, true, false, false},
		{"bo", true, false, true, true},
		{"b-o", true, false, true, false},
		{"k.", true, false, true, true},
		{"x", false, false, true, true},
	}
	for _, cse := range cases {
		st, err := ParseLineSpec(cse.in)
		if err != nil {
			t.Fatalf("ParseLineSpec(%q): %v", cse.in, err)
		}
		if st.HasColor != cse.hasColor {
			t.Fatalf("%q: HasColor = %v want %v", cse.in, st.HasColor, cse.hasColor)
		}
		if (st.Dash != nil) != cse.dashed {
			t.Fatalf("%q: dashed = %v want %v", cse.in, st.Dash != nil, cse.dashed)
		}
		if st.Dots != cse.dots {
			t.Fatalf("%q: Dots = %v want %v", cse.in, st.Dots, cse.dots)
		}
		if st.NoLine != cse.noLine {
			t.Fatalf("%q: NoLine = %v want %v", cse.in, st.NoLine, cse.noLine)
		}
	}
}

func TestParseLineSpecRejectsGarbage(t *testing.T) {
	for _, in := range []string{"q-", "b!", "-x-", "bb", "r---"} {
		if _, err := ParseLineSpec(in); !errors.Is(err, ErrConfig) {
			t.Fatalf("ParseLineSpec(%q): expected ErrConfig, got %v", in, err)
		}
	}
}

func TestParseLineSpecColors(t *testing.T) {
	st, err := ParseLineSpec("r-")
	if err != nil {
		t.Fatalf("ParseLineSpec: %v", err)
	}
	if st.Color.R == 0 || st.Color.A != 0xFF {
		t.Fatalf("red spec produced color %+v", st.Color)
	}
}
