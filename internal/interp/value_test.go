package interp

import "testing"

func TestParseValue(t *testing.T) {
	cases := []struct {
		in   string
		mag  float64
		unit string
	}{
		{"10px", 10, "px"},
		{"-4.5%", -4.5, "%"},
		{"120", 120, ""},
		{"0.5cell", 0.5, "cell"},
		{"+3vh", 3, "vh"},
	}
	for _, c := range cases {
		v, err := ParseValue(c.in)
		if err != nil {
			t.Fatalf("ParseValue(%q): %v", c.in, err)
		}
		if v.Magnitude != c.mag || v.Unit != c.unit {
			t.Fatalf("ParseValue(%q) = {%v %q}, want {%v %q}", c.in, v.Magnitude, v.Unit, c.mag, c.unit)
		}
	}
}

func TestParseValueRejectsNonNumbers(t *testing.T) {
	for _, in := range []string{"", "px", "px10", "--"} {
		if _, err := ParseValue(in); err == nil {
			t.Fatalf("expected error for %q", in)
		}
	}
}

func TestValueStringUsesShortestForm(t *testing.T) {
	cases := []struct {
		v    Value
		want string
	}{
		{Value{Magnitude: 15, Unit: "px"}, "15px"},
		{Value{Magnitude: 0.5}, "0.5"},
		{Value{Magnitude: -2.25, Unit: "%"}, "-2.25%"},
		{Value{Magnitude: 100, Unit: "cell"}, "100cell"},
	}
	for _, c := range cases {
		if got := c.v.String(); got != c.want {
			t.Fatalf("String() = %q, want %q", got, c.want)
		}
	}
}

func TestChildProgress(t *testing.T) {
	cases := []struct {
		p, start, end, want float64
	}{
		{0.2, 0.2, 0.6, 0},
		{0.6, 0.2, 0.6, 1},
		{0.4, 0.2, 0.6, 0.5},
		{0.0, 0.2, 0.6, 0}, // clamped below
		{0.9, 0.2, 0.6, 1}, // clamped above
		{0.5, 0.5, 0.5, 0}, // degenerate parent range
		{0.25, 1, 0, 0.75}, // reversed parent range
	}
	for _, c := range cases {
		if got := ChildProgress(c.p, c.start, c.end); !almostEqual(got, c.want) {
			t.Fatalf("ChildProgress(%v, %v, %v) = %v, want %v", c.p, c.start, c.end, got, c.want)
		}
	}
}

func TestClamp01(t *testing.T) {
	if Clamp01(-0.5) != 0 || Clamp01(1.5) != 1 || Clamp01(0.3) != 0.3 {
		t.Fatal("Clamp01 bounds wrong")
	}
}

func TestEasingByNameUnknown(t *testing.T) {
	if _, err := EasingByName("wobble"); err == nil {
		t.Fatal("expected error for unknown easing")
	}
}

func TestEasingNamesCoverRegistry(t *testing.T) {
	names := EasingNames()
	if len(names) != len(easings) {
		t.Fatalf("expected %d names, got %d", len(easings), len(names))
	}
	for _, name := range names {
		fn, err := EasingByName(name)
		if err != nil {
			t.Fatalf("EasingByName(%q): %v", name, err)
		}
		if fn == nil {
			t.Fatalf("nil easing for %q", name)
		}
	}
}
