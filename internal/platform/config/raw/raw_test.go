package raw

import "testing"

func TestLoad(t *testing.T) {
	t.Setenv("LOG_LEVEL", " warn ")
	t.Setenv("LOG_FORMAT", "   ")
	t.Setenv("LOGX_LEVEL", "trace")

	env := Load("LOG_")
	if got := env.Str("LEVEL", "info"); got != "warn" {
		t.Fatalf("LEVEL = %q", got)
	}
	if got := env.Str("FORMAT", "console"); got != "console" {
		t.Fatalf("blank FORMAT should fall back, got %q", got)
	}
	if _, ok := env["X_LEVEL"]; ok {
		t.Fatalf("neighbouring prefix leaked into snapshot")
	}
}

func TestBool(t *testing.T) {
	env := Env{"A": "1", "B": "TRUE", "C": "yes", "D": "no", "E": "0", "F": "maybe"}
	cases := []struct {
		key  string
		def  bool
		want bool
	}{
		{"A", false, true},
		{"B", false, true},
		{"C", false, true},
		{"D", true, false},
		{"E", true, false},
		{"F", true, true},
		{"MISSING", true, true},
	}
	for _, c := range cases {
		if got := env.Bool(c.key, c.def); got != c.want {
			t.Fatalf("Bool(%s) = %v, want %v", c.key, got, c.want)
		}
	}
}

func TestInt(t *testing.T) {
	env := Env{"N": "25", "NEG": "-3", "BAD": "2x"}
	cases := map[string]int{"N": 25, "NEG": 7, "BAD": 7, "MISSING": 7}
	for key, want := range cases {
		if got := env.Int(key, 7); got != want {
			t.Fatalf("Int(%s) = %d, want %d", key, got, want)
		}
	}
}
