package filterexpr

import (
	"testing"
	"time"
)

var testSchema = Schema{
	"name":      KindString,
	"count":     KindInt,
	"pinned":    KindBool,
	"tags":      KindStringList,
	"createdAt": KindTimestamp,
}

func vars(name string, count int, pinned bool, tags []string) map[string]any {
	return map[string]any{
		"name":      name,
		"count":     count,
		"pinned":    pinned,
		"tags":      tags,
		"createdAt": time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestCompileAndEvaluate(t *testing.T) {
	cases := []struct {
		expr string
		vars map[string]any
		want bool
	}{
		{`count >= 10`, vars("a", 12, false, nil), true},
		{`count >= 10`, vars("a", 3, false, nil), false},
		{`name.startsWith("tra")`, vars("travel", 0, false, nil), true},
		{`"b1" in tags`, vars("a", 0, false, []string{"travel", "b1"}), true},
		{`"b1" in tags`, vars("a", 0, false, []string{}), false},
		{`pinned && count > 0`, vars("a", 1, true, nil), true},
		{`createdAt < timestamp("2027-01-01T00:00:00Z")`, vars("a", 0, false, nil), true},
	}
	for _, tc := range cases {
		pred, err := Compile(tc.expr, testSchema)
		if err != nil {
			t.Fatalf("%s: %v", tc.expr, err)
		}
		if tc.vars["tags"] == nil {
			tc.vars["tags"] = []string{}
		}
		got, err := pred(tc.vars)
		if err != nil {
			t.Fatalf("%s: %v", tc.expr, err)
		}
		if got != tc.want {
			t.Errorf("%s = %v, want %v", tc.expr, got, tc.want)
		}
	}
}

func TestCompileRejectsEmptyExpression(t *testing.T) {
	if _, err := Compile("", testSchema); err == nil {
		t.Fatal("expected error for empty expression")
	}
}

func TestCompileRejectsUnknownField(t *testing.T) {
	if _, err := Compile(`owner == "amy"`, testSchema); err == nil {
		t.Fatal("expected error for undeclared variable")
	}
}

func TestCompileRejectsNonBoolean(t *testing.T) {
	if _, err := Compile(`count + 1`, testSchema); err == nil {
		t.Fatal("expected error for non-boolean expression")
	}
}

func TestCompileRejectsSyntaxError(t *testing.T) {
	if _, err := Compile(`count >=`, testSchema); err == nil {
		t.Fatal("expected parse error")
	}
}
