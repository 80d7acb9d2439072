package cmd

import "testing"

func TestResolve(t *testing.T) {
	env := newTestEnv(t)

	t.Run("single path normalises", func(t *testing.T) {
		if got := env.line("resolve", "a//b/"); got != "a/b" {
			t.Errorf("resolve a//b/ = %q, want %q", got, "a/b")
		}
		if got := env.line("resolve", "a/b/.."); got != "a" {
			t.Errorf("resolve a/b/.. = %q, want %q", got, "a")
		}
	})

	t.Run("fold left to right", func(t *testing.T) {
		if got := env.line("resolve", "a/b", "c/d", "e/f", ".."); got != "a/b/c/d/e" {
			t.Errorf("resolve fold = %q, want %q", got, "a/b/c/d/e")
		}
	})

	t.Run("later absolute path overrides", func(t *testing.T) {
		if got := env.line("resolve", "/foo", "/bar"); got != "/bar" {
			t.Errorf("resolve /foo /bar = %q, want %q", got, "/bar")
		}
	})

	t.Run("no arguments", func(t *testing.T) {
		if got := env.line("resolve"); got != "" {
			t.Errorf("resolve with no args = %q, want empty", got)
		}
	})

	t.Run("windows platform keeps the prefix", func(t *testing.T) {
		if got := env.line("-p", "windows", "resolve", "C:/", "a"); got != "C:/a" {
			t.Errorf("resolve C:/ a = %q, want %q", got, "C:/a")
		}
		if got := env.line("-p", "windows", "resolve", "C:/", "D:/"); got != "D:/" {
			t.Errorf("resolve C:/ D:/ = %q, want %q", got, "D:/")
		}
	})

	t.Run("JSON output", func(t *testing.T) {
		out := env.run("resolve", "a/b", "..", "-o", "json")
		env.contains(out, `{"result":"a"}`)
	})

	t.Run("invalid platform rejected", func(t *testing.T) {
		out, err := env.runErr("-p", "plan9", "resolve", "a")
		if err == nil {
			t.Fatalf("resolve with -p plan9 succeeded, want error\noutput: %s", out)
		}
		env.contains(out, "unknown platform variant")
	})
}

func TestAbs(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		args []string
		want string
	}{
		{[]string{"-p", "generic", "abs", "/a/b"}, "true"},
		{[]string{"-p", "generic", "abs", "a/b"}, "false"},
		{[]string{"-p", "generic", "abs", "C:/x"}, "false"},
		{[]string{"-p", "windows", "abs", "C:/x"}, "true"},
		{[]string{"-p", "windows", "abs", `\\server\share`}, "true"},
	}

	for _, tt := range tests {
		if got := env.line(tt.args...); got != tt.want {
			t.Errorf("pathcalc %v = %q, want %q", tt.args, got, tt.want)
		}
	}
}
