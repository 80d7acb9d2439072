package cmd

import "testing"

func TestBase(t *testing.T) {
	env := newTestEnv(t)

	if got := env.line("base", "foo/qux.html"); got != "qux.html" {
		t.Errorf("base foo/qux.html = %q, want %q", got, "qux.html")
	}
	if got := env.line("base", "foo/qux.html", "--strip", "html"); got != "qux" {
		t.Errorf("base --strip html = %q, want %q", got, "qux")
	}
	if got := env.line("base", "a.tar.gz", "--strip", ".tar.gz"); got != "a" {
		t.Errorf("base --strip .tar.gz = %q, want %q", got, "a")
	}
}

func TestExt(t *testing.T) {
	env := newTestEnv(t)

	t.Run("change replaces the whole run", func(t *testing.T) {
		if got := env.line("ext", "change", "a.x.y", ".z"); got != "a.z" {
			t.Errorf("ext change a.x.y .z = %q, want %q", got, "a.z")
		}
		if got := env.line("ext", "change", "a", "z"); got != "a.z" {
			t.Errorf("ext change a z = %q, want %q", got, "a.z")
		}
	})

	t.Run("change-last replaces only the final group", func(t *testing.T) {
		if got := env.line("ext", "change-last", "a.x.y", ".z"); got != "a.x.z" {
			t.Errorf("ext change-last a.x.y .z = %q, want %q", got, "a.x.z")
		}
	})

	t.Run("change-last rejects multi-dot extensions", func(t *testing.T) {
		out, err := env.runErr("ext", "change-last", "a.x", ".y.z")
		if err == nil {
			t.Fatalf("ext change-last with .y.z succeeded, want error\noutput: %s", out)
		}
		env.contains(out, "more than one dot")
	})

	t.Run("has", func(t *testing.T) {
		if got := env.line("ext", "has", "a.x", ".x", ".y"); got != "true" {
			t.Errorf("ext has a.x .x .y = %q, want %q", got, "true")
		}
		if got := env.line("ext", "has", "a.z", ".x", ".y"); got != "false" {
			t.Errorf("ext has a.z .x .y = %q, want %q", got, "false")
		}
	})

	t.Run("JSON output", func(t *testing.T) {
		out := env.run("ext", "change", "a.x", "y", "-o", "json")
		env.contains(out, `{"result":"a.y"}`)
	})
}
