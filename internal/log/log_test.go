package log

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	// Use temp directory for test database
	tmpDir := t.TempDir()
	origDBPath := dbPathFunc
	dbPathFunc = func() string {
		return filepath.Join(tmpDir, "log", "test.db")
	}
	defer func() { dbPathFunc = origDBPath }()

	t.Run("open and close", func(t *testing.T) {
		err := Open()
		require.NoError(t, err)
		defer Close()

		assert.FileExists(t, DBPath())
	})

	t.Run("log entry", func(t *testing.T) {
		require.NoError(t, Open())
		defer Close()

		Event("resolve:resolve", "resolve").
			Variant("generic").
			Inputs("a/b", "..").
			Result("a").
			Write(nil)

		db, err := sql.Open("sqlite", DBPath())
		require.NoError(t, err)
		defer db.Close()

		var count int
		require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM log").Scan(&count))
		assert.Equal(t, 1, count)

		var source, action, variant, inputs, result string
		var success int
		err = db.QueryRow("SELECT source, action, variant, inputs, result, success FROM log WHERE id = 1").
			Scan(&source, &action, &variant, &inputs, &result, &success)
		require.NoError(t, err)
		assert.Equal(t, "resolve:resolve", source)
		assert.Equal(t, "resolve", action)
		assert.Equal(t, "generic", variant)
		assert.Equal(t, "a/b\x1f..", inputs)
		assert.Equal(t, "a", result)
		assert.Equal(t, 1, success)
	})

	t.Run("log error entry", func(t *testing.T) {
		Close()
		require.NoError(t, Open())
		defer Close()

		Event("resolve:relative", "relative").
			Variant("windows").
			Inputs("not/absolute", "C:/x").
			Write(errors.New("path is not absolute"))

		db, err := sql.Open("sqlite", DBPath())
		require.NoError(t, err)
		defer db.Close()

		var success int
		var errMsg string
		err = db.QueryRow("SELECT success, error FROM log ORDER BY id DESC LIMIT 1").
			Scan(&success, &errMsg)
		require.NoError(t, err)
		assert.Equal(t, 0, success)
		assert.Equal(t, "path is not absolute", errMsg)
	})

	t.Run("write without open is a no-op", func(t *testing.T) {
		Close()
		Event("resolve:resolve", "resolve").Write(nil) // must not panic
	})
}
