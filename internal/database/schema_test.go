package database

import (
	"strings"
	"testing"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatements(t *testing.T) {
	stmts := Statements()
	assert.Len(t, stmts, 7)
	for _, s := range stmts {
		assert.False(t, strings.HasPrefix(s, "--"), s)
		assert.NotContains(t, s, ";")
	}
	assert.Contains(t, stmts[0], "CREATE TABLE IF NOT EXISTS houses")
	assert.Contains(t, stmts[4], "INSERT IGNORE INTO counters")
}

func TestDSN(t *testing.T) {
	dsn := DSN("box", "s3cret", "db.local", "3306", "cinema")
	cfg, err := mysql.ParseDSN(dsn)
	require.NoError(t, err)
	assert.Equal(t, "box", cfg.User)
	assert.Equal(t, "s3cret", cfg.Passwd)
	assert.Equal(t, "db.local:3306", cfg.Addr)
	assert.Equal(t, "cinema", cfg.DBName)
	assert.True(t, cfg.ParseTime)
	assert.Equal(t, time.UTC, cfg.Loc)
	assert.Contains(t, dsn, "charset=utf8mb4")
}
