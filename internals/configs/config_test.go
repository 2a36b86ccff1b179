package configs

import (
	"bytes"
	"log"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gormLogger "gorm.io/gorm/logger"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("TAHFIDZ_TEST_KEY", "abc")
	assert.Equal(t, "abc", GetEnv("TAHFIDZ_TEST_KEY"))
	assert.Equal(t, "fallback", GetEnv("TAHFIDZ_TEST_MISSING", "fallback"))
	assert.Equal(t, "", GetEnv("TAHFIDZ_TEST_MISSING"))
}

func TestTypedGetters(t *testing.T) {
	t.Setenv("TAHFIDZ_INT", "42")
	t.Setenv("TAHFIDZ_BAD_INT", "x")
	t.Setenv("TAHFIDZ_BOOL", "true")
	t.Setenv("TAHFIDZ_DUR", "3s")

	assert.Equal(t, 42, GetEnvInt("TAHFIDZ_INT", 1))
	assert.Equal(t, 7, GetEnvInt("TAHFIDZ_BAD_INT", 7))
	assert.True(t, GetEnvBool("TAHFIDZ_BOOL", false))
	assert.False(t, GetEnvBool("TAHFIDZ_BOOL_MISSING", false))
	assert.Equal(t, 3*time.Second, GetEnvDuration("TAHFIDZ_DUR", time.Second))
	assert.Equal(t, time.Second, GetEnvDuration("TAHFIDZ_DUR_MISSING", time.Second))
}

func TestTypedGetters_LogInvalidValue(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	t.Setenv("TAHFIDZ_BAD_INT", "x")
	t.Setenv("TAHFIDZ_BAD_BOOL", "yes please")
	t.Setenv("TAHFIDZ_BAD_DUR", "10")

	assert.Equal(t, 7, GetEnvInt("TAHFIDZ_BAD_INT", 7))
	assert.True(t, GetEnvBool("TAHFIDZ_BAD_BOOL", true))
	assert.Equal(t, time.Second, GetEnvDuration("TAHFIDZ_BAD_DUR", time.Second))

	out := buf.String()
	assert.Contains(t, out, `TAHFIDZ_BAD_INT bukan angka ("x")`)
	assert.Contains(t, out, `TAHFIDZ_BAD_BOOL bukan boolean ("yes please")`)
	assert.Contains(t, out, `TAHFIDZ_BAD_DUR bukan durasi ("10"), pakai default 1s`)
}

func TestDatabaseDSN(t *testing.T) {
	t.Setenv("DB_USER", "u")
	t.Setenv("DB_PASSWORD", "p")
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("DB_NAME", "tahfidz")
	t.Setenv("DB_SSLMODE", "disable")

	dsn := DatabaseDSN()
	assert.True(t, strings.HasPrefix(dsn, "postgres://u:p@localhost:6543/tahfidz?sslmode=disable"))
	assert.Contains(t, dsn, "statement_timeout=3000")
}

func TestGormLoggerLevel(t *testing.T) {
	t.Setenv("DB_LOG_QUERIES", "true")
	l := NewGormLogger().(*GormLogger)
	assert.Equal(t, gormLogger.Info, l.LogLevel)
	assert.Equal(t, gormLogger.Silent, l.LogMode(gormLogger.Silent).(*GormLogger).LogLevel)
}
