package envconfig

import (
	"log/slog"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVar(t *testing.T) {
	t.Setenv("IM2ROW_TEST_VAR", `  "quoted"  `)
	assert.Equal(t, "quoted", Var("IM2ROW_TEST_VAR"))
}

func TestBool(t *testing.T) {
	cases := map[string]bool{
		"":      false,
		"1":     true,
		"true":  true,
		"0":     false,
		"false": false,
		"maybe": true,
	}
	for k, v := range cases {
		t.Run(k, func(t *testing.T) {
			t.Setenv("IM2ROW_TEST_BOOL", k)
			assert.Equal(t, v, Bool("IM2ROW_TEST_BOOL")())
		})
	}
}

func TestParallel(t *testing.T) {
	t.Setenv("IM2ROW_PARALLEL", "")
	assert.True(t, Parallel(true))

	t.Setenv("IM2ROW_PARALLEL", "false")
	assert.False(t, Parallel(true))
}

func TestNumThreads(t *testing.T) {
	cases := map[string]int{
		"":    runtime.NumCPU(),
		"0":   runtime.NumCPU(),
		"3":   3,
		"abc": runtime.NumCPU(),
		"-1":  runtime.NumCPU(),
	}
	for k, v := range cases {
		t.Run(k, func(t *testing.T) {
			t.Setenv("IM2ROW_NUM_THREADS", k)
			assert.Equal(t, v, NumThreads())
		})
	}
}

func TestMinChunk(t *testing.T) {
	t.Setenv("IM2ROW_MIN_CHUNK", "")
	assert.Equal(t, uint(16384), MinChunk())

	t.Setenv("IM2ROW_MIN_CHUNK", "512")
	assert.Equal(t, uint(512), MinChunk())
}

func TestLogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"":      slog.LevelInfo,
		"false": slog.LevelInfo,
		"t":     slog.LevelDebug,
		"1":     slog.LevelDebug,
		"2":     slog.Level(-8),
	}
	for k, v := range cases {
		t.Run(k, func(t *testing.T) {
			t.Setenv("IM2ROW_DEBUG", k)
			assert.Equal(t, v, LogLevel())
		})
	}
}

func TestAsMap(t *testing.T) {
	t.Setenv("IM2ROW_NUM_THREADS", "2")
	m := AsMap()
	assert.Len(t, m, 4)
	assert.Equal(t, 2, m["IM2ROW_NUM_THREADS"].Value)
	assert.Equal(t, "2", Values()["IM2ROW_NUM_THREADS"])
}
