// Package envconfig reads the IM2ROW_* environment variables that tune the
// transform drivers and the CLI.
package envconfig

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strconv"
	"strings"
)

// Var returns an environment variable stripped of leading and trailing quotes
// and spaces.
func Var(key string) string {
	return strings.Trim(strings.TrimSpace(os.Getenv(key)), "\"'")
}

// BoolWithDefault returns a getter for a boolean variable. A set but
// unparsable value counts as true.
func BoolWithDefault(k string) func(defaultValue bool) bool {
	return func(defaultValue bool) bool {
		if s := Var(k); s != "" {
			b, err := strconv.ParseBool(s)
			if err != nil {
				return true
			}
			return b
		}
		return defaultValue
	}
}

// Bool returns a getter for a boolean variable that defaults to false.
func Bool(k string) func() bool {
	withDefault := BoolWithDefault(k)
	return func() bool {
		return withDefault(false)
	}
}

// Uint returns a getter for an unsigned variable with a default value.
func Uint(key string, defaultValue uint) func() uint {
	return func() uint {
		if s := Var(key); s != "" {
			if n, err := strconv.ParseUint(s, 10, 64); err != nil {
				slog.Warn("invalid environment variable, using default", "key", key, "value", s, "default", defaultValue)
			} else {
				return uint(n)
			}
		}
		return defaultValue
	}
}

var (
	// Parallel enables the parallel drivers (IM2ROW_PARALLEL, default true).
	Parallel = BoolWithDefault("IM2ROW_PARALLEL")
	// MinChunk is the minimum number of element operations handed to one
	// goroutine (IM2ROW_MIN_CHUNK).
	MinChunk = Uint("IM2ROW_MIN_CHUNK", 16384)

	numThreads = Uint("IM2ROW_NUM_THREADS", 0)
)

// NumThreads returns the number of worker goroutines (IM2ROW_NUM_THREADS).
// Zero or unset means one per CPU.
func NumThreads() int {
	if n := numThreads(); n > 0 {
		return int(n)
	}
	return runtime.NumCPU()
}

// LogLevel returns the log level (IM2ROW_DEBUG).
// 0/false = INFO (default), 1/true = DEBUG, 2 = TRACE.
func LogLevel() slog.Level {
	level := slog.LevelInfo
	if s := Var("IM2ROW_DEBUG"); s != "" {
		if b, _ := strconv.ParseBool(s); b {
			level = slog.LevelDebug
		} else if i, _ := strconv.ParseInt(s, 10, 64); i != 0 {
			level = slog.Level(i * -4)
		}
	}

	return level
}

// EnvVar describes one environment variable and its current value.
type EnvVar struct {
	Name        string
	Value       any
	Description string
}

// AsMap returns every variable with its effective value.
func AsMap() map[string]EnvVar {
	return map[string]EnvVar{
		"IM2ROW_DEBUG":       {"IM2ROW_DEBUG", LogLevel(), "Show additional debug information (e.g. IM2ROW_DEBUG=1)"},
		"IM2ROW_PARALLEL":    {"IM2ROW_PARALLEL", Parallel(true), "Run the parallel drivers on multiple goroutines"},
		"IM2ROW_NUM_THREADS": {"IM2ROW_NUM_THREADS", NumThreads(), "Number of worker goroutines (default: one per CPU)"},
		"IM2ROW_MIN_CHUNK":   {"IM2ROW_MIN_CHUNK", MinChunk(), "Minimum element operations per goroutine"},
	}
}

// Values returns the effective values formatted as strings.
func Values() map[string]string {
	vals := make(map[string]string)
	for k, v := range AsMap() {
		vals[k] = fmt.Sprintf("%v", v.Value)
	}
	return vals
}
