package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/im2row/im2row"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewCLI()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "im2row "+version+"\n", out)
}

func TestLayoutCmd(t *testing.T) {
	out, err := run(t, "layout", "--size", "3,3,1", "--window", "2", "--stride", "1")
	require.NoError(t, err)

	assert.Contains(t, out, "3x3x1")
	assert.Contains(t, out, "window=2x2 stride=1x1 pad=[0 0 0 0] dilate=1x1")
	assert.Regexp(t, `patches\s+2x2`, out)
	assert.Regexp(t, `elements\s+16`, out)
	assert.Regexp(t, `float64 bytes\s+128`, out)
}

func TestLayoutCmd_InvalidGeometry(t *testing.T) {
	_, err := run(t, "layout", "--size", "3,3,1", "--window", "5")
	assert.ErrorIs(t, err, im2row.ErrNoPatches)

	_, err = run(t, "layout", "--size", "3,3")
	assert.ErrorContains(t, err, "--size")
}

func TestCheckCmd(t *testing.T) {
	out, err := run(t, "check", "--size", "7,5,2", "--window", "3,2", "--stride", "2,1", "--pad", "1,0,2,1", "--dilate", "2,1", "--trials", "2")
	require.NoError(t, err)

	assert.Equal(t, 4, strings.Count(out, "ok"))
	assert.NotContains(t, out, "FAIL")
	assert.Contains(t, out, "float32")
	assert.Contains(t, out, "float64")
}

func TestBenchCmd(t *testing.T) {
	t.Setenv("IM2ROW_NUM_THREADS", "2")
	out, err := run(t, "bench", "--size", "8,8,2", "-n", "2", "--dtype", "f64")
	require.NoError(t, err)

	assert.Regexp(t, `forward\s+sequential`, out)
	assert.Regexp(t, `forward\s+parallel`, out)
	assert.Regexp(t, `backward\s+sequential`, out)
	assert.Regexp(t, `backward\s+parallel`, out)

	_, err = run(t, "bench", "--size", "8,8,2", "--dtype", "int8")
	assert.Error(t, err)

	_, err = run(t, "bench", "--size", "8,8,2", "-n", "0")
	assert.Error(t, err)
}

func TestEnvCmd(t *testing.T) {
	t.Setenv("IM2ROW_NUM_THREADS", "5")
	out, err := run(t, "env")
	require.NoError(t, err)
	assert.Regexp(t, `IM2ROW_NUM_THREADS\s+5`, out)
	assert.Contains(t, out, "IM2ROW_MIN_CHUNK")
}

func TestGeometryFlags_Resolve(t *testing.T) {
	tests := []struct {
		name  string
		flags geometryFlags
		want  im2row.Geometry
	}{
		{
			name:  "scalars",
			flags: geometryFlags{size: []int{8, 8, 1}, window: []int{3}, stride: []int{2}, pad: []int{1}, dilate: []int{1}},
			want:  im2row.Uniform(3, 2, 1, 1),
		},
		{
			name:  "pairs",
			flags: geometryFlags{size: []int{8, 8, 1}, window: []int{3, 2}, stride: []int{1, 2}, pad: []int{1, 0}, dilate: []int{2, 1}},
			want: im2row.Geometry{
				WindowWidth: 3, WindowHeight: 2, StrideX: 1, StrideY: 2,
				PadLeft: 1, PadRight: 1, DilateX: 2, DilateY: 1,
			},
		},
		{
			name:  "four paddings",
			flags: geometryFlags{size: []int{8, 8, 1}, window: []int{1}, stride: []int{1}, pad: []int{1, 2, 3, 4}, dilate: []int{1}},
			want: im2row.Geometry{
				WindowWidth: 1, WindowHeight: 1, StrideX: 1, StrideY: 1,
				PadLeft: 1, PadRight: 2, PadTop: 3, PadBottom: 4, DilateX: 1, DilateY: 1,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shape, g, l, err := tt.flags.resolve()
			require.NoError(t, err)
			assert.Equal(t, im2row.Volume{Width: 8, Height: 8, Depth: 1}, shape)
			assert.Equal(t, tt.want, g)
			assert.Equal(t, g, l.Geometry)
		})
	}

	bad := geometryFlags{size: []int{8, 8, 1}, window: []int{1, 2, 3}, stride: []int{1}, pad: []int{0}, dilate: []int{1}}
	_, _, _, err := bad.resolve()
	assert.ErrorContains(t, err, "--window")

	bad = geometryFlags{size: []int{8, 8, 1}, window: []int{1}, stride: []int{1}, pad: []int{0, 0, 0}, dilate: []int{1}}
	_, _, _, err = bad.resolve()
	assert.ErrorContains(t, err, "--pad")
}
