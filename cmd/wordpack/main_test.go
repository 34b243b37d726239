package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"random-word/internal/codec"
)

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		want     string
	}{
		{
			name:     "zero duration",
			duration: 0,
			want:     "0s",
		},
		{
			name:     "one second",
			duration: 1 * time.Second,
			want:     "1s",
		},
		{
			name:     "rounds half second up",
			duration: 1500 * time.Millisecond,
			want:     "2s",
		},
		{
			name:     "29 minutes 59 seconds",
			duration: 29*time.Minute + 59*time.Second,
			want:     "29m59s",
		},
		{
			name:     "159 minutes 59 seconds",
			duration: 159*time.Minute + 59*time.Second,
			want:     "159m59s",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatElapsed(tt.duration)
			assert.Equal(t, tt.want, got, "formatElapsed should return expected format for %v", tt.duration)
		})
	}
}

func TestRun(t *testing.T) {
	in := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(in, "pets.txt"), []byte("cat\ncar\ndog\n"), 0644))
	out := filepath.Join(t.TempDir(), "data")

	var stdout bytes.Buffer
	err := run(context.Background(), options{inputDir: in, outputDir: out, codec: "lz4"}, &stdout)
	require.NoError(t, err)

	assert.Contains(t, stdout.String(), "Codec: lz4")
	assert.Contains(t, stdout.String(), "pets")
	assert.Contains(t, stdout.String(), "Words: 3")
	assert.FileExists(t, filepath.Join(out, "pets.lz4"))
}

func TestRun_UnknownCodec(t *testing.T) {
	err := run(context.Background(), options{inputDir: t.TempDir(), outputDir: t.TempDir(), codec: "snappy"}, &bytes.Buffer{})
	assert.ErrorIs(t, err, codec.ErrUnknownCodec)
}
