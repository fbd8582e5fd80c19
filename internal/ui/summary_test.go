package ui

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestByteSize(t *testing.T) {
	assert.Equal(t, "0 B", ByteSize(0))
	assert.Equal(t, "1023 B", ByteSize(1023))
	assert.Equal(t, "1.50 KB", ByteSize(1536))
	assert.Equal(t, "2.00 MB", ByteSize(2<<20))
	assert.Equal(t, "3.00 GB", ByteSize(3<<30))
	assert.Equal(t, "2048.00 GB", ByteSize(2<<40))
}

func TestBuildSummaryFprint(t *testing.T) {
	var b bytes.Buffer
	BuildSummary{Pages: 17, Characters: 15, Bytes: 40 << 10, Elapsed: 2400 * time.Millisecond}.Fprint(&b)

	assert.Equal(t, "Build Summary:\nPages:      17\nCharacters: 15\nData:       40.00 KB\nTime:       2s\n", b.String())
}
