package huffc

import (
	"bytes"
	"runtime"
	"strings"
	"testing"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/huff0"
)

var benchInput = []byte(strings.Repeat(
	"It was the best of times, it was the worst of times, it was the age "+
		"of wisdom, it was the age of foolishness, it was the epoch of belief. ", 512))

func BenchmarkCompress(b *testing.B) {
	b.SetBytes(int64(len(benchInput)))
	for i := 0; i < b.N; i++ {
		if _, err := Compress(benchInput); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCompressParallel(b *testing.B) {
	codec := NewCodec[byte](WithParallelism(runtime.NumCPU()))
	b.SetBytes(int64(len(benchInput)))
	for i := 0; i < b.N; i++ {
		if _, err := codec.Compress(benchInput); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkExtract(b *testing.B) {
	blob, err := Compress(benchInput)
	if err != nil {
		b.Fatal(err)
	}
	b.SetBytes(int64(len(benchInput)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Extract[byte](blob); err != nil {
			b.Fatal(err)
		}
	}
}

// The comparison benchmarks put the ratio and throughput of this codec next
// to established entropy coders over the same input.

func BenchmarkComparisonHuff0(b *testing.B) {
	b.SetBytes(int64(len(benchInput)))
	for i := 0; i < b.N; i++ {
		if _, _, err := huff0.Compress1X(benchInput, nil); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkComparisonFlate(b *testing.B) {
	b.SetBytes(int64(len(benchInput)))
	for i := 0; i < b.N; i++ {
		var buf bytes.Buffer
		w, err := flate.NewWriter(&buf, flate.BestSpeed)
		if err != nil {
			b.Fatal(err)
		}
		if _, err := w.Write(benchInput); err != nil {
			b.Fatal(err)
		}
		if err := w.Close(); err != nil {
			b.Fatal(err)
		}
	}
}
