package mdpdf

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func benchmarkSource(sections int) []byte {
	var b strings.Builder
	b.WriteString("# Masterclass\n## Benchmark\n\n")
	for i := 0; i < sections; i++ {
		fmt.Fprintf(&b, "### Section %d\n\n", i)
		b.WriteString("Paragraph with **bold** and *italic* text that runs on for a while.\n\n")
		b.WriteString("- first **item**\n- second item\n* third item\n\n---\n\n")
	}
	return []byte(b.String())
}

func BenchmarkTranslate(b *testing.B) {
	data := benchmarkSource(200)
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	reader := bytes.NewReader(data)
	for i := 0; i < b.N; i++ {
		reader.Reset(data)
		_, err := Translate(TranslateRequest{Reader: reader})
		require.NoError(b, err)
	}
}

func BenchmarkClassify(b *testing.B) {
	lines := strings.Split(string(benchmarkSource(20)), "\n")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, l := range lines {
			_ = Classify(l)
		}
	}
}
