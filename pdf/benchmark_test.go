package pdf

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func BenchmarkRender(b *testing.B) {
	var src strings.Builder
	for i := 0; i < 100; i++ {
		src.WriteString("### Section\n\nJustified **body** text with *emphasis* that wraps over several lines of the column at eleven points.\n\n- item one\n- item two\n\n")
	}
	doc := translate(b, src.String(), "")
	cfg := testConfig()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		err := Render(RenderRequest{Document: doc, Writer: io.Discard, Config: cfg})
		require.NoError(b, err)
	}
}
