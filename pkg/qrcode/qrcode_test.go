package qrcode_test

import (
	"sattva/pkg/qrcode"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func render(p qrcode.Pattern) string {
	var b strings.Builder
	for _, filled := range p {
		if filled {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}

	return b.String()
}

func TestNew_KnownPatterns(t *testing.T) {
	require.Equal(t, "0011110110110100111010000", render(qrcode.New("b1")))
	require.Equal(t, "0000000010010101111101101", render(qrcode.New("b2")))
}

func TestNew_Deterministic(t *testing.T) {
	for _, id := range []string{"b1", "b_2mLq0sVb6uXg5tN0Dv8EmJ1v9bC", "बैच", "a-very-long-batch-identifier-0123456789"} {
		require.Equal(t, qrcode.New(id), qrcode.New(id), id)
	}
}

func TestNew_EmptyIDIsBlank(t *testing.T) {
	require.Equal(t, strings.Repeat("0", qrcode.Cells), render(qrcode.New("")))
}

func TestPattern_Filled(t *testing.T) {
	p := qrcode.New("b1")

	require.False(t, p.Filled(0, 0))
	require.True(t, p.Filled(0, 2))
	require.True(t, p.Filled(4, 0))
	require.False(t, p.Filled(-1, 0))
	require.False(t, p.Filled(0, qrcode.Size))
	require.Len(t, p.Bools(), qrcode.Cells)
}

func TestSVG(t *testing.T) {
	p := qrcode.New("b1")
	svg := qrcode.SVG(p, 10)

	require.True(t, strings.HasPrefix(svg, `<svg xmlns="http://www.w3.org/2000/svg" width="50" height="50"`))
	require.True(t, strings.HasSuffix(svg, `</svg>`))
	require.Equal(t, strings.Count(render(p), "1"), strings.Count(svg, `fill="#000000"`))
	require.Contains(t, svg, `<rect x="20" y="0" width="10" height="10" fill="#000000"/>`)

	require.Contains(t, qrcode.SVG(p, 0), `width="40"`)
}
