package x12_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/edi-document-renderer/internal/x12"
)

func TestSplitSegments_StripsLineBreaks(t *testing.T) {
	body := "ST*850*0001~\r\nBEG*00*SA*PO1~\n\n  ~SE*3*0001~"

	got := x12.SplitSegments(body, x12.DefaultDelimiters)

	assert.Equal(t, []string{"ST*850*0001", "BEG*00*SA*PO1", "SE*3*0001"}, got)
}

func TestSplitSegments_LineBreakTerminator(t *testing.T) {
	d := x12.Delimiters{Element: '*', SubElement: ':', Segment: '\n'}
	body := "ST*850*0001\r\nBEG*00*SA*PO1\rSE*3*0001\n"

	got := x12.SplitSegments(body, d)

	assert.Equal(t, []string{"ST*850*0001", "BEG*00*SA*PO1", "SE*3*0001"}, got)
}

func TestParseSegments(t *testing.T) {
	d := x12.Delimiters{Element: '*', SubElement: '>', Segment: '~'}
	segs := x12.ParseSegments("ST*850*0001~AK4*2>1*66*1~n1*BY*Acme~", d)
	require.Len(t, segs, 3)

	assert.Equal(t, "ST", segs[0].ID)
	assert.Equal(t, "850", segs[0].Element(1))
	assert.Equal(t, "0001", segs[0].Element(2))

	assert.Equal(t, "2", segs[1].Component(1, 1))
	assert.Equal(t, "1", segs[1].Component(1, 2))
	assert.Equal(t, "", segs[1].Component(1, 3))

	assert.Equal(t, "N1", segs[2].ID, "identifiers are upper-cased")
}

func TestSegment_ElementOutOfRange(t *testing.T) {
	seg := x12.NewSegment("BEG", "00", "SA")

	assert.Equal(t, "", seg.Element(0))
	assert.Equal(t, "SA", seg.Element(2))
	assert.Equal(t, "", seg.Element(9))
	assert.Equal(t, 2, seg.Len())
	assert.Equal(t, "BEG*00*SA", seg.String())
}
