package x12_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/ginjaninja78/edi-document-renderer/internal/x12"
)

func TestSplitTransactionSets(t *testing.T) {
	raw := standardISA +
		"GS*PO*S*R*20210101*1200*1*X*004010~" +
		"ST*850*0001~BEG*00*SA*A1**20210101~SE*3*0001~" +
		"ST*850*0002~BEG*00*SA*A2**20210101~SE*3*0002~" +
		"GE*2*1~IEA*1*000000001~"

	sets := x12.Parse(raw).TransactionSets()
	require.Len(t, sets, 2)

	for i, set := range sets {
		assert.Equal(t, "850", set.Code)
		assert.True(t, set.Terminated)
		assert.Empty(t, set.Warning())
		assert.Equal(t, "ST", set.Segments[0].ID)
		assert.Equal(t, "SE", set.Segments[len(set.Segments)-1].ID)

		body := set.Body()
		require.Len(t, body, 1)
		assert.Equal(t, []string{"A1", "A2"}[i], body[0].Element(3))
	}
}

func TestSplitTransactionSets_UnterminatedIsFlagged(t *testing.T) {
	segs := []x12.Segment{
		x12.NewSegment("ST", "850", "0001"),
		x12.NewSegment("BEG", "00", "SA", "LOST"),
		x12.NewSegment("ST", "850", "0002"),
		x12.NewSegment("BEG", "00", "SA", "KEPT"),
		x12.NewSegment("SE", "3", "0002"),
		x12.NewSegment("ST", "810", "0003"),
		x12.NewSegment("BIG", "20210101", "INV1"),
	}

	sets := x12.SplitTransactionSets(segs)
	require.Len(t, sets, 3)

	assert.False(t, sets[0].Terminated)
	assert.Equal(t, "0001", sets[0].ControlNumber)
	assert.Equal(t, "LOST", sets[0].Body()[0].Element(3))
	assert.Contains(t, sets[0].Warning(), "0001")

	assert.True(t, sets[1].Terminated)

	assert.False(t, sets[2].Terminated)
	assert.Equal(t, "810", sets[2].Code)
}

func TestSplitTransactionSets_EnvelopeClosesOpenSet(t *testing.T) {
	segs := []x12.Segment{
		x12.NewSegment("ST", "850", "0001"),
		x12.NewSegment("BEG", "00", "SA", "PO1"),
		x12.NewSegment("GE", "1", "1"),
		x12.NewSegment("BEG", "00", "SA", "OUTSIDE"),
	}

	sets := x12.SplitTransactionSets(segs)
	require.Len(t, sets, 1)
	assert.False(t, sets[0].Terminated)
	assert.Len(t, sets[0].Segments, 2)
}

func TestSplitTransactionSets_IgnoresStraySegments(t *testing.T) {
	segs := []x12.Segment{
		x12.NewSegment("BEG", "00"),
		x12.NewSegment("SE", "1", "0001"),
	}

	assert.Empty(t, x12.SplitTransactionSets(segs))
}

func TestReadAll_Windows1252(t *testing.T) {
	latin1, err := charmap.Windows1252.NewEncoder().String("N1*BY*Café Müller~")
	require.NoError(t, err)

	got, err := x12.ReadAll(bytes.NewReader([]byte(latin1)))
	require.NoError(t, err)
	assert.Equal(t, "N1*BY*Café Müller~", got)
}

func TestReadAll_StripsBOM(t *testing.T) {
	input := append([]byte{0xEF, 0xBB, 0xBF}, []byte("ST*850*0001~")...)

	got, err := x12.ReadAll(bytes.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, "ST*850*0001~", got)
}

func TestReadAll_PlainUTF8(t *testing.T) {
	got, err := x12.ReadAll(strings.NewReader("ST*850*0001~"))
	require.NoError(t, err)
	assert.Equal(t, "ST*850*0001~", got)
}

func TestReadAll_UTF16WithBOM(t *testing.T) {
	encoded, err := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder().String("N1*ST*Łódź~")
	require.NoError(t, err)

	got, err := x12.ReadAll(strings.NewReader(encoded))
	require.NoError(t, err)
	assert.Equal(t, "N1*ST*Łódź~", got)
}

func TestDetectEncoding(t *testing.T) {
	assert.Nil(t, x12.DetectEncoding([]byte("ISA*00*~")))
	assert.Equal(t, unicode.UTF8BOM, x12.DetectEncoding([]byte{0xEF, 0xBB, 0xBF, 'S', 'T'}))
}
