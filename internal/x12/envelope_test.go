package x12_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ginjaninja78/edi-document-renderer/internal/x12"
)

func TestExtractEnvelope_Standard(t *testing.T) {
	raw := standardISA + "GS*PO*APPSENDER*APPRECEIVER*20220315*1200*7*X*004010~ST*850*0001~SE*2*0001~"
	ic := x12.Parse(raw)

	env := ic.Envelope
	assert.Equal(t, "SENDER", env.SenderID)
	assert.Equal(t, "RECEIVER", env.ReceiverID)
	assert.Equal(t, "000000001", env.ControlNumber)
	assert.Equal(t, "20210101", env.InterchangeDate)
	assert.Equal(t, "20220315", env.GroupDate)
	assert.Equal(t, "20220315", env.Date, "group date wins when well formed")
	assert.Equal(t, "PO", env.FunctionalID)
	assert.Equal(t, "APPSENDER", env.GroupSenderID)
	assert.Equal(t, "7", env.GroupControlNumber)
	assert.Equal(t, "004010", env.Version)
	assert.Len(t, env.Headers, 2)
}

func TestExtractEnvelope_InterchangeDateFallback(t *testing.T) {
	raw := standardISA + "GS*PO*A*B*BAD*1200*7*X*004010~ST*850*0001~SE*2*0001~"
	env := x12.Parse(raw).Envelope

	assert.Equal(t, "20210101", env.Date)
	assert.Equal(t, "BAD", env.GroupDate)
}

func TestExtractEnvelope_AbbreviatedHeader(t *testing.T) {
	env := x12.Parse(abbreviatedInput).Envelope

	assert.Equal(t, "SENDER.........", env.SenderID)
	assert.Equal(t, "RECEIVER.......", env.ReceiverID)
	assert.Equal(t, "000000001", env.ControlNumber)
	assert.Equal(t, "20210101", env.Date)
}

func TestExtractEnvelope_StopsAtTransactionStart(t *testing.T) {
	segs := []x12.Segment{
		x12.NewSegment("ST", "850", "0001"),
		x12.NewSegment("GS", "PO", "A", "B", "20230101"),
	}

	env := x12.ExtractEnvelope(segs)

	assert.Empty(t, env.Headers)
	assert.Empty(t, env.Date)
}

func TestExtractEnvelope_NoHeader(t *testing.T) {
	env := x12.Parse("garbage without structure").Envelope

	assert.Equal(t, x12.Envelope{}, env)
}
