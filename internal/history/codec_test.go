package history

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tulikamejora/homework-help/internal/domain"
)

func TestDecode_LegacyBrowserPayload(t *testing.T) {
	payload := `[{"id":"1718000000000","config":{"subject":"🧬 Biology","length":"📝 Just Right Size (300 - 600 words)","educationLevel":"🌟 Middle School Master"},"homework":"# Custom Assignment","createdAt":"2024-06-10T06:13:20.000Z"}]`

	records, err := Decode([]byte(payload))
	require.NoError(t, err)
	require.Len(t, records, 1)

	r := records[0]
	assert.Equal(t, "1718000000000", r.ID)
	assert.Equal(t, "🧬 Biology", r.Config.Subject)
	assert.Equal(t, "# Custom Assignment", r.Document)
	assert.True(t, r.CreatedAt.Equal(time.Date(2024, 6, 10, 6, 13, 20, 0, time.UTC)))
}

func TestDecode_DocumentKeyAccepted(t *testing.T) {
	payload := `[{"id":"a","config":{"subject":"s","length":"l","educationLevel":"e"},"document":"body","createdAt":"2024-06-10T06:13:20Z"}]`
	records, err := Decode([]byte(payload))
	require.NoError(t, err)
	assert.Equal(t, "body", records[0].Document)
}

func TestDecode_EmptyAndNull(t *testing.T) {
	records, err := Decode(nil)
	require.NoError(t, err)
	assert.Empty(t, records)

	records, err = Decode([]byte("null"))
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestEncode_FieldNames(t *testing.T) {
	data, err := Encode(nil)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))

	rec := domain.HistoryRecord{ID: "x", Document: "doc", CreatedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)}
	raw, err := Encode([]domain.HistoryRecord{rec})
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"homework":"doc"`)
	assert.Contains(t, string(raw), `"createdAt":"2024-01-02T03:04:05Z"`)
	assert.NotContains(t, string(raw), `"customTopic"`)
	assert.NotContains(t, string(raw), `"document"`)
}

func TestDecode_CreatedAtVariants(t *testing.T) {
	payload := `[
		{"id":"iso","homework":"a","createdAt":"2024-06-10T06:13:20.000Z"},
		{"id":"millis","homework":"b","createdAt":1718000000000},
		{"id":"empty","homework":"c","createdAt":""},
		{"id":"missing","homework":"d"}
	]`
	records, err := Decode([]byte(payload))
	require.NoError(t, err)
	require.Equal(t, []string{"iso", "millis", "empty", "missing"}, ids(records))

	want := time.Date(2024, 6, 10, 6, 13, 20, 0, time.UTC)
	assert.True(t, records[0].CreatedAt.Equal(want))
	assert.True(t, records[1].CreatedAt.Equal(want))
	assert.True(t, records[2].CreatedAt.IsZero())
	assert.True(t, records[3].CreatedAt.IsZero())
	assert.Equal(t, "c", records[2].Document)
}

func TestDecode_SkipsMalformedElements(t *testing.T) {
	payload := `[{"id":"good","homework":"a"}, "stray", {"id":42}, {"id":"also-good","homework":"b"}]`
	records, err := Decode([]byte(payload))
	require.NoError(t, err)
	assert.Equal(t, []string{"good", "also-good"}, ids(records))
}

func TestDecode_NotAnArray(t *testing.T) {
	_, err := Decode([]byte(`{"id":"x"}`))
	assert.Error(t, err)
}
