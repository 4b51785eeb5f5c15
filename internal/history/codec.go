package history

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"

	"github.com/tulikamejora/homework-help/internal/domain"
)

type configJSON struct {
	Subject        string `json:"subject"`
	Length         string `json:"length"`
	EducationLevel string `json:"educationLevel"`
	CustomTopic    string `json:"customTopic,omitempty"`
}

// recordJSON is the persisted shape of a HistoryRecord. Older entries may
// carry the text under "document" instead of "homework".
type recordJSON struct {
	ID        string          `json:"id"`
	Config    configJSON      `json:"config"`
	Homework  string          `json:"homework"`
	Document  string          `json:"document,omitempty"`
	CreatedAt json.RawMessage `json:"createdAt"`
}

func toJSON(r domain.HistoryRecord) recordJSON {
	return recordJSON{
		ID: r.ID,
		Config: configJSON{
			Subject:        r.Config.Subject,
			Length:         r.Config.Length,
			EducationLevel: r.Config.EducationLevel,
			CustomTopic:    r.Config.CustomTopic,
		},
		Homework:  r.Document,
		CreatedAt: json.RawMessage(strconv.Quote(r.CreatedAt.UTC().Format(time.RFC3339Nano))),
	}
}

func fromJSON(j recordJSON) domain.HistoryRecord {
	doc := j.Homework
	if doc == "" {
		doc = j.Document
	}
	return domain.HistoryRecord{
		ID: j.ID,
		Config: domain.Configuration{
			Subject:        j.Config.Subject,
			Length:         j.Config.Length,
			EducationLevel: j.Config.EducationLevel,
			CustomTopic:    j.Config.CustomTopic,
		},
		Document:  doc,
		CreatedAt: parseCreatedAt(j.CreatedAt),
	}
}

// parseCreatedAt accepts an RFC 3339 string or epoch milliseconds. Anything
// else yields the zero time so the rest of the record survives.
func parseCreatedAt(raw json.RawMessage) time.Time {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return time.Time{}
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		t, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return time.Time{}
		}
		return t
	}
	var ms float64
	if err := json.Unmarshal(raw, &ms); err == nil {
		return time.UnixMilli(int64(ms)).UTC()
	}
	return time.Time{}
}

// Encode serializes records as a JSON array in the given order.
func Encode(records []domain.HistoryRecord) ([]byte, error) {
	out := make([]recordJSON, len(records))
	for i, r := range records {
		out[i] = toJSON(r)
	}
	return json.Marshal(out)
}

// Decode parses a JSON array of records. Empty input decodes to no records.
// Only content that is not a JSON array is an error; an element that does
// not decode as a record is skipped and the others are kept.
func Decode(data []byte) ([]domain.HistoryRecord, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	out := make([]domain.HistoryRecord, 0, len(raw))
	for _, elem := range raw {
		var j recordJSON
		if err := json.Unmarshal(elem, &j); err != nil {
			continue
		}
		out = append(out, fromJSON(j))
	}
	return out, nil
}
