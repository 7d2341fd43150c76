package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// FeatureNames are the numeric attributes read for charts and prediction.
var FeatureNames = [4]string{"feature1", "feature2", "feature3", "feature4"}

const (
	recordFieldID        = "id"
	recordFieldFeatures  = "features"
	recordFieldTarget    = "target"
	recordFieldTimestamp = "timestamp"
)

// DataRecord is a record produced by the collector. The original JSON
// object is kept verbatim and written back unchanged on save; only the
// fields the client reads are decoded, lazily.
type DataRecord struct {
	raw    json.RawMessage
	fields map[string]json.RawMessage
}

func ParseDataRecord(data []byte) (DataRecord, error) {
	var record DataRecord
	if err := record.UnmarshalJSON(data); err != nil {
		return DataRecord{}, err
	}
	return record, nil
}

func (r *DataRecord) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("decode data record: %w", err)
	}

	r.raw = append(json.RawMessage(nil), data...)
	r.fields = fields
	return nil
}

func (r DataRecord) MarshalJSON() ([]byte, error) {
	if len(r.raw) == 0 {
		return []byte("{}"), nil
	}
	return r.raw, nil
}

func (r DataRecord) Raw() json.RawMessage {
	return append(json.RawMessage(nil), r.raw...)
}

func (r DataRecord) ID() string {
	return scalarText(r.fields[recordFieldID])
}

func (r DataRecord) Timestamp() string {
	return scalarText(r.fields[recordFieldTimestamp])
}

// Feature returns a numeric attribute, looked up in the nested
// "features" object first and then at the top level (flat CSV rows).
func (r DataRecord) Feature(name string) (float64, bool) {
	if nested := r.nested(); nested != nil {
		if value, ok := decodeNumber(nested[name]); ok {
			return value, true
		}
	}
	return decodeNumber(r.fields[name])
}

// Target returns the categorical label of the record. The top-level
// field wins over one nested under "features".
func (r DataRecord) Target() (Label, bool) {
	if raw, ok := r.fields[recordFieldTarget]; ok && !isNull(raw) {
		return labelFromRaw(raw), true
	}
	if nested := r.nested(); nested != nil {
		if raw, ok := nested[recordFieldTarget]; ok && !isNull(raw) {
			return labelFromRaw(raw), true
		}
	}
	return "", false
}

// FeaturesJSON is the compact JSON of the record's features. Flat
// records get an object built from the top-level feature fields.
func (r DataRecord) FeaturesJSON() string {
	if raw, ok := r.fields[recordFieldFeatures]; ok {
		var buf bytes.Buffer
		if err := json.Compact(&buf, raw); err == nil {
			return buf.String()
		}
		return string(raw)
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	written := 0
	for _, name := range FeatureNames {
		raw, ok := r.fields[name]
		if !ok {
			continue
		}
		if written > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(strconv.Quote(name))
		buf.WriteByte(':')
		_ = json.Compact(&buf, raw)
		written++
	}
	buf.WriteByte('}')
	return buf.String()
}

func (r DataRecord) nested() map[string]json.RawMessage {
	raw, ok := r.fields[recordFieldFeatures]
	if !ok {
		return nil
	}

	var nested map[string]json.RawMessage
	if err := json.Unmarshal(raw, &nested); err != nil {
		return nil
	}
	return nested
}

func decodeNumber(raw json.RawMessage) (float64, bool) {
	if len(raw) == 0 || isNull(raw) {
		return 0, false
	}

	var value float64
	if err := json.Unmarshal(raw, &value); err != nil {
		return 0, false
	}
	return value, true
}

func scalarText(raw json.RawMessage) string {
	if len(raw) == 0 || isNull(raw) {
		return ""
	}

	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return text
	}
	return string(bytes.TrimSpace(raw))
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// Label is a class label. The model service may emit labels as strings or
// as numbers; both decode to their textual form.
type Label string

func (l *Label) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		*l = ""
		return nil
	}

	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		*l = Label(text)
		return nil
	}

	var number json.Number
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	if err := decoder.Decode(&number); err == nil {
		*l = Label(number.String())
		return nil
	}

	var flag bool
	if err := json.Unmarshal(data, &flag); err == nil {
		*l = Label(strconv.FormatBool(flag))
		return nil
	}

	return fmt.Errorf("decode label: unsupported value %s", string(data))
}

func (l Label) String() string {
	return string(l)
}

func labelFromRaw(raw json.RawMessage) Label {
	var label Label
	if err := label.UnmarshalJSON(raw); err != nil {
		return Label(bytes.TrimSpace(raw))
	}
	return label
}

// Feature is a prediction input. Values that are not finite numbers
// encode as JSON null, which is how an unparseable field reaches the
// server.
type Feature float64

func (f Feature) MarshalJSON() ([]byte, error) {
	value := float64(f)
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(value, 'g', -1, 64)), nil
}

func (f Feature) IsNumber() bool {
	value := float64(f)
	return !math.IsNaN(value) && !math.IsInf(value, 0)
}

// Batch is a complete, non-empty set of records from one collection. It
// is never mutated after construction.
type Batch struct {
	records []DataRecord
}

// NewBatch copies records into a batch. It reports false for an empty
// input, since the session never holds an empty batch.
func NewBatch(records []DataRecord) (*Batch, bool) {
	if len(records) == 0 {
		return nil, false
	}

	copied := make([]DataRecord, len(records))
	copy(copied, records)
	return &Batch{records: copied}, true
}

func (b *Batch) Records() []DataRecord {
	out := make([]DataRecord, len(b.records))
	copy(out, b.records)
	return out
}

func (b *Batch) Len() int {
	return len(b.records)
}
