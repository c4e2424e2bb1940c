package main

import (
	"encoding/json"
	"fmt"

	"github.com/arloliu/cesr/sad"
)

// genericRecord adapts an arbitrary JSON object to sad.Record without the
// caller needing a compile-time struct. It is the CLI's concession to
// operating on "whatever JSON the user hands it" rather than a typed
// record; library callers that know their record shape should implement
// sad.Record directly instead (see cesr.Seal's doc example).
type genericRecord struct {
	fields    map[string]any
	saidKeys  []string
	saidTexts []string
}

var _ sad.Record = (*genericRecord)(nil)

func newGenericRecord(raw []byte, saidKeys []string) (*genericRecord, error) {
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("decode record: %w", err)
	}

	r := &genericRecord{fields: fields, saidKeys: saidKeys}
	r.saidTexts = make([]string, len(saidKeys))
	for i, k := range saidKeys {
		if s, ok := fields[k].(string); ok {
			r.saidTexts[i] = s
		}
	}

	return r, nil
}

func (r *genericRecord) SaidFields() []*string {
	out := make([]*string, len(r.saidTexts))
	for i := range r.saidTexts {
		out[i] = &r.saidTexts[i]
	}

	return out
}

// MarshalJSON writes the object back out with saidTexts synced into their
// original keys. Field order follows encoding/json's map marshaling
// (sorted key order), which is deterministic but need not match the
// input's original key order.
func (r *genericRecord) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(r.fields))
	for k, v := range r.fields {
		out[k] = v
	}
	for i, k := range r.saidKeys {
		out[k] = r.saidTexts[i]
	}

	return json.Marshal(out)
}

// genericVersionedRecord additionally carries a version-string field, so
// sad.SAD.Seal routes it through sad.ComputeVersioned instead of
// sad.Compute.
type genericVersionedRecord struct {
	*genericRecord
	versionKey  string
	versionText string
	info        sad.VersionInfo
}

var _ sad.VersionedRecord = (*genericVersionedRecord)(nil)

func newGenericVersionedRecord(raw []byte, saidKeys []string, versionKey string, info sad.VersionInfo) (*genericVersionedRecord, error) {
	base, err := newGenericRecord(raw, saidKeys)
	if err != nil {
		return nil, err
	}

	r := &genericVersionedRecord{genericRecord: base, versionKey: versionKey, info: info}
	if s, ok := base.fields[versionKey].(string); ok {
		r.versionText = s
	}

	return r, nil
}

func (r *genericVersionedRecord) VersionField() *string        { return &r.versionText }
func (r *genericVersionedRecord) VersionInfo() sad.VersionInfo { return r.info }

func (r *genericVersionedRecord) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(r.fields)+1)
	for k, v := range r.fields {
		out[k] = v
	}
	for i, k := range r.saidKeys {
		out[k] = r.saidTexts[i]
	}
	out[r.versionKey] = r.versionText

	return json.Marshal(out)
}
