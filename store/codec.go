package store

import "encoding/json"

// Encode converts a typed record into an opaque Document using its json
// tags, so stored field names match the wire names.
func Encode(v any) (Document, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Decode maps a Document back onto a typed record.
func Decode(doc Document, out any) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

// DecodeAll maps a slice of documents onto a slice of typed records.
func DecodeAll(docs []Document, out any) error {
	raw, err := json.Marshal(docs)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}
