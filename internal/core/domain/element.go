// Package domain contains the core domain models for the model explorer.
package domain

import (
	"encoding/json"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
)

// Ownership keys whose entries are treated as child references, in the
// order the server lists them.
var childRefKeys = []string{"ownedMember", "ownedFeature"}

// Element is one node of the remote model graph. ID and Type are the
// extracted "@id" and "@type" tags; Data holds the full decoded JSON
// body, including the reference lists that point at children.
//
// An element's id is stable and globally unique within a project+commit.
// Child references may point at elements that have not been fetched yet.
type Element struct {
	ID   string
	Type string
	Data map[string]any
}

// DecodeElement decodes a raw JSON body into an Element.
// It fails if the body is not a JSON object or carries no "@id".
func DecodeElement(body []byte) (Element, error) {
	var data map[string]any
	if err := json.Unmarshal(body, &data); err != nil {
		return Element{}, zerr.Wrap(err, ErrElementDecode.Error())
	}
	return ElementFromMap(data)
}

// ElementFromMap builds an Element from an already-decoded JSON object.
func ElementFromMap(data map[string]any) (Element, error) {
	id, _ := data["@id"].(string)
	if id == "" {
		return Element{}, zerr.With(ErrElementDecode, "reason", "missing @id")
	}
	typ, _ := data["@type"].(string)
	return Element{ID: id, Type: typ, Data: data}, nil
}

// Name returns the best available display name for the element,
// falling back to the id when the server provides none.
func (e Element) Name() string {
	for _, key := range []string{"declaredName", "declaredShortName", "name", "qualifiedName"} {
		if v, ok := e.Data[key].(string); ok && v != "" {
			return v
		}
	}
	return e.ID
}

// ChildRefs returns the ids referenced by ownedMember and ownedFeature,
// de-duplicated while preserving the original reference order. A feature
// already listed as a member appears once.
func (e Element) ChildRefs() []string {
	var refs []string
	seen := make(map[string]struct{})
	for _, key := range childRefKeys {
		for _, id := range e.refIDs(key) {
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			refs = append(refs, id)
		}
	}
	return refs
}

// HasChildRefs reports whether the element declares any child references.
func (e Element) HasChildRefs() bool {
	for _, key := range childRefKeys {
		if len(e.refIDs(key)) > 0 {
			return true
		}
	}
	return false
}

// refIDs extracts the "@id" values from a list of {"@id": ...} references.
func (e Element) refIDs(key string) []string {
	list, ok := e.Data[key].([]any)
	if !ok {
		return nil
	}
	ids := make([]string, 0, len(list))
	for _, entry := range list {
		ref, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		if id, ok := ref["@id"].(string); ok && id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// Digest returns a content digest of the element body over its canonical
// JSON form. encoding/json marshals maps with sorted keys, so two bodies
// that differ only in field order produce the same digest. This is the
// equality used by commit diffing.
func (e Element) Digest() uint64 {
	canonical, err := json.Marshal(e.Data)
	if err != nil {
		// Data was produced by json.Unmarshal, so this cannot happen
		// for real payloads; treat it as a unique digest.
		return xxhash.Sum64String(e.ID)
	}
	return xxhash.Sum64(canonical)
}

// PrettyJSON returns the indented canonical JSON body, used by detail
// views and unified diffs.
func (e Element) PrettyJSON() string {
	pretty, err := json.MarshalIndent(e.Data, "", "  ")
	if err != nil {
		return ""
	}
	return string(pretty)
}

// Project is a container of commits on the model server.
type Project struct {
	ID          string
	Name        string
	Description string
}

// Commit is an immutable snapshot of a project's element graph.
type Commit struct {
	ID          string
	Created     string
	Description string
}
