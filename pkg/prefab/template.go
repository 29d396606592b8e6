package prefab

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/valyala/fasttemplate"

	"github.com/matzehuels/breadboard/pkg/errors"
)

// Packager turns a base64 container payload into a host document.
type Packager interface {
	Package(name, payload string) (string, error)
}

// Meta holds the author details embedded in a prefab document.
type Meta struct {
	GameVersion string
	CreatorName string
	CreatorID   string
	ObjectID    string
}

// DefaultMeta returns the author details of the stock prefab document.
func DefaultMeta() Meta {
	return Meta{
		GameVersion: "3.8.0.4",
		CreatorName: "DeltaForce",
		CreatorID:   "0ab41fc3-fd53-4843-becf-7608b7c315b7",
		ObjectID:    "5bb43b25-8e79-4e92-9db3-076b363114a7",
	}
}

// Template tags.
const (
	TagName        = "name"
	TagBlockData   = "block_data"
	TagGameVersion = "game_version"
	TagCreatorName = "creator_name"
	TagCreatorID   = "creator_id"
	TagObjectID    = "object_id"
)

const (
	startTag = "{{"
	endTag   = "}}"
)

// Template is a [Packager] backed by a fasttemplate text.
type Template struct {
	tpl  *fasttemplate.Template
	meta Meta
}

// NewTemplate parses text and checks that it only uses known tags and
// contains a block_data tag.
func NewTemplate(text string, meta Meta) (*Template, error) {
	tpl, err := fasttemplate.NewTemplate(text, startTag, endTag)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse prefab template")
	}

	hasData := false
	_, err = tpl.ExecuteFuncStringWithErr(func(w io.Writer, tag string) (int, error) {
		if tag == TagBlockData {
			hasData = true
		}
		if !knownTag(tag) {
			return 0, errors.New(errors.ErrCodeInvalidConfig, "unknown prefab template tag %q", tag)
		}
		return 0, nil
	})
	if err != nil {
		return nil, err
	}
	if !hasData {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "prefab template has no %s%s%s tag", startTag, TagBlockData, endTag)
	}
	return &Template{tpl: tpl, meta: meta}, nil
}

// DefaultTemplate returns the stock host prefab document.
func DefaultTemplate(meta Meta) *Template {
	t, err := NewTemplate(defaultDocument, meta)
	if err != nil {
		panic(err)
	}
	return t
}

// Meta returns the author details the template substitutes.
func (t *Template) Meta() Meta { return t.meta }

// Package renders the document for the named payload.
func (t *Template) Package(name, payload string) (string, error) {
	if err := errors.ValidateName(name); err != nil {
		return "", err
	}
	values := map[string]string{
		TagName:        name,
		TagBlockData:   payload,
		TagGameVersion: t.meta.GameVersion,
		TagCreatorName: t.meta.CreatorName,
		TagCreatorID:   t.meta.CreatorID,
		TagObjectID:    t.meta.ObjectID,
	}
	return t.tpl.ExecuteFuncStringWithErr(func(w io.Writer, tag string) (int, error) {
		return io.WriteString(w, jsonEscape(values[tag]))
	})
}

func knownTag(tag string) bool {
	switch tag {
	case TagName, TagBlockData, TagGameVersion, TagCreatorName, TagCreatorID, TagObjectID:
		return true
	}
	return false
}

// jsonEscape returns s escaped for use inside a JSON string literal.
func jsonEscape(s string) string {
	b, err := json.Marshal(s)
	if err != nil {
		return s
	}
	return strings.TrimSuffix(strings.TrimPrefix(string(b), `"`), `"`)
}
