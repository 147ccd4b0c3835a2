// Package blocks implements the structured content model for article bodies:
// an ordered sequence of typed blocks (paragraph, heading, image, quote,
// list, ordered list) with per-type metadata. Sequences are value-like: every
// operation returns a fresh slice so the three language variants of an
// article can evolve independently even when one started as a copy of
// another.
package blocks

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Type tags a content block variant. The set is closed; anything else is
// rejected when decoding stored content.
type Type string

const (
	TypeParagraph   Type = "paragraph"
	TypeHeading     Type = "heading"
	TypeImage       Type = "image"
	TypeQuote       Type = "quote"
	TypeList        Type = "list"
	TypeOrderedList Type = "ordered-list"
)

// Valid reports whether t belongs to the closed variant set.
func (t Type) Valid() bool {
	switch t {
	case TypeParagraph, TypeHeading, TypeImage, TypeQuote, TypeList, TypeOrderedList:
		return true
	}
	return false
}

// IsList reports whether the block stores its payload in metadata items
// rather than in the content field.
func (t Type) IsList() bool {
	return t == TypeList || t == TypeOrderedList
}

// ErrUnknownType is returned when decoding a block whose type tag is not in
// the variant set.
var ErrUnknownType = errors.New("blocks: unknown block type")

// Metadata is the per-variant payload attached to a block. Paragraph and
// quote blocks carry none.
type Metadata interface {
	blockMetadata()
}

// HeadingMeta holds the heading level (1-3, default 2).
type HeadingMeta struct {
	Level int `json:"level"`
}

// ImageMeta holds accessibility and display text for an image block. The
// IsLocalFile flag marks an unsaved local preview whose content is still a
// data URI rather than a permanent URL; it is transient and cleared once the
// image is uploaded.
type ImageMeta struct {
	Alt         string `json:"alt,omitempty"`
	Caption     string `json:"caption,omitempty"`
	IsLocalFile bool   `json:"isLocalFile,omitempty"`
}

// ListMeta holds the ordered items of a list or ordered-list block. Insertion
// order is display order and the sequence always keeps at least one item.
type ListMeta struct {
	Items []string `json:"items"`
}

func (HeadingMeta) blockMetadata() {}
func (ImageMeta) blockMetadata()   {}
func (ListMeta) blockMetadata()    {}

// Block is one unit of article content. ID is opaque, generated at creation,
// and stable for the block's lifetime; order within a sequence is the only
// ordering signal.
type Block struct {
	ID      string
	Type    Type
	Content string
	Meta    Metadata
}

// blockJSON mirrors the persisted column shape.
type blockJSON struct {
	ID       string          `json:"id"`
	Type     Type            `json:"type"`
	Content  string          `json:"content"`
	Metadata json.RawMessage `json:"metadata,omitempty"`
}

// MarshalJSON encodes the block in the legacy column shape, emitting the
// metadata object only for variants that carry one.
func (b Block) MarshalJSON() ([]byte, error) {
	out := blockJSON{ID: b.ID, Type: b.Type, Content: b.Content}
	if b.Meta != nil {
		raw, err := json.Marshal(b.Meta)
		if err != nil {
			return nil, err
		}
		out.Metadata = raw
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes the block, selecting the metadata variant from the
// type tag and applying variant defaults for absent fields.
func (b *Block) UnmarshalJSON(data []byte) error {
	var raw blockJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if !raw.Type.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownType, raw.Type)
	}

	b.ID = raw.ID
	b.Type = raw.Type
	b.Content = raw.Content
	b.Meta = nil

	switch raw.Type {
	case TypeHeading:
		meta := HeadingMeta{Level: DefaultHeadingLevel}
		if len(raw.Metadata) > 0 {
			if err := json.Unmarshal(raw.Metadata, &meta); err != nil {
				return err
			}
		}
		if meta.Level < 1 || meta.Level > 3 {
			meta.Level = DefaultHeadingLevel
		}
		b.Meta = meta
	case TypeImage:
		var meta ImageMeta
		if len(raw.Metadata) > 0 {
			if err := json.Unmarshal(raw.Metadata, &meta); err != nil {
				return err
			}
		}
		b.Meta = meta
	case TypeList, TypeOrderedList:
		var meta ListMeta
		if len(raw.Metadata) > 0 {
			if err := json.Unmarshal(raw.Metadata, &meta); err != nil {
				return err
			}
		}
		meta.Items = normalizeItems(meta.Items)
		b.Meta = meta
	}

	return nil
}

// Items returns the list payload, or nil for non-list blocks.
func (b Block) Items() []string {
	meta, ok := b.Meta.(ListMeta)
	if !ok {
		return nil
	}
	out := make([]string, len(meta.Items))
	copy(out, meta.Items)
	return out
}

// Level returns the heading level, or zero for non-heading blocks.
func (b Block) Level() int {
	meta, ok := b.Meta.(HeadingMeta)
	if !ok {
		return 0
	}
	return meta.Level
}

// Image returns the image metadata and whether the block is an image block.
func (b Block) Image() (ImageMeta, bool) {
	meta, ok := b.Meta.(ImageMeta)
	return meta, ok
}

// MarshalSequence encodes a block sequence for the persisted jsonb column.
func MarshalSequence(seq []Block) ([]byte, error) {
	if seq == nil {
		return []byte("null"), nil
	}
	return json.Marshal(seq)
}

// DecodeSequence parses a stored column value, rejecting unknown block types.
// A SQL NULL (or JSON null) decodes to a nil sequence.
func DecodeSequence(data []byte) ([]Block, error) {
	if len(data) == 0 || string(data) == "null" {
		return nil, nil
	}
	var seq []Block
	if err := json.Unmarshal(data, &seq); err != nil {
		return nil, err
	}
	return seq, nil
}
