package render

import (
	"cvbuilder-backend/docgen/catalog"
	"cvbuilder-backend/docgen/model"
)

// BlockType enumerates the layout primitives encoders understand.
type BlockType string

const (
	BlockHeading BlockType = "heading"
	BlockText    BlockType = "text"
	BlockList    BlockType = "list"
	BlockRule    BlockType = "rule"
)

// Scale is a size hint relative to body text. Encoders map it to concrete
// point sizes; the engine never deals in typography.
type Scale string

const (
	ScaleTitle Scale = "title"
	ScaleBody  Scale = "body"
	ScaleSmall Scale = "small"
)

// Block is a single positioned layout element. Template decoration (accent
// color, emphasis) travels as attributes; paint concerns stay in encoders.
type Block struct {
	Type   BlockType
	Text   string
	Items  []string
	Bold   bool
	Accent bool
	Scale  Scale
}

// BlockGroup collects the blocks of one content section.
type BlockGroup struct {
	Section string
	Blocks  []Block
}

// RenderedDocument is the ephemeral intermediate representation between
// canonical content and a concrete byte encoding. It is owned by a single
// export call and discarded after encoding.
type RenderedDocument struct {
	Kind            model.Kind
	TemplateID      string
	TemplateVersion int
	Layout          catalog.Layout
	Accent          string
	Groups          []BlockGroup
}

func text(s string) Block  { return Block{Type: BlockText, Text: s, Scale: ScaleBody} }
func small(s string) Block { return Block{Type: BlockText, Text: s, Scale: ScaleSmall} }
func bold(s string) Block  { return Block{Type: BlockText, Text: s, Bold: true, Scale: ScaleBody} }

func heading(s string) Block {
	return Block{Type: BlockHeading, Text: s, Bold: true, Accent: true, Scale: ScaleBody}
}

func title(s string) Block {
	return Block{Type: BlockHeading, Text: s, Bold: true, Accent: true, Scale: ScaleTitle}
}

func list(items []string) Block {
	return Block{Type: BlockList, Items: items, Scale: ScaleBody}
}

func rule() Block {
	return Block{Type: BlockRule, Accent: true}
}
