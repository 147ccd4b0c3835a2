package blocks_test

import (
	"testing"
	"time"

	"github.com/camarabr/chamber-cms/blocks"
)

func fixedFactory() *blocks.Factory {
	n := 0
	return blocks.NewFactory(
		blocks.WithClock(func() time.Time { return time.UnixMilli(1700000000000) }),
		blocks.WithRandom(func() string {
			n++
			return []string{"aaaaaaaaa", "bbbbbbbbb", "ccccccccc"}[(n-1)%3]
		}),
	)
}

func strptr(s string) *string { return &s }
func intptr(i int) *int       { return &i }

func sampleSeq() []blocks.Block {
	return []blocks.Block{
		{ID: "b1", Type: blocks.TypeHeading, Content: "Título", Meta: blocks.HeadingMeta{Level: 2}},
		{ID: "b2", Type: blocks.TypeParagraph, Content: "Um parágrafo."},
		{ID: "b3", Type: blocks.TypeList, Meta: blocks.ListMeta{Items: []string{"um", "dois"}}},
	}
}

func TestFactoryDefaults(t *testing.T) {
	f := fixedFactory()

	h := f.New(blocks.TypeHeading)
	if h.ID != "block-1700000000000-aaaaaaaaa" {
		t.Fatalf("unexpected id %q", h.ID)
	}
	if h.Level() != blocks.DefaultHeadingLevel {
		t.Fatalf("heading level = %d, want %d", h.Level(), blocks.DefaultHeadingLevel)
	}

	l := f.New(blocks.TypeList)
	if items := l.Items(); len(items) != 1 || items[0] != "" {
		t.Fatalf("new list should start with one empty item, got %v", items)
	}

	p := f.New(blocks.TypeParagraph)
	if p.Meta != nil {
		t.Fatal("paragraphs carry no metadata")
	}
}

func TestUpdateDoesNotMutateInput(t *testing.T) {
	seq := sampleSeq()
	out := blocks.Update(seq, "b2", blocks.Patch{Content: strptr("Novo texto.")})

	if seq[1].Content != "Um parágrafo." {
		t.Fatal("input sequence mutated")
	}
	if out[1].Content != "Novo texto." {
		t.Fatalf("patch not applied, got %q", out[1].Content)
	}
}

func TestUpdateUnknownIDIsNoOp(t *testing.T) {
	seq := sampleSeq()
	out := blocks.Update(seq, "missing", blocks.Patch{Content: strptr("x")})
	if len(out) != len(seq) || out[0].Content != seq[0].Content {
		t.Fatal("unknown id should leave the sequence unchanged")
	}
}

func TestUpdateClampsHeadingLevel(t *testing.T) {
	seq := sampleSeq()
	out := blocks.Update(seq, "b1", blocks.Patch{Level: intptr(7)})
	if out[0].Level() != 2 {
		t.Fatalf("out-of-range level applied: %d", out[0].Level())
	}
	out = blocks.Update(seq, "b1", blocks.Patch{Level: intptr(3)})
	if out[0].Level() != 3 {
		t.Fatalf("valid level rejected: %d", out[0].Level())
	}
}

func TestDeleteRemovesBlock(t *testing.T) {
	seq := sampleSeq()
	out := blocks.Delete(seq, "b2")
	if len(out) != 2 || out[0].ID != "b1" || out[1].ID != "b3" {
		t.Fatalf("unexpected sequence after delete: %+v", out)
	}
	if len(seq) != 3 {
		t.Fatal("input sequence mutated")
	}
}

func TestMoveSwapsNeighbours(t *testing.T) {
	seq := sampleSeq()

	out := blocks.Move(seq, "b3", blocks.MoveUp)
	if out[1].ID != "b3" || out[2].ID != "b2" {
		t.Fatalf("move up failed: %v %v", out[1].ID, out[2].ID)
	}

	out = blocks.Move(seq, "b1", blocks.MoveDown)
	if out[0].ID != "b2" || out[1].ID != "b1" {
		t.Fatalf("move down failed: %v %v", out[0].ID, out[1].ID)
	}
}

func TestMoveAtBoundaryIsNoOp(t *testing.T) {
	seq := sampleSeq()
	if out := blocks.Move(seq, "b1", blocks.MoveUp); out[0].ID != "b1" {
		t.Fatal("first block moved up")
	}
	if out := blocks.Move(seq, "b3", blocks.MoveDown); out[2].ID != "b3" {
		t.Fatal("last block moved down")
	}
}

func TestListItemOperations(t *testing.T) {
	seq := sampleSeq()

	out := blocks.AppendItem(seq, "b3")
	if items := out[2].Items(); len(items) != 3 || items[2] != "" {
		t.Fatalf("append item failed: %v", items)
	}

	out = blocks.SetItem(out, "b3", 2, "três")
	if items := out[2].Items(); items[2] != "três" {
		t.Fatalf("set item failed: %v", items)
	}

	out = blocks.RemoveItem(out, "b3", 1)
	if items := out[2].Items(); len(items) != 2 || items[0] != "um" || items[1] != "três" {
		t.Fatalf("remove item failed: %v", items)
	}
}

func TestRemoveItemKeepsFirstRow(t *testing.T) {
	seq := sampleSeq()
	out := blocks.RemoveItem(seq, "b3", 0)
	if items := out[2].Items(); len(items) != 2 {
		t.Fatalf("first row must not be removable, got %v", items)
	}
}

func TestListOpsIgnoreNonListBlocks(t *testing.T) {
	seq := sampleSeq()
	out := blocks.AppendItem(seq, "b2")
	if out[1].Items() != nil {
		t.Fatal("paragraph gained list items")
	}
	out = blocks.SetItem(seq, "b1", 0, "x")
	if out[0].Content != "Título" {
		t.Fatal("heading changed by list op")
	}
}

func TestCloneIsDeep(t *testing.T) {
	seq := sampleSeq()
	cloned := blocks.Clone(seq)

	meta := cloned[2].Meta.(blocks.ListMeta)
	meta.Items[0] = "mutated"
	if items := seq[2].Items(); items[0] != "um" {
		t.Fatal("clone shares list metadata with the source")
	}
	if blocks.Clone(nil) != nil {
		t.Fatal("clone of nil should stay nil")
	}
}
