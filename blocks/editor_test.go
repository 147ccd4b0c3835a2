package blocks_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/camarabr/chamber-cms/blocks"
	"github.com/camarabr/chamber-cms/media"
)

func TestEditorAddNotifiesChange(t *testing.T) {
	var notified [][]blocks.Block
	e := blocks.NewEditor(nil,
		blocks.WithFactory(fixedFactory()),
		blocks.WithOnChange(func(seq []blocks.Block) { notified = append(notified, seq) }),
	)

	b := e.Add(blocks.TypeParagraph)
	if b.ID == "" {
		t.Fatal("added block has no id")
	}
	if len(notified) != 1 || len(notified[0]) != 1 {
		t.Fatalf("expected one change notification with one block, got %d", len(notified))
	}
}

func TestEditorCopiesInitialSequence(t *testing.T) {
	initial := sampleSeq()
	e := blocks.NewEditor(initial)

	initial[0].Content = "mutated"
	if got := e.Blocks()[0].Content; got != "Título" {
		t.Fatalf("editor aliased the initial slice: %q", got)
	}
}

func TestEditorSelectImageStoresPreviewAndPending(t *testing.T) {
	e := blocks.NewEditor([]blocks.Block{
		{ID: "img", Type: blocks.TypeImage, Meta: blocks.ImageMeta{}},
	})
	file := media.File{Name: "foto.png", ContentType: "image/png", Data: []byte("png bytes")}

	if err := e.SelectImage("img", file); err != nil {
		t.Fatalf("select image: %v", err)
	}

	got := e.Blocks()[0]
	if !strings.HasPrefix(got.Content, "data:image/png;base64,") {
		t.Fatalf("content should be an inline preview, got %q", got.Content)
	}
	meta, _ := got.Image()
	if !meta.IsLocalFile {
		t.Fatal("preview should be flagged as a local file")
	}

	pending, ok := e.PendingImage("img")
	if !ok || pending.Name != "foto.png" {
		t.Fatal("selected file should be pending for upload")
	}
}

func TestEditorSelectImageRejectsInvalidFile(t *testing.T) {
	e := blocks.NewEditor([]blocks.Block{
		{ID: "img", Type: blocks.TypeImage, Meta: blocks.ImageMeta{}},
	})

	err := e.SelectImage("img", media.File{Name: "doc.pdf", ContentType: "application/pdf", Data: []byte("x")})
	if !errors.Is(err, media.ErrInvalidFileType) {
		t.Fatalf("expected ErrInvalidFileType, got %v", err)
	}
	if _, ok := e.PendingImage("img"); ok {
		t.Fatal("rejected file must not become pending")
	}
}

func TestEditorDeleteDiscardsPendingImage(t *testing.T) {
	e := blocks.NewEditor([]blocks.Block{
		{ID: "img", Type: blocks.TypeImage, Meta: blocks.ImageMeta{}},
	})
	file := media.File{Name: "foto.png", ContentType: "image/png", Data: []byte("png")}
	if err := e.SelectImage("img", file); err != nil {
		t.Fatalf("select image: %v", err)
	}

	e.Delete("img")
	if len(e.Blocks()) != 0 {
		t.Fatal("block not deleted")
	}
	if _, ok := e.PendingImage("img"); ok {
		t.Fatal("pending image should be discarded with its block")
	}
}

func TestEditorReplaceSwapsWholeSequence(t *testing.T) {
	var last []blocks.Block
	e := blocks.NewEditor(sampleSeq(), blocks.WithOnChange(func(seq []blocks.Block) { last = seq }))

	e.Replace([]blocks.Block{{ID: "only", Type: blocks.TypeParagraph, Content: "novo"}})

	if got := e.Blocks(); len(got) != 1 || got[0].ID != "only" {
		t.Fatalf("replace failed: %+v", got)
	}
	if len(last) != 1 {
		t.Fatal("replace should notify the change callback")
	}
}
