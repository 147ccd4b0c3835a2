package contact_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/camarabr/chamber-cms/contact"
)

func newTestService() contact.Service {
	base := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	n := 0
	return contact.NewService(contact.NewMemorySubmissionRepository(),
		contact.WithClock(func() time.Time {
			n++
			return base.Add(time.Duration(n) * time.Minute)
		}),
	)
}

func TestSubmitValidation(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.Submit(ctx, contact.SubmitRequest{Name: "Ana", Email: "bad", Message: "Olá"})
	var verr *contact.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError for bad email, got %v", err)
	}

	_, err = svc.Submit(ctx, contact.SubmitRequest{Name: "Ana", Email: "ana@example.com"})
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError for missing message, got %v", err)
	}

	// Subject is optional.
	created, err := svc.Submit(ctx, contact.SubmitRequest{Name: "Ana", Email: "ana@example.com", Message: "Olá"})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if created.IsRead {
		t.Fatal("new submissions start unread")
	}
}

func TestInboxFlow(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	first, err := svc.Submit(ctx, contact.SubmitRequest{Name: "Ana", Email: "ana@example.com", Message: "Primeira"})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	second, err := svc.Submit(ctx, contact.SubmitRequest{Name: "João", Email: "joao@example.com", Message: "Segunda"})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	listed, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 2 || listed[0].ID != second.ID {
		t.Fatalf("expected newest first, got %+v", listed)
	}

	if _, err := svc.MarkRead(ctx, first.ID); err != nil {
		t.Fatalf("mark read: %v", err)
	}
	unread, err := svc.ListUnread(ctx)
	if err != nil {
		t.Fatalf("list unread: %v", err)
	}
	if len(unread) != 1 || unread[0].ID != second.ID {
		t.Fatalf("unexpected unread set %+v", unread)
	}

	// Marking read twice is harmless.
	if _, err := svc.MarkRead(ctx, first.ID); err != nil {
		t.Fatalf("second mark read: %v", err)
	}

	if err := svc.Delete(ctx, second.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	listed, err = svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("delete did not remove the submission, %d left", len(listed))
	}
}

func TestMarkReadMissingSubmission(t *testing.T) {
	svc := newTestService()

	_, err := svc.MarkRead(context.Background(), uuid.New())
	var nf *contact.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if _, err := svc.MarkRead(context.Background(), uuid.Nil); !errors.Is(err, contact.ErrIDRequired) {
		t.Fatalf("expected ErrIDRequired, got %v", err)
	}
}
