package comments_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/camarabr/chamber-cms/comments"
)

func newTestService() comments.Service {
	base := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	n := 0
	return comments.NewService(comments.NewMemoryCommentRepository(),
		comments.WithClock(func() time.Time {
			n++
			return base.Add(time.Duration(n) * time.Minute)
		}),
	)
}

func TestSubmitStartsPending(t *testing.T) {
	svc := newTestService()

	created, err := svc.Submit(context.Background(), comments.SubmitRequest{
		ArticleID:  uuid.New(),
		AuthorName: "João",
		Email:      "joao@example.com",
		Body:       "Ótimo artigo!",
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if created.Status != comments.StatusPending {
		t.Fatalf("status = %q, want pending", created.Status)
	}
}

func TestSubmitValidation(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	cases := []comments.SubmitRequest{
		{AuthorName: "João", Email: "joao@example.com", Body: "x"},                       // no article
		{ArticleID: uuid.New(), Email: "joao@example.com", Body: "x"},                    // no author
		{ArticleID: uuid.New(), AuthorName: "João", Email: "not-an-email", Body: "x"},    // bad email
		{ArticleID: uuid.New(), AuthorName: "João", Email: "joao@example.com", Body: ""}, // no body
	}
	for i, req := range cases {
		_, err := svc.Submit(ctx, req)
		var verr *comments.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("case %d: expected ValidationError, got %v", i, err)
		}
	}
}

func TestModerationFlow(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	articleID := uuid.New()

	first, err := svc.Submit(ctx, comments.SubmitRequest{
		ArticleID: articleID, AuthorName: "João", Email: "joao@example.com", Body: "Primeiro",
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	second, err := svc.Submit(ctx, comments.SubmitRequest{
		ArticleID: articleID, AuthorName: "Ana", Email: "ana@example.com", Body: "Segundo",
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if _, err := svc.Approve(ctx, first.ID); err != nil {
		t.Fatalf("approve: %v", err)
	}
	if _, err := svc.Reject(ctx, second.ID); err != nil {
		t.Fatalf("reject: %v", err)
	}

	pending, err := svc.ListPending(ctx)
	if err != nil {
		t.Fatalf("list pending: %v", err)
	}
	if len(pending) != 0 {
		t.Fatalf("moderation queue should be empty, got %d", len(pending))
	}

	public, err := svc.ListByArticle(ctx, articleID, true)
	if err != nil {
		t.Fatalf("list approved: %v", err)
	}
	if len(public) != 1 || public[0].ID != first.ID {
		t.Fatalf("only the approved comment should be public, got %+v", public)
	}

	all, err := svc.ListByArticle(ctx, articleID, false)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 2 || all[0].Body != "Primeiro" {
		t.Fatalf("admin listing should keep both, oldest first, got %+v", all)
	}
}

func TestModerateIsIdempotent(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.Submit(ctx, comments.SubmitRequest{
		ArticleID: uuid.New(), AuthorName: "João", Email: "joao@example.com", Body: "x",
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := svc.Approve(ctx, created.ID); err != nil {
		t.Fatalf("approve: %v", err)
	}
	again, err := svc.Approve(ctx, created.ID)
	if err != nil {
		t.Fatalf("second approve: %v", err)
	}
	if again.Status != comments.StatusApproved {
		t.Fatalf("status = %q", again.Status)
	}
}

func TestModerateMissingComment(t *testing.T) {
	svc := newTestService()

	_, err := svc.Approve(context.Background(), uuid.New())
	var nf *comments.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if _, err := svc.Reject(context.Background(), uuid.Nil); !errors.Is(err, comments.ErrIDRequired) {
		t.Fatalf("expected ErrIDRequired, got %v", err)
	}
}
