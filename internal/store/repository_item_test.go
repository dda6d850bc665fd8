package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"

	"github.com/MKhiriev/go-item-keeper/internal/logger"
	"github.com/MKhiriev/go-item-keeper/models"
)

func newTestItemRepo(t *testing.T) (ItemRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := NewItemRepository(&DB{DB: db, logger: l}, l)
	return repo, mock, db
}

func itemRows(items ...models.Item) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "title", "description", "owner_id"})
	for _, i := range items {
		rows.AddRow(i.ID, i.Title, i.Description, i.OwnerID)
	}
	return rows
}

func TestItemRepository_CreateWithOwner_ForcesOwner(t *testing.T) {
	repo, mock, db := newTestItemRepo(t)
	defer db.Close()

	in := models.ItemCreate{
		Title:       "groceries",
		Description: "weekly run",
		OwnerID:     999, // client-supplied owner must be discarded
	}
	const ownerID = int64(5)

	// SetMap sorts columns alphabetically: description, owner_id, title.
	mock.ExpectQuery("INSERT INTO items").
		WithArgs(in.Description, ownerID, in.Title).
		WillReturnRows(itemRows(models.Item{ID: 1, Title: in.Title, Description: in.Description, OwnerID: ownerID}))

	created, err := repo.CreateWithOwner(context.Background(), in, ownerID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.OwnerID != ownerID {
		t.Errorf("expected owner %d, got %d", ownerID, created.OwnerID)
	}
}

func TestItemRepository_CreateWithOwner_UnknownOwner(t *testing.T) {
	repo, mock, db := newTestItemRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO items").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

	_, err := repo.CreateWithOwner(context.Background(), models.ItemCreate{Title: "orphan"}, 404)
	if !errors.Is(err, ErrOwnerNotFound) {
		t.Fatalf("expected ErrOwnerNotFound, got %v", err)
	}
}

func TestItemRepository_Get_NotFound(t *testing.T) {
	repo, mock, db := newTestItemRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM items WHERE id").
		WithArgs(int64(42)).
		WillReturnError(sql.ErrNoRows)

	_, found, err := repo.Get(context.Background(), 42)
	if err != nil {
		t.Fatalf("absence must not be an error, got %v", err)
	}
	if found {
		t.Fatal("expected found=false")
	}
}

func TestItemRepository_GetMultiByOwner(t *testing.T) {
	repo, mock, db := newTestItemRepo(t)
	defer db.Close()

	const ownerID = int64(5)

	mock.ExpectQuery("SELECT (.+) FROM items WHERE owner_id").
		WithArgs(ownerID).
		WillReturnRows(itemRows(
			models.Item{ID: 1, Title: "first", OwnerID: ownerID},
			models.Item{ID: 2, Title: "second", OwnerID: ownerID},
		))

	items, err := repo.GetMultiByOwner(context.Background(), ownerID, 0, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	for _, item := range items {
		if item.OwnerID != ownerID {
			t.Errorf("expected owner %d, got %d", ownerID, item.OwnerID)
		}
	}
}

func TestItemRepository_Update_PartialPatch(t *testing.T) {
	repo, mock, db := newTestItemRepo(t)
	defer db.Close()

	existing := models.Item{ID: 3, Title: "old title", Description: "keep me", OwnerID: 5}
	newTitle := "new title"

	mock.ExpectQuery("UPDATE items SET title").
		WithArgs(newTitle, existing.ID).
		WillReturnRows(itemRows(models.Item{ID: 3, Title: newTitle, Description: existing.Description, OwnerID: 5}))

	updated, err := repo.Update(context.Background(), existing, models.ItemUpdate{Title: &newTitle})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Title != newTitle {
		t.Errorf("expected title %q, got %q", newTitle, updated.Title)
	}
	if updated.Description != existing.Description {
		t.Errorf("untouched field changed: %q", updated.Description)
	}
}

func TestItemRepository_Update_RecordVanished(t *testing.T) {
	repo, mock, db := newTestItemRepo(t)
	defer db.Close()

	existing := models.Item{ID: 3, OwnerID: 5}
	newTitle := "new title"

	mock.ExpectQuery("UPDATE items SET title").
		WithArgs(newTitle, existing.ID).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Update(context.Background(), existing, models.ItemUpdate{Title: &newTitle})
	if !errors.Is(err, ErrRecordVanished) {
		t.Fatalf("expected ErrRecordVanished, got %v", err)
	}
}

func TestItemRepository_Remove(t *testing.T) {
	repo, mock, db := newTestItemRepo(t)
	defer db.Close()

	existing := models.Item{ID: 9, Title: "doomed", OwnerID: 5}

	mock.ExpectExec("DELETE FROM items").
		WithArgs(existing.ID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	removed, err := repo.Remove(context.Background(), existing)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if removed != existing {
		t.Errorf("expected pre-deletion snapshot back, got %+v", removed)
	}
}
