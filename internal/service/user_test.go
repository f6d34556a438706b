package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"

	"todaypickup-relay-go/internal/model"
	"todaypickup-relay-go/internal/store"
)

var userDBSeq atomic.Int64

func newTestUserService(t *testing.T) (*UserService, *store.UserStore) {
	t.Helper()
	dsn := fmt.Sprintf("file:user_service_test_%d?mode=memory&cache=shared", userDBSeq.Add(1))
	db, err := store.Open(dsn)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	st := store.NewUserStore(db, logger)
	return NewUserService(st, logger), st
}

func TestHashPassword(t *testing.T) {
	sum := sha256.Sum256([]byte("secret"))
	want := hex.EncodeToString(sum[:])
	if got := hashPassword("secret"); got != want {
		t.Errorf("hashPassword() = %q, want %q", got, want)
	}
}

func TestUserService_CreateDigestsPassword(t *testing.T) {
	svc, st := newTestUserService(t)
	ctx := context.Background()

	resp, err := svc.CreateUser(ctx, model.UserCreate{
		Email:    "kim@example.com",
		Username: "kim",
		Password: "secret",
	})
	if err != nil {
		t.Fatalf("CreateUser() error = %v", err)
	}
	if resp.ID == 0 {
		t.Error("ID should be assigned")
	}

	row, err := st.GetByID(ctx, resp.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if row.HashedPassword == "secret" {
		t.Error("password must not be stored in the clear")
	}
	if row.HashedPassword != hashPassword("secret") {
		t.Errorf("stored digest = %q, want sha256 of the password", row.HashedPassword)
	}
}

func TestUserService_UpdateRehashesPassword(t *testing.T) {
	svc, st := newTestUserService(t)
	ctx := context.Background()

	resp, err := svc.CreateUser(ctx, model.UserCreate{
		Email:    "kim@example.com",
		Username: "kim",
		Password: "secret",
	})
	if err != nil {
		t.Fatalf("CreateUser() error = %v", err)
	}

	newPassword := "changed"
	newName := "kim2"
	updated, err := svc.UpdateUser(ctx, resp.ID, model.UserUpdate{
		Username: &newName,
		Password: &newPassword,
	})
	if err != nil {
		t.Fatalf("UpdateUser() error = %v", err)
	}
	if updated.Username != "kim2" {
		t.Errorf("Username = %q, want %q", updated.Username, "kim2")
	}

	row, err := st.GetByID(ctx, resp.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if row.HashedPassword != hashPassword("changed") {
		t.Error("new password should be digested before storage")
	}
	if row.Email != "kim@example.com" {
		t.Errorf("Email = %q, want unchanged", row.Email)
	}
}

func TestUserService_ListAndDelete(t *testing.T) {
	svc, _ := newTestUserService(t)
	ctx := context.Background()

	for i := range 3 {
		_, err := svc.CreateUser(ctx, model.UserCreate{
			Email:    fmt.Sprintf("u%d@example.com", i),
			Username: fmt.Sprintf("u%d", i),
			Password: "p",
		})
		if err != nil {
			t.Fatalf("CreateUser(%d) error = %v", i, err)
		}
	}

	users, err := svc.ListUsers(ctx, 0, 100)
	if err != nil {
		t.Fatalf("ListUsers() error = %v", err)
	}
	if len(users) != 3 {
		t.Fatalf("len(users) = %d, want 3", len(users))
	}

	if err := svc.DeleteUser(ctx, users[0].ID); err != nil {
		t.Fatalf("DeleteUser() error = %v", err)
	}
	if _, err := svc.GetUser(ctx, users[0].ID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("GetUser after delete = %v, want ErrNotFound", err)
	}
}
