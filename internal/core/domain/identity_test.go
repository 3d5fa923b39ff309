package domain

import "testing"

func TestCanDelete_Owner(t *testing.T) {
	blog := &Blog{ID: "b1", OwnerID: "u1"}
	owner := &Identity{UserID: "u1", Username: "alice"}

	if !CanDelete(blog, owner) {
		t.Fatalf("owner should be allowed to delete")
	}
}

func TestCanDelete_NonOwner(t *testing.T) {
	blog := &Blog{ID: "b1", OwnerID: "u1"}
	other := &Identity{UserID: "u2", Username: "bob"}

	if CanDelete(blog, other) {
		t.Fatalf("non-owner should not be allowed to delete")
	}
}

func TestCanDelete_AbsentIdentity(t *testing.T) {
	blog := &Blog{ID: "b1", OwnerID: "u1"}

	if CanDelete(blog, nil) {
		t.Fatalf("absent identity should not be allowed to delete")
	}
	if CanDelete(nil, &Identity{UserID: "u1"}) {
		t.Fatalf("nil blog should never be deletable")
	}
}

func TestCanLike(t *testing.T) {
	if !CanLike(&Identity{UserID: "u2", Username: "bob"}) {
		t.Fatalf("any authenticated user may like")
	}
	if CanLike(nil) {
		t.Fatalf("absent identity may not like")
	}
}

func TestCanCreate(t *testing.T) {
	if !CanCreate(&Identity{UserID: "u1", Username: "alice"}) {
		t.Fatalf("authenticated user may create")
	}
	if CanCreate(nil) {
		t.Fatalf("absent identity may not create")
	}
}
