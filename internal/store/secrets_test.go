package store

import (
	"context"
	"testing"

	"github.com/inventoria/inventoria/internal/db"
)

func TestSigningSecretGeneratedOnce(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	secret1, err := SigningSecret(ctx, database)
	if err != nil {
		t.Fatal(err)
	}
	if len(secret1) != 64 { // 32 bytes = 64 hex chars
		t.Fatalf("expected 64 hex chars, got %d", len(secret1))
	}

	// Subsequent calls return the persisted secret, not a new one.
	secret2, err := SigningSecret(ctx, database)
	if err != nil {
		t.Fatal(err)
	}
	if secret1 != secret2 {
		t.Fatalf("expected same secret, got %q and %q", secret1, secret2)
	}
}
