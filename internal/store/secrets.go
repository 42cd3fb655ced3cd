package store

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"fmt"
)

// SigningSecret returns the JWT signing secret, generating and
// persisting a random one on first call so issued tokens stay valid
// across restarts. The fresh candidate is inserted before the read so
// that concurrent first startups still agree on a single secret.
func SigningSecret(ctx context.Context, db *sql.DB) (string, error) {
	candidate, err := randomHex(32)
	if err != nil {
		return "", fmt.Errorf("generating signing secret: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`INSERT INTO settings (key, value) VALUES ('jwt_secret', ?)
		 ON CONFLICT (key) DO NOTHING`,
		candidate,
	)
	if err != nil {
		return "", fmt.Errorf("storing signing secret: %w", err)
	}

	var secret string
	err = db.QueryRowContext(ctx,
		`SELECT value FROM settings WHERE key = 'jwt_secret'`,
	).Scan(&secret)
	if err != nil {
		return "", fmt.Errorf("loading signing secret: %w", err)
	}
	return secret, nil
}

func randomHex(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
