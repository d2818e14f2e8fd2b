package app

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"log/slog"
)

// initSigningSecret resolves the HS256 signing secret. When NOTICE_JWT_SECRET
// is unset a random secret is generated for this process only, so every
// outstanding token becomes invalid on restart.
func initSigningSecret(cfg Config, logger *slog.Logger) ([]byte, error) {
	if cfg.JWTSecret != "" {
		if len(cfg.JWTSecret) < 32 {
			logger.Warn("configured signing secret is shorter than 32 bytes")
		}
		return []byte(cfg.JWTSecret), nil
	}

	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return nil, fmt.Errorf("failed to generate signing secret: %w", err)
	}

	secret := base64.RawStdEncoding.EncodeToString(buf)
	logger.Warn("no signing secret configured, generated an ephemeral one; tokens will not survive restarts")

	return []byte(secret), nil
}
