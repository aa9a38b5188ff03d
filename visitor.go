package portfolio

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

const saltKey = "hash_salt"

// loadSalt returns the persistent salt used to hash client IPs, creating it
// on first use.
func loadSalt(ctx context.Context, s *Store) (string, error) {
	salt, err := s.GetSetting(ctx, saltKey)
	if err != nil {
		return "", fmt.Errorf("read hash salt: %w", err)
	}
	if salt != "" {
		return salt, nil
	}
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	salt = hex.EncodeToString(b)
	if err := s.SetSetting(ctx, saltKey, salt); err != nil {
		return "", fmt.Errorf("store hash salt: %w", err)
	}
	return salt, nil
}

// HashIP returns a salted SHA-256 prefix of ip. Raw addresses are never
// stored.
func HashIP(salt, ip string) string {
	h := sha256.New()
	h.Write([]byte(salt + ip))
	return hex.EncodeToString(h.Sum(nil))[:16]
}

var botMarkers = []string{
	"bot", "crawler", "spider", "crawl", "slurp", "scrape",
	"curl", "wget", "python-requests", "go-http-client",
	"facebookexternalhit", "yandex", "baidu",
}

// IsBot reports whether the User-Agent looks like a crawler or script.
func IsBot(ua string) bool {
	ua = strings.ToLower(ua)
	for _, m := range botMarkers {
		if strings.Contains(ua, m) {
			return true
		}
	}
	return false
}
