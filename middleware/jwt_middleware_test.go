package middleware

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

func TestBlacklistFallback(t *testing.T) {
	// No Redis in tests, so these hit the in-memory map.
	BlacklistToken("tok-active", time.Now().Add(time.Hour))
	if !IsTokenBlacklisted("tok-active") {
		t.Error("blacklisted token not reported as blacklisted")
	}
	if IsTokenBlacklisted("tok-unknown") {
		t.Error("unknown token reported as blacklisted")
	}
}

func TestPurgeExpiredTokens(t *testing.T) {
	BlacklistToken("tok-keep", time.Now().Add(time.Hour))
	BlacklistToken("tok-drop", time.Now().Add(time.Minute))

	purgeExpiredTokens(time.Now().Add(30 * time.Minute))

	if IsTokenBlacklisted("tok-drop") {
		t.Error("expired token survived the purge")
	}
	if !IsTokenBlacklisted("tok-keep") {
		t.Error("unexpired token was purged")
	}
}

func TestBlacklistConcurrentAccess(t *testing.T) {
	// Logout handlers write, authenticated requests read, and the cleanup
	// loop range-deletes, all at once.
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(3)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				BlacklistToken(fmt.Sprintf("tok-%d-%d", i, j), time.Now().Add(time.Minute))
			}
		}(i)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				IsTokenBlacklisted(fmt.Sprintf("tok-%d-%d", i, j))
			}
		}(i)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				purgeExpiredTokens(time.Now().Add(time.Hour))
			}
		}()
	}
	wg.Wait()
}
