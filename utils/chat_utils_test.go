package utils

import (
	"testing"
	"time"

	"github.com/ssamratd571/localexplorer/models"
)

func TestDeriveConversationKey(t *testing.T) {
	cases := []struct {
		domain, listing, user string
		want                  string
	}{
		{models.ChatDomainHotel, "h1", "u1", "h1_u1"},
		{models.ChatDomainCar, "c1", "u1", "c1_u1"},
		{models.ChatDomainCuisine, "k1", "u1", "k1_u1"},
		{models.ChatDomainShopping, "p1", "u1", "shopping_p1_u1"},
	}

	for _, c := range cases {
		if got := DeriveConversationKey(c.domain, c.listing, c.user); got != c.want {
			t.Errorf("DeriveConversationKey(%q, %q, %q) = %q, want %q", c.domain, c.listing, c.user, got, c.want)
		}
	}
}

func TestConversationKeySeparatesCustomers(t *testing.T) {
	a := DeriveConversationKey(models.ChatDomainHotel, "h1", "alice")
	b := DeriveConversationKey(models.ChatDomainHotel, "h1", "bob")
	if a == b {
		t.Error("different customers on the same listing must get distinct keys")
	}
}

func TestChatCollectionFor(t *testing.T) {
	cases := []struct {
		domain string
		coll   string
		ok     bool
	}{
		{models.ChatDomainHotel, "hotelChats", true},
		{models.ChatDomainCar, "carChats", true},
		{models.ChatDomainCuisine, "cuisineChats", true},
		{models.ChatDomainShopping, "cuisineChats", true}, // shared collection
		{"boats", "", false},
	}

	for _, c := range cases {
		coll, ok := ChatCollectionFor(c.domain)
		if coll != c.coll || ok != c.ok {
			t.Errorf("ChatCollectionFor(%q) = %q, %v", c.domain, coll, ok)
		}
	}
}

func TestSortMessages(t *testing.T) {
	base := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	messages := []models.ChatMessage{
		{Text: "third", CreatedAt: base.Add(2 * time.Minute)},
		{Text: "first", CreatedAt: base},
		{Text: "second", CreatedAt: base.Add(time.Minute)},
	}

	SortMessages(messages)

	want := []string{"first", "second", "third"}
	for i, w := range want {
		if messages[i].Text != w {
			t.Fatalf("message %d = %q, want %q", i, messages[i].Text, w)
		}
	}
}

func TestGroupThreads(t *testing.T) {
	base := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	messages := []models.ChatMessage{
		{ConversationKey: "h1_alice", ListingID: "h1", UserUID: "alice", UserName: "Alice", SenderType: models.SenderUser, Text: "hi", CreatedAt: base},
		{ConversationKey: "h1_alice", ListingID: "h1", UserUID: "alice", SenderType: models.SenderOwner, Text: "hello", CreatedAt: base.Add(time.Minute)},
		{ConversationKey: "h1_bob", ListingID: "h1", UserUID: "bob", UserName: "Bob", SenderType: models.SenderUser, Text: "rooms?", CreatedAt: base.Add(2 * time.Minute)},
	}

	threads := GroupThreads(messages)
	if len(threads) != 2 {
		t.Fatalf("expected 2 threads, got %d", len(threads))
	}

	// Newest activity first
	if threads[0].ConversationKey != "h1_bob" {
		t.Errorf("first thread = %q, want h1_bob", threads[0].ConversationKey)
	}

	alice := threads[1]
	if alice.MessageCount != 2 {
		t.Errorf("alice thread count = %d, want 2", alice.MessageCount)
	}
	if alice.LastMessage != "hello" || alice.LastSenderType != models.SenderOwner {
		t.Errorf("alice last message = %q by %q", alice.LastMessage, alice.LastSenderType)
	}
	if alice.UserName != "Alice" {
		t.Errorf("alice userName = %q", alice.UserName)
	}
}

func TestGroupThreadsEmpty(t *testing.T) {
	threads := GroupThreads(nil)
	if threads == nil || len(threads) != 0 {
		t.Errorf("empty input should produce an empty slice, got %v", threads)
	}
}
