// utils/chat_utils.go
package utils

import (
	"fmt"
	"sort"

	"github.com/ssamratd571/localexplorer/models"
)

// DeriveConversationKey builds the deterministic key for a (listing,
// customer) conversation. Shopping keys carry a prefix because shopping
// threads share a collection with cuisine threads.
func DeriveConversationKey(domain, listingID, userUID string) string {
	if domain == models.ChatDomainShopping {
		return fmt.Sprintf("shopping_%s_%s", listingID, userUID)
	}
	return fmt.Sprintf("%s_%s", listingID, userUID)
}

// ChatCollectionFor maps a chat domain to its physical collection name.
// Shopping intentionally maps onto cuisineChats.
func ChatCollectionFor(domain string) (string, bool) {
	switch domain {
	case models.ChatDomainHotel:
		return "hotelChats", true
	case models.ChatDomainCar:
		return "carChats", true
	case models.ChatDomainCuisine, models.ChatDomainShopping:
		return "cuisineChats", true
	}
	return "", false
}

// SortMessages orders a thread by createdAt ascending. Store return order
// is not trusted.
func SortMessages(messages []models.ChatMessage) {
	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].CreatedAt.Before(messages[j].CreatedAt)
	})
}

// GroupThreads folds a flat owner-side message list into inbox rows, one
// per conversation key, newest activity first.
func GroupThreads(messages []models.ChatMessage) []models.ChatThread {
	byKey := make(map[string]*models.ChatThread)
	order := make([]string, 0)

	for _, m := range messages {
		t, ok := byKey[m.ConversationKey]
		if !ok {
			t = &models.ChatThread{
				ConversationKey: m.ConversationKey,
				ListingID:       m.ListingID,
				ListingName:     m.ListingName,
				UserUID:         m.UserUID,
			}
			byKey[m.ConversationKey] = t
			order = append(order, m.ConversationKey)
		}
		t.MessageCount++
		if m.UserName != "" {
			t.UserName = m.UserName
		}
		if !m.CreatedAt.Before(t.LastActivityAt) {
			t.LastActivityAt = m.CreatedAt
			t.LastMessage = m.Text
			t.LastSenderType = m.SenderType
		}
	}

	threads := make([]models.ChatThread, 0, len(order))
	for _, key := range order {
		threads = append(threads, *byKey[key])
	}
	sort.SliceStable(threads, func(i, j int) bool {
		return threads[i].LastActivityAt.After(threads[j].LastActivityAt)
	})
	return threads
}
