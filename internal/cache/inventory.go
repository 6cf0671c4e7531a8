package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	StatisticsKeyPrefix = "stats:%d"
	PostKeyPrefix       = "post:%d"
	ItineraryKeyPrefix  = "itinerary:%d"
	SuggestedKeyPrefix  = "suggested:%d"
)

// Profile reads are deliberately not cached: the privacy and ban gates
// need the current row, and a stale AccountPrivate flag would leak a
// profile that was just made private.
const (
	StatisticsTTL = 2 * time.Minute
	PostTTL       = time.Minute
	ItineraryTTL  = time.Minute
	SuggestedTTL  = 10 * time.Minute
)

func StatisticsKey(userID uint) string {
	return fmt.Sprintf(StatisticsKeyPrefix, userID)
}

func PostKey(postID uint) string {
	return fmt.Sprintf(PostKeyPrefix, postID)
}

func ItineraryKey(itineraryID uint) string {
	return fmt.Sprintf(ItineraryKeyPrefix, itineraryID)
}

func SuggestedKey(userID uint) string {
	return fmt.Sprintf(SuggestedKeyPrefix, userID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateStatistics(ctx context.Context, userID uint) {
	Invalidate(ctx, StatisticsKey(userID))
}

func InvalidatePost(ctx context.Context, postID uint) {
	Invalidate(ctx, PostKey(postID))
}

func InvalidateItinerary(ctx context.Context, itineraryID uint) {
	Invalidate(ctx, ItineraryKey(itineraryID))
}

func InvalidateSuggested(ctx context.Context, userID uint) {
	Invalidate(ctx, SuggestedKey(userID))
}
