package services

import (
	"testing"

	"unigo_server/models"
)

func TestAggregateRatingEmpty(t *testing.T) {
	rating := AggregateRating(nil)
	if rating.ReviewCount != 0 || rating.AverageRating != 0 {
		t.Fatalf("expected zero rating for no reviews, got %+v", rating)
	}
	if rating.Tags == nil {
		t.Fatal("tags map should be initialized even with no reviews")
	}
}

func TestAggregateRatingAverageAndTags(t *testing.T) {
	reviews := []models.Review{
		{Rating: 5, Tags: []string{"punctual", "friendly"}},
		{Rating: 4, Tags: []string{"friendly"}},
		{Rating: 3},
	}

	rating := AggregateRating(reviews)
	if rating.ReviewCount != 3 {
		t.Fatalf("expected 3 reviews, got %d", rating.ReviewCount)
	}
	// (5+4+3)/3 = 4.0
	if rating.AverageRating != 4.0 {
		t.Fatalf("expected average 4.0, got %v", rating.AverageRating)
	}
	if rating.Tags["friendly"] != 2 || rating.Tags["punctual"] != 1 {
		t.Fatalf("unexpected tag counts %v", rating.Tags)
	}
}

func TestAggregateRatingRoundsToOneDecimal(t *testing.T) {
	reviews := []models.Review{
		{Rating: 5},
		{Rating: 4},
		{Rating: 4},
	}

	// 13/3 = 4.333..., rounded to 4.3
	if got := AggregateRating(reviews).AverageRating; got != 4.3 {
		t.Fatalf("expected 4.3, got %v", got)
	}
}
