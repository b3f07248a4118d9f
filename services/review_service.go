package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"unigo_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

var (
	ErrInvalidRating   = errors.New("rating must be between 1 and 5")
	ErrDuplicateReview = errors.New("you have already reviewed this companion for this trip")
)

const defaultMaxReviews = 10

// ReviewService stores companion reviews and keeps the reviewee's aggregate
// rating on their profile.
type ReviewService struct {
	Dynamo   *DynamoService
	Profiles *UserProfileService
}

// CreateReview validates and persists a review, then refreshes the
// reviewee's rating stats (best effort).
func (rs *ReviewService) CreateReview(ctx context.Context, review models.Review) (*models.Review, error) {
	if review.Rating < 1 || review.Rating > 5 {
		return nil, ErrInvalidRating
	}
	if review.TripID == "" || review.ReviewerID == "" || review.RevieweeID == "" {
		return nil, errors.New("missing required review fields")
	}

	already, err := rs.HasReviewedTrip(ctx, review.TripID, review.ReviewerID, review.RevieweeID)
	if err != nil {
		return nil, err
	}
	if already {
		return nil, ErrDuplicateReview
	}

	if review.ReviewerName == "" {
		review.ReviewerName = "Anonymous"
	}
	if review.RevieweeName == "" {
		review.RevieweeName = "Anonymous"
	}
	review.ReviewID = uuid.NewString()
	review.CreatedAt = time.Now().UTC().Format(time.RFC3339)

	if err := rs.Dynamo.PutItem(ctx, models.ReviewsTable, review); err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	// Refreshing the profile stats is non-critical.
	rating, err := rs.GetUserRating(ctx, review.RevieweeID)
	if err != nil {
		log.Printf("Failed to recompute rating for %s: %v", review.RevieweeID, err)
	} else if rs.Profiles != nil {
		if err := rs.Profiles.UpdateRatingStats(ctx, review.RevieweeID, rating.AverageRating, rating.ReviewCount); err != nil {
			log.Printf("Failed to store rating stats for %s: %v", review.RevieweeID, err)
		}
	}

	return &review, nil
}

// HasReviewedTrip reports whether reviewer already reviewed reviewee for a
// trip.
func (rs *ReviewService) HasReviewedTrip(ctx context.Context, tripID, reviewerID, revieweeID string) (bool, error) {
	items, err := rs.Dynamo.QueryItemsWithIndex(ctx, models.ReviewsTable, "tripId-index",
		"tripId = :tripId",
		map[string]types.AttributeValue{
			":tripId":     &types.AttributeValueMemberS{Value: tripID},
			":reviewerId": &types.AttributeValueMemberS{Value: reviewerID},
			":revieweeId": &types.AttributeValueMemberS{Value: revieweeID},
		},
		nil,
		"reviewerId = :reviewerId AND revieweeId = :revieweeId", false, 0)
	if err != nil {
		return false, fmt.Errorf("failed to check existing review: %w", err)
	}
	return len(items) > 0, nil
}

// GetReviewsForUser returns the most recent reviews left for a user.
func (rs *ReviewService) GetReviewsForUser(ctx context.Context, userID string, maxReviews int) ([]models.Review, error) {
	if maxReviews <= 0 {
		maxReviews = defaultMaxReviews
	}

	items, err := rs.Dynamo.QueryItemsWithIndex(ctx, models.ReviewsTable, "revieweeId-index",
		"revieweeId = :revieweeId",
		map[string]types.AttributeValue{
			":revieweeId": &types.AttributeValueMemberS{Value: userID},
		},
		nil, "", true, int32(maxReviews))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reviews: %w", err)
	}
	return unmarshalReviews(items), nil
}

// AggregateRating folds a review list into the average (one decimal) and
// per-tag counts.
func AggregateRating(reviews []models.Review) models.UserRating {
	rating := models.UserRating{Tags: map[string]int{}}
	if len(reviews) == 0 {
		return rating
	}

	total := 0
	for _, review := range reviews {
		total += review.Rating
		for _, tag := range review.Tags {
			rating.Tags[tag]++
		}
	}

	rating.ReviewCount = len(reviews)
	rating.AverageRating = math.Round(float64(total)/float64(len(reviews))*10) / 10
	return rating
}

// GetUserRating computes the aggregate rating over all of a user's reviews.
func (rs *ReviewService) GetUserRating(ctx context.Context, userID string) (models.UserRating, error) {
	items, err := rs.Dynamo.QueryItemsWithIndex(ctx, models.ReviewsTable, "revieweeId-index",
		"revieweeId = :revieweeId",
		map[string]types.AttributeValue{
			":revieweeId": &types.AttributeValueMemberS{Value: userID},
		},
		nil, "", false, 0)
	if err != nil {
		return models.UserRating{}, fmt.Errorf("failed to fetch reviews: %w", err)
	}
	return AggregateRating(unmarshalReviews(items)), nil
}

// GetPendingReviews lists the companions on confirmed matches the user has
// not reviewed yet.
func (rs *ReviewService) GetPendingReviews(ctx context.Context, userID string, matches []models.Match) ([]models.PendingReview, error) {
	pending := []models.PendingReview{}

	for _, match := range matches {
		if match.Status != models.MatchStatusConfirmed {
			continue
		}

		companionID := match.User2ID
		companionName := match.User2Name
		tripID := match.Trip1ID
		if match.User2ID == userID {
			companionID = match.User1ID
			companionName = match.User1Name
			tripID = match.Trip2ID
		}

		already, err := rs.HasReviewedTrip(ctx, tripID, userID, companionID)
		if err != nil {
			return nil, err
		}
		if already {
			continue
		}

		pending = append(pending, models.PendingReview{
			MatchID:       match.MatchID,
			TripID:        tripID,
			CompanionID:   companionID,
			CompanionName: companionName,
			Destination:   match.Destination,
			Date:          match.Date,
		})
	}
	return pending, nil
}

func unmarshalReviews(items []map[string]types.AttributeValue) []models.Review {
	reviews := make([]models.Review, 0, len(items))
	for _, item := range items {
		var review models.Review
		if err := attributevalue.UnmarshalMap(item, &review); err != nil {
			log.Printf("Error unmarshalling review: %v", err)
			continue
		}
		reviews = append(reviews, review)
	}
	return reviews
}
