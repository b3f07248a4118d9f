package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"unigo_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

var ErrProfileNotFound = errors.New("user profile not found")

type UserProfileService struct {
	Dynamo *DynamoService
}

// GetUserProfile retrieves a user profile by ID
func (ups *UserProfileService) GetUserProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	item, err := ups.Dynamo.GetItem(ctx, models.UserProfilesTable, map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	})
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	var profile models.UserProfile
	if err := attributevalue.UnmarshalMap(item, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}
	return &profile, nil
}

// EnsureUserProfile creates the profile on first sight of a user, otherwise
// just touches lastActive.
func (ups *UserProfileService) EnsureUserProfile(ctx context.Context, userID, displayName, email, photoURL string) (*models.UserProfile, error) {
	if userID == "" {
		return nil, errors.New("missing userId for profile")
	}

	existing, err := ups.GetUserProfile(ctx, userID)
	if err == nil {
		if touchErr := ups.TouchLastActive(ctx, userID); touchErr != nil {
			// Non-critical, the profile itself is fine.
			return existing, nil
		}
		return existing, nil
	}
	if !errors.Is(err, ErrProfileNotFound) {
		return nil, err
	}

	if displayName == "" {
		displayName = "Anonymous"
	}
	now := time.Now().UTC().Format(time.RFC3339)
	profile := models.UserProfile{
		UserID:      userID,
		DisplayName: displayName,
		Email:       email,
		PhotoURL:    photoURL,
		CreatedAt:   now,
		LastActive:  now,
	}

	if err := ups.Dynamo.PutItem(ctx, models.UserProfilesTable, profile); err != nil {
		return nil, fmt.Errorf("failed to create user profile: %w", err)
	}
	return &profile, nil
}

// UpdateUserProfile applies field updates and touches lastActive.
func (ups *UserProfileService) UpdateUserProfile(ctx context.Context, userID string, updates map[string]interface{}) (*models.UserProfile, error) {
	updateExpression := "SET lastActive = :lastActive"
	expressionAttributeValues := map[string]types.AttributeValue{
		":lastActive": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339)},
	}
	expressionAttributeNames := map[string]string{}

	for k, v := range updates {
		placeholder := ":" + k
		attributeName := "#" + k
		marshaled, err := attributevalue.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal update for %q: %w", k, err)
		}
		updateExpression += ", " + attributeName + " = " + placeholder
		expressionAttributeValues[placeholder] = marshaled
		expressionAttributeNames[attributeName] = k
	}
	if len(expressionAttributeNames) == 0 {
		expressionAttributeNames = nil
	}

	attrs, err := ups.Dynamo.UpdateItem(ctx, models.UserProfilesTable,
		map[string]types.AttributeValue{"userId": &types.AttributeValueMemberS{Value: userID}},
		updateExpression, expressionAttributeValues, expressionAttributeNames)
	if err != nil {
		return nil, err
	}

	var profile models.UserProfile
	if err := attributevalue.UnmarshalMap(attrs, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal updated profile: %w", err)
	}
	return &profile, nil
}

// TouchLastActive bumps the user's last-active timestamp.
func (ups *UserProfileService) TouchLastActive(ctx context.Context, userID string) error {
	_, err := ups.Dynamo.UpdateItem(ctx, models.UserProfilesTable,
		map[string]types.AttributeValue{"userId": &types.AttributeValueMemberS{Value: userID}},
		"SET lastActive = :lastActive",
		map[string]types.AttributeValue{
			":lastActive": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339)},
		}, nil)
	return err
}

// LookupEmail resolves a user id to an email address. Used by the notifier
// when a trip record carries no embedded address.
func (ups *UserProfileService) LookupEmail(ctx context.Context, userID string) (string, error) {
	profile, err := ups.GetUserProfile(ctx, userID)
	if err != nil {
		return "", err
	}
	return profile.Email, nil
}

// UpdateRatingStats stores a user's aggregate review rating on the profile.
func (ups *UserProfileService) UpdateRatingStats(ctx context.Context, userID string, averageRating float64, reviewCount int) error {
	_, err := ups.Dynamo.UpdateItem(ctx, models.UserProfilesTable,
		map[string]types.AttributeValue{"userId": &types.AttributeValueMemberS{Value: userID}},
		"SET averageRating = :averageRating, reviewCount = :reviewCount",
		map[string]types.AttributeValue{
			":averageRating": &types.AttributeValueMemberN{Value: fmt.Sprintf("%g", averageRating)},
			":reviewCount":   &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", reviewCount)},
		}, nil)
	return err
}
