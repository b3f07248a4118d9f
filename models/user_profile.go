package models

// UserProfile defines the structure for user profiles
type UserProfile struct {
	UserID        string  `dynamodbav:"userId" json:"userId"` // Partition Key
	DisplayName   string  `dynamodbav:"displayName,omitempty" json:"displayName,omitempty"`
	Email         string  `dynamodbav:"email,omitempty" json:"email,omitempty"`
	Phone         string  `dynamodbav:"phone,omitempty" json:"phone,omitempty"`
	Bio           string  `dynamodbav:"bio,omitempty" json:"bio,omitempty"`
	PhotoURL      string  `dynamodbav:"photoURL,omitempty" json:"photoURL,omitempty"`
	AverageRating float64 `dynamodbav:"averageRating,omitempty" json:"averageRating,omitempty"`
	ReviewCount   int     `dynamodbav:"reviewCount,omitempty" json:"reviewCount,omitempty"`
	CreatedAt     string  `dynamodbav:"createdAt,omitempty" json:"createdAt,omitempty"`
	LastActive    string  `dynamodbav:"lastActive,omitempty" json:"lastActive,omitempty"`
}

// UserProfilesTable is the DynamoDB table name for user profiles
const UserProfilesTable = "Users"
