package models

// Shared trip-planning tool records. All three tables are partitioned by
// tripId with the item id as sort key.

// Expense is a shared expense between matched companions.
type Expense struct {
	TripID      string  `dynamodbav:"tripId" json:"tripId"`
	ExpenseID   string  `dynamodbav:"expenseId" json:"expenseId"`
	Description string  `dynamodbav:"description" json:"description"`
	Amount      float64 `dynamodbav:"amount" json:"amount"`
	PaidBy      string  `dynamodbav:"paidBy" json:"paidBy"`
	PaidByName  string  `dynamodbav:"paidByName,omitempty" json:"paidByName,omitempty"`
	SplitType   string  `dynamodbav:"splitType,omitempty" json:"splitType,omitempty"`
	Category    string  `dynamodbav:"category,omitempty" json:"category,omitempty"`
	CreatedAt   string  `dynamodbav:"createdAt" json:"createdAt"`
}

// Balance is the who-owes-whom summary for an equal split between two users.
type Balance struct {
	UserPaid         float64 `json:"userPaid"`
	CompanionPaid    float64 `json:"companionPaid"`
	TotalExpenses    float64 `json:"totalExpenses"`
	UserBalance      float64 `json:"userBalance"` // positive means the companion owes the user
	CompanionBalance float64 `json:"companionBalance"`
}

// PackingItem is an item on the shared packing list.
type PackingItem struct {
	TripID        string `dynamodbav:"tripId" json:"tripId"`
	ItemID        string `dynamodbav:"itemId" json:"itemId"`
	Name          string `dynamodbav:"name" json:"name"`
	Category      string `dynamodbav:"category,omitempty" json:"category,omitempty"`
	ClaimedBy     string `dynamodbav:"claimedBy,omitempty" json:"claimedBy,omitempty"`
	ClaimedByName string `dynamodbav:"claimedByName,omitempty" json:"claimedByName,omitempty"`
	CreatedBy     string `dynamodbav:"createdBy" json:"createdBy"`
	CreatedByName string `dynamodbav:"createdByName,omitempty" json:"createdByName,omitempty"`
	CreatedAt     string `dynamodbav:"createdAt" json:"createdAt"`
}

// Activity is an itinerary entry suggested by one companion and approved by
// the others.
type Activity struct {
	TripID          string   `dynamodbav:"tripId" json:"tripId"`
	ActivityID      string   `dynamodbav:"activityId" json:"activityId"`
	Day             int      `dynamodbav:"day" json:"day"`
	Time            string   `dynamodbav:"time" json:"time"`
	Title           string   `dynamodbav:"title" json:"title"`
	Type            string   `dynamodbav:"type,omitempty" json:"type,omitempty"`
	Location        string   `dynamodbav:"location,omitempty" json:"location,omitempty"`
	Notes           string   `dynamodbav:"notes,omitempty" json:"notes,omitempty"`
	SuggestedBy     string   `dynamodbav:"suggestedBy" json:"suggestedBy"`
	SuggestedByName string   `dynamodbav:"suggestedByName,omitempty" json:"suggestedByName,omitempty"`
	ApprovedBy      []string `dynamodbav:"approvedBy" json:"approvedBy"`
	Status          string   `dynamodbav:"status" json:"status"` // suggested | approved
	CreatedAt       string   `dynamodbav:"createdAt" json:"createdAt"`
}

// Activity status values
const (
	ActivitySuggested = "suggested"
	ActivityApproved  = "approved"
)

// Table names for the trip-planning tools
const (
	ExpensesTable     = "Expenses"
	PackingListsTable = "PackingLists"
	ItinerariesTable  = "Itineraries"
)
