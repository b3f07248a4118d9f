package services

import (
	"testing"

	"unigo_server/models"
)

func TestCalculateBalanceEqualSplit(t *testing.T) {
	expenses := []models.Expense{
		{PaidBy: "alice", Amount: 300},
		{PaidBy: "bob", Amount: 100},
	}

	balance := CalculateBalance(expenses, "alice", "bob")
	if balance.TotalExpenses != 400 {
		t.Fatalf("expected total 400, got %v", balance.TotalExpenses)
	}
	if balance.UserPaid != 300 || balance.CompanionPaid != 100 {
		t.Fatalf("unexpected paid amounts %+v", balance)
	}
	// Fair share is 200 each, so bob owes alice 100.
	if balance.UserBalance != 100 || balance.CompanionBalance != -100 {
		t.Fatalf("unexpected balances %+v", balance)
	}
}

func TestCalculateBalanceIgnoresOtherPayers(t *testing.T) {
	expenses := []models.Expense{
		{PaidBy: "alice", Amount: 50},
		{PaidBy: "someone-else", Amount: 500},
	}

	balance := CalculateBalance(expenses, "alice", "bob")
	if balance.TotalExpenses != 50 {
		t.Fatalf("expected only the companions' expenses counted, got %v", balance.TotalExpenses)
	}
}

func TestCalculateBalanceNoExpenses(t *testing.T) {
	balance := CalculateBalance(nil, "alice", "bob")
	if balance.TotalExpenses != 0 || balance.UserBalance != 0 || balance.CompanionBalance != 0 {
		t.Fatalf("expected zero balance, got %+v", balance)
	}
}

func TestSortActivitiesByDayThenTime(t *testing.T) {
	activities := []models.Activity{
		{ActivityID: "a3", Day: 2, Time: "08:00"},
		{ActivityID: "a1", Day: 1, Time: "14:00"},
		{ActivityID: "a2", Day: 1, Time: "18:30"},
		{ActivityID: "a0", Day: 1, Time: "09:00"},
	}

	SortActivities(activities)

	want := []string{"a0", "a1", "a2", "a3"}
	for i, id := range want {
		if activities[i].ActivityID != id {
			t.Fatalf("position %d: expected %s, got %s", i, id, activities[i].ActivityID)
		}
	}
}

func TestSortActivitiesStableForTies(t *testing.T) {
	activities := []models.Activity{
		{ActivityID: "first", Day: 1, Time: "10:00"},
		{ActivityID: "second", Day: 1, Time: "10:00"},
	}

	SortActivities(activities)
	if activities[0].ActivityID != "first" || activities[1].ActivityID != "second" {
		t.Fatalf("tied entries should keep insertion order, got %v then %v",
			activities[0].ActivityID, activities[1].ActivityID)
	}
}
