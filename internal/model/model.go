package model

import "time"

// Wire types carry the JSON contract: real times, real booleans, decoded
// collections. Enum fields are validated at the boundary via binding tags;
// ids are caller-supplied and checked by the handlers (PUT bodies omit
// them).

type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title" binding:"required"`
	Start       time.Time `json:"start" binding:"required"`
	End         time.Time `json:"end" binding:"required"`
	Type        string    `json:"type" binding:"required,oneof=training diet recovery competition"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
}

type TrainingSession struct {
	ID          string             `json:"id"`
	Title       string             `json:"title" binding:"required"`
	SportType   string             `json:"sportType" binding:"required"`
	Date        time.Time          `json:"date" binding:"required"`
	Duration    int                `json:"duration" binding:"required"`
	Description string             `json:"description"`
	Intensity   string             `json:"intensity" binding:"required,oneof=low medium high"`
	Completed   bool               `json:"completed"`
	Feedback    string             `json:"feedback,omitempty"`
	Metrics     map[string]float64 `json:"metrics"`
}

type Meal struct {
	ID          string    `json:"id"`
	Title       string    `json:"title" binding:"required"`
	Date        time.Time `json:"date" binding:"required"`
	MealType    string    `json:"mealType" binding:"required,oneof=breakfast lunch dinner snack pre-workout post-workout"`
	Description string    `json:"description"`
	Foods       []string  `json:"foods"`
	Completed   bool      `json:"completed"`
	Feedback    string    `json:"feedback,omitempty"`
}

type Injury struct {
	ID          string     `json:"id"`
	Title       string     `json:"title" binding:"required"`
	BodyPart    string     `json:"bodyPart" binding:"required"`
	Severity    string     `json:"severity" binding:"required,oneof=mild moderate severe"`
	StartDate   time.Time  `json:"startDate" binding:"required"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	Description string     `json:"description"`
	Status      string     `json:"status" binding:"required,oneof=active recovering resolved"`
	Notes       []string   `json:"notes"`
}

type Competition struct {
	ID          string    `json:"id"`
	Title       string    `json:"title" binding:"required"`
	SportType   string    `json:"sportType" binding:"required"`
	Date        time.Time `json:"date" binding:"required"`
	Location    string    `json:"location" binding:"required"`
	Description string    `json:"description"`
	Priority    string    `json:"priority" binding:"required,oneof=A B C"`
	Goal        string    `json:"goal,omitempty"`
	Result      string    `json:"result,omitempty"`
}

type CoachMessage struct {
	ID        string    `json:"id"`
	CoachType string    `json:"coachType"`
	Message   string    `json:"message"`
	Date      time.Time `json:"date"`
	IsUser    bool      `json:"isUser"`
}

type UserSettings struct {
	Name                string   `json:"name" binding:"required"`
	BirthYear           int      `json:"birthYear" binding:"required"`
	Weight              float64  `json:"weight" binding:"required"`
	Height              float64  `json:"height" binding:"required"`
	FitnessLevel        string   `json:"fitnessLevel" binding:"required,oneof=beginner intermediate advanced"`
	PrimarySport        string   `json:"primarySport" binding:"required"`
	SecondarySports     []string `json:"secondarySports"`
	DietaryRestrictions []string `json:"dietaryRestrictions"`
	Notifications       bool     `json:"notifications"`
	Units               string   `json:"units" binding:"required,oneof=metric imperial"`
}

// DefaultSettings is the row seeded on first boot; the client state store
// starts from the same values.
func DefaultSettings() UserSettings {
	return UserSettings{
		Name:                "User",
		BirthYear:           1990,
		Weight:              70,
		Height:              175,
		FitnessLevel:        "intermediate",
		PrimarySport:        "run",
		SecondarySports:     []string{"swim", "bike", "football"},
		DietaryRestrictions: []string{},
		Notifications:       true,
		Units:               "metric",
	}
}

type CoachRequest struct {
	Message string `json:"message" binding:"required"`
}

type CoachReply struct {
	Message string `json:"message"`
}

type CreateResult struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

type StatusResult struct {
	Message string `json:"message"`
}
