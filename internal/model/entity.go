package model

// Row types mirror the on-disk schema. The store uses loose text typing:
// temporal fields are RFC 3339 text, booleans are 0/1 integers, and
// structured fields (metrics, foods, notes, sports, restrictions) are
// JSON-encoded text decoded by the wire layer.

type EventRow struct {
	ID          string `gorm:"column:id;primaryKey"`
	Title       string `gorm:"column:title;not null"`
	Start       string `gorm:"column:start;not null"`
	End         string `gorm:"column:end;not null"`
	Type        string `gorm:"column:type;not null"`
	Description string `gorm:"column:description"`
	Completed   int    `gorm:"column:completed;default:0"`
}

type TrainingSessionRow struct {
	ID          string `gorm:"column:id;primaryKey"`
	Title       string `gorm:"column:title;not null"`
	SportType   string `gorm:"column:sport_type;not null"`
	Date        string `gorm:"column:date;not null"`
	Duration    int    `gorm:"column:duration;not null"`
	Description string `gorm:"column:description"`
	Intensity   string `gorm:"column:intensity;not null"`
	Completed   int    `gorm:"column:completed;default:0"`
	Feedback    string `gorm:"column:feedback"`
	Metrics     string `gorm:"column:metrics"`
}

type MealRow struct {
	ID          string `gorm:"column:id;primaryKey"`
	Title       string `gorm:"column:title;not null"`
	Date        string `gorm:"column:date;not null"`
	MealType    string `gorm:"column:meal_type;not null"`
	Description string `gorm:"column:description"`
	Foods       string `gorm:"column:foods"`
	Completed   int    `gorm:"column:completed;default:0"`
	Feedback    string `gorm:"column:feedback"`
}

type InjuryRow struct {
	ID          string `gorm:"column:id;primaryKey"`
	Title       string `gorm:"column:title;not null"`
	BodyPart    string `gorm:"column:body_part;not null"`
	Severity    string `gorm:"column:severity;not null"`
	StartDate   string `gorm:"column:start_date;not null"`
	EndDate     string `gorm:"column:end_date"`
	Description string `gorm:"column:description"`
	Status      string `gorm:"column:status;not null"`
	Notes       string `gorm:"column:notes"`
}

type CompetitionRow struct {
	ID          string `gorm:"column:id;primaryKey"`
	Title       string `gorm:"column:title;not null"`
	SportType   string `gorm:"column:sport_type;not null"`
	Date        string `gorm:"column:date;not null"`
	Location    string `gorm:"column:location;not null"`
	Description string `gorm:"column:description"`
	Priority    string `gorm:"column:priority;not null"`
	Goal        string `gorm:"column:goal"`
	Result      string `gorm:"column:result"`
}

type CoachMessageRow struct {
	ID        string `gorm:"column:id;primaryKey"`
	CoachType string `gorm:"column:coach_type;not null"`
	Message   string `gorm:"column:message;not null"`
	Date      string `gorm:"column:date;not null"`
	IsUser    int    `gorm:"column:is_user;not null"`
}

// UserSettingsRow is a singleton: exactly one row with id 1, seeded on
// first boot and never deleted.
type UserSettingsRow struct {
	ID                  int     `gorm:"column:id;primaryKey"`
	Name                string  `gorm:"column:name;not null"`
	BirthYear           int     `gorm:"column:birth_year;not null"`
	Weight              float64 `gorm:"column:weight;not null"`
	Height              float64 `gorm:"column:height;not null"`
	FitnessLevel        string  `gorm:"column:fitness_level;not null"`
	PrimarySport        string  `gorm:"column:primary_sport;not null"`
	SecondarySports     string  `gorm:"column:secondary_sports;not null"`
	DietaryRestrictions string  `gorm:"column:dietary_restrictions"`
	Notifications       int     `gorm:"column:notifications;default:1"`
	Units               string  `gorm:"column:units;default:metric"`
}

func (EventRow) TableName() string           { return "events" }
func (TrainingSessionRow) TableName() string { return "training_sessions" }
func (MealRow) TableName() string            { return "meals" }
func (InjuryRow) TableName() string          { return "injuries" }
func (CompetitionRow) TableName() string     { return "competitions" }
func (CoachMessageRow) TableName() string    { return "coach_messages" }
func (UserSettingsRow) TableName() string    { return "user_settings" }
