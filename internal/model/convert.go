package model

import (
	"encoding/json"
	"time"
)

const settingsRowID = 1

// SettingsRowID is the fixed id of the singleton settings row.
func SettingsRowID() int { return settingsRowID }

func encodeTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// decodeTime is deliberately lenient: rows written by other tools may hold
// arbitrary text, which decodes to the zero time instead of failing the
// whole list.
func decodeTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func encodeStrings(v []string) string {
	if v == nil {
		v = []string{}
	}
	data, _ := json.Marshal(v)
	return string(data)
}

func decodeStrings(s string) []string {
	out := []string{}
	if s == "" {
		return out
	}
	json.Unmarshal([]byte(s), &out)
	return out
}

func encodeMetrics(m map[string]float64) string {
	if m == nil {
		m = map[string]float64{}
	}
	data, _ := json.Marshal(m)
	return string(data)
}

func decodeMetrics(s string) map[string]float64 {
	out := map[string]float64{}
	if s == "" {
		return out
	}
	json.Unmarshal([]byte(s), &out)
	return out
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func (e Event) Row() EventRow {
	return EventRow{
		ID:          e.ID,
		Title:       e.Title,
		Start:       encodeTime(e.Start),
		End:         encodeTime(e.End),
		Type:        e.Type,
		Description: e.Description,
		Completed:   boolToInt(e.Completed),
	}
}

func EventFromRow(r EventRow) Event {
	return Event{
		ID:          r.ID,
		Title:       r.Title,
		Start:       decodeTime(r.Start),
		End:         decodeTime(r.End),
		Type:        r.Type,
		Description: r.Description,
		Completed:   r.Completed != 0,
	}
}

func (t TrainingSession) Row() TrainingSessionRow {
	return TrainingSessionRow{
		ID:          t.ID,
		Title:       t.Title,
		SportType:   t.SportType,
		Date:        encodeTime(t.Date),
		Duration:    t.Duration,
		Description: t.Description,
		Intensity:   t.Intensity,
		Completed:   boolToInt(t.Completed),
		Feedback:    t.Feedback,
		Metrics:     encodeMetrics(t.Metrics),
	}
}

func TrainingSessionFromRow(r TrainingSessionRow) TrainingSession {
	return TrainingSession{
		ID:          r.ID,
		Title:       r.Title,
		SportType:   r.SportType,
		Date:        decodeTime(r.Date),
		Duration:    r.Duration,
		Description: r.Description,
		Intensity:   r.Intensity,
		Completed:   r.Completed != 0,
		Feedback:    r.Feedback,
		Metrics:     decodeMetrics(r.Metrics),
	}
}

func (m Meal) Row() MealRow {
	return MealRow{
		ID:          m.ID,
		Title:       m.Title,
		Date:        encodeTime(m.Date),
		MealType:    m.MealType,
		Description: m.Description,
		Foods:       encodeStrings(m.Foods),
		Completed:   boolToInt(m.Completed),
		Feedback:    m.Feedback,
	}
}

func MealFromRow(r MealRow) Meal {
	return Meal{
		ID:          r.ID,
		Title:       r.Title,
		Date:        decodeTime(r.Date),
		MealType:    r.MealType,
		Description: r.Description,
		Foods:       decodeStrings(r.Foods),
		Completed:   r.Completed != 0,
		Feedback:    r.Feedback,
	}
}

func (i Injury) Row() InjuryRow {
	endDate := ""
	if i.EndDate != nil {
		endDate = encodeTime(*i.EndDate)
	}
	return InjuryRow{
		ID:          i.ID,
		Title:       i.Title,
		BodyPart:    i.BodyPart,
		Severity:    i.Severity,
		StartDate:   encodeTime(i.StartDate),
		EndDate:     endDate,
		Description: i.Description,
		Status:      i.Status,
		Notes:       encodeStrings(i.Notes),
	}
}

func InjuryFromRow(r InjuryRow) Injury {
	var endDate *time.Time
	if r.EndDate != "" {
		t := decodeTime(r.EndDate)
		endDate = &t
	}
	return Injury{
		ID:          r.ID,
		Title:       r.Title,
		BodyPart:    r.BodyPart,
		Severity:    r.Severity,
		StartDate:   decodeTime(r.StartDate),
		EndDate:     endDate,
		Description: r.Description,
		Status:      r.Status,
		Notes:       decodeStrings(r.Notes),
	}
}

func (c Competition) Row() CompetitionRow {
	return CompetitionRow{
		ID:          c.ID,
		Title:       c.Title,
		SportType:   c.SportType,
		Date:        encodeTime(c.Date),
		Location:    c.Location,
		Description: c.Description,
		Priority:    c.Priority,
		Goal:        c.Goal,
		Result:      c.Result,
	}
}

func CompetitionFromRow(r CompetitionRow) Competition {
	return Competition{
		ID:          r.ID,
		Title:       r.Title,
		SportType:   r.SportType,
		Date:        decodeTime(r.Date),
		Location:    r.Location,
		Description: r.Description,
		Priority:    r.Priority,
		Goal:        r.Goal,
		Result:      r.Result,
	}
}

func (m CoachMessage) Row() CoachMessageRow {
	return CoachMessageRow{
		ID:        m.ID,
		CoachType: m.CoachType,
		Message:   m.Message,
		Date:      encodeTime(m.Date),
		IsUser:    boolToInt(m.IsUser),
	}
}

func CoachMessageFromRow(r CoachMessageRow) CoachMessage {
	return CoachMessage{
		ID:        r.ID,
		CoachType: r.CoachType,
		Message:   r.Message,
		Date:      decodeTime(r.Date),
		IsUser:    r.IsUser != 0,
	}
}

func (s UserSettings) Row() UserSettingsRow {
	return UserSettingsRow{
		ID:                  settingsRowID,
		Name:                s.Name,
		BirthYear:           s.BirthYear,
		Weight:              s.Weight,
		Height:              s.Height,
		FitnessLevel:        s.FitnessLevel,
		PrimarySport:        s.PrimarySport,
		SecondarySports:     encodeStrings(s.SecondarySports),
		DietaryRestrictions: encodeStrings(s.DietaryRestrictions),
		Notifications:       boolToInt(s.Notifications),
		Units:               s.Units,
	}
}

func UserSettingsFromRow(r UserSettingsRow) UserSettings {
	return UserSettings{
		Name:                r.Name,
		BirthYear:           r.BirthYear,
		Weight:              r.Weight,
		Height:              r.Height,
		FitnessLevel:        r.FitnessLevel,
		PrimarySport:        r.PrimarySport,
		SecondarySports:     decodeStrings(r.SecondarySports),
		DietaryRestrictions: decodeStrings(r.DietaryRestrictions),
		Notifications:       r.Notifications != 0,
		Units:               r.Units,
	}
}
