// Package state is the client-side state store: an in-memory normalized
// mirror of the five entity collections plus settings, advanced by a pure
// reducing function over a closed set of actions. Synchronization with
// the server is the caller's job: issue an API call, then dispatch the
// matching action on success.
package state

import "sport-planner/internal/model"

type State struct {
	Events           []model.Event
	TrainingSessions []model.TrainingSession
	Meals            []model.Meal
	Injuries         []model.Injury
	Competitions     []model.Competition
	Settings         model.UserSettings
	Loading          bool
	Error            string
}

// Initial returns the pre-sync state; settings mirror the server's seed
// defaults so the UI renders sensibly before the first fetch.
func Initial() State {
	return State{Settings: model.DefaultSettings()}
}

// Action is a closed sum over every recognized state transition. The
// reducer matches variants exhaustively; anything else leaves the state
// unchanged.
type Action interface{ isAction() }

type SetEvents struct{ Events []model.Event }
type AddEvent struct{ Event model.Event }
type UpdateEvent struct{ Event model.Event }
type DeleteEvent struct{ ID string }

type SetTrainingSessions struct{ Sessions []model.TrainingSession }
type AddTrainingSession struct{ Session model.TrainingSession }
type UpdateTrainingSession struct{ Session model.TrainingSession }
type DeleteTrainingSession struct{ ID string }

type SetMeals struct{ Meals []model.Meal }
type AddMeal struct{ Meal model.Meal }
type UpdateMeal struct{ Meal model.Meal }
type DeleteMeal struct{ ID string }

type SetInjuries struct{ Injuries []model.Injury }
type AddInjury struct{ Injury model.Injury }
type UpdateInjury struct{ Injury model.Injury }
type DeleteInjury struct{ ID string }

type SetCompetitions struct{ Competitions []model.Competition }
type AddCompetition struct{ Competition model.Competition }
type UpdateCompetition struct{ Competition model.Competition }
type DeleteCompetition struct{ ID string }

type SetSettings struct{ Settings model.UserSettings }
type SetLoading struct{ Loading bool }
type SetError struct{ Message string }

func (SetEvents) isAction()             {}
func (AddEvent) isAction()              {}
func (UpdateEvent) isAction()           {}
func (DeleteEvent) isAction()           {}
func (SetTrainingSessions) isAction()   {}
func (AddTrainingSession) isAction()    {}
func (UpdateTrainingSession) isAction() {}
func (DeleteTrainingSession) isAction() {}
func (SetMeals) isAction()              {}
func (AddMeal) isAction()               {}
func (UpdateMeal) isAction()            {}
func (DeleteMeal) isAction()            {}
func (SetInjuries) isAction()           {}
func (AddInjury) isAction()             {}
func (UpdateInjury) isAction()          {}
func (DeleteInjury) isAction()          {}
func (SetCompetitions) isAction()       {}
func (AddCompetition) isAction()        {}
func (UpdateCompetition) isAction()     {}
func (DeleteCompetition) isAction()     {}
func (SetSettings) isAction()           {}
func (SetLoading) isAction()            {}
func (SetError) isAction()              {}

// Reduce returns the state after applying one action. It never mutates
// its input: collections touched by the action are rebuilt, untouched
// fields are carried over by the value copy. Insertion order is preserved
// on add, matching is by id, and updates replace the whole record.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case SetEvents:
		s.Events = a.Events
	case AddEvent:
		s.Events = appended(s.Events, a.Event)
	case UpdateEvent:
		s.Events = replaced(s.Events, a.Event, func(e model.Event) string { return e.ID })
	case DeleteEvent:
		s.Events = removed(s.Events, a.ID, func(e model.Event) string { return e.ID })

	case SetTrainingSessions:
		s.TrainingSessions = a.Sessions
	case AddTrainingSession:
		s.TrainingSessions = appended(s.TrainingSessions, a.Session)
	case UpdateTrainingSession:
		s.TrainingSessions = replaced(s.TrainingSessions, a.Session, func(t model.TrainingSession) string { return t.ID })
	case DeleteTrainingSession:
		s.TrainingSessions = removed(s.TrainingSessions, a.ID, func(t model.TrainingSession) string { return t.ID })

	case SetMeals:
		s.Meals = a.Meals
	case AddMeal:
		s.Meals = appended(s.Meals, a.Meal)
	case UpdateMeal:
		s.Meals = replaced(s.Meals, a.Meal, func(m model.Meal) string { return m.ID })
	case DeleteMeal:
		s.Meals = removed(s.Meals, a.ID, func(m model.Meal) string { return m.ID })

	case SetInjuries:
		s.Injuries = a.Injuries
	case AddInjury:
		s.Injuries = appended(s.Injuries, a.Injury)
	case UpdateInjury:
		s.Injuries = replaced(s.Injuries, a.Injury, func(i model.Injury) string { return i.ID })
	case DeleteInjury:
		s.Injuries = removed(s.Injuries, a.ID, func(i model.Injury) string { return i.ID })

	case SetCompetitions:
		s.Competitions = a.Competitions
	case AddCompetition:
		s.Competitions = appended(s.Competitions, a.Competition)
	case UpdateCompetition:
		s.Competitions = replaced(s.Competitions, a.Competition, func(c model.Competition) string { return c.ID })
	case DeleteCompetition:
		s.Competitions = removed(s.Competitions, a.ID, func(c model.Competition) string { return c.ID })

	case SetSettings:
		s.Settings = a.Settings
	case SetLoading:
		s.Loading = a.Loading
	case SetError:
		s.Error = a.Message
	}
	return s
}

func appended[T any](in []T, v T) []T {
	out := make([]T, 0, len(in)+1)
	out = append(out, in...)
	return append(out, v)
}

func replaced[T any](in []T, v T, id func(T) string) []T {
	out := make([]T, len(in))
	vid := id(v)
	for i, cur := range in {
		if id(cur) == vid {
			out[i] = v
		} else {
			out[i] = cur
		}
	}
	return out
}

func removed[T any](in []T, targetID string, id func(T) string) []T {
	out := make([]T, 0, len(in))
	for _, cur := range in {
		if id(cur) != targetID {
			out = append(out, cur)
		}
	}
	return out
}
