package service

import (
	"context"
	"time"

	"sport-planner/internal/apperr"
)

// CannedAdvisor is the offline deployment mode: a fixed paragraph per
// coach, returned after a short delay so the UI's loading state is
// exercised. The incoming message is ignored.
type CannedAdvisor struct {
	delay time.Duration
}

func NewCannedAdvisor() *CannedAdvisor {
	return &CannedAdvisor{delay: 500 * time.Millisecond}
}

var cannedReplies = map[string]string{
	"sport": "To balance triathlon preparation with regular football, cut back on running " +
		"volume for 48 hours after each match. Lean on swimming and cycling during that " +
		"window so you keep aerobic load while sparing your legs, and add one weekly " +
		"strength session targeting the muscle groups football works hardest.",
	"diet": "A heavy training week calls for extra attention to hydration and carbohydrate " +
		"intake. Favour complex carbs on double-session days, and plan a snack combining " +
		"protein and carbohydrates within 30 minutes of finishing an intense workout to " +
		"support muscle recovery.",
	"injury": "Combining football with running increases the load on your knees. Add " +
		"targeted strengthening for quadriceps and hamstrings twice a week, watch for " +
		"early signs of fatigue around the joint, and schedule an extra recovery session " +
		"if symptoms persist.",
}

func (a *CannedAdvisor) Advice(ctx context.Context, coachType, message string) (string, error) {
	if a.delay > 0 {
		select {
		case <-time.After(a.delay):
		case <-ctx.Done():
			return "", apperr.Wrap(apperr.Gateway, "canned advice", ctx.Err())
		}
	}
	reply, ok := cannedReplies[coachType]
	if !ok {
		return "", apperr.New(apperr.Validation, "unknown coach type")
	}
	return reply, nil
}
