package model

import "time"

// Plan is the subscription tier. It gates the wallet count limit and
// advanced reports; no payment processing happens here.
type Plan string

const (
	// PlanFree is the default tier.
	PlanFree Plan = "free"
	// PlanPremium removes the wallet cap and unlocks advanced reports.
	PlanPremium Plan = "premium"
)

// Subscription tracks the user's plan and trial state.
type Subscription struct {
	Plan          Plan       `json:"plan"`
	TrialActive   bool       `json:"trial_active"`
	TrialDaysLeft int        `json:"trial_days_left"`
	StartedAt     *time.Time `json:"started_at,omitempty"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty"`
}

// DefaultSubscription returns the subscription seeded on first run.
func DefaultSubscription() Subscription {
	return Subscription{Plan: PlanFree}
}
