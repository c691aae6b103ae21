package observe

import (
	"context"
	"errors"
	"strings"

	"diggle/internal/app/session"
)

var ErrInvalidRequest = errors.New("invalid observe request")

const fixedViewRadius = 5

type Request struct {
	SessionID string
}

// Response is the session snapshot plus derived feedback a dumb rendering
// layer can show without re-implementing the rules.
type Response struct {
	session.Snapshot
	FuelFeedback FuelFeedback `json:"fuel_feedback"`
}

// FuelFeedback estimates how much digging the remaining fuel buys, so a HUD
// can warn before the tank actually empties.
type FuelFeedback struct {
	IsLow             bool    `json:"is_low"`
	IsCritical        bool    `json:"is_critical"`
	EstimatedDigsLeft int     `json:"estimated_digs_left"`
	ReferenceDigCost  float64 `json:"reference_dig_cost"`
}

type UseCase struct {
	Sessions *session.Manager
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.SessionID) == "" {
		return Response{}, ErrInvalidRequest
	}
	s, err := u.Sessions.Get(req.SessionID)
	if err != nil {
		return Response{}, err
	}
	snap := s.Snapshot(fixedViewRadius)
	return Response{
		Snapshot:     snap,
		FuelFeedback: estimateFuel(snap),
	}, nil
}
