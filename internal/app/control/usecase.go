package control

import (
	"context"
	"errors"
	"strings"

	"diggle/internal/app/session"
	"diggle/internal/domain/mining"
)

var (
	ErrInvalidRequest   = errors.New("invalid control request")
	ErrUnknownCommand   = errors.New("unknown command")
	ErrInvalidDirection = errors.New("invalid direction")
)

// CommandType is the inbound command vocabulary of a session.
type CommandType string

const (
	CmdSetDirection    CommandType = "set_direction"
	CmdReset           CommandType = "reset"
	CmdTeleportToSpawn CommandType = "teleport_to_spawn"
	CmdUpgrade         CommandType = "upgrade"
	CmdRefuel          CommandType = "refuel"
	CmdRepair          CommandType = "repair"
	CmdSellCargo       CommandType = "sell_cargo"
)

type Request struct {
	SessionID string
	Command   CommandType
	Direction mining.Direction
	Upgrade   mining.UpgradeTarget
}

type Response struct {
	Applied bool `json:"applied"`
	// Units and Cost carry the maintenance results, zero otherwise.
	Units float64 `json:"units,omitempty"`
	Cost  int     `json:"cost,omitempty"`
	Sold  int     `json:"sold,omitempty"`
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

	switch req.Command {
	case CmdSetDirection:
		if !req.Direction.Valid() {
			return Response{}, ErrInvalidDirection
		}
		s.SetHeldDirection(req.Direction)
		return Response{Applied: true}, nil

	case CmdReset, CmdTeleportToSpawn:
		s.Reset()
		return Response{Applied: true}, nil

	case CmdUpgrade:
		if err := s.ApplyUpgrade(req.Upgrade); err != nil {
			return Response{}, err
		}
		return Response{Applied: true}, nil

	case CmdRefuel:
		units, cost, err := s.Refuel()
		if err != nil {
			return Response{}, err
		}
		return Response{Applied: units > 0, Units: units, Cost: cost}, nil

	case CmdRepair:
		units, cost, err := s.Repair()
		if err != nil {
			return Response{}, err
		}
		return Response{Applied: units > 0, Units: units, Cost: cost}, nil

	case CmdSellCargo:
		sold, err := s.SellCargo()
		if err != nil {
			return Response{}, err
		}
		return Response{Applied: sold > 0, Sold: sold}, nil
	}

	return Response{}, ErrUnknownCommand
}
