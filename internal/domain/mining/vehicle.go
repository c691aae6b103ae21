package mining

// Capability contracts the controller consumes. The concrete resource
// systems satisfy them; the controller never mutates numeric state behind
// their backs.
type FuelSource interface {
	Consume(amount float64)
	IsEmpty() bool
}

type HullSink interface {
	TakeDamage(amount float64)
	MaxIntegrity() float64
	IsDestroyed() bool
}

type DrillCapability interface {
	CanMine(hardness int) bool
	EffectiveDigTime(base float64) float64
}

type Drivetrain interface {
	EffectiveSpeed(base float64) float64
	EffectiveFlySpeed(base float64) float64
}

type CoolantLoop interface {
	EffectiveFuelCost(base float64) float64
}

type OreLedger interface {
	CollectOre(res DigResult)
	UpdateMaxDepth(rows int)
}

// Systems bundles the six resource systems a vehicle consumes.
type Systems struct {
	Fuel    FuelSource
	Hull    HullSink
	Drill   DrillCapability
	Engine  Drivetrain
	Cooling CoolantLoop
	Economy OreLedger
}

// VehicleController is the movement/dig/fall state machine. It is strictly
// single-writer: all mutation happens inside Tick, driven by the held
// direction applied at tick start. Abnormal conditions are state branches,
// never errors.
type VehicleController struct {
	grid *TileGrid
	sys  Systems

	pos      Position
	target   Position
	activity Activity
	facing   Direction

	held        Direction
	pendingHeld *Direction

	digCell   Cell
	moveSpeed float64

	fallTracking  bool
	fallOriginRow int
	fallRow       int

	belowSurface bool
	gameOver     bool
	ticks        uint64
	events       []Event
}

func NewVehicleController(grid *TileGrid, sys Systems) *VehicleController {
	spawn := SpawnCell(grid).Center()
	return &VehicleController{
		grid:     grid,
		sys:      sys,
		pos:      spawn,
		target:   spawn,
		activity: ActivityIdle,
		facing:   DirRight,
		held:     DirNone,
	}
}

// SetHeldDirection queues the held input direction. It takes effect at the
// start of the next tick so that a tick only ever sees one input value.
func (v *VehicleController) SetHeldDirection(d Direction) {
	if !d.Valid() {
		d = DirNone
	}
	v.pendingHeld = &d
}

// Tick advances the simulation by dt seconds.
func (v *VehicleController) Tick(dt float64) {
	if v.gameOver || dt <= 0 {
		return
	}
	v.ticks++

	if v.pendingHeld != nil {
		v.held = *v.pendingHeld
		v.pendingHeld = nil
	}
	if v.held != DirNone {
		v.facing = v.held
	}

	// Terminal conditions are checked before any motion logic, every tick.
	if v.sys.Hull.IsDestroyed() {
		v.signalGameOver(CauseHullDestroyed)
		return
	}
	if v.sys.Fuel.IsEmpty() && CellOf(v.pos).Y > v.grid.SurfaceRow() {
		v.signalGameOver(CauseFuelExhausted)
		return
	}

	switch v.activity {
	case ActivityDigging:
		v.tickDig(dt)
	case ActivityMoving, ActivityFalling:
		v.tickMove(dt)
	case ActivityIdle:
		v.decideNextMove()
	}

	v.checkSurfaceCrossing()
}

func (v *VehicleController) tickDig(dt float64) {
	tile, ok := v.grid.TileAt(v.digCell.X, v.digCell.Y)
	if !ok || !v.mineable(tile.Type) {
		// Target disappeared or became unmineable between ticks: abandon
		// with no resource debit and no result.
		v.abortDig()
		return
	}
	if v.held != directionToward(CellOf(v.pos), v.digCell) {
		// Player released or changed input: the dig is cancelled and its
		// progress discarded.
		v.abortDig()
		return
	}

	delta := dt / v.sys.Drill.EffectiveDigTime(tile.Type.DigTime())
	res, done := v.grid.UpdateDig(v.digCell.X, v.digCell.Y, delta)
	if done {
		v.completeDig(res)
	}
}

// completeDig applies completion side effects in fixed order:
// damage, fuel debit, ore credit, reveal, retarget.
func (v *VehicleController) completeDig(res DigResult) {
	if res.Lethal {
		v.sys.Hull.TakeDamage(v.sys.Hull.MaxIntegrity())
	} else if res.Hazard {
		v.sys.Hull.TakeDamage(res.HazardDamage)
	}

	v.sys.Fuel.Consume(v.sys.Cooling.EffectiveFuelCost(res.FuelCost))

	if res.Ore {
		v.sys.Economy.CollectOre(res)
	}

	v.grid.RevealAround(v.digCell.X, v.digCell.Y, RevealRadius)
	v.sys.Economy.UpdateMaxDepth(v.digCell.Y - v.grid.SurfaceRow())

	v.emit(EventTileMined, map[string]any{
		"tile":   res.Type.Name(),
		"value":  res.Value,
		"ore":    res.Ore,
		"hazard": res.Hazard,
		"lethal": res.Lethal,
		"x":      v.digCell.X,
		"y":      v.digCell.Y,
	})

	// Roll into the mined cell. No movement fuel cost: the dig already paid.
	v.target = v.digCell.Center()
	v.moveSpeed = v.sys.Engine.EffectiveSpeed(BaseDriveSpeed)
	v.activity = ActivityMoving
}

func (v *VehicleController) abortDig() {
	v.grid.CancelDig(v.digCell.X, v.digCell.Y)
	v.activity = ActivityIdle
}

func (v *VehicleController) tickMove(dt float64) {
	remaining := distance(v.pos, v.target)
	step := v.moveSpeed * dt
	if step < remaining {
		v.pos.X += (v.target.X - v.pos.X) / remaining * step
		v.pos.Y += (v.target.Y - v.pos.Y) / remaining * step
		return
	}
	// Snap exactly to target, never overshoot, and fall through to arrival.
	v.pos = v.target
	v.arrive()
}

func (v *VehicleController) arrive() {
	cell := CellOf(v.pos)
	if v.fallTracking {
		v.fallRow = cell.Y
	}
	v.activity = ActivityIdle
	v.decideNextMove()
}

// decideNextMove runs only when the vehicle is at rest on a tile center.
func (v *VehicleController) decideNextMove() {
	cell := CellOf(v.pos)
	below, belowOK := v.grid.TileAt(cell.X, cell.Y+1)
	canFall := belowOK && below.Type == TileEmpty

	switch v.held {
	case DirUp:
		tile, ok := v.grid.TileAt(cell.X, cell.Y-1)
		switch {
		case ok && tile.Type == TileEmpty:
			v.clearFallTracking()
			v.startMove(Cell{X: cell.X, Y: cell.Y - 1}, v.sys.Engine.EffectiveFlySpeed(BaseFlySpeed), FlyMoveFuelCost)
		case canFall:
			v.startFall(cell)
		}

	case DirLeft, DirRight:
		dx := 1
		if v.held == DirLeft {
			dx = -1
		}
		target := Cell{X: cell.X + dx, Y: cell.Y}
		tile, ok := v.grid.TileAt(target.X, target.Y)
		switch {
		case ok && tile.Type == TileEmpty:
			v.clearFallTracking()
			v.startMove(target, v.sys.Engine.EffectiveSpeed(BaseDriveSpeed), HorizontalMoveFuelCost)
		case ok && v.mineable(tile.Type):
			v.land()
			v.startDig(target)
		case canFall:
			// Bedrock and other immovable tiles block the direction; gravity
			// still applies.
			v.startFall(cell)
		}

	case DirDown:
		target := Cell{X: cell.X, Y: cell.Y + 1}
		switch {
		case canFall:
			v.startFall(cell)
		case belowOK && v.mineable(below.Type):
			v.land()
			v.startDig(target)
		default:
			if v.fallTracking {
				v.land()
			}
		}

	case DirNone:
		if canFall {
			v.startFall(cell)
		} else if v.fallTracking {
			v.land()
		}
	}
}

func (v *VehicleController) startMove(target Cell, speed, fuelCost float64) {
	v.sys.Fuel.Consume(fuelCost)
	v.target = target.Center()
	v.moveSpeed = speed
	v.activity = ActivityMoving
}

func (v *VehicleController) startFall(from Cell) {
	if !v.fallTracking {
		v.fallTracking = true
		v.fallOriginRow = from.Y
	}
	v.fallRow = from.Y
	v.target = Cell{X: from.X, Y: from.Y + 1}.Center()
	v.moveSpeed = FallSpeed
	v.activity = ActivityFalling
}

func (v *VehicleController) startDig(target Cell) {
	v.grid.StartDig(target.X, target.Y)
	v.digCell = target
	v.activity = ActivityDigging
}

// land resolves a tracked fall: rows beyond the safe distance damage the
// hull, and tracking always clears regardless.
func (v *VehicleController) land() {
	if !v.fallTracking {
		return
	}
	fallen := v.fallRow - v.fallOriginRow
	var damage float64
	if fallen > SafeFallRows {
		damage = float64(fallen-SafeFallRows) * FallDamagePerRow
		v.sys.Hull.TakeDamage(damage)
	}
	v.emit(EventLanded, map[string]any{
		"rows":   fallen,
		"damage": damage,
	})
	v.clearFallTracking()
}

func (v *VehicleController) clearFallTracking() {
	v.fallTracking = false
	v.fallOriginRow = 0
	v.fallRow = 0
}

// mineable is the single predicate gating a dig: a material the drill's
// current tier can cut. DrillBit owns the hardness mapping.
func (v *VehicleController) mineable(t TileType) bool {
	return t.Diggable() && v.sys.Drill.CanMine(t.Hardness())
}

func (v *VehicleController) signalGameOver(cause GameOverCause) {
	v.gameOver = true
	v.emit(EventGameOver, map[string]any{"cause": string(cause)})
}

func (v *VehicleController) checkSurfaceCrossing() {
	row := CellOf(v.pos).Y
	if row > v.grid.SurfaceRow() {
		v.belowSurface = true
		return
	}
	if v.belowSurface {
		v.belowSurface = false
		v.emit(EventSurfaceReached, nil)
	}
}

func (v *VehicleController) emit(t EventType, payload map[string]any) {
	v.events = append(v.events, Event{Type: t, Tick: v.ticks, Payload: payload})
}

// DrainEvents returns and clears the outbox. The host loop calls this once
// per frame; the controller never invokes callbacks.
func (v *VehicleController) DrainEvents() []Event {
	out := v.events
	v.events = nil
	return out
}

// Reset atomically restores the controller to its spawn state: position,
// activity, fall tracking, held input and the terminal flag all clear.
// Resource ledgers are untouched; they belong to their systems.
func (v *VehicleController) Reset() {
	spawn := SpawnCell(v.grid).Center()
	v.restoreAt(spawn)
}

// TeleportToSpawn is the respawn entry point for death and manual recall.
func (v *VehicleController) TeleportToSpawn() {
	v.Reset()
}

// RestorePosition is the load-game entry point: a full reset onto an
// arbitrary saved cell instead of spawn.
func (v *VehicleController) RestorePosition(x, y int) {
	v.restoreAt(Cell{X: x, Y: y}.Center())
	v.grid.RevealAround(x, y, RevealRadius)
}

func (v *VehicleController) restoreAt(p Position) {
	v.pos = p
	v.target = p
	v.activity = ActivityIdle
	v.held = DirNone
	v.pendingHeld = nil
	v.clearFallTracking()
	v.gameOver = false
	v.belowSurface = CellOf(p).Y > v.grid.SurfaceRow()
}

func (v *VehicleController) Position() Position { return v.pos }
func (v *VehicleController) Target() Position   { return v.target }
func (v *VehicleController) Activity() Activity { return v.activity }
func (v *VehicleController) Facing() Direction  { return v.facing }
func (v *VehicleController) Held() Direction    { return v.held }
func (v *VehicleController) Cell() Cell         { return CellOf(v.pos) }
func (v *VehicleController) GameOver() bool     { return v.gameOver }
func (v *VehicleController) Ticks() uint64      { return v.ticks }

// Depth is the vehicle's current distance below the surface row, in rows.
// Zero at or above the surface.
func (v *VehicleController) Depth() int {
	d := CellOf(v.pos).Y - v.grid.SurfaceRow()
	if d < 0 {
		return 0
	}
	return d
}

// AtSurface reports whether the vehicle rests on the surface row, where
// maintenance and trading happen.
func (v *VehicleController) AtSurface() bool {
	return CellOf(v.pos).Y <= v.grid.SurfaceRow()
}

// DigProgress returns the active dig's normalized progress, zero when not
// digging.
func (v *VehicleController) DigProgress() float64 {
	if v.activity != ActivityDigging {
		return 0
	}
	tile, ok := v.grid.TileAt(v.digCell.X, v.digCell.Y)
	if !ok {
		return 0
	}
	return tile.DigProgress
}

// directionToward maps the single-cell offset from a to b onto the input
// direction that points there.
func directionToward(from, to Cell) Direction {
	switch {
	case to.X == from.X-1 && to.Y == from.Y:
		return DirLeft
	case to.X == from.X+1 && to.Y == from.Y:
		return DirRight
	case to.X == from.X && to.Y == from.Y-1:
		return DirUp
	case to.X == from.X && to.Y == from.Y+1:
		return DirDown
	}
	return DirNone
}
