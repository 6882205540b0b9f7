package system

import (
	"math"
	"slices"

	"github.com/sirupsen/logrus"
	"github.com/solarlune/resolv"

	"github.com/younwookim/platformsim/internal/domain/entity"
	"github.com/younwookim/platformsim/internal/infrastructure/logger"
)

const (
	tagPlatform = "platform"
	tagProbe    = "probe"

	defaultCellSize = 64
)

// broadPhase buckets collidable platforms into a resolv grid so the resolver
// only narrow-phases the platforms near an actor. Candidates come back
// sorted by platform index. Callers re-query after every snap and continue
// past the last resolved index, so the result matches a linear scan.
type broadPhase struct {
	space *resolv.Space
	probe *resolv.Object

	// Space coordinates are world coordinates minus the origin so that
	// platforms at negative positions still land in valid cells.
	originX, originY float64

	cellSize int
	world    *entity.World
	version  uint64
	skipped  int

	scratch []int
}

func newBroadPhase(cellSize int) *broadPhase {
	if cellSize <= 0 {
		cellSize = defaultCellSize
	}
	return &broadPhase{cellSize: cellSize}
}

// sync rebuilds the grid when the world or its platform set was replaced
func (bp *broadPhase) sync(w *entity.World) {
	if bp.world == w && bp.version == w.PlatformVersion() {
		return
	}
	bp.rebuild(w.Platforms)
	bp.world = w
	bp.version = w.PlatformVersion()
}

func (bp *broadPhase) rebuild(platforms []entity.Platform) {
	bp.space = nil
	bp.probe = nil
	bp.skipped = 0

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	count := 0
	for i := range platforms {
		p := &platforms[i]
		if !p.Valid() {
			bp.skipped++
			logger.Log.WithFields(logrus.Fields{
				"index": i,
				"w":     p.Width,
				"h":     p.Height,
			}).Warn("Ignoring malformed platform")
			continue
		}
		if !p.Collides() {
			continue
		}
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X+p.Width)
		maxY = math.Max(maxY, p.Y+p.Height)
		count++
	}

	if count == 0 {
		logger.Log.Debug("Broad phase empty: no collidable platforms")
		return
	}

	margin := float64(bp.cellSize * 2)
	bp.originX = minX - margin
	bp.originY = minY - margin
	width := int(math.Ceil(maxX-minX+2*margin)) + bp.cellSize
	height := int(math.Ceil(maxY-minY+2*margin)) + bp.cellSize

	bp.space = resolv.NewSpace(width, height, bp.cellSize, bp.cellSize)
	for i := range platforms {
		p := &platforms[i]
		if !p.Collides() {
			continue
		}
		obj := resolv.NewObject(p.X-bp.originX, p.Y-bp.originY, p.Width, p.Height, tagPlatform)
		obj.Data = i
		bp.space.Add(obj)
	}

	bp.probe = resolv.NewObject(0, 0, 1, 1, tagProbe)
	bp.space.Add(bp.probe)

	logger.Log.WithFields(logrus.Fields{
		"platforms": count,
		"skipped":   bp.skipped,
		"cell":      bp.cellSize,
	}).Debug("Broad phase rebuilt")
}

// query returns the indices of collidable platforms whose cells touch r
// grown by one pixel, so resting contacts are included. The returned slice
// is reused by the next call.
func (bp *broadPhase) query(r entity.Rect) []int {
	bp.scratch = bp.scratch[:0]
	if bp.space == nil {
		return bp.scratch
	}

	bp.probe.X = r.X - bp.originX - 1
	bp.probe.Y = r.Y - bp.originY - 1
	bp.probe.W = math.Max(r.W, 0) + 2
	bp.probe.H = math.Max(r.H, 0) + 2
	bp.probe.Update()

	if check := bp.probe.Check(0, 0, tagPlatform); check != nil {
		for _, obj := range check.Objects {
			if idx, ok := obj.Data.(int); ok {
				bp.scratch = append(bp.scratch, idx)
			}
		}
	}
	slices.Sort(bp.scratch)
	return bp.scratch
}
