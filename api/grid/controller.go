// Package gridapi exposes flood-fill grids over HTTP, one grid per session.
package gridapi

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/floodgrid/brush"
	"github.com/katalvlaran/floodgrid/floodfill"
	"github.com/katalvlaran/floodgrid/session"
)

// GridController manages grid sessions.
type GridController struct {
	store *session.Store
	log   *logrus.Entry
}

// NewGridController initializes a GridController.
func NewGridController(store *session.Store, log *logrus.Logger) *GridController {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &GridController{
		store: store,
		log:   log.WithField("component", "gridapi"),
	}
}

// Register registers the grid routes.
func (gc *GridController) Register(route *gin.RouterGroup) {
	grids := route.Group("/grids")
	{
		grids.POST("", gc.create)
		grids.GET("/:ID", gc.get)
		grids.DELETE("/:ID", gc.remove)
		grids.POST("/:ID/route", gc.apply((*floodfill.Grid).Route))
		grids.POST("/:ID/clear", gc.apply((*floodfill.Grid).Clear))
		grids.POST("/:ID/reset", gc.apply((*floodfill.Grid).ResetWalls))
		grids.POST("/:ID/randomize", gc.apply((*floodfill.Grid).Randomize))
		grids.POST("/:ID/step", gc.apply(step))
		grids.PUT("/:ID/walls/:row/:col", gc.editWall((*floodfill.Grid).PlaceWall))
		grids.DELETE("/:ID/walls/:row/:col", gc.editWall((*floodfill.Grid).RemoveWall))
		grids.POST("/:ID/strokes", gc.stroke)
	}
}

// step advances a running computation or begins a new one.
func step(g *floodfill.Grid) {
	if g.Done() {
		g.Begin()
		return
	}
	g.Step()
}

// create handles session creation requests.
func (gc *GridController) create(ctx *gin.Context) {
	var request CreateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil && !errors.Is(err, io.EOF) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s, err := gc.store.Create(request.Seed)
	if err != nil {
		gc.fail(ctx, err)
		return
	}
	gc.respond(ctx, http.StatusCreated, s)
}

// get returns the current snapshot.
func (gc *GridController) get(ctx *gin.Context) {
	s, ok := gc.session(ctx)
	if !ok {
		return
	}
	gc.respond(ctx, http.StatusOK, s)
}

// remove drops a session.
func (gc *GridController) remove(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	if err := gc.store.Delete(id); err != nil {
		gc.fail(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// apply runs a whole-grid operation and returns the new snapshot.
func (gc *GridController) apply(op func(*floodfill.Grid)) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		s, ok := gc.session(ctx)
		if !ok {
			return
		}
		var snap Snapshot
		_ = s.Do(func(g *floodfill.Grid) error {
			op(g)
			snap = snapshotOf(s.ID.String(), g)
			return nil
		})
		ctx.JSON(http.StatusOK, snap)
	}
}

// editWall places or removes a single wall.
func (gc *GridController) editWall(op func(*floodfill.Grid, int, int) (bool, error)) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		s, ok := gc.session(ctx)
		if !ok {
			return
		}
		row, errRow := strconv.Atoi(ctx.Param("row"))
		col, errCol := strconv.Atoi(ctx.Param("col"))
		if errRow != nil || errCol != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "row and col must be integers"})
			return
		}

		var resp EditResponse
		err := s.Do(func(g *floodfill.Grid) error {
			changed, err := op(g, row, col)
			if changed {
				resp.Changed = 1
			}
			resp.Version = g.Version()
			return err
		})
		if err != nil {
			gc.fail(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, resp)
	}
}

// stroke applies one drag gesture.
func (gc *GridController) stroke(ctx *gin.Context) {
	s, ok := gc.session(ctx)
	if !ok {
		return
	}
	var request StrokeRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var resp EditResponse
	err := s.Do(func(g *floodfill.Grid) error {
		st := brush.NewStroke(g)
		defer st.End()
		for _, p := range request.Points {
			changed, err := st.Drag(p.Row, p.Col)
			if err != nil {
				return err
			}
			if changed {
				resp.Changed++
			}
		}
		resp.Version = g.Version()
		return nil
	})
	if err != nil {
		gc.fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// session resolves the :ID parameter, writing the error response on failure.
func (gc *GridController) session(ctx *gin.Context) (*session.Session, bool) {
	id, ok := parseID(ctx)
	if !ok {
		return nil, false
	}
	s, err := gc.store.Get(id)
	if err != nil {
		gc.fail(ctx, err)
		return nil, false
	}
	return s, true
}

func parseID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}

// respond writes a snapshot of s.
func (gc *GridController) respond(ctx *gin.Context, status int, s *session.Session) {
	var snap Snapshot
	_ = s.Do(func(g *floodfill.Grid) error {
		snap = snapshotOf(s.ID.String(), g)
		return nil
	})
	ctx.JSON(status, snap)
}

// fail maps domain errors to HTTP statuses.
func (gc *GridController) fail(ctx *gin.Context, err error) {
	_ = ctx.Error(err)
	switch {
	case errors.Is(err, session.ErrSessionNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, floodfill.ErrOutOfBounds):
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, session.ErrStoreFull):
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	default:
		gc.log.WithError(err).Error("unexpected error")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
