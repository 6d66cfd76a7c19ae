// Package mazeapi exposes maze generation and lookup over HTTP.
package mazeapi

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	dmn "github.com/beka-birhanu/vinom-originshift/domain"
	"github.com/beka-birhanu/vinom-originshift/maze"
	"github.com/beka-birhanu/vinom-originshift/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MazeService is the part of service.MazeService the controller uses.
type MazeService interface {
	Generate(ctx context.Context, req service.GenerateRequest) (*dmn.MazeRecord, error)
	ByID(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, error)
	Cell(ctx context.Context, id uuid.UUID, x, y int) (dmn.CellRecord, error)
}

// MazeController handles maze HTTP requests.
type MazeController struct {
	mazeService MazeService
}

// NewMazeController initializes a MazeController.
func NewMazeController(s MazeService) *MazeController {
	return &MazeController{
		mazeService: s,
	}
}

// Register registers the maze routes.
func (mc *MazeController) Register(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("", mc.generate)
		mazes.GET("/:ID", mc.byID)
		mazes.GET("/:ID/cells/:x/:y", mc.cell)
	}
}

// generate handles maze generation requests.
func (mc *MazeController) generate(ctx *gin.Context) {
	var request GenerateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := mc.mazeService.Generate(ctx.Request.Context(), service.GenerateRequest{
		Width:  request.Width,
		Height: request.Height,
		Steps:  request.Steps,
		Seed:   request.Seed,
	})
	if err != nil {
		if errors.Is(err, maze.ErrInvalidSize) ||
			errors.Is(err, service.ErrDimensionTooLarge) ||
			errors.Is(err, service.ErrTooManySteps) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while generating maze"})
		return
	}

	ctx.JSON(http.StatusCreated, record)
}

// byID returns a stored maze.
func (mc *MazeController) byID(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	record, err := mc.mazeService.ByID(ctx.Request.Context(), id)
	if err != nil {
		writeLookupError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, record)
}

// cell returns the outward edges of one cell of a stored maze.
func (mc *MazeController) cell(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	x, errX := strconv.Atoi(ctx.Params.ByName("x"))
	y, errY := strconv.Atoi(ctx.Params.ByName("y"))
	if errX != nil || errY != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "coordinates must be integers"})
		return
	}

	cell, err := mc.mazeService.Cell(ctx.Request.Context(), id, x, y)
	if err != nil {
		writeLookupError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, &CellResponse{X: cell.X, Y: cell.Y, Outward: cell.Outward})
}

func parseID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid maze id"})
		return uuid.Nil, false
	}
	return id, true
}

func writeLookupError(ctx *gin.Context, err error) {
	if errors.Is(err, dmn.ErrMazeNotFound) || errors.Is(err, service.ErrCellNotFound) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while loading maze"})
}
