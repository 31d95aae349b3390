package mazeapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/gin-gonic/gin"
)

// DefaultAlgorithm is used when a request names none.
const DefaultAlgorithm = maze.WilsonAlgorithm

var ErrNilService = errors.New("maze service is nil")

// MazeService is the part of service.MazeService the controller drives.
type MazeService interface {
	Build(ctx context.Context, req service.MazeRequest) (*service.MazeResult, error)
	Share(ctx context.Context, req service.MazeRequest) (string, error)
	Open(ctx context.Context, ticket string) (*service.MazeResult, error)
}

// MazeController handles HTTP requests for mazes.
type MazeController struct {
	mazeService MazeService
}

// NewMazeController creates a new MazeController.
func NewMazeController(s MazeService) (*MazeController, error) {
	if s == nil {
		return nil, ErrNilService
	}
	return &MazeController{
		mazeService: s,
	}, nil
}

// Register registers the maze routes.
func (c *MazeController) Register(route *gin.RouterGroup) {
	route.GET("/algorithms", c.algorithms)

	mazes := route.Group("/mazes")
	{
		mazes.GET("", c.build)
		mazes.GET("/ascii", c.ascii)
		mazes.POST("/share", c.share)
		mazes.GET("/shared/:ticket", c.open)
	}
}

// build handles GET /mazes.
func (c *MazeController) build(ctx *gin.Context) {
	result, ok := c.buildFromQuery(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, newMazeResponse(result))
}

// ascii handles GET /mazes/ascii.
func (c *MazeController) ascii(ctx *gin.Context) {
	result, ok := c.buildFromQuery(ctx)
	if !ok {
		return
	}
	ctx.String(http.StatusOK, result.Render())
}

// share handles POST /mazes/share.
func (c *MazeController) share(ctx *gin.Context) {
	var query MazeQuery
	if err := ctx.ShouldBindJSON(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	req, err := toRequest(query)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ticket, err := c.mazeService.Share(ctx.Request.Context(), req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, &ShareResponse{Ticket: ticket})
}

// open handles GET /mazes/shared/:ticket.
func (c *MazeController) open(ctx *gin.Context) {
	result, err := c.mazeService.Open(ctx.Request.Context(), ctx.Param("ticket"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newMazeResponse(result))
}

// algorithms handles GET /algorithms.
func (c *MazeController) algorithms(ctx *gin.Context) {
	names := make([]string, 0, len(maze.Algorithms))
	for _, a := range maze.Algorithms {
		names = append(names, a.String())
	}
	ctx.JSON(http.StatusOK, &AlgorithmsResponse{
		Algorithms: names,
		Default:    DefaultAlgorithm.String(),
	})
}

func (c *MazeController) buildFromQuery(ctx *gin.Context) (*service.MazeResult, bool) {
	var query MazeQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}

	req, err := toRequest(query)
	if err != nil {
		respondError(ctx, err)
		return nil, false
	}

	result, err := c.mazeService.Build(ctx.Request.Context(), req)
	if err != nil {
		respondError(ctx, err)
		return nil, false
	}
	return result, true
}

func toRequest(q MazeQuery) (service.MazeRequest, error) {
	algo := DefaultAlgorithm
	if q.Algorithm != "" {
		var err error
		if algo, err = maze.ParseAlgorithm(q.Algorithm); err != nil {
			return service.MazeRequest{}, err
		}
	}

	return service.MazeRequest{
		Columns:   q.Columns,
		Rows:      q.Rows,
		Seed:      q.Seed,
		Algorithm: algo,
	}, nil
}

func respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidDimensions),
		errors.Is(err, service.ErrTooLarge),
		errors.Is(err, service.ErrUnknownAlgorithm):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidTicket):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "maze ticket not found or expired"})
	case errors.Is(err, service.ErrSharingDisabled):
		ctx.JSON(http.StatusNotImplemented, gin.H{"error": err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
