package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/beka-birhanu/vinom-maze/grid"
	"github.com/beka-birhanu/vinom-maze/logger"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/beka-birhanu/vinom-maze/solver"
	"github.com/google/uuid"
)

const (
	defaultMaxDimension = 50
	defaultTicketTTL    = 7 * 24 * time.Hour

	cacheKeyFmt = "maze:%s:%dx%d:%d"
)

// Maze service errors.
var (
	ErrInvalidDimensions = grid.ErrInvalidDimensions
	ErrUnknownAlgorithm  = maze.ErrUnknownAlgorithm
	ErrTooLarge          = errors.New("maze dimensions exceed the configured maximum")
	ErrInvalidTicket     = errors.New("invalid maze ticket")
	ErrSharingDisabled   = errors.New("maze sharing is not configured")
)

// MazeRequest identifies a maze. Equal requests always produce equal mazes.
type MazeRequest struct {
	Columns   int
	Rows      int
	Seed      uint64
	Algorithm maze.Algorithm
}

// MazeResult is a built and solved maze.
type MazeResult struct {
	ID       uuid.UUID // Derived from the request, stable across builds.
	Request  MazeRequest
	Grid     grid.Map
	Walls    maze.Walls
	Solution solver.Solution
}

// Render draws the maze with its longest path: S and E mark the ends and *
// marks the cells between them.
func (r *MazeResult) Render() string {
	marks := make(map[grid.Pos]string, len(r.Solution.Path))
	for cell := range r.Solution.Path {
		marks[cell] = "*"
	}
	marks[r.Solution.Start] = "S"
	marks[r.Solution.End] = "E"
	return maze.Render(r.Grid, r.Walls, marks)
}

// MazeServiceConfig holds the collaborators of a MazeService. Cache and
// Ticketer are optional.
type MazeServiceConfig struct {
	Cache        i.MazeCache
	Ticketer     i.Ticketer
	Logger       i.Logger
	MaxDimension int
	TicketTTL    time.Duration
}

// MazeService builds, solves and shares mazes.
type MazeService struct {
	cache        i.MazeCache
	ticketer     i.Ticketer
	logger       i.Logger
	maxDimension int
	ticketTTL    time.Duration
}

// NewMazeService creates a MazeService, filling unset options with defaults.
func NewMazeService(c *MazeServiceConfig) (*MazeService, error) {
	if c == nil {
		c = &MazeServiceConfig{}
	}

	s := &MazeService{
		cache:        c.Cache,
		ticketer:     c.Ticketer,
		logger:       c.Logger,
		maxDimension: c.MaxDimension,
		ticketTTL:    c.TicketTTL,
	}

	if s.logger == nil {
		s.logger = logger.Discard()
	}
	if s.maxDimension <= 0 {
		s.maxDimension = defaultMaxDimension
	}
	if s.ticketTTL <= 0 {
		s.ticketTTL = defaultTicketTTL
	}

	return s, nil
}

// MaxDimension returns the largest accepted column or row count.
func (s *MazeService) MaxDimension() int {
	return s.maxDimension
}

// Build returns the maze for req, from the cache when possible.
func (s *MazeService) Build(ctx context.Context, req MazeRequest) (*MazeResult, error) {
	g, err := s.validate(req)
	if err != nil {
		return nil, err
	}

	if s.cache == nil {
		return s.build(g, req)
	}

	key := cacheKey(req)
	if result, ok := s.fromCache(ctx, g, req, key); ok {
		return result, nil
	}

	unlock, err := s.cache.Lock(ctx, key)
	if err != nil {
		s.logger.Warning(fmt.Sprintf("locking %s: %s", key, err))
	} else {
		defer unlock()
		// Another caller may have filled the entry while we waited.
		if result, ok := s.fromCache(ctx, g, req, key); ok {
			return result, nil
		}
	}

	result, err := s.build(g, req)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(newRecord(result))
	if err != nil {
		s.logger.Error(fmt.Sprintf("encoding %s: %s", key, err))
		return result, nil
	}
	if err := s.cache.Set(ctx, key, payload); err != nil {
		s.logger.Warning(fmt.Sprintf("caching %s: %s", key, err))
	}

	return result, nil
}

// Share signs req into a ticket that Open turns back into the same maze.
func (s *MazeService) Share(ctx context.Context, req MazeRequest) (string, error) {
	if s.ticketer == nil {
		return "", ErrSharingDisabled
	}
	if _, err := s.validate(req); err != nil {
		return "", err
	}

	ticket, err := s.ticketer.Issue(map[string]interface{}{
		"columns":   req.Columns,
		"rows":      req.Rows,
		"seed":      strconv.FormatUint(req.Seed, 10),
		"algorithm": req.Algorithm.String(),
	}, s.ticketTTL)
	if err != nil {
		s.logger.Error(fmt.Sprintf("issuing ticket: %s", err))
		return "", err
	}

	s.logger.Info(fmt.Sprintf("shared %s maze %dx%d seed=%d", req.Algorithm, req.Columns, req.Rows, req.Seed))
	return ticket, nil
}

// Open rebuilds the maze a ticket was issued for.
func (s *MazeService) Open(ctx context.Context, ticket string) (*MazeResult, error) {
	if s.ticketer == nil {
		return nil, ErrSharingDisabled
	}

	claims, err := s.ticketer.Parse(ticket)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidTicket, err)
	}

	req, err := requestFromClaims(claims)
	if err != nil {
		return nil, err
	}

	return s.Build(ctx, req)
}

func (s *MazeService) validate(req MazeRequest) (grid.Map, error) {
	g, err := grid.New(req.Columns, req.Rows)
	if err != nil {
		return grid.Map{}, err
	}
	if req.Columns > s.maxDimension || req.Rows > s.maxDimension {
		return grid.Map{}, fmt.Errorf("%w: %dx%d, max %d", ErrTooLarge, req.Columns, req.Rows, s.maxDimension)
	}
	return g, nil
}

func (s *MazeService) build(g grid.Map, req MazeRequest) (*MazeResult, error) {
	started := time.Now()

	walls, err := maze.Generate(g, req.Seed, req.Algorithm)
	if err != nil {
		return nil, err
	}

	if err := maze.Verify(g, walls); err != nil {
		s.logger.Error(fmt.Sprintf("%s produced an invalid maze for %dx%d seed=%d: %s", req.Algorithm, req.Columns, req.Rows, req.Seed, err))
		return nil, err
	}

	solution, err := solver.Solve(g, walls)
	if err != nil {
		s.logger.Error(fmt.Sprintf("solving %s maze %dx%d seed=%d: %s", req.Algorithm, req.Columns, req.Rows, req.Seed, err))
		return nil, err
	}

	s.logger.Info(fmt.Sprintf("built %s maze %dx%d seed=%d in %s", req.Algorithm, req.Columns, req.Rows, req.Seed, time.Since(started)))
	return &MazeResult{
		ID:       resultID(req),
		Request:  req,
		Grid:     g,
		Walls:    walls,
		Solution: solution,
	}, nil
}

func (s *MazeService) fromCache(ctx context.Context, g grid.Map, req MazeRequest, key string) (*MazeResult, bool) {
	payload, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warning(fmt.Sprintf("reading %s: %s", key, err))
		return nil, false
	}
	if !ok {
		return nil, false
	}

	var rec record
	if err := json.Unmarshal(payload, &rec); err != nil {
		s.logger.Warning(fmt.Sprintf("decoding %s: %s", key, err))
		return nil, false
	}

	result, err := rec.result(g, req)
	if err != nil {
		s.logger.Warning(fmt.Sprintf("discarding %s: %s", key, err))
		return nil, false
	}

	s.logger.Info(fmt.Sprintf("cache hit %s", key))
	return result, true
}

func cacheKey(req MazeRequest) string {
	return fmt.Sprintf(cacheKeyFmt, req.Algorithm, req.Columns, req.Rows, req.Seed)
}

func resultID(req MazeRequest) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(cacheKey(req)))
}

func requestFromClaims(claims map[string]interface{}) (MazeRequest, error) {
	columns, okColumns := claimInt(claims["columns"])
	rows, okRows := claimInt(claims["rows"])
	seedText, okSeed := claims["seed"].(string)
	algoName, okAlgo := claims["algorithm"].(string)
	if !okColumns || !okRows || !okSeed || !okAlgo {
		return MazeRequest{}, fmt.Errorf("%w: missing maze claims", ErrInvalidTicket)
	}

	seed, err := strconv.ParseUint(seedText, 10, 64)
	if err != nil {
		return MazeRequest{}, fmt.Errorf("%w: seed: %s", ErrInvalidTicket, err)
	}

	algo, err := maze.ParseAlgorithm(algoName)
	if err != nil {
		return MazeRequest{}, fmt.Errorf("%w: %s", ErrInvalidTicket, err)
	}

	return MazeRequest{Columns: columns, Rows: rows, Seed: seed, Algorithm: algo}, nil
}

// claimInt accepts the numeric shapes a decoded claim can take.
func claimInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		return int(n), true
	case json.Number:
		i, err := n.Int64()
		return int(i), err == nil
	}
	return 0, false
}
