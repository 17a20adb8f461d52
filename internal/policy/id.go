package policy

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"

	"github.com/polkiloo/lusunpay/internal/clock"
	domainErrors "github.com/polkiloo/lusunpay/internal/domain/errors"
)

// Strategy selects how the daily suffix of an order id is chosen.
type Strategy string

const (
	// StrategySequential hands out 001, 002, ... per UTC day.
	StrategySequential Strategy = "sequential"
	// StrategyRandom draws a suffix in [0, 999] and redraws on collision,
	// falling back to the first free suffix after repeated misses.
	StrategyRandom Strategy = "random"
)

const (
	maxSuffix     = 999
	maxRandomDraw = 32
)

// ExistsFunc reports whether an id is already taken.
type ExistsFunc func(ctx context.Context, id string) (bool, error)

// IDGenerator issues order ids shaped PREFIX-YYYYMMDD-NNN.
type IDGenerator struct {
	prefix   string
	strategy Strategy
	clock    clock.Clock
	exists   ExistsFunc

	mu       sync.Mutex
	day      string
	lastSeq  int
	randIntN func(n int) int
}

// NewIDGenerator builds a generator. exists is consulted for every candidate.
func NewIDGenerator(prefix string, strategy Strategy, clk clock.Clock, exists ExistsFunc) (*IDGenerator, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return nil, fmt.Errorf("order id prefix must not be empty")
	}
	switch strategy {
	case StrategySequential, StrategyRandom:
	case "":
		strategy = StrategySequential
	default:
		return nil, fmt.Errorf("unknown order id strategy %q", strategy)
	}
	return &IDGenerator{
		prefix:   prefix,
		strategy: strategy,
		clock:    clk,
		exists:   exists,
		randIntN: rand.Intn,
	}, nil
}

// Next returns an id that is not taken at the time of the call.
func (g *IDGenerator) Next(ctx context.Context) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	day := g.clock.Now().UTC().Format("20060102")
	if day != g.day {
		g.day = day
		g.lastSeq = 0
	}

	if g.strategy == StrategyRandom {
		return g.nextRandom(ctx, day)
	}
	return g.nextSequential(ctx, day)
}

func (g *IDGenerator) nextSequential(ctx context.Context, day string) (string, error) {
	for seq := g.lastSeq + 1; seq <= maxSuffix; seq++ {
		id := g.format(day, seq)
		taken, err := g.exists(ctx, id)
		if err != nil {
			return "", fmt.Errorf("check order id: %w", err)
		}
		g.lastSeq = seq
		if !taken {
			return id, nil
		}
	}
	return "", domainErrors.ErrIDSpaceExhausted
}

func (g *IDGenerator) nextRandom(ctx context.Context, day string) (string, error) {
	for attempt := 0; attempt < maxRandomDraw; attempt++ {
		id := g.format(day, g.randIntN(maxSuffix+1))
		taken, err := g.exists(ctx, id)
		if err != nil {
			return "", fmt.Errorf("check order id: %w", err)
		}
		if !taken {
			return id, nil
		}
	}

	// Unlucky draws on a crowded day: walk the suffixes in order.
	for seq := 0; seq <= maxSuffix; seq++ {
		id := g.format(day, seq)
		taken, err := g.exists(ctx, id)
		if err != nil {
			return "", fmt.Errorf("check order id: %w", err)
		}
		if !taken {
			return id, nil
		}
	}
	return "", domainErrors.ErrIDSpaceExhausted
}

func (g *IDGenerator) format(day string, seq int) string {
	return fmt.Sprintf("%s-%s-%03d", g.prefix, day, seq)
}
