package usecase

import (
	"context"
	"errors"

	"svw.info/countdown/internal/domain"
	"svw.info/countdown/internal/ports"
)

// Service wires the solving core to its thin collaborators: puzzle
// generation, validation and hinting.
type Service struct {
	Bruteforce ports.Solver
	Minimax    ports.Solver
	Generator  ports.Generator
	Validator  ports.Validator
	Hinter     ports.Hinter
}

func NewService(bf, mm ports.Solver, g ports.Generator, v ports.Validator, h ports.Hinter) *Service {
	return &Service{Bruteforce: bf, Minimax: mm, Generator: g, Validator: v, Hinter: h}
}

var errNotConfigured = errors.New("usecase dependency not configured")

func (u *Service) Solve(ctx context.Context, p *domain.Puzzle, strategy domain.Strategy) (*domain.Solution, ports.Stats, error) {
	s := u.Bruteforce
	if strategy == domain.StrategyMinimax {
		s = u.Minimax
	}
	if s == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return s.Solve(ctx, p)
}

func (u *Service) Generate(ctx context.Context, seed int64, largeCount, size int) (*domain.Puzzle, ports.Stats, error) {
	if u.Generator == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Generator.Generate(ctx, seed, largeCount, size)
}

func (u *Service) Validate(ctx context.Context, p *domain.Puzzle) (bool, []string, error) {
	if u.Validator == nil {
		return false, nil, errNotConfigured
	}
	return u.Validator.Validate(ctx, p)
}

func (u *Service) Hint(ctx context.Context, numbers []int, target int) (domain.Hint, bool, error) {
	if u.Hinter == nil {
		return domain.Hint{}, false, errNotConfigured
	}
	return u.Hinter.Hint(ctx, numbers, target)
}
