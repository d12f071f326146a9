package match

import (
	"context"
	"log/slog"

	"github.com/poiesic/breedmatch/core"
	"github.com/poiesic/breedmatch/ontology"
)

// Matcher resolves trait preferences against the ontology, relaxes
// constraints until enough candidates survive, and ranks the survivors.
type Matcher struct {
	resolver  *Resolver
	evaluator ontology.Evaluator
	logger    *slog.Logger
}

// Option configures a Matcher.
type Option func(*Matcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(m *Matcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		m.logger = logger
		return nil
	}
}

// NewMatcher creates a new matcher over a registry and an evaluator.
func NewMatcher(registry *ontology.Registry, evaluator ontology.Evaluator, opts ...Option) (*Matcher, error) {
	if registry == nil {
		return nil, ErrRegistryRequired
	}
	if evaluator == nil {
		return nil, ErrEvaluatorRequired
	}

	resolver, err := NewResolver(registry)
	if err != nil {
		return nil, err
	}

	m := &Matcher{
		resolver:  resolver,
		evaluator: evaluator,
		logger:    slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// KnownTraits returns the sorted normalized trait keys the matcher accepts.
func (m *Matcher) KnownTraits() []string {
	return m.resolver.KnownTraits()
}

// FindMatches resolves the preferences, relaxes constraints until at least
// minMatches candidates survive (or no preferences remain), and returns the
// candidates ranked by weighted trait overlap.
func (m *Matcher) FindMatches(ctx context.Context, preferences []core.Preference, minMatches int) (*core.MatchResult, error) {
	return m.FindMatchesWithMonitor(ctx, preferences, minMatches, nil)
}

// FindMatchesWithMonitor is FindMatches with stage callbacks.
// The monitor receives the resolved preferences, every candidate-set
// evaluation, and each dropped preference.
func (m *Matcher) FindMatchesWithMonitor(
	ctx context.Context,
	preferences []core.Preference,
	minMatches int,
	monitor MatchMonitor,
) (*core.MatchResult, error) {
	// Use noop monitor if none provided
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	if minMatches < 1 {
		return nil, ErrMinMatches
	}

	monitor.Start(preferences)

	// 1. Resolve every preference before touching the backend
	resolved := make([]ResolvedPreference, 0, len(preferences))
	for _, pref := range preferences {
		rp, err := m.resolver.Resolve(pref)
		if err != nil {
			m.logger.Error("trait resolution failed", "trait", pref.Trait, "err", err)
			return nil, err
		}
		resolved = append(resolved, rp)
	}
	monitor.AfterResolve(resolved)

	// 2. Relax constraints until the candidate target is met
	candidates, active, dropped, err := m.relax(ctx, resolved, minMatches, monitor)
	if err != nil {
		return nil, err
	}

	// 3. Score against the full original preference list
	ranked, err := m.score(ctx, candidates, resolved)
	if err != nil {
		return nil, err
	}

	result := &core.MatchResult{
		Ranked:        ranked,
		UsedTraits:    traitNames(active),
		DroppedTraits: traitNames(dropped),
	}

	m.logger.Info("matching complete",
		"candidates", len(ranked),
		"used_traits", len(result.UsedTraits),
		"dropped_traits", len(result.DroppedTraits))
	monitor.Finish(result)

	return result, nil
}

func traitNames(prefs []ResolvedPreference) []string {
	names := make([]string, len(prefs))
	for i, pref := range prefs {
		names[i] = pref.Trait
	}
	return names
}
