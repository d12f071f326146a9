package match

import "github.com/poiesic/breedmatch/core"

// MatchMonitor provides hooks to observe the matching process.
// Implement this interface to track intermediate steps during resolution,
// relaxation, and scoring.
type MatchMonitor interface {
	Start(preferences []core.Preference)
	AfterResolve(resolved []ResolvedPreference)
	AfterEvaluation(candidates []string)
	PreferenceDropped(trait string, importance int, remaining int)
	Finish(result *core.MatchResult)
}

// noopMonitor is a no-op implementation of MatchMonitor
type noopMonitor struct{}

var _ MatchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ []core.Preference)               {}
func (n *noopMonitor) AfterResolve(_ []ResolvedPreference)     {}
func (n *noopMonitor) AfterEvaluation(_ []string)              {}
func (n *noopMonitor) PreferenceDropped(_ string, _, _ int)    {}
func (n *noopMonitor) Finish(_ *core.MatchResult)              {}
