package config

import (
	"fmt"
	"sort"
)

// ChainRegistry maps alert types to chain definitions. Built once at load
// time and read-only afterwards.
type ChainRegistry struct {
	chains      map[string]*ChainConfig // chain_id → definition
	byAlertType map[string]string       // alert_type → chain_id
	knownTypes  []string                // sorted, for error messages
}

// NewChainRegistry indexes chain definitions by id and alert type.
// Duplicate chain ids and alert types claimed by two chains are rejected.
func NewChainRegistry(chains map[string]ChainConfig) (*ChainRegistry, error) {
	r := &ChainRegistry{
		chains:      make(map[string]*ChainConfig, len(chains)),
		byAlertType: make(map[string]string),
	}

	// Deterministic iteration so conflict errors are stable.
	ids := make([]string, 0, len(chains))
	for id := range chains {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		chain := chains[id]
		if _, exists := r.chains[id]; exists {
			return nil, &DuplicateChainIDError{ChainID: id}
		}
		c := chain
		r.chains[id] = &c

		for _, alertType := range chain.AlertTypes {
			if prev, claimed := r.byAlertType[alertType]; claimed {
				claimants := []string{prev, id}
				sort.Strings(claimants)
				return nil, &AlertTypeConflictError{AlertType: alertType, ChainIDs: claimants}
			}
			r.byAlertType[alertType] = id
		}
	}

	r.knownTypes = make([]string, 0, len(r.byAlertType))
	for alertType := range r.byAlertType {
		r.knownTypes = append(r.knownTypes, alertType)
	}
	sort.Strings(r.knownTypes)

	return r, nil
}

// GetChainForAlertType returns the single chain handling the alert type.
func (r *ChainRegistry) GetChainForAlertType(alertType string) (string, *ChainConfig, error) {
	chainID, ok := r.byAlertType[alertType]
	if !ok {
		return "", nil, &UnknownAlertTypeError{
			AlertType:  alertType,
			KnownTypes: r.KnownAlertTypes(),
		}
	}
	return chainID, r.chains[chainID], nil
}

// Get returns a chain definition by id.
func (r *ChainRegistry) Get(chainID string) (*ChainConfig, error) {
	chain, ok := r.chains[chainID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrChainNotFound, chainID)
	}
	return chain, nil
}

// KnownAlertTypes returns all routable alert types, sorted.
func (r *ChainRegistry) KnownAlertTypes() []string {
	out := make([]string, len(r.knownTypes))
	copy(out, r.knownTypes)
	return out
}

// ChainIDs returns all chain ids, sorted.
func (r *ChainRegistry) ChainIDs() []string {
	ids := make([]string, 0, len(r.chains))
	for id := range r.chains {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of chains.
func (r *ChainRegistry) Len() int { return len(r.chains) }
