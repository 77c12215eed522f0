package ports

import "go.trai.ch/fixdep/internal/core/domain"

// RulesLoader defines the interface for loading the exclusion rules.
//
//go:generate mockgen -source=rules_loader.go -destination=mocks/mock_rules_loader.go -package=mocks
type RulesLoader interface {
	// Load reads the rules from the given path. An empty path or a missing
	// file yields the default rule set.
	Load(path string) (domain.Rules, error)
}
