package roles

import (
	"fmt"

	"talenthub/resume-ranker/internal/scoring"
)

// Role identifies a target job profile. Unknown values are scored against
// the default role's baseline rather than rejected.
type Role string

const (
	RoleSoftwareEngineer   Role = "software-engineer"
	RoleDataAnalyst        Role = "data-analyst"
	RoleFullstackDeveloper Role = "fullstack-developer"
	RoleProductManager     Role = "product-manager"
)

// DefaultRole is the fallback profile for unknown role identifiers.
const DefaultRole = RoleSoftwareEngineer

// Criteria is the canonical requirements entry for one role. Entries are
// built once at startup and shared read-only across all pipeline runs.
type Criteria struct {
	Role           Role
	Text           string
	NormalizedText string
	Keywords       []string
	Skills         []string
}

// Repository resolves role identifiers to their criteria. It is immutable
// after construction and therefore safe for concurrent use.
type Repository struct {
	entries map[Role]*Criteria
	order   []Role
}

// NewRepository builds the criteria table from the static role definitions,
// normalizing each requirements text and deriving its keyword set up front.
func NewRepository() (*Repository, error) {
	repo := &Repository{entries: make(map[Role]*Criteria, len(roleDefinitions))}

	for _, def := range roleDefinitions {
		if len(def.skills) == 0 {
			return nil, fmt.Errorf("role %q has an empty skill catalog", def.role)
		}

		normalized := scoring.Normalize(def.criteria)
		repo.entries[def.role] = &Criteria{
			Role:           def.role,
			Text:           def.criteria,
			NormalizedText: normalized,
			Keywords:       scoring.DeriveKeywords(normalized),
			Skills:         def.skills,
		}
		repo.order = append(repo.order, def.role)
	}

	if _, ok := repo.entries[DefaultRole]; !ok {
		return nil, fmt.Errorf("default role %q is not defined", DefaultRole)
	}

	return repo, nil
}

// Criteria returns the entry for the given role, falling back to the default
// role when the identifier is unknown.
func (r *Repository) Criteria(role Role) *Criteria {
	if entry, ok := r.entries[role]; ok {
		return entry
	}
	return r.entries[DefaultRole]
}

// Roles lists the configured role identifiers in definition order.
func (r *Repository) Roles() []Role {
	out := make([]Role, len(r.order))
	copy(out, r.order)
	return out
}
