package catalog

import (
	"slices"

	"github.com/boldgroup/website/app/models"
)

// Store holds the read-only catalog: services with their packages, the team
// roster and the "why choose us" items. It is never mutated after construction,
// so it is safe for concurrent use.
type Store struct {
	services       []models.Service
	team           []models.TeamMember
	leadershipSize int
	whyChooseUs    []models.WhyChooseUsItem
}

// New returns a store seeded with the agency catalog.
func New() *Store {
	return NewStore(seedServices(), seedTeam(), leadershipSize, seedWhyChooseUs())
}

// NewStore builds a store from the given data. The first leadership entries of
// team are the leadership subset; leadership is clamped to the roster size.
func NewStore(services []models.Service, team []models.TeamMember, leadership int, whyChooseUs []models.WhyChooseUsItem) *Store {
	if leadership < 0 {
		leadership = 0
	}
	if leadership > len(team) {
		leadership = len(team)
	}
	return &Store{
		services:       cloneServices(services),
		team:           cloneTeam(team),
		leadershipSize: leadership,
		whyChooseUs:    slices.Clone(whyChooseUs),
	}
}

// ListServices returns all services in declaration order.
func (s *Store) ListServices() []models.Service {
	return cloneServices(s.services)
}

// GetServiceByID looks a service up by its slug.
func (s *Store) GetServiceByID(id string) (models.Service, bool) {
	for _, svc := range s.services {
		if svc.ID == id {
			return svc.Clone(), true
		}
	}
	return models.Service{}, false
}

// GetPackageByID resolves a package of a service. Either lookup missing yields false.
func (s *Store) GetPackageByID(serviceID, packageID string) (models.Package, bool) {
	svc, ok := s.GetServiceByID(serviceID)
	if !ok {
		return models.Package{}, false
	}
	return svc.FindPackage(packageID)
}

// ListPackages returns the packages of a service, or an empty list when the
// service does not exist.
func (s *Store) ListPackages(serviceID string) []models.Package {
	svc, ok := s.GetServiceByID(serviceID)
	if !ok {
		return []models.Package{}
	}
	out := make([]models.Package, len(svc.Packages))
	for i, pkg := range svc.Packages {
		out[i] = pkg.Clone()
	}
	return out
}

// ListTeamMembers returns the leadership subset.
func (s *Store) ListTeamMembers() []models.TeamMember {
	return cloneTeam(s.team[:s.leadershipSize])
}

// ListAllTeamMembers returns the full roster with leadership first.
func (s *Store) ListAllTeamMembers() []models.TeamMember {
	return cloneTeam(s.team)
}

func (s *Store) ListWhyChooseUs() []models.WhyChooseUsItem {
	return cloneOrEmpty(s.whyChooseUs)
}

// Everything handed out or taken in is deep-copied; the store shares no
// slices or pointers with callers.
func cloneServices(in []models.Service) []models.Service {
	out := make([]models.Service, len(in))
	for i, svc := range in {
		out[i] = svc.Clone()
	}
	return out
}

func cloneTeam(in []models.TeamMember) []models.TeamMember {
	out := make([]models.TeamMember, len(in))
	for i, m := range in {
		out[i] = m.Clone()
	}
	return out
}

func cloneOrEmpty[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}
