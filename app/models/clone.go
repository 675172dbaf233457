package models

import "slices"

// Clone returns a deep copy of the service. Nested slices get their own
// backing arrays.
func (s Service) Clone() Service {
	out := s
	out.Features = slices.Clone(s.Features)
	out.IndustryApplications = slices.Clone(s.IndustryApplications)

	if s.Packages != nil {
		out.Packages = make([]Package, len(s.Packages))
		for i, pkg := range s.Packages {
			out.Packages[i] = pkg.Clone()
		}
	}
	if s.ServiceDetails != nil {
		out.ServiceDetails = make([]ServiceDetail, len(s.ServiceDetails))
		for i, d := range s.ServiceDetails {
			out.ServiceDetails[i] = ServiceDetail{Title: d.Title, Items: slices.Clone(d.Items)}
		}
	}
	return out
}

func (p Package) Clone() Package {
	out := p
	out.Features = slices.Clone(p.Features)
	return out
}

// Clone returns a copy of the member that shares no pointers with m.
func (m TeamMember) Clone() TeamMember {
	out := m
	out.ImageURL = cloneString(m.ImageURL)
	out.SocialLinks = SocialLinks{
		LinkedIn: cloneString(m.SocialLinks.LinkedIn),
		Email:    cloneString(m.SocialLinks.Email),
	}
	return out
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
