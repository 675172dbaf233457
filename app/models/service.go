package models

// Service is a catalog entry offered by the agency. The slug in ID is the only
// identifier used across the catalog, the checkout and the HTTP surface.
type Service struct {
	ID                   string                `json:"id"`
	Title                string                `json:"title"`
	ShortDescription     string                `json:"shortDescription"`
	LongDescription      string                `json:"longDescription"`
	Features             []string              `json:"features"`
	IconClass            string                `json:"iconClass"`
	Packages             []Package             `json:"packages"`
	ServiceDetails       []ServiceDetail       `json:"serviceDetails,omitempty"`
	IndustryApplications []IndustryApplication `json:"industryApplications,omitempty"`
}

// Package is a pricing tier owned by a Service. Its ID is only unique within
// the parent service.
type Package struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       int64    `json:"price"` // whole currency units
	Description string   `json:"description"`
	Features    []string `json:"features"`
}

type ServiceDetail struct {
	Title string   `json:"title"`
	Items []string `json:"items"`
}

type IndustryApplication struct {
	Icon string `json:"icon"`
	Name string `json:"name"`
}

const (
	PACKAGE_BASIC    = "basic"
	PACKAGE_STANDARD = "standard"
	PACKAGE_PREMIUM  = "premium"
)

// FindPackage looks up a package of this service by its id.
func (s Service) FindPackage(packageID string) (Package, bool) {
	for _, pkg := range s.Packages {
		if pkg.ID == packageID {
			return pkg, true
		}
	}
	return Package{}, false
}
