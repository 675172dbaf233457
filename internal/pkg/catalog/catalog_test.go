package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boldgroup/website/app/models"
)

func TestListServices_DeclarationOrder(t *testing.T) {
	store := New()

	services := store.ListServices()
	require.Len(t, services, 7)

	ids := make([]string, 0, len(services))
	for _, svc := range services {
		ids = append(ids, svc.ID)
		assert.Len(t, svc.Packages, 3, "service %s", svc.ID)
	}
	assert.Equal(t, []string{
		"tech-software-development",
		"executive-virtual-assistance",
		"social-media-management",
		"customer-support",
		"marketing-lead-generation",
		"finance-bookkeeping",
		"ecommerce-assistance",
	}, ids)
}

func TestGetServiceByID(t *testing.T) {
	store := New()

	svc, ok := store.GetServiceByID("tech-software-development")
	require.True(t, ok)
	assert.Equal(t, "Tech & Software Development", svc.Title)

	require.NotEmpty(t, svc.Packages)
	assert.Equal(t, int64(800000), svc.Packages[0].Price)

	_, ok = store.GetServiceByID("nonexistent")
	assert.False(t, ok)
}

func TestGetPackageByID(t *testing.T) {
	store := New()

	tests := []struct {
		name      string
		serviceID string
		packageID string
		wantOK    bool
		wantPrice int64
	}{
		{name: "premium executive", serviceID: "executive-virtual-assistance", packageID: "premium", wantOK: true, wantPrice: 200000},
		{name: "standard social", serviceID: "social-media-management", packageID: "standard", wantOK: true, wantPrice: 250000},
		{name: "unknown package", serviceID: "executive-virtual-assistance", packageID: "platinum"},
		{name: "unknown service", serviceID: "nonexistent", packageID: "basic"},
		{name: "empty ids", serviceID: "", packageID: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pkg, ok := store.GetPackageByID(tt.serviceID, tt.packageID)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantPrice, pkg.Price)
				assert.Equal(t, tt.packageID, pkg.ID)
			}
		})
	}
}

func TestListPackages(t *testing.T) {
	store := New()

	pkgs := store.ListPackages("finance-bookkeeping")
	require.Len(t, pkgs, 3)
	assert.Equal(t, []string{"basic", "standard", "premium"}, []string{pkgs[0].ID, pkgs[1].ID, pkgs[2].ID})

	missing := store.ListPackages("nonexistent")
	assert.NotNil(t, missing)
	assert.Empty(t, missing)
}

func TestTeamOrdering(t *testing.T) {
	store := New()

	leadership := store.ListTeamMembers()
	all := store.ListAllTeamMembers()

	require.Len(t, all, 6)
	require.Len(t, leadership, 3)
	assert.Equal(t, leadership, all[:3])
	assert.Equal(t, uint(1), all[0].ID)
	assert.Equal(t, uint(4), all[3].ID)
}

func TestNewStore_ClampsLeadership(t *testing.T) {
	team := []models.TeamMember{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}}

	store := NewStore(nil, team, 5, nil)
	assert.Len(t, store.ListTeamMembers(), 2)

	store = NewStore(nil, team, -1, nil)
	assert.Empty(t, store.ListTeamMembers())
	assert.NotNil(t, store.ListServices())
}

func TestListServices_ReturnsCopy(t *testing.T) {
	store := New()

	services := store.ListServices()
	services[0] = models.Service{ID: "changed"}

	svc, ok := store.GetServiceByID("tech-software-development")
	require.True(t, ok)
	assert.Equal(t, "tech-software-development", svc.ID)
	assert.Equal(t, "tech-software-development", store.ListServices()[0].ID)
}

func TestGetServiceByID_WritesDoNotReachStore(t *testing.T) {
	store := New()

	svc, ok := store.GetServiceByID("tech-software-development")
	require.True(t, ok)
	svc.Packages[0].Price = 1
	svc.Packages[0].Features[0] = "changed"
	svc.Features[0] = "changed"

	listed := store.ListServices()
	listed[0].Packages[1].Price = 2

	pkg, ok := store.GetPackageByID("tech-software-development", "basic")
	require.True(t, ok)
	assert.Equal(t, int64(800000), pkg.Price)
	assert.NotEqual(t, "changed", pkg.Features[0])

	again, ok := store.GetServiceByID("tech-software-development")
	require.True(t, ok)
	assert.NotEqual(t, "changed", again.Features[0])
	assert.Equal(t, int64(1500000), again.Packages[1].Price)
}

func TestListTeamMembers_WritesDoNotReachStore(t *testing.T) {
	store := New()

	all := store.ListAllTeamMembers()
	require.NotNil(t, all[0].SocialLinks.Email)
	original := *all[0].SocialLinks.Email
	*all[0].SocialLinks.Email = "x"

	leaders := store.ListTeamMembers()
	require.NotNil(t, leaders[0].SocialLinks.Email)
	assert.Equal(t, original, *leaders[0].SocialLinks.Email)
	assert.Equal(t, original, *store.ListAllTeamMembers()[0].SocialLinks.Email)
}

func TestNewStore_CopiesInput(t *testing.T) {
	services := []models.Service{{ID: "s", Packages: []models.Package{{ID: "basic", Price: 10}}}}
	store := NewStore(services, nil, 0, nil)

	services[0].Packages[0].Price = 99

	pkg, ok := store.GetPackageByID("s", "basic")
	require.True(t, ok)
	assert.Equal(t, int64(10), pkg.Price)
}

func TestListWhyChooseUs(t *testing.T) {
	items := New().ListWhyChooseUs()
	require.Len(t, items, 6)
	assert.Equal(t, "Experienced Team", items[0].Title)
	assert.Equal(t, "Flexible Packages", items[5].Title)
}
