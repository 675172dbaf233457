package controllers

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"

	"github.com/boldgroup/website/internal/pkg/catalog"
	"github.com/boldgroup/website/internal/pkg/pricing"
)

// CatalogController serves the read-only catalog: services, packages, team
// and quotes.
type CatalogController struct {
	catalog *catalog.Store
}

func NewCatalogController(store *catalog.Store) *CatalogController {
	return &CatalogController{catalog: store}
}

func (cc *CatalogController) HandleListServices(c *fiber.Ctx) error {
	return c.JSON(cc.catalog.ListServices())
}

func (cc *CatalogController) HandleGetService(c *fiber.Ctx) error {
	service, ok := cc.catalog.GetServiceByID(c.Params("id"))
	if !ok {
		return notFound(c, "Service not found")
	}
	return c.JSON(service)
}

// HandleListPackages answers with an empty list for unknown services.
func (cc *CatalogController) HandleListPackages(c *fiber.Ctx) error {
	return c.JSON(cc.catalog.ListPackages(c.Params("id")))
}

func (cc *CatalogController) HandleGetPackage(c *fiber.Ctx) error {
	pkg, ok := cc.catalog.GetPackageByID(c.Params("id"), c.Params("packageId"))
	if !ok {
		return notFound(c, "Package not found")
	}
	return c.JSON(pkg)
}

func (cc *CatalogController) HandleListTeam(c *fiber.Ctx) error {
	return c.JSON(cc.catalog.ListTeamMembers())
}

func (cc *CatalogController) HandleListAllTeam(c *fiber.Ctx) error {
	return c.JSON(cc.catalog.ListAllTeamMembers())
}

func (cc *CatalogController) HandleListWhyChooseUs(c *fiber.Ctx) error {
	return c.JSON(cc.catalog.ListWhyChooseUs())
}

func (cc *CatalogController) HandleGetQuote(c *fiber.Ctx) error {
	serviceID := c.Params("serviceId")
	pkg, ok := cc.catalog.GetPackageByID(serviceID, c.Params("packageId"))
	if !ok {
		return notFound(c, "Package not found")
	}

	return c.JSON(fiber.Map{
		"serviceId": serviceID,
		"package":   pkg,
		"vatRate":   json.Number(pricing.VATRate().String()),
		"quote":     pricing.ForPackage(&pkg),
	})
}
