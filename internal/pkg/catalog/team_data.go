package catalog

import "github.com/boldgroup/website/app/models"

// leadershipSize is the number of leading roster entries shown as leadership.
const leadershipSize = 3

func link(s string) *string {
	return &s
}

// seedTeam returns the full roster, leadership first.
func seedTeam() []models.TeamMember {
	return []models.TeamMember{
		{
			ID:          1,
			Name:        "RIDUBARI JOSHUA JOE-AMOS",
			Role:        "FOUNDER & MANAGING DIRECTOR",
			Bio:         "Leads the overall strategic direction of Bold Group, bringing extensive experience in business management and service delivery.",
			SocialLinks: models.SocialLinks{LinkedIn: link("#"), Email: link("ridubari@boldgroup.com")},
		},
		{
			ID:          2,
			Name:        "DR. FIMIE WISDOM",
			Role:        "PROJECT MANAGER",
			Bio:         "Oversees all project operations and ensures high-quality service delivery to clients across all service areas.",
			SocialLinks: models.SocialLinks{LinkedIn: link("#"), Email: link("wisdom@boldgroup.com")},
		},
		{
			ID:          3,
			Name:        "AMAEKE CYNTHIA OGECHI",
			Role:        "BUSINESS DEVELOPMENT MANAGER",
			Bio:         "Leads business development initiatives and manages client relationships to drive growth and expansion.",
			SocialLinks: models.SocialLinks{LinkedIn: link("#"), Email: link("cynthia@boldgroup.com")},
		},
		{
			ID:          4,
			Name:        "LIEZETH JOYCE VASQUEZ",
			Role:        "BUSINESS DEVELOPMENT EXECUTIVE, PHILIPPINES",
			Bio:         "Responsible for business development and client acquisition in the Philippines market.",
			SocialLinks: models.SocialLinks{LinkedIn: link("#"), Email: link("liezeth@boldgroup.com")},
		},
		{
			ID:          5,
			Name:        "BITRUS ESTHER",
			Role:        "BUSINESS DEVELOPMENT EXECUTIVE, NORTHERN AND WESTERN NIGERIA",
			Bio:         "Manages business development initiatives across Northern and Western Nigeria regions.",
			SocialLinks: models.SocialLinks{LinkedIn: link("#"), Email: link("esther@boldgroup.com")},
		},
		{
			ID:          6,
			Name:        "AKPAN, GODWIN AKPAN",
			Role:        "HUMAN RESOURCE EXECUTIVE",
			Bio:         "Leads recruitment, staff development, and HR policies to support the company's growth.",
			SocialLinks: models.SocialLinks{LinkedIn: link("#"), Email: link("godwin@boldgroup.com")},
		},
	}
}

func seedWhyChooseUs() []models.WhyChooseUsItem {
	return []models.WhyChooseUsItem{
		{
			ID:          1,
			Title:       "Experienced Team",
			Description: "Our team of 30+ professionals brings years of experience across various industries to deliver high-quality services for your business.",
			IconClass:   "fa-users",
		},
		{
			ID:          2,
			Title:       "Fast Turnaround",
			Description: "Our structured team approach allows us to complete tasks within minutes to a few hours, ensuring your business operations run smoothly.",
			IconClass:   "fa-tachometer-alt",
		},
		{
			ID:          3,
			Title:       "Quality Assurance",
			Description: "Every project is thoroughly reviewed by Team Leaders and further assessed by the Project Manager to guarantee high-quality services.",
			IconClass:   "fa-check-circle",
		},
		{
			ID:          4,
			Title:       "Cost-Effective",
			Description: "Our service packages are designed to provide maximum value for your investment, helping you save on operational costs while scaling your business.",
			IconClass:   "fa-hand-holding-usd",
		},
		{
			ID:          5,
			Title:       "Comprehensive Services",
			Description: "From administrative tasks to full-stack development, we offer a wide range of services to meet all your business needs under one roof.",
			IconClass:   "fa-tools",
		},
		{
			ID:          6,
			Title:       "Flexible Packages",
			Description: "Choose from our Basic, Standard, or Premium packages, or let us create a custom solution tailored to your specific business requirements.",
			IconClass:   "fa-sliders-h",
		},
	}
}
