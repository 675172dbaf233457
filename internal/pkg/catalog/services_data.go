package catalog

import "github.com/boldgroup/website/app/models"

func seedServices() []models.Service {
	return []models.Service{
		{
			ID:               "tech-software-development",
			Title:            "Tech & Software Development",
			ShortDescription: "Custom software and technical solutions starting from ₦500,000.",
			LongDescription:  "Our team of experienced developers delivers high-quality software solutions tailored to your business needs. We offer services ranging from website development (₦800,000/month) to app development & API integration (₦1,500,000/month) and full-stack enterprise solutions (₦3,000,000/month).",
			Features: []string{
				"Web & mobile app development",
				"Custom software solutions",
				"System integration & API development",
				"Technical support & maintenance",
			},
			IconClass: "fa-code",
			Packages: []models.Package{
				{
					ID:          models.PACKAGE_BASIC,
					Name:        "Basic",
					Price:       800000,
					Description: "Website development",
					Features: []string{
						"Custom website development",
						"Basic CMS implementation",
						"Responsive design",
						"Basic SEO optimization",
						"Website maintenance",
					},
				},
				{
					ID:          models.PACKAGE_STANDARD,
					Name:        "Standard",
					Price:       1500000,
					Description: "App development & API integration",
					Features: []string{
						"Custom web & mobile application development",
						"API integration",
						"Database design and implementation",
						"User authentication systems",
						"Third-party service integration",
						"Technical support",
					},
				},
				{
					ID:          models.PACKAGE_PREMIUM,
					Name:        "Premium",
					Price:       3000000,
					Description: "Full-stack software solutions",
					Features: []string{
						"Enterprise-grade application development",
						"Complex system integration",
						"Advanced mobile applications",
						"DevOps setup and implementation",
						"Dedicated development team",
						"Continuous support and maintenance",
						"Performance optimization",
					},
				},
			},
			ServiceDetails: []models.ServiceDetail{
				{
					Title: "Web & Mobile Development",
					Items: []string{
						"Responsive website development",
						"Progressive web applications (PWAs)",
						"Native and cross-platform mobile apps",
						"E-commerce solutions and online stores",
						"Content management systems",
					},
				},
				{
					Title: "Custom Software Solutions",
					Items: []string{
						"Business process automation",
						"ERP and CRM implementation",
						"Data analytics and reporting tools",
						"Workflow management systems",
						"Legacy system modernization",
					},
				},
				{
					Title: "Technical Services",
					Items: []string{
						"API development and integration",
						"Database design and optimization",
						"Cloud migration and setup",
						"DevOps implementation",
						"Technical support and maintenance",
					},
				},
			},
			IndustryApplications: []models.IndustryApplication{
				{Icon: "fa-building", Name: "Startups & SMEs"},
				{Icon: "fa-hospital", Name: "Healthcare"},
				{Icon: "fa-university", Name: "Education"},
				{Icon: "fa-store", Name: "Retail & E-commerce"},
				{Icon: "fa-money-bill-wave", Name: "Financial Services"},
				{Icon: "fa-industry", Name: "Manufacturing"},
			},
		},
		{
			ID:               "executive-virtual-assistance",
			Title:            "Executive Virtual Assistance",
			ShortDescription: "Professional administrative support for executives and business owners.",
			LongDescription:  "Our executive virtual assistants are trained to handle administrative tasks efficiently, giving you more time to focus on growing your business.",
			Features: []string{
				"Calendar & email management",
				"Travel & appointment scheduling",
				"Document preparation",
				"Personal assistance",
			},
			IconClass: "fa-user-tie",
			Packages: []models.Package{
				{
					ID:          models.PACKAGE_BASIC,
					Name:        "Basic",
					Price:       100000,
					Description: "20 hours of virtual assistance",
					Features: []string{
						"Email management",
						"Calendar organization",
						"Basic document preparation",
					},
				},
				{
					ID:          models.PACKAGE_STANDARD,
					Name:        "Standard",
					Price:       150000,
					Description: "40 hours of virtual assistance",
					Features: []string{
						"All Basic package features",
						"Travel & appointment scheduling",
						"Advanced document preparation",
					},
				},
				{
					ID:          models.PACKAGE_PREMIUM,
					Name:        "Premium",
					Price:       200000,
					Description: "Unlimited support",
					Features: []string{
						"All Standard package features",
						"Priority assistance",
						"Personal assistant services",
						"Dedicated assistant",
					},
				},
			},
			ServiceDetails: []models.ServiceDetail{
				{
					Title: "Calendar & Email Management",
					Items: []string{
						"Organizing and managing your calendar",
						"Setting up and confirming appointments",
						"Managing email inbox and correspondence",
						"Email filtering and prioritization",
					},
				},
				{
					Title: "Document Preparation",
					Items: []string{
						"Creating and formatting documents",
						"Proofreading and editing",
						"Presentation creation",
						"Data entry and file organization",
					},
				},
			},
			IndustryApplications: []models.IndustryApplication{
				{Icon: "fa-building", Name: "Business Executives"},
				{Icon: "fa-user-tie", Name: "Entrepreneurs"},
				{Icon: "fa-briefcase-medical", Name: "Healthcare Professionals"},
				{Icon: "fa-gavel", Name: "Legal Professionals"},
				{Icon: "fa-chart-line", Name: "Real Estate Agents"},
				{Icon: "fa-chalkboard-teacher", Name: "Consultants"},
			},
		},
		{
			ID:               "social-media-management",
			Title:            "Social Media Management",
			ShortDescription: "Strategic social media services to grow your online presence.",
			LongDescription:  "Our social media experts will help you create engaging content, grow your audience, and drive meaningful engagement across all platforms.",
			Features: []string{
				"Content creation (graphics, captions, videos)",
				"Account growth strategies",
				"Ad management (Facebook, Instagram, LinkedIn)",
				"Analytics & reporting",
			},
			IconClass: "fa-hashtag",
			Packages: []models.Package{
				{
					ID:          models.PACKAGE_BASIC,
					Name:        "Basic",
					Price:       150000,
					Description: "1 platform, 3 posts/week",
					Features: []string{
						"Content creation for one platform",
						"Basic engagement management",
						"Monthly performance report",
					},
				},
				{
					ID:          models.PACKAGE_STANDARD,
					Name:        "Standard",
					Price:       250000,
					Description: "2 platforms, 5 posts/week, ads management",
					Features: []string{
						"Content creation for two platforms",
						"Daily engagement management",
						"Ad campaign creation and management",
						"Bi-weekly performance reports",
					},
				},
				{
					ID:          models.PACKAGE_PREMIUM,
					Name:        "Premium",
					Price:       400000,
					Description: "All platforms, daily posting, full analytics",
					Features: []string{
						"Content creation for all platforms",
						"Advanced growth strategies",
						"Comprehensive ad campaign management",
						"Competitor analysis",
						"Weekly performance reports with recommendations",
					},
				},
			},
		},
		{
			ID:               "customer-support",
			Title:            "Customer Support & Sales Assistance",
			ShortDescription: "Professional customer service and sales support for your business.",
			LongDescription:  "Our customer support and sales team can handle inquiries, complaints, lead qualification, and CRM management to ensure your customers receive excellent service.",
			Features: []string{
				"Live chat and email support",
				"Handling inquiries and complaints",
				"Lead qualification and cold outreach",
				"CRM management (HubSpot, Salesforce)",
			},
			IconClass: "fa-headset",
			Packages: []models.Package{
				{
					ID:          models.PACKAGE_BASIC,
					Name:        "Basic",
					Price:       125000,
					Description: "20 hours of support",
					Features: []string{
						"Email support",
						"Basic inquiry handling",
						"Simple CRM updates",
					},
				},
				{
					ID:          models.PACKAGE_STANDARD,
					Name:        "Standard",
					Price:       200000,
					Description: "40 hours of support",
					Features: []string{
						"Email and live chat support",
						"Comprehensive inquiry and complaint handling",
						"Basic lead qualification",
						"CRM management",
					},
				},
				{
					ID:          models.PACKAGE_PREMIUM,
					Name:        "Premium",
					Price:       300000,
					Description: "Unlimited support",
					Features: []string{
						"24/7 email and live chat support",
						"Complete customer service management",
						"Advanced lead qualification and outreach",
						"Comprehensive CRM management",
						"Monthly customer service reports",
					},
				},
			},
		},
		{
			ID:               "marketing-lead-generation",
			Title:            "Marketing & Lead Generation",
			ShortDescription: "Strategic marketing solutions to attract and convert leads.",
			LongDescription:  "Our marketing experts will create and implement strategies to generate high-quality leads and increase your conversion rates through various digital channels.",
			Features: []string{
				"Email marketing & automation",
				"SEO optimization",
				"Google & Facebook Ads",
				"Market research & competitor analysis",
			},
			IconClass: "fa-bullhorn",
			Packages: []models.Package{
				{
					ID:          models.PACKAGE_BASIC,
					Name:        "Basic",
					Price:       300000,
					Description: "SEO & email marketing",
					Features: []string{
						"Basic SEO optimization",
						"Email marketing campaign setup",
						"Simple lead capture systems",
					},
				},
				{
					ID:          models.PACKAGE_STANDARD,
					Name:        "Standard",
					Price:       500000,
					Description: "SEO, ads, and analytics",
					Features: []string{
						"Comprehensive SEO strategy",
						"Google and Facebook ad campaigns",
						"Email marketing automation",
						"Performance analytics and reporting",
					},
				},
				{
					ID:          models.PACKAGE_PREMIUM,
					Name:        "Premium",
					Price:       800000,
					Description: "Full marketing strategy & execution",
					Features: []string{
						"Complete digital marketing strategy",
						"Advanced SEO and content optimization",
						"Multi-channel ad campaigns",
						"Lead nurturing and conversion strategies",
						"Competitor analysis and market research",
						"Comprehensive analytics and strategy refinement",
					},
				},
			},
		},
		{
			ID:               "finance-bookkeeping",
			Title:            "Finance & Bookkeeping",
			ShortDescription: "Professional financial management and bookkeeping services.",
			LongDescription:  "Our finance experts provide bookkeeping, invoicing, payroll processing, and cash flow management to keep your finances organized and compliant.",
			Features: []string{
				"Bookkeeping & invoicing",
				"Payroll processing",
				"Expense tracking & cash flow management",
			},
			IconClass: "fa-calculator",
			Packages: []models.Package{
				{
					ID:          models.PACKAGE_BASIC,
					Name:        "Basic",
					Price:       150000,
					Description: "Bookkeeping only",
					Features: []string{
						"Monthly bookkeeping",
						"Invoice management",
						"Basic financial reports",
					},
				},
				{
					ID:          models.PACKAGE_STANDARD,
					Name:        "Standard",
					Price:       250000,
					Description: "Payroll & cash flow tracking",
					Features: []string{
						"Comprehensive bookkeeping",
						"Payroll processing",
						"Expense tracking",
						"Cash flow management",
						"Quarterly financial reports",
					},
				},
				{
					ID:          models.PACKAGE_PREMIUM,
					Name:        "Premium",
					Price:       400000,
					Description: "Full accounting service",
					Features: []string{
						"Complete financial management",
						"Payroll and tax calculations",
						"Financial forecasting",
						"Budget planning and management",
						"Monthly financial analysis and recommendations",
					},
				},
			},
		},
		{
			ID:               "ecommerce-assistance",
			Title:            "E-commerce Virtual Assistance",
			ShortDescription: "Comprehensive support for online stores and e-commerce businesses.",
			LongDescription:  "Our e-commerce specialists can help manage your online store, optimize product listings, handle inventory, and provide excellent customer service for your online business.",
			Features: []string{
				"Product listing & optimization",
				"Order fulfillment & inventory management",
				"Customer service & refunds handling",
			},
			IconClass: "fa-shopping-cart",
			Packages: []models.Package{
				{
					ID:          models.PACKAGE_BASIC,
					Name:        "Basic",
					Price:       200000,
					Description: "Product listing & management",
					Features: []string{
						"Product listing creation",
						"Basic inventory management",
						"Simple product optimization",
					},
				},
				{
					ID:          models.PACKAGE_STANDARD,
					Name:        "Standard",
					Price:       350000,
					Description: "Customer service & inventory",
					Features: []string{
						"Comprehensive product listing and optimization",
						"Order fulfillment management",
						"Inventory tracking and management",
						"Customer service for inquiries and issues",
					},
				},
				{
					ID:          models.PACKAGE_PREMIUM,
					Name:        "Premium",
					Price:       500000,
					Description: "Full e-commerce assistance",
					Features: []string{
						"Complete e-commerce store management",
						"Advanced product optimization",
						"Full inventory and supply chain management",
						"Customer service and refund handling",
						"Sales analysis and improvement strategies",
					},
				},
			},
		},
	}
}
