package pageconfig

// Default returns a fully populated document used to seed new pages and to
// fill gaps in partial documents. Callers must clone before mutating.
func Default() PageConfig {
	return PageConfig{
		Colors: Colors{
			Primary:    "#0f172a",
			Secondary:  "#3b82f6",
			Background: "#ffffff",
			Text:       "#1e293b",
		},
		Hero: HeroSection{
			Enabled:         true,
			Badge:           "Version 2.0: generative AI has joined your crew",
			Headline:        "Build Landing Pages That Sell On Their Own",
			Subheadline:     "Helm Pages is the fastest way to launch, convert, and take command of your revenue. No expensive designers, no code.",
			HeadlineSize:    60,
			SubheadlineSize: 20,
			CTAButton:       "Start Now",
			CTALink:         "#pricing",
			DemoButton:      "See the AI in Action",
			DemoLink:        "#features",
		},
		About: AboutSection{
			Enabled:     true,
			Title:       "Take the Helm of Your Digital Business",
			Description: "You no longer need slow agencies or tools that demand a PhD to operate. Helm Pages was built for a single job: turning visitors into net profit.",
			Image:       "https://picsum.photos/600/600?random=tech",
			Checklist: []string{
				"Generative AI writes your copy and assembles the layout in seconds",
				"High-speed hosting included, so your page loads instantly",
				"A secure admin dashboard for managing multiple projects",
			},
		},
		TargetAudience: TargetAudienceSection{
			Enabled:  true,
			Title:    "Who needs Helm Pages?",
			Subtitle: "Built for people with no time to waste on technical setup.",
			Items: []AudienceItem{
				{
					Title:       "Course Creators",
					Description: "Launch courses and mentorships in record time. Validate new offers every week with zero development cost.",
					Active:      true,
				},
				{
					Title:       "Marketing Agencies",
					Description: "Deliver landing pages to clients in minutes, not days. Grow your margin by letting the AI scale production.",
					Active:      true,
				},
				{
					Title:       "E-commerce Sellers",
					Description: "Spin up unique product pages for your winning offers and step out of the marketplace price war.",
					Active:      true,
				},
			},
		},
		Features: FeaturesSection{
			Enabled: true,
			Badge:   "Cutting-edge Tooling",
			Title:   "The Complete Arsenal for Your Sales",
			Items: []FeatureItem{
				{
					Title:       "Instant AI Generation",
					Description: "Describe your product and the AI writes the copy, picks the benefits, and structures the whole page for you.",
				},
				{
					Title:       "Intuitive Visual Editor",
					Description: "Don't like something? Click and edit. Change colors, copy, and images in real time from the side panel.",
				},
				{
					Title:       "Conversion First, Mobile First",
					Description: "Every template is tested relentlessly so your page looks perfect on any phone.",
				},
			},
		},
		Curriculum: CurriculumSection{
			Enabled:     true,
			Title:       "Included Training: Digital Acceleration",
			Description: "A subscription is more than the tool. You also get a complete training on structuring your offer.",
			ButtonText:  "See the Full Syllabus",
			Items: []ModuleItem{
				{
					Title:    "Phase 1: Express Setup",
					Duration: "1h 00m",
					Lessons:  []string{"Platform tour", "Connecting your domain", "Pixel integration"},
				},
				{
					Title:    "Phase 2: Prompt Engineering",
					Duration: "2h 30m",
					Lessons:  []string{"Asking the AI for perfect copy", "Refining personas", "Generating bonuses automatically"},
				},
				{
					Title:    "Phase 3: Design & Persuasion",
					Duration: "3h 15m",
					Lessons:  []string{"Color psychology", "Choosing images that sell", "Visual hierarchy"},
				},
				{
					Title:    "Phase 4: Traffic for Landing Pages",
					Duration: "4h 00m",
					Lessons:  []string{"Search ads for LPs", "Social ads essentials", "Reading dashboard metrics"},
				},
			},
		},
		Bonus: BonusSection{
			Enabled:  true,
			Title:    "Launch Bonuses",
			Subtitle: "Claim these exclusive extras when you subscribe today.",
			Items: []BonusItem{
				{
					Title:       "Premium Image Pack",
					Description: "A royalty-free library of high-conversion imagery for all your projects.",
					Value:       "Sold for $59",
				},
				{
					Title:       "50 Secret Prompts",
					Description: "Our personal list of commands that make the AI produce irresistible offers in any niche.",
					Value:       "Sold for $39",
				},
				{
					Title:       "Page Review Session",
					Description: "A recorded teardown of your first page by our conversion specialists.",
					Value:       "Priceless",
				},
			},
		},
		Testimonials: TestimonialsSection{
			Enabled:  true,
			Title:    "What the Crew Says",
			Subtitle: "Real results from people already running Helm Pages.",
			Items: []TestimonialItem{
				{
					Name:  "Carlos Mendes",
					Role:  "Course Creator",
					Text:  "A page used to take me three days on my old CMS. With Helm I shipped a capture page in fifteen minutes. The AI is scary good.",
					Image: "https://picsum.photos/100/100?random=user1",
				},
				{
					Name:  "Juliana Paiva",
					Role:  "Agency Owner",
					Text:  "I let my freelance designer go and my margin went up. Clients are stunned by how fast we deliver.",
					Image: "https://picsum.photos/100/100?random=user2",
				},
				{
					Name:  "Roberto K.",
					Role:  "E-commerce",
					Text:  "Simplicity is the strong point. Everything is where it should be, and support is a ten. I recommend it to everyone.",
					Image: "https://picsum.photos/100/100?random=user3",
				},
			},
		},
		Pricing: PricingSection{
			Enabled:    true,
			Title:      "Come Aboard",
			Subtitle:   "Pick the right plan and start selling today.",
			Price:      "From $29/month",
			ButtonText: "Subscribe Now",
			ButtonLink: "#checkout",
			Guarantee:  "Zero risk: 7-day free trial.",
		},
	}
}
