package services

import "github.com/cybrige/platform/internal/models"

// DefaultCatalogue returns the course catalogue installed by Seed.
// A fresh slice is built on every call because CreateMany assigns IDs in place.
func DefaultCatalogue() []models.Course {
	return []models.Course{
		{
			Title:       "Ethical Hacking",
			Slug:        "ethical-hacking",
			Description: "Learn penetration testing, vulnerability assessment, and ethical hacking methodologies.",
			Duration:    "10 weeks",
			Level:       models.LevelIntermediate,
			IsActive:    true,
			Modules: []models.Module{
				{
					Title:       "Introduction to Ethical Hacking",
					Description: "Overview, legal aspects, and methodologies.",
					VideoURL:    "/media/ethical-hacking/module1.mp4",
					Order:       1,
				},
				{
					Title:       "Reconnaissance & Scanning",
					Description: "Information gathering and network mapping.",
					VideoURL:    "/media/ethical-hacking/module2.mp4",
					Order:       2,
				},
			},
		},
		{
			Title:       "SOC Analyst",
			Slug:        "soc-analyst",
			Description: "Train to become a Security Operations Center (SOC) analyst with hands-on labs.",
			Duration:    "8 weeks",
			Level:       models.LevelBeginner,
			IsActive:    true,
			Modules: []models.Module{
				{
					Title:       "SOC Fundamentals",
					Description: "SOC structure, tools, and responsibilities.",
					VideoURL:    "/media/soc-analyst/module1.mp4",
					Order:       1,
				},
			},
		},
		{
			Title:       "GRC (Governance, Risk & Compliance)",
			Slug:        "grc",
			Description: "Understand cybersecurity governance, risk management, and compliance frameworks.",
			Duration:    "6 weeks",
			Level:       models.LevelBeginner,
			IsActive:    true,
			Modules: []models.Module{
				{
					Title:       "Cybersecurity Governance",
					Description: "Policies, standards, and frameworks.",
					VideoURL:    "/media/grc/module1.mp4",
					Order:       1,
				},
			},
		},
		{
			Title:       "Blue Team / Red Team",
			Slug:        "blue-red-team",
			Description: "Dual perspective training for offensive and defensive security teams.",
			Duration:    "12 weeks",
			Level:       models.LevelAdvanced,
			IsActive:    true,
			Modules: []models.Module{
				{
					Title:       "Red Team Planning",
					Description: "Offensive simulations and campaign design.",
					VideoURL:    "/media/blue-red-team/module1.mp4",
					Order:       1,
				},
				{
					Title:       "Blue Team Defense",
					Description: "Detection engineering and incident response.",
					VideoURL:    "/media/blue-red-team/module2.mp4",
					Order:       2,
				},
			},
		},
	}
}
