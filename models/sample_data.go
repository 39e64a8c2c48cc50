package models

import "time"

// Fallback collections served by the list endpoints when the backing store
// is unreachable or empty, so the public site always renders real-looking
// content. Treat these as immutable: they are read concurrently without
// synchronization.

var sampleCreatedAt = time.Date(2024, time.January, 15, 9, 0, 0, 0, time.UTC)

var SampleProjects = []Project{
	{
		ID:          "1",
		Title:       "E-Commerce Platform",
		Description: "A full-stack e-commerce solution with cart, checkout, and payment integration.",
		TechStack:   []string{"React", "Node.js", "MongoDB", "Stripe"},
		GithubLink:  "https://github.com",
		LiveLink:    "https://demo.com",
		Featured:    true,
		CreatedAt:   sampleCreatedAt,
	},
	{
		ID:          "2",
		Title:       "Portfolio Website",
		Description: "Modern portfolio with animations, dark mode, and CMS integration.",
		TechStack:   []string{"Next.js", "TypeScript", "Tailwind CSS"},
		GithubLink:  "https://github.com",
		LiveLink:    "https://demo.com",
		Featured:    true,
		CreatedAt:   sampleCreatedAt,
	},
	{
		ID:          "3",
		Title:       "Task Management App",
		Description: "Collaborative task manager with real-time updates and team features.",
		TechStack:   []string{"React", "Firebase", "Redux"},
		GithubLink:  "https://github.com",
		LiveLink:    "https://demo.com",
		Featured:    true,
		CreatedAt:   sampleCreatedAt,
	},
}

var SampleSkills = []Skill{
	{ID: "1", Name: "React", Icon: "FaReact", Category: "Frontend", Level: LevelAdvanced, Visible: true},
	{ID: "2", Name: "Next.js", Icon: "SiNextdotjs", Category: "Frontend", Level: LevelAdvanced, Visible: true},
	{ID: "3", Name: "TypeScript", Icon: "SiTypescript", Category: "Language", Level: LevelAdvanced, Visible: true},
	{ID: "4", Name: "Node.js", Icon: "FaNodeJs", Category: "Backend", Level: LevelAdvanced, Visible: true},
	{ID: "5", Name: "MongoDB", Icon: "SiMongodb", Category: "Database", Level: LevelIntermediate, Visible: true},
	{ID: "6", Name: "PostgreSQL", Icon: "SiPostgresql", Category: "Database", Level: LevelIntermediate, Visible: true},
	{ID: "7", Name: "Tailwind CSS", Icon: "SiTailwindcss", Category: "Frontend", Level: LevelAdvanced, Visible: true},
	{ID: "8", Name: "Docker", Icon: "SiDocker", Category: "DevOps", Level: LevelBeginner, Visible: true},
	{ID: "9", Name: "Git", Icon: "SiGit", Category: "Tool", Level: LevelAdvanced, Visible: true},
	{ID: "10", Name: "GraphQL", Icon: "SiGraphql", Category: "API", Level: LevelIntermediate, Visible: true},
	{ID: "11", Name: "Prisma", Icon: "SiPrisma", Category: "ORM", Level: LevelIntermediate, Visible: true},
	{ID: "12", Name: "Figma", Icon: "SiFigma", Category: "Design", Level: LevelBeginner, Visible: true},
}

var SampleBlogPosts = []BlogPost{
	{
		ID:              "1",
		Title:           "Getting Started with Next.js 14",
		Slug:            "getting-started-nextjs-14",
		MetaDescription: "Learn how to build modern web applications with Next.js 14 and its powerful features.",
		Content:         "Full content here...",
		Published:       true,
		CreatedAt:       sampleCreatedAt,
	},
	{
		ID:              "2",
		Title:           "Mastering TypeScript",
		Slug:            "mastering-typescript",
		MetaDescription: "A comprehensive guide to TypeScript for building type-safe applications.",
		Content:         "Full content here...",
		Published:       true,
		CreatedAt:       sampleCreatedAt,
	},
	{
		ID:              "3",
		Title:           "React Best Practices",
		Slug:            "react-best-practices",
		MetaDescription: "Essential tips and patterns for writing clean, maintainable React code.",
		Content:         "Full content here...",
		Published:       true,
		CreatedAt:       sampleCreatedAt,
	},
}
