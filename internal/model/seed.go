package model

// Seed returns the sample resume a session starts from.
func Seed() Resume {
	return Resume{
		PersonalInfo: PersonalInfo{
			Name:     "John Doe",
			Title:    "Senior Software Engineer",
			Email:    "john.doe@email.com",
			Phone:    "+1 (555) 123-4567",
			Location: "San Francisco, CA",
			Website:  "johndoe.dev",
		},
		Summary: "Experienced software engineer with 8+ years of expertise in full-stack development, cloud architecture, and team leadership. Passionate about building scalable solutions and mentoring junior developers.",
		Experience: []ExperienceEntry{
			{
				ID:          "1",
				Company:     "Tech Solutions Inc.",
				Position:    "Senior Software Engineer",
				Duration:    "2020 - Present",
				Description: "Lead development of microservices architecture serving 1M+ users. Designed and implemented CI/CD pipelines reducing deployment time by 60%. Mentored 5 junior developers and conducted technical interviews.",
			},
			{
				ID:          "2",
				Company:     "StartupXYZ",
				Position:    "Full Stack Developer",
				Duration:    "2018 - 2020",
				Description: "Built responsive web applications using React, Node.js, and MongoDB. Collaborated with design team to create intuitive user interfaces. Implemented real-time features using WebSocket technology.",
			},
		},
		Education: []EducationEntry{
			{
				ID:          "1",
				Institution: "University of California, Berkeley",
				Degree:      "Bachelor of Science in Computer Science",
				Year:        "2018",
			},
		},
		Skills: []string{
			"JavaScript",
			"TypeScript",
			"React",
			"Node.js",
			"Python",
			"AWS",
			"Docker",
			"PostgreSQL",
			"Git",
			"Agile/Scrum",
		},
	}
}
