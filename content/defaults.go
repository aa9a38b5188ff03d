package content

const placeholder = "/public/placeholder.svg"

// Default returns a fresh copy of the built-in tables.
func Default() *Content {
	return &Content{
		Profile: Profile{
			Name:       "Md Al Amin",
			Role:       "CSE Student & Future",
			Highlight:  "Innovator",
			Degree:     "Computer Science & Engineering",
			University: "Varendra University, Rajshahi",
			Heading:    "Passionate CSE Student",
			About: "I'm **Md Al Amin**, an aspiring web developer and computer science engineer. " +
				"Passionate about coding, AI and automation. Always learning, always building.",
			ResumeURL: "/public/resume.pdf",
			Footer:    "© 2024 Md Al Amin. Crafted with 💜 | Varendra University, Rajshahi",
		},
		Stats: []Stat{
			{Icon: "book-open", Label: "2nd Year", Value: "Current"},
			{Icon: "award", Label: "3.75/4.00", Value: "CGPA"},
			{Icon: "code", Label: "15+", Value: "Projects"},
			{Icon: "graduation-cap", Label: "5+", Value: "Certificates"},
		},
		Focus: []Focus{
			{Subject: "Data Structures & Algorithms", Progress: 85},
			{Subject: "Web Development", Progress: 90},
			{Subject: "Machine Learning", Progress: 70},
			{Subject: "Database Management", Progress: 80},
		},
		Certificates: []Certificate{
			{
				Title:  "Complete Web Development Bootcamp",
				Issuer: "Udemy",
				Date:   "2024",
				Image:  placeholder,
				Skills: []string{"HTML", "CSS", "JavaScript", "React", "Node.js"},
			},
			{
				Title:  "Machine Learning Specialization",
				Issuer: "Coursera - Stanford",
				Date:   "2024",
				Image:  placeholder,
				Skills: []string{"Python", "TensorFlow", "Scikit-learn", "Data Analysis"},
			},
			{
				Title:  "React - The Complete Guide",
				Issuer: "Udemy",
				Date:   "2023",
				Image:  placeholder,
				Skills: []string{"React", "Redux", "Next.js", "TypeScript"},
			},
			{
				Title:  "Python for Data Science",
				Issuer: "edX - MIT",
				Date:   "2023",
				Image:  placeholder,
				Skills: []string{"Python", "Pandas", "NumPy", "Matplotlib"},
			},
			{
				Title:  "AWS Cloud Practitioner",
				Issuer: "Amazon Web Services",
				Date:   "2024",
				Image:  placeholder,
				Skills: []string{"AWS", "Cloud Computing", "EC2", "S3"},
			},
		},
		Skills: []SkillCategory{
			{Category: "Frontend", Icon: "code", Color: "cyan", Skills: []string{"React", "Next.js", "TypeScript", "Tailwind CSS"}},
			{Category: "Backend", Icon: "database", Color: "purple", Skills: []string{"Node.js", "Python", "MongoDB", "PostgreSQL"}},
			{Category: "Tools", Icon: "cpu", Color: "green", Skills: []string{"Git", "VS Code", "Docker", "Linux"}},
			{Category: "Mobile", Icon: "globe", Color: "orange", Skills: []string{"React Native", "Flutter", "Firebase"}},
			{Category: "AI/ML", Icon: "brain", Color: "pink", Skills: []string{"TensorFlow", "Scikit-learn", "Pandas"}},
			{Category: "Learning", Icon: "zap", Color: "yellow", Skills: []string{"GraphQL", "AWS", "Kubernetes"}},
		},
		Projects: []Project{
			{
				Title:       "University Management System",
				Description: "Web application for managing university operations with student enrollment and grades.",
				Image:       placeholder,
				Tech:        []string{"React", "Node.js", "MongoDB"},
				Status:      "Completed",
			},
			{
				Title:       "AI Chatbot",
				Description: "Intelligent chatbot using NLP for answering student queries about university services.",
				Image:       placeholder,
				Tech:        []string{"Python", "TensorFlow", "Flask"},
				Status:      "In Progress",
			},
			{
				Title:       "Expense Tracker App",
				Description: "Mobile app for tracking expenses with data visualization and budget management.",
				Image:       placeholder,
				Tech:        []string{"React Native", "Firebase"},
				Status:      "Completed",
			},
			{
				Title:       "Algorithm Visualizer",
				Description: "Interactive web app visualizing sorting and searching algorithms for learning.",
				Image:       placeholder,
				Tech:        []string{"JavaScript", "HTML5 Canvas"},
				Status:      "Completed",
			},
			{
				Title:       "E-Commerce Platform",
				Description: "Full-stack e-commerce solution with authentication, cart, and payment integration.",
				Image:       placeholder,
				Tech:        []string{"Next.js", "PostgreSQL", "Stripe"},
				Status:      "In Progress",
			},
			{
				Title:       "Weather Prediction",
				Description: "ML model predicting weather patterns using historical data for accurate forecasts.",
				Image:       placeholder,
				Tech:        []string{"Python", "Scikit-learn"},
				Status:      "Completed",
			},
		},
		Contact: []ContactChannel{
			{Icon: "mail", Label: "Email", Value: "your.email@example.com", Href: "mailto:your.email@example.com"},
			{Icon: "phone", Label: "Phone", Value: "+880 1XXX-XXXXXX", Href: "tel:+8801xxxxxxxxx"},
			{Icon: "map-pin", Label: "Location", Value: "Rajshahi, Bangladesh"},
		},
		Social: []SocialLink{
			{Icon: "github", Href: "https://github.com/mdalaminab17"},
			{Icon: "linkedin", Href: "https://linkedin.com/in/mdalaminab17"},
			{Icon: "mail", Href: "mailto:your.email@example.com"},
		},
	}
}
