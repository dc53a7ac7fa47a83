package roles

type roleDefinition struct {
	role     Role
	criteria string
	skills   []string
}

// roleDefinitions is the static configuration table behind the repository.
// Skill terms are ordered; matchers preserve this order in their output.
var roleDefinitions = []roleDefinition{
	{
		role: RoleSoftwareEngineer,
		criteria: `We are looking for an experienced Software Engineer with strong programming skills.
Required skills: Python, Java, JavaScript, React, Node.js, SQL, Git, Agile methodologies.
Experience with cloud platforms (AWS, Azure), containerization (Docker), and CI/CD pipelines preferred.
Strong problem-solving skills and ability to work in a collaborative team environment.
Bachelor's degree in Computer Science or related field with 3+ years of experience.`,
		skills: []string{
			"python", "java", "javascript", "react", "node.js", "sql", "git",
			"html", "css", "docker", "kubernetes", "aws", "azure", "mongodb",
			"postgresql", "rest api", "microservices", "agile", "scrum", "ci/cd",
		},
	},
	{
		role: RoleDataAnalyst,
		criteria: `We are seeking a skilled Data Analyst to join our analytics team.
Required skills: SQL, Python, R, Excel, Tableau, Power BI, statistical analysis.
Experience with data visualization, data mining, and business intelligence tools.
Knowledge of machine learning concepts and experience with pandas, numpy, matplotlib.
Strong analytical thinking and ability to derive insights from complex datasets.
Bachelor's degree in Statistics, Mathematics, or related field with 2+ years of experience.`,
		skills: []string{
			"python", "sql", "r", "excel", "tableau", "power bi", "pandas", "numpy",
			"matplotlib", "seaborn", "statistics", "analytics", "data visualization",
			"machine learning", "data mining", "business intelligence", "reporting",
			"dashboard", "etl", "database", "statistical analysis",
		},
	},
	{
		role: RoleFullstackDeveloper,
		criteria: `We are hiring a Full Stack Developer to build end-to-end web applications.
Required skills: JavaScript, React, Node.js, Python, HTML, CSS, MongoDB, PostgreSQL.
Experience with RESTful APIs, Git version control, Docker, and cloud deployment.
Knowledge of modern frameworks, responsive design, and agile development practices.
Bachelor's degree in Computer Science with 2+ years of full-stack development experience.`,
		skills: []string{
			"javascript", "react", "node.js", "python", "html", "css", "mongodb",
			"postgresql", "git", "docker", "rest api", "express", "vue", "angular",
			"bootstrap", "responsive design", "api", "database", "frontend", "backend",
		},
	},
	{
		role: RoleProductManager,
		criteria: `We are looking for a Product Manager to drive product strategy and development.
Required skills: Product roadmap planning, user research, market analysis, Agile/Scrum.
Experience with product analytics tools, A/B testing, and customer feedback analysis.
Strong communication skills and ability to work cross-functionally with engineering and design teams.
Knowledge of user experience principles and product lifecycle management.
MBA or Bachelor's degree with 4+ years of product management experience.`,
		skills: []string{
			"product management", "roadmap", "agile", "scrum", "user research",
			"market analysis", "a/b testing", "analytics", "stakeholder management",
			"product strategy", "user experience", "wireframing", "requirements",
			"project management", "leadership", "communication",
		},
	},
}
