package content

var (
	HeroBadge = `Senior Developer with 6+ Years Experience`

	HeroHeadline = []string{"Crafting Digital", "Experiences with Code"}

	HeroIntro = `I'm a senior developer passionate about creating elegant solutions to complex problems. 
	With over 6 years of experience, I specialize in building high-performance applications.`

	AboutSubtitle = `Versatile Backend Developer and DevOps Engineer with expertise in scalable solutions and cloud technologies.`

	AboutMe = []string{
		`I'm a specialized backend developer and DevOps engineer with more than 6 years of experience in developing 
	and deploying scalable web applications and cloud-native solutions. My expertise includes Test-Driven Development 
	for quality, maintainable software, Golang, Python, Kubernetes, Docker, cloud platforms, and CI/CD pipelines.`,
		`I have a proven track record in platform engineering, system optimization, and infrastructure automation. 
	My skills extend to collaborating with cross-functional teams to advance innovative solutions and enhance 
	platform security, reliability, and cost efficiency.`,
	}

	ExperienceSubtitle = `Over 6 years of professional experience specializing in backend development, DevOps, and cloud-native solutions.`

	ProjectsSubtitle = `A selection of my recent work showcasing my technical expertise in backend development, DevOps, and cloud technologies.`

	SkillsSubtitle = `A comprehensive overview of my technical expertise across various domains and technologies.`

	ContactSubtitle = `Have a project in mind or just want to chat? Feel free to reach out and I'll get back to you soon.`

	ContactPitch = `I'm currently available for freelance work and full-time opportunities. If you have a project 
	that needs extra attention or a team that needs a skilled developer, let's talk about how I can help.`

	FooterTagline = `A senior developer with 6+ years of experience building elegant solutions to complex problems.`
)
