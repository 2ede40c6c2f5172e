// Package content holds the fixed records rendered on the portfolio page.
// Nothing here is mutated at runtime.
package content

import (
	"github.com/pkg/errors"
)

// ExperienceItem is one entry of the work history timeline.
type ExperienceItem struct {
	ID           string
	Role         string
	Company      string
	Location     string
	Period       string
	Description  []string
	Technologies []string
}

// ProjectStatus is the optional badge shown on a project card.
type ProjectStatus string

const (
	StatusNone       ProjectStatus = ""
	StatusCompleted  ProjectStatus = "Completed"
	StatusInProgress ProjectStatus = "In Progress"
)

// VisibleTechnologies is how many technology tags a project card shows.
const VisibleTechnologies = 3

// Project is a featured project card.
type Project struct {
	ID           string
	Title        string
	Description  string
	Image        string
	Technologies []string
	Link         string
	Source       string
	Status       ProjectStatus
}

// ShownTechnologies returns the tags displayed on the card.
func (p Project) ShownTechnologies() []string {
	if len(p.Technologies) <= VisibleTechnologies {
		return p.Technologies
	}
	return p.Technologies[:VisibleTechnologies]
}

// HiddenTechnologies returns how many tags are folded into "+N more".
func (p Project) HiddenTechnologies() int {
	if len(p.Technologies) <= VisibleTechnologies {
		return 0
	}
	return len(p.Technologies) - VisibleTechnologies
}

// Skill is a named proficiency level in [0,100].
type Skill struct {
	Name  string
	Level int
}

// SkillCategory groups skills under one tab.
type SkillCategory struct {
	ID     string
	Name   string
	Skills []Skill
}

// Link is an anchor or outbound URL with a label.
type Link struct {
	Name string
	Href string
	Icon string
}

// Publication is an article listed under the projects.
type Publication struct {
	Title string
	Venue string
}

// Education is the education card of the about section.
type Education struct {
	Degree      string
	Stream      string
	Institution string
	Completed   string
}

// Prose is the long-form copy of the page.
type Prose struct {
	HeroBadge          string
	HeroHeadline       []string
	HeroIntro          string
	AboutSubtitle      string
	AboutMe            []string
	ExperienceSubtitle string
	ProjectsSubtitle   string
	SkillsSubtitle     string
	ContactSubtitle    string
	ContactPitch       string
	FooterTagline      string
}

// Site is everything the page renders.
type Site struct {
	Text             Prose
	Owner            string
	Email            string
	Location         string
	GitHub           string
	NavLinks         []Link
	Socials          []Link
	Accomplishments  []string
	Certifications   []string
	Education        Education
	Experience       []ExperienceItem
	Projects         []Project
	Publications     []Publication
	SkillCategories  []SkillCategory
	AdditionalSkills []string
	Services         []string
}

// ExperienceIDs returns the experience ids in display order.
func (s Site) ExperienceIDs() []string {
	ids := make([]string, 0, len(s.Experience))
	for _, item := range s.Experience {
		ids = append(ids, item.ID)
	}
	return ids
}

// SkillCategoryIDs returns the category ids in display order.
func (s Site) SkillCategoryIDs() []string {
	ids := make([]string, 0, len(s.SkillCategories))
	for _, c := range s.SkillCategories {
		ids = append(ids, c.ID)
	}
	return ids
}

// Category looks up a skill category by id.
func (s Site) Category(id string) (SkillCategory, bool) {
	for _, c := range s.SkillCategories {
		if c.ID == id {
			return c, true
		}
	}
	return SkillCategory{}, false
}

// Validate checks the invariants the components rely on: non-empty lists,
// unique ids and skill levels in [0,100].
func (s Site) Validate() error {
	if len(s.Experience) == 0 {
		return errors.New("no experience entries")
	}
	if len(s.SkillCategories) == 0 {
		return errors.New("no skill categories")
	}
	if err := unique("experience", s.ExperienceIDs()); err != nil {
		return err
	}
	if err := unique("skill category", s.SkillCategoryIDs()); err != nil {
		return err
	}
	projectIDs := make([]string, 0, len(s.Projects))
	for _, p := range s.Projects {
		projectIDs = append(projectIDs, p.ID)
	}
	if err := unique("project", projectIDs); err != nil {
		return err
	}
	for _, c := range s.SkillCategories {
		if len(c.Skills) == 0 {
			return errors.Errorf("skill category %q has no skills", c.ID)
		}
		for _, skill := range c.Skills {
			if skill.Level < 0 || skill.Level > 100 {
				return errors.Errorf("skill %q level %d outside [0,100]", skill.Name, skill.Level)
			}
		}
	}
	return nil
}

func unique(kind string, ids []string) error {
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if id == "" {
			return errors.Errorf("empty %s id", kind)
		}
		if seen[id] {
			return errors.Errorf("duplicate %s id %q", kind, id)
		}
		seen[id] = true
	}
	return nil
}

var navLinks = []Link{
	{Name: "About", Href: "#about"},
	{Name: "Experience", Href: "#experience"},
	{Name: "Projects", Href: "#projects"},
	{Name: "Skills", Href: "#skills"},
	{Name: "Contact", Href: "#contact"},
}

var socials = []Link{
	{Name: "GitHub", Href: "https://github.com/leodahal4", Icon: "github"},
	{Name: "LinkedIn", Href: "https://linkedin.com/in/leodahal", Icon: "linkedin"},
	{Name: "Twitter", Href: "https://twitter.com/leodahal", Icon: "twitter"},
}

var experience = []ExperienceItem{
	{
		ID:       "exp1",
		Role:     "Senior Software Engineer",
		Company:  "BerryBytes",
		Location: "Kathmandu, Nepal",
		Period:   "06/2023 - Present",
		Description: []string{
			"Leading the design and development of Kubernetes-based Platform-as-a-Service (PaaS), optimizing cloud-native app deployment",
			"Designing high-performance, scalable web applications, focusing on system optimization and performance improvements",
			"Conducting comprehensive code reviews, collaborating with QA teams to ensure quality, and participating in product releases",
			"Key Projects: 01Cloud (PaaS for seamless deployment of cloud-native applications) and ComputeSphere (multi-region cloud hosting platform)",
		},
		Technologies: []string{"Golang", "Kubernetes", "Docker", "AWS", "GCP", "CI/CD", "Terraform"},
	},
	{
		ID:       "exp2",
		Role:     "Developer & Sys. Admin",
		Company:  "Ayata Incorporation",
		Location: "Kathmandu, Nepal",
		Period:   "06/2020 - 06/2023",
		Description: []string{
			"Led initiatives using Java, Golang, and Python for scalable application development",
			"Optimized database queries, improving performance and efficiency across multiple deployments",
			"Participated in Agile processes, code reviews, and deployments for multiple projects",
			"Key Project: Avyaas - Developed a scalable backend for an e-learning platform supporting 100K+ users",
		},
		Technologies: []string{"Java", "Golang", "Python", "PostgreSQL", "REST APIs", "Docker"},
	},
	{
		ID:       "exp3",
		Role:     "Backend Developer",
		Company:  "Omniblue Technology",
		Location: "Kathmandu, Nepal",
		Period:   "02/2019 - 06/2020",
		Description: []string{
			"Engineered web applications with scalable REST APIs and optimized backend services",
			"Worked on integrating backend functionalities using Java, ensuring system reliability and performance",
		},
		Technologies: []string{"Java", "REST APIs", "Backend Services"},
	},
	{
		ID:       "exp4",
		Role:     "Frontend Developer (Internship)",
		Company:  "UniTech Solution",
		Location: "Damak, Nepal",
		Period:   "02/2018 - 11/2018",
		Description: []string{
			"Developed responsive user interfaces using HTML, CSS, and JavaScript",
			"Integrated backend services via REST APIs",
		},
		Technologies: []string{"HTML", "CSS", "JavaScript", "REST APIs"},
	},
}

var projects = []Project{
	{
		ID:           "project1",
		Title:        "Pre-Commit Automation Tools",
		Description:  "Open source Git hooks toolkit enforcing coding standards, security checks, and pre-commit validation for development teams.",
		Image:        "https://images.unsplash.com/photo-1555066931-4365d14bab8c?ixlib=rb-1.2.1&auto=format&fit=crop&w=1500&q=80",
		Technologies: []string{"Golang", "Git", "CI/CD", "DevOps", "Code Quality"},
		Link:         "#",
		Source:       "https://github.com/leodahal4/precommit-util",
		Status:       StatusCompleted,
	},
	{
		ID:           "project2",
		Title:        "ClusterManager - Kubernetes Virtual Cluster Manager",
		Description:  "Open source Kubernetes operator for multi-region cluster management and resource governance, simplifying multi-tenant environments.",
		Image:        "https://images.unsplash.com/photo-1517694712202-14dd9538aa97?ixlib=rb-1.2.1&auto=format&fit=crop&w=1500&q=80",
		Technologies: []string{"Kubernetes", "Golang", "Operators", "Cloud-Native", "Multi-tenancy"},
		Link:         "#",
		Source:       "https://github.com/leodahal4/ClusterManager",
		Status:       StatusCompleted,
	},
	{
		ID:           "project3",
		Title:        "Developer Toolkit",
		Description:  "CLI-based toolkit for managing Kubernetes deployments and microservices with streamlined workflows for developers.",
		Image:        "https://images.unsplash.com/photo-1607799279861-4dd421887fb3?ixlib=rb-1.2.1&auto=format&fit=crop&w=1500&q=80",
		Technologies: []string{"Golang", "CLI", "Kubernetes", "DevOps", "Developer Tools"},
		Link:         "#",
		Source:       "https://github.com/leodahal4",
		Status:       StatusInProgress,
	},
	{
		ID:           "project4",
		Title:        "Migrate Tracker - GORM Change Tracker",
		Description:  "GORM plugin for tracking schema changes during auto-migrations, providing developers with better visibility and control.",
		Image:        "https://images.unsplash.com/photo-1555949963-ff9fe0c870eb?ixlib=rb-1.2.1&auto=format&fit=crop&w=1500&q=80",
		Technologies: []string{"Golang", "GORM", "PostgreSQL", "Database Migrations", "ORM"},
		Link:         "#",
		Source:       "https://github.com/leodahal4",
		Status:       StatusInProgress,
	},
}

var publications = []Publication{
	{Title: "Building a GRPC Micro-Service in Go: A Comprehensive Guide", Venue: "Medium (Feb 2023), 6.8K+ views"},
	{Title: "Handle Errors In Go Like A Pro.", Venue: "Medium (May 2023), 13.9K+ views"},
	{Title: "Between Returning and Interfaces in Go", Venue: "Medium (July 2023), 7.8K+ views"},
	{Title: "Package Organization in Go", Venue: "Medium (Sept 2023), 2.6K+ views"},
}

var skillCategories = []SkillCategory{
	{
		ID:   "frontend",
		Name: "Frontend",
		Skills: []Skill{
			{Name: "React", Level: 95},
			{Name: "JavaScript", Level: 95},
			{Name: "TypeScript", Level: 90},
			{Name: "HTML/CSS", Level: 90},
			{Name: "Vue.js", Level: 80},
			{Name: "Angular", Level: 75},
		},
	},
	{
		ID:   "backend",
		Name: "Backend",
		Skills: []Skill{
			{Name: "Node.js", Level: 90},
			{Name: "Express", Level: 90},
			{Name: "Python", Level: 85},
			{Name: "Django", Level: 80},
			{Name: "Java", Level: 75},
			{Name: "PHP", Level: 70},
		},
	},
	{
		ID:   "database",
		Name: "Database & DevOps",
		Skills: []Skill{
			{Name: "MongoDB", Level: 90},
			{Name: "PostgreSQL", Level: 85},
			{Name: "MySQL", Level: 85},
			{Name: "Docker", Level: 80},
			{Name: "AWS", Level: 80},
			{Name: "CI/CD", Level: 75},
		},
	},
}

// Default returns the portfolio content.
func Default() Site {
	return Site{
		Text: Prose{
			HeroBadge:          HeroBadge,
			HeroHeadline:       HeroHeadline,
			HeroIntro:          HeroIntro,
			AboutSubtitle:      AboutSubtitle,
			AboutMe:            AboutMe,
			ExperienceSubtitle: ExperienceSubtitle,
			ProjectsSubtitle:   ProjectsSubtitle,
			SkillsSubtitle:     SkillsSubtitle,
			ContactSubtitle:    ContactSubtitle,
			ContactPitch:       ContactPitch,
			FooterTagline:      FooterTagline,
		},
		Owner:    "Leo Dahal",
		Email:    "contact@leodahal.com",
		Location: "Kathmandu, Nepal",
		GitHub:   "https://github.com/leodahal4",
		NavLinks: navLinks,
		Socials:  socials,
		Accomplishments: []string{
			"Employee of the Year at Ayata Incorporation – 2021",
			"Published author on Medium with 30K+ total article views",
		},
		Certifications: []string{
			"Crash Course on Python",
			"Using Python to Interact with the Operating System",
			"Fundamental Linux Administration",
			"Advanced Python Scripting for Cybersecurity",
		},
		Education: Education{
			Degree:      "Diploma in Computer Engineering",
			Stream:      "Technical and Vocational Stream",
			Institution: "Saraswati Secondary School – Damak, Mechi, Nepal",
			Completed:   "Completed in 2019",
		},
		Experience:      experience,
		Projects:        projects,
		Publications:    publications,
		SkillCategories: skillCategories,
		AdditionalSkills: []string{
			"Git", "Redux", "GraphQL", "REST API", "Webpack",
			"Jest", "Mocha", "SCSS", "TailwindCSS", "Firebase",
			"Netlify", "Vercel", "Redis", "Elasticsearch",
		},
		Services: []string{
			"Web Development",
			"Full Stack Development",
			"Frontend Architecture",
			"Backend Development",
			"Technical Consulting",
		},
	}
}
