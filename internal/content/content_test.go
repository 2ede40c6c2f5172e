package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	site := Default()
	require.NoError(t, site.Validate())

	assert.Equal(t, []string{"exp1", "exp2", "exp3", "exp4"}, site.ExperienceIDs())
	assert.Equal(t, []string{"frontend", "backend", "database"}, site.SkillCategoryIDs())
	assert.Len(t, site.Projects, 4)
	assert.Len(t, site.NavLinks, 5)
}

func TestValidateRejectsLevelOutOfRange(t *testing.T) {
	site := Default()
	site.SkillCategories = []SkillCategory{{ID: "x", Name: "X", Skills: []Skill{{Name: "Go", Level: 101}}}}

	err := site.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "outside [0,100]")
}

func TestValidateRejectsDuplicateIDs(t *testing.T) {
	site := Default()
	site.Experience = append(site.Experience, site.Experience[0])

	err := site.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate experience id "exp1"`)
}

func TestValidateRejectsEmptyLists(t *testing.T) {
	site := Default()
	site.SkillCategories = nil
	assert.Error(t, site.Validate())

	site = Default()
	site.Experience = nil
	assert.Error(t, site.Validate())
}

func TestProjectTechnologies(t *testing.T) {
	p := Project{Technologies: []string{"Golang", "Git", "CI/CD", "DevOps", "Code Quality"}}
	assert.Equal(t, []string{"Golang", "Git", "CI/CD"}, p.ShownTechnologies())
	assert.Equal(t, 2, p.HiddenTechnologies())

	short := Project{Technologies: []string{"Go"}}
	assert.Equal(t, []string{"Go"}, short.ShownTechnologies())
	assert.Zero(t, short.HiddenTechnologies())
}

func TestCategoryLookup(t *testing.T) {
	site := Default()

	c, ok := site.Category("backend")
	require.True(t, ok)
	assert.Equal(t, "Backend", c.Name)
	assert.Equal(t, "Node.js", c.Skills[0].Name)

	_, ok = site.Category("mobile")
	assert.False(t, ok)
}

func TestDefaultCarriesProse(t *testing.T) {
	site := Default()
	assert.Equal(t, HeroBadge, site.Text.HeroBadge)
	assert.Len(t, site.Text.HeroHeadline, 2)
	assert.NotEmpty(t, site.Text.ContactPitch)
}
