package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/minihab/internal/models"
)

type TemplateCmd struct {
	List TemplateListCmd `cmd:"" default:"1" help:"List built-in habit templates."`
	Use  TemplateUseCmd  `cmd:"" help:"Create a habit from a template."`
}

type TemplateListCmd struct {
	Category string `help:"Only show one category (fitness, learning, mindfulness, creativity, health, social)."`
}

func (c *TemplateListCmd) Run(ctx *Context) error {
	categories := []models.TemplateCategory{
		models.CategoryFitness,
		models.CategoryLearning,
		models.CategoryMindfulness,
		models.CategoryCreativity,
		models.CategoryHealth,
		models.CategorySocial,
	}

	header := lipgloss.NewStyle().Bold(true)
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	for _, cat := range categories {
		if c.Category != "" && c.Category != string(cat) {
			continue
		}
		templates := models.TemplatesByCategory(cat)
		if len(templates) == 0 {
			continue
		}
		fmt.Println(header.Render(cat.DisplayName()))
		for _, t := range templates {
			fmt.Printf("  %s %-14s %s\n", t.Emoji, t.Name, dim.Render(t.Description))
		}
		fmt.Println()
	}
	return nil
}

type TemplateUseCmd struct {
	Name string `arg:"" help:"Template name as shown by 'template list'."`
}

func (c *TemplateUseCmd) Run(ctx *Context) error {
	tmpl, ok := models.FindTemplate(c.Name)
	if !ok {
		return fmt.Errorf("unknown template %q, see 'minihab template list'", c.Name)
	}

	repo, err := ctx.Repository()
	if err != nil {
		return err
	}

	created, err := repo.CreateHabit(tmpl.Draft())
	if err != nil {
		return err
	}

	fmt.Printf("Added habit: %s %s (micro action: %s)\n", created.Emoji, created.Title, created.MicroAction)
	return nil
}
