package models

// TemplateCategory groups built-in habit templates.
type TemplateCategory string

const (
	CategoryFitness     TemplateCategory = "fitness"
	CategoryLearning    TemplateCategory = "learning"
	CategoryMindfulness TemplateCategory = "mindfulness"
	CategoryCreativity  TemplateCategory = "creativity"
	CategoryHealth      TemplateCategory = "health"
	CategorySocial      TemplateCategory = "social"
)

// DisplayName returns a human-readable label for the category.
func (c TemplateCategory) DisplayName() string {
	switch c {
	case CategoryFitness:
		return "Fitness"
	case CategoryLearning:
		return "Learning"
	case CategoryMindfulness:
		return "Mindfulness"
	case CategoryCreativity:
		return "Creativity"
	case CategoryHealth:
		return "Health"
	case CategorySocial:
		return "Social"
	default:
		return string(c)
	}
}

// HabitTemplate is a preset used to create a habit quickly.
type HabitTemplate struct {
	Name                string           `json:"name"`
	Category            TemplateCategory `json:"category"`
	Title               string           `json:"title"`
	Emoji               string           `json:"emoji"`
	MicroAction         string           `json:"micro_action"`
	RecommendedDuration int              `json:"recommended_duration"` // minutes
	ThemeColor          string           `json:"theme_color"`
	Description         string           `json:"description"`
}

// Draft converts the template into a habit draft ready for creation.
func (t HabitTemplate) Draft() HabitDraft {
	return HabitDraft{
		Title:        t.Title,
		MicroAction:  t.MicroAction,
		Emoji:        t.Emoji,
		FocusMinutes: t.RecommendedDuration,
		ThemeColor:   t.ThemeColor,
	}
}

// BuiltinTemplates is the preset catalog shown by `minihab template list`.
var BuiltinTemplates = []HabitTemplate{
	{
		Name:                "Cycling",
		Category:            CategoryFitness,
		Title:               "Cycle 3 kilometers",
		Emoji:               "🚴",
		MicroAction:         "Ride for 10 meters",
		RecommendedDuration: 3,
		ThemeColor:          "#4ECDC4",
		Description:         "Daily ride, starting from 10 meters",
	},
	{
		Name:                "Push-ups",
		Category:            CategoryFitness,
		Title:               "Do 50 push-ups",
		Emoji:               "💪",
		MicroAction:         "Do one push-up",
		RecommendedDuration: 2,
		ThemeColor:          "#FF6B6B",
		Description:         "Simple strength work, starting from a single rep",
	},
	{
		Name:                "Walking",
		Category:            CategoryFitness,
		Title:               "Walk 10,000 steps",
		Emoji:               "🚶",
		MicroAction:         "Walk 50 steps",
		RecommendedDuration: 1,
		ThemeColor:          "#4ECDC4",
		Description:         "Everyday walking, starting from 50 steps",
	},
	{
		Name:                "Reading",
		Category:            CategoryLearning,
		Title:               "Read 30 minutes",
		Emoji:               "📚",
		MicroAction:         "Read one page",
		RecommendedDuration: 2,
		ThemeColor:          "#45B7D1",
		Description:         "A daily reading habit, starting from one page",
	},
	{
		Name:                "Vocabulary",
		Category:            CategoryLearning,
		Title:               "Learn 100 words",
		Emoji:               "🗣️",
		MicroAction:         "Learn one word",
		RecommendedDuration: 2,
		ThemeColor:          "#A8E6CF",
		Description:         "Language practice, one word at a time",
	},
	{
		Name:                "Skill practice",
		Category:            CategoryLearning,
		Title:               "Practice a new skill for an hour",
		Emoji:               "🎓",
		MicroAction:         "Practice for 5 minutes",
		RecommendedDuration: 5,
		ThemeColor:          "#FFD93D",
		Description:         "Deliberate practice, starting from 5 minutes",
	},
	{
		Name:                "Meditation",
		Category:            CategoryMindfulness,
		Title:               "Meditate 20 minutes",
		Emoji:               "🧘",
		MicroAction:         "Take 3 deep breaths",
		RecommendedDuration: 1,
		ThemeColor:          "#96CEB4",
		Description:         "Unwind through meditation, starting with breathing",
	},
	{
		Name:                "Mindfulness",
		Category:            CategoryMindfulness,
		Title:               "15 minutes of mindfulness",
		Emoji:               "🌸",
		MicroAction:         "One minute of awareness",
		RecommendedDuration: 1,
		ThemeColor:          "#FFEAA7",
		Description:         "Build awareness, one minute at a time",
	},
	{
		Name:                "Writing",
		Category:            CategoryCreativity,
		Title:               "Write 500 words",
		Emoji:               "✍️",
		MicroAction:         "Write 20 words",
		RecommendedDuration: 5,
		ThemeColor:          "#FFEAA7",
		Description:         "Daily writing, starting from 20 words",
	},
	{
		Name:                "Drawing",
		Category:            CategoryCreativity,
		Title:               "Draw for 30 minutes",
		Emoji:               "🎨",
		MicroAction:         "Draw one line",
		RecommendedDuration: 3,
		ThemeColor:          "#FF7675",
		Description:         "A creative habit, starting from a single line",
	},
	{
		Name:                "Hydration",
		Category:            CategoryHealth,
		Title:               "Drink 8 glasses of water",
		Emoji:               "💧",
		MicroAction:         "Take one sip",
		RecommendedDuration: 1,
		ThemeColor:          "#74B9FF",
		Description:         "Stay hydrated, starting from one sip",
	},
	{
		Name:                "Early bedtime",
		Category:            CategoryHealth,
		Title:               "In bed by 11pm",
		Emoji:               "😴",
		MicroAction:         "Start getting ready for bed",
		RecommendedDuration: 2,
		ThemeColor:          "#A29BFE",
		Description:         "A healthier sleep schedule, starting with winding down",
	},
}

// TemplatesByCategory returns the built-in templates in the given category.
func TemplatesByCategory(category TemplateCategory) []HabitTemplate {
	var out []HabitTemplate
	for _, t := range BuiltinTemplates {
		if t.Category == category {
			out = append(out, t)
		}
	}
	return out
}

// FindTemplate looks up a built-in template by name (case-sensitive).
func FindTemplate(name string) (HabitTemplate, bool) {
	for _, t := range BuiltinTemplates {
		if t.Name == name {
			return t, true
		}
	}
	return HabitTemplate{}, false
}

// SampleDrafts returns the starter habits seeded by `minihab init --sample`.
func SampleDrafts() []HabitDraft {
	return []HabitDraft{
		{Title: "Cycle 3 kilometers", Emoji: "🚴", MicroAction: "Ride for 10 meters", FocusMinutes: 3, ThemeColor: "#4ECDC4"},
		{Title: "Read 30 minutes", Emoji: "📚", MicroAction: "Read one page", FocusMinutes: 2, ThemeColor: "#45B7D1"},
		{Title: "Meditate 10 minutes", Emoji: "🧘", MicroAction: "Take 3 deep breaths", FocusMinutes: 1, ThemeColor: "#96CEB4"},
		{Title: "Write 500 words", Emoji: "✍️", MicroAction: "Write 20 words", FocusMinutes: 5, ThemeColor: "#FFEAA7"},
	}
}
