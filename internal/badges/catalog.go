package badges

import "time"

type Type string

const (
	// Milestone: total sessions played across all games
	TypeFirstSteps     Type = "firstSteps"
	TypeGettingStarted Type = "gettingStarted"
	TypeDedicated      Type = "dedicated"
	TypeCommitted      Type = "committed"
	TypeLegend         Type = "legend"

	// Streak: consecutive calendar days played
	TypeOnTrack     Type = "onTrack"
	TypeConsistent  Type = "consistent"
	TypePersistent  Type = "persistent"
	TypeUnstoppable Type = "unstoppable"

	// Performance
	TypePerfectionist Type = "perfectionist"

	// Mastery: every game in a category at 80%+ best accuracy
	TypeMemoryMaster Type = "memoryMaster"
	TypeMathWhiz     Type = "mathWhiz"
	TypeLogicLegend  Type = "logicLegend"
	TypeWordWizard   Type = "wordWizard"

	// Percentile: any single session ranking high enough
	TypeRisingStar Type = "risingStar"
	TypeElite      Type = "elite"
	TypeChampion   Type = "champion"
	TypeGenius     Type = "genius"
)

type Category string

const (
	CategoryMilestone   Category = "milestone"
	CategoryStreak      Category = "streak"
	CategoryPerformance Category = "performance"
	CategoryMastery     Category = "mastery"
	CategoryPercentile  Category = "percentile"
)

type Info struct {
	Type        Type
	Category    Category
	Name        string
	Description string
	Icon        string
}

var Catalog = map[Type]Info{
	TypeFirstSteps:     {Type: TypeFirstSteps, Category: CategoryMilestone, Name: "First Steps", Description: "Complete your first session", Icon: "👣"},
	TypeGettingStarted: {Type: TypeGettingStarted, Category: CategoryMilestone, Name: "Getting Started", Description: "Complete 10 sessions", Icon: "🚀"},
	TypeDedicated:      {Type: TypeDedicated, Category: CategoryMilestone, Name: "Dedicated", Description: "Complete 50 sessions", Icon: "💪"},
	TypeCommitted:      {Type: TypeCommitted, Category: CategoryMilestone, Name: "Committed", Description: "Complete 100 sessions", Icon: "🏆"},
	TypeLegend:         {Type: TypeLegend, Category: CategoryMilestone, Name: "Legend", Description: "Complete 500 sessions", Icon: "👑"},
	TypeOnTrack:        {Type: TypeOnTrack, Category: CategoryStreak, Name: "On Track", Description: "Play 3 days in a row", Icon: "📅"},
	TypeConsistent:     {Type: TypeConsistent, Category: CategoryStreak, Name: "Consistent", Description: "Play 7 days in a row", Icon: "🗓️"},
	TypePersistent:     {Type: TypePersistent, Category: CategoryStreak, Name: "Persistent", Description: "Play 14 days in a row", Icon: "🔥"},
	TypeUnstoppable:    {Type: TypeUnstoppable, Category: CategoryStreak, Name: "Unstoppable", Description: "Play 30 days in a row", Icon: "⚡"},
	TypePerfectionist:  {Type: TypePerfectionist, Category: CategoryPerformance, Name: "Perfectionist", Description: "Score 100% in any game", Icon: "✨"},
	TypeMemoryMaster:   {Type: TypeMemoryMaster, Category: CategoryMastery, Name: "Memory Master", Description: "80%+ best accuracy in every memory game", Icon: "🧠"},
	TypeMathWhiz:       {Type: TypeMathWhiz, Category: CategoryMastery, Name: "Math Whiz", Description: "80%+ best accuracy in every mental math game", Icon: "🔢"},
	TypeLogicLegend:    {Type: TypeLogicLegend, Category: CategoryMastery, Name: "Logic Legend", Description: "80%+ best accuracy in every problem solving game", Icon: "🧩"},
	TypeWordWizard:     {Type: TypeWordWizard, Category: CategoryMastery, Name: "Word Wizard", Description: "80%+ best accuracy in every language game", Icon: "📚"},
	TypeRisingStar:     {Type: TypeRisingStar, Category: CategoryPercentile, Name: "Rising Star", Description: "Rank in the top 25%", Icon: "🌟"},
	TypeElite:          {Type: TypeElite, Category: CategoryPercentile, Name: "Elite", Description: "Rank in the top 10%", Icon: "💎"},
	TypeChampion:       {Type: TypeChampion, Category: CategoryPercentile, Name: "Champion", Description: "Rank in the top 5%", Icon: "🥇"},
	TypeGenius:         {Type: TypeGenius, Category: CategoryPercentile, Name: "Genius", Description: "Rank in the top 1%", Icon: "🎓"},
}

// AllTypes fixes the evaluation and emission order: milestone, streak,
// performance, mastery, percentile.
var AllTypes = []Type{
	TypeFirstSteps, TypeGettingStarted, TypeDedicated, TypeCommitted, TypeLegend,
	TypeOnTrack, TypeConsistent, TypePersistent, TypeUnstoppable,
	TypePerfectionist,
	TypeMemoryMaster, TypeMathWhiz, TypeLogicLegend, TypeWordWizard,
	TypeRisingStar, TypeElite, TypeChampion, TypeGenius,
}

// Badge is a persisted one-time-per-type award for a profile.
type Badge struct {
	ID         string
	Type       Type
	UnlockedAt time.Time
}
