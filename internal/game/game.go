package game

import "fmt"

type Type string

const (
	TypeMemoryGrid     Type = "memoryGrid"
	TypeSequenceMemory Type = "sequenceMemory"
	TypeWordRecall     Type = "wordRecall"
	TypeMentalMath     Type = "mentalMath"
	TypeMathSprint     Type = "mathSprint"
	TypeNumberSequence Type = "numberSequence"
	TypePatternMatch   Type = "patternMatch"
	TypeLogicGrid      Type = "logicGrid"
	TypeMazeRunner     Type = "mazeRunner"
	TypeWordScramble   Type = "wordScramble"
	TypeVocabBuilder   Type = "vocabBuilder"
	TypeLetterHunt     Type = "letterHunt"
)

type Category string

const (
	CategoryMemory         Category = "memory"
	CategoryMentalMath     Category = "mentalMath"
	CategoryProblemSolving Category = "problemSolving"
	CategoryLanguage       Category = "language"
)

type Info struct {
	Type     Type
	Category Category
	Name     string
	MaxScore int
}

// AllGames is the complete roster. Every game type must have exactly one
// entry here; init panics otherwise so a missing game is caught at startup.
var AllGames = map[Type]Info{
	TypeMemoryGrid:     {Type: TypeMemoryGrid, Category: CategoryMemory, Name: "Memory Grid", MaxScore: 100},
	TypeSequenceMemory: {Type: TypeSequenceMemory, Category: CategoryMemory, Name: "Sequence Memory", MaxScore: 100},
	TypeWordRecall:     {Type: TypeWordRecall, Category: CategoryMemory, Name: "Word Recall", MaxScore: 100},
	TypeMentalMath:     {Type: TypeMentalMath, Category: CategoryMentalMath, Name: "Mental Math", MaxScore: 100},
	TypeMathSprint:     {Type: TypeMathSprint, Category: CategoryMentalMath, Name: "Math Sprint", MaxScore: 150},
	TypeNumberSequence: {Type: TypeNumberSequence, Category: CategoryMentalMath, Name: "Number Sequence", MaxScore: 100},
	TypePatternMatch:   {Type: TypePatternMatch, Category: CategoryProblemSolving, Name: "Pattern Match", MaxScore: 100},
	TypeLogicGrid:      {Type: TypeLogicGrid, Category: CategoryProblemSolving, Name: "Logic Grid", MaxScore: 100},
	TypeMazeRunner:     {Type: TypeMazeRunner, Category: CategoryProblemSolving, Name: "Maze Runner", MaxScore: 80},
	TypeWordScramble:   {Type: TypeWordScramble, Category: CategoryLanguage, Name: "Word Scramble", MaxScore: 100},
	TypeVocabBuilder:   {Type: TypeVocabBuilder, Category: CategoryLanguage, Name: "Vocab Builder", MaxScore: 120},
	TypeLetterHunt:     {Type: TypeLetterHunt, Category: CategoryLanguage, Name: "Letter Hunt", MaxScore: 100},
}

// AllTypes lists every game type in a fixed display order.
var AllTypes = []Type{
	TypeMemoryGrid, TypeSequenceMemory, TypeWordRecall,
	TypeMentalMath, TypeMathSprint, TypeNumberSequence,
	TypePatternMatch, TypeLogicGrid, TypeMazeRunner,
	TypeWordScramble, TypeVocabBuilder, TypeLetterHunt,
}

// AllCategories lists the categories in a fixed display order.
var AllCategories = []Category{
	CategoryMemory, CategoryMentalMath, CategoryProblemSolving, CategoryLanguage,
}

func init() {
	if len(AllGames) != len(AllTypes) {
		panic(fmt.Sprintf("game roster mismatch: %d entries, %d types", len(AllGames), len(AllTypes)))
	}
	for _, t := range AllTypes {
		info, ok := AllGames[t]
		if !ok {
			panic(fmt.Sprintf("game type %q missing from AllGames", t))
		}
		if info.MaxScore <= 0 {
			panic(fmt.Sprintf("game type %q has non-positive max score", t))
		}
	}
}

// Valid reports whether t is a known game type.
func Valid(t Type) bool {
	_, ok := AllGames[t]
	return ok
}

// CategoryGames returns the game types belonging to a category, in roster order.
func CategoryGames(c Category) []Type {
	var out []Type
	for _, t := range AllTypes {
		if AllGames[t].Category == c {
			out = append(out, t)
		}
	}
	return out
}

// MaxScore returns the game-type-specific maximum score, or 0 for unknown types.
func MaxScore(t Type) int {
	return AllGames[t].MaxScore
}
