package domain

// MisconceptionCategory groups misconceptions by the kind of understanding
// they undermine.
type MisconceptionCategory string

const (
	CategoryFoundational MisconceptionCategory = "foundational"
	CategoryEquivalence  MisconceptionCategory = "equivalence"
	CategoryOperations   MisconceptionCategory = "operations"
	CategoryConceptual   MisconceptionCategory = "conceptual"
)

// Misconception defines a known fraction misconception pattern.
type Misconception struct {
	ID               string
	Category         MisconceptionCategory
	Description      string
	Example          string
	RelatedStandards []string
}

// seedMisconceptions defines the fractions misconception taxonomy:
// 15 misconceptions across 4 categories.
var seedMisconceptions = []Misconception{
	// Foundational.
	{
		ID:               "foundational_bigger_denom",
		Category:         CategoryFoundational,
		Description:      "The bigger the denominator, the bigger the fraction",
		Example:          "e.g., thinks 1/8 > 1/4 because 8 > 4",
		RelatedStandards: []string{"3.NF.A.1", "3.NF.A.3"},
	},
	{
		ID:               "foundational_separate_numbers",
		Category:         CategoryFoundational,
		Description:      "Treating numerator and denominator as separate whole numbers rather than a single value",
		Example:          "e.g., sees 3/4 as 'a 3 and a 4' rather than one number",
		RelatedStandards: []string{"3.NF.A.1", "3.NF.A.2"},
	},
	{
		ID:               "foundational_unequal_parts",
		Category:         CategoryFoundational,
		Description:      "Not understanding that fractions represent equal parts (unequal partitioning seems fine)",
		Example:          "e.g., accepts a circle split into unequal pieces as thirds",
		RelatedStandards: []string{"2.G.A.3", "3.NF.A.1"},
	},
	{
		ID:               "foundational_only_circles",
		Category:         CategoryFoundational,
		Description:      "Thinking fractions only apply to circles/pizzas, not number lines or other representations",
		Example:          "e.g., can't place 3/4 on a number line even though they 'know' 3/4 of a pizza",
		RelatedStandards: []string{"3.NF.A.1", "3.NF.A.2"},
	},

	// Equivalence.
	{
		ID:               "equivalence_different_looking",
		Category:         CategoryEquivalence,
		Description:      "Different-looking fractions can't be equal",
		Example:          "e.g., insists 2/4 ≠ 1/2 because they look different",
		RelatedStandards: []string{"3.NF.A.3", "4.NF.A.1"},
	},
	{
		ID:               "equivalence_only_simplified",
		Category:         CategoryEquivalence,
		Description:      "Only recognizes equivalence in simplified form, not generating equivalent fractions",
		Example:          "e.g., knows 1/2 is simplest but can't produce 3/6 as equivalent",
		RelatedStandards: []string{"4.NF.A.1"},
	},
	{
		ID:               "equivalence_no_why",
		Category:         CategoryEquivalence,
		Description:      "Treats equivalent fractions as 'the same fraction written differently' without understanding WHY they're equal",
		Example:          "e.g., can multiply top and bottom by same number but can't explain with a model",
		RelatedStandards: []string{"4.NF.A.1"},
	},

	// Operations.
	{
		ID:               "operations_add_both",
		Category:         CategoryOperations,
		Description:      "Adding fractions by adding numerators AND denominators separately",
		Example:          "e.g., 1/2 + 1/3 = 2/5",
		RelatedStandards: []string{"4.NF.B.3", "5.NF.A.1"},
	},
	{
		ID:               "operations_common_denom_multiply",
		Category:         CategoryOperations,
		Description:      "You need common denominators to multiply (overgeneralizing from addition)",
		Example:          "e.g., tries to find common denominator before multiplying 1/2 × 1/3",
		RelatedStandards: []string{"5.NF.B.4"},
	},
	{
		ID:               "operations_multiply_bigger",
		Category:         CategoryOperations,
		Description:      "Multiplying always makes bigger",
		Example:          "e.g., expects 1/2 × 1/3 > 1/3 because 'multiplying makes things bigger'",
		RelatedStandards: []string{"5.NF.B.4"},
	},
	{
		ID:               "operations_division_smaller",
		Category:         CategoryOperations,
		Description:      "Division always makes smaller",
		Example:          "e.g., expects 3 ÷ 1/2 < 3 because 'dividing makes things smaller'",
		RelatedStandards: []string{"5.NF.B.7"},
	},

	// Conceptual.
	{
		ID:               "conceptual_always_less_than_1",
		Category:         CategoryConceptual,
		Description:      "Fractions are always less than 1",
		Example:          "e.g., says 5/4 'isn't a real fraction' or 'doesn't make sense'",
		RelatedStandards: []string{"4.NF.B.3", "3.NF.A.2"},
	},
	{
		ID:               "conceptual_two_numbers",
		Category:         CategoryConceptual,
		Description:      "A fraction is 'two numbers' not 'one number'",
		Example:          "e.g., can't place a fraction on a number line as a single point",
		RelatedStandards: []string{"3.NF.A.1", "3.NF.A.2"},
	},
	{
		ID:               "conceptual_number_line",
		Category:         CategoryConceptual,
		Description:      "Difficulty placing fractions on a number line (especially between 0 and 1)",
		Example:          "e.g., places 1/3 closer to 1 than 1/2 on the number line",
		RelatedStandards: []string{"3.NF.A.2", "3.NF.A.3"},
	},
	{
		ID:               "conceptual_cant_divide_smaller",
		Category:         CategoryConceptual,
		Description:      "You can't divide a smaller number by a bigger number",
		Example:          "e.g., says '1 ÷ 4 is impossible' or 'you can't do that'",
		RelatedStandards: []string{"3.NF.A.1", "5.NF.B.7"},
	},
}

// misconceptionRegistry indexes misconceptions by ID.
var misconceptionRegistry map[string]*Misconception

// misconceptionsByStandard indexes misconceptions by related standard code.
var misconceptionsByStandard map[string][]*Misconception

func init() {
	misconceptionRegistry = make(map[string]*Misconception, len(seedMisconceptions))
	misconceptionsByStandard = make(map[string][]*Misconception)
	for i := range seedMisconceptions {
		m := &seedMisconceptions[i]
		misconceptionRegistry[m.ID] = m
		for _, code := range m.RelatedStandards {
			misconceptionsByStandard[code] = append(misconceptionsByStandard[code], m)
		}
	}
}

// GetMisconception returns a misconception by ID, or nil if not found.
func GetMisconception(id string) *Misconception {
	return misconceptionRegistry[id]
}

// MisconceptionsForStandard returns the misconceptions related to a standard.
func MisconceptionsForStandard(code string) []*Misconception {
	return misconceptionsByStandard[code]
}

// AllMisconceptions returns the full taxonomy in seed order.
func AllMisconceptions() []*Misconception {
	out := make([]*Misconception, 0, len(seedMisconceptions))
	for i := range seedMisconceptions {
		out = append(out, &seedMisconceptions[i])
	}
	return out
}
