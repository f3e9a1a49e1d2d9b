package domain

// ProgressionLevel is one level of the fractions learning progression.
type ProgressionLevel struct {
	Grade         int
	Label         string
	Standards     []string
	Prerequisites []string
	NextLevels    []string
}

// progression defines the grade 2-5 fractions progression, in order.
var progression = []ProgressionLevel{
	{
		Grade:      2,
		Label:      "Prerequisite: Partitioning & equal shares",
		Standards:  []string{"2.G.A.3", "2.MD.A.2"},
		NextLevels: []string{"3.NF.A.1", "3.NF.A.2", "3.NF.A.3"},
	},
	{
		Grade:         3,
		Label:         "What IS a fraction? (unit fractions → general → number line → equivalence/comparison)",
		Standards:     []string{"3.NF.A.1", "3.NF.A.2", "3.NF.A.3"},
		Prerequisites: []string{"2.G.A.3", "2.MD.A.2"},
		NextLevels:    []string{"4.NF.A.1", "4.NF.A.2", "4.NF.B.3"},
	},
	{
		Grade:         4,
		Label:         "Equivalence & operations with like denominators",
		Standards:     []string{"4.NF.A.1", "4.NF.A.2", "4.NF.B.3"},
		Prerequisites: []string{"3.NF.A.1", "3.NF.A.2", "3.NF.A.3"},
		NextLevels:    []string{"5.NF.A.1", "5.NF.B.4", "5.NF.B.7"},
	},
	{
		Grade:         5,
		Label:         "Operations with unlike denominators & multiplication/division",
		Standards:     []string{"5.NF.A.1", "5.NF.B.4", "5.NF.B.7"},
		Prerequisites: []string{"4.NF.A.1", "4.NF.A.2", "4.NF.B.3"},
	},
}

// Progression returns the full learning progression in grade order.
func Progression() []ProgressionLevel {
	out := make([]ProgressionLevel, len(progression))
	copy(out, progression)
	return out
}

// GetProgressionLevel returns the level for a grade, or nil if not defined.
func GetProgressionLevel(grade int) *ProgressionLevel {
	for i := range progression {
		if progression[i].Grade == grade {
			return &progression[i]
		}
	}
	return nil
}

// Prerequisites returns the prerequisite standard codes for a standard.
func Prerequisites(standardCode string) []string {
	for _, level := range progression {
		for _, code := range level.Standards {
			if code == standardCode {
				return level.Prerequisites
			}
		}
	}
	return nil
}

// NextStandards returns the standard codes in the next progression level.
func NextStandards(standardCode string) []string {
	for _, level := range progression {
		for _, code := range level.Standards {
			if code == standardCode {
				return level.NextLevels
			}
		}
	}
	return nil
}
