// Package domain holds the static fractions knowledge tables: CCSS-M
// standards with their learning components, the misconception taxonomy,
// the learning progression, and the mini-task library. All data is
// hardcoded; the package exposes lookups and prompt formatters only.
package domain

// LearningComponent is a fine-grained assessable component of a standard.
type LearningComponent struct {
	ID           string // Knowledge Graph UUID
	Code         string // e.g. "3.NF.A.1.a"
	Description  string
	StandardCode string // parent standard
}

// Standard is one CCSS-M standard in the fractions progression.
type Standard struct {
	ID                 string // Knowledge Graph UUID
	Code               string // e.g. "3.NF.A.1"
	Grade              int
	Description        string
	LearningComponents []LearningComponent
}

// seedStandards defines the eleven assessed standards (grades 2-5).
var seedStandards = []Standard{
	// Grade 2 prerequisites.
	{
		ID:    "6b9e11e8-d7cc-11e8-824f-0242ac160002",
		Code:  "2.G.A.3",
		Grade: 2,
		Description: "Partition circles and rectangles into two, three, or four equal " +
			"shares; describe the shares using the words halves, thirds, half of, a " +
			"third of, etc.; describe the whole as two halves, three thirds, four " +
			"fourths. Recognize that equal shares of identical wholes need not have " +
			"the same shape.",
	},
	{
		ID:    "6b9d2bdf-d7cc-11e8-824f-0242ac160002",
		Code:  "2.MD.A.2",
		Grade: 2,
		Description: "Measure the length of an object twice, using length units of " +
			"different lengths for the two measurements; describe how the two " +
			"measurements relate to the size of the unit chosen.",
	},

	// Grade 3.
	{
		ID:    "6b9bf846-d7cc-11e8-824f-0242ac160002",
		Code:  "3.NF.A.1",
		Grade: 3,
		Description: "Understand a fraction 1/b as the quantity formed by 1 part when " +
			"a whole is partitioned into b equal parts; understand a fraction a/b as " +
			"the quantity formed by a parts of size 1/b.",
		LearningComponents: []LearningComponent{
			{
				ID:           "188fe970-4e1d-52c4-9f18-5e2fade05494",
				Code:         "3.NF.A.1.a",
				Description:  "Identify 1/b as the quantity formed by 1 part when a whole is partitioned into equal parts (b = 2,3,4,6,8)",
				StandardCode: "3.NF.A.1",
			},
			{
				ID:           "0f80aa86-2c60-5a0f-bd85-7720345949d9",
				Code:         "3.NF.A.1.b",
				Description:  "Identify a/b as the quantity formed by a parts of size 1/b (b = 2,3,4,6,8)",
				StandardCode: "3.NF.A.1",
			},
		},
	},
	{
		ID:    "6b9d400d-d7cc-11e8-824f-0242ac160002",
		Code:  "3.NF.A.2",
		Grade: 3,
		Description: "Understand a fraction as a number on the number line; represent " +
			"fractions on a number line diagram.",
	},
	{
		ID:    "6b9e210d-d7cc-11e8-824f-0242ac160002",
		Code:  "3.NF.A.3",
		Grade: 3,
		Description: "Explain equivalence of fractions in special cases, and compare " +
			"fractions by reasoning about their size.",
		LearningComponents: []LearningComponent{
			{
				ID:           "d20a384e-e8cc-5c06-acd5-9c829e5c9042",
				Code:         "3.NF.A.3.a",
				Description:  "Explain why fractions are equivalent",
				StandardCode: "3.NF.A.3",
			},
			{
				ID:           "2bfc7496-6e00-5c7d-9d81-1df05d4642c5",
				Code:         "3.NF.A.3.b",
				Description:  "Compare fractions by reasoning about their size (denominators 2,3,4,6,8)",
				StandardCode: "3.NF.A.3",
			},
		},
	},

	// Grade 4.
	{
		ID:    "6b9c09e2-d7cc-11e8-824f-0242ac160002",
		Code:  "4.NF.A.1",
		Grade: 4,
		Description: "Explain why a fraction a/b is equivalent to a fraction " +
			"(n×a)/(n×b) by using visual fraction models, with attention to how " +
			"the number and size of the parts differ even though the two fractions " +
			"themselves are the same size.",
		LearningComponents: []LearningComponent{
			{
				ID:           "5f61cb2a-1c2e-5a6f-9f57-47629badf7c0",
				Code:         "4.NF.A.1.a",
				Description:  "Recognize equivalent fractions using the principle a/b = (n×a)/(n×b)",
				StandardCode: "4.NF.A.1",
			},
			{
				ID:           "74de8dae-331b-5d0a-8f64-a1e8c7c5c3be",
				Code:         "4.NF.A.1.b",
				Description:  "Explain equivalence using visual fraction models",
				StandardCode: "4.NF.A.1",
			},
			{
				ID:           "c3b684c1-9c44-51cd-8a52-d7812ec62951",
				Code:         "4.NF.A.1.c",
				Description:  "Generate equivalent fractions using the principle",
				StandardCode: "4.NF.A.1",
			},
		},
	},
	{
		ID:    "6b9d4e66-d7cc-11e8-824f-0242ac160002",
		Code:  "4.NF.A.2",
		Grade: 4,
		Description: "Compare two fractions with different numerators and different " +
			"denominators, e.g., by creating common denominators or numerators, or by " +
			"comparing to a benchmark fraction such as 1/2.",
	},
	{
		ID:    "6b9e2c7a-d7cc-11e8-824f-0242ac160002",
		Code:  "4.NF.B.3",
		Grade: 4,
		Description: "Understand a fraction a/b with a > 1 as a sum of fractions 1/b. " +
			"a. Understand addition and subtraction of fractions as joining and " +
			"separating parts referring to the same whole. " +
			"b. Decompose a fraction into a sum of fractions with the same " +
			"denominator in more than one way. " +
			"c. Add and subtract mixed numbers with like denominators.",
	},

	// Grade 5.
	{
		ID:    "6b9c1a30-d7cc-11e8-824f-0242ac160002",
		Code:  "5.NF.A.1",
		Grade: 5,
		Description: "Add and subtract fractions with unlike denominators (including " +
			"mixed numbers) by replacing given fractions with equivalent fractions in " +
			"such a way as to produce an equivalent sum or difference of fractions " +
			"with like denominators.",
		LearningComponents: []LearningComponent{
			{
				ID:           "d022d8d2-37f6-5ce9-bb02-e000d731aba0",
				Code:         "5.NF.A.1.a",
				Description:  "Add fractions with different denominators by using equivalent fractions",
				StandardCode: "5.NF.A.1",
			},
			{
				ID:           "089c550e-f3a4-5ea2-959a-34e267c3e374",
				Code:         "5.NF.A.1.b",
				Description:  "Subtract fractions with different denominators by using equivalent fractions",
				StandardCode: "5.NF.A.1",
			},
			{
				ID:           "d2565c2d-3930-54d3-864e-e532fd65cf6c",
				Code:         "5.NF.A.1.c",
				Description:  "Add mixed numbers with different denominators",
				StandardCode: "5.NF.A.1",
			},
			{
				ID:           "3f8f80e7-a5c3-56e5-bf2d-90c5bb5f4f08",
				Code:         "5.NF.A.1.d",
				Description:  "Subtract mixed numbers with different denominators",
				StandardCode: "5.NF.A.1",
			},
		},
	},
	{
		ID:          "6b9edad5-d7cc-11e8-824f-0242ac160002",
		Code:        "5.NF.B.4",
		Grade:       5,
		Description: "Apply and extend previous understandings of multiplication to multiply a fraction or whole number by a fraction.",
		LearningComponents: []LearningComponent{
			{
				ID:           "4aeee2dd-3e67-5d7e-b843-39650a018660",
				Code:         "5.NF.B.4.a",
				Description:  "Multiply a fraction or whole number by a fraction",
				StandardCode: "5.NF.B.4",
			},
		},
	},
	{
		ID:    "6ba053e8-d7cc-11e8-824f-0242ac160002",
		Code:  "5.NF.B.7",
		Grade: 5,
		Description: "Apply and extend previous understandings of division to divide " +
			"unit fractions by whole numbers and whole numbers by unit fractions.",
	},
}

// standardsByCode indexes standards by code.
var standardsByCode map[string]*Standard

// standardCodes holds all codes in grade-then-code order.
var standardCodes []string

func init() {
	standardsByCode = make(map[string]*Standard, len(seedStandards))
	for i := range seedStandards {
		s := &seedStandards[i]
		standardsByCode[s.Code] = s
		standardCodes = append(standardCodes, s.Code)
	}
}

// GetStandard returns a standard by code, or nil if not found.
func GetStandard(code string) *Standard {
	return standardsByCode[code]
}

// StandardCodes returns every standard code in grade order.
func StandardCodes() []string {
	out := make([]string, len(standardCodes))
	copy(out, standardCodes)
	return out
}

// AllStandards returns every standard in grade order.
func AllStandards() []*Standard {
	out := make([]*Standard, 0, len(standardCodes))
	for _, code := range standardCodes {
		out = append(out, standardsByCode[code])
	}
	return out
}
