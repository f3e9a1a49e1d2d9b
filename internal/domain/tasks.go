package domain

// TaskDifficulty grades a task template within the library.
type TaskDifficulty string

const (
	DifficultyEntry    TaskDifficulty = "entry"
	DifficultyMid      TaskDifficulty = "mid"
	DifficultyAdvanced TaskDifficulty = "advanced"
)

// TaskTemplate is a pre-built mini-task the agent can draw from. The agent
// may also compose tasks on the fly; these ensure common assessment
// patterns are always available in the prompt.
type TaskTemplate struct {
	ID             string
	TaskType       string // one of the seven pose_task types
	Content        string // the task text presented to the learner
	TargetStandard string
	ExpectedAnswer string
	CommonErrors   []string
	Difficulty     TaskDifficulty
}

var taskLibrary = []TaskTemplate{
	// Compare fractions.
	{
		ID:             "compare_01",
		TaskType:       "compare_fractions",
		Content:        "Which is bigger: 1/3 or 1/5? How do you know?",
		TargetStandard: "3.NF.A.3",
		ExpectedAnswer: "1/3 is bigger because when you divide something into fewer pieces, each piece is larger.",
		CommonErrors:   []string{"1/5 because 5 > 3 (bigger denominator = bigger fraction)"},
		Difficulty:     DifficultyEntry,
	},
	{
		ID:             "compare_02",
		TaskType:       "compare_fractions",
		Content:        "Which is bigger: 3/4 or 2/3? Explain your thinking.",
		TargetStandard: "4.NF.A.2",
		ExpectedAnswer: "3/4 is bigger. You can compare by finding common denominators: 9/12 vs 8/12, or by reasoning that 3/4 is 1/4 away from 1 while 2/3 is 1/3 away from 1.",
		CommonErrors: []string{
			"2/3 because 'both are missing one piece'",
			"They're equal because both are 'missing one piece'",
		},
		Difficulty: DifficultyMid,
	},
	{
		ID:             "compare_03",
		TaskType:       "compare_fractions",
		Content:        "Which is closer to 1: 3/4 or 5/6?",
		TargetStandard: "4.NF.A.2",
		ExpectedAnswer: "5/6 is closer to 1. 3/4 is 1/4 away from 1 and 5/6 is 1/6 away from 1. Since 1/6 < 1/4, 5/6 is closer.",
		CommonErrors: []string{
			"3/4 because '4 is smaller than 6'",
			"They're the same because both are 'one piece away'",
		},
		Difficulty: DifficultyAdvanced,
	},

	// Order fractions.
	{
		ID:             "order_01",
		TaskType:       "order_fractions",
		Content:        "Put these in order from smallest to biggest: 1/2, 1/4, 3/4",
		TargetStandard: "3.NF.A.3",
		ExpectedAnswer: "1/4, 1/2, 3/4",
		CommonErrors: []string{
			"1/4, 3/4, 1/2 (comparing denominators only)",
			"3/4, 1/2, 1/4 (reversed — biggest first)",
		},
		Difficulty: DifficultyEntry,
	},
	{
		ID:             "order_02",
		TaskType:       "order_fractions",
		Content:        "Put these in order from smallest to biggest: 2/3, 3/5, 1/2",
		TargetStandard: "4.NF.A.2",
		ExpectedAnswer: "1/2, 3/5, 2/3. Using common denominator 30: 15/30, 18/30, 20/30. Or using benchmark reasoning.",
		CommonErrors:   []string{"1/2, 2/3, 3/5 (comparing numerators or denominators independently)"},
		Difficulty:     DifficultyMid,
	},

	// Find equivalent.
	{
		ID:             "equiv_01",
		TaskType:       "find_equivalent",
		Content:        "Can you give me a fraction that equals 1/2 but looks different?",
		TargetStandard: "3.NF.A.3",
		ExpectedAnswer: "Any valid equivalent: 2/4, 3/6, 4/8, 5/10, etc.",
		CommonErrors: []string{
			"2/3 or 1/3 (guessing a nearby fraction)",
			"Can't think of one (doesn't understand equivalence)",
		},
		Difficulty: DifficultyEntry,
	},
	{
		ID:             "equiv_02",
		TaskType:       "find_equivalent",
		Content:        "Is 2/6 equal to 1/3? How could you prove it?",
		TargetStandard: "4.NF.A.1",
		ExpectedAnswer: "Yes, 2/6 = 1/3. You can simplify 2/6 by dividing both by 2, or show that 1/3 × 2/2 = 2/6, or use a visual model.",
		CommonErrors: []string{
			"No, because 2 ≠ 1 and 6 ≠ 3 (comparing parts independently)",
			"Yes, but can't explain why",
		},
		Difficulty: DifficultyMid,
	},

	// Place on number line.
	{
		ID:             "numline_01",
		TaskType:       "place_on_number_line",
		Content:        "If I drew a number line from 0 to 1, where would 3/4 go? What about 1/3?",
		TargetStandard: "3.NF.A.2",
		ExpectedAnswer: "3/4 goes three-quarters of the way from 0 to 1. 1/3 goes one-third of the way, closer to 0.",
		CommonErrors: []string{
			"Places 1/3 past 1/2 (confusion about fraction size)",
			"Can't relate fractions to a number line at all",
			"Places them 'at' 3 and 4 or 1 and 3",
		},
		Difficulty: DifficultyEntry,
	},
	{
		ID:             "numline_02",
		TaskType:       "place_on_number_line",
		Content:        "Where does 5/4 go on a number line? Is that even possible?",
		TargetStandard: "3.NF.A.2",
		ExpectedAnswer: "5/4 goes past 1, one quarter beyond 1. It's between 1 and 2. Yes, fractions can be greater than 1.",
		CommonErrors: []string{
			"It's impossible — fractions have to be less than 1",
			"It goes between 0 and 1 somewhere",
			"It goes at 5 and 4",
		},
		Difficulty: DifficultyMid,
	},

	// Compute.
	{
		ID:             "compute_01",
		TaskType:       "compute",
		Content:        "What's 1/4 + 1/4?",
		TargetStandard: "4.NF.B.3",
		ExpectedAnswer: "2/4 or 1/2",
		CommonErrors:   []string{"2/8 (adding both numerator and denominator)"},
		Difficulty:     DifficultyEntry,
	},
	{
		ID:             "compute_02",
		TaskType:       "compute",
		Content:        "What's 1/2 + 1/3?",
		TargetStandard: "5.NF.A.1",
		ExpectedAnswer: "5/6 (common denominator: 3/6 + 2/6 = 5/6)",
		CommonErrors: []string{
			"2/5 (adding numerators and denominators separately)",
			"1/5 (other incorrect operation)",
		},
		Difficulty: DifficultyMid,
	},
	{
		ID:             "compute_03",
		TaskType:       "compute",
		Content:        "What's 3 × 1/4?",
		TargetStandard: "5.NF.B.4",
		ExpectedAnswer: "3/4",
		CommonErrors: []string{
			"3/12 (multiplying denominator too)",
			"1/12 (confusion about the operation)",
		},
		Difficulty: DifficultyMid,
	},
	{
		ID:             "compute_04",
		TaskType:       "compute",
		Content:        "A recipe needs 2/3 cup of sugar. You want to make half the recipe. How much sugar do you need?",
		TargetStandard: "5.NF.B.4",
		ExpectedAnswer: "1/3 cup (1/2 × 2/3 = 2/6 = 1/3)",
		CommonErrors: []string{
			"1/3 cup but can't explain why",
			"2/6 without simplifying",
			"1/6 (dividing numerator and denominator by 2 separately)",
		},
		Difficulty: DifficultyAdvanced,
	},

	// Decompose.
	{
		ID:             "decompose_01",
		TaskType:       "decompose",
		Content:        "Can you write 3/4 as a sum of smaller fractions?",
		TargetStandard: "4.NF.B.3",
		ExpectedAnswer: "1/4 + 1/4 + 1/4, or 1/4 + 2/4, or 1/2 + 1/4",
		CommonErrors: []string{
			"Can't think of a way (doesn't see fractions as sums)",
			"1/3 + 1/4 + 1/4 (incorrect decomposition)",
		},
		Difficulty: DifficultyMid,
	},
	{
		ID:             "decompose_02",
		TaskType:       "decompose",
		Content:        "How many 1/6 pieces make 2/3?",
		TargetStandard: "4.NF.B.3",
		ExpectedAnswer: "4 pieces (because 2/3 = 4/6)",
		CommonErrors: []string{
			"2 pieces (just using the numerator of 2/3)",
			"6 pieces (just using the denominator)",
		},
		Difficulty: DifficultyMid,
	},

	// Word problems.
	{
		ID:             "word_01",
		TaskType:       "word_problem",
		Content:        "You ate 2/8 of a pizza. Your friend ate 1/4. Who ate more?",
		TargetStandard: "3.NF.A.3",
		ExpectedAnswer: "They ate the same amount! 2/8 = 1/4. Both ate one quarter of the pizza.",
		CommonErrors: []string{
			"You ate more because 2 > 1 and 8 > 4",
			"Your friend ate more because 1/4 'sounds bigger'",
		},
		Difficulty: DifficultyMid,
	},
	{
		ID:             "word_02",
		TaskType:       "word_problem",
		Content:        "You have 3/4 of a yard of ribbon. You use 1/3 of a yard. How much ribbon do you have left?",
		TargetStandard: "5.NF.A.1",
		ExpectedAnswer: "5/12 of a yard (3/4 - 1/3 = 9/12 - 4/12 = 5/12)",
		CommonErrors: []string{
			"2/1 or 2 (subtracting numerators and denominators separately)",
			"Doesn't know how to subtract with unlike denominators",
		},
		Difficulty: DifficultyAdvanced,
	},
}

// TaskLibrary returns every task template in library order.
func TaskLibrary() []TaskTemplate {
	out := make([]TaskTemplate, len(taskLibrary))
	copy(out, taskLibrary)
	return out
}

// TasksForStandard returns templates targeting the given standard.
func TasksForStandard(standardCode string) []TaskTemplate {
	var out []TaskTemplate
	for _, t := range taskLibrary {
		if t.TargetStandard == standardCode {
			out = append(out, t)
		}
	}
	return out
}

// TasksByType returns templates of the given task type.
func TasksByType(taskType string) []TaskTemplate {
	var out []TaskTemplate
	for _, t := range taskLibrary {
		if t.TaskType == taskType {
			out = append(out, t)
		}
	}
	return out
}
