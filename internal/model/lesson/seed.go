package lesson

// Seed provides the default lesson catalogue used when no database is
// configured.
func Seed() []Lesson {
	return []Lesson{
		{
			ID:      "fractions-basics",
			Title:   "Fractions Basics",
			Summary: "What fractions are, how to read them, and how to compare them.",
			Content: "A fraction describes a part of a whole. The number above the line " +
				"is the numerator and counts the parts you have; the number below the " +
				"line is the denominator and says how many equal parts the whole was " +
				"split into. Two fractions are equivalent when they name the same " +
				"amount, such as 1/2 and 2/4. To compare fractions with the same " +
				"denominator, compare their numerators. To compare fractions with " +
				"different denominators, rewrite them over a common denominator first.",
			PracticeQuestions: []string{
				"Which is larger, 3/8 or 5/8?",
				"Write two fractions equivalent to 1/3.",
				"How do you compare 2/5 and 3/7?",
			},
			Quiz: []QuizQuestion{
				{Text: "In 3/4, which number is the denominator?", Options: []string{"3", "4", "7", "12"}, Answer: "B", Difficulty: 1},
				{Text: "Which fraction equals one half?", Options: []string{"2/4", "1/3", "3/5", "2/6"}, Answer: "A", Difficulty: 1},
				{Text: "Which is largest?", Options: []string{"2/7", "3/7", "5/7", "4/7"}, Answer: "C", Difficulty: 2},
				{Text: "Which fraction is equivalent to 2/3?", Options: []string{"3/4", "4/6", "5/9", "6/8"}, Answer: "B", Difficulty: 2},
				{Text: "What is the common denominator of 1/4 and 1/6?", Options: []string{"10", "24", "12", "8"}, Answer: "C", Difficulty: 3},
				{Text: "Order 2/3, 3/5 and 7/10 from smallest to largest.", Options: []string{"3/5, 2/3, 7/10", "2/3, 3/5, 7/10", "7/10, 3/5, 2/3", "3/5, 7/10, 2/3"}, Answer: "A", Difficulty: 4},
			},
		},
		{
			ID:      "photosynthesis-intro",
			Title:   "Introduction to Photosynthesis",
			Summary: "How plants turn light, water and carbon dioxide into sugar and oxygen.",
			Content: "Photosynthesis is the process plants use to make their own food. " +
				"Chlorophyll in the leaves absorbs light energy, which drives a " +
				"reaction combining carbon dioxide from the air with water from the " +
				"soil. The products are glucose, which the plant stores or burns for " +
				"energy, and oxygen, which is released through the stomata. The " +
				"process happens inside chloroplasts and runs fastest in bright light " +
				"with plenty of water and warmth.",
			PracticeQuestions: []string{
				"Name the two raw materials of photosynthesis.",
				"Where in the cell does photosynthesis happen?",
				"Why do plants release oxygen?",
			},
			Quiz: []QuizQuestion{
				{Text: "Which pigment absorbs light in a leaf?", Options: []string{"Melanin", "Chlorophyll", "Carotene", "Keratin"}, Answer: "B", Difficulty: 1},
				{Text: "Which gas do plants take in for photosynthesis?", Options: []string{"Oxygen", "Nitrogen", "Carbon dioxide", "Hydrogen"}, Answer: "C", Difficulty: 1},
				{Text: "Which organelle hosts photosynthesis?", Options: []string{"Mitochondrion", "Nucleus", "Ribosome", "Chloroplast"}, Answer: "D", Difficulty: 2},
				{Text: "What sugar does photosynthesis produce?", Options: []string{"Glucose", "Sucrose", "Lactose", "Fructose"}, Answer: "A", Difficulty: 2},
				{Text: "Which condition slows photosynthesis the most?", Options: []string{"Bright light", "Darkness", "Warm air", "Moist soil"}, Answer: "B", Difficulty: 3},
				{Text: "Through which structures does oxygen leave the leaf?", Options: []string{"Roots", "Xylem", "Stomata", "Cuticle"}, Answer: "C", Difficulty: 3},
			},
		},
		{
			ID:      "newton-first-law",
			Title:   "Newton's First Law",
			Summary: "Inertia and why objects keep doing what they are doing.",
			Content: "Newton's first law says an object at rest stays at rest, and an " +
				"object in motion keeps moving at constant velocity, unless a net " +
				"external force acts on it. This tendency to resist changes in motion " +
				"is called inertia, and it grows with mass. A book on a table stays " +
				"put because the forces on it balance; a rolling ball slows down only " +
				"because friction and air resistance act on it, not because motion " +
				"naturally runs out.",
			PracticeQuestions: []string{
				"Why do passengers lurch forward when a bus brakes?",
				"What force usually stops a rolling ball?",
				"Does a heavier object have more or less inertia?",
			},
			Quiz: []QuizQuestion{
				{Text: "What property resists changes in motion?", Options: []string{"Gravity", "Inertia", "Friction", "Momentum"}, Answer: "B", Difficulty: 1},
				{Text: "An object with no net force on it will...", Options: []string{"speed up", "slow down", "keep its velocity", "change direction"}, Answer: "C", Difficulty: 2},
				{Text: "Which object has the most inertia?", Options: []string{"A tennis ball", "A bicycle", "A loaded truck", "A feather"}, Answer: "C", Difficulty: 2},
				{Text: "A hockey puck glides across ice at constant speed because...", Options: []string{"a force pushes it forward", "net force on it is near zero", "ice pulls it along", "gravity cancels motion"}, Answer: "B", Difficulty: 3},
				{Text: "Seatbelts protect passengers primarily against the effects of...", Options: []string{"inertia", "gravity", "air pressure", "magnetism"}, Answer: "A", Difficulty: 4},
			},
		},
	}
}
