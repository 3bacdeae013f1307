package seed

var interestNames = []string{
	"Technology", "Coding", "AI & Machine Learning", "Robotics", "Web Development",
	"Sports", "Football", "Basketball", "Rugby", "Athletics",
	"Arts", "Music", "Drama", "Photography", "Design",
	"Business", "Entrepreneurship", "Finance", "Marketing",
	"Community Service", "Environment", "Health & Wellness",
	"Gaming", "Esports", "Board Games",
	"Culture", "Debate", "Public Speaking", "Writing",
}

type optionSeed struct {
	label     string
	value     string
	interests []string
}

type questionSeed struct {
	prompt  string
	kind    string
	weight  float64
	options []optionSeed
}

const (
	quizTitle       = "Find Your Perfect Society Match"
	quizDescription = "Answer these questions to discover societies that align with your interests and availability."
)

var matchmakerQuestions = []questionSeed{
	{
		prompt: "Which activities interest you most?",
		kind:   "multi",
		weight: 15,
		options: []optionSeed{
			{"Technology & Coding", "tech", []string{"Technology", "Coding", "Web Development"}},
			{"AI & Robotics", "ai", []string{"AI & Machine Learning", "Robotics", "Technology"}},
			{"Sports & Fitness", "sports", []string{"Sports", "Football", "Basketball", "Health & Wellness"}},
			{"Arts & Culture", "arts", []string{"Arts", "Music", "Drama", "Photography", "Design"}},
			{"Business & Entrepreneurship", "business", []string{"Business", "Entrepreneurship", "Finance", "Marketing"}},
			{"Gaming & Esports", "gaming", []string{"Gaming", "Esports", "Board Games"}},
			{"Community Service", "community", []string{"Community Service", "Environment"}},
		},
	},
	{
		prompt: "When are you usually available for society activities?",
		kind:   "single",
		options: []optionSeed{
			{"Weekday mornings", "weekday_morning", nil},
			{"Weekday afternoons", "weekday_afternoon", nil},
			{"Weekday evenings", "weekday_evening", nil},
			{"Weekends", "weekend", nil},
			{"Flexible schedule", "flexible", nil},
		},
	},
	{
		prompt: "What size of group do you prefer?",
		kind:   "single",
		options: []optionSeed{
			{"Small intimate groups (5-15 people)", "small", nil},
			{"Medium groups (15-30 people)", "medium", nil},
			{"Large communities (30+ people)", "large", nil},
			{"No preference", "any", nil},
		},
	},
	{
		prompt: "What do you hope to gain from joining a society?",
		kind:   "multi",
		weight: 10,
		options: []optionSeed{
			{"Learn new skills", "skills", []string{"Technology", "Business", "Arts"}},
			{"Make friends & network", "social", []string{"Community Service", "Culture"}},
			{"Career development", "career", []string{"Business", "Entrepreneurship", "Technology"}},
			{"Fun & relaxation", "fun", []string{"Gaming", "Sports", "Arts"}},
			{"Make a difference", "impact", []string{"Community Service", "Environment"}},
		},
	},
	{
		prompt: "Tell us about any other interests or hobbies you have (optional)",
		kind:   "text",
	},
}

type societySeed struct {
	name        string
	description string
	category    string
	campus      string
	interests   []string
}

const societyInterestWeight = 15

var societies = []societySeed{
	{"AI & Machine Learning Society", "Exploring artificial intelligence, neural networks, and machine learning algorithms through workshops and projects.", "Technology", "Potchefstroom", []string{"AI & Machine Learning", "Technology", "Coding", "Robotics"}},
	{"Web Developers Guild", "Build amazing web applications using modern frameworks like React, Vue, and Node.js.", "Technology", "Mafikeng", []string{"Web Development", "Technology", "Coding", "Design"}},
	{"Robotics Club", "Design, build, and program robots for competitions and real-world applications.", "Technology", "Vanderbijlpark", []string{"Robotics", "Technology", "AI & Machine Learning", "Coding"}},
	{"NWU Football Club", "Competitive football training and inter-campus matches. All skill levels welcome!", "Sports", "Potchefstroom", []string{"Football", "Sports", "Health & Wellness", "Athletics"}},
	{"Basketball Society", "Weekly training sessions, friendly matches, and tournament participation.", "Sports", "Mafikeng", []string{"Basketball", "Sports", "Health & Wellness", "Athletics"}},
	{"Rugby Eagles", "Join our proud rugby tradition with professional coaching and competitive play.", "Sports", "Vanderbijlpark", []string{"Rugby", "Sports", "Health & Wellness", "Athletics"}},
	{"Athletics & Track Club", "Training for sprints, distance running, and field events with certified coaches.", "Sports", "Potchefstroom", []string{"Athletics", "Sports", "Health & Wellness"}},
	{"Music Society", "For musicians of all genres, from classical to contemporary. Jam sessions, concerts, and collaborations.", "Arts", "Mafikeng", []string{"Music", "Arts", "Culture"}},
	{"Drama & Theatre Club", "Perform in plays, musicals, and experimental theatre. Acting workshops included.", "Arts", "Potchefstroom", []string{"Drama", "Arts", "Culture", "Public Speaking"}},
	{"Photography Society", "Learn photography techniques, participate in photo walks, and showcase your work.", "Arts", "Vanderbijlpark", []string{"Photography", "Arts", "Design"}},
	{"Design Collective", "Graphic design, UI/UX, and digital art. Collaborate on creative projects.", "Arts", "Mafikeng", []string{"Design", "Arts", "Technology", "Web Development"}},
	{"Entrepreneurship Hub", "Start your business journey with mentorship, pitch nights, and startup workshops.", "Business", "Potchefstroom", []string{"Entrepreneurship", "Business", "Marketing", "Finance"}},
	{"Finance & Investment Club", "Learn about stocks, crypto, and personal finance through real trading simulations.", "Business", "Mafikeng", []string{"Finance", "Business", "Entrepreneurship"}},
	{"Marketing Masters", "Digital marketing, social media strategy, and brand building workshops.", "Business", "Vanderbijlpark", []string{"Marketing", "Business", "Entrepreneurship", "Design"}},
	{"Community Outreach Program", "Make a difference through volunteering, tutoring, and community development projects.", "Community Service", "Mafikeng", []string{"Community Service", "Environment", "Health & Wellness"}},
	{"Environmental Action Group", "Sustainability initiatives, tree planting, and environmental advocacy campaigns.", "Community Service", "Potchefstroom", []string{"Environment", "Community Service"}},
	{"Health & Wellness Society", "Promote mental and physical health through yoga, meditation, and wellness workshops.", "Community Service", "Vanderbijlpark", []string{"Health & Wellness", "Community Service", "Sports"}},
	{"Esports Arena", "Competitive gaming tournaments in League, Valorant, CS2, and more. Join our esports teams!", "Gaming", "Potchefstroom", []string{"Esports", "Gaming", "Technology"}},
	{"Board Game Guild", "Weekly game nights featuring strategy games, D&D campaigns, and card games.", "Gaming", "Mafikeng", []string{"Board Games", "Gaming", "Culture"}},
	{"Debate Society", "Sharpen your argumentation skills through competitive debates and public speaking.", "Culture", "Vanderbijlpark", []string{"Debate", "Public Speaking", "Culture"}},
	{"Writers Circle", "Creative writing workshops, poetry readings, and publishing opportunities.", "Culture", "Mafikeng", []string{"Writing", "Culture", "Arts"}},
	{"Public Speaking Club", "Develop confidence and presentation skills through Toastmasters-style meetings.", "Culture", "Potchefstroom", []string{"Public Speaking", "Debate", "Culture", "Business"}},
}

const (
	DemoEmail    = "1234567@mynwu.ac.za"
	DemoPassword = "Pa$$w0rd"
)
