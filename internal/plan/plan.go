package plan

import "time"

// TotalDays 是整个学习计划覆盖的天数。
const TotalDays = 90

// Week 表示某阶段内一周的学习主题。
type Week struct {
	Week   int      `json:"week"`
	Title  string   `json:"title"`
	Topics []string `json:"topics"`
}

// RoutineItem 表示阶段推荐的每日学习活动。
type RoutineItem struct {
	Activity string `json:"activity"`
	Minutes  int    `json:"minutes"`
	Icon     string `json:"icon"`
}

// Phase 描述 90 天计划中的一个阶段，运行期只读。
// DayRange 为闭区间 [lo, hi]，三个阶段恰好覆盖 1..90。
type Phase struct {
	ID           int           `json:"id"`
	Title        string        `json:"title"`
	Emoji        string        `json:"emoji"`
	Subtitle     string        `json:"subtitle"`
	DayRange     [2]int        `json:"dayRange"`
	Color        string        `json:"color"`
	DailyMinutes int           `json:"dailyMinutes"`
	Weeks        []Week        `json:"weeks"`
	DailyRoutine []RoutineItem `json:"dailyRoutine"`
	Skills       []string      `json:"skills"`
}

// Quote 是面板展示的西语谚语。
type Quote struct {
	Text        string `json:"text"`
	Translation string `json:"translation"`
}

// Phases 返回全部阶段的只读切片。
func Phases() []Phase {
	return phases
}

// PhaseForDay 根据天数返回所属阶段。
// 超出计划范围的天数归入最后一个阶段，与越界周数的处理保持一致。
func PhaseForDay(day int) Phase {
	for _, p := range phases {
		if day >= p.DayRange[0] && day <= p.DayRange[1] {
			return p
		}
	}
	if day < phases[0].DayRange[0] {
		return phases[0]
	}
	return phases[len(phases)-1]
}

// PhaseByID 按阶段 ID 查找，未命中时返回 false。
func PhaseByID(id int) (Phase, bool) {
	for _, p := range phases {
		if p.ID == id {
			return p, true
		}
	}
	return Phase{}, false
}

// WeekNumber 返回天数所在的周序号，从 1 开始。
func WeekNumber(day int) int {
	if day <= 0 {
		return 1
	}
	return (day + 6) / 7
}

// DateForDay 由计划起始日推导第 day 天对应的日历日期。
func DateForDay(start time.Time, day int) time.Time {
	return start.AddDate(0, 0, day-1)
}

// QuoteForDay 按天数轮换返回一条谚语。
func QuoteForDay(day int) Quote {
	if day < 0 {
		day = 0
	}
	return quotes[day%len(quotes)]
}

var phases = []Phase{
	{
		ID:           1,
		Title:        "Spanish Foundations",
		Emoji:        "🇪🇸",
		Subtitle:     "Grammar, Vocabulary & Pronunciation",
		DayRange:     [2]int{1, 30},
		Color:        "#f59e0b",
		DailyMinutes: 30,
		Weeks: []Week{
			{
				Week:  1,
				Title: "The Basics",
				Topics: []string{
					"Spanish alphabet & pronunciation rules",
					"Greetings & introductions (Hola, ¿Cómo estás?, Me llamo...)",
					"Numbers 1–100",
					"Days of the week, months, seasons",
					"Basic gender rules (el/la, un/una)",
				},
			},
			{
				Week:  2,
				Title: "Essential Grammar",
				Topics: []string{
					"Present tense regular verbs (-ar, -er, -ir)",
					"Ser vs. Estar (the two 'to be' verbs)",
					"Common adjectives & agreement rules",
					"Question words (¿Qué? ¿Dónde? ¿Cuándo? ¿Cómo? ¿Por qué?)",
					"Negation (no + verb)",
				},
			},
			{
				Week:  3,
				Title: "Building Vocabulary",
				Topics: []string{
					"Food & drink vocabulary",
					"Family members",
					"Colors, clothing, body parts",
					"Common prepositions (en, de, con, para, por)",
					"Possessive adjectives (mi, tu, su, nuestro)",
				},
			},
			{
				Week:  4,
				Title: "Putting It Together",
				Topics: []string{
					"Telling time & talking about schedules",
					"Ir + a + infinitive (future plans)",
					"Gustar and similar verbs (likes/dislikes)",
					"Basic conversation patterns",
					"Review & self-assessment",
				},
			},
		},
		DailyRoutine: []RoutineItem{
			{Activity: "Vocabulary flashcards (new + review)", Minutes: 10, Icon: "📇"},
			{Activity: "Grammar exercise or lesson", Minutes: 10, Icon: "📝"},
			{Activity: "Pronunciation practice (shadowing)", Minutes: 10, Icon: "🎙️"},
		},
		Skills: []string{"Grammar", "Vocabulary", "Pronunciation", "Reading", "Listening"},
	},
	{
		ID:           2,
		Title:        "Business & Clients",
		Emoji:        "💼",
		Subtitle:     "Professional Communication",
		DayRange:     [2]int{31, 60},
		Color:        "#6366f1",
		DailyMinutes: 30,
		Weeks: []Week{
			{
				Week:  5,
				Title: "Professional Introductions",
				Topics: []string{
					"Formal vs. informal Spanish (tú vs. usted)",
					"Introducing yourself and your business",
					"Phone etiquette & email greetings",
					"Scheduling meetings (citas, reuniones)",
					"Key: 'Diseño páginas web para negocios locales'",
				},
			},
			{
				Week:  6,
				Title: "Web Design Vocabulary",
				Topics: []string{
					"Website terminology (sitio web, página de inicio, dominio)",
					"Design concepts (diseño responsivo, tipografía, logo)",
					"Describing services (paquetes, precios, plazos)",
					"Common client questions & answers",
					"Key: 'Su sitio web estará listo en 10-14 días hábiles'",
				},
			},
			{
				Week:  7,
				Title: "Sales Conversations",
				Topics: []string{
					"Pricing & packages (presupuesto, cotización, descuento)",
					"Presenting proposals and options",
					"The sales call in Spanish",
					"Handling objections politely",
					"Key: '¿Cuántos clientes nuevos quiere conseguir cada mes?'",
				},
			},
			{
				Week:  8,
				Title: "Client Communication",
				Topics: []string{
					"Writing professional emails in Spanish",
					"Project update vocabulary",
					"Invoice & payment terms (factura, pago, depósito)",
					"Monthly care plan pitch in Spanish",
					"Key: 'Ofrecemos un plan mensual por $97 al mes'",
				},
			},
		},
		DailyRoutine: []RoutineItem{
			{Activity: "Business vocabulary & key phrases", Minutes: 10, Icon: "💼"},
			{Activity: "Role-play client conversations", Minutes: 10, Icon: "🎭"},
			{Activity: "Read/write professional emails", Minutes: 10, Icon: "✉️"},
		},
		Skills: []string{"Business Vocab", "Writing", "Speaking", "Listening", "Cultural Awareness"},
	},
	{
		ID:           3,
		Title:        "Conversational Fluency",
		Emoji:        "🗣️",
		Subtitle:     "Real-World Immersion",
		DayRange:     [2]int{61, 90},
		Color:        "#10b981",
		DailyMinutes: 45,
		Weeks: []Week{
			{
				Week:  9,
				Title: "Past Tense Mastery",
				Topics: []string{
					"Preterite tense (completed past actions)",
					"Imperfect tense (ongoing past & descriptions)",
					"Preterite vs. Imperfect usage",
					"Storytelling in Spanish",
					"Practice: Describe your career journey",
				},
			},
			{
				Week:  10,
				Title: "Everyday Conversations",
				Topics: []string{
					"Ordering at restaurants & cafés",
					"Giving and asking for directions",
					"Shopping and negotiating",
					"Small talk (weather, hobbies, sports)",
					"Cultural norms & etiquette",
				},
			},
			{
				Week:  11,
				Title: "Advanced Expression",
				Topics: []string{
					"Subjunctive mood basics",
					"Conditional tense (would/could)",
					"Connecting ideas with conjunctions",
					"Idiomatic expressions & slang",
					"Common proverbs (refranes)",
				},
			},
			{
				Week:  12,
				Title: "Immersion & Confidence",
				Topics: []string{
					"Watch Spanish TV/movies without subtitles",
					"Listen to Spanish business podcasts",
					"Write a blog post about your services",
					"15-min full Spanish conversation",
					"Final 90-day progress review",
				},
			},
		},
		DailyRoutine: []RoutineItem{
			{Activity: "Listening comprehension", Minutes: 15, Icon: "🎧"},
			{Activity: "Speaking practice & shadowing", Minutes: 15, Icon: "🗣️"},
			{Activity: "Reading & writing practice", Minutes: 15, Icon: "📖"},
		},
		Skills: []string{"Speaking", "Listening", "Reading", "Writing", "Cultural Fluency"},
	},
}

var quotes = []Quote{
	{Text: "El que no arriesga, no gana.", Translation: "Nothing ventured, nothing gained."},
	{Text: "Poco a poco se va lejos.", Translation: "Little by little, one goes far."},
	{Text: "La práctica hace al maestro.", Translation: "Practice makes perfect."},
	{Text: "Más vale tarde que nunca.", Translation: "Better late than never."},
	{Text: "Querer es poder.", Translation: "Where there's a will, there's a way."},
	{Text: "Cada día se aprende algo nuevo.", Translation: "Every day you learn something new."},
	{Text: "No hay mal que por bien no venga.", Translation: "Every cloud has a silver lining."},
	{Text: "El saber no ocupa lugar.", Translation: "Knowledge takes up no space."},
}
