package outreach

import "strings"

// IndustryProfile is a static enrichment record for a known industry. The
// opening templates are illustrative material for the model, never inserted
// into messages directly.
type IndustryProfile struct {
	Name             string
	Keywords         []string
	Templates        []string
	Tone             string
	CommonInterests  []string
	NetworkingEvents []string
}

var industryProfiles = map[string]IndustryProfile{
	"technology": {
		Name:     "Technology",
		Keywords: []string{"innovation", "digital transformation", "AI/ML", "cloud computing", "startup", "SaaS", "product development"},
		Templates: []string{
			"I noticed your work on {project} - really impressive approach to {challenge}!",
			"Your experience in {technology} caught my attention. Would love to connect and discuss industry trends.",
			"Saw your post about {topic} - great insights on the future of {industry}!",
		},
		Tone:             "innovative and forward-thinking",
		CommonInterests:  []string{"emerging technologies", "product development", "innovation", "startup ecosystem"},
		NetworkingEvents: []string{"TechCrunch Disrupt", "SXSW", "Web Summit", "CES"},
	},
	"finance": {
		Name:     "Finance",
		Keywords: []string{"investment", "fintech", "wealth management", "banking", "financial services", "compliance", "risk management"},
		Templates: []string{
			"Your insights on {financial_topic} are valuable. Would love to discuss market trends.",
			"Impressed by your work in {area}. The financial industry is evolving rapidly.",
			"Your experience with {financial_service} caught my attention. Great to see innovation in finance.",
		},
		Tone:             "professional and trustworthy",
		CommonInterests:  []string{"market analysis", "financial innovation", "regulatory compliance", "investment strategies"},
		NetworkingEvents: []string{"Money20/20", "Finovate", "SIFMA", "World Economic Forum"},
	},
	"healthcare": {
		Name:     "Healthcare",
		Keywords: []string{"patient care", "healthcare technology", "medical devices", "pharmaceuticals", "telemedicine", "healthcare innovation"},
		Templates: []string{
			"Your work in {healthcare_area} is making a real difference. Would love to connect.",
			"Impressed by your approach to {healthcare_challenge}. The industry needs more innovative solutions.",
			"Your experience with {medical_technology} is fascinating. Healthcare innovation is crucial.",
		},
		Tone:             "compassionate and professional",
		CommonInterests:  []string{"patient outcomes", "healthcare innovation", "medical technology", "public health"},
		NetworkingEvents: []string{"HIMSS", "JPMorgan Healthcare Conference", "MedTech Conference", "Health 2.0"},
	},
	"marketing": {
		Name:     "Marketing",
		Keywords: []string{"digital marketing", "brand strategy", "content marketing", "social media", "growth hacking", "customer acquisition"},
		Templates: []string{
			"Your marketing campaigns are creative and effective! Love your approach to {strategy}.",
			"Your work on {campaign} caught my attention. Great results in {metric}!",
			"Impressed by your growth strategies. The marketing landscape is evolving rapidly.",
		},
		Tone:             "creative and results-driven",
		CommonInterests:  []string{"brand building", "customer experience", "growth strategies", "creative campaigns"},
		NetworkingEvents: []string{"SXSW", "Inbound", "Content Marketing World", "Social Media Marketing World"},
	},
	"consulting": {
		Name:     "Consulting",
		Keywords: []string{"strategy", "business transformation", "process improvement", "change management", "organizational development"},
		Templates: []string{
			"Your consulting work in {industry} is impressive. Would love to discuss business challenges.",
			"Your approach to {business_problem} is innovative. The consulting world needs fresh perspectives.",
			"Your experience with {transformation_type} caught my attention. Business transformation is crucial.",
		},
		Tone:             "analytical and strategic",
		CommonInterests:  []string{"business strategy", "organizational change", "process optimization", "industry insights"},
		NetworkingEvents: []string{"Consulting Summit", "Business Transformation Summit", "Strategy Conference"},
	},
	"education": {
		Name:     "Education",
		Keywords: []string{"edtech", "online learning", "curriculum development", "student success", "educational technology", "academic leadership"},
		Templates: []string{
			"Your work in {education_area} is inspiring. Education innovation is so important.",
			"Your approach to {learning_method} caught my attention. The future of education is exciting.",
			"Impressed by your commitment to {educational_goal}. Students benefit from dedicated educators.",
		},
		Tone:             "inspiring and supportive",
		CommonInterests:  []string{"student success", "educational innovation", "learning technology", "academic excellence"},
		NetworkingEvents: []string{"ISTE", "SXSW EDU", "AERA Annual Meeting", "EdTechXGlobal"},
	},
}

// IndustryProfileFor looks up the profile for an industry name. The lookup is
// case-insensitive; an unrecognized industry yields ok=false, never an error.
func IndustryProfileFor(industry string) (IndustryProfile, bool) {
	p, ok := industryProfiles[strings.ToLower(strings.TrimSpace(industry))]
	return p, ok
}

// Industries returns the known industry keys.
func Industries() []string {
	keys := make([]string, 0, len(industryProfiles))
	for k := range industryProfiles {
		keys = append(keys, k)
	}
	return keys
}
