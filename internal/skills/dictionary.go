package skills

// Skill categories.
const (
	CategoryLanguage    = "Language"
	CategoryFrontend    = "Frontend"
	CategoryBackend     = "Backend"
	CategoryDatabase    = "Database"
	CategoryCloud       = "Cloud"
	CategoryDevOps      = "DevOps"
	CategoryAIML        = "AI/ML"
	CategoryMobile      = "Mobile"
	CategoryTesting     = "Testing"
	CategoryTools       = "Tools"
	CategoryMethodology = "Methodology"
)

type dictEntry struct {
	token    string
	category string
}

// dictionary maps lowercase skill tokens to categories. Order matters: when
// two tokens normalize to the same display name with equal confidence, the
// earlier entry wins.
var dictionary = []dictEntry{
	// Programming languages
	{"python", CategoryLanguage},
	{"javascript", CategoryLanguage},
	{"typescript", CategoryLanguage},
	{"java", CategoryLanguage},
	{"c++", CategoryLanguage},
	{"c#", CategoryLanguage},
	{"c", CategoryLanguage},
	{"go", CategoryLanguage},
	{"golang", CategoryLanguage},
	{"rust", CategoryLanguage},
	{"ruby", CategoryLanguage},
	{"php", CategoryLanguage},
	{"swift", CategoryLanguage},
	{"kotlin", CategoryLanguage},
	{"scala", CategoryLanguage},
	{"r", CategoryLanguage},
	{"matlab", CategoryLanguage},
	{"perl", CategoryLanguage},
	{"dart", CategoryLanguage},
	{"lua", CategoryLanguage},
	{"haskell", CategoryLanguage},
	{"elixir", CategoryLanguage},
	{"clojure", CategoryLanguage},

	// Frontend
	{"react", CategoryFrontend},
	{"reactjs", CategoryFrontend},
	{"react.js", CategoryFrontend},
	{"vue", CategoryFrontend},
	{"vuejs", CategoryFrontend},
	{"vue.js", CategoryFrontend},
	{"angular", CategoryFrontend},
	{"angularjs", CategoryFrontend},
	{"svelte", CategoryFrontend},
	{"next.js", CategoryFrontend},
	{"nextjs", CategoryFrontend},
	{"nuxt", CategoryFrontend},
	{"nuxt.js", CategoryFrontend},
	{"gatsby", CategoryFrontend},
	{"html", CategoryFrontend},
	{"html5", CategoryFrontend},
	{"css", CategoryFrontend},
	{"css3", CategoryFrontend},
	{"sass", CategoryFrontend},
	{"scss", CategoryFrontend},
	{"less", CategoryFrontend},
	{"tailwind", CategoryFrontend},
	{"tailwindcss", CategoryFrontend},
	{"bootstrap", CategoryFrontend},
	{"material-ui", CategoryFrontend},
	{"mui", CategoryFrontend},
	{"chakra", CategoryFrontend},
	{"styled-components", CategoryFrontend},
	{"redux", CategoryFrontend},
	{"mobx", CategoryFrontend},
	{"webpack", CategoryFrontend},
	{"vite", CategoryFrontend},
	{"babel", CategoryFrontend},
	{"jquery", CategoryFrontend},

	// Backend
	{"node.js", CategoryBackend},
	{"nodejs", CategoryBackend},
	{"express", CategoryBackend},
	{"expressjs", CategoryBackend},
	{"fastapi", CategoryBackend},
	{"django", CategoryBackend},
	{"flask", CategoryBackend},
	{"spring", CategoryBackend},
	{"spring boot", CategoryBackend},
	{"springboot", CategoryBackend},
	{"rails", CategoryBackend},
	{"ruby on rails", CategoryBackend},
	{"laravel", CategoryBackend},
	{"asp.net", CategoryBackend},
	{".net", CategoryBackend},
	{"dotnet", CategoryBackend},
	{"nest.js", CategoryBackend},
	{"nestjs", CategoryBackend},
	{"graphql", CategoryBackend},
	{"rest", CategoryBackend},
	{"restful", CategoryBackend},
	{"grpc", CategoryBackend},
	{"microservices", CategoryBackend},

	// Database
	{"sql", CategoryDatabase},
	{"mysql", CategoryDatabase},
	{"postgresql", CategoryDatabase},
	{"postgres", CategoryDatabase},
	{"mongodb", CategoryDatabase},
	{"redis", CategoryDatabase},
	{"elasticsearch", CategoryDatabase},
	{"sqlite", CategoryDatabase},
	{"oracle", CategoryDatabase},
	{"cassandra", CategoryDatabase},
	{"dynamodb", CategoryDatabase},
	{"firebase", CategoryDatabase},
	{"firestore", CategoryDatabase},
	{"supabase", CategoryDatabase},
	{"prisma", CategoryDatabase},
	{"sequelize", CategoryDatabase},
	{"mongoose", CategoryDatabase},
	{"typeorm", CategoryDatabase},

	// Cloud and DevOps
	{"aws", CategoryCloud},
	{"amazon web services", CategoryCloud},
	{"azure", CategoryCloud},
	{"gcp", CategoryCloud},
	{"google cloud", CategoryCloud},
	{"docker", CategoryDevOps},
	{"kubernetes", CategoryDevOps},
	{"k8s", CategoryDevOps},
	{"jenkins", CategoryDevOps},
	{"ci/cd", CategoryDevOps},
	{"github actions", CategoryDevOps},
	{"gitlab ci", CategoryDevOps},
	{"terraform", CategoryDevOps},
	{"ansible", CategoryDevOps},
	{"linux", CategoryDevOps},
	{"nginx", CategoryDevOps},
	{"apache", CategoryDevOps},
	{"bash", CategoryDevOps},
	{"shell", CategoryDevOps},
	{"powershell", CategoryDevOps},

	// AI/ML
	{"machine learning", CategoryAIML},
	{"deep learning", CategoryAIML},
	{"tensorflow", CategoryAIML},
	{"pytorch", CategoryAIML},
	{"keras", CategoryAIML},
	{"scikit-learn", CategoryAIML},
	{"sklearn", CategoryAIML},
	{"pandas", CategoryAIML},
	{"numpy", CategoryAIML},
	{"opencv", CategoryAIML},
	{"nlp", CategoryAIML},
	{"natural language processing", CategoryAIML},
	{"computer vision", CategoryAIML},
	{"neural network", CategoryAIML},
	{"hugging face", CategoryAIML},
	{"transformers", CategoryAIML},
	{"llm", CategoryAIML},
	{"gpt", CategoryAIML},
	{"langchain", CategoryAIML},

	// Mobile
	{"react native", CategoryMobile},
	{"flutter", CategoryMobile},
	{"ios", CategoryMobile},
	{"android", CategoryMobile},
	{"xamarin", CategoryMobile},
	{"ionic", CategoryMobile},
	{"expo", CategoryMobile},

	// Testing
	{"jest", CategoryTesting},
	{"mocha", CategoryTesting},
	{"chai", CategoryTesting},
	{"cypress", CategoryTesting},
	{"selenium", CategoryTesting},
	{"puppeteer", CategoryTesting},
	{"playwright", CategoryTesting},
	{"pytest", CategoryTesting},
	{"unittest", CategoryTesting},
	{"junit", CategoryTesting},
	{"testing library", CategoryTesting},

	// Version control
	{"git", CategoryTools},
	{"github", CategoryTools},
	{"gitlab", CategoryTools},
	{"bitbucket", CategoryTools},
	{"svn", CategoryTools},

	// Other tools
	{"jira", CategoryTools},
	{"confluence", CategoryTools},
	{"slack", CategoryTools},
	{"figma", CategoryTools},
	{"postman", CategoryTools},
	{"swagger", CategoryTools},
	{"agile", CategoryMethodology},
	{"scrum", CategoryMethodology},
	{"kanban", CategoryMethodology},
}

// specialNames overrides the default token capitalization for display names.
var specialNames = map[string]string{
	"javascript": "JavaScript",
	"typescript": "TypeScript",
	"nodejs":     "Node.js",
	"node.js":    "Node.js",
	"reactjs":    "React",
	"react.js":   "React",
	"vuejs":      "Vue.js",
	"vue.js":     "Vue.js",
	"nextjs":     "Next.js",
	"next.js":    "Next.js",
	"mongodb":    "MongoDB",
	"postgresql": "PostgreSQL",
	"mysql":      "MySQL",
	"graphql":    "GraphQL",
	"github":     "GitHub",
	"gitlab":     "GitLab",
	"aws":        "AWS",
	"gcp":        "GCP",
	"html":       "HTML",
	"css":        "CSS",
	"html5":      "HTML5",
	"css3":       "CSS3",
	"sql":        "SQL",
	"nosql":      "NoSQL",
	"ci/cd":      "CI/CD",
	"rest":       "REST",
	"restful":    "RESTful",
	"nlp":        "NLP",
	"llm":        "LLM",
	"gpt":        "GPT",
	"ios":        "iOS",
}
